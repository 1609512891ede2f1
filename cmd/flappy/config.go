package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-flappy/internal/config"
)

var flagConfigEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the built-in configuration as YAML. Save it to
~/.arcade/configs/flappy.yaml or ./configs/flappy.yaml to customize the game,
or pass a file with --config.

With --effective, prints the configuration after the search order,
--config and --difficulty are applied, followed by its fingerprint
(variant rules are not applied, so it can differ from a run's).

Examples:
  flappy config > ~/.arcade/configs/flappy.yaml
  flappy config --effective --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigEffective, "effective", false, "Print the loaded config instead of the built-in one")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagConfigEffective {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, err := loadGameConfig()
	exitOnError("loading config", err)

	data, err := yaml.Marshal(cfg)
	exitOnError("encoding config", err)
	os.Stdout.Write(data)

	hash, err := config.Fingerprint(*cfg)
	exitOnError("fingerprinting config", err)
	fmt.Printf("# fingerprint: %s\n", hash)
}
