package audio

import (
	"errors"
	"testing"

	"github.com/gopxl/beep"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-flappy/internal/sim"
)

// drain counts the samples a finite streamer produces.
func drain(t *testing.T, s interface {
	Stream([][2]float64) (int, bool)
}) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		total += n
		for _, smp := range buf[:n] {
			assert.LessOrEqual(t, smp[0], 1.0)
			assert.GreaterOrEqual(t, smp[0], -1.0)
		}
		if !ok {
			return total
		}
	}
	t.Fatal("streamer never finished")
	return 0
}

func TestEffectsAreFinite(t *testing.T) {
	for _, s := range []sim.Sound{sim.SoundFlap, sim.SoundHit, sim.SoundPoint} {
		t.Run(s.String(), func(t *testing.T) {
			st, err := Stream(s)
			require.NoError(t, err)

			want := sampleRate.N(Duration(s))
			assert.InDelta(t, want, drain(t, st), float64(len(effectNotes[s])))
		})
	}
}

func TestUnknownSound(t *testing.T) {
	_, err := Stream(sim.Sound(42))
	assert.Error(t, err)
	assert.Zero(t, Duration(sim.Sound(42)))
}

func TestUninitializedPlayerIsSilent(t *testing.T) {
	p := NewPlayer(nil)
	p.Play(sim.SoundHit)
	p.SetMuted(true)
	assert.True(t, p.Muted())
	p.Close()
}

// stubSpeaker replaces the speaker hooks for one test.
func stubSpeaker(t *testing.T, openErr error) *int {
	t.Helper()
	closes := 0
	origOpen, origClose := openSpeaker, closeSpeaker
	openSpeaker = func(beep.Streamer) error { return openErr }
	closeSpeaker = func() { closes++ }
	t.Cleanup(func() { openSpeaker, closeSpeaker = origOpen, origClose })
	return &closes
}

func TestNewMutedCanBeUnmuted(t *testing.T) {
	closes := stubSpeaker(t, nil)

	a := New(nil, true)
	p, ok := a.(*Player)
	require.True(t, ok, "muted start should still return a player, got %T", a)
	assert.True(t, p.Muted())

	p.SetMuted(false)
	assert.False(t, p.Muted())
	p.Play(sim.SoundFlap)

	p.Close()
	assert.Equal(t, 1, *closes)
}

func TestNewWithoutSpeakerIsSilent(t *testing.T) {
	stubSpeaker(t, errors.New("no audio device"))
	assert.IsType(t, sim.NullAudio{}, New(nil, false))
	assert.IsType(t, sim.NullAudio{}, New(nil, true))
}
