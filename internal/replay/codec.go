// Package replay records the per-frame inputs of a run and re-simulates
// them. The simulation is deterministic, so (variant, config, seed, screen
// size, frames) fully determines a run.
package replay

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// Wire format, little-endian:
//
//	magic   [4]byte "FLPR"
//	version uint8
//	count   uint32
//	frames  count × { dt float32, flags uint8 }
const (
	magic   = "FLPR"
	version = 1

	headerSize = len(magic) + 1 + 4
	frameSize  = 4 + 1
)

// Input flags of one frame.
const (
	FlagFlapHeld uint8 = 1 << iota
	FlagFlapEdge
	FlagConfirmHeld
	FlagConfirmEdge
)

var (
	ErrBadMagic    = errors.New("replay: not a recording")
	ErrBadVersion  = errors.New("replay: unsupported version")
	ErrTruncated   = errors.New("replay: truncated recording")
	ErrTrailerData = errors.New("replay: trailing data after frames")
)

// Frame is the recorded input of one simulation step.
type Frame struct {
	DT    float32
	Flags uint8
}

// NewFrame captures dt and the flap and confirm state of an input frame.
func NewFrame(dt float64, in core.InputFrame) Frame {
	f := Frame{DT: float32(dt)}
	if in.Pressed(core.ActionFlap) {
		f.Flags |= FlagFlapHeld
	}
	if in.JustPressed(core.ActionFlap) {
		f.Flags |= FlagFlapEdge
	}
	if in.Pressed(core.ActionConfirm) {
		f.Flags |= FlagConfirmHeld
	}
	if in.JustPressed(core.ActionConfirm) {
		f.Flags |= FlagConfirmEdge
	}
	return f
}

// Seconds returns dt as the simulation sees it.
func (f Frame) Seconds() float64 {
	return float64(f.DT)
}

// Input rebuilds the input frame.
func (f Frame) Input() core.InputFrame {
	in := core.NewInputFrame()
	restore := func(a core.Action, held, edge uint8) {
		switch {
		case f.Flags&edge != 0:
			in.Press(a)
		case f.Flags&held != 0:
			in.Hold(a)
		}
	}
	restore(core.ActionFlap, FlagFlapHeld, FlagFlapEdge)
	restore(core.ActionConfirm, FlagConfirmHeld, FlagConfirmEdge)
	return in
}

// Encode serializes frames into the recording format.
func Encode(frames []Frame) []byte {
	buf := make([]byte, 0, headerSize+len(frames)*frameSize)
	buf = append(buf, magic...)
	buf = append(buf, version)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(frames)))
	for _, f := range frames {
		buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(f.DT))
		buf = append(buf, f.Flags)
	}
	return buf
}

// Decode parses a recording produced by Encode.
func Decode(data []byte) ([]Frame, error) {
	r := bytes.NewReader(data)

	var head [headerSize]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return nil, ErrTruncated
	}
	if string(head[:len(magic)]) != magic {
		return nil, ErrBadMagic
	}
	if v := head[len(magic)]; v != version {
		return nil, fmt.Errorf("%w: %d", ErrBadVersion, v)
	}
	count := binary.LittleEndian.Uint32(head[len(magic)+1:])

	if uint64(r.Len()) < uint64(count)*frameSize {
		return nil, fmt.Errorf("%w: %d frames declared, %d bytes left", ErrTruncated, count, r.Len())
	}

	frames := make([]Frame, count)
	for i := range frames {
		var dt float32
		if err := binary.Read(r, binary.LittleEndian, &dt); err != nil {
			return nil, fmt.Errorf("replay: frame %d: %w", i, err)
		}
		flags, err := r.ReadByte()
		if err != nil {
			return nil, fmt.Errorf("replay: frame %d: %w", i, err)
		}
		frames[i] = Frame{DT: dt, Flags: flags}
	}
	if r.Len() != 0 {
		return nil, ErrTrailerData
	}
	return frames, nil
}
