package core

import "testing"

func TestInputFramePressAndHold(t *testing.T) {
	f := NewInputFrame()
	f.Press(ActionFlap)
	f.Hold(ActionConfirm)

	if !f.Pressed(ActionFlap) || !f.JustPressed(ActionFlap) {
		t.Error("Press should set both held and edge state")
	}
	if !f.Pressed(ActionConfirm) || f.JustPressed(ActionConfirm) {
		t.Error("Hold should set held state only")
	}

	f.Clear()
	if f.Pressed(ActionFlap) || f.JustPressed(ActionFlap) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Pressed(ActionFlap) {
		t.Error("zero frame should report nothing pressed")
	}
	f.Press(ActionFlap)
	if !f.JustPressed(ActionFlap) {
		t.Error("zero frame should accept presses")
	}
}

func TestInputTrackerEdges(t *testing.T) {
	tr := NewInputTracker()

	tr.Hold(ActionFlap)
	first := tr.Frame()
	if !first.JustPressed(ActionFlap) {
		t.Fatal("first frame with key down should be an edge")
	}

	tr.Hold(ActionFlap)
	second := tr.Frame()
	if second.JustPressed(ActionFlap) {
		t.Error("key held across frames must not produce a second edge")
	}
	if !second.Pressed(ActionFlap) {
		t.Error("held key should still report Pressed")
	}

	third := tr.Frame()
	if third.Pressed(ActionFlap) {
		t.Error("released key should not be pressed")
	}

	tr.Hold(ActionFlap)
	if !tr.Frame().JustPressed(ActionFlap) {
		t.Error("pressing again after release should be an edge")
	}
}

func TestActionString(t *testing.T) {
	if ActionFlap.String() != "Flap" || Action(99).String() != "Unknown" {
		t.Error("unexpected action names")
	}
}
