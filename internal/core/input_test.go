package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	var f InputFrame
	if f.Has(ActionConfirm) {
		t.Error("zero frame should have no actions")
	}

	f.Set(ActionConfirm)
	f.Set(ActionLeft)
	if !f.Has(ActionConfirm) || !f.Has(ActionLeft) {
		t.Error("expected Confirm and Left to be set")
	}
	if f.Has(ActionBack) {
		t.Error("Back should not be set")
	}

	f.Clear()
	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
}

func TestInputFramePointerOrder(t *testing.T) {
	f := NewInputFrame()
	f.AddPointer(PointerPress, 3, 4)
	f.AddPointer(PointerRelease, 7, 4)

	if len(f.Pointer) != 2 {
		t.Fatalf("expected 2 pointer events, got %d", len(f.Pointer))
	}
	if f.Pointer[0] != (PointerEvent{Kind: PointerPress, X: 3, Y: 4}) {
		t.Errorf("first event = %+v", f.Pointer[0])
	}
	if f.Pointer[1].Kind != PointerRelease || f.Pointer[1].X != 7 {
		t.Errorf("second event = %+v", f.Pointer[1])
	}

	f.Clear()
	if len(f.Pointer) != 0 || f.Empty() != true {
		t.Error("pointer events should be cleared")
	}
}

func TestActionString(t *testing.T) {
	if ActionConfirm.String() != "Confirm" {
		t.Errorf("ActionConfirm.String() = %q", ActionConfirm.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
