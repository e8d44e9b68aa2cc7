package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionFire) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionFire)
	f.Set(ActionThrust)
	if !f.Has(ActionFire) || !f.Has(ActionThrust) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRotateLeft) {
		t.Error("unset action reported as triggered")
	}

	f.Clear()
	if f.Has(ActionFire) || f.Has(ActionThrust) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameSetOnZeroValue(t *testing.T) {
	var f InputFrame

	f.Set(ActionRotateRight)
	if !f.Has(ActionRotateRight) {
		t.Error("Set on a zero-value frame should allocate and record the action")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionFire)

	c := f.Clone()
	if !c.Has(ActionFire) {
		t.Error("clone should carry the original's actions")
	}

	// Mutating the clone must not leak back into the original
	c.Set(ActionThrust)
	c.Clear()
	if !f.Has(ActionFire) {
		t.Error("clearing the clone modified the original frame")
	}
}
