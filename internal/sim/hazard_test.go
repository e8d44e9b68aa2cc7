package sim

import (
	"math/rand"
	"testing"

	"github.com/fcarvajalbrown/Cacaroids/internal/core"
)

func TestHazardSplitConservation(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	tests := []struct {
		tier      Tier
		wantCount int
		wantChild Tier
	}{
		{TierLarge, 2, TierMedium},
		{TierMedium, 2, TierSmall},
		{TierSmall, 0, 0},
	}

	for _, tt := range tests {
		h := NewHazard(core.Vec2{X: 30, Y: 10}, tt.tier, -1, rng)
		children := h.Split(rng)

		if len(children) != tt.wantCount {
			t.Errorf("%v.Split() produced %d fragments, want %d",
				tt.tier, len(children), tt.wantCount)
			continue
		}
		for _, c := range children {
			if c.Tier != tt.wantChild {
				t.Errorf("%v fragment has tier %v, want %v", tt.tier, c.Tier, tt.wantChild)
			}
			if c.Pos != h.Pos {
				t.Errorf("fragment spawned at %+v, want parent position %+v", c.Pos, h.Pos)
			}
			if !c.Alive {
				t.Error("fragment spawned dead")
			}
		}
	}
}

func TestHazardSplitDiverges(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		h := NewHazard(core.Vec2{X: 30, Y: 10}, TierLarge, -1, rng)
		children := h.Split(rng)

		dot := children[0].Vel.Normalize().Dot(children[1].Vel.Normalize())
		if dot > 1e-6 {
			t.Fatalf("fragment directions nearly parallel (dot=%v) at iteration %d", dot, i)
		}
	}
}

func TestHazardSplitSpeed(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	h := NewHazard(core.Vec2{X: 30, Y: 10}, TierLarge, -1, rng)
	for _, c := range h.Split(rng) {
		if got, want := c.Vel.Length(), TierMedium.Speed(); got < want-1e-9 || got > want+1e-9 {
			t.Errorf("fragment speed = %v, want tier speed %v", got, want)
		}
	}
}

func TestHazardUpdateWraps(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	h := NewHazard(core.Vec2{X: 79, Y: 23}, TierSmall, 0, rng) // heading right, fast tier

	for i := 0; i < 500; i++ {
		h.Update(1.0/30.0, 80, 24)
		if h.Pos.X < 0 || h.Pos.X >= 80 || h.Pos.Y < 0 || h.Pos.Y >= 24 {
			t.Fatalf("hazard left the world at step %d: %+v", i, h.Pos)
		}
	}
}

func TestHazardFixedHeading(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	h := NewHazard(core.Vec2{X: 10, Y: 10}, TierMedium, 0, rng)

	want := core.Vec2{X: TierMedium.Speed(), Y: 0}
	if h.Vel.Distance(want) > 1e-9 {
		t.Errorf("hazard with angle 0 has Vel %+v, want %+v", h.Vel, want)
	}

	// Velocity is constant: updates never steer a hazard.
	before := h.Vel
	for i := 0; i < 100; i++ {
		h.Update(1.0/60.0, 80, 24)
	}
	if h.Vel != before {
		t.Errorf("hazard velocity changed from %+v to %+v", before, h.Vel)
	}
}
