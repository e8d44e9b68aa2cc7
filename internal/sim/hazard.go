package sim

import (
	"math"
	"math/rand"

	"github.com/fcarvajalbrown/Cacaroids/internal/core"
)

// Hazard is a drifting obstacle. It moves at constant velocity and, when
// destroyed, splits into two fragments of the next smaller tier unless it
// is already Small.
type Hazard struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Tier     Tier
	Rotation float64 // visual spin angle, no collision effect
	Spin     float64 // radians per second
	Alive    bool
}

// NewHazard creates a hazard at pos moving in direction angle at the
// tier's fixed speed. A negative angle picks a random direction.
func NewHazard(pos core.Vec2, tier Tier, angle float64, rng *rand.Rand) *Hazard {
	if angle < 0 {
		angle = rng.Float64() * 2 * math.Pi
	}

	return &Hazard{
		Pos:      pos,
		Vel:      core.FromAngle(angle).Scale(tier.Speed()),
		Tier:     tier,
		Rotation: rng.Float64() * 2 * math.Pi,
		Spin:     (rng.Float64() - 0.5) * 4.0, // -2..2 rad/s
		Alive:    true,
	}
}

// Update advances the hazard by dt: constant velocity, screen wrap, and
// visual rotation. No drag, no steering.
func (h *Hazard) Update(dt, worldW, worldH float64) {
	h.Rotation += h.Spin * dt
	h.Pos = core.Wrap(h.Pos.Add(h.Vel.Scale(dt)), worldW, worldH)
}

// Split returns the fragments spawned when this hazard is destroyed:
// exactly two hazards of the next smaller tier at the parent's position,
// or nil for a Small hazard. The two directions always diverge: the
// second is offset from the first by between 90 and 270 degrees.
// The caller removes the parent.
func (h *Hazard) Split(rng *rand.Rand) []*Hazard {
	child, ok := h.Tier.Child()
	if !ok {
		return nil
	}

	first := rng.Float64() * 2 * math.Pi
	second := first + math.Pi/2 + rng.Float64()*math.Pi

	return []*Hazard{
		NewHazard(h.Pos, child, first, rng),
		NewHazard(h.Pos, child, second, rng),
	}
}

// Radius returns the hazard's collision radius.
func (h *Hazard) Radius() float64 {
	return h.Tier.Radius()
}
