package sim

import (
	"math"

	"github.com/fcarvajalbrown/Cacaroids/internal/config"
	"github.com/fcarvajalbrown/Cacaroids/internal/core"
)

// Ship is the player-controlled vessel. It is pure kinematics: the
// simulation applies collision consequences, the ship only moves.
type Ship struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Heading float64 // radians, 0 = pointing right
	Alive   bool

	cfg          config.ShipConfig
	fireCooldown float64 // seconds until the next shot is allowed
}

// FireRequest describes where a projectile should spawn and in which
// direction it should travel. Returned by TryFire; the simulation owns
// actual projectile creation.
type FireRequest struct {
	Pos core.Vec2
	Dir core.Vec2
}

// NewShip creates a live ship at the given position, pointing up,
// with no momentum.
func NewShip(pos core.Vec2, cfg config.ShipConfig) *Ship {
	return &Ship{
		Pos:     pos,
		Heading: -math.Pi / 2, // pointing up
		Alive:   true,
		cfg:     cfg,
	}
}

// Update applies one tick of input-driven kinematics: rotation, thrust
// along the heading, exponential drag, max-speed clamp, and screen wrap.
func (s *Ship) Update(in core.InputFrame, dt, worldW, worldH float64) {
	if in.Has(core.ActionRotateLeft) {
		s.Heading -= s.cfg.TurnRate * dt
	}
	if in.Has(core.ActionRotateRight) {
		s.Heading += s.cfg.TurnRate * dt
	}

	// Normalize heading to [-pi, pi]
	for s.Heading > math.Pi {
		s.Heading -= 2 * math.Pi
	}
	for s.Heading < -math.Pi {
		s.Heading += 2 * math.Pi
	}

	if in.Has(core.ActionThrust) {
		s.Vel = s.Vel.Add(core.FromAngle(s.Heading).Scale(s.cfg.ThrustAccel * dt))
	}

	// Exponential drag: keep cfg.Drag of the speed per second of coasting.
	// Applied every tick so momentum decays but never snaps to zero.
	if s.cfg.Drag > 0 && s.cfg.Drag < 1 {
		s.Vel = s.Vel.Scale(math.Pow(s.cfg.Drag, dt))
	}

	if speed := s.Vel.Length(); speed > s.cfg.MaxSpeed {
		s.Vel = s.Vel.Scale(s.cfg.MaxSpeed / speed)
	}

	s.Pos = core.Wrap(s.Pos.Add(s.Vel.Scale(dt)), worldW, worldH)

	if s.fireCooldown > 0 {
		s.fireCooldown -= dt
	}
}

// TryFire returns a FireRequest if fire is pressed and the fire cooldown
// has elapsed. The request spawns at the ship's nose, travelling along
// the heading. Consuming the cooldown is the only state this touches;
// the projectile itself is created by the simulation.
func (s *Ship) TryFire(in core.InputFrame) (FireRequest, bool) {
	if !in.Has(core.ActionFire) || s.fireCooldown > 0 {
		return FireRequest{}, false
	}

	s.fireCooldown = s.cfg.FireCooldown

	dir := core.FromAngle(s.Heading)
	return FireRequest{
		Pos: s.Pos.Add(dir.Scale(s.cfg.NoseOffset)),
		Dir: dir,
	}, true
}

// Radius returns the ship's collision radius.
func (s *Ship) Radius() float64 {
	return s.cfg.Radius
}
