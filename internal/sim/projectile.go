package sim

import (
	"github.com/fcarvajalbrown/Cacaroids/internal/config"
	"github.com/fcarvajalbrown/Cacaroids/internal/core"
)

// Projectile is a bullet fired by the ship: straight-line motion at a
// fixed muzzle speed with a finite lifetime.
type Projectile struct {
	Pos      core.Vec2
	Vel      core.Vec2
	Lifetime float64 // seconds remaining
	Radius   float64
	Alive    bool
}

// NewProjectile creates a projectile at pos travelling along dir.
// dir is expected to be a unit vector (the ship's heading).
func NewProjectile(pos, dir core.Vec2, cfg config.ProjectileConfig) *Projectile {
	return &Projectile{
		Pos:      pos,
		Vel:      dir.Scale(cfg.Speed),
		Lifetime: cfg.Lifetime,
		Radius:   cfg.Radius,
		Alive:    true,
	}
}

// Update advances the projectile by dt. The lifetime is decremented
// first, so a projectile with lifetime L dies after exactly ceil(L/dt)
// ticks under a constant dt.
func (p *Projectile) Update(dt, worldW, worldH float64) {
	p.Lifetime -= dt
	if p.Lifetime <= 0 {
		p.Alive = false
		return
	}

	p.Pos = core.Wrap(p.Pos.Add(p.Vel.Scale(dt)), worldW, worldH)
}
