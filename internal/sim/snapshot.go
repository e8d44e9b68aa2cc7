package sim

import "github.com/fcarvajalbrown/Cacaroids/internal/core"

// ShipView is the read-only rendering view of the ship.
type ShipView struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Heading float64
	Alive   bool
}

// HazardView is the read-only rendering view of one hazard.
type HazardView struct {
	Pos      core.Vec2
	Tier     Tier
	Radius   float64
	Rotation float64
}

// ProjectileView is the read-only rendering view of one projectile.
type ProjectileView struct {
	Pos      core.Vec2
	Lifetime float64
}

// Snapshot captures the complete observable game state for rendering
// and determinism testing. It copies values; holding a snapshot never
// aliases live simulation state.
type Snapshot struct {
	Tick        uint64
	Ship        ShipView
	Hazards     []HazardView
	Projectiles []ProjectileView
	Phase       Phase
	Score       int
	Paused      bool
}

// Snapshot returns a read-only projection of the current state.
// Dead entities awaiting the next sweep are excluded; the ship is
// always included with its alive flag so the final frame can still
// show the wreck.
func (s *Simulation) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   s.tick,
		Phase:  s.phase,
		Score:  s.score,
		Paused: s.paused,
		Ship: ShipView{
			Pos:     s.ship.Pos,
			Vel:     s.ship.Vel,
			Heading: s.ship.Heading,
			Alive:   s.ship.Alive,
		},
	}

	snap.Hazards = make([]HazardView, 0, len(s.hazards))
	for _, h := range s.hazards {
		if !h.Alive {
			continue
		}
		snap.Hazards = append(snap.Hazards, HazardView{
			Pos:      h.Pos,
			Tier:     h.Tier,
			Radius:   h.Radius(),
			Rotation: h.Rotation,
		})
	}

	snap.Projectiles = make([]ProjectileView, 0, len(s.projectiles))
	for _, p := range s.projectiles {
		if !p.Alive {
			continue
		}
		snap.Projectiles = append(snap.Projectiles, ProjectileView{
			Pos:      p.Pos,
			Lifetime: p.Lifetime,
		})
	}

	return snap
}
