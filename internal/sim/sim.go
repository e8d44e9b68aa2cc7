package sim

import (
	"math"
	"math/rand"

	"github.com/fcarvajalbrown/Cacaroids/internal/config"
	"github.com/fcarvajalbrown/Cacaroids/internal/core"
)

// Phase is the top-level game state.
type Phase string

const (
	PhasePlaying  Phase = "playing"
	PhaseGameOver Phase = "gameover"
	PhaseVictory  Phase = "victory"
)

// Ticks longer than this are clamped; protects the state machine from a
// stalled frame clock.
const maxTickSeconds = 0.25

// Simulation owns the ship, the hazard and projectile collections, the
// score, and the game phase. All mutation happens inside Tick; the
// platform reads state between ticks via Snapshot, State, and Render.
type Simulation struct {
	runtime core.RuntimeConfig
	cfg     config.GameConfig
	rng     *rand.Rand

	worldW float64
	worldH float64

	ship        *Ship
	hazards     []*Hazard
	projectiles []*Projectile

	phase  Phase
	score  int
	paused bool
	tick   uint64
}

// New creates a simulation with the given runtime (world bounds, seed)
// and gameplay configuration, ready to play.
func New(runtime core.RuntimeConfig, cfg config.GameConfig) *Simulation {
	s := &Simulation{cfg: cfg}
	s.Reset(runtime)
	return s
}

// Reset restores the initial configuration: ship at the canonical start
// pose with zero velocity, a fresh field of Large hazards placed away
// from the ship, no projectiles, zero score, phase Playing.
func (s *Simulation) Reset(runtime core.RuntimeConfig) {
	s.runtime = runtime
	s.rng = rand.New(rand.NewSource(runtime.Seed))
	s.worldW = float64(runtime.ScreenW)
	s.worldH = float64(runtime.ScreenH)

	start := core.Vec2{X: s.worldW / 2, Y: s.worldH / 2}
	s.ship = NewShip(start, s.cfg.Ship)
	s.projectiles = nil
	s.hazards = s.spawnField(s.cfg.Hazards.InitialCount, start)

	s.phase = PhasePlaying
	s.score = 0
	s.paused = false
	s.tick = 0
}

// spawnField places count Large hazards at random positions, retrying
// each until it lands outside the safe radius around the ship so the
// player is never destroyed on the first tick.
func (s *Simulation) spawnField(count int, avoid core.Vec2) []*Hazard {
	safe := s.cfg.Hazards.SafeRadius
	// A safe radius larger than the world can satisfy makes placement
	// impossible; cap it below the half-diagonal.
	if limit := math.Hypot(s.worldW, s.worldH) / 2 * 0.8; safe > limit {
		safe = limit
	}

	hazards := make([]*Hazard, 0, count)
	for i := 0; i < count; i++ {
		var pos core.Vec2
		for attempt := 0; attempt < 100; attempt++ {
			pos = core.Vec2{
				X: s.rng.Float64() * s.worldW,
				Y: s.rng.Float64() * s.worldH,
			}
			if pos.Distance(avoid) > safe {
				break
			}
		}
		hazards = append(hazards, NewHazard(pos, TierLarge, -1, s.rng))
	}
	return hazards
}

// Tick advances the simulation by dt seconds of game time.
//
// Outside Playing only the restart input is honored. During play the
// order is: ship update and fire, projectile updates, hazard updates,
// projectile/hazard collisions, ship/hazard collisions, dead-entity
// sweep with fragment insertion, victory check.
func (s *Simulation) Tick(in core.InputFrame, dt float64) {
	dt = sanitizeDT(dt)
	s.tick++

	if s.phase != PhasePlaying {
		if in.Has(core.ActionRestart) {
			// Deterministic restart: the next seed derives from the
			// current stream so replays with one seed cover restarts.
			next := s.runtime
			next.Seed = s.rng.Int63()
			s.Reset(next)
		}
		return
	}

	if in.Has(core.ActionPause) {
		s.paused = !s.paused
	}
	if s.paused {
		return
	}

	s.ship.Update(in, dt, s.worldW, s.worldH)
	if req, ok := s.ship.TryFire(in); ok {
		s.projectiles = append(s.projectiles, NewProjectile(req.Pos, req.Dir, s.cfg.Projectile))
	}

	for _, p := range s.projectiles {
		p.Update(dt, s.worldW, s.worldH)
	}
	for _, h := range s.hazards {
		h.Update(dt, s.worldW, s.worldH)
	}

	// Projectile vs hazard. Fragments are collected and inserted after
	// the scan so children spawned this tick are never hit this tick.
	// A projectile destroys at most one hazard: first overlap in
	// collection order wins, then the projectile is spent.
	var children []*Hazard
	for _, p := range s.projectiles {
		if !p.Alive {
			continue
		}
		for _, h := range s.hazards {
			if !h.Alive {
				continue
			}
			if core.CirclesOverlap(p.Pos, p.Radius, h.Pos, h.Radius()) {
				p.Alive = false
				h.Alive = false
				s.score += h.Tier.Points()
				children = append(children, h.Split(s.rng)...)
				break
			}
		}
	}

	// Fragments join the field before the ship pass: a hazard shot down
	// on top of the ship still destroys it this tick, through its
	// children spawned at the parent's position.
	s.hazards = append(s.hazards, children...)

	// Ship vs hazard. Game over halts the tick; dead entities stay in
	// place so the final frame still shows them.
	if s.ship.Alive {
		for _, h := range s.hazards {
			if !h.Alive {
				continue
			}
			if core.CirclesOverlap(s.ship.Pos, s.ship.Radius(), h.Pos, h.Radius()) {
				s.ship.Alive = false
				s.phase = PhaseGameOver
				return
			}
		}
	}

	s.projectiles = retainProjectiles(s.projectiles)
	s.hazards = retainHazards(s.hazards)

	if len(s.hazards) == 0 {
		s.phase = PhaseVictory
	}
}

// sanitizeDT clamps dt to a valid range. Negative or NaN dt freezes the
// tick rather than corrupting entity state.
func sanitizeDT(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > maxTickSeconds {
		return maxTickSeconds
	}
	return dt
}

func retainProjectiles(in []*Projectile) []*Projectile {
	out := in[:0]
	for _, p := range in {
		if p.Alive {
			out = append(out, p)
		}
	}
	return out
}

func retainHazards(in []*Hazard) []*Hazard {
	out := in[:0]
	for _, h := range in {
		if h.Alive {
			out = append(out, h)
		}
	}
	return out
}

// Phase returns the current game phase.
func (s *Simulation) Phase() Phase {
	return s.phase
}

// Score returns the current score.
func (s *Simulation) Score() int {
	return s.score
}

// State returns the platform-facing game state. Victory and GameOver
// both end the session, so both report GameOver for score saving and
// restart handling.
func (s *Simulation) State() core.GameState {
	return core.GameState{
		Score:    s.score,
		GameOver: s.phase != PhasePlaying,
		Paused:   s.paused,
	}
}
