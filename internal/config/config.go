// Package config provides YAML-based configuration loading and
// difficulty presets for the game.
package config

// GameConfig contains all tunable parameters for the simulation.
type GameConfig struct {
	Ship       ShipConfig       `yaml:"ship"`
	Projectile ProjectileConfig `yaml:"projectile"`
	Hazards    HazardConfig     `yaml:"hazards"`
}

// ShipConfig defines the player ship's kinematics and weapon timing.
type ShipConfig struct {
	ThrustAccel  float64 `yaml:"thrust_accel"`  // Acceleration along heading, cells/s^2
	TurnRate     float64 `yaml:"turn_rate"`     // Rotation speed, radians/s
	Drag         float64 `yaml:"drag"`          // Fraction of velocity kept per second (0..1)
	MaxSpeed     float64 `yaml:"max_speed"`     // Velocity magnitude cap, cells/s
	Radius       float64 `yaml:"radius"`        // Collision radius, cells
	NoseOffset   float64 `yaml:"nose_offset"`   // Muzzle distance from center, cells
	FireCooldown float64 `yaml:"fire_cooldown"` // Minimum seconds between shots (0 = every fire press)
}

// ProjectileConfig defines projectile motion parameters.
type ProjectileConfig struct {
	Speed    float64 `yaml:"speed"`    // Muzzle speed, cells/s
	Lifetime float64 `yaml:"lifetime"` // Seconds before a projectile expires
	Radius   float64 `yaml:"radius"`   // Collision radius, cells
}

// HazardConfig defines the initial hazard field.
type HazardConfig struct {
	InitialCount int     `yaml:"initial_count"` // Large hazards spawned at game start
	SafeRadius   float64 `yaml:"safe_radius"`   // Minimum spawn distance from the ship, cells
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyPreset adjusts the fixed starting conditions for a preset.
// There is no in-game progression; a preset only changes how the
// field starts out and how fast the ship can shoot.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Hazards.InitialCount = 3
		cfg.Ship.FireCooldown = 0.15
	case DifficultyHard:
		cfg.Hazards.InitialCount = 8
		cfg.Hazards.SafeRadius = 10
		cfg.Ship.FireCooldown = 0.35
	}
}

// GameID returns the score-table identifier for a preset.
// Normal play shares the base id so default scores stay comparable.
func GameID(preset DifficultyPreset) string {
	switch preset {
	case DifficultyEasy:
		return "cacaroids_easy"
	case DifficultyHard:
		return "cacaroids_hard"
	default:
		return "cacaroids"
	}
}
