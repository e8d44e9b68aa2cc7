package config

import (
	_ "embed"
)

//go:embed defaults/cacaroids.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the hardcoded default configuration.
// Used as the last-resort fallback if the embedded YAML fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Ship: ShipConfig{
			ThrustAccel:  40.0,
			TurnRate:     3.0,
			Drag:         0.5,
			MaxSpeed:     25.0,
			Radius:       1.2,
			NoseOffset:   2.0,
			FireCooldown: 0.25,
		},
		Projectile: ProjectileConfig{
			Speed:    40.0,
			Lifetime: 1.5,
			Radius:   0.5,
		},
		Hazards: HazardConfig{
			InitialCount: 5,
			SafeRadius:   15.0,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML.
func GetDefaultYAML() []byte {
	return defaultGameYAML
}
