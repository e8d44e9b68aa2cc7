// Package sim implements the game simulation: entity motion, collision
// resolution, hazard splitting, scoring, and the Playing/GameOver/Victory
// state machine. It is pure logic driven by per-tick input frames; all
// I/O and timing lives in the platform layer.
package sim

// Tier is a hazard's size category. Radius, speed, and point value are a
// deterministic function of the tier: larger hazards are slower, easier
// to hit, and worth fewer points.
type Tier int

const (
	TierSmall Tier = iota + 1
	TierMedium
	TierLarge
)

var tierRadii = map[Tier]float64{
	TierSmall:  1.5,
	TierMedium: 3.0,
	TierLarge:  5.0,
}

var tierSpeeds = map[Tier]float64{
	TierSmall:  16.0,
	TierMedium: 10.0,
	TierLarge:  6.0,
}

var tierPoints = map[Tier]int{
	TierSmall:  100,
	TierMedium: 50,
	TierLarge:  20,
}

// Radius returns the collision radius in cells.
func (t Tier) Radius() float64 {
	return tierRadii[t]
}

// Speed returns the movement speed in cells per second.
func (t Tier) Speed() float64 {
	return tierSpeeds[t]
}

// Points returns the score awarded when a hazard of this tier is destroyed.
func (t Tier) Points() int {
	return tierPoints[t]
}

// Child returns the tier of the fragments spawned when a hazard of this
// tier is destroyed. Small hazards leave no fragments.
func (t Tier) Child() (Tier, bool) {
	switch t {
	case TierLarge:
		return TierMedium, true
	case TierMedium:
		return TierSmall, true
	default:
		return 0, false
	}
}

// String returns a human-readable tier name.
func (t Tier) String() string {
	switch t {
	case TierLarge:
		return "large"
	case TierMedium:
		return "medium"
	case TierSmall:
		return "small"
	default:
		return "unknown"
	}
}
