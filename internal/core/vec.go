// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep
// simulation logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector used for positions, velocities, and headings.
type Vec2 struct {
	X, Y float64
}

// Add returns v + other.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns v - other.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Scale returns v multiplied by a scalar.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns the magnitude of the vector.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// Distance returns the Euclidean distance to another point.
func (v Vec2) Distance(other Vec2) float64 {
	return v.Sub(other).Length()
}

// DistanceSquared returns the squared distance to another point.
// Use this when comparing distances to avoid the sqrt cost.
func (v Vec2) DistanceSquared(other Vec2) float64 {
	dx := other.X - v.X
	dy := other.Y - v.Y
	return dx*dx + dy*dy
}

// Dot returns the dot product with another vector.
func (v Vec2) Dot(other Vec2) float64 {
	return v.X*other.X + v.Y*other.Y
}

// Normalize returns a unit vector in the same direction.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return v.Scale(1 / l)
}

// Rotate returns the vector rotated by angle radians.
func (v Vec2) Rotate(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// FromAngle returns a unit vector pointing at angle radians.
// Angle 0 points right, increasing clockwise in screen coordinates.
func FromAngle(angle float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{X: cos, Y: sin}
}

// Wrap maps a position onto the torus [0,w) x [0,h) so entities leaving
// one screen edge re-enter the opposite edge. Works for any distance
// off-screen, not just one world-width.
func Wrap(pos Vec2, w, h float64) Vec2 {
	return Vec2{
		X: wrapCoord(pos.X, w),
		Y: wrapCoord(pos.Y, h),
	}
}

func wrapCoord(v, max float64) float64 {
	if max <= 0 {
		return 0
	}
	v = math.Mod(v, max)
	if v < 0 {
		v += max
	}
	return v
}

// CirclesOverlap reports whether two circles intersect.
func CirclesOverlap(a Vec2, ra float64, b Vec2, rb float64) bool {
	minDist := ra + rb
	return a.DistanceSquared(b) < minDist*minDist
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
