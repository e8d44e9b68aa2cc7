package core

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 1, Y: 2}
	b := Vec2{X: 3, Y: -4}

	sum := a.Add(b)
	if sum.X != 4 || sum.Y != -2 {
		t.Errorf("Add() = %v, expected {4 -2}", sum)
	}

	diff := a.Sub(b)
	if diff.X != -2 || diff.Y != 6 {
		t.Errorf("Sub() = %v, expected {-2 6}", diff)
	}

	scaled := a.Scale(2.5)
	if scaled.X != 2.5 || scaled.Y != 5 {
		t.Errorf("Scale() = %v, expected {2.5 5}", scaled)
	}

	if dot := a.Dot(b); dot != -5 {
		t.Errorf("Dot() = %v, expected -5", dot)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{X: 3, Y: 4}
	if !almostEqual(v.Length(), 5) {
		t.Errorf("Length() = %f, expected 5", v.Length())
	}

	if !almostEqual(v.Distance(Vec2{X: 0, Y: 0}), 5) {
		t.Errorf("Distance to origin should be 5")
	}

	if !almostEqual(v.DistanceSquared(Vec2{}), 25) {
		t.Errorf("DistanceSquared to origin should be 25")
	}
}

func TestVec2Normalize(t *testing.T) {
	v := Vec2{X: 10, Y: 0}.Normalize()
	if !almostEqual(v.X, 1) || !almostEqual(v.Y, 0) {
		t.Errorf("Normalize() = %v, expected {1 0}", v)
	}

	// Zero vector stays zero
	z := Vec2{}.Normalize()
	if z.X != 0 || z.Y != 0 {
		t.Errorf("Normalize of zero vector should be zero, got %v", z)
	}
}

func TestVec2Rotate(t *testing.T) {
	v := Vec2{X: 1, Y: 0}

	r := v.Rotate(math.Pi / 2)
	if !almostEqual(r.X, 0) || !almostEqual(r.Y, 1) {
		t.Errorf("Rotate(pi/2) = %v, expected {0 1}", r)
	}

	full := v.Rotate(2 * math.Pi)
	if !almostEqual(full.X, 1) || !almostEqual(full.Y, 0) {
		t.Errorf("Rotate(2pi) = %v, expected {1 0}", full)
	}
}

func TestFromAngle(t *testing.T) {
	right := FromAngle(0)
	if !almostEqual(right.X, 1) || !almostEqual(right.Y, 0) {
		t.Errorf("FromAngle(0) = %v, expected {1 0}", right)
	}

	down := FromAngle(math.Pi / 2)
	if !almostEqual(down.X, 0) || !almostEqual(down.Y, 1) {
		t.Errorf("FromAngle(pi/2) = %v, expected {0 1}", down)
	}
}

func TestWrap(t *testing.T) {
	const w, h = 80.0, 24.0

	tests := []struct {
		name string
		in   Vec2
		want Vec2
	}{
		{"inside unchanged", Vec2{X: 40, Y: 12}, Vec2{X: 40, Y: 12}},
		{"past right edge", Vec2{X: 81, Y: 12}, Vec2{X: 1, Y: 12}},
		{"past left edge", Vec2{X: -1, Y: 12}, Vec2{X: 79, Y: 12}},
		{"past bottom edge", Vec2{X: 40, Y: 25}, Vec2{X: 40, Y: 1}},
		{"past top edge", Vec2{X: 40, Y: -2}, Vec2{X: 40, Y: 22}},
		{"far off-screen", Vec2{X: 245, Y: -50}, Vec2{X: 5, Y: 22}},
		{"origin unchanged", Vec2{X: 0, Y: 0}, Vec2{X: 0, Y: 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Wrap(tc.in, w, h)
			if !almostEqual(got.X, tc.want.X) || !almostEqual(got.Y, tc.want.Y) {
				t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestWrapInvariant(t *testing.T) {
	// For arbitrary positions the result always lands in [0,w) x [0,h).
	const w, h = 80.0, 24.0
	positions := []Vec2{
		{X: -1000.5, Y: 3000.25},
		{X: 79.999, Y: 23.999},
		{X: 80, Y: 24},
		{X: -0.0001, Y: -0.0001},
	}
	for _, p := range positions {
		got := Wrap(p, w, h)
		if got.X < 0 || got.X >= w || got.Y < 0 || got.Y >= h {
			t.Errorf("Wrap(%v) = %v escapes [0,%v)x[0,%v)", p, got, w, h)
		}
	}
}

func TestCirclesOverlap(t *testing.T) {
	tests := []struct {
		name     string
		a        Vec2
		ra       float64
		b        Vec2
		rb       float64
		expected bool
	}{
		{"overlapping", Vec2{X: 0, Y: 0}, 5, Vec2{X: 3, Y: 0}, 5, true},
		{"touching (no overlap)", Vec2{X: 0, Y: 0}, 5, Vec2{X: 10, Y: 0}, 5, false},
		{"far apart", Vec2{X: 0, Y: 0}, 1, Vec2{X: 50, Y: 50}, 1, false},
		{"contained", Vec2{X: 0, Y: 0}, 10, Vec2{X: 1, Y: 1}, 1, true},
		{"same center", Vec2{X: 5, Y: 5}, 2, Vec2{X: 5, Y: 5}, 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := CirclesOverlap(tc.a, tc.ra, tc.b, tc.rb)
			if result != tc.expected {
				t.Errorf("CirclesOverlap() = %v, expected %v", result, tc.expected)
			}
			// Also test symmetry
			reversed := CirclesOverlap(tc.b, tc.rb, tc.a, tc.ra)
			if reversed != tc.expected {
				t.Errorf("CirclesOverlap() (reversed) = %v, expected %v", reversed, tc.expected)
			}
		})
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0.0, 10.0, 5.5},
		{-5.5, 0.0, 10.0, 0.0},
		{15.5, 0.0, 10.0, 10.0},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%f, %f, %f) = %f, expected %f", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
