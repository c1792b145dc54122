package gamemath

import "math"

const TwoPi = 2 * math.Pi

// Angles are measured clockwise from the +Y axis: heading a points along
// Rotate(a, (0, 1)) = (sin a, cos a).

// Rotate rotates p by angle a in the arena's heading convention.
func Rotate(a float64, p Vec) Vec {
	s, c := math.Sincos(a)
	return Vec{
		X: p.X*c + p.Y*s,
		Y: p.Y*c - p.X*s,
	}
}

// AngleFromVector returns the heading of v in [0, 2π) and its length.
// A zero vector has heading 0.
func AngleFromVector(v Vec) (float64, float64) {
	l := v.Len()
	a := 0.0
	if l > 0 {
		a = math.Acos(Clamp(v.Y/l, -1, 1))
	}
	if v.X < 0 {
		a = TwoPi - a
	}
	if a >= TwoPi {
		a -= TwoPi
	}
	return a, l
}

// AddAngle returns a0+a1 wrapped into [0, 2π).
func AddAngle(a0, a1 float64) float64 {
	a := a0 + a1
	for a < 0 {
		a += TwoPi
	}
	for a >= TwoPi {
		a -= TwoPi
	}
	return a
}

// DeltaAngle returns the signed shortest rotation that takes a0 to a1, in
// (-π, π]. A half turn is reported as +π whichever way it is measured.
func DeltaAngle(a0, a1 float64) float64 {
	a := a1 - a0
	b := math.Abs(a)
	c := TwoPi - b
	if b < c {
		return a
	}
	d := c * -Sgn(a)
	if d <= -math.Pi {
		return math.Pi
	}
	return d
}
