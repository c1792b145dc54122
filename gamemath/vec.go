package gamemath

import "math"

// Vec is a 2D point or direction in arena pixels.
type Vec struct {
	X, Y float64
}

func V(x, y float64) Vec {
	return Vec{X: x, Y: y}
}

func (a Vec) Add(b Vec) Vec {
	return Vec{a.X + b.X, a.Y + b.Y}
}

func (a Vec) Sub(b Vec) Vec {
	return Vec{a.X - b.X, a.Y - b.Y}
}

func (a Vec) Scale(s float64) Vec {
	return Vec{a.X * s, a.Y * s}
}

func (a Vec) Dot(b Vec) float64 {
	return a.X*b.X + a.Y*b.Y
}

// LenSq returns the squared length of the vector.
func (a Vec) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y
}

func (a Vec) Len() float64 {
	return math.Sqrt(a.LenSq())
}

// Sgn returns 1 for v >= 0 and -1 otherwise. Zero counts as positive.
func Sgn(v float64) float64 {
	if v >= 0 {
		return 1
	}
	return -1
}

// Normalize scales v to unit length in place and returns its original length.
// A zero vector is left unchanged and reports length 0.
func Normalize(v *Vec) float64 {
	l := v.Len()
	d := l
	if d == 0 {
		d = 1
	}
	v.X /= d
	v.Y /= d
	return l
}

// Dampen moves val toward zero by d, snapping to zero instead of crossing it.
func Dampen(val, d float64) float64 {
	s := Sgn(val)
	val -= s * d
	if Sgn(val) != s {
		return 0
	}
	return val
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(v, hi))
}
