package gamemath

// Rect is an axis-aligned rectangle given by its top-left corner and size.
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether p lies inside r, edges included.
func (r Rect) Contains(p Vec) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

func (r Rect) Center() Vec {
	return Vec{r.X + r.W/2, r.Y + r.H/2}
}

// Clip clamps p into r.
func (r Rect) Clip(p Vec) Vec {
	return Vec{
		X: Clamp(p.X, r.X, r.X+r.W),
		Y: Clamp(p.Y, r.Y, r.Y+r.H),
	}
}

// Outside reports whether a circle of radius rad at p lies entirely beyond
// one of the edges of r.
func (r Rect) Outside(p Vec, rad float64) bool {
	return p.X+rad < r.X || p.X-rad > r.X+r.W || p.Y+rad < r.Y || p.Y-rad > r.Y+r.H
}
