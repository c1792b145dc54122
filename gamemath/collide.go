package gamemath

// SegmentVsCircle reports whether the segment p1-p2 passes strictly within
// r of c. The segment is treated as closed: the nearest point is clamped to
// its endpoints, so a degenerate segment is a point test.
func SegmentVsCircle(p1, p2, c Vec, r float64) bool {
	seg := p2.Sub(p1)
	dir := seg
	l := Normalize(&dir)
	t := Clamp(c.Sub(p1).Dot(dir), 0, l)
	closest := p1.Add(dir.Scale(t))
	return c.Sub(closest).LenSq() < r*r
}

// CirclesOverlap reports whether two circles touch or overlap.
func CirclesOverlap(c0 Vec, r0 float64, c1 Vec, r1 float64) bool {
	rr := r0 + r1
	return c0.Sub(c1).LenSq() <= rr*rr
}
