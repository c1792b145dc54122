package gamemath

// Mesh is a wireframe in unit space: vertices plus the index pairs joined
// by line segments.
type Mesh struct {
	Verts []Vec
	Segs  [][2]int
}

// TransformPoint maps a unit-space vertex into the arena.
func TransformPoint(v Vec, pos Vec, angle, scale float64) Vec {
	return Rotate(angle, v).Scale(scale).Add(pos)
}

// Transform writes every vertex of m, rotated, scaled and translated, into
// dst (reusing its backing array) and returns it.
func (m *Mesh) Transform(dst []Vec, pos Vec, angle, scale float64) []Vec {
	dst = dst[:0]
	for _, v := range m.Verts {
		dst = append(dst, TransformPoint(v, pos, angle, scale))
	}
	return dst
}
