package config

import "github.com/automoto/ripoff/gamemath"

// Wireframes in unit space. Vertex 0 is the muzzle for machines that shoot.
var (
	CrateMesh = gamemath.Mesh{
		Verts: []gamemath.Vec{{X: -0.5, Y: 0}, {X: 0, Y: 0.75}, {X: 0.5, Y: 0}, {X: 0, Y: -0.75}},
		Segs:  [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {0, 2}},
	}
	PlayerMesh = gamemath.Mesh{
		Verts: []gamemath.Vec{
			{X: 0, Y: 0.75}, {X: 1, Y: 0}, {X: 0.75, Y: -0.5}, {X: 0.5, Y: -0.25},
			{X: -0.5, Y: -0.25}, {X: -0.75, Y: -0.5}, {X: -1, Y: 0},
		},
		Segs: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 6}, {6, 0}},
	}
	RobberMesh = gamemath.Mesh{
		Verts: []gamemath.Vec{
			{X: 0, Y: 1}, {X: 0.5, Y: 0.25}, {X: 0.5, Y: -0.25},
			{X: 0, Y: -0.75}, {X: -0.5, Y: -0.25}, {X: -0.5, Y: 0.25},
		},
		Segs: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}, {0, 3}},
	}
	KillerMesh = gamemath.Mesh{
		Verts: []gamemath.Vec{
			{X: 0, Y: 1}, {X: 0.35, Y: 0}, {X: 0.5, Y: -0.75},
			{X: 0, Y: 0}, {X: -0.5, Y: -0.75}, {X: -0.35, Y: 0},
		},
		Segs: [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 5}, {5, 0}},
	}
)
