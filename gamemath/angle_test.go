package gamemath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddAngleRange(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		a0 := (rng.Float64() - 0.5) * 40
		a1 := (rng.Float64() - 0.5) * 40
		got := AddAngle(a0, a1)
		if got < 0 || got >= TwoPi {
			t.Fatalf("AddAngle(%v, %v) = %v, want [0, 2π)", a0, a1, got)
		}
	}
	assert.Equal(t, 0.0, AddAngle(math.Pi, math.Pi))
	assert.InDelta(t, TwoPi-0.5, AddAngle(0, -0.5), 1e-12)
}

func TestDeltaAngleShortestPath(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 1000; i++ {
		a0 := rng.Float64() * TwoPi
		a1 := rng.Float64() * TwoPi
		d := DeltaAngle(a0, a1)
		if d <= -math.Pi || d > math.Pi {
			t.Fatalf("DeltaAngle(%v, %v) = %v, want (-π, π]", a0, a1, d)
		}
		assert.InDelta(t, AddAngle(a1, 0), AddAngle(a0, d), 1e-9, "a0 + delta must land on a1")
	}
}

func TestDeltaAngleCases(t *testing.T) {
	tests := []struct {
		name   string
		a0, a1 float64
		want   float64
	}{
		{"same", 1, 1, 0},
		{"small positive", 0.1, 0.3, 0.2},
		{"small negative", 0.3, 0.1, -0.2},
		{"across zero forward", TwoPi - 0.1, 0.1, 0.2},
		{"across zero backward", 0.1, TwoPi - 0.1, -0.2},
		{"half turn", 0, math.Pi, math.Pi},
		{"half turn back", math.Pi, 0, math.Pi},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, DeltaAngle(tt.a0, tt.a1), 1e-12)
		})
	}
}

func TestAngleFromVector(t *testing.T) {
	tests := []struct {
		v     Vec
		angle float64
		l     float64
	}{
		{V(0, 1), 0, 1},
		{V(1, 0), math.Pi / 2, 1},
		{V(0, -2), math.Pi, 2},
		{V(-3, 0), 3 * math.Pi / 2, 3},
		{V(0, 0), 0, 0},
	}
	for _, tt := range tests {
		a, l := AngleFromVector(tt.v)
		assert.InDelta(t, tt.angle, a, 1e-12, "angle of %v", tt.v)
		assert.InDelta(t, tt.l, l, 1e-12, "length of %v", tt.v)
	}
}

func TestRotateMatchesAngleFromVector(t *testing.T) {
	for _, a := range []float64{0, 0.5, 1, 2, 3, 4, 5, 6} {
		dir := Rotate(a, V(0, 1))
		got, l := AngleFromVector(dir)
		assert.InDelta(t, a, got, 1e-9)
		assert.InDelta(t, 1, l, 1e-12)
	}
}
