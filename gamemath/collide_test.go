package gamemath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSegmentVsCircleBoundary(t *testing.T) {
	const eps = 1e-6
	p1, p2 := V(0, 0), V(10, 0)
	r := 2.0

	assert.True(t, SegmentVsCircle(p1, p2, V(5, r-eps), r), "just inside")
	assert.False(t, SegmentVsCircle(p1, p2, V(5, r), r), "exactly r is a miss")
	assert.False(t, SegmentVsCircle(p1, p2, V(5, r+eps), r), "just outside")
}

func TestSegmentVsCircleEndpoints(t *testing.T) {
	p1, p2 := V(0, 0), V(10, 0)
	assert.True(t, SegmentVsCircle(p1, p2, V(11, 0), 1.5), "past p2 but within r of it")
	assert.False(t, SegmentVsCircle(p1, p2, V(12, 0), 1.5), "past p2 and beyond r")
	assert.True(t, SegmentVsCircle(p1, p2, V(-1, 1), 1.5), "behind p1 within r")
}

func TestSegmentVsCircleDegenerate(t *testing.T) {
	p := V(3, 3)
	assert.True(t, SegmentVsCircle(p, p, V(3, 4), 1.5))
	assert.False(t, SegmentVsCircle(p, p, V(3, 5), 1.5))
}

func TestCirclesOverlap(t *testing.T) {
	assert.True(t, CirclesOverlap(V(0, 0), 1, V(2, 0), 1), "touching counts")
	assert.False(t, CirclesOverlap(V(0, 0), 1, V(2.01, 0), 1))
}
