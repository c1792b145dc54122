package components

import (
	"image/color"

	"github.com/automoto/ripoff/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// WreckSegment is one mesh edge flying away from a destroyed mob.
type WreckSegment struct {
	Origin gamemath.Vec
	Delta  gamemath.Vec // second endpoint relative to Origin, before Angle
	Angle  float64
	Vel    gamemath.Vec
	AVel   float64
}

type ExplosionData struct {
	Pos      gamemath.Vec
	Color    color.RGBA
	Segments []WreckSegment

	Fade     float64 // segment alpha
	Ring     float64 // blast ring alpha
	Blast    float64 // blast ring radius
	FadeTw   *gween.Tween
	RingTw   *gween.Tween
	FadeDone bool
	RingDone bool
}

var Explosion = donburi.NewComponentType[ExplosionData]()
