package components

import (
	"github.com/automoto/ripoff/gamemath"
	"github.com/yohamta/donburi"
)

// BulletData is a pooled projectile. A bullet is in flight while Life > 0.
type BulletData struct {
	Owner    *donburi.Entry
	Pos      gamemath.Vec
	Prev     gamemath.Vec
	Vel      gamemath.Vec
	Life     float64
	Lifespan float64
	Speed    float64
}

var Bullet = donburi.NewComponentType[BulletData]()
