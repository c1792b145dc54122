package components

import (
	"github.com/automoto/ripoff/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Slot      int
	Dir       float64 // +1 spawns on the left edge, -1 on the right
	StartPos  gamemath.Vec
	DestAngle float64
	Control   int     // pointers currently steering this player
	Dead      float64 // respawn countdown while inactive
	Unstable  bool    // overlapping a crate

	MoveZone   gamemath.Rect
	FireZone   gamemath.Rect
	MoveOrigin gamemath.Vec // steering is relative to this point
}

var Player = donburi.NewComponentType[PlayerData]()
