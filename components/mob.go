package components

import (
	"image/color"

	"github.com/automoto/ripoff/gamemath"
	"github.com/yohamta/donburi"
)

// MobData is the state shared by every drawable arena entity.
type MobData struct {
	On     bool
	Color  color.RGBA
	Mesh   *gamemath.Mesh
	Points []gamemath.Vec // mesh in arena space, refreshed on demand
}

var Mob = donburi.NewComponentType[MobData]()
