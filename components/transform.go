package components

import (
	"github.com/automoto/ripoff/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData places an entity in the arena. Scale is both the mesh
// scale and the collision radius.
type TransformData struct {
	Pos   gamemath.Vec
	Angle float64
	Scale float64
}

var Transform = donburi.NewComponentType[TransformData]()
