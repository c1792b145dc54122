package factory

import (
	"github.com/automoto/ripoff/archetypes"
	"github.com/automoto/ripoff/components"
	"github.com/automoto/ripoff/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// attachProxy gives entry a square broadphase object covering its
// collision circle. Space coordinates are arena coordinates shifted by margin.
func attachProxy(ecs *ecs.ECS, entry *donburi.Entry, pos gamemath.Vec, scale, margin float64, tag string) *resolv.Object {
	obj := resolv.NewObject(pos.X-scale+margin, pos.Y-scale+margin, scale*2, scale*2, tag)
	obj.Data = entry
	components.Space.Get(components.Space.MustFirst(ecs.World)).Add(obj)
	components.Object.Set(entry, &components.ObjectData{Object: obj})
	return obj
}
