package factory

import (
	"github.com/automoto/ripoff/archetypes"
	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/automoto/ripoff/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateCrate(ecs *ecs.ECS, arena *components.ArenaData, pos gamemath.Vec) *donburi.Entry {
	crate := archetypes.Crate.Spawn(ecs)

	components.Transform.SetValue(crate, components.TransformData{
		Pos:   pos,
		Scale: cfg.Arena.EntityScale,
	})
	components.Mob.SetValue(crate, components.MobData{
		On:    true,
		Color: cfg.Arena.CrateColor,
		Mesh:  &cfg.CrateMesh,
	})
	components.Crate.SetValue(crate, components.CrateData{})
	attachProxy(ecs, crate, pos, cfg.Arena.EntityScale, arena.Margin, tags.ResolvCrate)

	arena.Crates = append(arena.Crates, crate)
	return crate
}

// CratePosition lays crates out on a grid centred on the arena.
func CratePosition(arena *components.ArenaData, i int) gamemath.Vec {
	cols := cfg.Arena.CrateColumns
	mid := float64(cols-1) / 2
	c := arena.Center()
	return gamemath.Vec{
		X: (float64(i/cols)-mid)*cfg.Arena.CrateSpacing + c.X,
		Y: (float64(i%cols)-mid)*cfg.Arena.CrateSpacing + c.Y,
	}
}
