package archetypes

import (
	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Arena = newArchetype(
		components.Arena,
	)
	Space = newArchetype(
		components.Space,
	)
	Crate = newArchetype(
		tags.Crate,
		components.Transform,
		components.Mob,
		components.Crate,
		components.Object,
	)
	Player = newArchetype(
		tags.Player,
		components.Transform,
		components.Mob,
		components.Machine,
		components.Player,
		components.Object,
	)
	Robber = newArchetype(
		tags.Robber,
		components.Transform,
		components.Mob,
		components.Machine,
		components.Steering,
		components.State,
		components.Robber,
		components.Object,
	)
	Killer = newArchetype(
		tags.Killer,
		components.Transform,
		components.Mob,
		components.Machine,
		components.Steering,
		components.State,
		components.Killer,
		components.Object,
	)
	Bullet = newArchetype(
		tags.Bullet,
		components.Bullet,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Explosion,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
