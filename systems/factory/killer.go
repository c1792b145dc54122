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

// CreateKiller adds a killer in the Down state; it enters the arena once
// its down timer runs out.
func CreateKiller(ecs *ecs.ECS, arena *components.ArenaData) *donburi.Entry {
	killer := archetypes.Killer.Spawn(ecs)
	scale := cfg.Arena.EntityScale

	parked := gamemath.V(-scale, -scale)
	components.Transform.SetValue(killer, components.TransformData{
		Pos:   parked,
		Scale: scale,
	})
	components.Mob.SetValue(killer, components.MobData{
		Color: cfg.Killer.Color,
		Mesh:  &cfg.KillerMesh,
	})
	components.Machine.SetValue(killer, components.MachineData{
		Faction:   components.FactionAI,
		Brake:     cfg.Player.Brake,
		ShotSound: cfg.SoundKillerShot,
		Bullets:   CreateBulletPool(ecs, killer, cfg.Killer.BulletCount, cfg.Killer.BulletSpeed, cfg.Killer.BulletLife),
	})
	components.Steering.SetValue(killer, components.SteeringData{})
	components.State.SetValue(killer, components.StateData{CurrentState: cfg.StateDown})
	components.Killer.SetValue(killer, components.KillerData{DownTime: cfg.Killer.DownTime})
	attachProxy(ecs, killer, parked, scale, arena.Margin, tags.ResolvKiller)

	arena.Killers = append(arena.Killers, killer)
	return killer
}
