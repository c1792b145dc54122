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

// CreateRobber adds an inactive robber to the pool. Robbers are activated
// at the start of each wave.
func CreateRobber(ecs *ecs.ECS, arena *components.ArenaData) *donburi.Entry {
	robber := archetypes.Robber.Spawn(ecs)
	scale := cfg.Arena.EntityScale

	// Parked off the arena until the first wave
	parked := gamemath.V(-scale, -scale)
	components.Transform.SetValue(robber, components.TransformData{
		Pos:   parked,
		Scale: scale,
	})
	components.Mob.SetValue(robber, components.MobData{
		Color: cfg.Arena.DefaultColor,
		Mesh:  &cfg.RobberMesh,
	})
	components.Machine.SetValue(robber, components.MachineData{
		Faction: components.FactionAI,
		Brake:   cfg.Player.Brake,
	})
	components.Steering.SetValue(robber, components.SteeringData{})
	components.State.SetValue(robber, components.StateData{CurrentState: cfg.StateNone})
	components.Robber.SetValue(robber, components.RobberData{WaypointIndex: -1})
	attachProxy(ecs, robber, parked, scale, arena.Margin, tags.ResolvRobber)

	arena.Robbers = append(arena.Robbers, robber)
	return robber
}
