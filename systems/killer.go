package systems

import (
	"math"

	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateKillers runs every killer's state, including the respawn
// countdown of the ones that are down.
func UpdateKillers(e *ecs.ECS) {
	arena := GetArena(e)
	for _, k := range arena.Killers {
		switch components.State.Get(k).CurrentState {
		case cfg.StateDown:
			downState(arena, k, arena.Delta)
		case cfg.StateHunt:
			huntState(e, arena, k, arena.Delta)
		}
	}
}

func downState(arena *components.ArenaData, entry *donburi.Entry, dt float64) {
	k := components.Killer.Get(entry)
	k.DownTime -= dt
	if k.DownTime <= 0 {
		pos, angle := StartPos(arena)
		ResetKiller(arena, entry, pos, angle)
	}
}

func huntState(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry, dt float64) {
	if checkDestination(entry) {
		nextKillerWaypoint(arena, entry)
	}
	updateVelocities(entry)
	checkFire(e, arena, entry, dt)
	moveMachine(arena, entry, dt)
}

// ResetKiller brings a killer into play hunting at a fixed wave-scaled speed.
func ResetKiller(arena *components.ArenaData, entry *donburi.Entry, pos gamemath.Vec, angle float64) {
	resetSteering(entry, pos, angle)

	s := components.Steering.Get(entry)
	s.MaxVel = cfg.Killer.SpeedFactor * arena.BaseSpeed()
	s.MinVel = s.MaxVel

	components.Killer.Get(entry).FireDelay = 0
	components.State.Get(entry).Set(cfg.StateHunt)
	syncProxy(arena, entry)
	nextKillerWaypoint(arena, entry)
}

// nextKillerWaypoint wanders to a random point in the arena.
func nextKillerWaypoint(arena *components.ArenaData, entry *donburi.Entry) {
	b := arena.Bounds
	wp := gamemath.V(b.X+arena.Rand.Float64()*b.W, b.Y+arena.Rand.Float64()*b.H)
	setWaypoint(entry, wp)
}

// KillKiller takes a shot killer down until its timer expires.
func KillKiller(entry *donburi.Entry) {
	components.Mob.Get(entry).On = false
	components.Killer.Get(entry).DownTime = cfg.Killer.DownTime
	components.State.Get(entry).Set(cfg.StateDown)
	parkProxy(entry)
}

// checkFire shoots at any live player lined up with the killer's heading,
// then waits out the fire delay.
func checkFire(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry, dt float64) {
	k := components.Killer.Get(entry)
	if k.FireDelay > 0 {
		k.FireDelay = math.Max(0, k.FireDelay-dt)
		return
	}

	t := components.Transform.Get(entry)
	for _, p := range arena.Players {
		if !components.Mob.Get(p).On {
			continue
		}
		a := bearing(t.Pos, components.Transform.Get(p).Pos)
		if math.Abs(gamemath.DeltaAngle(t.Angle, a)) < cfg.Killer.AimTolerance {
			k.FireDelay = cfg.Killer.FireDelay
			Fire(e, arena, entry)
		}
	}
}
