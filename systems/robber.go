package systems

import (
	"math"

	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

type robberState func(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry, dt float64)

var robberStates = map[cfg.StateID]robberState{
	cfg.StateApproach: approachState,
	cfg.StateFollow:   followState,
	cfg.StateExit:     exitState,
}

// UpdateRobbers runs each active robber's behaviour and records how many
// were active when the frame started.
func UpdateRobbers(e *ecs.ECS) {
	arena := GetArena(e)
	active := 0
	for _, r := range arena.Robbers {
		if !components.Mob.Get(r).On {
			continue
		}
		active++
		updateRobber(e, arena, r, arena.Delta)
	}
	arena.ActiveRobbers = active
}

func updateRobber(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry, dt float64) {
	s := components.Steering.Get(entry)
	if s.TrackTarget {
		if crate, ok := robberTarget(arena, entry); ok {
			s.Waypoint = components.Transform.Get(crate).Pos
		}
	}
	if run, ok := robberStates[components.State.Get(entry).CurrentState]; ok {
		run(e, arena, entry, dt)
	}
}

// robberTarget returns the robber's crate while it still exists.
func robberTarget(arena *components.ArenaData, entry *donburi.Entry) (*donburi.Entry, bool) {
	return lookup(arena, components.Robber.Get(entry).Target)
}

// tethered returns the robber dragging crate, if that robber still exists.
func tethered(arena *components.ArenaData, crate *donburi.Entry) (*donburi.Entry, bool) {
	return lookup(arena, components.Crate.Get(crate).TetheredBy)
}

// ResetRobber activates a robber at pos and sends it after crate.
func ResetRobber(arena *components.ArenaData, entry *donburi.Entry, pos gamemath.Vec, angle float64, crate *donburi.Entry) {
	components.State.Get(entry).Set(cfg.StateApproach)
	components.Steering.Get(entry).TrackTarget = false

	r := components.Robber.Get(entry)
	r.WaypointIndex = -1
	r.ApproachAngle = 0
	r.Target = donburi.Null
	if crate != nil && crate.Valid() {
		r.Target = crate.Entity()
		components.Crate.Get(crate).Targeted++
	}

	resetSteering(entry, pos, angle)
	syncProxy(arena, entry)
	NextWaypoint(arena, entry)
}

// NextWaypoint advances along the path table. Approach rings before the
// pickup point may be skipped at random; reaching the exit entry starts
// the exit.
func NextWaypoint(arena *components.ArenaData, entry *donburi.Entry) {
	r := components.Robber.Get(entry)
	r.WaypointIndex++
	for r.WaypointIndex < cfg.Robber.PickupIndex && arena.Rand.Float64() < arena.SkipChance {
		r.WaypointIndex++
	}
	SetRobberWaypoint(arena, entry)
	if r.WaypointIndex == cfg.Robber.ExitIndex {
		SetExit(arena, entry)
	}
}

// SetRobberWaypoint places the waypoint for the current path index on a
// ring around the target crate. Every ring but the exit is clipped to the
// arena.
func SetRobberWaypoint(arena *components.ArenaData, entry *donburi.Entry) {
	crate, ok := robberTarget(arena, entry)
	if !ok {
		return
	}
	r := components.Robber.Get(entry)
	if r.WaypointIndex < 0 || r.WaypointIndex >= len(cfg.Robber.Path) {
		return
	}
	step := cfg.Robber.Path[r.WaypointIndex]

	s := components.Steering.Get(entry)
	base := arena.BaseSpeed()
	s.MaxVel = step.MaxSpeed * base
	s.MinVel = step.MinSpeed * base

	r.ApproachAngle = gamemath.AddAngle(r.ApproachAngle, arena.Rand.Float64()*2*step.Spread-step.Spread)
	wp := gamemath.Rotate(r.ApproachAngle, gamemath.V(0, step.Radius*arena.ScreenRadius)).
		Add(components.Transform.Get(crate).Pos)
	if r.WaypointIndex < cfg.Robber.ExitIndex {
		wp = arena.Bounds.Clip(wp)
	}
	setWaypoint(entry, wp)
}

// SetExit tries to tether the target crate. On success the robber heads
// for the exit waypoint; otherwise it follows the crate's live position
// until it can grab it.
func SetExit(arena *components.ArenaData, entry *donburi.Entry) {
	components.State.Get(entry).Set(cfg.StateExit)
	components.Machine.Get(entry).Wrap = false

	crate, ok := robberTarget(arena, entry)
	if !ok {
		return
	}
	t := components.Transform.Get(entry)
	if _, held := tethered(arena, crate); !held && BoundCheck(crate, t.Pos, t.Scale) {
		components.Crate.Get(crate).TetheredBy = entry.Entity()
		return
	}

	s := components.Steering.Get(entry)
	s.TrackTarget = true
	s.Waypoint = components.Transform.Get(crate).Pos
	components.State.Get(entry).Set(cfg.StateFollow)
}

func approachState(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry, dt float64) {
	if _, ok := robberTarget(arena, entry); !ok {
		RobberDone(e, arena, entry)
		return
	}
	if checkDestination(entry) {
		NextWaypoint(arena, entry)
	}
	updateVelocities(entry)
	moveMachine(arena, entry, dt)
}

// followState chases a crate that could not be grabbed. A free crate
// sends the robber back to the pickup point.
func followState(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry, dt float64) {
	if crate, ok := robberTarget(arena, entry); ok {
		if _, held := tethered(arena, crate); !held {
			components.Steering.Get(entry).TrackTarget = false
			components.Robber.Get(entry).WaypointIndex = cfg.Robber.PickupIndex
			components.State.Get(entry).Set(cfg.StateApproach)
			SetRobberWaypoint(arena, entry)
			return
		}
	}
	exitState(e, arena, entry, dt)
}

func exitState(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry, dt float64) {
	updateVelocities(entry)
	PullCrate(e, arena, entry)
	moveMachine(arena, entry, dt)
}

// PullCrate drags a tethered crate behind the robber, holding each axis of
// their separation within the tether length. A robber leaves play once its
// crate, or the robber itself when it holds nothing, is off the arena.
func PullCrate(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry) {
	crate, ok := robberTarget(arena, entry)
	if ok && components.Crate.Get(crate).TetheredBy == entry.Entity() {
		if Offscreen(arena, crate) {
			RobberDone(e, arena, entry)
			return
		}
		ct := components.Transform.Get(crate)
		d := components.Transform.Get(entry).Pos.Sub(ct.Pos)
		if dm := math.Abs(d.X) - cfg.Robber.TetherLength; dm > 0 {
			ct.Pos.X += dm * gamemath.Sgn(d.X)
		}
		if dm := math.Abs(d.Y) - cfg.Robber.TetherLength; dm > 0 {
			ct.Pos.Y += dm * gamemath.Sgn(d.Y)
		}
		syncProxy(arena, crate)
		return
	}

	if Offscreen(arena, entry) || !ok || !components.Mob.Get(crate).On {
		RobberDone(e, arena, entry)
	}
}

// RobberDone takes the robber out of play. A crate it was dragging is
// destroyed.
func RobberDone(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry) {
	crate, ok := robberTarget(arena, entry)
	holding := ok && components.Crate.Get(crate).TetheredBy == entry.Entity()
	releaseTarget(arena, entry)
	components.Mob.Get(entry).On = false
	components.State.Get(entry).Set(cfg.StateDone)
	parkProxy(entry)
	if holding {
		KillCrate(e, arena, crate)
	}
}

// KillRobber deactivates a robber that was shot. Its crate stays where it
// was dropped.
func KillRobber(arena *components.ArenaData, entry *donburi.Entry) {
	releaseTarget(arena, entry)
	components.Mob.Get(entry).On = false
	components.State.Get(entry).Set(cfg.StateDone)
	parkProxy(entry)
}

// releaseTarget drops the robber's claim on its crate.
func releaseTarget(arena *components.ArenaData, entry *donburi.Entry) {
	r := components.Robber.Get(entry)
	if crate, ok := lookup(arena, r.Target); ok {
		cd := components.Crate.Get(crate)
		if cd.Targeted > 0 {
			cd.Targeted--
		}
		if cd.TetheredBy == entry.Entity() {
			cd.TetheredBy = donburi.Null
		}
	}
	r.Target = donburi.Null
	components.Steering.Get(entry).TrackTarget = false
}
