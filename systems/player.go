package systems

import (
	"math"

	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/automoto/ripoff/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePlayers(e *ecs.ECS) {
	arena := GetArena(e)
	for _, p := range arena.Players {
		updatePlayer(arena, p, arena.Delta)
	}
}

func updatePlayer(arena *components.ArenaData, entry *donburi.Entry, dt float64) {
	player := components.Player.Get(entry)
	if !components.Mob.Get(entry).On {
		player.Dead -= dt
		if player.Dead <= 0 {
			ResetPlayer(arena, entry)
		}
		return
	}

	m := components.Machine.Get(entry)
	steerPlayer(entry)
	player.Unstable = overCrate(arena, entry)
	m.AVel = gamemath.Dampen(m.AVel, m.AngularBrake*dt)
	if player.Control == 0 {
		slowDown(entry, dt)
	}
	moveMachine(arena, entry, dt)
}

// steerPlayer feeds the heading error into angular velocity while a
// pointer or key is steering.
func steerPlayer(entry *donburi.Entry) {
	player := components.Player.Get(entry)
	if player.Control <= 0 {
		return
	}
	m := components.Machine.Get(entry)
	t := components.Transform.Get(entry)

	da := gamemath.DeltaAngle(t.Angle, player.DestAngle)
	if player.Unstable {
		da *= cfg.Player.DestabilizedTurnFactor
	}
	if da != 0 {
		av := m.AVel + da
		m.AVel = math.Min(cfg.Player.MaxTurnRate, math.Abs(av)) * gamemath.Sgn(av)
	}
}

// overCrate reports whether any surviving crate overlaps the player's
// inner circle.
func overCrate(arena *components.ArenaData, entry *donburi.Entry) bool {
	t := components.Transform.Get(entry)
	r := t.Scale * cfg.Player.DestabilizeRadius

	if entry.HasComponent(components.Object) {
		obj := components.Object.Get(entry)
		check := obj.Check(0, 0, tags.ResolvCrate)
		if check == nil {
			return false
		}
		for _, o := range check.ObjectsByTags(tags.ResolvCrate) {
			if crate, ok := o.Data.(*donburi.Entry); ok && crate.Valid() && BoundCheck(crate, t.Pos, r) {
				return true
			}
		}
		return false
	}

	for _, crate := range arena.Crates {
		if BoundCheck(crate, t.Pos, r) {
			return true
		}
	}
	return false
}

// ResetPlayer respawns a player at its start position.
func ResetPlayer(arena *components.ArenaData, entry *donburi.Entry) {
	player := components.Player.Get(entry)
	t := components.Transform.Get(entry)
	m := components.Machine.Get(entry)

	player.Dead = 0
	player.Unstable = false
	components.Mob.Get(entry).On = true

	t.Pos = player.StartPos
	t.Angle = gamemath.AddAngle(0, -math.Pi/2*player.Dir)
	player.DestAngle = t.Angle
	m.AVel = 0
	m.Vel = gamemath.V(0, t.Scale*cfg.Player.SpawnSpeedFactor)
	syncProxy(arena, entry)
}

// KillPlayer takes the player out of play until its respawn timer expires.
func KillPlayer(entry *donburi.Entry) {
	components.Mob.Get(entry).On = false
	components.Player.Get(entry).Dead = cfg.Player.DeadTime
	parkProxy(entry)
}

// PlayerBySlot returns the player controlled from the given slot.
func PlayerBySlot(e *ecs.ECS, slot int) (*donburi.Entry, bool) {
	for _, p := range GetArena(e).Players {
		if components.Player.Get(p).Slot == slot {
			return p, true
		}
	}
	return nil, false
}

// PlayerMove steers towards a point relative to the slot's move origin. The
// offset sets the heading, and its length sets the forward speed once it
// passes the dead zone.
func PlayerMove(e *ecs.ECS, slot int, touch gamemath.Vec) {
	entry, ok := PlayerBySlot(e, slot)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	a, l := gamemath.AngleFromVector(touch.Sub(player.MoveOrigin))
	player.DestAngle = a
	if l > cfg.Input.MoveSense {
		components.Machine.Get(entry).Vel.Y = l * cfg.Input.MoveScale
	}
}

func PlayerFire(e *ecs.ECS, slot int) bool {
	entry, ok := PlayerBySlot(e, slot)
	if !ok {
		return false
	}
	return Fire(e, GetArena(e), entry)
}

// PlayerGrab marks the player as steered by one more pointer.
func PlayerGrab(e *ecs.ECS, slot int) {
	if entry, ok := PlayerBySlot(e, slot); ok {
		components.Player.Get(entry).Control++
	}
}

// PlayerRelease undoes one PlayerGrab.
func PlayerRelease(e *ecs.ECS, slot int) {
	entry, ok := PlayerBySlot(e, slot)
	if !ok {
		return
	}
	player := components.Player.Get(entry)
	if player.Control > 0 {
		player.Control--
	}
}
