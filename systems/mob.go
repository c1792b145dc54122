package systems

import (
	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/automoto/ripoff/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MobPoints refreshes and returns the mob's mesh in arena space.
func MobPoints(entry *donburi.Entry) []gamemath.Vec {
	mob := components.Mob.Get(entry)
	t := components.Transform.Get(entry)
	mob.Points = mob.Mesh.Transform(mob.Points, t.Pos, t.Angle, t.Scale)
	return mob.Points
}

// BoundCheck reports whether an active mob's collision circle touches the
// circle at c with radius r.
func BoundCheck(entry *donburi.Entry, c gamemath.Vec, r float64) bool {
	if !components.Mob.Get(entry).On {
		return false
	}
	t := components.Transform.Get(entry)
	return gamemath.CirclesOverlap(t.Pos, t.Scale, c, r)
}

// Offscreen reports whether the mob has left the arena completely.
func Offscreen(arena *components.ArenaData, entry *donburi.Entry) bool {
	t := components.Transform.Get(entry)
	return arena.Offscreen(t.Pos, t.Scale)
}

// syncProxy moves the broadphase object to match the transform.
func syncProxy(arena *components.ArenaData, entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	t := components.Transform.Get(entry)
	obj.X = t.Pos.X - t.Scale + arena.Margin
	obj.Y = t.Pos.Y - t.Scale + arena.Margin
	obj.Update()
}

// parkProxy moves an inactive mob's broadphase object to the corner of the
// space, outside the arena, so it stops turning up in queries.
func parkProxy(entry *donburi.Entry) {
	if !entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(entry)
	obj.X, obj.Y = 0, 0
	obj.Update()
}

// Explode spawns wreckage for a mob at its current position.
func Explode(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry) {
	mob := components.Mob.Get(entry)
	t := components.Transform.Get(entry)
	factory.CreateExplosion(e, arena, t.Pos, mob.Color, MobPoints(entry), mob.Mesh.Segs)
	PlaySFX(e, cfg.SoundExplosion)
}

// KillCrate destroys a crate. It is removed from the arena list and the
// world exactly once. Handles to it held by robbers stop being valid even
// after its entity id is reused.
func KillCrate(e *ecs.ECS, arena *components.ArenaData, crate *donburi.Entry) {
	if crate == nil || !crate.Valid() {
		return
	}
	idx := -1
	for i, c := range arena.Crates {
		if c == crate {
			idx = i
			break
		}
	}
	if idx < 0 {
		return
	}
	arena.Crates = append(arena.Crates[:idx], arena.Crates[idx+1:]...)
	components.Mob.Get(crate).On = false

	// Queue the sound first: it may create the audio singleton, which must
	// not be handed the id this crate is about to free.
	PlaySFX(e, cfg.SoundCrateDestroyed)

	if spaceEntry, ok := components.Space.First(e.World); ok {
		obj := components.Object.Get(crate)
		if obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	e.World.Remove(crate.Entity())
}

// lookup resolves an entity handle while the entity still exists. A handle
// whose id has been reused by a newer entity is rejected by its version.
func lookup(arena *components.ArenaData, ent donburi.Entity) (*donburi.Entry, bool) {
	if ent == donburi.Null || arena.World == nil || !arena.World.Valid(ent) {
		return nil, false
	}
	return arena.World.Entry(ent), true
}

// liveEntry returns entry when it still refers to an existing entity. Only
// used for bullet owners, which are never removed.
func liveEntry(entry *donburi.Entry) (*donburi.Entry, bool) {
	if entry == nil || !entry.Valid() {
		return nil, false
	}
	return entry, true
}
