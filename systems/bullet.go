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

// UpdateBullets advances every bullet in flight and retires the ones that
// expired or hit something, returning them to their owner's pool.
func UpdateBullets(e *ecs.ECS) {
	arena := GetArena(e)
	dt := arena.Delta

	// Collect then remove so the list is not modified while iterating
	live := arena.Bullets[:0]
	for _, entry := range arena.Bullets {
		if updateBullet(e, arena, entry, dt) {
			live = append(live, entry)
			continue
		}
		if owner, ok := liveEntry(components.Bullet.Get(entry).Owner); ok {
			m := components.Machine.Get(owner)
			if m.ShotCount > 0 {
				m.ShotCount--
			}
		}
	}
	for i := len(live); i < len(arena.Bullets); i++ {
		arena.Bullets[i] = nil
	}
	arena.Bullets = live
}

// updateBullet moves a bullet one step and reports whether it is still live.
func updateBullet(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry, dt float64) bool {
	b := components.Bullet.Get(entry)
	if b.Life <= 0 {
		b.Life = 0
		return false
	}

	b.Life = math.Max(0, b.Life-dt)
	if b.Life > 0 {
		b.Prev = b.Pos
		b.Pos = b.Pos.Add(b.Vel.Scale(dt))
		if CheckBullet(e, arena, entry) {
			b.Life = 0
		}
	}
	return b.Life > 0
}

// CheckBullet tests the bullet's last step against everything its owner may
// hit. AI bullets hit players. Player bullets hit killers first, stopping at
// the first one, and otherwise every robber they cross.
func CheckBullet(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry) bool {
	b := components.Bullet.Get(entry)
	owner, ok := liveEntry(b.Owner)
	if !ok {
		return false
	}
	near := sweepCandidates(e, arena, b.Prev, b.Pos)

	if components.Machine.Get(owner).Faction != components.FactionPlayer {
		hit := false
		for _, p := range arena.Players {
			if near.has(p) && hitMob(e, arena, p, b.Prev, b.Pos) {
				hit = true
			}
		}
		return hit
	}

	for _, k := range arena.Killers {
		if near.has(k) && hitMob(e, arena, k, b.Prev, b.Pos) {
			return true
		}
	}
	hit := false
	for _, r := range arena.Robbers {
		if near.has(r) && hitMob(e, arena, r, b.Prev, b.Pos) {
			hit = true
		}
	}
	return hit
}

// hitMob explodes and kills an active mob crossed by the segment p1-p2.
func hitMob(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry, p1, p2 gamemath.Vec) bool {
	if !components.Mob.Get(entry).On {
		return false
	}
	t := components.Transform.Get(entry)
	if !gamemath.SegmentVsCircle(p1, p2, t.Pos, t.Scale) {
		return false
	}
	Explode(e, arena, entry)
	switch {
	case entry.HasComponent(components.Player):
		KillPlayer(entry)
	case entry.HasComponent(components.Killer):
		KillKiller(entry)
	case entry.HasComponent(components.Robber):
		KillRobber(arena, entry)
	}
	return true
}

// candidates is the broadphase result for one sweep. A nil set means the
// sweep left the indexed region and every entity must be tested.
type candidates map[*donburi.Entry]struct{}

func (c candidates) has(entry *donburi.Entry) bool {
	if c == nil {
		return true
	}
	_, ok := c[entry]
	return ok
}

// sweepCandidates returns the mobs whose broadphase cells overlap the
// bounding box of the segment p1-p2.
func sweepCandidates(e *ecs.ECS, arena *components.ArenaData, p1, p2 gamemath.Vec) candidates {
	sweep := arena.Sweep
	spaceEntry, ok := components.Space.First(e.World)
	if sweep == nil || !ok {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	pad := cfg.Arena.EntityScale
	x0 := math.Min(p1.X, p2.X) + arena.Margin
	y0 := math.Min(p1.Y, p2.Y) + arena.Margin
	w := math.Abs(p2.X-p1.X) + 1
	h := math.Abs(p2.Y-p1.Y) + 1
	if x0-pad < 0 || y0-pad < 0 ||
		x0+w+pad > float64(space.Width()*space.CellWidth) ||
		y0+h+pad > float64(space.Height()*space.CellHeight) {
		return nil
	}

	sweep.X, sweep.Y, sweep.W, sweep.H = x0, y0, w, h
	sweep.Update()

	set := candidates{}
	check := sweep.Check(0, 0, tags.ResolvPlayer, tags.ResolvRobber, tags.ResolvKiller)
	if check == nil {
		return set
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvPlayer, tags.ResolvRobber, tags.ResolvKiller) {
		if entry, ok := obj.Data.(*donburi.Entry); ok {
			set[entry] = struct{}{}
		}
	}
	return set
}
