package systems

import (
	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateExplosions drifts wreckage, grows the blast rings and removes
// explosions whose fades have both finished.
func UpdateExplosions(e *ecs.ECS) {
	arena := GetArena(e)
	dt := arena.Delta

	var toRemove []*donburi.Entry
	live := arena.Explosions[:0]
	for _, entry := range arena.Explosions {
		if updateExplosion(components.Explosion.Get(entry), dt) {
			live = append(live, entry)
		} else {
			toRemove = append(toRemove, entry)
		}
	}
	for i := len(live); i < len(arena.Explosions); i++ {
		arena.Explosions[i] = nil
	}
	arena.Explosions = live

	for _, entry := range toRemove {
		e.World.Remove(entry.Entity())
	}
}

// updateExplosion reports whether the explosion is still visible.
func updateExplosion(ex *components.ExplosionData, dt float64) bool {
	if !ex.FadeDone {
		v, done := ex.FadeTw.Update(float32(dt))
		ex.Fade = float64(v)
		ex.FadeDone = done
		for i := range ex.Segments {
			s := &ex.Segments[i]
			s.Origin = s.Origin.Add(s.Vel.Scale(dt))
			s.Angle += s.AVel * dt
		}
	}
	if !ex.RingDone {
		v, done := ex.RingTw.Update(float32(dt))
		ex.Ring = float64(v)
		ex.RingDone = done
		ex.Blast += cfg.Explosion.RingGrowth * dt
	}
	return !(ex.FadeDone && ex.RingDone)
}
