package systems

import (
	"github.com/automoto/ripoff/components"
	"github.com/automoto/ripoff/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// moveMachine integrates an active machine for dt seconds. Velocity is in
// the machine's local frame and is rotated into arena space first.
func moveMachine(arena *components.ArenaData, entry *donburi.Entry, dt float64) {
	if !components.Mob.Get(entry).On {
		return
	}
	t := components.Transform.Get(entry)
	m := components.Machine.Get(entry)

	v := gamemath.Rotate(t.Angle, m.Vel)
	t.Pos = t.Pos.Add(v.Scale(dt))

	if m.Wrap {
		b := arena.Bounds
		if t.Pos.X > b.X+b.W {
			t.Pos.X -= b.W
		} else if t.Pos.X < b.X {
			t.Pos.X += b.W
		}
		if t.Pos.Y > b.Y+b.H {
			t.Pos.Y -= b.H
		} else if t.Pos.Y < b.Y {
			t.Pos.Y += b.H
		}
	}
	t.Angle = gamemath.AddAngle(t.Angle, m.AVel*dt)
	syncProxy(arena, entry)
}

// slowDown brakes the machine's forward speed towards zero.
func slowDown(entry *donburi.Entry, dt float64) {
	m := components.Machine.Get(entry)
	m.Vel.Y = gamemath.Dampen(m.Vel.Y, m.Brake*dt)
}

// Fire launches the first dormant bullet from the machine's muzzle
// (mesh vertex 0). It returns false when the machine is inactive or every
// bullet is already in flight.
func Fire(e *ecs.ECS, arena *components.ArenaData, entry *donburi.Entry) bool {
	if !components.Mob.Get(entry).On {
		return false
	}
	m := components.Machine.Get(entry)
	if m.ShotCount >= len(m.Bullets) {
		return false
	}

	var shot *donburi.Entry
	for _, b := range m.Bullets {
		if components.Bullet.Get(b).Life == 0 {
			shot = b
			break
		}
	}
	if shot == nil {
		return false
	}

	t := components.Transform.Get(entry)
	muzzle := MobPoints(entry)[0]
	dir := muzzle.Sub(t.Pos).Scale(1 / t.Scale)

	b := components.Bullet.Get(shot)
	b.Pos = muzzle
	b.Prev = muzzle
	b.Vel = dir.Scale(b.Speed)
	b.Life = b.Lifespan
	m.ShotCount++

	arena.Bullets = append(arena.Bullets, shot)
	PlaySFX(e, m.ShotSound)
	return true
}

// bearing returns the angle from one point towards another.
func bearing(from, to gamemath.Vec) float64 {
	a, _ := gamemath.AngleFromVector(to.Sub(from))
	return a
}
