package systems

import (
	"github.com/automoto/ripoff/components"
	"github.com/automoto/ripoff/gamemath"
	"github.com/yohamta/donburi"
)

// resetSteering puts an AI machine back into play at pos, facing angle.
func resetSteering(entry *donburi.Entry, pos gamemath.Vec, angle float64) {
	components.Mob.Get(entry).On = true

	m := components.Machine.Get(entry)
	m.AVel = 0
	m.Vel = gamemath.Vec{}
	m.Wrap = false

	t := components.Transform.Get(entry)
	t.Pos = pos
	t.Angle = angle

	s := components.Steering.Get(entry)
	s.MinVel = 0
	s.MaxVel = 0
}

// updateVelocities turns the machine towards its waypoint and sets the
// forward speed to the remaining distance, clamped to the steering limits.
func updateVelocities(entry *donburi.Entry) {
	s := components.Steering.Get(entry)
	t := components.Transform.Get(entry)
	m := components.Machine.Get(entry)

	a, l := gamemath.AngleFromVector(s.Waypoint.Sub(t.Pos))
	m.AVel = gamemath.DeltaAngle(t.Angle, a)
	m.Vel = gamemath.V(0, gamemath.Clamp(l, s.MinVel, s.MaxVel))
}

// checkDestination reports whether the machine is within MinVel of its
// waypoint and has crossed the plane through it.
func checkDestination(entry *donburi.Entry) bool {
	s := components.Steering.Get(entry)
	t := components.Transform.Get(entry)

	d := t.Pos.Sub(s.Waypoint)
	return d.LenSq() < s.MinVel*s.MinVel && d.Dot(s.WaypointNormal) <= 0
}

// setWaypoint aims the machine at wp. The normal points from wp back to
// the machine and defines the arrival plane.
func setWaypoint(entry *donburi.Entry, wp gamemath.Vec) {
	s := components.Steering.Get(entry)
	t := components.Transform.Get(entry)
	s.Waypoint = wp
	s.WaypointNormal = t.Pos.Sub(wp)
	gamemath.Normalize(&s.WaypointNormal)
}
