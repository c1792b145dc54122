package components

import (
	"github.com/automoto/ripoff/gamemath"
	"github.com/yohamta/donburi"
)

// SteeringData drives an AI machine toward a waypoint.
type SteeringData struct {
	Waypoint gamemath.Vec
	// Unit vector from the waypoint back toward where the approach began.
	// Crossing the plane through Waypoint with this normal counts as arrival.
	WaypointNormal gamemath.Vec
	MinVel         float64
	MaxVel         float64
	// When set, Waypoint is refreshed from the steering target's live position.
	TrackTarget bool
}

var Steering = donburi.NewComponentType[SteeringData]()
