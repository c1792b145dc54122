package components

import "github.com/yohamta/donburi"

type RobberData struct {
	WaypointIndex int
	ApproachAngle float64

	// Crate being stolen. Crates are removed from the world when destroyed,
	// so this is an entity handle checked with World.Valid before use.
	Target donburi.Entity
}

var Robber = donburi.NewComponentType[RobberData]()
