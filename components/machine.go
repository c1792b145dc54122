package components

import (
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/yohamta/donburi"
)

// Faction decides who a bullet can hit.
type Faction int

const (
	FactionNone Faction = iota
	FactionPlayer
	FactionAI
)

// MachineData is a movable, possibly armed entity.
type MachineData struct {
	Vel          gamemath.Vec // local frame, +Y is forward
	AVel         float64
	Faction      Faction
	Wrap         bool // wrap around arena edges instead of leaving
	Brake        float64
	AngularBrake float64

	ShotCount int
	Bullets   []*donburi.Entry // fixed pool owned by this machine
	ShotSound cfg.SoundID
}

var Machine = donburi.NewComponentType[MachineData]()
