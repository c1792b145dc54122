package components

import (
	"math/rand"

	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ArenaData is the simulation context shared by every system (singleton
// component). Entity lists keep creation order, which is also update and
// collision order.
type ArenaData struct {
	Bounds       gamemath.Rect
	ScreenRadius float64 // half the arena diagonal

	Wave           int
	SkipChance     float64
	KillerInterval int
	ActiveRobbers  int // robbers active at the start of their last update

	State     cfg.SimStateID
	PrevState cfg.SimStateID
	Delta     float64 // seconds to simulate this frame

	Rand *rand.Rand

	// World resolves entity handles held by robbers and crates.
	World donburi.World

	// Broadphase margin around Bounds, and the object used for bullet sweeps.
	Margin float64
	Sweep  *resolv.Object

	Crates     []*donburi.Entry
	Players    []*donburi.Entry
	Robbers    []*donburi.Entry
	Killers    []*donburi.Entry
	Bullets    []*donburi.Entry // in flight
	Explosions []*donburi.Entry
}

var Arena = donburi.NewComponentType[ArenaData]()

func (a *ArenaData) Center() gamemath.Vec {
	return a.Bounds.Center()
}

// BaseSpeed is the wave-scaled reference speed for AI machines.
func (a *ArenaData) BaseSpeed() float64 {
	return cfg.Wave.BaseSpeed + cfg.Wave.BaseSpeed*float64(a.Wave)*cfg.Wave.SpeedScale
}

// Offscreen reports whether a circle of radius r at p is completely outside
// the arena.
func (a *ArenaData) Offscreen(p gamemath.Vec, r float64) bool {
	return a.Bounds.Outside(p, r)
}
