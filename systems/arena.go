package systems

import (
	"log"
	"math"

	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/automoto/ripoff/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// GetArena returns the arena singleton. The arena must have been created
// with factory.CreateArena.
func GetArena(e *ecs.ECS) *components.ArenaData {
	return components.Arena.Get(components.Arena.MustFirst(e.World))
}

// gameplaySystems run in this order every frame once the clock has ticked.
var gameplaySystems = []ecs.System{
	WithRunningCheck(CheckWave),
	WithSimulationCheck(UpdatePlayers),
	WithSimulationCheck(UpdateKillers),
	WithSimulationCheck(UpdateRobbers),
	WithSimulationCheck(UpdateBullets),
	WithSimulationCheck(UpdateExplosions),
}

// SimulationSystems returns the frame pipeline in registration order.
func SimulationSystems() []ecs.System {
	return append([]ecs.System{UpdateClock}, gameplaySystems...)
}

// Step advances the simulation by one frame of dt seconds without going
// through ebiten's clock.
func Step(e *ecs.ECS, dt float64) {
	Advance(GetArena(e), dt)
	for _, s := range gameplaySystems {
		s(e)
	}
}

// UpdateClock sets this frame's delta from the fixed tick rate.
func UpdateClock(e *ecs.ECS) {
	Advance(GetArena(e), 1/float64(ebiten.TPS()))
}

// Advance derives the simulated delta for a frame that took frame seconds.
func Advance(arena *components.ArenaData, frame float64) {
	dt := math.Min(frame, cfg.Wave.MaxDelta)
	switch arena.State {
	case cfg.SimPaused:
		dt = 0
	case cfg.SimGameOver:
		dt /= cfg.Wave.GameOverSlowdown
	}
	arena.Delta = dt
}

// WithSimulationCheck wraps a system to skip execution when paused.
func WithSimulationCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetArena(e).State == cfg.SimPaused {
			return
		}
		system(e)
	}
}

// WithRunningCheck wraps a system to run only during normal play.
func WithRunningCheck(system ecs.System) ecs.System {
	return func(e *ecs.ECS) {
		if GetArena(e).State != cfg.SimRunning {
			return
		}
		system(e)
	}
}

// CheckWave starts the next wave once every robber is gone, or ends the
// game when there are no crates left to defend.
func CheckWave(e *ecs.ECS) {
	arena := GetArena(e)
	if arena.ActiveRobbers > 0 {
		return
	}
	if len(arena.Crates) == 0 {
		arena.State = cfg.SimGameOver
		log.Printf("game over after wave %d", arena.Wave)
		return
	}

	arena.Wave++
	AdjustDifficulty(e, arena)
	StartRobbers(e, arena)
	log.Printf("wave %d: %d crates, %d killers", arena.Wave, len(arena.Crates), len(arena.Killers))
}

// AdjustDifficulty raises the waypoint skip chance and adds killers for
// the current wave. Each killer added pushes the next one further out.
func AdjustDifficulty(e *ecs.ECS, arena *components.ArenaData) {
	arena.SkipChance = cfg.Wave.SkipChance + float64(arena.Wave)*cfg.Wave.SkipFactor

	want := arena.Wave / arena.KillerInterval
	if want > cfg.Killer.MaxKillers {
		want = cfg.Killer.MaxKillers
	}
	if want < 1 {
		want = 1
	}
	for n := want - len(arena.Killers); n > 0; n-- {
		arena.KillerInterval += cfg.Wave.KillerIntervalStep
		factory.CreateKiller(e, arena)
	}
}

// StartRobbers sends every idle robber after a random surviving crate.
func StartRobbers(e *ecs.ECS, arena *components.ArenaData) {
	if len(arena.Crates) == 0 {
		return
	}
	for _, r := range arena.Robbers {
		if components.Mob.Get(r).On {
			continue
		}
		crate := arena.Crates[arena.Rand.Intn(len(arena.Crates))]
		pos, angle := StartPos(arena)
		ResetRobber(arena, r, pos, angle, crate)
	}
}

// StartPos picks a random point on the circle through the arena corners,
// with a heading pointing away from the centre.
func StartPos(arena *components.ArenaData) (gamemath.Vec, float64) {
	a := arena.Rand.Float64() * gamemath.TwoPi
	p := gamemath.Rotate(a, gamemath.V(0, arena.ScreenRadius)).Add(arena.Center())
	return p, a
}

// Wave returns the current wave number.
func Wave(e *ecs.ECS) int {
	return GetArena(e).Wave
}

func IsGameOver(e *ecs.ECS) bool {
	return GetArena(e).State == cfg.SimGameOver
}
