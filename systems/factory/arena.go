package factory

import (
	"math"
	"math/rand"

	"github.com/automoto/ripoff/archetypes"
	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/automoto/ripoff/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateArena builds the whole play field: the arena singleton, the
// broadphase space, the crate grid, both players and the robber pool.
// Killers arrive later through difficulty adjustment.
func CreateArena(ecs *ecs.ECS, width, height float64, seed int64) *donburi.Entry {
	entry := archetypes.Arena.Spawn(ecs)

	radius := math.Hypot(width, height) / 2
	components.Arena.SetValue(entry, components.ArenaData{
		Bounds:         gamemath.Rect{W: width, H: height},
		ScreenRadius:   radius,
		SkipChance:     cfg.Wave.SkipChance,
		KillerInterval: cfg.Wave.KillerInterval,
		State:          cfg.SimRunning,
		PrevState:      cfg.SimRunning,
		Rand:           rand.New(rand.NewSource(seed)),
		Margin:         radius,
		World:          ecs.World,
	})
	arena := components.Arena.Get(entry)

	cell := cfg.Arena.CellSize
	spaceEntry := CreateSpace(ecs,
		int(width+2*arena.Margin),
		int(height+2*arena.Margin),
		cell, cell,
	)
	arena.Sweep = resolv.NewObject(0, 0, 1, 1, tags.ResolvSweep)
	components.Space.Get(spaceEntry).Add(arena.Sweep)

	for i := 0; i < cfg.Arena.CrateCount; i++ {
		CreateCrate(ecs, arena, CratePosition(arena, i))
	}
	for slot := range cfg.Player.Colors {
		CreatePlayer(ecs, arena, slot)
	}
	for i := 0; i < cfg.Robber.Count; i++ {
		CreateRobber(ecs, arena)
	}

	return entry
}
