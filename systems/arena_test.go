package systems

import (
	"testing"

	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestCreateArena(t *testing.T) {
	_, arena := newTestArena(t)

	assert.Len(t, arena.Crates, 9)
	assert.Len(t, arena.Players, 2)
	assert.Len(t, arena.Robbers, 6)
	assert.Empty(t, arena.Killers)
	assert.Equal(t, 0, arena.Wave)
	assert.Equal(t, cfg.SimRunning, arena.State)

	centre := arena.Center()
	assert.Equal(t, centre, components.Transform.Get(arena.Crates[4]).Pos)
	for _, r := range arena.Robbers {
		assert.False(t, components.Mob.Get(r).On)
	}
}

func TestAdvance(t *testing.T) {
	_, arena := newTestArena(t)

	Advance(arena, 1.0/60)
	assert.InDelta(t, 1.0/60, arena.Delta, 1e-12)

	Advance(arena, 0.5)
	assert.InDelta(t, 0.1, arena.Delta, 1e-12)

	arena.State = cfg.SimGameOver
	Advance(arena, 0.5)
	assert.InDelta(t, 0.025, arena.Delta, 1e-12)

	arena.State = cfg.SimPaused
	Advance(arena, 0.5)
	assert.Zero(t, arena.Delta)
}

func TestAdjustDifficulty(t *testing.T) {
	e, arena := newTestArena(t)

	arena.Wave = 1
	AdjustDifficulty(e, arena)
	assert.InDelta(t, 0.11, arena.SkipChance, 1e-12)
	assert.Len(t, arena.Killers, 1, "at least one killer from the first wave")
	assert.Equal(t, 6, arena.KillerInterval)

	arena.Wave = 12
	AdjustDifficulty(e, arena)
	assert.Len(t, arena.Killers, 2)
	assert.Equal(t, 8, arena.KillerInterval)

	arena.Wave = 100
	AdjustDifficulty(e, arena)
	assert.Len(t, arena.Killers, cfg.Killer.MaxKillers)
}

func TestStartPosOnBoundingCircle(t *testing.T) {
	_, arena := newTestArena(t)
	for i := 0; i < 20; i++ {
		p, a := StartPos(arena)
		assert.InDelta(t, arena.ScreenRadius, p.Sub(arena.Center()).Len(), 1e-9)
		assert.GreaterOrEqual(t, a, 0.0)
		assert.Less(t, a, gamemath.TwoPi)
	}
}

func TestWaveProgression(t *testing.T) {
	e, arena := newTestArena(t)

	Step(e, 0.01)
	require.Equal(t, 1, Wave(e))
	assert.Equal(t, 6, arena.ActiveRobbers)
	assert.Len(t, arena.Killers, 1)
	for _, r := range arena.Robbers {
		assert.True(t, components.Mob.Get(r).On)
		assert.True(t, e.World.Valid(components.Robber.Get(r).Target))
	}

	for _, r := range arena.Robbers {
		KillRobber(arena, r)
	}
	Step(e, 0.01)
	assert.Equal(t, 0, arena.ActiveRobbers)
	assert.Equal(t, 1, Wave(e), "the clear is noticed on the next frame")

	Step(e, 0.01)
	assert.Equal(t, 2, Wave(e))
	assert.Len(t, arena.Crates, 9)
	assert.Equal(t, 6, arena.ActiveRobbers)
	assert.False(t, IsGameOver(e))
}

func TestGameOverWhenCratesAreGone(t *testing.T) {
	e, arena := newTestArena(t)
	Step(e, 0.01)
	require.Equal(t, 1, Wave(e))

	for _, r := range arena.Robbers {
		KillRobber(arena, r)
	}
	crates := append([]*donburi.Entry(nil), arena.Crates...)
	for _, c := range crates {
		KillCrate(e, arena, c)
	}
	require.Empty(t, arena.Crates)

	Step(e, 0.01)
	Step(e, 0.01)
	require.True(t, IsGameOver(e))

	for i := 0; i < 10; i++ {
		Step(e, 0.1)
	}
	assert.Equal(t, 1, Wave(e))
	for _, r := range arena.Robbers {
		assert.False(t, components.Mob.Get(r).On, "no robbers respawn after game over")
	}
}

func TestKillCrateOnce(t *testing.T) {
	e, arena := newTestArena(t)
	crate := arena.Crates[0]
	ent := crate.Entity()

	KillCrate(e, arena, crate)
	KillCrate(e, arena, crate)

	assert.Len(t, arena.Crates, 8)
	assert.False(t, e.World.Valid(ent))
	assert.Equal(t, 1, countSFX(e, cfg.SoundCrateDestroyed))
}

func TestPauseResume(t *testing.T) {
	e, arena := newTestArena(t)
	player := components.Transform.Get(arena.Players[0])
	before := player.Pos

	TogglePause(e)
	require.True(t, IsPaused(e))
	Step(e, 0.1)
	assert.Zero(t, arena.Delta)
	assert.Equal(t, before, player.Pos)
	assert.Equal(t, 0, Wave(e), "wave check is suspended while paused")

	TogglePause(e)
	assert.Equal(t, cfg.SimRunning, arena.State)
	Step(e, 0.1)
	assert.NotEqual(t, before, player.Pos)
	assert.Equal(t, 2, countSFX(e, cfg.SoundPauseToggled))
}

func TestPauseRestoresGameOver(t *testing.T) {
	e, arena := newTestArena(t)
	arena.State = cfg.SimGameOver

	TogglePause(e)
	assert.Equal(t, cfg.SimPaused, arena.State)
	TogglePause(e)
	assert.Equal(t, cfg.SimGameOver, arena.State)
}
