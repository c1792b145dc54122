package systems

import (
	"testing"

	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/automoto/ripoff/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func TestFireFromMuzzle(t *testing.T) {
	e, arena := newTestArena(t)
	player := arena.Players[0]

	require.True(t, Fire(e, arena, player))

	m := components.Machine.Get(player)
	assert.Equal(t, 1, m.ShotCount)
	require.Len(t, arena.Bullets, 1)

	b := components.Bullet.Get(arena.Bullets[0])
	// Slot 0 faces -X from (0, 320); the muzzle sits 0.75 scale ahead
	assert.InDelta(t, -12, b.Pos.X, 1e-9)
	assert.InDelta(t, 320, b.Pos.Y, 1e-9)
	assert.InDelta(t, -750, b.Vel.X, 1e-9)
	assert.InDelta(t, 0, b.Vel.Y, 1e-9)
	assert.Equal(t, cfg.Player.BulletLife, b.Life)
	assert.Equal(t, 1, countSFX(e, cfg.SoundShot))
}

func TestFirePoolExhaustion(t *testing.T) {
	e, arena := newTestArena(t)
	player := arena.Players[1]

	for i := 0; i < cfg.Player.BulletCount; i++ {
		require.True(t, Fire(e, arena, player), "shot %d", i)
	}
	assert.False(t, Fire(e, arena, player))
	assert.Equal(t, cfg.Player.BulletCount, components.Machine.Get(player).ShotCount)
	assert.Len(t, arena.Bullets, cfg.Player.BulletCount)
	assert.Equal(t, cfg.Player.BulletCount, countSFX(e, cfg.SoundShotAlt))
}

func TestFireInactive(t *testing.T) {
	e, arena := newTestArena(t)
	player := arena.Players[0]
	KillPlayer(player)

	assert.False(t, Fire(e, arena, player))
	assert.Empty(t, arena.Bullets)
}

func TestBulletExpiryRestoresShotCount(t *testing.T) {
	e, arena := newTestArena(t)
	player := arena.Players[0]
	require.True(t, Fire(e, arena, player))
	shot := arena.Bullets[0]

	arena.Delta = 0.25
	for i := 0; i < 3; i++ {
		UpdateBullets(e)
	}
	require.Len(t, arena.Bullets, 1)
	assert.InDelta(t, 0.25, components.Bullet.Get(shot).Life, 1e-12)

	UpdateBullets(e)
	assert.Empty(t, arena.Bullets)
	assert.Zero(t, components.Bullet.Get(shot).Life)
	assert.Equal(t, 0, components.Machine.Get(player).ShotCount)

	// The bullet is reusable once it is back in the pool
	assert.True(t, Fire(e, arena, player))
}

func aimBullet(entry *donburi.Entry, from, to gamemath.Vec) {
	b := components.Bullet.Get(entry)
	b.Prev = from
	b.Pos = to
	b.Life = 1
}

func TestPlayerBulletStopsAtFirstKiller(t *testing.T) {
	e, arena := newTestArena(t)
	hit := gamemath.V(400, 300)

	k1 := factory.CreateKiller(e, arena)
	k2 := factory.CreateKiller(e, arena)
	ResetKiller(arena, k1, hit, 0)
	ResetKiller(arena, k2, hit, 0)
	robber := arena.Robbers[0]
	ResetRobber(arena, robber, hit, 0, arena.Crates[0])

	shot := components.Machine.Get(arena.Players[0]).Bullets[0]
	aimBullet(shot, gamemath.V(350, 300), gamemath.V(450, 300))

	assert.True(t, CheckBullet(e, arena, shot))
	assert.False(t, components.Mob.Get(k1).On)
	assert.Equal(t, cfg.StateDown, components.State.Get(k1).CurrentState)
	assert.True(t, components.Mob.Get(k2).On)
	assert.True(t, components.Mob.Get(robber).On)
	assert.Len(t, arena.Explosions, 1)
}

func TestPlayerBulletHitsEveryRobberOnItsPath(t *testing.T) {
	e, arena := newTestArena(t)
	r0, r1, r2 := arena.Robbers[0], arena.Robbers[1], arena.Robbers[2]
	ResetRobber(arena, r0, gamemath.V(400, 300), 0, arena.Crates[0])
	ResetRobber(arena, r1, gamemath.V(430, 305), 0, arena.Crates[0])
	ResetRobber(arena, r2, gamemath.V(430, 200), 0, arena.Crates[0])
	require.Equal(t, 3, components.Crate.Get(arena.Crates[0]).Targeted)

	shot := components.Machine.Get(arena.Players[0]).Bullets[0]
	aimBullet(shot, gamemath.V(350, 300), gamemath.V(450, 300))

	assert.True(t, CheckBullet(e, arena, shot))
	assert.False(t, components.Mob.Get(r0).On)
	assert.False(t, components.Mob.Get(r1).On)
	assert.True(t, components.Mob.Get(r2).On)
	assert.Equal(t, 1, components.Crate.Get(arena.Crates[0]).Targeted)
	assert.Len(t, arena.Explosions, 2)
}

func TestKillerBulletHitsPlayers(t *testing.T) {
	e, arena := newTestArena(t)
	killer := factory.CreateKiller(e, arena)
	player := arena.Players[0]

	shot := components.Machine.Get(killer).Bullets[0]
	aimBullet(shot, gamemath.V(-50, 320), gamemath.V(50, 320))

	assert.True(t, CheckBullet(e, arena, shot))
	assert.False(t, components.Mob.Get(player).On)
	assert.Equal(t, cfg.Player.DeadTime, components.Player.Get(player).Dead)
	assert.True(t, components.Mob.Get(arena.Players[1]).On)
	assert.Equal(t, 1, countSFX(e, cfg.SoundExplosion))
}

func TestBulletMissesInactiveTargets(t *testing.T) {
	e, arena := newTestArena(t)
	killer := factory.CreateKiller(e, arena)
	KillPlayer(arena.Players[0])

	shot := components.Machine.Get(killer).Bullets[0]
	aimBullet(shot, gamemath.V(-50, 320), gamemath.V(50, 320))

	assert.False(t, CheckBullet(e, arena, shot))
	assert.Empty(t, arena.Explosions)
}

func TestSweepCandidatesFallsBackNearEdges(t *testing.T) {
	e, arena := newTestArena(t)

	near := sweepCandidates(e, arena, gamemath.V(400, 300), gamemath.V(410, 300))
	require.NotNil(t, near)
	assert.False(t, near.has(arena.Players[0]))

	far := gamemath.V(-arena.Margin, 0)
	assert.Nil(t, sweepCandidates(e, arena, far, far.Add(gamemath.V(5, 0))))
}
