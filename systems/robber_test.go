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

func TestCheckDestination(t *testing.T) {
	_, arena := newTestArena(t)
	robber := arena.Robbers[0]

	s := components.Steering.Get(robber)
	s.Waypoint = gamemath.V(100, 100)
	s.WaypointNormal = gamemath.V(0, -1) // approaching from above
	s.MinVel = 10
	pos := &components.Transform.Get(robber).Pos

	*pos = gamemath.V(100, 95)
	assert.False(t, checkDestination(robber), "close but not yet across the plane")

	*pos = gamemath.V(100, 105)
	assert.True(t, checkDestination(robber))

	*pos = gamemath.V(100, 100)
	assert.True(t, checkDestination(robber), "on the plane counts as arrived")

	*pos = gamemath.V(100, 150)
	assert.False(t, checkDestination(robber), "across the plane but too far")
}

func TestUpdateVelocities(t *testing.T) {
	_, arena := newTestArena(t)
	robber := arena.Robbers[0]
	components.Transform.Get(robber).Pos = gamemath.V(100, 100)
	components.Transform.Get(robber).Angle = 0

	s := components.Steering.Get(robber)
	s.Waypoint = gamemath.V(300, 100)
	s.MinVel, s.MaxVel = 10, 50

	updateVelocities(robber)
	m := components.Machine.Get(robber)
	assert.InDelta(t, gamemath.TwoPi/4, m.AVel, 1e-9)
	assert.Equal(t, gamemath.V(0, 50), m.Vel)

	s.Waypoint = gamemath.V(100, 101)
	updateVelocities(robber)
	assert.Equal(t, gamemath.V(0, 10), m.Vel)
}

// startRobber activates the first robber north of the arena after the
// centre crate.
func startRobber(t *testing.T, arena *components.ArenaData) (*donburi.Entry, *donburi.Entry) {
	t.Helper()
	robber := arena.Robbers[0]
	crate := arena.Crates[4]
	ResetRobber(arena, robber, gamemath.V(480, -200), 0, crate)
	return robber, crate
}

func TestNextWaypointWithoutSkipping(t *testing.T) {
	_, arena := newTestArena(t)
	arena.SkipChance = 0
	robber, crate := startRobber(t, arena)

	r := components.Robber.Get(robber)
	s := components.Steering.Get(robber)
	require.Equal(t, 0, r.WaypointIndex)
	assert.Equal(t, cfg.StateApproach, components.State.Get(robber).CurrentState)
	assert.Equal(t, 1, components.Crate.Get(crate).Targeted)
	assert.InDelta(t, 80, s.MaxVel, 1e-9)
	assert.InDelta(t, 60, s.MinVel, 1e-9)
	assert.True(t, arena.Bounds.Contains(s.Waypoint), "approach rings are clipped to the arena")

	for want := 1; want <= cfg.Robber.PickupIndex; want++ {
		NextWaypoint(arena, robber)
		assert.Equal(t, want, r.WaypointIndex)
	}
	// The pickup ring has zero radius
	cratePos := components.Transform.Get(crate).Pos
	assert.InDelta(t, cratePos.X, s.Waypoint.X, 1e-9)
	assert.InDelta(t, cratePos.Y, s.Waypoint.Y, 1e-9)

	// Too far away to grab the crate at the exit step: chase it instead
	NextWaypoint(arena, robber)
	assert.Equal(t, cfg.Robber.ExitIndex, r.WaypointIndex)
	assert.Equal(t, cfg.StateFollow, components.State.Get(robber).CurrentState)
	assert.True(t, s.TrackTarget)
	assert.Equal(t, cratePos, s.Waypoint)
	assert.Equal(t, donburi.Null, components.Crate.Get(crate).TetheredBy)
}

func TestNextWaypointAlwaysSkipsToPickup(t *testing.T) {
	_, arena := newTestArena(t)
	arena.SkipChance = 1
	robber, _ := startRobber(t, arena)

	assert.Equal(t, cfg.Robber.PickupIndex, components.Robber.Get(robber).WaypointIndex)
}

// tetherRobber walks the robber through the exit step while it overlaps
// its crate.
func tetherRobber(t *testing.T, arena *components.ArenaData) (*donburi.Entry, *donburi.Entry) {
	t.Helper()
	robber, crate := startRobber(t, arena)
	components.Transform.Get(robber).Pos = components.Transform.Get(crate).Pos.Add(gamemath.V(5, 0))
	components.Robber.Get(robber).WaypointIndex = cfg.Robber.PickupIndex
	NextWaypoint(arena, robber)
	require.Equal(t, robber.Entity(), components.Crate.Get(crate).TetheredBy)
	return robber, crate
}

func TestSetExitTethersOverlappingCrate(t *testing.T) {
	_, arena := newTestArena(t)
	robber, crate := tetherRobber(t, arena)

	assert.Equal(t, cfg.StateExit, components.State.Get(robber).CurrentState)
	assert.False(t, components.Machine.Get(robber).Wrap)

	// Exit waypoint is well outside the arena and never clipped
	wp := components.Steering.Get(robber).Waypoint
	cratePos := components.Transform.Get(crate).Pos
	assert.InDelta(t, 1.5*arena.ScreenRadius, wp.Sub(cratePos).Len(), 1e-6)
	assert.False(t, arena.Bounds.Contains(wp))
}

func TestSetExitDoesNotStealTetheredCrate(t *testing.T) {
	_, arena := newTestArena(t)
	_, crate := tetherRobber(t, arena)

	thief := arena.Robbers[1]
	ResetRobber(arena, thief, components.Transform.Get(crate).Pos, 0, crate)
	components.Robber.Get(thief).WaypointIndex = cfg.Robber.PickupIndex
	NextWaypoint(arena, thief)

	assert.Equal(t, cfg.StateFollow, components.State.Get(thief).CurrentState)
	assert.NotEqual(t, thief.Entity(), components.Crate.Get(crate).TetheredBy)
}

func TestPullCrateHoldsTetherLength(t *testing.T) {
	e, arena := newTestArena(t)
	robber, crate := tetherRobber(t, arena)

	ct := components.Transform.Get(crate)
	start := ct.Pos
	components.Transform.Get(robber).Pos = start.Add(gamemath.V(50, 10))

	PullCrate(e, arena, robber)

	d := components.Transform.Get(robber).Pos.Sub(ct.Pos)
	assert.InDelta(t, cfg.Robber.TetherLength, d.X, 1e-9, "x separation pulled to exactly the tether length")
	assert.InDelta(t, 10, d.Y, 1e-9, "y separation within the tether is left alone")
	assert.InDelta(t, start.X+50-cfg.Robber.TetherLength, ct.Pos.X, 1e-9)

	// Negative direction
	components.Transform.Get(robber).Pos = ct.Pos.Add(gamemath.V(0, -40))
	PullCrate(e, arena, robber)
	d = components.Transform.Get(robber).Pos.Sub(ct.Pos)
	assert.InDelta(t, -cfg.Robber.TetherLength, d.Y, 1e-9)
	assert.True(t, components.Mob.Get(robber).On)
}

func TestPullCrateOffscreenDestroysCrate(t *testing.T) {
	e, arena := newTestArena(t)
	robber, crate := tetherRobber(t, arena)
	ent := crate.Entity()

	components.Transform.Get(crate).Pos = gamemath.V(-100, 320)
	components.Transform.Get(robber).Pos = gamemath.V(-120, 320)
	PullCrate(e, arena, robber)

	assert.False(t, components.Mob.Get(robber).On)
	assert.Equal(t, cfg.StateDone, components.State.Get(robber).CurrentState)
	assert.Len(t, arena.Crates, 8)
	assert.False(t, e.World.Valid(ent))
	assert.Equal(t, donburi.Null, components.Robber.Get(robber).Target)

	// Finished robbers leave the broadphase
	obj := components.Object.Get(robber)
	assert.Zero(t, obj.X)
	assert.Zero(t, obj.Y)
	assert.Equal(t, 1, countSFX(e, cfg.SoundCrateDestroyed))
}

func TestKillRobberDropsCrate(t *testing.T) {
	_, arena := newTestArena(t)
	robber, crate := tetherRobber(t, arena)

	KillRobber(arena, robber)

	cd := components.Crate.Get(crate)
	assert.False(t, components.Mob.Get(robber).On)
	assert.Equal(t, donburi.Null, cd.TetheredBy)
	assert.Zero(t, components.Object.Get(robber).X)
	assert.Equal(t, 0, cd.Targeted)
	assert.True(t, components.Mob.Get(crate).On)
	assert.Len(t, arena.Crates, 9)
}

func TestFollowReturnsToPickupWhenCrateIsFree(t *testing.T) {
	e, arena := newTestArena(t)
	arena.SkipChance = 1
	robber, _ := startRobber(t, arena)
	NextWaypoint(arena, robber)
	require.Equal(t, cfg.StateFollow, components.State.Get(robber).CurrentState)

	followState(e, arena, robber, 0.01)

	assert.Equal(t, cfg.StateApproach, components.State.Get(robber).CurrentState)
	assert.Equal(t, cfg.Robber.PickupIndex, components.Robber.Get(robber).WaypointIndex)
	assert.False(t, components.Steering.Get(robber).TrackTarget)
}

func TestFollowerLeavesWhenCrateIsDestroyed(t *testing.T) {
	e, arena := newTestArena(t)
	holder, crate := tetherRobber(t, arena)

	follower := arena.Robbers[1]
	ResetRobber(arena, follower, gamemath.V(300, 300), 0, crate)
	components.Robber.Get(follower).WaypointIndex = cfg.Robber.PickupIndex
	NextWaypoint(arena, follower)
	require.Equal(t, cfg.StateFollow, components.State.Get(follower).CurrentState)

	ent := crate.Entity()
	components.Transform.Get(crate).Pos = gamemath.V(-100, 320)
	PullCrate(e, arena, holder)
	require.False(t, e.World.Valid(ent))

	UpdateRobbers(e)
	UpdateRobbers(e)
	assert.False(t, components.Mob.Get(follower).On)
	assert.Equal(t, 0, arena.ActiveRobbers)
}

func TestRobbersIgnoreReusedCrateId(t *testing.T) {
	e, arena := newTestArena(t)
	holder, crate := tetherRobber(t, arena)

	follower := arena.Robbers[1]
	ResetRobber(arena, follower, gamemath.V(300, 300), 0, crate)
	components.Robber.Get(follower).WaypointIndex = cfg.Robber.PickupIndex
	NextWaypoint(arena, follower)
	require.Equal(t, cfg.StateFollow, components.State.Get(follower).CurrentState)

	approacher := arena.Robbers[2]
	ResetRobber(arena, approacher, gamemath.V(700, 300), 0, crate)
	stale := components.Robber.Get(approacher).Target

	components.Transform.Get(crate).Pos = gamemath.V(-100, 320)
	PullCrate(e, arena, holder)
	require.False(t, e.World.Valid(stale))

	// The next entity created takes the freed id
	Explode(e, arena, holder)
	require.False(t, e.World.Valid(stale))

	require.NotPanics(t, func() { KillRobber(arena, approacher) })
	assert.Equal(t, donburi.Null, components.Robber.Get(approacher).Target)

	require.NotPanics(t, func() {
		UpdateRobbers(e)
		UpdateRobbers(e)
	})
	assert.False(t, components.Mob.Get(follower).On)
	assert.Equal(t, donburi.Null, components.Robber.Get(follower).Target)
	assert.Equal(t, 0, arena.ActiveRobbers)
	for _, c := range arena.Crates {
		assert.Equal(t, 0, components.Crate.Get(c).Targeted)
	}
}

func TestRobberDragsCrateOffscreen(t *testing.T) {
	e, arena := newTestArena(t)
	robber, crate := tetherRobber(t, arena)
	ent := crate.Entity()

	arena.Delta = 0.1
	for i := 0; i < 400 && components.Mob.Get(robber).On; i++ {
		UpdateRobbers(e)
		if e.World.Valid(ent) {
			d := components.Transform.Get(robber).Pos.Sub(components.Transform.Get(crate).Pos)
			assert.LessOrEqual(t, d.Len(), 2*cfg.Robber.TetherLength)
		}
	}
	assert.False(t, components.Mob.Get(robber).On)
	assert.False(t, e.World.Valid(ent))
	assert.Len(t, arena.Crates, 8)
}
