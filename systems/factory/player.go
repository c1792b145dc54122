package factory

import (
	"math"

	"github.com/automoto/ripoff/archetypes"
	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/automoto/ripoff/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlayer spawns the player for a slot. Slot 0 starts on the left edge
// with its controls in the top-right corner; slot 1 mirrors it.
func CreatePlayer(ecs *ecs.ECS, arena *components.ArenaData, slot int) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	b := arena.Bounds
	zone := b.W * cfg.Input.ZoneFraction
	half := zone / 2

	data := components.PlayerData{Slot: slot}
	sound := cfg.SoundShot
	if slot == 0 {
		data.Dir = 1
		data.StartPos = gamemath.V(b.X, b.Center().Y)
		data.MoveZone = gamemath.Rect{X: b.X + b.W - zone, Y: b.Y, W: zone, H: zone}
		data.FireZone = gamemath.Rect{X: b.X + b.W - half, Y: b.Y + zone*2.25, W: half, H: zone}
	} else {
		data.Dir = -1
		data.StartPos = gamemath.V(b.X+b.W, b.Center().Y)
		data.MoveZone = gamemath.Rect{X: b.X, Y: b.Y + b.H - zone, W: zone, H: zone}
		data.FireZone = gamemath.Rect{X: b.X, Y: b.Y + b.H - zone*3.25, W: half, H: zone}
		sound = cfg.SoundShotAlt
	}
	data.MoveOrigin = data.MoveZone.Center()

	scale := cfg.Arena.EntityScale
	angle := gamemath.AddAngle(0, -math.Pi/2*data.Dir)
	data.DestAngle = angle

	components.Transform.SetValue(player, components.TransformData{
		Pos:   data.StartPos,
		Angle: angle,
		Scale: scale,
	})
	components.Mob.SetValue(player, components.MobData{
		On:    true,
		Color: cfg.Player.Colors[slot%len(cfg.Player.Colors)],
		Mesh:  &cfg.PlayerMesh,
	})
	components.Machine.SetValue(player, components.MachineData{
		Vel:          gamemath.V(0, scale*cfg.Player.SpawnSpeedFactor),
		Faction:      components.FactionPlayer,
		Wrap:         true,
		Brake:        cfg.Player.Brake,
		AngularBrake: cfg.Player.AngularBrake,
		ShotSound:    sound,
		Bullets:      CreateBulletPool(ecs, player, cfg.Player.BulletCount, cfg.Player.BulletSpeed, cfg.Player.BulletLife),
	})
	components.Player.SetValue(player, data)
	attachProxy(ecs, player, data.StartPos, scale, arena.Margin, tags.ResolvPlayer)

	arena.Players = append(arena.Players, player)
	return player
}
