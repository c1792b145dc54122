package systems

import (
	"image/color"
	"math"

	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const lineWidth = 2

// DrawArena renders crates, players, killers, bullets, robbers and
// explosions, in that order.
func DrawArena(e *ecs.ECS, screen *ebiten.Image) {
	arena := GetArena(e)

	for _, c := range arena.Crates {
		drawMob(screen, c)
	}
	for _, p := range arena.Players {
		drawMob(screen, p)
	}
	for _, k := range arena.Killers {
		drawMob(screen, k)
	}
	for _, b := range arena.Bullets {
		drawBullet(screen, components.Bullet.Get(b))
	}
	for _, r := range arena.Robbers {
		drawRobber(screen, arena, r)
	}
	for _, x := range arena.Explosions {
		drawExplosion(screen, components.Explosion.Get(x))
	}
}

func drawMob(screen *ebiten.Image, entry *donburi.Entry) {
	mob := components.Mob.Get(entry)
	if !mob.On {
		return
	}
	pts := MobPoints(entry)
	for _, s := range mob.Mesh.Segs {
		strokeLine(screen, pts[s[0]], pts[s[1]], lineWidth, mob.Color)
	}
}

// drawRobber draws the robber and the tether to the crate it is dragging.
func drawRobber(screen *ebiten.Image, arena *components.ArenaData, entry *donburi.Entry) {
	drawMob(screen, entry)
	if !components.Mob.Get(entry).On {
		return
	}
	crate, ok := robberTarget(arena, entry)
	if !ok || components.Crate.Get(crate).TetheredBy != entry.Entity() {
		return
	}
	pts := components.Mob.Get(entry).Points
	strokeLine(screen, pts[cfg.Robber.TetherVertex], components.Transform.Get(crate).Pos, lineWidth, cfg.Robber.TetherColor)
}

func drawBullet(screen *ebiten.Image, b *components.BulletData) {
	tail := b.Pos.Add(gamemath.V(cfg.Bullet.TrailLength/2, cfg.Bullet.TrailLength/2))
	strokeLine(screen, b.Pos, tail, cfg.Bullet.TrailLength, cfg.Bullet.Color)
}

func drawExplosion(screen *ebiten.Image, ex *components.ExplosionData) {
	c := fadeColor(ex.Color, ex.Fade)
	for _, s := range ex.Segments {
		end := s.Origin.Add(gamemath.Rotate(s.Angle, s.Delta))
		strokeLine(screen, s.Origin, end, lineWidth, c)
	}

	a := ex.Ring
	if a <= 0 {
		return
	}
	ring := premultiply(color.RGBA{
		R: 255,
		G: uint8(math.Min(255, 1.5*a*255)),
		B: uint8(a * a * 255),
		A: uint8(a * 255),
	})
	vector.StrokeCircle(screen, float32(ex.Pos.X), float32(ex.Pos.Y), float32(ex.Blast),
		float32(a*cfg.Explosion.RingMaxWidth), ring, true)
}

// DrawControls outlines each player's touch zones.
func DrawControls(e *ecs.ECS, screen *ebiten.Image) {
	alpha := cfg.Input.ZoneAlpha
	if alpha <= 0 {
		return
	}
	move := fadeColor(color.RGBA{B: 127, A: 255}, alpha)
	fire := fadeColor(color.RGBA{R: 127, B: 127, A: 255}, alpha)
	for _, p := range GetArena(e).Players {
		player := components.Player.Get(p)
		strokeRect(screen, player.MoveZone, move)
		strokeRect(screen, player.FireZone, fire)
	}
}

func strokeLine(screen *ebiten.Image, p0, p1 gamemath.Vec, width float64, c color.RGBA) {
	vector.StrokeLine(screen, float32(p0.X), float32(p0.Y), float32(p1.X), float32(p1.Y), float32(width), premultiply(c), true)
}

func strokeRect(screen *ebiten.Image, r gamemath.Rect, c color.RGBA) {
	vector.StrokeRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), lineWidth, premultiply(c), false)
}

// fadeColor scales c's alpha by a.
func fadeColor(c color.RGBA, a float64) color.RGBA {
	c.A = uint8(gamemath.Clamp(a, 0, 1) * float64(c.A))
	return c
}

// premultiply converts a straight-alpha color to the premultiplied form
// ebiten expects.
func premultiply(c color.RGBA) color.RGBA {
	if c.A == 255 {
		return c
	}
	k := float64(c.A) / 255
	return color.RGBA{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
		A: c.A,
	}
}
