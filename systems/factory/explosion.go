package factory

import (
	"image/color"

	"github.com/automoto/ripoff/archetypes"
	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateExplosion breaks a mob's wireframe into drifting segments around a
// growing blast ring. points is the mob's mesh in arena space.
func CreateExplosion(ecs *ecs.ECS, arena *components.ArenaData, pos gamemath.Vec, c color.RGBA, points []gamemath.Vec, segs [][2]int) *donburi.Entry {
	e := archetypes.Explosion.Spawn(ecs)
	rng := arena.Rand
	ex := cfg.Explosion

	segments := make([]components.WreckSegment, 0, len(segs))
	for _, s := range segs {
		p0, p1 := points[s[0]], points[s[1]]
		segments = append(segments, components.WreckSegment{
			Origin: p0,
			Delta:  p1.Sub(p0),
			Vel: gamemath.V(
				(rng.Float64()*2-1)*ex.SegmentSpeed,
				(rng.Float64()*2-1)*ex.SegmentSpeed,
			),
			AVel: (rng.Float64()*2 - 1) * ex.SegmentSpin,
		})
	}

	c.A = 255
	components.Explosion.SetValue(e, components.ExplosionData{
		Pos:      pos,
		Color:    c,
		Segments: segments,
		Fade:     1,
		Ring:     1,
		Blast:    ex.RingStartRadius,
		FadeTw:   gween.New(1, 0, float32(1/ex.FadeRate), ease.Linear),
		RingTw:   gween.New(1, 0, float32(1/ex.RingFadeRate), ease.Linear),
	})

	arena.Explosions = append(arena.Explosions, e)
	return e
}
