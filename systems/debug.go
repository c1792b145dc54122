package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/fonts"
	"github.com/automoto/ripoff/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every broadphase object and each AI machine's
// current waypoint when the debug overlay is enabled (F3).
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowBroadphase {
		return
	}
	arena := GetArena(e)

	spaceEntry, ok := components.Space.First(e.World)
	if ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			// Space coordinates are shifted by the arena margin
			x := obj.X - arena.Margin
			y := obj.Y - arena.Margin

			c := color.RGBA{0, 255, 255, 255} // Cyan default
			if obj.HasTags(tags.ResolvCrate) {
				c = color.RGBA{200, 200, 0, 255}
			} else if obj.HasTags(tags.ResolvPlayer) {
				c = color.RGBA{0, 0, 255, 255} // Blue
			} else if obj.HasTags(tags.ResolvRobber) {
				c = color.RGBA{0, 255, 0, 255} // Green
			} else if obj.HasTags(tags.ResolvKiller) {
				c = color.RGBA{255, 0, 0, 255} // Red
			} else if obj.HasTags(tags.ResolvSweep) {
				c = color.RGBA{255, 255, 255, 255}
			}
			vector.StrokeRect(screen, float32(x), float32(y), float32(obj.W), float32(obj.H), 1, c, false)
		}
	}

	for _, list := range [][]*donburi.Entry{arena.Robbers, arena.Killers} {
		for _, entry := range list {
			if !components.Mob.Get(entry).On {
				continue
			}
			t := components.Transform.Get(entry)
			s := components.Steering.Get(entry)
			strokeLine(screen, t.Pos, s.Waypoint, 1, color.RGBA{255, 255, 255, 96})
		}
	}

	status := fmt.Sprintf("wave %d  robbers %d  crates %d  bullets %d  dt %.3f",
		arena.Wave, arena.ActiveRobbers, len(arena.Crates), len(arena.Bullets), arena.Delta)
	text.Draw(screen, status, fonts.Small.Get(), 4, screen.Bounds().Dy()-6, cfg.White)
}
