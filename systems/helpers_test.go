package systems

import (
	"testing"

	"github.com/automoto/ripoff/components"
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func newTestArena(t *testing.T) (*ecs.ECS, *components.ArenaData) {
	t.Helper()
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e, float64(cfg.C.Width), float64(cfg.C.Height), 1)
	return e, GetArena(e)
}

func countSFX(e *ecs.ECS, id cfg.SoundID) int {
	n := 0
	for _, s := range GetOrCreateAudio(e).PendingSFX {
		if s == id {
			n++
		}
	}
	return n
}
