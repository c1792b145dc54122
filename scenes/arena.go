package scenes

import (
	"image/color"
	"sync"

	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/systems"
	"github.com/automoto/ripoff/systems/factory"
	"github.com/automoto/ripoff/ui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// ArenaScene runs one game, from the first wave until the crates are gone.
type ArenaScene struct {
	ecs          *ecs.ECS
	hud          *ui.HUDUI
	sceneChanger SceneChanger
	seed         int64
	once         sync.Once
}

func NewArenaScene(sc SceneChanger, seed int64) *ArenaScene {
	return &ArenaScene{sceneChanger: sc, seed: seed}
}

func (as *ArenaScene) Update() {
	as.once.Do(as.configure)
	as.hud.Update()
	as.ecs.Update()

	as.hud.SetWave(systems.Wave(as.ecs))
	as.hud.SetCrates(len(systems.GetArena(as.ecs).Crates))
	as.hud.SetPaused(systems.IsPaused(as.ecs))
}

func (as *ArenaScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if as.ecs == nil {
		return
	}
	as.ecs.Draw(screen)
	as.hud.Draw(screen)
}

func (as *ArenaScene) configure() {
	as.ecs = ecs.NewECS(donburi.NewWorld())

	createArenaScene := func() interface{} {
		return NewArenaScene(as.sceneChanger, as.seed+1)
	}

	// Audio system (runs first so sounds queued last frame play promptly)
	as.ecs.AddSystem(systems.UpdateAudio)

	// Systems that always run
	as.ecs.AddSystem(systems.UpdateInput)
	as.ecs.AddSystem(systems.UpdatePause)
	as.ecs.AddSystem(systems.NewUpdateGameOver(as.sceneChanger, createArenaScene))

	for _, s := range systems.SimulationSystems() {
		as.ecs.AddSystem(s)
	}

	as.ecs.AddRenderer(cfg.Default, systems.DrawControls)
	as.ecs.AddRenderer(cfg.Default, systems.DrawArena)
	as.ecs.AddRenderer(cfg.Default, systems.DrawDebug)
	as.ecs.AddRenderer(cfg.Default, systems.DrawGameOver)
	as.ecs.AddRenderer(cfg.Default, systems.DrawPause)

	factory.CreateArena(as.ecs, float64(cfg.C.Width), float64(cfg.C.Height), as.seed)

	as.hud = ui.NewHUDUI(func() {
		systems.TogglePause(as.ecs)
	})
}
