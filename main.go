package main

import (
	"flag"
	"image"
	"log"
	"time"

	"github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/fonts"
	"github.com/automoto/ripoff/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame(seed int64) *Game {
	g := &Game{
		bounds: image.Rectangle{},
	}
	g.scene = scenes.NewArenaScene(g, seed)
	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "optional tunables file (yaml, toml or json)")
	debug := flag.Bool("debug", false, "show the broadphase overlay")
	seed := flag.Int64("seed", 0, "random seed (0 uses the clock)")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *debug {
		config.Debug.ShowBroadphase = true
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Ripoff")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(NewGame(*seed)); err != nil {
		log.Fatal(err)
	}
}
