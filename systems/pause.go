package systems

import (
	"log"

	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePause handles the pause toggle.
// This system should run AFTER UpdateInput but BEFORE the simulation.
func UpdatePause(e *ecs.ECS) {
	if GetAction(getOrCreateInput(e), cfg.ActionPause).JustPressed {
		TogglePause(e)
	}
}

// TogglePause suspends the simulation, or restores whatever state was
// running before the pause.
func TogglePause(e *ecs.ECS) {
	arena := GetArena(e)
	if arena.State == cfg.SimPaused {
		arena.State = arena.PrevState
	} else {
		arena.PrevState = arena.State
		arena.State = cfg.SimPaused
	}
	PlaySFX(e, cfg.SoundPauseToggled)
	log.Printf("simulation %s", arena.State)
}

// IsPaused reports whether the simulation is suspended.
func IsPaused(e *ecs.ECS) bool {
	return GetArena(e).State == cfg.SimPaused
}

// DrawPause renders the pause overlay.
func DrawPause(e *ecs.ECS, screen *ebiten.Image) {
	if !IsPaused(e) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.Pause.OverlayColor,
		false,
	)

	face := fonts.Title.Get()
	bounds := text.BoundString(face, cfg.Pause.Title)
	x := int((width - float64(bounds.Dx())) / 2)
	text.Draw(screen, cfg.Pause.Title, face, x, int(height/2), cfg.Pause.TextColor)
}
