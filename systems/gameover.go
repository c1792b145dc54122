package systems

import (
	cfg "github.com/automoto/ripoff/config"
	"github.com/automoto/ripoff/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows systems to trigger scene transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// NewUpdateGameOver creates a system that starts a fresh game when any
// player presses fire after the game has ended.
func NewUpdateGameOver(sceneChanger SceneChanger, createArenaScene func() interface{}) ecs.System {
	return func(e *ecs.ECS) {
		if !IsGameOver(e) {
			return
		}
		input := getOrCreateInput(e)
		for slot := range input.PlayerCurrent {
			if GetPlayerAction(input, slot, cfg.ActionFire).JustPressed {
				sceneChanger.ChangeScene(createArenaScene())
				return
			}
		}
	}
}

// DrawGameOver renders the game over banner over the slowed-down arena
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	if !IsGameOver(e) {
		return
	}

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	face := fonts.Title.Get()
	title := cfg.GameOver.Title
	bounds := text.BoundString(face, title)
	text.Draw(screen, title, face, int((width-float64(bounds.Dx()))/2), int(height/2), cfg.GameOver.TextColor)

	hint := cfg.GameOver.Hint
	small := fonts.Regular.Get()
	hb := text.BoundString(small, hint)
	text.Draw(screen, hint, small, int((width-float64(hb.Dx()))/2), int(height/2)+40, cfg.GameOver.TextColor)
}
