package ui

import (
	"bytes"
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// HUDUI is the overlay along the top of the arena: wave and crate counters
// plus a pause button for touch play.
type HUDUI struct {
	UI *ebitenui.UI

	OnPause func()

	waveLabel   *widget.Label
	cratesLabel *widget.Label
	pauseBtn    *widget.Button

	normalFace text.Face
	smallFace  text.Face
}

func NewHUDUI(onPause func()) *HUDUI {
	ui := &HUDUI{OnPause: onPause}
	ui.loadFonts()
	ui.buildUI()
	return ui
}

func (ui *HUDUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("failed to load UI font: %v", err)
	}

	ui.normalFace = &text.GoTextFace{Source: fontSource, Size: 14}
	ui.smallFace = &text.GoTextFace{Source: fontSource, Size: 11}
}

func (ui *HUDUI) buildUI() {
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	bar := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(6)),
			widget.RowLayoutOpts.Spacing(12),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)

	ui.waveLabel = widget.NewLabel(
		widget.LabelOpts.Text("Wave 0", &ui.normalFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	)
	bar.AddChild(ui.waveLabel)

	ui.cratesLabel = widget.NewLabel(
		widget.LabelOpts.Text("", &ui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{204, 204, 51, 255},
		}),
	)
	bar.AddChild(ui.cratesLabel)

	ui.pauseBtn = widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(72, 22)),
		widget.ButtonOpts.Image(&widget.ButtonImage{
			Idle:    image.NewNineSliceColor(color.RGBA{40, 40, 60, 200}),
			Hover:   image.NewNineSliceColor(color.RGBA{60, 60, 90, 220}),
			Pressed: image.NewNineSliceColor(color.RGBA{30, 30, 45, 220}),
		}),
		widget.ButtonOpts.Text("Pause", &ui.smallFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 200, 255, 255},
			Pressed: color.RGBA{150, 150, 200, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if ui.OnPause != nil {
				ui.OnPause()
			}
		}),
	)
	bar.AddChild(ui.pauseBtn)

	rootContainer.AddChild(bar)

	ui.UI = &ebitenui.UI{Container: rootContainer}
}

func (ui *HUDUI) SetWave(wave int) {
	ui.waveLabel.Label = fmt.Sprintf("Wave %d", wave)
}

func (ui *HUDUI) SetCrates(n int) {
	ui.cratesLabel.Label = fmt.Sprintf("Crates %d", n)
}

// SetPaused swaps the button caption between Pause and Resume.
func (ui *HUDUI) SetPaused(paused bool) {
	label := "Pause"
	if paused {
		label = "Resume"
	}
	if t := ui.pauseBtn.Text(); t != nil {
		t.Label = label
	}
}

func (ui *HUDUI) Update() {
	ui.UI.Update()
}

func (ui *HUDUI) Draw(screen *ebiten.Image) {
	ui.UI.Draw(screen)
}
