// internal/state/help_state.go
package state

import (
	"image/color"

	"pixel-favicon/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Убеждаемся, что HelpState соответствует интерфейсу State
var _ State = (*HelpState)(nil)

var helpLines = []string{
	"Pixel Art Favicon Generator",
	"",
	"Click and drag on the grid to paint.",
	"Pick the transparent swatch to erase.",
	"",
	"C        clear",
	"F        fill with current color",
	"S        download PNG",
	"I        download ICO",
	"1-9      palette presets",
	"[ / ]    smaller / larger grid (clears it)",
	"H, F1    toggle this help",
}

// HelpState — оверлей со справкой поверх редактора.
type HelpState struct {
	sm            *StateMachine
	previousState State
}

func NewHelpState(sm *StateMachine, prev State) *HelpState {
	return &HelpState{sm: sm, previousState: prev}
}

func (s *HelpState) Enter() {}

func (s *HelpState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) ||
		inpututil.IsKeyJustPressed(ebiten.KeyF1) ||
		inpututil.IsKeyJustPressed(ebiten.KeyEscape) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		s.sm.Pop()
	}
}

func (s *HelpState) Draw(screen *ebiten.Image) {
	if s.previousState != nil {
		s.previousState.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 160}, false)

	face := basicfont.Face7x13
	y := config.ScreenHeight/2 - len(helpLines)*18/2
	for _, line := range helpLines {
		text.Draw(screen, line, face, config.ScreenWidth/2-160, y, config.TextLightColor)
		y += 18
	}
}

func (s *HelpState) Exit() {}
