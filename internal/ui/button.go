// internal/ui/button.go
package ui

import (
	"image"
	"image/color"
	"time"

	"pixel-favicon/internal/config"
	"pixel-favicon/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const pressFlash = 150 * time.Millisecond

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	Rect          image.Rectangle
	Text          string
	BgColor       color.RGBA
	ActiveColor   color.RGBA
	Active        bool // подсвечена как выбранная (например, текущий размер)
	LastClickTime time.Time
}

// NewButton создает новую кнопку.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{
		Rect:        rect,
		Text:        label,
		BgColor:     config.ButtonColor,
		ActiveColor: config.ButtonActiveColor,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// Press фиксирует нажатие. Возвращает false, если не прошёл ClickCooldown.
func (b *Button) Press() bool {
	if time.Since(b.LastClickTime) < time.Duration(config.ClickCooldown)*time.Millisecond {
		return false
	}
	b.LastClickTime = time.Now()
	return true
}

// Draw отрисовывает кнопку; hovered — курсор над кнопкой.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, hovered bool) {
	bg := b.BgColor
	if b.Active {
		bg = b.ActiveColor
	}
	if hovered {
		bg = render.LightenColor(bg, 40)
	}
	// Короткая вспышка после нажатия
	if time.Since(b.LastClickTime) < pressFlash {
		bg = render.DarkenColor(bg)
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, false)
	vector.StrokeRect(screen, x, y, w, h, 1, render.DarkenColor(bg), false)

	bounds := text.BoundString(face, b.Text)
	tx := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	ty := b.Rect.Min.Y + (b.Rect.Dy()+bounds.Dy())/2 - config.TextOffsetY/2
	text.Draw(screen, b.Text, face, tx, ty, render.ContrastText(bg, config.TextDarkColor, config.TextLightColor))
}
