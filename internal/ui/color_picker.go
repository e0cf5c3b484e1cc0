// internal/ui/color_picker.go
package ui

import (
	"image"
	"image/color"
	"math"

	"pixel-favicon/internal/config"
	"pixel-favicon/internal/utils"
	"pixel-favicon/pkg/grid"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const noChannel = -1

var channelNames = [3]string{"R", "G", "B"}

// ColorPicker — произвольный цвет через три ползунка R, G, B.
type ColorPicker struct {
	X, Y    int
	channel [3]uint8
	drag    int // индекс ползунка, который тянут, или noChannel
	tracks  [3]image.Rectangle
}

// NewColorPicker размещает ползунки начиная с (x, y).
func NewColorPicker(x, y int) *ColorPicker {
	p := &ColorPicker{X: x, Y: y, drag: noChannel}
	for i := range p.tracks {
		top := y + 20 + i*config.SliderGap
		p.tracks[i] = image.Rect(x+16, top, x+16+config.SliderWidth, top+config.SliderHeight)
	}
	return p
}

// Color — цвет, выставленный на ползунках (всегда непрозрачный).
func (p *ColorPicker) Color() grid.Color {
	return grid.RGB(p.channel[0], p.channel[1], p.channel[2])
}

// SetColor синхронизирует ползунки с выбранным цветом. Прозрачный не меняет ползунки.
func (p *ColorPicker) SetColor(c grid.Color) {
	if c.IsTransparent() {
		return
	}
	p.channel = [3]uint8{c.R, c.G, c.B}
}

// Contains — попадает ли точка в какой-либо ползунок.
func (p *ColorPicker) Contains(x, y int) bool {
	return p.trackAt(x, y) != noChannel
}

// Press начинает перетаскивание ползунка под точкой.
func (p *ColorPicker) Press(x, y int) (grid.Color, bool) {
	ch := p.trackAt(x, y)
	if ch == noChannel {
		return grid.Transparent, false
	}
	p.drag = ch
	return p.Drag(x)
}

// Drag двигает захваченный ползунок по горизонтали.
func (p *ColorPicker) Drag(x int) (grid.Color, bool) {
	if p.drag == noChannel {
		return grid.Transparent, false
	}
	tr := p.tracks[p.drag]
	t := utils.Clamp(utils.InverseLerp(float64(tr.Min.X), float64(tr.Max.X-1), float64(x)), 0, 1)
	v := uint8(math.Round(utils.Lerp(0, 255, t)))
	if v == p.channel[p.drag] {
		return p.Color(), false
	}
	p.channel[p.drag] = v
	return p.Color(), true
}

// Dragging — идёт ли перетаскивание.
func (p *ColorPicker) Dragging() bool { return p.drag != noChannel }

// Release отпускает ползунок.
func (p *ColorPicker) Release() { p.drag = noChannel }

func (p *ColorPicker) trackAt(x, y int) int {
	pt := image.Pt(x, y)
	for i, tr := range p.tracks {
		// Немного расширяем зону захвата по вертикали
		if pt.In(tr.Inset(-3)) {
			return i
		}
	}
	return noChannel
}

// Draw рисует ползунки, образец и hex-код.
func (p *ColorPicker) Draw(screen *ebiten.Image, face font.Face) {
	text.Draw(screen, "Color:", face, p.X, p.Y+10, config.TextDarkColor)

	for i, tr := range p.tracks {
		x, y := float32(tr.Min.X), float32(tr.Min.Y)
		w, h := float32(tr.Dx()), float32(tr.Dy())

		// Градиент канала от 0 до 255 при текущих остальных каналах
		steps := 32
		for s := 0; s < steps; s++ {
			ch := p.channel
			ch[i] = uint8(s * 255 / (steps - 1))
			sx := x + w*float32(s)/float32(steps)
			vector.DrawFilledRect(screen, sx, y, w/float32(steps)+1, h, color.RGBA{ch[0], ch[1], ch[2], 255}, false)
		}
		vector.StrokeRect(screen, x, y, w, h, 1, config.CanvasBorderColor, false)

		kx := x + w*float32(p.channel[i])/255
		vector.DrawFilledRect(screen, kx-2, y-3, 4, h+6, config.TextDarkColor, false)
		text.Draw(screen, channelNames[i], face, p.X, tr.Max.Y, config.TextDarkColor)
	}

	last := p.tracks[len(p.tracks)-1]
	sy := float32(last.Max.Y + 10)
	vector.DrawFilledRect(screen, float32(p.X), sy, 28, 28, p.Color().NRGBA(), false)
	vector.StrokeRect(screen, float32(p.X), sy, 28, 28, 1, config.CanvasBorderColor, false)
	text.Draw(screen, p.Color().Hex(), face, p.X+38, int(sy)+18, config.TextDarkColor)
}
