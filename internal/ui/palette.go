// internal/ui/palette.go
package ui

import (
	"image"

	"pixel-favicon/internal/config"
	"pixel-favicon/pkg/grid"
	"pixel-favicon/pkg/raster"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette — ряд образцов предустановленных цветов.
type Palette struct {
	Colors  []grid.Color
	rects   []image.Rectangle
	checker *ebiten.Image
}

// NewPalette раскладывает образцы в строку начиная с (x, y).
func NewPalette(x, y int, colors []grid.Color) *Palette {
	p := &Palette{Colors: colors}
	for i := range colors {
		left := x + i*(config.SwatchSize+config.SwatchGap)
		p.rects = append(p.rects, image.Rect(left, y, left+config.SwatchSize, y+config.SwatchSize))
	}
	p.checker = ebiten.NewImageFromImage(raster.Checkerboard(config.SwatchSize, config.SwatchSize,
		config.CheckerSize, config.CheckerLightColor, config.CheckerDarkColor))
	return p
}

// SwatchAt возвращает индекс образца под точкой.
func (p *Palette) SwatchAt(x, y int) (int, bool) {
	pt := image.Pt(x, y)
	for i, r := range p.rects {
		if pt.In(r) {
			return i, true
		}
	}
	return 0, false
}

// Contains — попадает ли точка в любой образец.
func (p *Palette) Contains(x, y int) bool {
	_, ok := p.SwatchAt(x, y)
	return ok
}

// Draw рисует образцы; активный цвет обводится.
func (p *Palette) Draw(screen *ebiten.Image, active grid.Color) {
	for i, c := range p.Colors {
		r := p.rects[i]
		x, y := float32(r.Min.X), float32(r.Min.Y)
		w, h := float32(r.Dx()), float32(r.Dy())
		if c.IsTransparent() {
			op := &ebiten.DrawImageOptions{}
			op.GeoM.Translate(float64(r.Min.X), float64(r.Min.Y))
			screen.DrawImage(p.checker, op)
			// Диагональ — привычный значок «нет цвета»
			vector.StrokeLine(screen, x, y+h, x+w, y, 2, config.ButtonActiveColor, true)
		} else {
			vector.DrawFilledRect(screen, x, y, w, h, c.NRGBA(), false)
		}
		vector.StrokeRect(screen, x, y, w, h, 1, config.CanvasBorderColor, false)
		if c == active {
			vector.StrokeRect(screen, x-3, y-3, w+6, h+6, float32(config.StrokeWidth), config.ActiveOutlineColor, false)
		}
	}
}
