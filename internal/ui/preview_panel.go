// internal/ui/preview_panel.go
package ui

import (
	"fmt"
	"image"

	"pixel-favicon/internal/config"
	"pixel-favicon/pkg/raster"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// PreviewPanel показывает экспортируемый растр в натуральную величину и увеличенным.
type PreviewPanel struct {
	X, Y   int
	Zoom   int
	source *image.NRGBA

	actual  *ebiten.Image
	zoomed  *ebiten.Image
	checker *ebiten.Image
}

func NewPreviewPanel(x, y, zoom int) *PreviewPanel {
	return &PreviewPanel{X: x, Y: y, Zoom: zoom}
}

// SetSource обновляет картинку. Растр предпросмотра заменяется целиком при
// каждом изменении сетки, так что достаточно сравнить указатели.
func (p *PreviewPanel) SetSource(src *image.NRGBA) {
	if src == nil || src == p.source {
		return
	}
	b := src.Bounds()
	if p.actual == nil || p.source == nil || p.source.Bounds() != b {
		if p.actual != nil {
			p.actual.Deallocate()
			p.zoomed.Deallocate()
			p.checker.Deallocate()
		}
		p.actual = ebiten.NewImage(b.Dx(), b.Dy())
		p.zoomed = ebiten.NewImage(b.Dx()*p.Zoom, b.Dy()*p.Zoom)
		p.checker = ebiten.NewImageFromImage(raster.Checkerboard(b.Dx()*p.Zoom, b.Dy()*p.Zoom,
			config.CheckerSize, config.CheckerLightColor, config.CheckerDarkColor))
	}
	p.source = src

	// Пиксели только полностью прозрачные или непрозрачные — NRGBA == premultiplied.
	p.actual.WritePixels(src.Pix)

	big := image.NewNRGBA(image.Rect(0, 0, b.Dx()*p.Zoom, b.Dy()*p.Zoom))
	xdraw.NearestNeighbor.Scale(big, big.Bounds(), src, b, xdraw.Src, nil)
	p.zoomed.WritePixels(big.Pix)
}

// Draw рисует подпись, увеличенный и натуральный предпросмотр.
func (p *PreviewPanel) Draw(screen *ebiten.Image, face font.Face) {
	if p.source == nil {
		text.Draw(screen, "Empty", face, p.X, p.Y+14, config.TextDarkColor)
		return
	}
	b := p.source.Bounds()
	text.Draw(screen, fmt.Sprintf("Preview (%dx%d)", b.Dx(), b.Dy()), face, p.X, p.Y+10, config.TextDarkColor)

	zy := float64(p.Y + 20)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(p.X), zy)
	screen.DrawImage(p.checker, op)
	screen.DrawImage(p.zoomed, op)
	zw, zh := float32(b.Dx()*p.Zoom), float32(b.Dy()*p.Zoom)
	vector.StrokeRect(screen, float32(p.X), float32(zy), zw, zh, 1, config.CanvasBorderColor, false)

	// Натуральный размер — так favicon выглядит во вкладке
	ax := float64(p.X) + float64(zw) + 16
	op = &ebiten.DrawImageOptions{}
	op.GeoM.Translate(ax, zy)
	screen.DrawImage(p.actual, op)
	vector.StrokeRect(screen, float32(ax)-1, float32(zy)-1, float32(b.Dx())+2, float32(b.Dy())+2, 1, config.CanvasBorderColor, false)
}
