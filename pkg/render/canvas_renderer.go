// pkg/render/canvas_renderer.go
package render

import (
	"pixel-favicon/internal/event"
	"pixel-favicon/internal/utils"
	"pixel-favicon/pkg/grid"
	"pixel-favicon/pkg/raster"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// CanvasRenderer draws the editable grid. The cells and the grid mesh are
// pre-rendered into canvasImage and rebuilt only after the grid changes.
type CanvasRenderer struct {
	cellSize    int
	colors      CanvasColors
	size        int
	version     uint64
	dirty       bool
	canvasImage *ebiten.Image
	checker     *ebiten.Image
}

func NewCanvasRenderer(cellSize int, colors CanvasColors) *CanvasRenderer {
	return &CanvasRenderer{
		cellSize: cellSize,
		colors:   colors,
		dirty:    true,
	}
}

// OnEvent помечает холст грязным; подписывается на GridChanged и SizeChanged.
func (r *CanvasRenderer) OnEvent(e event.Event) {
	r.dirty = true
}

// MarkDirty forces a rebuild on the next Draw.
func (r *CanvasRenderer) MarkDirty() {
	r.dirty = true
}

// RenderCanvasImage перестраивает предрендеренный холст по снимку сетки.
func (r *CanvasRenderer) RenderCanvasImage(snap *grid.Snapshot) {
	side := snap.Size() * r.cellSize
	if r.canvasImage == nil || snap.Size() != r.size {
		if r.canvasImage != nil {
			r.canvasImage.Deallocate()
			r.checker.Deallocate()
		}
		r.canvasImage = ebiten.NewImage(side, side)
		r.checker = ebiten.NewImageFromImage(raster.Checkerboard(side, side, r.cellSize/2,
			r.colors.CheckerLightColor, r.colors.CheckerDarkColor))
		r.size = snap.Size()
	}

	// Клетки либо полностью прозрачные, либо непрозрачные, поэтому
	// NRGBA совпадает с premultiplied RGBA, который ждёт WritePixels.
	blocks := raster.Blocks(snap, r.cellSize)
	r.canvasImage.WritePixels(blocks.Pix)

	fs := float32(side)
	for _, pos := range raster.GridLines(snap.Size(), float64(r.cellSize)) {
		p := float32(pos)
		vector.StrokeLine(r.canvasImage, p, 0, p, fs, 1, r.colors.GridLineColor, false)
		vector.StrokeLine(r.canvasImage, 0, p, fs, p, 1, r.colors.GridLineColor, false)
	}

	r.version = snap.Version()
	r.dirty = false
}

// Draw рисует холст с левым верхним углом в origin.
func (r *CanvasRenderer) Draw(screen *ebiten.Image, snap *grid.Snapshot, origin utils.Point) {
	if r.dirty || r.canvasImage == nil || snap.Size() != r.size || snap.Version() != r.version {
		r.RenderCanvasImage(snap)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(origin.X, origin.Y)
	screen.DrawImage(r.checker, op)
	screen.DrawImage(r.canvasImage, op)

	side := float32(r.size * r.cellSize)
	sw := r.colors.StrokeWidth
	vector.StrokeRect(screen, float32(origin.X)-sw/2, float32(origin.Y)-sw/2, side+sw, side+sw, sw, r.colors.BorderColor, false)
}
