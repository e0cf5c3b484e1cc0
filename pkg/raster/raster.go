// pkg/raster/raster.go
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"pixel-favicon/pkg/grid"
)

// Render rasterizes snap into a new fully transparent targetSize x targetSize buffer.
func Render(snap *grid.Snapshot, targetSize int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, targetSize, targetSize))
	RenderInto(dst, snap, targetSize)
	return dst
}

// RenderInto box-fills every painted cell of snap into dst.
//
// Each cell (x, y) covers [floor(x*scale), floor(x*scale)+ceil(scale)) on both
// axes, scale = targetSize/size. With a non-integral scale neighbouring blocks
// overlap by one pixel; cells are drawn row by row, left to right, so the later
// cell owns the shared pixel. Transparent cells leave dst untouched.
func RenderInto(dst draw.Image, snap *grid.Snapshot, targetSize int) {
	size := snap.Size()
	if size == 0 || targetSize <= 0 {
		return
	}
	scale := float64(targetSize) / float64(size)
	block := int(math.Ceil(scale))
	bounds := dst.Bounds()

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := snap.At(x, y)
			if c.IsTransparent() {
				continue
			}
			dx := int(math.Floor(float64(x) * scale))
			dy := int(math.Floor(float64(y) * scale))
			r := image.Rect(dx, dy, dx+block, dy+block).Add(bounds.Min).Intersect(bounds)
			fillRect(dst, r, c)
		}
	}
}

// Blocks renders the interactive canvas: every cell becomes a
// cellDisplaySize x cellDisplaySize block.
func Blocks(snap *grid.Snapshot, cellDisplaySize int) *image.NRGBA {
	return Render(snap, snap.Size()*cellDisplaySize)
}

// GridLines returns the coordinates of the cell boundary mesh, one per boundary
// including both outer edges. Lines sit on pixel centres.
func GridLines(size int, cellDisplaySize float64) []float64 {
	lines := make([]float64, 0, size+1)
	for i := 0; i <= size; i++ {
		lines = append(lines, float64(i)*cellDisplaySize+0.5)
	}
	return lines
}

func fillRect(dst draw.Image, r image.Rectangle, c grid.Color) {
	if r.Empty() {
		return
	}
	nc := c.NRGBA()
	if img, ok := dst.(*image.NRGBA); ok {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			off := img.PixOffset(r.Min.X, y)
			for x := r.Min.X; x < r.Max.X; x++ {
				img.Pix[off+0] = nc.R
				img.Pix[off+1] = nc.G
				img.Pix[off+2] = nc.B
				img.Pix[off+3] = nc.A
				off += 4
			}
		}
		return
	}
	draw.Draw(dst, r, image.NewUniform(nc), image.Point{}, draw.Src)
}

// Checkerboard returns a w x h pattern of cell x cell squares, light at the
// top-left corner. It is drawn under transparent pixels on screen.
func Checkerboard(w, h, cell int, light, dark color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if cell <= 0 {
		cell = 1
	}
	l := color.NRGBAModel.Convert(light).(color.NRGBA)
	d := color.NRGBAModel.Convert(dark).(color.NRGBA)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := l
			if (x/cell+y/cell)%2 == 1 {
				c = d
			}
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}
