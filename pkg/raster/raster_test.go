package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-favicon/pkg/grid"
)

var (
	red  = grid.RGB(0xff, 0, 0)
	blue = grid.RGB(0, 0, 0xff)
)

func newModel(t *testing.T, size int) *grid.Model {
	t.Helper()
	m, err := grid.NewModel(size)
	require.NoError(t, err)
	return m
}

func TestRenderSingleCellScale2(t *testing.T) {
	m := newModel(t, 16)
	m.SetCell(grid.Index(16, 3, 4), red)

	img := Render(m.Snapshot(), 32)
	require.Equal(t, image.Rect(0, 0, 32, 32), img.Bounds())

	painted := map[image.Point]bool{
		{6, 8}: true, {7, 8}: true, {6, 9}: true, {7, 9}: true,
	}
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			got := img.NRGBAAt(x, y)
			if painted[image.Pt(x, y)] {
				assert.Equalf(t, red.NRGBA(), got, "pixel %d,%d", x, y)
			} else {
				assert.Equalf(t, color.NRGBA{}, got, "pixel %d,%d", x, y)
			}
		}
	}
}

func TestRenderFilledGridIsSolid(t *testing.T) {
	for _, size := range grid.SupportedSizes {
		for _, target := range []int{7, 24, 32, 40} {
			m := newModel(t, size)
			m.FillAll(blue)
			img := Render(m.Snapshot(), target)
			for i := 0; i < len(img.Pix); i += 4 {
				require.Equalf(t, []uint8{0, 0, 0xff, 0xff}, img.Pix[i:i+4],
					"size %d target %d offset %d", size, target, i)
			}
		}
	}
}

func TestRenderClearedGridIsTransparent(t *testing.T) {
	m := newModel(t, 24)
	m.FillAll(red)
	m.ClearAll()
	img := Render(m.Snapshot(), 32)
	for _, v := range img.Pix {
		require.Zero(t, v)
	}
}

func TestRenderOverlapLastWriterWins(t *testing.T) {
	// 24 -> 32: scale 4/3, block 2. Cell 0 covers px 0-1, cell 1 covers px 1-2.
	m := newModel(t, 24)
	m.SetCell(grid.Index(24, 0, 0), red)
	m.SetCell(grid.Index(24, 1, 0), blue)
	m.SetCell(grid.Index(24, 0, 1), blue)

	img := Render(m.Snapshot(), 32)
	assert.Equal(t, red.NRGBA(), img.NRGBAAt(0, 0))
	assert.Equal(t, blue.NRGBA(), img.NRGBAAt(1, 0), "right neighbour overwrites shared column")
	assert.Equal(t, blue.NRGBA(), img.NRGBAAt(2, 0))
	assert.Equal(t, blue.NRGBA(), img.NRGBAAt(0, 1), "lower neighbour overwrites shared row")
	assert.Equal(t, blue.NRGBA(), img.NRGBAAt(1, 1))
}

func TestRenderTransparentCellLeavesOverlapUntouched(t *testing.T) {
	m := newModel(t, 24)
	m.SetCell(grid.Index(24, 0, 0), red)

	img := Render(m.Snapshot(), 32)
	// Cell 1 is transparent, so the overlapping column keeps cell 0's colour.
	assert.Equal(t, red.NRGBA(), img.NRGBAAt(1, 0))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(2, 0))
}

func TestRenderIntoKeepsBackground(t *testing.T) {
	m := newModel(t, 8)
	m.SetCell(0, red)

	bg := color.NRGBA{10, 20, 30, 255}
	dst := image.NewNRGBA(image.Rect(0, 0, 16, 16))
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}
	RenderInto(dst, m.Snapshot(), 16)

	assert.Equal(t, red.NRGBA(), dst.NRGBAAt(1, 1))
	assert.Equal(t, bg, dst.NRGBAAt(2, 2))
}

func TestRenderIntoGenericImage(t *testing.T) {
	m := newModel(t, 8)
	m.SetCell(grid.Index(8, 7, 7), red)

	dst := image.NewRGBA(image.Rect(0, 0, 8, 8))
	RenderInto(dst, m.Snapshot(), 8)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, dst.RGBAAt(7, 7))
	assert.Equal(t, color.RGBA{}, dst.RGBAAt(6, 7))
}

func TestBlocksIdentityScale(t *testing.T) {
	m := newModel(t, 8)
	m.SetCell(grid.Index(8, 1, 0), red)

	img := Blocks(m.Snapshot(), 18)
	require.Equal(t, 8*18, img.Bounds().Dx())
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(17, 0))
	assert.Equal(t, red.NRGBA(), img.NRGBAAt(18, 0))
	assert.Equal(t, red.NRGBA(), img.NRGBAAt(35, 17))
	assert.Equal(t, color.NRGBA{}, img.NRGBAAt(36, 0))
}

func TestGridLines(t *testing.T) {
	lines := GridLines(2, 18)
	assert.Equal(t, []float64{0.5, 18.5, 36.5}, lines)
}

func TestCheckerboard(t *testing.T) {
	light := color.NRGBA{255, 255, 255, 255}
	dark := color.NRGBA{200, 200, 200, 255}
	img := Checkerboard(8, 4, 2, light, dark)

	assert.Equal(t, image.Rect(0, 0, 8, 4), img.Bounds())
	assert.Equal(t, light, img.NRGBAAt(0, 0))
	assert.Equal(t, light, img.NRGBAAt(1, 1))
	assert.Equal(t, dark, img.NRGBAAt(2, 0))
	assert.Equal(t, dark, img.NRGBAAt(0, 2))
	assert.Equal(t, light, img.NRGBAAt(2, 2))
}
