package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScreenToCell(t *testing.T) {
	origin := Point{X: 20, Y: 80}
	const cell = 18.0

	tests := []struct {
		name   string
		cx, cy float64
		size   int
		wantX  int
		wantY  int
		wantOK bool
	}{
		{"top-left corner", 20, 80, 16, 0, 0, true},
		{"inside first cell", 37.9, 97.9, 16, 0, 0, true},
		{"second column", 38, 80, 16, 1, 0, true},
		{"bottom-right cell", 20 + 16*18 - 0.1, 80 + 16*18 - 0.1, 16, 15, 15, true},
		{"right edge is outside", 20 + 16*18, 90, 16, 0, 0, false},
		{"left of canvas", 19.9, 90, 16, 0, 0, false},
		{"above canvas", 30, 79, 16, 0, 0, false},
		{"far away", 1e12, 1e12, 16, 0, 0, false},
		{"smaller grid", 20 + 8*18 + 1, 81, 8, 0, 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, ok := ScreenToCell(tt.cx, tt.cy, origin, cell, tt.size)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantX, x)
				assert.Equal(t, tt.wantY, y)
			}
		})
	}
}

func TestCellIndexRange(t *testing.T) {
	origin := Point{}
	for _, size := range []int{8, 16, 24, 32} {
		extent := float64(size) * 18
		for py := -20.0; py < extent+20; py += 7 {
			for px := -20.0; px < extent+20; px += 7 {
				idx := CellIndex(px, py, origin, 18, size)
				inside := px >= 0 && py >= 0 && px < extent && py < extent
				if !inside {
					assert.Equal(t, NoCell, idx)
					continue
				}
				assert.GreaterOrEqual(t, idx, 0)
				assert.Less(t, idx, size*size)
			}
		}
	}
}

func TestCellToScreenRoundTrip(t *testing.T) {
	origin := Point{X: 5, Y: 7}
	sx, sy := CellToScreen(3, 4, origin, 18)
	x, y, ok := ScreenToCell(sx, sy, origin, 18, 16)
	assert.True(t, ok)
	assert.Equal(t, 3, x)
	assert.Equal(t, 4, y)
}

func TestZeroCellSize(t *testing.T) {
	assert.Equal(t, NoCell, CellIndex(1, 1, Point{}, 0, 8))
}

func TestClampLerp(t *testing.T) {
	assert.Equal(t, 0.0, Clamp(-1, 0, 1))
	assert.Equal(t, 1.0, Clamp(2, 0, 1))
	assert.Equal(t, 127.5, Lerp(0, 255, 0.5))
	assert.Equal(t, 0.5, InverseLerp(10, 20, 15))
	assert.Equal(t, 0.0, InverseLerp(3, 3, 9))
}
