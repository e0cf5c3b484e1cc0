// internal/ui/size_selector.go
package ui

import (
	"image"
	"strconv"

	"pixel-favicon/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

const sizeButtonWidth = 34

// SizeSelector — группа кнопок выбора размера сетки.
type SizeSelector struct {
	sizes   []int
	buttons []*Button
}

// NewSizeSelector создаёт по кнопке на каждый размер.
func NewSizeSelector(x, y int, sizes []int) *SizeSelector {
	s := &SizeSelector{sizes: sizes}
	for i, size := range sizes {
		left := x + i*(sizeButtonWidth+4)
		rect := image.Rect(left, y, left+sizeButtonWidth, y+config.ControlHeight)
		s.buttons = append(s.buttons, NewButton(rect, strconv.Itoa(size)))
	}
	return s
}

// SizeAt возвращает размер под точкой и отмечает нажатие.
func (s *SizeSelector) SizeAt(x, y int) (int, bool) {
	for i, b := range s.buttons {
		if b.Contains(x, y) && b.Press() {
			return s.sizes[i], true
		}
	}
	return 0, false
}

// Contains — попадает ли точка в какую-либо кнопку.
func (s *SizeSelector) Contains(x, y int) bool {
	for _, b := range s.buttons {
		if b.Contains(x, y) {
			return true
		}
	}
	return false
}

// Draw подсвечивает кнопку текущего размера.
func (s *SizeSelector) Draw(screen *ebiten.Image, face font.Face, current, cursorX, cursorY int) {
	for i, b := range s.buttons {
		b.Active = s.sizes[i] == current
		b.Draw(screen, face, b.Contains(cursorX, cursorY))
	}
}
