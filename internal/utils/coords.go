// internal/utils/coords.go
package utils

import "math"

// NoCell — индекс, возвращаемый для точки вне холста.
const NoCell = -1

// Point — координаты в экранном (display) пространстве.
type Point struct {
	X, Y float64
}

// ScreenToCell переводит экранные координаты указателя в координаты клетки.
// origin — левый верхний угол холста на экране, cellSize — размер клетки на экране.
// ok == false, если точка за пределами сетки size x size.
func ScreenToCell(clientX, clientY float64, origin Point, cellSize float64, size int) (x, y int, ok bool) {
	if cellSize <= 0 {
		return 0, 0, false
	}
	fx := math.Floor((clientX - origin.X) / cellSize)
	fy := math.Floor((clientY - origin.Y) / cellSize)
	// Сравниваем во float, чтобы огромные координаты не переполняли int
	if fx < 0 || fy < 0 || fx >= float64(size) || fy >= float64(size) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}

// CellIndex — то же, что ScreenToCell, но возвращает row-major индекс или NoCell.
func CellIndex(clientX, clientY float64, origin Point, cellSize float64, size int) int {
	x, y, ok := ScreenToCell(clientX, clientY, origin, cellSize, size)
	if !ok {
		return NoCell
	}
	return y*size + x
}

// CellToScreen возвращает экранные координаты левого верхнего угла клетки.
// Операция, обратная ScreenToCell.
func CellToScreen(x, y int, origin Point, cellSize float64) (float64, float64) {
	return origin.X + float64(x)*cellSize, origin.Y + float64(y)*cellSize
}
