// pkg/grid/grid.go
package grid

import (
	"errors"
	"fmt"
)

// SupportedSizes are the grid resolutions the editor offers.
var SupportedSizes = []int{8, 16, 24, 32}

// ErrUnsupportedSize is returned when a grid size is not one of SupportedSizes.
var ErrUnsupportedSize = errors.New("unsupported grid size")

// IsSupportedSize reports whether size is one of SupportedSizes.
func IsSupportedSize(size int) bool {
	for _, s := range SupportedSizes {
		if s == size {
			return true
		}
	}
	return false
}

// Index returns the row-major index of cell (x, y).
func Index(size, x, y int) int {
	return y*size + x
}

// Snapshot is an immutable view of the painting surface.
// A Snapshot is never modified after it is published, so it can be handed to
// a render or export pass while the model keeps changing.
type Snapshot struct {
	size    int
	cells   []Color
	version uint64
}

func newSnapshot(size int, fill Color, version uint64) *Snapshot {
	cells := make([]Color, size*size)
	if fill != Transparent {
		for i := range cells {
			cells[i] = fill
		}
	}
	return &Snapshot{size: size, cells: cells, version: version}
}

// Size is the side length of the grid in cells.
func (s *Snapshot) Size() int { return s.size }

// Len is size*size.
func (s *Snapshot) Len() int { return len(s.cells) }

// Version grows with every mutation of the owning model.
func (s *Snapshot) Version() uint64 { return s.version }

// Cell returns the color at index i, or Transparent when i is out of range.
func (s *Snapshot) Cell(i int) Color {
	if i < 0 || i >= len(s.cells) {
		return Transparent
	}
	return s.cells[i]
}

// At returns the color of cell (x, y), or Transparent outside the grid.
func (s *Snapshot) At(x, y int) Color {
	if x < 0 || y < 0 || x >= s.size || y >= s.size {
		return Transparent
	}
	return s.cells[Index(s.size, x, y)]
}

// Cells returns a copy of the row-major cells.
func (s *Snapshot) Cells() []Color {
	out := make([]Color, len(s.cells))
	copy(out, s.cells)
	return out
}

// Model owns the current grid snapshot. It is not safe for concurrent
// mutation; readers should take a Snapshot and work on that.
type Model struct {
	current *Snapshot
}

// NewModel creates a transparent grid of the given size.
func NewModel(size int) (*Model, error) {
	if !IsSupportedSize(size) {
		return nil, fmt.Errorf("new grid %d: %w", size, ErrUnsupportedSize)
	}
	return &Model{current: newSnapshot(size, Transparent, 0)}, nil
}

// Snapshot returns the current immutable grid.
func (m *Model) Snapshot() *Snapshot {
	return m.current
}

// Size is the side length of the current grid.
func (m *Model) Size() int {
	return m.current.size
}

// Resize replaces the grid with newSize*newSize transparent cells.
// Prior content is always discarded, even when the size does not change.
func (m *Model) Resize(newSize int) error {
	if !IsSupportedSize(newSize) {
		return fmt.Errorf("resize to %d: %w", newSize, ErrUnsupportedSize)
	}
	m.current = newSnapshot(newSize, Transparent, m.current.version+1)
	return nil
}

// SetCell paints a single cell. It returns false without publishing a new
// snapshot when the index is out of range or the cell already has that color.
func (m *Model) SetCell(index int, c Color) bool {
	cur := m.current
	if index < 0 || index >= len(cur.cells) {
		return false
	}
	if cur.cells[index] == c {
		return false
	}
	cells := make([]Color, len(cur.cells))
	copy(cells, cur.cells)
	cells[index] = c
	m.current = &Snapshot{size: cur.size, cells: cells, version: cur.version + 1}
	return true
}

// FillAll sets every cell to c in one mutation.
func (m *Model) FillAll(c Color) {
	m.current = newSnapshot(m.current.size, c, m.current.version+1)
}

// ClearAll is FillAll(Transparent).
func (m *Model) ClearAll() {
	m.FillAll(Transparent)
}
