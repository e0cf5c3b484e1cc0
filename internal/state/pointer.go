// internal/state/pointer.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// pointer — мышь и касание в одном виде.
type pointer struct {
	X, Y         int
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// pointerReader следит за первым активным касанием; без касаний читает мышь.
type pointerReader struct {
	touchID     ebiten.TouchID
	touchActive bool
	lastX       int
	lastY       int
	ids         []ebiten.TouchID
}

func (r *pointerReader) Read() pointer {
	if r.touchActive {
		if inpututil.IsTouchJustReleased(r.touchID) {
			r.touchActive = false
			return pointer{X: r.lastX, Y: r.lastY, JustReleased: true}
		}
		r.lastX, r.lastY = ebiten.TouchPosition(r.touchID)
		return pointer{X: r.lastX, Y: r.lastY, Pressed: true}
	}

	r.ids = inpututil.AppendJustPressedTouchIDs(r.ids[:0])
	if len(r.ids) > 0 {
		r.touchID = r.ids[0]
		r.touchActive = true
		r.lastX, r.lastY = ebiten.TouchPosition(r.touchID)
		return pointer{X: r.lastX, Y: r.lastY, Pressed: true, JustPressed: true}
	}

	x, y := ebiten.CursorPosition()
	return pointer{
		X:            x,
		Y:            y,
		Pressed:      ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustPressed:  inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustReleased: inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
}
