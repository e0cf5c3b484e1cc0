// internal/state/editor_state.go
package state

import (
	"fmt"
	"image"
	"log"
	"time"

	"pixel-favicon/internal/app"
	"pixel-favicon/internal/config"
	"pixel-favicon/internal/event"
	"pixel-favicon/internal/ui"
	"pixel-favicon/pkg/grid"
	"pixel-favicon/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

const statusTTL = 4 * time.Second

var paletteKeys = []ebiten.Key{
	ebiten.KeyDigit1, ebiten.KeyDigit2, ebiten.KeyDigit3,
	ebiten.KeyDigit4, ebiten.KeyDigit5, ebiten.KeyDigit6,
	ebiten.KeyDigit7, ebiten.KeyDigit8, ebiten.KeyDigit9,
}

// EditorState — основной экран: холст, панель инструментов, палитра, предпросмотр.
type EditorState struct {
	sm         *StateMachine
	painter    *app.Painter
	dispatcher *event.Dispatcher
	renderer   *render.CanvasRenderer
	fontFace   font.Face

	sizes     *ui.SizeSelector
	palette   *ui.Palette
	picker    *ui.ColorPicker
	preview   *ui.PreviewPanel
	clearBtn  *ui.Button
	fillBtn   *ui.Button
	pngBtn    *ui.Button
	icoBtn    *ui.Button
	pointer   pointerReader
	cursorX   int
	cursorY   int
	status    string
	statusEnd time.Time
}

func NewEditorState(sm *StateMachine, painter *app.Painter, dispatcher *event.Dispatcher, palette []grid.Color) *EditorState {
	renderer := render.NewCanvasRenderer(int(painter.CellSize()), render.CanvasColors{
		BorderColor:       config.CanvasBorderColor,
		GridLineColor:     config.GridLineColor,
		CheckerLightColor: config.CheckerLightColor,
		CheckerDarkColor:  config.CheckerDarkColor,
		StrokeWidth:       float32(config.StrokeWidth),
	})

	row1 := config.ToolbarY
	row2 := config.ToolbarY + config.ToolbarRowGap
	exportLabel := fmt.Sprintf("Download PNG (%dx%d)", painter.ExportSize(), painter.ExportSize())

	e := &EditorState{
		sm:         sm,
		painter:    painter,
		dispatcher: dispatcher,
		renderer:   renderer,
		fontFace:   basicfont.Face7x13,
		sizes:      ui.NewSizeSelector(60, row1, grid.SupportedSizes),
		palette:    ui.NewPalette(80, row2, palette),
		picker:     ui.NewColorPicker(config.PickerX, config.PickerY),
		preview:    ui.NewPreviewPanel(config.PreviewX, config.PreviewY, config.PreviewZoom),
		clearBtn:   ui.NewButton(image.Rect(420, row1, 480, row1+config.ControlHeight), "Clear"),
		fillBtn:    ui.NewButton(image.Rect(486, row1, 546, row1+config.ControlHeight), "Fill"),
		pngBtn:     ui.NewButton(image.Rect(552, row1, 552+len(exportLabel)*config.TextCharWidth+16, row1+config.ControlHeight), exportLabel),
	}
	icoLeft := e.pngBtn.Rect.Max.X + 6
	e.icoBtn = ui.NewButton(image.Rect(icoLeft, row1, icoLeft+60, row1+config.ControlHeight), "ICO")
	e.picker.SetColor(painter.Color())
	e.preview.SetSource(painter.Preview())
	return e
}

func (e *EditorState) Enter() {
	e.dispatcher.Subscribe(event.GridChanged, e.renderer)
	e.dispatcher.Subscribe(event.SizeChanged, e.renderer)
	e.dispatcher.Subscribe(event.SizeChanged, e)
	e.dispatcher.Subscribe(event.ColorSelected, e)
	e.dispatcher.Subscribe(event.ExportFinished, e)
	e.dispatcher.Subscribe(event.ExportFailed, e)
	e.renderer.MarkDirty()
}

func (e *EditorState) Exit() {
	e.dispatcher.Unsubscribe(event.GridChanged, e.renderer)
	e.dispatcher.Unsubscribe(event.SizeChanged, e.renderer)
	e.dispatcher.Unsubscribe(event.SizeChanged, e)
	e.dispatcher.Unsubscribe(event.ColorSelected, e)
	e.dispatcher.Unsubscribe(event.ExportFinished, e)
	e.dispatcher.Unsubscribe(event.ExportFailed, e)
}

// OnEvent обновляет строку статуса и ползунки.
func (e *EditorState) OnEvent(ev event.Event) {
	switch ev.Type {
	case event.SizeChanged:
		e.setStatus(fmt.Sprintf("Grid %dx%d", ev.Data, ev.Data))
	case event.ColorSelected:
		if c, ok := ev.Data.(grid.Color); ok {
			e.picker.SetColor(c)
		}
	case event.ExportFinished:
		e.setStatus(fmt.Sprintf("Saved %v", ev.Data))
	case event.ExportFailed:
		e.setStatus(fmt.Sprintf("Export failed: %v", ev.Data))
	}
}

func (e *EditorState) setStatus(s string) {
	e.status = s
	e.statusEnd = time.Now().Add(statusTTL)
}

func (e *EditorState) Update(deltaTime float64) {
	e.painter.PollExports()

	if inpututil.IsKeyJustPressed(ebiten.KeyH) || inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		e.painter.PointerUp()
		e.sm.Push(NewHelpState(e.sm, e))
		return
	}
	e.handleKeys()

	p := e.pointer.Read()
	e.cursorX, e.cursorY = p.X, p.Y
	inCanvas := image.Pt(p.X, p.Y).In(e.painter.CanvasBounds())
	fx, fy := float64(p.X), float64(p.Y)

	switch {
	case p.JustPressed:
		if e.handleUIPress(p.X, p.Y) {
			break
		}
		if inCanvas {
			e.painter.PointerDown(fx, fy)
		}
	case p.Pressed:
		if e.picker.Dragging() {
			if c, changed := e.picker.Drag(p.X); changed {
				e.painter.SelectColor(c)
			}
			break
		}
		if e.painter.Phase() == app.Drawing {
			if inCanvas {
				e.painter.PointerMove(fx, fy)
			} else {
				e.painter.PointerLeave()
			}
		}
	}

	if !p.Pressed {
		e.picker.Release()
		if e.painter.Phase() == app.Drawing {
			e.painter.PointerUp()
		}
	}

	e.preview.SetSource(e.painter.Preview())
}

func (e *EditorState) handleKeys() {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyC):
		e.painter.Clear()
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		e.painter.Fill()
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		e.painter.Export()
	case inpututil.IsKeyJustPressed(ebiten.KeyI):
		e.painter.ExportICO()
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketLeft):
		e.stepSize(-1)
	case inpututil.IsKeyJustPressed(ebiten.KeyBracketRight):
		e.stepSize(1)
	}
	for i, k := range paletteKeys {
		if i < len(e.palette.Colors) && inpututil.IsKeyJustPressed(k) {
			e.painter.SelectColor(e.palette.Colors[i])
		}
	}
}

func (e *EditorState) stepSize(delta int) {
	if err := e.painter.StepSize(delta); err != nil {
		log.Printf("resize: %v", err)
	}
}

// handleUIPress обрабатывает нажатие по элементам панели. Возвращает true,
// если нажатие попало в UI и не должно рисовать.
func (e *EditorState) handleUIPress(x, y int) bool {
	if size, ok := e.sizes.SizeAt(x, y); ok {
		if err := e.painter.Resize(size); err != nil {
			log.Printf("resize: %v", err)
		}
		return true
	}
	if e.sizes.Contains(x, y) {
		return true
	}
	if i, ok := e.palette.SwatchAt(x, y); ok {
		e.painter.SelectColor(e.palette.Colors[i])
		return true
	}
	if _, ok := e.picker.Press(x, y); ok || e.picker.Dragging() {
		// Даже без изменения значения выбор ползунка делает его цвет активным
		e.painter.SelectColor(e.picker.Color())
		return true
	}

	switch {
	case e.clearBtn.Contains(x, y):
		if e.clearBtn.Press() {
			e.painter.Clear()
		}
	case e.fillBtn.Contains(x, y):
		if e.fillBtn.Press() {
			e.painter.Fill()
		}
	case e.pngBtn.Contains(x, y):
		if e.pngBtn.Press() {
			e.painter.Export()
		}
	case e.icoBtn.Contains(x, y):
		if e.icoBtn.Press() {
			e.painter.ExportICO()
		}
	default:
		return false
	}
	return true
}

func (e *EditorState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)

	text.Draw(screen, "Grid:", e.fontFace, 20, config.ToolbarY+18, config.TextDarkColor)
	e.sizes.Draw(screen, e.fontFace, e.painter.Size(), e.cursorX, e.cursorY)
	for _, b := range []*ui.Button{e.clearBtn, e.fillBtn, e.pngBtn, e.icoBtn} {
		b.Draw(screen, e.fontFace, b.Contains(e.cursorX, e.cursorY))
	}

	row2 := config.ToolbarY + config.ToolbarRowGap
	text.Draw(screen, "Palette:", e.fontFace, 20, row2+17, config.TextDarkColor)
	e.palette.Draw(screen, e.painter.Color())

	e.renderer.Draw(screen, e.painter.Snapshot(), e.painter.Origin())
	e.preview.Draw(screen, e.fontFace)
	e.picker.Draw(screen, e.fontFace)

	if e.status != "" && time.Now().Before(e.statusEnd) {
		text.Draw(screen, e.status, e.fontFace, config.PreviewX, config.ScreenHeight-40, config.TextDarkColor)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%s  H: help", e.painter), config.PreviewX, config.ScreenHeight-24)
}
