// internal/app/painter.go
package app

import (
	"fmt"
	"image"
	"log"

	"pixel-favicon/internal/config"
	"pixel-favicon/internal/event"
	"pixel-favicon/internal/export"
	"pixel-favicon/internal/utils"
	"pixel-favicon/pkg/grid"
	"pixel-favicon/pkg/raster"
)

// Phase — состояние рисования.
type Phase int

const (
	Idle Phase = iota
	Drawing
)

func (p Phase) String() string {
	if p == Drawing {
		return "drawing"
	}
	return "idle"
}

// ExportResult — итог одного асинхронного экспорта.
type ExportResult struct {
	Filename string
	Err      error
}

// Painter coordinates pointer input, the grid model, the preview raster and
// exports. All methods except the export goroutines run on the Update thread.
type Painter struct {
	model      *grid.Model
	color      grid.Color
	phase      Phase
	origin     utils.Point
	cellSize   float64
	exportSize int
	pngName    string
	icoName    string

	exporter   *export.Exporter
	dispatcher *event.Dispatcher
	results    chan ExportResult
	pending    int

	preview *image.NRGBA
}

// NewPainter создаёт контроллер по настройкам. Начальный цвет — первый в палитре.
func NewPainter(settings config.Settings, exporter *export.Exporter, dispatcher *event.Dispatcher) (*Painter, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	model, err := grid.NewModel(settings.GridSize)
	if err != nil {
		return nil, err
	}
	palette, err := settings.PaletteColors()
	if err != nil {
		return nil, err
	}
	if dispatcher == nil {
		dispatcher = event.NewDispatcher()
	}
	p := &Painter{
		model:      model,
		color:      palette[0],
		origin:     utils.Point{X: config.CanvasX, Y: config.CanvasY},
		cellSize:   float64(settings.CellDisplaySize),
		exportSize: settings.ExportSize,
		pngName:    settings.ExportName,
		icoName:    settings.ICOName,
		exporter:   exporter,
		dispatcher: dispatcher,
		results:    make(chan ExportResult, config.ExportQueueLen),
	}
	p.renderPreview()
	return p, nil
}

// Snapshot возвращает текущую неизменяемую сетку.
func (p *Painter) Snapshot() *grid.Snapshot { return p.model.Snapshot() }

// Size — текущий размер сетки.
func (p *Painter) Size() int { return p.model.Size() }

// Color — активный цвет кисти.
func (p *Painter) Color() grid.Color { return p.color }

// Phase — Idle или Drawing.
func (p *Painter) Phase() Phase { return p.phase }

// CellSize — размер клетки на экране.
func (p *Painter) CellSize() float64 { return p.cellSize }

// Origin — левый верхний угол холста на экране.
func (p *Painter) Origin() utils.Point { return p.origin }

// SetOrigin двигает холст (например, при смене раскладки).
func (p *Painter) SetOrigin(origin utils.Point) { p.origin = origin }

// CanvasBounds — прямоугольник холста на экране.
func (p *Painter) CanvasBounds() image.Rectangle {
	side := int(float64(p.Size()) * p.cellSize)
	topLeft := image.Pt(int(p.origin.X), int(p.origin.Y))
	return image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(side, side))}
}

// Preview — последний растр предпросмотра размера exportSize. Не изменяется после выдачи.
func (p *Painter) Preview() *image.NRGBA { return p.preview }

// ExportSize — сторона экспортируемого изображения.
func (p *Painter) ExportSize() int { return p.exportSize }

// PointerDown: Idle -> Drawing, красит клетку под указателем.
func (p *Painter) PointerDown(x, y float64) {
	p.phase = Drawing
	p.paintAt(x, y)
}

// PointerMove красит клетку под указателем только в режиме Drawing.
func (p *Painter) PointerMove(x, y float64) {
	if p.phase != Drawing {
		return
	}
	p.paintAt(x, y)
}

// PointerUp: Drawing -> Idle.
func (p *Painter) PointerUp() {
	p.phase = Idle
}

// PointerLeave ведёт себя как PointerUp: выход за холст обрывает мазок.
func (p *Painter) PointerLeave() {
	p.PointerUp()
}

func (p *Painter) paintAt(x, y float64) {
	idx := utils.CellIndex(x, y, p.origin, p.cellSize, p.Size())
	if idx == utils.NoCell {
		return
	}
	if p.model.SetCell(idx, p.color) {
		p.markDirty(event.GridChanged, nil)
	}
}

// SelectColor меняет активный цвет. Прозрачный цвет работает как ластик.
func (p *Painter) SelectColor(c grid.Color) {
	if c == p.color {
		return
	}
	p.color = c
	p.dispatcher.Dispatch(event.Event{Type: event.ColorSelected, Data: c})
}

// Clear делает все клетки прозрачными.
func (p *Painter) Clear() {
	p.model.ClearAll()
	p.markDirty(event.GridChanged, nil)
}

// Fill заливает всю сетку активным цветом.
func (p *Painter) Fill() {
	p.model.FillAll(p.color)
	p.markDirty(event.GridChanged, nil)
}

// Resize сбрасывает сетку на новый размер. Содержимое теряется всегда.
func (p *Painter) Resize(size int) error {
	if err := p.model.Resize(size); err != nil {
		return err
	}
	p.phase = Idle
	p.markDirty(event.SizeChanged, size)
	return nil
}

// StepSize переключает размер на соседний из grid.SupportedSizes (delta = ±1).
func (p *Painter) StepSize(delta int) error {
	sizes := grid.SupportedSizes
	cur := 0
	for i, s := range sizes {
		if s == p.Size() {
			cur = i
			break
		}
	}
	next := cur + delta
	if next < 0 || next >= len(sizes) {
		return nil
	}
	return p.Resize(sizes[next])
}

// Export запускает асинхронный экспорт PNG.
func (p *Painter) Export() {
	p.exportAs(p.pngName)
}

// ExportICO запускает асинхронный экспорт .ico.
func (p *Painter) ExportICO() {
	p.exportAs(p.icoName)
}

func (p *Painter) exportAs(filename string) {
	if p.exporter == nil {
		log.Printf("export %s skipped: no exporter configured", filename)
		return
	}
	snap := p.model.Snapshot()
	size := p.exportSize
	p.pending++
	go func() {
		err := p.exporter.Export(snap, size, filename)
		p.results <- ExportResult{Filename: filename, Err: err}
	}()
}

// Pending — число экспортов, результат которых ещё не забран PollExports.
func (p *Painter) Pending() int { return p.pending }

// PollExports забирает готовые результаты без блокировки, пишет их в лог и
// рассылает ExportFinished / ExportFailed. Вызывается каждый Update.
func (p *Painter) PollExports() []ExportResult {
	var done []ExportResult
	for {
		select {
		case r := <-p.results:
			p.pending--
			done = append(done, r)
			if r.Err != nil {
				log.Printf("export failed: %v", r.Err)
				p.dispatcher.Dispatch(event.Event{Type: event.ExportFailed, Data: r.Err})
			} else {
				log.Printf("exported %s (%dx%d)", r.Filename, p.exportSize, p.exportSize)
				p.dispatcher.Dispatch(event.Event{Type: event.ExportFinished, Data: r.Filename})
			}
		default:
			return done
		}
	}
}

// markDirty перерисовывает предпросмотр и оповещает подписчиков.
// Вызывается после каждой мутации сетки или размера.
func (p *Painter) markDirty(t event.EventType, data interface{}) {
	p.renderPreview()
	p.dispatcher.Dispatch(event.Event{Type: t, Data: data})
}

func (p *Painter) renderPreview() {
	p.preview = raster.Render(p.model.Snapshot(), p.exportSize)
}

func (p *Painter) String() string {
	return fmt.Sprintf("painter{size=%d color=%s phase=%s}", p.Size(), p.color, p.phase)
}
