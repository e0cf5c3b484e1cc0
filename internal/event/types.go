// internal/event/types.go
package event

const (
	GridChanged    EventType = "GridChanged"    // Сетка изменилась, нужна перерисовка
	SizeChanged    EventType = "SizeChanged"    // Новый размер сетки, Data — int
	ColorSelected  EventType = "ColorSelected"  // Data — grid.Color
	ExportFinished EventType = "ExportFinished" // Data — имя файла
	ExportFailed   EventType = "ExportFailed"   // Data — error
)
