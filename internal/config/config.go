// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 900
	ScreenHeight = 700

	DefaultGridSize        = 16
	DefaultCellDisplaySize = 18 // экранных пикселей на одну клетку
	DefaultExportSize      = 32
	DefaultExportName      = "favicon.png"
	DefaultICOName         = "favicon.ico"
	DefaultOutputDir       = "."

	// Раскладка экрана
	CanvasX        = 20
	CanvasY        = 96
	ToolbarY       = 14
	ToolbarRowGap  = 38
	ControlHeight  = 26
	SwatchSize     = 24
	SwatchGap      = 6
	PreviewX       = 640
	PreviewY       = 96
	PreviewZoom    = 4
	SliderWidth    = 200
	SliderHeight   = 12
	SliderGap      = 22
	PickerX        = 640
	PickerY        = 330
	CheckerSize    = 6
	ClickCooldown  = 150 // мс, защита от двойного срабатывания кнопок
	MaxDeltaTime   = 0.06
	ExportQueueLen = 8
	TextCharWidth  = 7
	TextOffsetY    = 4
)

var (
	BackgroundColor    = color.RGBA{245, 245, 248, 255}
	CanvasBorderColor  = color.RGBA{150, 150, 160, 255}
	GridLineColor      = color.NRGBA{0, 0, 0, 15} // rgba(0,0,0,0.06)
	CheckerLightColor  = color.RGBA{255, 255, 255, 255}
	CheckerDarkColor   = color.RGBA{214, 214, 220, 255}
	TextDarkColor      = color.RGBA{20, 20, 30, 255}
	TextLightColor     = color.RGBA{240, 240, 240, 255}
	ButtonColor        = color.RGBA{70, 130, 180, 255}
	ButtonActiveColor  = color.RGBA{220, 60, 60, 255}
	ActiveOutlineColor = color.RGBA{255, 140, 0, 255}
	StrokeWidth        = 2.0

	// PresetPalette — 9 быстрых цветов, последний — прозрачный.
	PresetPalette = []string{
		"#000000",
		"#ffffff",
		"#ff0000",
		"#00ff00",
		"#0000ff",
		"#ffff00",
		"#ff00ff",
		"#00ffff",
		"transparent",
	}
)
