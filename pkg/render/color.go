// pkg/render/color.go
package render

import "image/color"

// CanvasColors holds the colors used to draw the interactive canvas.
type CanvasColors struct {
	BorderColor       color.Color
	GridLineColor     color.Color
	CheckerLightColor color.Color
	CheckerDarkColor  color.Color
	StrokeWidth       float32
}

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor adds a fixed amount to every channel, saturating at 255.
func LightenColor(c color.RGBA, amount uint8) color.RGBA {
	return color.RGBA{
		R: addSat(c.R, amount),
		G: addSat(c.G, amount),
		B: addSat(c.B, amount),
		A: c.A,
	}
}

// ContrastText picks a dark or light text color readable on top of bg.
func ContrastText(bg color.RGBA, dark, light color.RGBA) color.RGBA {
	if (int(bg.R)+int(bg.G)+int(bg.B))/3 > 128 {
		return dark
	}
	return light
}

func addSat(v, d uint8) uint8 {
	if int(v)+int(d) > 255 {
		return 255
	}
	return v + d
}
