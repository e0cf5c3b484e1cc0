package app

import (
	"bytes"
	"image"
	"image/png"
)

func decode(data []byte) (image.Image, error) {
	return png.Decode(bytes.NewReader(data))
}
