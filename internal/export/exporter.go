// internal/export/exporter.go
package export

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	"pixel-favicon/pkg/grid"
	"pixel-favicon/pkg/raster"
)

// ErrEmptyImage is returned when encoding produced no bytes.
var ErrEmptyImage = errors.New("encoder produced no data")

// Format — формат выходного файла.
type Format int

const (
	FormatPNG Format = iota
	FormatICO
)

func (f Format) String() string {
	switch f {
	case FormatICO:
		return "ico"
	default:
		return "png"
	}
}

// FormatForName выбирает формат по расширению имени файла. По умолчанию PNG.
func FormatForName(name string) Format {
	if strings.EqualFold(filepath.Ext(name), ".ico") {
		return FormatICO
	}
	return FormatPNG
}

// Saver доставляет закодированный файл пользователю: на диск или как загрузку в браузере.
type Saver interface {
	Save(filename string, data []byte) error
}

// Exporter rasterizes grid snapshots and hands the encoded file to a Saver.
// It holds no mutable state, so concurrent exports are independent.
type Exporter struct {
	saver Saver
}

// NewExporter создаёт экспортёр поверх saver.
func NewExporter(saver Saver) *Exporter {
	return &Exporter{saver: saver}
}

// Export renders snap at targetSize, encodes it according to the filename
// extension and saves it under filename.
func (e *Exporter) Export(snap *grid.Snapshot, targetSize int, filename string) error {
	img := raster.Render(snap, targetSize)
	data, err := Encode(img, FormatForName(filename))
	if err != nil {
		return fmt.Errorf("export %s: %w", filename, err)
	}
	if err := e.saver.Save(filename, data); err != nil {
		return fmt.Errorf("export %s: %w", filename, err)
	}
	return nil
}

// Encode кодирует изображение без потерь в выбранном формате.
func Encode(img image.Image, format Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	if buf.Len() == 0 {
		return nil, ErrEmptyImage
	}
	if format == FormatICO {
		b := img.Bounds()
		return wrapICO(buf.Bytes(), b.Dx(), b.Dy())
	}
	return buf.Bytes(), nil
}
