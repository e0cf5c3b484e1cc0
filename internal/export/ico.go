// internal/export/ico.go
package export

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	icoHeaderSize = 6
	icoEntrySize  = 16
	icoMaxSide    = 256
)

// wrapICO упаковывает PNG в контейнер .ico с одной картинкой.
// Начиная с Vista .ico может хранить PNG как есть, без BMP-заголовка.
func wrapICO(pngData []byte, width, height int) ([]byte, error) {
	if width < 1 || height < 1 || width > icoMaxSide || height > icoMaxSide {
		return nil, fmt.Errorf("ico: size %dx%d out of [1, %d]", width, height, icoMaxSide)
	}
	if len(pngData) == 0 {
		return nil, ErrEmptyImage
	}

	buf := bytes.NewBuffer(make([]byte, 0, icoHeaderSize+icoEntrySize+len(pngData)))

	// ICONDIR
	binary.Write(buf, binary.LittleEndian, uint16(0)) // reserved
	binary.Write(buf, binary.LittleEndian, uint16(1)) // type: icon
	binary.Write(buf, binary.LittleEndian, uint16(1)) // count

	// ICONDIRENTRY; 0 означает 256
	buf.WriteByte(byte(width % icoMaxSide))
	buf.WriteByte(byte(height % icoMaxSide))
	buf.WriteByte(0)                                   // palette size
	buf.WriteByte(0)                                   // reserved
	binary.Write(buf, binary.LittleEndian, uint16(1))  // color planes
	binary.Write(buf, binary.LittleEndian, uint16(32)) // bits per pixel
	binary.Write(buf, binary.LittleEndian, uint32(len(pngData)))
	binary.Write(buf, binary.LittleEndian, uint32(icoHeaderSize+icoEntrySize))

	buf.Write(pngData)
	return buf.Bytes(), nil
}
