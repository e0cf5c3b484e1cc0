//go:build js && wasm

// internal/export/saver_js.go
package export

import (
	"errors"
	"syscall/js"
)

// BrowserSaver triggers a client-side download through a temporary <a download> link.
type BrowserSaver struct{}

// DefaultSaver в браузере игнорирует dir: файл уходит в загрузки.
func DefaultSaver(dir string) Saver {
	return BrowserSaver{}
}

// Save implements Saver.
func (BrowserSaver) Save(filename string, data []byte) error {
	doc := js.Global().Get("document")
	if !doc.Truthy() {
		return errors.New("no document to attach the download to")
	}

	arr := js.Global().Get("Uint8Array").New(len(data))
	js.CopyBytesToJS(arr, data)
	blob := js.Global().Get("Blob").New(
		[]interface{}{arr},
		map[string]interface{}{"type": mimeType(filename)},
	)

	urlAPI := js.Global().Get("URL")
	url := urlAPI.Call("createObjectURL", blob)
	defer urlAPI.Call("revokeObjectURL", url)

	a := doc.Call("createElement", "a")
	a.Set("href", url)
	a.Set("download", filename)
	body := doc.Get("body")
	body.Call("appendChild", a)
	a.Call("click")
	a.Call("remove")
	return nil
}

func mimeType(filename string) string {
	if FormatForName(filename) == FormatICO {
		return "image/x-icon"
	}
	return "image/png"
}
