//go:build !js

// internal/export/saver_native.go
package export

// DefaultSaver на десктопе пишет файлы в каталог dir.
func DefaultSaver(dir string) Saver {
	return FileSaver{Dir: dir}
}
