// internal/export/saver.go
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileSaver пишет файлы в каталог Dir. Файл сначала пишется во временный,
// затем переименовывается, чтобы не оставлять обрезанный favicon.
type FileSaver struct {
	Dir string
}

// Save implements Saver.
func (s FileSaver) Save(filename string, data []byte) error {
	dir := s.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filename+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", filename, err)
	}
	if err := os.Chmod(tmp.Name(), 0o644); err != nil {
		return fmt.Errorf("chmod %s: %w", filename, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, filename)); err != nil {
		return fmt.Errorf("rename %s: %w", filename, err)
	}
	return nil
}

// MemorySaver хранит сохранённые файлы в памяти. Безопасен для конкурентного использования.
type MemorySaver struct {
	mu    sync.Mutex
	files map[string][]byte
	order []string
}

// NewMemorySaver создаёт пустое хранилище.
func NewMemorySaver() *MemorySaver {
	return &MemorySaver{files: make(map[string][]byte)}
}

// Save implements Saver.
func (m *MemorySaver) Save(filename string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(data))
	copy(buf, data)
	m.files[filename] = buf
	m.order = append(m.order, filename)
	return nil
}

// File возвращает последнее содержимое filename.
func (m *MemorySaver) File(filename string) ([]byte, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	data, ok := m.files[filename]
	return data, ok
}

// Saved возвращает имена в порядке сохранения (с повторами).
func (m *MemorySaver) Saved() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.order))
	copy(out, m.order)
	return out
}
