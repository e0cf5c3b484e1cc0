// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"pixel-favicon/pkg/grid"
)

// ErrInvalidSettings оборачивает все ошибки валидации настроек.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings — параметры редактора, которые можно переопределить TOML-файлом.
type Settings struct {
	GridSize        int      `toml:"grid_size"`
	CellDisplaySize int      `toml:"cell_display_size"`
	ExportSize      int      `toml:"export_size"`
	ExportName      string   `toml:"export_name"`
	ICOName         string   `toml:"ico_name"`
	OutputDir       string   `toml:"output_dir"`
	Palette         []string `toml:"palette"`
}

// DefaultSettings возвращает настройки по умолчанию.
func DefaultSettings() Settings {
	palette := make([]string, len(PresetPalette))
	copy(palette, PresetPalette)
	return Settings{
		GridSize:        DefaultGridSize,
		CellDisplaySize: DefaultCellDisplaySize,
		ExportSize:      DefaultExportSize,
		ExportName:      DefaultExportName,
		ICOName:         DefaultICOName,
		OutputDir:       DefaultOutputDir,
		Palette:         palette,
	}
}

// LoadSettings reads a TOML file over the defaults. An empty path returns the defaults.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	return ParseSettings(data)
}

// ParseSettings decodes TOML data over the defaults and validates the result.
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := toml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate проверяет диапазоны значений.
func (s Settings) Validate() error {
	if !grid.IsSupportedSize(s.GridSize) {
		return fmt.Errorf("%w: grid_size %d, want one of %v", ErrInvalidSettings, s.GridSize, grid.SupportedSizes)
	}
	if s.CellDisplaySize < 4 || s.CellDisplaySize > 64 {
		return fmt.Errorf("%w: cell_display_size %d out of [4, 64]", ErrInvalidSettings, s.CellDisplaySize)
	}
	if s.ExportSize < 1 || s.ExportSize > 256 {
		return fmt.Errorf("%w: export_size %d out of [1, 256]", ErrInvalidSettings, s.ExportSize)
	}
	if err := checkFileName(s.ExportName, ".png"); err != nil {
		return fmt.Errorf("%w: export_name: %v", ErrInvalidSettings, err)
	}
	if err := checkFileName(s.ICOName, ".ico"); err != nil {
		return fmt.Errorf("%w: ico_name: %v", ErrInvalidSettings, err)
	}
	if len(s.Palette) == 0 {
		return fmt.Errorf("%w: palette is empty", ErrInvalidSettings)
	}
	if _, err := s.PaletteColors(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// PaletteColors разбирает строки палитры в цвета сетки.
func (s Settings) PaletteColors() ([]grid.Color, error) {
	colors := make([]grid.Color, 0, len(s.Palette))
	for _, p := range s.Palette {
		c, err := grid.ParseHex(p)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

func checkFileName(name, ext string) error {
	if name == "" {
		return errors.New("empty file name")
	}
	if filepath.Base(name) != name {
		return fmt.Errorf("%q must be a bare file name", name)
	}
	if !strings.EqualFold(filepath.Ext(name), ext) {
		return fmt.Errorf("%q must end in %s", name, ext)
	}
	return nil
}
