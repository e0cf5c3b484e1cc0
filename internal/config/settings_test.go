package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pixel-favicon/pkg/grid"
)

func TestDefaultSettingsAreValid(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())
	assert.Equal(t, 16, s.GridSize)
	assert.Equal(t, 18, s.CellDisplaySize)
	assert.Equal(t, 32, s.ExportSize)
	assert.Equal(t, "favicon.png", s.ExportName)

	colors, err := s.PaletteColors()
	require.NoError(t, err)
	require.Len(t, colors, 9)
	assert.Equal(t, grid.RGB(0, 0, 0), colors[0])
	assert.Equal(t, grid.Transparent, colors[8])
}

func TestDefaultSettingsPaletteIsACopy(t *testing.T) {
	s := DefaultSettings()
	s.Palette[0] = "#123456"
	assert.Equal(t, "#000000", PresetPalette[0])
}

func TestParseSettingsOverrides(t *testing.T) {
	data := []byte(`
grid_size = 32
export_name = "icon.png"
palette = ["#abc", "transparent"]
`)
	s, err := ParseSettings(data)
	require.NoError(t, err)
	assert.Equal(t, 32, s.GridSize)
	assert.Equal(t, "icon.png", s.ExportName)
	assert.Equal(t, DefaultCellDisplaySize, s.CellDisplaySize, "unset keys keep defaults")
	assert.Equal(t, []string{"#abc", "transparent"}, s.Palette)
}

func TestParseSettingsRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"grid size", "grid_size = 12"},
		{"cell size", "cell_display_size = 1"},
		{"export size", "export_size = 0"},
		{"png extension", `export_name = "favicon.jpg"`},
		{"ico extension", `ico_name = "favicon.png"`},
		{"path in name", `export_name = "../favicon.png"`},
		{"empty palette", "palette = []"},
		{"bad colour", `palette = ["#zzz"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSettings([]byte(tt.data))
			assert.ErrorIs(t, err, ErrInvalidSettings)
		})
	}
}

func TestParseSettingsMalformedTOML(t *testing.T) {
	_, err := ParseSettings([]byte("grid_size = "))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidSettings)
}

func TestLoadSettings(t *testing.T) {
	s, err := LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, DefaultSettings(), s)

	path := filepath.Join(t.TempDir(), "painter.toml")
	require.NoError(t, os.WriteFile(path, []byte("grid_size = 8\noutput_dir = \"out\"\n"), 0o644))
	s, err = LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, 8, s.GridSize)
	assert.Equal(t, "out", s.OutputDir)

	_, err = LoadSettings(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
