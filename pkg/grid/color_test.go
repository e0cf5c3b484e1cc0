package grid

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHex(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#000000", RGB(0, 0, 0)},
		{"#ff00FF", RGB(0xff, 0, 0xff)},
		{"#0f0", RGB(0, 0xff, 0)},
		{" #123456 ", RGB(0x12, 0x34, 0x56)},
		{"transparent", Transparent},
		{"Transparent", Transparent},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHex(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseHexErrors(t *testing.T) {
	for _, in := range []string{"", "ff0000", "#ff00", "#gggggg", "red"} {
		_, err := ParseHex(in)
		assert.Errorf(t, err, "input %q", in)
	}
}

func TestHexFormatting(t *testing.T) {
	assert.Equal(t, "#ff0000", RGB(0xff, 0, 0).Hex())
	assert.Equal(t, "transparent", Transparent.Hex())
	assert.Equal(t, RGB(0xab, 0xcd, 0xef), MustParseHex(RGB(0xab, 0xcd, 0xef).Hex()))
}

func TestNRGBA(t *testing.T) {
	assert.Equal(t, color.NRGBA{}, Transparent.NRGBA())
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 0xff}, RGB(1, 2, 3).NRGBA())
	// A black opaque cell is not the sentinel.
	assert.NotEqual(t, Transparent, RGB(0, 0, 0))
}
