package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafael-arreola/zpl-forge/engine"
)

const sampleProfile = `
label {
  width  = "4in"
  height = "6in"
  dpi    = 300
}

font "roboto" {
  path        = "fonts/roboto.ttf"
  identifiers = "AB0"
}

variables {
  name  = "Ann"
  count = 3
}

output {
  format = "pdf"
  path   = "out/label.pdf"
}
`

func TestLoadSourceFullProfile(t *testing.T) {
	profile, err := LoadSource("test.hcl", []byte(sampleProfile))
	require.NoError(t, err)

	assert.Equal(t, uint32(1219), profile.Width.ToDots(engine.Dpi300))
	assert.Equal(t, uint32(1829), profile.Height.ToDots(engine.Dpi300))
	assert.Equal(t, engine.Dpi300, profile.Resolution)

	require.Len(t, profile.Fonts, 1)
	assert.Equal(t, "roboto", profile.Fonts[0].Name)
	assert.Equal(t, "fonts/roboto.ttf", profile.Fonts[0].Path)
	assert.Equal(t, "AB0", profile.Fonts[0].Identifiers)

	assert.Equal(t, map[string]string{"name": "Ann", "count": "3"}, profile.Variables)

	assert.Equal(t, "pdf", profile.Format)
	assert.Equal(t, "out/label.pdf", profile.OutputPath)
}

func TestLoadSourceEmptyKeepsDefaults(t *testing.T) {
	profile, err := LoadSource("empty.hcl", []byte(""))
	require.NoError(t, err)

	defaults := DefaultProfile()
	assert.Equal(t, defaults.Width, profile.Width)
	assert.Equal(t, defaults.Height, profile.Height)
	assert.Equal(t, defaults.Resolution, profile.Resolution)
	assert.Equal(t, "png", profile.Format)
}

func TestLoadSourceRejectsBadFormat(t *testing.T) {
	src := []byte("output {\n  format = \"svg\"\n}\n")
	_, err := LoadSource("bad.hcl", src)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "svg")
}

func TestLoadSourceRejectsInvalidHCL(t *testing.T) {
	_, err := LoadSource("broken.hcl", []byte("label {"))
	require.Error(t, err)
}

func TestParseUnit(t *testing.T) {
	cases := []struct {
		input string
		want  engine.Unit
	}{
		{"4in", engine.Inches(4)},
		{"101.6mm", engine.Millimeters(101.6)},
		{"10.16cm", engine.Centimeters(10.16)},
		{"812dots", engine.Dots(812)},
		{"812", engine.Dots(812)},
		{" 6 in ", engine.Inches(6)},
		{"4IN", engine.Inches(4)},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := ParseUnit(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseUnitErrors(t *testing.T) {
	for _, input := range []string{"", "abc", "-4in", "in"} {
		t.Run(input, func(t *testing.T) {
			_, err := ParseUnit(input)
			assert.Error(t, err)
		})
	}
}

func TestResolutionForDPI(t *testing.T) {
	assert.Equal(t, engine.Dpi203, ResolutionForDPI(203))
	assert.Equal(t, engine.Dpi300, ResolutionForDPI(300))
	assert.Equal(t, engine.Dpi600, ResolutionForDPI(600))
	assert.Equal(t, engine.Dpi152, ResolutionForDPI(152))
	assert.Equal(t, float64(254), ResolutionForDPI(254).DPI())
}
