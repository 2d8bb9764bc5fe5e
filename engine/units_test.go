package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUnitToDots(t *testing.T) {
	cases := []struct {
		name string
		unit Unit
		res  Resolution
		want uint32
	}{
		{"dots pass through", Dots(100), Dpi203, 100},
		{"one inch at 203", Inches(1), Dpi203, 203},
		{"four inches at 203", Inches(4), Dpi203, 813},
		{"ten millimeters at 203", Millimeters(10), Dpi203, 80},
		{"one centimeter at 203", Centimeters(1), Dpi203, 80},
		{"one inch at 300", Inches(1), Dpi300, 305},
		{"ten millimeters at 152", Millimeters(10), Dpi152, 60},
		{"negative clamps to zero", Inches(-2), Dpi203, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.unit.ToDots(tc.res))
		})
	}
}

func TestCustomResolution(t *testing.T) {
	res := CustomResolution(254)
	assert.Equal(t, float64(254), res.DPI())
	assert.Equal(t, float64(10), res.DotsPerMM())
}

func TestPresetResolutionsUseExactDotsPerMM(t *testing.T) {
	assert.Equal(t, float64(8), Dpi203.DotsPerMM())
	assert.Equal(t, float64(12), Dpi300.DotsPerMM())
	assert.Equal(t, float64(24), Dpi600.DotsPerMM())
	assert.Equal(t, float64(6), Dpi152.DotsPerMM())
}
