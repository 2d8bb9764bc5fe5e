package engine

import "math"

// Resolution is a printing resolution. The presets carry the exact
// dots-per-millimeter values printers advertise (6, 8, 12, 24), which do not
// round-trip through dpi/25.4.
type Resolution struct {
	dpi  float64
	dpmm float64
}

// Common printer resolutions. Dpi203 (8 dots/mm) is the de-facto standard.
var (
	Dpi152 = Resolution{dpi: 152, dpmm: 6}
	Dpi203 = Resolution{dpi: 203.2, dpmm: 8}
	Dpi300 = Resolution{dpi: 304.8, dpmm: 12}
	Dpi600 = Resolution{dpi: 609.6, dpmm: 24}
)

// CustomResolution builds a Resolution from an arbitrary dpi value.
func CustomResolution(dpi float64) Resolution {
	return Resolution{dpi: dpi, dpmm: dpi / 25.4}
}

// DPI returns the dots per inch.
func (r Resolution) DPI() float64 { return r.dpi }

// DotsPerMM returns the dots per millimeter.
func (r Resolution) DotsPerMM() float64 { return r.dpmm }

type unitKind int

const (
	unitDots unitKind = iota
	unitInches
	unitMillimeters
	unitCentimeters
)

// Unit is a physical dimension in one of the supported measurement systems.
type Unit struct {
	kind  unitKind
	value float64
}

// Dots is a dimension already expressed in printer dots.
func Dots(n uint32) Unit { return Unit{kind: unitDots, value: float64(n)} }

// Inches is a dimension in inches.
func Inches(v float64) Unit { return Unit{kind: unitInches, value: v} }

// Millimeters is a dimension in millimeters.
func Millimeters(v float64) Unit { return Unit{kind: unitMillimeters, value: v} }

// Centimeters is a dimension in centimeters.
func Centimeters(v float64) Unit { return Unit{kind: unitCentimeters, value: v} }

// ToDots converts the dimension to dots at the given resolution. Negative
// inputs clamp to zero before conversion.
func (u Unit) ToDots(res Resolution) uint32 {
	switch u.kind {
	case unitDots:
		return uint32(u.value)
	case unitInches:
		return uint32(math.Round(math.Max(u.value, 0) * res.DPI()))
	case unitMillimeters:
		return uint32(math.Round(math.Max(u.value, 0) * res.DotsPerMM()))
	case unitCentimeters:
		return uint32(math.Round(math.Max(u.value, 0) * 10 * res.DotsPerMM()))
	default:
		return 0
	}
}
