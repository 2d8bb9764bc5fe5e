package engine

// modalState is the builder's single mutable accumulator, alive for one
// Build call. Fields are grouped by semantic role; persistence rules differ
// per group (see flush in builder.go).
type modalState struct {
	position position
	typeset  typeset
	metrics  metrics
	// barcode holds the ^BY defaults; never reset at field boundaries.
	barcode metrics
	attrs   attributes
	params  parameters
	font    fontState
	// reverse is transient: cleared at every field boundary.
	reverse bool
	value   *string
	bitmap  []byte
	pending pendingKind
}

// position is the absolute field origin.
type position struct {
	x uint32
	y uint32
}

// typeset accumulates ^FT offsets with saturating addition.
type typeset struct {
	x uint32
	y uint32
}

// metrics is shared numeric data; thickness doubles as module width or
// magnification depending on the pending instruction kind.
type metrics struct {
	width     uint32
	height    uint32
	thickness uint32
}

// attributes are qualitative settings that persist until overwritten.
type attributes struct {
	orientation         *rune
	interpretationLine  *rune
	interpretationAbove *rune
	checkDigit          *rune
	mode                *rune
	errorCorrection     *rune
	lineColor           *rune
	customLineColor     string
}

// parameters are algorithm-specific values.
type parameters struct {
	rounding uint32
	model    uint32
	mask     uint32
	ratio    *float64
}

// fontState is the active font configuration; it spans fields.
type fontState struct {
	font   rune
	height *uint32
	width  *uint32
	// orientation is tracked for completeness; text emission does not
	// consume it.
	orientation *rune
	color       string
}

// pendingKind selects which instruction shape the next ^FS emits.
type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingBox
	pendingCircle
	pendingEllipse
	pendingBitmap
	pendingImage
	pendingCode128
	pendingCode39
	pendingQRCode
)
