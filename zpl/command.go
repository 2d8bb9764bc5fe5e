package zpl

// Command is one parsed ZPL directive. The set of implementations is closed;
// commands are pure data and are immutable once produced by the parser.
type Command interface {
	isCommand()
}

// StartFormat is ^XA, the start of a label format.
type StartFormat struct{}

// EndFormat is ^XZ, the end of a label format.
type EndFormat struct{}

// LabelHome is ^LH, the default home position for the label.
type LabelHome struct {
	X *uint32
	Y *uint32
}

// LabelLength is ^LL, the length of the label along the Y axis.
type LabelLength struct {
	Length *uint32
}

// FieldOrigin is ^FO, the top-left corner of the field area.
type FieldOrigin struct {
	X *uint32
	Y *uint32
}

// FieldTypeset is ^FT, the field position relative to the label home,
// anchored at the font base point.
type FieldTypeset struct {
	X *uint32
	Y *uint32
}

// FieldSeparator is ^FS, the end of a field definition.
type FieldSeparator struct{}

// LabelReverse is ^LR, inverted printing for the entire label.
type LabelReverse struct {
	Reverse *YesNo
}

// Comment is ^FX. It does not print and has no effect on the label.
type Comment struct {
	Text string
}

// FontSpecFull is ^A, the font for the following text field.
type FontSpecFull struct {
	Font        rune
	Orientation *rune
	Height      *uint32
	Width       *uint32
}

// FontSpec is ^CF, the default alphanumeric font.
type FontSpec struct {
	Font   rune
	Height *uint32
	Width  *uint32
}

// FieldData is ^FD, the data to be printed in the field.
type FieldData struct {
	Data string
}

// FieldBlock is ^FB, a block of text formatted within a rectangle.
type FieldBlock struct {
	Width         *uint32
	MaxLines      *uint32
	LineSpacing   *uint32
	Justification *Justification
	Indent        *uint32
}

// ChangeIntFont is ^CI, the international character set selector.
type ChangeIntFont struct {
	Charset *uint32
}

// FieldReverse is ^FR, white-on-black printing for the current field.
type FieldReverse struct{}

// GraphicBox is ^GB. Width and height are mandatory.
type GraphicBox struct {
	Width     uint32
	Height    uint32
	Thickness *uint32
	LineColor *rune
	Rounding  *uint32
}

// GraphicCircle is ^GC.
type GraphicCircle struct {
	Diameter  *uint32
	Thickness *uint32
	LineColor *rune
}

// GraphicEllipse is ^GE.
type GraphicEllipse struct {
	Width     *uint32
	Height    *uint32
	Thickness *uint32
	LineColor *rune
}

// GraphicField is ^GF, raw graphic data for the bitmap buffer. Data holds
// the compressed payload exactly as written, minus surrounding whitespace.
type GraphicField struct {
	Compression     *rune
	BinaryByteCount *uint32
	TotalByteCount  *uint32
	BytesPerRow     *uint32
	Data            string
}

// CustomImage is ^GIC, a color image extension carrying base64 data. All
// three parameters are mandatory.
type CustomImage struct {
	Width  uint32
	Height uint32
	Data   string
}

// TextColor is ^GTC, an extension setting the color of subsequent text
// fields. Color is a hex string such as "#FF0000".
type TextColor struct {
	Color string
}

// LineColor is ^GLC, an extension setting the color of subsequent graphic
// elements.
type LineColor struct {
	Color string
}

// Code128 is ^BC, a Code 128 barcode (subsets A, B and C).
type Code128 struct {
	Orientation         *rune
	Height              *uint32
	InterpretationLine  *rune
	InterpretationAbove *rune
	CheckDigit          *rune
	Mode                *rune
}

// QRCode is ^BQ.
type QRCode struct {
	Orientation     *rune
	Model           *uint32
	Magnification   *uint32
	ErrorCorrection *rune
	Mask            *uint32
}

// Code39 is ^B3.
type Code39 struct {
	Orientation         *rune
	CheckDigit          *rune
	Height              *uint32
	InterpretationLine  *rune
	InterpretationAbove *rune
}

// BarcodeDefault is ^BY, the default module width, ratio and height for
// subsequent barcodes.
type BarcodeDefault struct {
	ModuleWidth *uint32
	Ratio       *float64
	Height      *uint32
}

// DataMatrix is ^BX, a two-dimensional Data Matrix barcode.
type DataMatrix struct {
	Orientation *rune
	Height      *uint32
	Quality     *uint32
	Columns     *uint32
	Rows        *uint32
}

// Unsupported captures any ^-prefixed two-character command the grammar does
// not recognize, with its raw argument text.
type Unsupported struct {
	Command string
	Args    string
}

func (StartFormat) isCommand()    {}
func (EndFormat) isCommand()      {}
func (LabelHome) isCommand()      {}
func (LabelLength) isCommand()    {}
func (FieldOrigin) isCommand()    {}
func (FieldTypeset) isCommand()   {}
func (FieldSeparator) isCommand() {}
func (LabelReverse) isCommand()   {}
func (Comment) isCommand()        {}
func (FontSpecFull) isCommand()   {}
func (FontSpec) isCommand()       {}
func (FieldData) isCommand()      {}
func (FieldBlock) isCommand()     {}
func (ChangeIntFont) isCommand()  {}
func (FieldReverse) isCommand()   {}
func (GraphicBox) isCommand()     {}
func (GraphicCircle) isCommand()  {}
func (GraphicEllipse) isCommand() {}
func (GraphicField) isCommand()   {}
func (CustomImage) isCommand()    {}
func (TextColor) isCommand()      {}
func (LineColor) isCommand()      {}
func (Code128) isCommand()        {}
func (QRCode) isCommand()         {}
func (Code39) isCommand()         {}
func (BarcodeDefault) isCommand() {}
func (DataMatrix) isCommand()     {}
func (Unsupported) isCommand()    {}
