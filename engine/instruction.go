package engine

// Instruction is one fully resolved drawing directive. Unlike a zpl.Command,
// every coordinate is absolute and every default has been applied; the slice
// order produced by Build is the draw order.
type Instruction interface {
	isInstruction()
}

// Text renders a text field. Height and Width are nil when the label never
// specified them; backends apply their own base size then. An empty Color
// means the default (black).
type Text struct {
	X            uint32
	Y            uint32
	Font         rune
	Height       *uint32
	Width        *uint32
	Text         string
	ReversePrint bool
	Color        string
}

// GraphicBox draws a rectangular box, hollow unless the thickness swallows
// the interior.
type GraphicBox struct {
	X            uint32
	Y            uint32
	Width        uint32
	Height       uint32
	Thickness    uint32
	Color        rune
	CustomColor  string
	Rounding     uint32
	ReversePrint bool
}

// GraphicCircle draws a circle. Radius carries the ^GC diameter parameter
// unchanged; backends draw it as the radius in dots.
type GraphicCircle struct {
	X            uint32
	Y            uint32
	Radius       uint32
	Thickness    uint32
	Color        rune
	CustomColor  string
	ReversePrint bool
}

// GraphicEllipse draws an ellipse inscribed in the given box.
type GraphicEllipse struct {
	X            uint32
	Y            uint32
	Width        uint32
	Height       uint32
	Thickness    uint32
	Color        rune
	CustomColor  string
	ReversePrint bool
}

// GraphicField blits decoded 1-bit-per-pixel bitmap data.
type GraphicField struct {
	X            uint32
	Y            uint32
	Width        uint32
	Height       uint32
	Data         []byte
	ReversePrint bool
}

// CustomImage renders a base64-encoded color image. A zero width or height
// requests natural or proportional sizing.
type CustomImage struct {
	X      uint32
	Y      uint32
	Width  uint32
	Height uint32
	Data   string
}

// Code128 draws a Code 128 barcode.
type Code128 struct {
	X                   uint32
	Y                   uint32
	Orientation         rune
	Height              uint32
	ModuleWidth         uint32
	InterpretationLine  rune
	InterpretationAbove rune
	CheckDigit          rune
	Mode                rune
	Data                string
	ReversePrint        bool
}

// Code39 draws a Code 39 barcode.
type Code39 struct {
	X                   uint32
	Y                   uint32
	Orientation         rune
	CheckDigit          rune
	Height              uint32
	ModuleWidth         uint32
	InterpretationLine  rune
	InterpretationAbove rune
	Data                string
	ReversePrint        bool
}

// QRCode draws a QR code.
type QRCode struct {
	X               uint32
	Y               uint32
	Orientation     rune
	Model           uint32
	Magnification   uint32
	ErrorCorrection rune
	Mask            uint32
	Data            string
	ReversePrint    bool
}

func (Text) isInstruction()           {}
func (GraphicBox) isInstruction()     {}
func (GraphicCircle) isInstruction()  {}
func (GraphicEllipse) isInstruction() {}
func (GraphicField) isInstruction()   {}
func (CustomImage) isInstruction()    {}
func (Code128) isInstruction()        {}
func (Code39) isInstruction()         {}
func (QRCode) isInstruction()         {}
