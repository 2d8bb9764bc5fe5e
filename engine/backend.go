package engine

// Backend renders instructions to a concrete output format. The engine
// calls SetupPage and SetupFonts once, then one Draw method per
// instruction in draw order, then Finalize. Implementations are free to
// keep state across calls; a Backend value renders a single label.
type Backend interface {
	// SetupPage prepares the drawing surface. Width and height are in
	// printer dots.
	SetupPage(width, height float64, res Resolution)

	// SetupFonts hands the backend the registry used to resolve text
	// fields.
	SetupFonts(fonts *FontRegistry)

	DrawText(t Text) error
	DrawGraphicBox(b GraphicBox) error
	DrawGraphicCircle(c GraphicCircle) error
	DrawGraphicEllipse(e GraphicEllipse) error
	DrawGraphicField(f GraphicField) error
	DrawCustomImage(i CustomImage) error
	DrawCode128(c Code128) error
	DrawCode39(c Code39) error
	DrawQRCode(q QRCode) error

	// Finalize returns the encoded output.
	Finalize() ([]byte, error)
}
