package zpl

// Matchers for the standard command set. Each one first matches its literal
// tag (reporting errNoMatch otherwise) and then reads its parameter list;
// only the parameters noted as mandatory fail hard.

func matchStartFormat(s *scanner) (Command, error) {
	if !s.literal("^XA") {
		return nil, errNoMatch
	}
	return StartFormat{}, nil
}

func matchEndFormat(s *scanner) (Command, error) {
	if !s.literal("^XZ") {
		return nil, errNoMatch
	}
	return EndFormat{}, nil
}

func matchLabelHome(s *scanner) (Command, error) {
	if !s.literal("^LH") {
		return nil, errNoMatch
	}
	x, y, err := xyPair(s)
	if err != nil {
		return nil, err
	}
	return LabelHome{X: x, Y: y}, nil
}

func matchLabelLength(s *scanner) (Command, error) {
	if !s.literal("^LL") {
		return nil, errNoMatch
	}
	length, ok := optUint(s)
	if !ok {
		return nil, s.fail("expected digit sequence")
	}
	return LabelLength{Length: length}, nil
}

func matchFieldOrigin(s *scanner) (Command, error) {
	if !s.literal("^FO") {
		return nil, errNoMatch
	}
	x, y, err := xyPair(s)
	if err != nil {
		return nil, err
	}
	return FieldOrigin{X: x, Y: y}, nil
}

func matchFieldTypeset(s *scanner) (Command, error) {
	if !s.literal("^FT") {
		return nil, errNoMatch
	}
	x, y, err := xyPair(s)
	if err != nil {
		return nil, err
	}
	return FieldTypeset{X: x, Y: y}, nil
}

func matchFieldSeparator(s *scanner) (Command, error) {
	if !s.literal("^FS") {
		return nil, errNoMatch
	}
	return FieldSeparator{}, nil
}

func matchLabelReverse(s *scanner) (Command, error) {
	if !s.literal("^LR") {
		return nil, errNoMatch
	}
	r, ok := optChar(s)
	if !ok {
		return nil, s.fail("expected parameter character")
	}
	var reverse *YesNo
	if r != nil {
		v := YesNoFrom(*r)
		reverse = &v
	}
	return LabelReverse{Reverse: reverse}, nil
}

func matchComment(s *scanner) (Command, error) {
	if !s.literal("^FX") {
		return nil, errNoMatch
	}
	return Comment{Text: s.textUntilCaret()}, nil
}

func matchFontSpecFull(s *scanner) (Command, error) {
	if !s.literal("^A") {
		return nil, errNoMatch
	}
	font, ok := s.char()
	if !ok {
		return nil, s.fail("expected font identifier")
	}
	// The orientation shares the font letter's parameter slot, so a stray
	// character here is a soft failure: the input is handed to the fallback
	// matcher instead of aborting the parse.
	orientation, ok := optChar(s)
	if !ok {
		return nil, errNoMatch
	}
	height := paramUint(s)
	width := paramUint(s)
	return FontSpecFull{Font: font, Orientation: orientation, Height: height, Width: width}, nil
}

func matchFontSpec(s *scanner) (Command, error) {
	if !s.literal("^CF") {
		return nil, errNoMatch
	}
	font, ok := s.char()
	if !ok {
		return nil, s.fail("expected font identifier")
	}
	height := paramUint(s)
	width := paramUint(s)
	return FontSpec{Font: font, Height: height, Width: width}, nil
}

func matchFieldData(s *scanner) (Command, error) {
	if !s.literal("^FD") {
		return nil, errNoMatch
	}
	return FieldData{Data: s.textUntilCaret()}, nil
}

func matchFieldBlock(s *scanner) (Command, error) {
	if !s.literal("^FB") {
		return nil, errNoMatch
	}
	width, ok := optUint(s)
	if !ok {
		return nil, s.fail("expected digit sequence")
	}
	maxLines := paramUint(s)
	lineSpacing := paramUint(s)
	var justification *Justification
	if j := paramChar(s); j != nil {
		v := JustificationFrom(*j)
		justification = &v
	}
	indent := paramUint(s)
	return FieldBlock{
		Width:         width,
		MaxLines:      maxLines,
		LineSpacing:   lineSpacing,
		Justification: justification,
		Indent:        indent,
	}, nil
}

func matchChangeIntFont(s *scanner) (Command, error) {
	if !s.literal("^CI") {
		return nil, errNoMatch
	}
	charset, ok := optUint(s)
	if !ok {
		return nil, s.fail("expected digit sequence")
	}
	return ChangeIntFont{Charset: charset}, nil
}

func matchFieldReverse(s *scanner) (Command, error) {
	if !s.literal("^FR") {
		return nil, errNoMatch
	}
	return FieldReverse{}, nil
}

func matchGraphicBox(s *scanner) (Command, error) {
	if !s.literal("^GB") {
		return nil, errNoMatch
	}
	width, ok := s.uint()
	if !ok {
		return nil, s.fail("expected digit sequence")
	}
	if !s.literal(",") {
		return nil, s.fail("expected ','")
	}
	height, ok := s.uint()
	if !ok {
		return nil, s.fail("expected digit sequence")
	}
	thickness := paramUint(s)
	lineColor := paramChar(s)
	rounding := paramUint(s)
	return GraphicBox{
		Width:     width,
		Height:    height,
		Thickness: thickness,
		LineColor: lineColor,
		Rounding:  rounding,
	}, nil
}

func matchGraphicCircle(s *scanner) (Command, error) {
	if !s.literal("^GC") {
		return nil, errNoMatch
	}
	diameter, ok := optUint(s)
	if !ok {
		return nil, s.fail("expected digit sequence")
	}
	thickness := paramUint(s)
	lineColor := paramChar(s)
	return GraphicCircle{Diameter: diameter, Thickness: thickness, LineColor: lineColor}, nil
}

func matchGraphicEllipse(s *scanner) (Command, error) {
	if !s.literal("^GE") {
		return nil, errNoMatch
	}
	width, ok := optUint(s)
	if !ok {
		return nil, s.fail("expected digit sequence")
	}
	height := paramUint(s)
	thickness := paramUint(s)
	lineColor := paramChar(s)
	return GraphicEllipse{Width: width, Height: height, Thickness: thickness, LineColor: lineColor}, nil
}

func matchGraphicField(s *scanner) (Command, error) {
	if !s.literal("^GF") {
		return nil, errNoMatch
	}
	compression, ok := optChar(s)
	if !ok {
		return nil, s.fail("expected parameter character")
	}
	binaryByteCount := paramUint(s)
	totalByteCount := paramUint(s)
	bytesPerRow := paramUint(s)
	s.literal(",")
	return GraphicField{
		Compression:     compression,
		BinaryByteCount: binaryByteCount,
		TotalByteCount:  totalByteCount,
		BytesPerRow:     bytesPerRow,
		Data:            s.textUntilCaret(),
	}, nil
}

// The barcode family bounds its whole argument list to the text before the
// next command and parses inside that chunk; anything left over in the chunk
// is discarded. A stray first parameter makes the command fall through to
// the Unsupported fallback rather than abort.

func matchCode128(s *scanner) (Command, error) {
	if !s.literal("^BC") {
		return nil, errNoMatch
	}
	args := &scanner{src: s.chunkUntilCaret()}
	orientation, ok := optChar(args)
	if !ok {
		return nil, errNoMatch
	}
	height := paramUint(args)
	interpretationLine := paramChar(args)
	interpretationAbove := paramChar(args)
	checkDigit := paramChar(args)
	mode := paramChar(args)
	return Code128{
		Orientation:         orientation,
		Height:              height,
		InterpretationLine:  interpretationLine,
		InterpretationAbove: interpretationAbove,
		CheckDigit:          checkDigit,
		Mode:                mode,
	}, nil
}

func matchQRCode(s *scanner) (Command, error) {
	if !s.literal("^BQ") {
		return nil, errNoMatch
	}
	args := &scanner{src: s.chunkUntilCaret()}
	orientation, ok := optChar(args)
	if !ok {
		return nil, errNoMatch
	}
	model := paramUint(args)
	magnification := paramUint(args)
	errorCorrection := paramChar(args)
	mask := paramUint(args)
	return QRCode{
		Orientation:     orientation,
		Model:           model,
		Magnification:   magnification,
		ErrorCorrection: errorCorrection,
		Mask:            mask,
	}, nil
}

func matchCode39(s *scanner) (Command, error) {
	if !s.literal("^B3") {
		return nil, errNoMatch
	}
	args := &scanner{src: s.chunkUntilCaret()}
	orientation, ok := optChar(args)
	if !ok {
		return nil, errNoMatch
	}
	checkDigit := paramChar(args)
	height := paramUint(args)
	interpretationLine := paramChar(args)
	interpretationAbove := paramChar(args)
	return Code39{
		Orientation:         orientation,
		CheckDigit:          checkDigit,
		Height:              height,
		InterpretationLine:  interpretationLine,
		InterpretationAbove: interpretationAbove,
	}, nil
}

func matchBarcodeDefault(s *scanner) (Command, error) {
	if !s.literal("^BY") {
		return nil, errNoMatch
	}
	args := &scanner{src: s.chunkUntilCaret()}
	moduleWidth, ok := optUint(args)
	if !ok {
		return nil, errNoMatch
	}
	ratio := paramFloat(args)
	height := paramUint(args)
	return BarcodeDefault{ModuleWidth: moduleWidth, Ratio: ratio, Height: height}, nil
}

func matchDataMatrix(s *scanner) (Command, error) {
	if !s.literal("^BX") {
		return nil, errNoMatch
	}
	args := &scanner{src: s.chunkUntilCaret()}
	orientation, ok := optChar(args)
	if !ok {
		return nil, errNoMatch
	}
	height := paramUint(args)
	quality := paramUint(args)
	columns := paramUint(args)
	rows := paramUint(args)
	return DataMatrix{
		Orientation: orientation,
		Height:      height,
		Quality:     quality,
		Columns:     columns,
		Rows:        rows,
	}, nil
}
