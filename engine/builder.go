package engine

import (
	"log/slog"
	"math"

	"github.com/rafael-arreola/zpl-forge/codec"
	"github.com/rafael-arreola/zpl-forge/zpl"
)

// Build folds a command sequence into the ordered instruction list. It
// cannot fail: commands without builder semantics are skipped, and a ^GF
// declaring an unimplemented compression scheme stops consumption of the
// remaining commands.
func Build(commands []zpl.Command) []Instruction {
	st := &modalState{}
	instructions := []Instruction{}

loop:
	for _, command := range commands {
		switch cmd := command.(type) {
		case zpl.FieldOrigin:
			if cmd.X != nil {
				st.position.x = *cmd.X
			}
			if cmd.Y != nil {
				st.position.y = *cmd.Y
			}

		case zpl.FieldTypeset:
			if cmd.X != nil {
				st.typeset.x = satAdd(st.typeset.x, *cmd.X)
			}
			if cmd.Y != nil {
				st.typeset.y = satAdd(st.typeset.y, *cmd.Y)
			}

		case zpl.FieldReverse:
			st.reverse = !st.reverse

		case zpl.FontSpec:
			st.font.font = cmd.Font
			if cmd.Height != nil {
				st.font.height = cmd.Height
			}
			if cmd.Width != nil {
				st.font.width = cmd.Width
			}

		case zpl.FontSpecFull:
			st.font.font = cmd.Font
			if cmd.Orientation != nil {
				st.font.orientation = cmd.Orientation
			}
			if cmd.Height != nil {
				st.font.height = cmd.Height
			}
			if cmd.Width != nil {
				st.font.width = cmd.Width
			}

		case zpl.FieldData:
			data := cmd.Data
			st.value = &data

		case zpl.GraphicBox:
			st.metrics.width = cmd.Width
			st.metrics.height = cmd.Height
			st.metrics.thickness = uintOr(cmd.Thickness, 1)
			st.attrs.lineColor = cmd.LineColor
			st.params.rounding = uintOr(cmd.Rounding, 0)
			st.pending = pendingBox

		case zpl.GraphicCircle:
			st.metrics.width = uintOr(cmd.Diameter, 0)
			st.metrics.thickness = uintOr(cmd.Thickness, 1)
			st.attrs.lineColor = cmd.LineColor
			st.pending = pendingCircle

		case zpl.GraphicEllipse:
			st.metrics.width = uintOr(cmd.Width, 0)
			st.metrics.height = uintOr(cmd.Height, 0)
			st.metrics.thickness = uintOr(cmd.Thickness, 1)
			st.attrs.lineColor = cmd.LineColor
			st.pending = pendingEllipse

		case zpl.TextColor:
			st.font.color = cmd.Color

		case zpl.LineColor:
			st.attrs.customLineColor = cmd.Color

		case zpl.GraphicField:
			compression := runeOr(cmd.Compression, 'A')
			if compression != 'A' {
				// Only the ASCII scheme is implemented. Everything after an
				// unsupported ^GF is dropped rather than just the one field.
				slog.Warn("unsupported graphic field compression, stopping", "compression", string(compression))
				break loop
			}
			bytesPerRow := uintOr(cmd.BytesPerRow, 0)
			st.bitmap = codec.Decode(cmd.Data, int(bytesPerRow))
			if cmd.BytesPerRow != nil {
				st.metrics.width = satMul(*cmd.BytesPerRow, 8)
				if cmd.TotalByteCount != nil && *cmd.BytesPerRow > 0 {
					st.metrics.height = *cmd.TotalByteCount / *cmd.BytesPerRow
				}
			}
			st.pending = pendingBitmap

		case zpl.BarcodeDefault:
			if cmd.ModuleWidth != nil {
				st.barcode.thickness = *cmd.ModuleWidth
			}
			if cmd.Height != nil {
				st.barcode.height = *cmd.Height
			}
			if cmd.Ratio != nil {
				st.params.ratio = cmd.Ratio
			}

		case zpl.Code128:
			st.attrs.orientation = cmd.Orientation
			st.metrics.height = barHeight(cmd.Height, st.barcode.height)
			st.attrs.interpretationLine = cmd.InterpretationLine
			st.attrs.interpretationAbove = cmd.InterpretationAbove
			st.attrs.checkDigit = cmd.CheckDigit
			st.attrs.mode = cmd.Mode
			st.pending = pendingCode128

		case zpl.Code39:
			st.attrs.orientation = cmd.Orientation
			st.attrs.checkDigit = cmd.CheckDigit
			st.metrics.height = barHeight(cmd.Height, st.barcode.height)
			st.attrs.interpretationLine = cmd.InterpretationLine
			st.attrs.interpretationAbove = cmd.InterpretationAbove
			st.pending = pendingCode39

		case zpl.QRCode:
			st.attrs.orientation = cmd.Orientation
			st.params.model = uintOr(cmd.Model, 2)
			st.metrics.thickness = magnification(cmd.Magnification, st.barcode.thickness)
			st.attrs.errorCorrection = cmd.ErrorCorrection
			st.params.mask = uintOr(cmd.Mask, 7)
			st.pending = pendingQRCode

		case zpl.CustomImage:
			st.metrics.width = cmd.Width
			st.metrics.height = cmd.Height
			data := cmd.Data
			st.value = &data
			st.pending = pendingImage

		case zpl.FieldSeparator:
			instructions = st.flush(instructions)
		}
	}

	return instructions
}

// flush emits the instruction for the completed field, if any, and resets
// the transient state. Position, typeset, font, barcode defaults and
// qualitative attributes all survive the boundary.
func (st *modalState) flush(instructions []Instruction) []Instruction {
	x, y := st.position.x, st.position.y
	data := ""
	if st.value != nil {
		data = *st.value
	}
	reverse := st.reverse

	switch st.pending {
	case pendingBox:
		instructions = append(instructions, GraphicBox{
			X:            x,
			Y:            y,
			Width:        st.metrics.width,
			Height:       st.metrics.height,
			Thickness:    st.metrics.thickness,
			Color:        runeOr(st.attrs.lineColor, 'B'),
			CustomColor:  st.attrs.customLineColor,
			Rounding:     st.params.rounding,
			ReversePrint: reverse,
		})

	case pendingCircle:
		instructions = append(instructions, GraphicCircle{
			X:            x,
			Y:            y,
			Radius:       st.metrics.width,
			Thickness:    st.metrics.thickness,
			Color:        runeOr(st.attrs.lineColor, 'B'),
			CustomColor:  st.attrs.customLineColor,
			ReversePrint: reverse,
		})

	case pendingEllipse:
		instructions = append(instructions, GraphicEllipse{
			X:            x,
			Y:            y,
			Width:        st.metrics.width,
			Height:       st.metrics.height,
			Thickness:    st.metrics.thickness,
			Color:        runeOr(st.attrs.lineColor, 'B'),
			CustomColor:  st.attrs.customLineColor,
			ReversePrint: reverse,
		})

	case pendingBitmap:
		if st.bitmap != nil {
			instructions = append(instructions, GraphicField{
				X:            x,
				Y:            y,
				Width:        st.metrics.width,
				Height:       st.metrics.height,
				Data:         st.bitmap,
				ReversePrint: reverse,
			})
		}

	case pendingImage:
		instructions = append(instructions, CustomImage{
			X:      x,
			Y:      y,
			Width:  st.metrics.width,
			Height: st.metrics.height,
			Data:   data,
		})

	case pendingCode128:
		instructions = append(instructions, Code128{
			X:                   x,
			Y:                   y,
			Orientation:         runeOr(st.attrs.orientation, 'N'),
			Height:              st.metrics.height,
			ModuleWidth:         moduleWidth(st.barcode.thickness),
			InterpretationLine:  runeOr(st.attrs.interpretationLine, 'Y'),
			InterpretationAbove: runeOr(st.attrs.interpretationAbove, 'N'),
			CheckDigit:          runeOr(st.attrs.checkDigit, 'N'),
			Mode:                runeOr(st.attrs.mode, 'N'),
			Data:                data,
			ReversePrint:        reverse,
		})

	case pendingCode39:
		instructions = append(instructions, Code39{
			X:                   x,
			Y:                   y,
			Orientation:         runeOr(st.attrs.orientation, 'N'),
			CheckDigit:          runeOr(st.attrs.checkDigit, 'N'),
			Height:              st.metrics.height,
			ModuleWidth:         moduleWidth(st.barcode.thickness),
			InterpretationLine:  runeOr(st.attrs.interpretationLine, 'Y'),
			InterpretationAbove: runeOr(st.attrs.interpretationAbove, 'N'),
			Data:                data,
			ReversePrint:        reverse,
		})

	case pendingQRCode:
		instructions = append(instructions, QRCode{
			X:               x,
			Y:               y,
			Orientation:     runeOr(st.attrs.orientation, 'N'),
			Model:           st.params.model,
			Magnification:   st.metrics.thickness,
			ErrorCorrection: runeOr(st.attrs.errorCorrection, 'M'),
			Mask:            st.params.mask,
			Data:            data,
			ReversePrint:    reverse,
		})

	case pendingNone:
		if st.value != nil {
			instructions = append(instructions, Text{
				X:            x,
				Y:            y,
				Font:         st.font.font,
				Height:       st.font.height,
				Width:        st.font.width,
				Text:         data,
				ReversePrint: reverse,
				Color:        st.font.color,
			})
		}
	}

	st.value = nil
	st.pending = pendingNone
	st.bitmap = nil
	st.reverse = false
	return instructions
}

// barHeight resolves a 1D barcode height: explicit value, then the ^BY
// default, then 10.
func barHeight(explicit *uint32, fallback uint32) uint32 {
	if explicit != nil {
		return *explicit
	}
	if fallback > 0 {
		return fallback
	}
	return 10
}

// magnification resolves QR magnification: explicit value, then the ^BY
// module width, then 2.
func magnification(explicit *uint32, fallback uint32) uint32 {
	if explicit != nil {
		return *explicit
	}
	if fallback > 0 {
		return fallback
	}
	return 2
}

// moduleWidth resolves a 1D barcode module width from the ^BY default.
func moduleWidth(fallback uint32) uint32 {
	if fallback > 0 {
		return fallback
	}
	return 2
}

func uintOr(p *uint32, def uint32) uint32 {
	if p != nil {
		return *p
	}
	return def
}

func runeOr(p *rune, def rune) rune {
	if p != nil {
		return *p
	}
	return def
}

func satAdd(a, b uint32) uint32 {
	if a > math.MaxUint32-b {
		return math.MaxUint32
	}
	return a + b
}

func satMul(a, b uint32) uint32 {
	if a == 0 {
		return 0
	}
	if a > math.MaxUint32/b {
		return math.MaxUint32
	}
	return a * b
}
