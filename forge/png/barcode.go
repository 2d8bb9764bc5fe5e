package png

import (
	"fmt"
	"image"
	"image/draw"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/boombuler/barcode/code128"
	"github.com/boombuler/barcode/code39"
	"github.com/boombuler/barcode/qr"

	"github.com/rafael-arreola/zpl-forge/engine"
)

// interpretationHeight is the fixed glyph height of the human readable
// line under (or above) a 1D barcode.
const interpretationHeight = 18

func (b *Backend) DrawCode128(c engine.Code128) error {
	// ZPL invocation codes select the start subset. The encoder picks
	// subsets itself, so the prefix is only stripped from the payload.
	data := c.Data
	for _, prefix := range []string{">:", ">;", ">9"} {
		if strings.HasPrefix(data, prefix) {
			data = data[len(prefix):]
			break
		}
	}

	code, err := code128.Encode(data)
	if err != nil {
		return &engine.BackendError{Message: fmt.Sprintf("encoding Code 128: %v", err)}
	}
	return b.draw1D(c.X, c.Y, c.Orientation, c.Height, c.ModuleWidth, data, code,
		c.ReversePrint, c.InterpretationLine, c.InterpretationAbove)
}

func (b *Backend) DrawCode39(c engine.Code39) error {
	code, err := code39.Encode(c.Data, false, true)
	if err != nil {
		return &engine.BackendError{Message: fmt.Sprintf("encoding Code 39: %v", err)}
	}
	return b.draw1D(c.X, c.Y, c.Orientation, c.Height, c.ModuleWidth, c.Data, code,
		c.ReversePrint, c.InterpretationLine, c.InterpretationAbove)
}

func (b *Backend) DrawQRCode(q engine.QRCode) error {
	var level qr.ErrorCorrectionLevel
	switch q.ErrorCorrection {
	case 'L':
		level = qr.L
	case 'Q':
		level = qr.Q
	case 'H':
		level = qr.H
	default:
		level = qr.M
	}

	code, err := qr.Encode(q.Data, level, qr.Auto)
	if err != nil {
		return &engine.BackendError{Message: fmt.Sprintf("encoding QR code: %v", err)}
	}

	mag := q.Magnification
	if mag < 1 {
		mag = 1
	}
	bw := code.Bounds().Dx()
	bh := code.Bounds().Dy()
	fullW := uint32(bw) * mag
	fullH := uint32(bh) * mag

	for gy := 0; gy < bh; gy++ {
		for gx := 0; gx < bw; gx++ {
			if !moduleSet(code, gx, gy) {
				continue
			}
			rect := orientRect(q.Orientation, q.X, q.Y, fullW, fullH,
				gx*int(mag), gy*int(mag), int(mag), int(mag))
			if q.ReversePrint {
				b.invertRect(rect)
			} else {
				b.fillRect(rect)
			}
		}
	}
	return nil
}

// draw1D paints each set module of a one-dimensional symbol as a
// moduleWidth by height bar, then the interpretation line if requested.
func (b *Backend) draw1D(x, y uint32, orientation rune, height, moduleWidth uint32, data string,
	code barcode.Barcode, reverse bool, interpLine, interpAbove rune) error {

	mw := moduleWidth
	if mw < 1 {
		mw = 1
	}
	matrixW := code.Bounds().Dx()
	bw := uint32(matrixW) * mw
	bh := height

	var fullW, fullH uint32
	switch orientation {
	case 'R', 'B':
		fullW, fullH = bh, bw
	default:
		fullW, fullH = bw, bh
	}

	for gx := 0; gx < matrixW; gx++ {
		if !moduleSet(code, gx, 0) {
			continue
		}
		rect := orientRect(orientation, x, y, bw, bh, gx*int(mw), 0, int(mw), int(bh))
		if reverse {
			b.invertRect(rect)
		} else {
			b.fillRect(rect)
		}
	}

	if interpLine == 'Y' {
		textY := y
		if interpAbove == 'Y' {
			if textY >= interpretationHeight {
				textY -= interpretationHeight
			} else {
				textY = 0
			}
		} else {
			textY += fullH
		}
		textY += 6

		textW := b.textWidth(data, '0', interpretationHeight)
		textX := x
		if fullW > textW {
			textX = x + (fullW-textW)/2
		}

		textH := uint32(interpretationHeight)
		return b.DrawText(engine.Text{
			X:      textX,
			Y:      textY,
			Font:   '0',
			Height: &textH,
			Text:   data,
		})
	}
	return nil
}

// orientRect maps a rectangle from the symbol's local space into canvas
// space for the four ZPL orientations. preW and preH are the symbol's
// full dimensions before rotation.
func orientRect(orientation rune, ox, oy, preW, preH uint32, lx, ly, w, h int) image.Rectangle {
	var nx, ny, rw, rh int
	switch orientation {
	case 'R':
		nx = int(preH) - (ly + h)
		ny = lx
		rw, rh = h, w
	case 'I':
		nx = int(preW) - (lx + w)
		ny = int(preH) - (ly + h)
		rw, rh = w, h
	case 'B':
		nx = ly
		ny = int(preW) - (lx + w)
		rw, rh = h, w
	default:
		nx, ny, rw, rh = lx, ly, w, h
	}
	return image.Rect(int(ox)+nx, int(oy)+ny, int(ox)+nx+rw, int(oy)+ny+rh)
}

func (b *Backend) fillRect(rect image.Rectangle) {
	rect = rect.Intersect(b.canvas.Bounds())
	draw.Draw(b.canvas, rect, image.NewUniform(black), image.Point{}, draw.Src)
}

// moduleSet reports whether the symbol pixel at (x, y) is a dark module.
func moduleSet(code barcode.Barcode, x, y int) bool {
	r, _, _, _ := code.At(x, y).RGBA()
	return r == 0
}
