package codec

import (
	"encoding/hex"
	"image"
	"image/color"
	"strings"
)

// MaxDecodedSize caps Decode's output so malformed or hostile payloads
// cannot request unbounded memory.
const MaxDecodedSize = 10 * 1024 * 1024

const (
	// maxRepeat bounds the nibble repeat count of a single token.
	maxRepeat = 10000
	// maxRowRepeat bounds the row copies of a single `:` token.
	maxRowRepeat = 1000
	// maxRun is the longest character run a single encoded token group covers.
	maxRun = 400
)

// Decode expands ^GF-compressed data into row-major bitmap bytes. It never
// fails: unknown characters are skipped and output stops growing at
// MaxDecodedSize. bytesPerRow enables the row-control characters; with a
// zero or negative value they are ignored.
func Decode(encoded string, bytesPerRow int) []byte {
	out := make([]byte, 0, 64)
	multiplier := 0
	highNibble := -1
	lastRowControl := false

	for _, c := range encoded {
		if len(out) > MaxDecodedSize {
			break
		}
		switch {
		case c >= 'G' && c <= 'Y':
			multiplier = satAddInt(multiplier, int(c-'G')+1)

		case c >= 'g' && c <= 'z':
			multiplier = satAddInt(multiplier, (int(c-'g')+1)*20)

		case c == ':':
			if highNibble >= 0 {
				out = append(out, byte(highNibble)<<4)
				highNibble = -1
			}
			if bytesPerRow > 0 {
				out = repeatRow(out, bytesPerRow, multiplier)
			}
			multiplier = 0
			lastRowControl = true

		case isHexDigit(c):
			val := hexValue(c)
			count := multiplier
			if count == 0 {
				count = 1
			}
			if count > maxRepeat {
				count = maxRepeat
			}
			multiplier = 0
			for i := 0; i < count; i++ {
				if len(out) >= MaxDecodedSize {
					break
				}
				if highNibble >= 0 {
					out = append(out, byte(highNibble)<<4|val)
					highNibble = -1
				} else {
					highNibble = int(val)
				}
			}
			lastRowControl = false

		case c == ',':
			if highNibble >= 0 {
				out = append(out, byte(highNibble)<<4)
				highNibble = -1
			}
			out = fillRow(out, bytesPerRow, 0x00, lastRowControl)
			multiplier = 0
			lastRowControl = true

		case c == '!':
			if highNibble >= 0 {
				out = append(out, byte(highNibble)<<4|0x0F)
				highNibble = -1
			}
			out = fillRow(out, bytesPerRow, 0xFF, lastRowControl)
			multiplier = 0
			lastRowControl = true
		}
	}

	if highNibble >= 0 {
		out = append(out, byte(highNibble)<<4)
	}
	return out
}

// repeatRow handles `:`. A partially written row is first completed from the
// previous row (zero-filled when there is none), which counts as one repeat;
// the previous full row is then copied for the remaining repeats.
func repeatRow(out []byte, bytesPerRow, multiplier int) []byte {
	total := multiplier
	if total == 0 {
		total = 1
	}
	done := 0

	if pos := len(out) % bytesPerRow; pos > 0 {
		pad := capPadding(bytesPerRow-pos, len(out))
		rowStart := len(out) - pos
		if rowStart >= bytesPerRow {
			prev := rowStart - bytesPerRow
			out = append(out, out[prev+pos:prev+pos+pad]...)
		} else {
			out = append(out, make([]byte, pad)...)
		}
		done = 1
	}

	if done < total {
		remaining := total - done
		if remaining > maxRowRepeat {
			remaining = maxRowRepeat
		}
		var row []byte
		if len(out) >= bytesPerRow {
			row = append(row, out[len(out)-bytesPerRow:]...)
		} else {
			row = make([]byte, bytesPerRow)
		}
		for i := 0; i < remaining; i++ {
			if len(out)+len(row) > MaxDecodedSize {
				break
			}
			out = append(out, row...)
		}
	}
	return out
}

// fillRow handles `,` and `!`: pad the rest of the current row with fill, or
// emit a whole row when already aligned and the previous token was itself a
// row control. The latter branch is what makes consecutive row-control
// tokens each contribute a row.
func fillRow(out []byte, bytesPerRow int, fill byte, lastRowControl bool) []byte {
	if bytesPerRow <= 0 {
		return out
	}
	pos := len(out) % bytesPerRow
	var padding int
	switch {
	case pos != 0:
		padding = bytesPerRow - pos
	case lastRowControl:
		padding = bytesPerRow
	default:
		return out
	}
	padding = capPadding(padding, len(out))
	for i := 0; i < padding; i++ {
		out = append(out, fill)
	}
	return out
}

// capPadding trims a row padding length so the output never grows past
// MaxDecodedSize. The bytes-per-row value comes straight from the ^GF
// parameter and may be arbitrarily large.
func capPadding(padding, have int) int {
	room := MaxDecodedSize - have
	if room < 0 {
		room = 0
	}
	if padding > room {
		return room
	}
	return padding
}

func satAddInt(a, b int) int {
	const limit = 1 << 30
	if a > limit-b {
		return limit
	}
	return a + b
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'A' && c <= 'F') || (c >= 'a' && c <= 'f')
}

func hexValue(c rune) byte {
	switch {
	case c >= '0' && c <= '9':
		return byte(c - '0')
	case c >= 'A' && c <= 'F':
		return byte(c-'A') + 10
	default:
		return byte(c-'a') + 10
	}
}

// Encode converts an image into ^GF-compressed data. Pixels with luminance
// below 128 become black bits, packed MSB-first into ceil(width/8) bytes per
// row. It returns the compressed text, the total bitmap byte count, and the
// bytes-per-row value the ^GF command needs.
func Encode(img image.Image) (data string, total, bytesPerRow int) {
	bytesPerRow = (img.Bounds().Dx() + 7) / 8
	bitmap := Bitmap(img)
	return compress(bitmap), len(bitmap), bytesPerRow
}

// Bitmap packs an image into the raw 1-bit-per-pixel row-major form Decode
// produces and Encode compresses.
func Bitmap(img image.Image) []byte {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	rowBytes := (w + 7) / 8
	bitmap := make([]byte, rowBytes*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			g := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			if g.Y < 128 {
				bitmap[y*rowBytes+x/8] |= 1 << (7 - x%8)
			}
		}
	}
	return bitmap
}

func compress(bitmap []byte) string {
	hexStr := strings.ToUpper(hex.EncodeToString(bitmap))

	var b strings.Builder
	for i := 0; i < len(hexStr); {
		c := hexStr[i]
		run := 1
		for i+run < len(hexStr) && hexStr[i+run] == c && run < maxRun {
			run++
		}
		if run > 1 {
			remaining := run
			for remaining >= 20 {
				factor := remaining / 20
				if factor > 20 {
					factor = 20
				}
				b.WriteByte('g' + byte(factor) - 1)
				remaining -= factor * 20
			}
			if remaining > 0 {
				b.WriteByte('G' + byte(remaining) - 1)
			}
		}
		b.WriteByte(c)
		i += run
	}

	return b.String()
}
