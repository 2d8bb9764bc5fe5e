package codec

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeHexPairs(t *testing.T) {
	assert.Equal(t, []byte{0xFF, 0xFF, 0x80, 0x01}, Decode("FFFF8001", 2))
}

func TestDecodeLowercaseHex(t *testing.T) {
	assert.Equal(t, []byte{0xAB, 0xCD}, Decode("abcd", 0))
}

func TestDecodeTrailingNibblePadsLow(t *testing.T) {
	assert.Equal(t, []byte{0xFF, 0xF0}, Decode("FFF", 0))
}

func TestDecodeRepeatCounts(t *testing.T) {
	// H repeats the next nibble twice.
	assert.Equal(t, []byte{0x11}, Decode("H1", 0))
	// I gives three zero nibbles, the F completes the second byte.
	assert.Equal(t, []byte{0x00, 0x0F}, Decode("I0F", 0))
	// g is a whole byte row of twenty nibbles.
	assert.Equal(t, make([]byte, 10), Decode("g0", 0))
	// Multipliers accumulate across prefix characters.
	assert.Equal(t, []byte{0x11, 0x11}, Decode("GI1", 0))
}

func TestDecodeRowRepeat(t *testing.T) {
	assert.Equal(t, []byte{0xFF, 0xFF}, Decode("FF:", 1))
	// A multiplier before ':' copies the row that many times.
	assert.Equal(t, []byte{0xF0, 0xF0, 0xF0, 0xF0}, Decode("F0I:", 1))
}

func TestDecodeRowRepeatCompletesPartialRow(t *testing.T) {
	// The second row is partially written; ':' completes it from the first
	// row, which counts as the single repeat.
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC, 0xBB}, Decode("AABBCC:", 2))
	// Without a previous row the completion is zero filled.
	assert.Equal(t, []byte{0xAA, 0x00}, Decode("AA:", 2))
}

func TestDecodeCommaZeroFillsRow(t *testing.T) {
	assert.Equal(t, []byte{0xF0, 0x00, 0x00}, Decode("F0,", 3))
	// Aligned and preceded by another row control: a full blank row.
	assert.Equal(t, []byte{0xAA, 0xBB, 0x00, 0x00}, Decode("AABB,,", 2))
	// Aligned after plain data: nothing to fill.
	assert.Equal(t, []byte{0xAA, 0xBB}, Decode("AABB,", 2))
}

func TestDecodeBangFillsWithOnes(t *testing.T) {
	// '!' completes a pending nibble with 0xF before filling.
	assert.Equal(t, []byte{0xFF, 0xFF}, Decode("F!", 2))
	assert.Equal(t, []byte{0xFF, 0xFF}, Decode(",!", 2))
}

func TestDecodeIgnoresUnknownCharacters(t *testing.T) {
	assert.Equal(t, []byte{0xFF}, Decode("F\n _=F", 0))
}

func TestDecodeWithoutRowLengthIgnoresRowControls(t *testing.T) {
	assert.Equal(t, []byte{0xFF}, Decode("FF:,", 0))
}

func TestDecodeOutputCapped(t *testing.T) {
	// Each group asks for 10000 zero nibbles; enough of them would exceed
	// the cap several times over.
	group := strings.Repeat("z", 25) + "0"
	data := strings.Repeat(group, 2200)
	out := Decode(data, 0)
	assert.LessOrEqual(t, len(out), MaxDecodedSize)
	assert.Greater(t, len(out), MaxDecodedSize/2)
}

func TestDecodeRowControlsRespectCap(t *testing.T) {
	// A huge bytes-per-row value makes a single row padding or row copy
	// request far more than the cap.
	const hugeRow = 50_000_000
	for _, data := range []string{"F0,", "F0!", "F0:", "FF::"} {
		out := Decode(data, hugeRow)
		assert.LessOrEqual(t, len(out), MaxDecodedSize, "input %q", data)
	}
}

func TestEncodeCompressesRuns(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 16, 1))
	// All black pixels: bitmap FFFF, a run of four F nibbles.
	data, total, bytesPerRow := Encode(img)
	assert.Equal(t, "JF", data)
	assert.Equal(t, 2, total)
	assert.Equal(t, 2, bytesPerRow)
}

func TestEncodeLongRunUsesHighMultipliers(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 80, 1))
	// 80 black pixels are 10 bytes, a run of 20 F nibbles.
	data, _, _ := Encode(img)
	assert.Equal(t, "gF", data)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 37, 11))
	for y := 0; y < 11; y++ {
		for x := 0; x < 37; x++ {
			if (x+y)%3 == 0 || x < 4 {
				img.SetGray(x, y, color.Gray{Y: 0})
			} else {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	data, total, bytesPerRow := Encode(img)
	require.Equal(t, 5, bytesPerRow)
	require.Equal(t, 55, total)

	assert.Equal(t, Bitmap(img), Decode(data, bytesPerRow))
}
