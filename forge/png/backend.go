package png

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	"github.com/rafael-arreola/zpl-forge/engine"
)

// maxDim caps the canvas on each axis to keep a hostile label from
// exhausting memory.
const maxDim = 8192

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
)

// Backend draws instructions onto an in-memory RGBA canvas and finalizes
// to PNG bytes. A Backend renders a single label; create a fresh one per
// Render call.
type Backend struct {
	canvas *image.RGBA
	res    engine.Resolution
	fonts  *engine.FontRegistry
}

// New returns a Backend with an empty canvas. SetupPage allocates the
// real surface.
func New() *Backend {
	return &Backend{canvas: image.NewRGBA(image.Rect(0, 0, 0, 0))}
}

func (b *Backend) SetupPage(width, height float64, res engine.Resolution) {
	w := clampDim(width)
	h := clampDim(height)
	b.res = res
	b.canvas = image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(b.canvas, b.canvas.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)
}

func (b *Backend) SetupFonts(fonts *engine.FontRegistry) {
	b.fonts = fonts
}

// Finalize encodes the canvas as PNG.
func (b *Backend) Finalize() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, b.canvas); err != nil {
		return nil, &engine.BackendError{Message: fmt.Sprintf("encoding PNG: %v", err)}
	}
	return buf.Bytes(), nil
}

func clampDim(v float64) int {
	if v < 0 {
		return 0
	}
	if v > maxDim {
		return maxDim
	}
	return int(v)
}

// drawWrapped runs op either directly on the canvas or, for reverse
// printing, on a white scratch surface whose non-white pixels then invert
// the canvas underneath.
func (b *Backend) drawWrapped(x, y uint32, width, height uint32, reverse bool, op func(img *image.RGBA, px, py int)) {
	if !reverse {
		op(b.canvas, int(x), int(y))
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, clampDim(float64(width)), clampDim(float64(height))))
	draw.Draw(tmp, tmp.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)
	op(tmp, 0, 0)
	b.xorOverlay(tmp, int(x), int(y))
}

// xorOverlay inverts every canvas pixel covered by a non-white pixel of
// src placed at (x, y).
func (b *Backend) xorOverlay(src *image.RGBA, x, y int) {
	sb := src.Bounds()
	cb := b.canvas.Bounds()
	for sy := sb.Min.Y; sy < sb.Max.Y; sy++ {
		dy := y + sy
		if dy < cb.Min.Y || dy >= cb.Max.Y {
			continue
		}
		for sx := sb.Min.X; sx < sb.Max.X; sx++ {
			dx := x + sx
			if dx < cb.Min.X || dx >= cb.Max.X {
				continue
			}
			r, g, bl, _ := src.At(sx, sy).RGBA()
			if r>>8 == 255 && g>>8 == 255 && bl>>8 == 255 {
				continue
			}
			b.invertPixel(dx, dy)
		}
	}
}

// invertRect inverts the canvas pixels inside rect, clamped to the
// canvas.
func (b *Backend) invertRect(rect image.Rectangle) {
	rect = rect.Intersect(b.canvas.Bounds())
	for py := rect.Min.Y; py < rect.Max.Y; py++ {
		for px := rect.Min.X; px < rect.Max.X; px++ {
			b.invertPixel(px, py)
		}
	}
}

func (b *Backend) invertPixel(x, y int) {
	i := b.canvas.PixOffset(x, y)
	b.canvas.Pix[i] ^= 255
	b.canvas.Pix[i+1] ^= 255
	b.canvas.Pix[i+2] ^= 255
}

// parseHexColor accepts "#RRGGBB" and "#RGB" (leading '#' optional) and
// falls back to black for anything else, including the empty string.
func parseHexColor(s string) color.RGBA {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 6:
		r, errR := strconv.ParseUint(s[0:2], 16, 8)
		g, errG := strconv.ParseUint(s[2:4], 16, 8)
		bl, errB := strconv.ParseUint(s[4:6], 16, 8)
		if errR == nil && errG == nil && errB == nil {
			return color.RGBA{uint8(r), uint8(g), uint8(bl), 255}
		}
	case 3:
		r, errR := strconv.ParseUint(s[0:1], 16, 8)
		g, errG := strconv.ParseUint(s[1:2], 16, 8)
		bl, errB := strconv.ParseUint(s[2:3], 16, 8)
		if errR == nil && errG == nil && errB == nil {
			return color.RGBA{uint8(r) * 17, uint8(g) * 17, uint8(bl) * 17, 255}
		}
	}
	return black
}
