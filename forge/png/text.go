package png

import (
	"fmt"
	"image"

	"github.com/golang/freetype/truetype"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/rafael-arreola/zpl-forge/engine"
)

// defaultTextHeight is the glyph height in dots when the label never set
// a font size.
const defaultTextHeight = 9

// DrawText renders a text field. Reverse print does not apply to text;
// the flag is accepted and ignored, matching printer behavior for fonts.
func (b *Backend) DrawText(t engine.Text) error {
	if t.Text == "" {
		return nil
	}
	ttf, err := b.resolveFont(t.Font)
	if err != nil {
		return err
	}

	scaleY := float64(uintOr(t.Height, defaultTextHeight))
	scaleX := float64(uintOr(t.Width, uint32(scaleY)))
	col := parseHexColor(t.Color)

	face := truetype.NewFace(ttf, &truetype.Options{Size: scaleY, DPI: 72})
	defer face.Close()
	metrics := face.Metrics()
	ascent := metrics.Ascent.Ceil()

	if scaleX == scaleY {
		d := font.Drawer{
			Dst:  b.canvas,
			Src:  image.NewUniform(col),
			Face: face,
			Dot:  fixed.P(int(t.X), int(t.Y)+ascent),
		}
		d.DrawString(t.Text)
		return nil
	}

	// Glyphs cannot be rasterized anamorphically; render at the natural
	// width and stretch horizontally.
	naturalW := font.MeasureString(face, t.Text).Ceil()
	if naturalW == 0 {
		return nil
	}
	lineH := ascent + metrics.Descent.Ceil()
	tmp := image.NewRGBA(image.Rect(0, 0, naturalW, lineH))
	d := font.Drawer{
		Dst:  tmp,
		Src:  image.NewUniform(col),
		Face: face,
		Dot:  fixed.P(0, ascent),
	}
	d.DrawString(t.Text)

	targetW := int(float64(naturalW)*scaleX/scaleY + 0.5)
	if targetW < 1 {
		targetW = 1
	}
	dstRect := image.Rect(int(t.X), int(t.Y), int(t.X)+targetW, int(t.Y)+lineH)
	xdraw.CatmullRom.Scale(b.canvas, dstRect, tmp, tmp.Bounds(), xdraw.Over, nil)
	return nil
}

// resolveFont looks up the requested identifier, falling back to font 0.
func (b *Backend) resolveFont(id rune) (*truetype.Font, error) {
	if b.fonts == nil {
		return nil, &engine.FontError{Message: "font registry not initialized"}
	}
	if f := b.fonts.Font(id); f != nil {
		return f, nil
	}
	if f := b.fonts.Font('0'); f != nil {
		return f, nil
	}
	return nil, &engine.FontError{Message: fmt.Sprintf("font not found: %c", id)}
}

// textWidth measures rendered text width in dots, or 0 when no font is
// available.
func (b *Backend) textWidth(s string, id rune, height uint32) uint32 {
	ttf, err := b.resolveFont(id)
	if err != nil {
		return 0
	}
	face := truetype.NewFace(ttf, &truetype.Options{Size: float64(height), DPI: 72})
	defer face.Close()
	return uint32(font.MeasureString(face, s).Ceil())
}

func uintOr(p *uint32, def uint32) uint32 {
	if p != nil {
		return *p
	}
	return def
}
