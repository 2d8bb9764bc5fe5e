package png

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"

	"github.com/rafael-arreola/zpl-forge/engine"
)

func (b *Backend) DrawGraphicBox(box engine.GraphicBox) error {
	w := box.Width
	if w < 1 {
		w = 1
	}
	h := box.Height
	if h < 1 {
		h = 1
	}
	t := box.Thickness
	r := float64(box.Rounding) * 8

	var drawColor, clearColor color.RGBA
	switch {
	case box.CustomColor != "":
		drawColor, clearColor = parseHexColor(box.CustomColor), white
	case box.Color == 'B':
		drawColor, clearColor = black, white
	default:
		drawColor, clearColor = white, black
	}

	b.drawWrapped(box.X, box.Y, w, h, box.ReversePrint, func(img *image.RGBA, px, py int) {
		dc := gg.NewContextForRGBA(img)
		roundedFill(dc, float64(px), float64(py), float64(w), float64(h), r, drawColor)
		// The outline is a full fill with the interior cleared; skip the
		// clear when the walls meet.
		if t*2 < w && t*2 < h {
			ir := r - float64(t)
			if ir < 0 {
				ir = 0
			}
			roundedFill(dc,
				float64(px)+float64(t), float64(py)+float64(t),
				float64(w-t*2), float64(h-t*2), ir, clearColor)
		}
	})
	return nil
}

func (b *Backend) DrawGraphicCircle(c engine.GraphicCircle) error {
	drawColor := parseHexColor(c.CustomColor)
	radius := c.Radius

	b.drawWrapped(c.X, c.Y, radius*2, radius*2, c.ReversePrint, func(img *image.RGBA, px, py int) {
		dc := gg.NewContextForRGBA(img)
		cx := float64(px) + float64(radius)
		cy := float64(py) + float64(radius)
		dc.SetColor(drawColor)
		dc.DrawCircle(cx, cy, float64(radius))
		dc.Fill()
		if radius > c.Thickness {
			dc.SetColor(white)
			dc.DrawCircle(cx, cy, float64(radius-c.Thickness))
			dc.Fill()
		}
	})
	return nil
}

func (b *Backend) DrawGraphicEllipse(e engine.GraphicEllipse) error {
	drawColor := parseHexColor(e.CustomColor)

	b.drawWrapped(e.X, e.Y, e.Width, e.Height, e.ReversePrint, func(img *image.RGBA, px, py int) {
		dc := gg.NewContextForRGBA(img)
		rx := float64(e.Width / 2)
		ry := float64(e.Height / 2)
		cx := float64(px) + rx
		cy := float64(py) + ry
		dc.SetColor(drawColor)
		dc.DrawEllipse(cx, cy, rx, ry)
		dc.Fill()
		t := float64(e.Thickness)
		if rx > t && ry > t {
			dc.SetColor(white)
			dc.DrawEllipse(cx, cy, rx-t, ry-t)
			dc.Fill()
		}
	})
	return nil
}

// roundedFill fills a rectangle with the given corner radius, clamped so
// opposite corners never overlap.
func roundedFill(dc *gg.Context, x, y, w, h, r float64, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	if r > w/2 {
		r = w / 2
	}
	if r > h/2 {
		r = h / 2
	}
	dc.SetColor(c)
	if r <= 0 {
		dc.DrawRectangle(x, y, w, h)
	} else {
		dc.DrawRoundedRectangle(x, y, w, h, r)
	}
	dc.Fill()
}
