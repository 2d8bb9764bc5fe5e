package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/rafael-arreola/zpl-forge/internal/ctxlog"
	"github.com/rafael-arreola/zpl-forge/zpl"
)

// Engine holds one parsed label, ready to render any number of times.
// Parsing and building happen eagerly in New; Render only walks the
// instruction list, so a single Engine can serve concurrent Render calls
// as long as each call gets its own Backend.
type Engine struct {
	width        Unit
	height       Unit
	res          Resolution
	instructions []Instruction
	fonts        *FontRegistry
}

// New parses label and builds its instruction list. It returns
// ErrEmptyInput when the label contains no commands at all, and a
// *zpl.ParseError when the label is malformed.
func New(label string, width, height Unit, res Resolution) (*Engine, error) {
	commands, err := zpl.Parse(label)
	if err != nil {
		return nil, err
	}
	if len(commands) == 0 {
		return nil, ErrEmptyInput
	}
	return &Engine{
		width:        width,
		height:       height,
		res:          res,
		instructions: Build(commands),
		fonts:        DefaultFontRegistry(),
	}, nil
}

// Instructions exposes the built instruction list, mainly for tests and
// diagnostics. The returned slice must not be mutated.
func (e *Engine) Instructions() []Instruction {
	return e.instructions
}

// SetFonts replaces the default font registry.
func (e *Engine) SetFonts(fonts *FontRegistry) {
	e.fonts = fonts
}

// Resolution reports the target resolution the engine was built with.
func (e *Engine) Resolution() Resolution {
	return e.res
}

// Render draws every instruction onto backend and returns the finalized
// output. Placeholders of the form {{name}} in text and barcode data are
// replaced from vars; unknown placeholders pass through verbatim.
func (e *Engine) Render(ctx context.Context, backend Backend, vars map[string]string) ([]byte, error) {
	log := ctxlog.FromContext(ctx)

	w := float64(e.width.ToDots(e.res))
	h := float64(e.height.ToDots(e.res))
	log.Debug("setting up page", "width_dots", w, "height_dots", h, "dpi", e.res.DPI())

	backend.SetupPage(w, h, e.res)
	backend.SetupFonts(e.fonts)

	for i, instruction := range e.instructions {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		var err error
		switch ins := instruction.(type) {
		case Text:
			ins.Text = substitute(ins.Text, vars)
			err = backend.DrawText(ins)
		case GraphicBox:
			err = backend.DrawGraphicBox(ins)
		case GraphicCircle:
			err = backend.DrawGraphicCircle(ins)
		case GraphicEllipse:
			err = backend.DrawGraphicEllipse(ins)
		case GraphicField:
			err = backend.DrawGraphicField(ins)
		case CustomImage:
			err = backend.DrawCustomImage(ins)
		case Code128:
			ins.Data = substitute(ins.Data, vars)
			err = backend.DrawCode128(ins)
		case Code39:
			ins.Data = substitute(ins.Data, vars)
			err = backend.DrawCode39(ins)
		case QRCode:
			ins.Data = substitute(ins.Data, vars)
			err = backend.DrawQRCode(ins)
		}
		if err != nil {
			return nil, fmt.Errorf("drawing instruction %d: %w", i, err)
		}
	}

	out, err := backend.Finalize()
	if err != nil {
		return nil, err
	}
	log.Debug("render complete", "instructions", len(e.instructions), "output_bytes", len(out))
	return out, nil
}

// substitute replaces every {{name}} placeholder present in vars.
func substitute(s string, vars map[string]string) string {
	if len(vars) == 0 || !strings.Contains(s, "{{") {
		return s
	}
	for name, value := range vars {
		s = strings.ReplaceAll(s, "{{"+name+"}}", value)
	}
	return s
}
