package app

import (
	"context"
	"fmt"
	"os"

	"github.com/rafael-arreola/zpl-forge/engine"
	"github.com/rafael-arreola/zpl-forge/forge/pdf"
	"github.com/rafael-arreola/zpl-forge/forge/png"
	"github.com/rafael-arreola/zpl-forge/internal/ctxlog"
)

// Run executes one render: read the label, compile it, draw it with the
// configured backend and write the output file.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	label, err := os.ReadFile(a.config.LabelPath)
	if err != nil {
		return fmt.Errorf("reading label: %w", err)
	}

	eng, err := engine.New(string(label), a.profile.Width, a.profile.Height, a.profile.Resolution)
	if err != nil {
		return fmt.Errorf("compiling label: %w", err)
	}
	eng.SetFonts(a.fonts)
	a.logger.Debug("Label compiled.", "instructions", len(eng.Instructions()))

	var backend engine.Backend
	switch a.profile.Format {
	case "pdf":
		backend = pdf.New()
	default:
		backend = png.New()
	}

	out, err := eng.Render(ctx, backend, a.profile.Variables)
	if err != nil {
		return fmt.Errorf("rendering label: %w", err)
	}

	if err := os.WriteFile(a.profile.OutputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}
	a.logger.Info("Label rendered.", "path", a.profile.OutputPath, "format", a.profile.Format, "bytes", len(out))

	a.logger.Debug("App.Run method finished.")
	return nil
}
