package app

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/rafael-arreola/zpl-forge/engine"
	"github.com/rafael-arreola/zpl-forge/internal/config"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	profile *config.Profile
	fonts   *engine.FontRegistry
}

// New is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger, resolved render
// profile and loaded fonts. Configuration failures are fatal startup
// errors and panic; the entrypoint recovers them into a clean exit.
func New(outW io.Writer, appConfig *Config) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	profile := config.DefaultProfile()
	if appConfig.ProfilePath != "" {
		loaded, err := config.Load(appConfig.ProfilePath)
		if err != nil {
			panic(fmt.Errorf("failed to load render profile: %w", err))
		}
		profile = loaded
		logger.Debug("Render profile loaded.", "path", appConfig.ProfilePath)
	}

	if err := applyOverrides(profile, appConfig); err != nil {
		panic(fmt.Errorf("invalid configuration: %w", err))
	}
	logger.Debug("CLI overrides applied to profile.")

	fonts, err := loadFonts(profile)
	if err != nil {
		panic(fmt.Errorf("failed to load fonts: %w", err))
	}
	logger.Debug("Font registry ready.", "extra_fonts", len(profile.Fonts))

	return &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		profile: profile,
		fonts:   fonts,
	}
}

// Profile returns the resolved render profile. This is primarily for
// testing.
func (a *App) Profile() *config.Profile {
	return a.profile
}

// applyOverrides folds the CLI-level settings into the profile.
func applyOverrides(profile *config.Profile, cfg *Config) error {
	if cfg.Width != "" {
		width, err := config.ParseUnit(cfg.Width)
		if err != nil {
			return fmt.Errorf("width: %w", err)
		}
		profile.Width = width
	}
	if cfg.Height != "" {
		height, err := config.ParseUnit(cfg.Height)
		if err != nil {
			return fmt.Errorf("height: %w", err)
		}
		profile.Height = height
	}
	if cfg.DPI > 0 {
		profile.Resolution = config.ResolutionForDPI(cfg.DPI)
	}
	if cfg.Format != "" {
		profile.Format = cfg.Format
	}
	if cfg.OutputPath != "" {
		profile.OutputPath = cfg.OutputPath
	}
	for name, value := range cfg.Vars {
		profile.Variables[name] = value
	}
	return nil
}

// loadFonts builds the registry from the profile's font blocks on top of
// the bundled default face.
func loadFonts(profile *config.Profile) (*engine.FontRegistry, error) {
	registry := engine.DefaultFontRegistry()
	for _, f := range profile.Fonts {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			return nil, fmt.Errorf("reading font %q: %w", f.Name, err)
		}
		ids := []rune(f.Identifiers)
		if len(ids) == 0 {
			ids = engine.FontIdentifiers()
		}
		if err := registry.Register(f.Name, data, ids...); err != nil {
			return nil, err
		}
	}
	return registry, nil
}
