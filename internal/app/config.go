package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
// Width, Height, Format, DPI and OutputPath override the render profile
// when non-zero.
type Config struct {
	LabelPath   string
	ProfilePath string

	OutputPath string
	Format     string
	Width      string
	Height     string
	DPI        float64
	Vars       map[string]string

	LogFormat string
	LogLevel  string
}

func NewConfig(cfg Config) (*Config, error) {
	if cfg.LabelPath == "" {
		return nil, errors.New("LabelPath is a required configuration field and cannot be empty")
	}

	// Future validations for other fields can be added here.

	return &cfg, nil
}
