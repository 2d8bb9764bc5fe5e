package config

import "github.com/rafael-arreola/zpl-forge/engine"

// Profile is the fully resolved render configuration.
type Profile struct {
	Width      engine.Unit
	Height     engine.Unit
	Resolution engine.Resolution
	Fonts      []Font
	Variables  map[string]string
	Format     string
	OutputPath string
}

// Font is one font block: a TrueType file bound to ZPL identifiers.
type Font struct {
	Name string
	Path string
	// Identifiers lists the selector characters, e.g. "AB0". Empty binds
	// the font to every identifier.
	Identifiers string
}

// DefaultProfile is the configuration used when no profile file is given:
// a 4x6 inch label at 203 dpi rendered to PNG.
func DefaultProfile() *Profile {
	return &Profile{
		Width:      engine.Inches(4),
		Height:     engine.Inches(6),
		Resolution: engine.Dpi203,
		Variables:  map[string]string{},
		Format:     "png",
		OutputPath: "label.png",
	}
}
