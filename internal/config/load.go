package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"

	"github.com/rafael-arreola/zpl-forge/engine"
)

// fileSchema mirrors the HCL surface of a profile file. Every block is
// optional; absent blocks keep the defaults.
type fileSchema struct {
	Label     *labelBlock     `hcl:"label,block"`
	Fonts     []fontBlock     `hcl:"font,block"`
	Variables *variablesBlock `hcl:"variables,block"`
	Output    *outputBlock    `hcl:"output,block"`
}

type labelBlock struct {
	Width  string   `hcl:"width"`
	Height string   `hcl:"height"`
	DPI    *float64 `hcl:"dpi,optional"`
}

type fontBlock struct {
	Name        string `hcl:"name,label"`
	Path        string `hcl:"path"`
	Identifiers string `hcl:"identifiers,optional"`
}

// variablesBlock keeps its body raw so variable names stay free-form.
type variablesBlock struct {
	Body hcl.Body `hcl:",remain"`
}

type outputBlock struct {
	Format string `hcl:"format,optional"`
	Path   string `hcl:"path,optional"`
}

// Load reads and decodes a profile file.
func Load(path string) (*Profile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading profile: %w", err)
	}
	return LoadSource(path, src)
}

// LoadSource decodes profile HCL from memory. filename is used only in
// diagnostics.
func LoadSource(filename string, src []byte) (*Profile, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing profile: %w", diags)
	}

	var fs fileSchema
	if diags := gohcl.DecodeBody(file.Body, nil, &fs); diags.HasErrors() {
		return nil, fmt.Errorf("decoding profile: %w", diags)
	}

	profile := DefaultProfile()

	if fs.Label != nil {
		width, err := ParseUnit(fs.Label.Width)
		if err != nil {
			return nil, fmt.Errorf("label width: %w", err)
		}
		height, err := ParseUnit(fs.Label.Height)
		if err != nil {
			return nil, fmt.Errorf("label height: %w", err)
		}
		profile.Width = width
		profile.Height = height
		if fs.Label.DPI != nil {
			profile.Resolution = ResolutionForDPI(*fs.Label.DPI)
		}
	}

	for _, fb := range fs.Fonts {
		profile.Fonts = append(profile.Fonts, Font(fb))
	}

	if fs.Variables != nil {
		vars, err := decodeVariables(fs.Variables.Body)
		if err != nil {
			return nil, err
		}
		for name, value := range vars {
			profile.Variables[name] = value
		}
	}

	if fs.Output != nil {
		if fs.Output.Format != "" {
			format := strings.ToLower(fs.Output.Format)
			if format != "png" && format != "pdf" {
				return nil, fmt.Errorf("output format: %q is not supported, use png or pdf", fs.Output.Format)
			}
			profile.Format = format
		}
		if fs.Output.Path != "" {
			profile.OutputPath = fs.Output.Path
		}
	}

	return profile, nil
}

// decodeVariables flattens the variables block into strings. Values may be
// any cty type convertible to a string, so numbers and bools work without
// quoting.
func decodeVariables(body hcl.Body) (map[string]string, error) {
	attrs, diags := body.JustAttributes()
	if diags.HasErrors() {
		return nil, fmt.Errorf("decoding variables: %w", diags)
	}

	vars := make(map[string]string, len(attrs))
	for name, attr := range attrs {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("evaluating variable %q: %w", name, diags)
		}
		converted, err := convert.Convert(val, cty.String)
		if err != nil {
			return nil, fmt.Errorf("variable %q is not a string: %w", name, err)
		}
		vars[name] = converted.AsString()
	}
	return vars, nil
}

// ParseUnit parses a dimension string such as "4in", "101.6mm", "10.16cm"
// or "812dots". A bare number is taken as dots.
func ParseUnit(s string) (engine.Unit, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" {
		return engine.Unit{}, fmt.Errorf("empty dimension")
	}

	suffix := ""
	for _, candidate := range []string{"dots", "in", "mm", "cm"} {
		if strings.HasSuffix(s, candidate) {
			suffix = candidate
			s = strings.TrimSpace(strings.TrimSuffix(s, candidate))
			break
		}
	}

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return engine.Unit{}, fmt.Errorf("invalid dimension %q", s)
	}
	if value < 0 {
		return engine.Unit{}, fmt.Errorf("dimension must not be negative, got %v", value)
	}

	switch suffix {
	case "in":
		return engine.Inches(value), nil
	case "mm":
		return engine.Millimeters(value), nil
	case "cm":
		return engine.Centimeters(value), nil
	default:
		return engine.Dots(uint32(value)), nil
	}
}

// ResolutionForDPI maps a dpi number to the matching printer preset, or a
// custom resolution when no preset fits. The presets answer to their
// nominal names, so 203 selects the exact 203.2 dpi profile.
func ResolutionForDPI(dpi float64) engine.Resolution {
	switch math.Round(dpi) {
	case 152:
		return engine.Dpi152
	case 203:
		return engine.Dpi203
	case 300, 305:
		return engine.Dpi300
	case 600, 610:
		return engine.Dpi600
	default:
		return engine.CustomResolution(dpi)
	}
}
