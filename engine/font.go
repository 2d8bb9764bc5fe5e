package engine

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

// fontIdentifiers is the full set of ZPL font selectors, A through Z and 0
// through 9.
var fontIdentifiers = []rune{
	'A', 'B', 'C', 'D', 'E', 'F', 'G', 'H', 'I', 'J', 'K', 'L', 'M',
	'N', 'O', 'P', 'Q', 'R', 'S', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z',
	'0', '1', '2', '3', '4', '5', '6', '7', '8', '9',
}

// FontIdentifiers returns a copy of the full identifier set.
func FontIdentifiers() []rune {
	ids := make([]rune, len(fontIdentifiers))
	copy(ids, fontIdentifiers)
	return ids
}

// FontRegistry maps ZPL font identifiers to parsed TrueType fonts. A
// registry is not safe for concurrent mutation; register all fonts before
// rendering.
type FontRegistry struct {
	ids   map[rune]string
	fonts map[string]*truetype.Font
}

// NewFontRegistry returns an empty registry with no identifier bound.
func NewFontRegistry() *FontRegistry {
	return &FontRegistry{
		ids:   make(map[rune]string),
		fonts: make(map[string]*truetype.Font),
	}
}

// DefaultFontRegistry binds every identifier to the bundled Go Regular
// face, so any label renders without explicit font configuration.
func DefaultFontRegistry() *FontRegistry {
	r := NewFontRegistry()
	if err := r.Register("default", goregular.TTF, fontIdentifiers...); err != nil {
		// goregular.TTF is a valid embedded font; this cannot happen.
		panic(err)
	}
	return r
}

// Register parses data as a TrueType font and binds it to the given
// identifiers under name. Registering an already used name replaces the
// font for every identifier bound to it.
func (r *FontRegistry) Register(name string, data []byte, identifiers ...rune) error {
	parsed, err := truetype.Parse(data)
	if err != nil {
		return &FontError{Message: fmt.Sprintf("parsing font %q: %v", name, err)}
	}
	r.fonts[name] = parsed
	for _, id := range identifiers {
		r.ids[id] = name
	}
	return nil
}

// Font resolves an identifier to its font, or nil when the identifier is
// unbound.
func (r *FontRegistry) Font(id rune) *truetype.Font {
	name, ok := r.ids[id]
	if !ok {
		return nil
	}
	return r.fonts[name]
}
