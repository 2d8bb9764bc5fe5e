package zpl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ParseError describes a syntax failure with its 1-indexed source line.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at line %d: %s", e.Line, e.Message)
}

// errNoMatch is the soft failure: the matcher did not apply at the cursor and
// the driver should try the next one.
var errNoMatch = errors.New("zpl: no matching command")

// failure is the hard failure: a mandatory value was missing or ill-typed.
// Parsing aborts at offset without falling back to other matchers, so the
// error is attributed to the exact command that was being read.
type failure struct {
	offset  int
	message string
}

func (f *failure) Error() string { return f.message }

// scanner is a left-to-right cursor over the source text.
type scanner struct {
	src string
	pos int
}

func (s *scanner) eof() bool { return s.pos >= len(s.src) }

func (s *scanner) rest() string { return s.src[s.pos:] }

func (s *scanner) fail(message string) error {
	return &failure{offset: s.pos, message: message}
}

// literal consumes tag if the cursor sits on it.
func (s *scanner) literal(tag string) bool {
	if strings.HasPrefix(s.rest(), tag) {
		s.pos += len(tag)
		return true
	}
	return false
}

func (s *scanner) skipSpace() {
	for !s.eof() {
		switch s.src[s.pos] {
		case ' ', '\t', '\r', '\n':
			s.pos++
		default:
			return
		}
	}
}

// paramEnd reports whether the cursor sits where an optional parameter counts
// as absent: end of input, the next parameter's comma, or the next command.
func (s *scanner) paramEnd() bool {
	return s.eof() || s.src[s.pos] == ',' || s.src[s.pos] == '^'
}

// uint consumes a digit sequence. It consumes nothing and reports false when
// the cursor is not on a digit or the value overflows 32 bits.
func (s *scanner) uint() (uint32, bool) {
	start := s.pos
	for !s.eof() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start {
		return 0, false
	}
	v, err := strconv.ParseUint(s.src[start:s.pos], 10, 32)
	if err != nil {
		s.pos = start
		return 0, false
	}
	return uint32(v), true
}

// float consumes digits with an optional fractional part.
func (s *scanner) float() (float64, bool) {
	start := s.pos
	for !s.eof() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
		s.pos++
	}
	if s.pos == start {
		return 0, false
	}
	if !s.eof() && s.src[s.pos] == '.' {
		mark := s.pos
		s.pos++
		fracStart := s.pos
		for !s.eof() && s.src[s.pos] >= '0' && s.src[s.pos] <= '9' {
			s.pos++
		}
		if s.pos == fracStart {
			s.pos = mark
		}
	}
	v, err := strconv.ParseFloat(s.src[start:s.pos], 64)
	if err != nil {
		s.pos = start
		return 0, false
	}
	return v, true
}

// char consumes one parameter character: anything except the delimiters
// `, ^ \r \n space tab`.
func (s *scanner) char() (rune, bool) {
	if s.eof() {
		return 0, false
	}
	r, size := utf8.DecodeRuneInString(s.rest())
	switch r {
	case ',', '^', '\r', '\n', ' ', '\t':
		return 0, false
	}
	s.pos += size
	return r, true
}

// textUntilCaret consumes everything up to the next command start (or end of
// input) and trims surrounding whitespace. It never fails.
func (s *scanner) textUntilCaret() string {
	start := s.pos
	for !s.eof() && s.src[s.pos] != '^' {
		s.pos++
	}
	return strings.TrimSpace(s.src[start:s.pos])
}

// chunkUntilCaret is textUntilCaret without trimming, used to bound a
// barcode command's argument list.
func (s *scanner) chunkUntilCaret() string {
	start := s.pos
	for !s.eof() && s.src[s.pos] != '^' {
		s.pos++
	}
	return s.src[start:s.pos]
}

// Optional-parameter combinators. A leading parameter (optUint, optFloat,
// optChar) is absent only at a parameter end; a value that is present but
// unparsable reports !ok and leaves the cursor on the offending character, so
// the caller decides whether that is a soft or a hard failure. A subsequent
// parameter (paramUint, paramFloat, paramChar) needs its leading comma and
// never fails: a missing comma, an empty value, or an unparsable value all
// yield absent, restoring the cursor to before the comma in the last case.
// This is what lets commands be written with a short prefix of their full
// parameter list.

func optUint(s *scanner) (*uint32, bool) {
	if s.paramEnd() {
		return nil, true
	}
	v, ok := s.uint()
	if !ok {
		return nil, false
	}
	return &v, true
}

func optFloat(s *scanner) (*float64, bool) {
	if s.paramEnd() {
		return nil, true
	}
	v, ok := s.float()
	if !ok {
		return nil, false
	}
	return &v, true
}

func optChar(s *scanner) (*rune, bool) {
	if s.paramEnd() {
		return nil, true
	}
	r, ok := s.char()
	if !ok {
		return nil, false
	}
	return &r, true
}

func paramUint(s *scanner) *uint32 {
	mark := s.pos
	if !s.literal(",") {
		return nil
	}
	if s.paramEnd() {
		return nil
	}
	v, ok := s.uint()
	if !ok {
		s.pos = mark
		return nil
	}
	return &v
}

func paramFloat(s *scanner) *float64 {
	mark := s.pos
	if !s.literal(",") {
		return nil
	}
	if s.paramEnd() {
		return nil
	}
	v, ok := s.float()
	if !ok {
		s.pos = mark
		return nil
	}
	return &v
}

func paramChar(s *scanner) *rune {
	mark := s.pos
	if !s.literal(",") {
		return nil
	}
	if s.paramEnd() {
		return nil
	}
	r, ok := s.char()
	if !ok {
		s.pos = mark
		return nil
	}
	return &r
}

// xyPair parses the mandatory-context "x,y" pair shared by ^LH, ^FO and ^FT:
// a present-but-invalid x aborts; y is lax.
func xyPair(s *scanner) (x, y *uint32, err error) {
	x, ok := optUint(s)
	if !ok {
		return nil, nil, s.fail("expected digit sequence")
	}
	y = paramUint(s)
	return x, y, nil
}

type matcher func(s *scanner) (Command, error)

// matchers are tried in order with first-match-wins semantics. Standard
// commands come before the custom extensions, and the two-character fallback
// is last so that longer codes are never shadowed by it.
var matchers = []matcher{
	matchStartFormat,
	matchEndFormat,
	matchLabelHome,
	matchLabelLength,
	matchFieldOrigin,
	matchFieldTypeset,
	matchFieldSeparator,
	matchLabelReverse,
	matchComment,
	matchFontSpecFull,
	matchFontSpec,
	matchFieldData,
	matchFieldBlock,
	matchChangeIntFont,
	matchFieldReverse,
	matchGraphicBox,
	matchGraphicCircle,
	matchGraphicEllipse,
	matchGraphicField,
	matchQRCode,
	matchCode39,
	matchBarcodeDefault,
	matchDataMatrix,
	matchCode128,
	matchCustomImage,
	matchTextColor,
	matchLineColor,
	matchUnsupported,
}

// Parse tokenizes input into an ordered command sequence. The whole input
// must be consumed; leftover content, a missing mandatory parameter, or an
// ill-typed mandatory value produce a *ParseError citing the source line.
func Parse(input string) ([]Command, error) {
	s := &scanner{src: input}
	var commands []Command
	for {
		s.skipSpace()
		if s.eof() {
			return commands, nil
		}
		cmd, err := matchNext(s)
		if err != nil {
			var f *failure
			if errors.As(err, &f) {
				return nil, &ParseError{
					Line:    1 + strings.Count(input[:f.offset], "\n"),
					Message: f.message,
				}
			}
			return nil, err
		}
		commands = append(commands, cmd)
	}
}

func matchNext(s *scanner) (Command, error) {
	for _, m := range matchers {
		mark := s.pos
		cmd, err := m(s)
		if err == nil {
			return cmd, nil
		}
		var f *failure
		if errors.As(err, &f) {
			return nil, err
		}
		s.pos = mark
	}
	return nil, s.fail("invalid or malformed ZPL command")
}
