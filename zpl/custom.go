package zpl

import "unicode/utf8"

// Matchers for the custom extension commands (^GIC, ^GTC, ^GLC) and the
// Unsupported fallback. The extensions are tried after every standard
// command and the fallback last, so a three-character extension code is
// never swallowed as a two-character unknown command.

func matchCustomImage(s *scanner) (Command, error) {
	if !s.literal("^GIC") {
		return nil, errNoMatch
	}
	width, ok := s.uint()
	if !ok {
		return nil, s.fail("expected digit sequence")
	}
	if !s.literal(",") {
		return nil, s.fail("expected ','")
	}
	height, ok := s.uint()
	if !ok {
		return nil, s.fail("expected digit sequence")
	}
	if !s.literal(",") {
		return nil, s.fail("expected ','")
	}
	mark := s.pos
	data := s.textUntilCaret()
	if data == "" {
		return nil, &failure{offset: mark, message: "expected base64 image data"}
	}
	return CustomImage{Width: width, Height: height, Data: data}, nil
}

func matchTextColor(s *scanner) (Command, error) {
	if !s.literal("^GTC") {
		return nil, errNoMatch
	}
	return TextColor{Color: s.textUntilCaret()}, nil
}

func matchLineColor(s *scanner) (Command, error) {
	if !s.literal("^GLC") {
		return nil, errNoMatch
	}
	return LineColor{Color: s.textUntilCaret()}, nil
}

func matchUnsupported(s *scanner) (Command, error) {
	if !s.literal("^") {
		return nil, errNoMatch
	}
	var code []rune
	for len(code) < 2 {
		if s.eof() {
			return nil, errNoMatch
		}
		r, size := utf8.DecodeRuneInString(s.rest())
		s.pos += size
		code = append(code, r)
	}
	return Unsupported{Command: "^" + string(code), Args: s.textUntilCaret()}, nil
}
