package zpl

import "log/slog"

// Justification is a text justification mode for ^FB blocks.
type Justification rune

const (
	JustifyLeft   Justification = 'L'
	JustifyCenter Justification = 'C'
	JustifyRight  Justification = 'R'
	JustifyFull   Justification = 'J'
)

// JustificationFrom maps a parameter character to a Justification. Invalid
// values degrade to left justification, matching printer behavior.
func JustificationFrom(r rune) Justification {
	switch Justification(r) {
	case JustifyLeft, JustifyCenter, JustifyRight, JustifyFull:
		return Justification(r)
	default:
		slog.Debug("not a valid justification value, using L as default", "value", string(r))
		return JustifyLeft
	}
}

// YesNo is the boolean-like Y/N state used by several ZPL parameters.
type YesNo rune

const (
	Yes YesNo = 'Y'
	No  YesNo = 'N'
)

// YesNoFrom maps a parameter character to a YesNo, defaulting to No.
func YesNoFrom(r rune) YesNo {
	switch YesNo(r) {
	case Yes, No:
		return YesNo(r)
	default:
		slog.Debug("not a valid Y/N value, using N as default", "value", string(r))
		return No
	}
}

// Bool reports the value as a plain bool.
func (y YesNo) Bool() bool { return y == Yes }
