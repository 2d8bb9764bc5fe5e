package zpl

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func u32(v uint32) *uint32 { return &v }

func ch(r rune) *rune { return &r }

func TestParseBasicLabel(t *testing.T) {
	commands, err := Parse("^XA^FO50,50^A0N,50,50^FDHello^FS^XZ")
	require.NoError(t, err)

	want := []Command{
		StartFormat{},
		FieldOrigin{X: u32(50), Y: u32(50)},
		FontSpecFull{Font: '0', Orientation: ch('N'), Height: u32(50), Width: u32(50)},
		FieldData{Data: "Hello"},
		FieldSeparator{},
		EndFormat{},
	}
	if diff := cmp.Diff(want, commands); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMultilineLabel(t *testing.T) {
	input := "^XA\n^LH10,10\n^FO100,200\n^GB300,200,4,B,1\n^FS\n^XZ\n"
	commands, err := Parse(input)
	require.NoError(t, err)

	want := []Command{
		StartFormat{},
		LabelHome{X: u32(10), Y: u32(10)},
		FieldOrigin{X: u32(100), Y: u32(200)},
		GraphicBox{Width: 300, Height: 200, Thickness: u32(4), LineColor: ch('B'), Rounding: u32(1)},
		FieldSeparator{},
		EndFormat{},
	}
	if diff := cmp.Diff(want, commands); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestParseErrorLine(t *testing.T) {
	cases := []struct {
		name  string
		input string
		line  int
	}{
		{"missing font name A", "^XA\n^A\n^XZ", 2},
		{"missing font name CF", "^XA\n^CF\n^XZ", 2},
		{"graphic box missing height", "^XA\n^GB100\n^XZ", 2},
		{"invalid coordinates", "^XA\n^FOA,10\n^XZ", 2},
		{"invalid u32 parameter", "^XA\n^LLABC\n^XZ", 2},
		{"error after valid lines", "^XA\n^FO100,100\n^A0\n^FDHello\n^FS\n^GB200\n^XZ", 6},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.input)
			require.Error(t, err)
			var parseErr *ParseError
			require.True(t, errors.As(err, &parseErr), "expected *ParseError, got %T", err)
			assert.Equal(t, tc.line, parseErr.Line)
		})
	}
}

func TestParseUnknownCommandFallback(t *testing.T) {
	commands, err := Parse("^XA^PW400^XZ")
	require.NoError(t, err)
	require.Len(t, commands, 3)
	assert.Equal(t, Unsupported{Command: "^PW", Args: "400"}, commands[1])
}

func TestParseFontBadOrientationFallsBack(t *testing.T) {
	// The orientation slot cannot hold a space, so the whole command is
	// treated as unknown instead of failing the parse.
	commands, err := Parse("^XA^A0 N^XZ")
	require.NoError(t, err)
	require.Len(t, commands, 3)
	assert.Equal(t, Unsupported{Command: "^A0", Args: "N"}, commands[1])
}

func TestParseBarcodeBadFirstParamFallsBack(t *testing.T) {
	commands, err := Parse("^BC 100^FS")
	require.NoError(t, err)
	require.Len(t, commands, 2)
	assert.Equal(t, Unsupported{Command: "^BC", Args: "100"}, commands[0])
}

func TestParseBarcodeDiscardsChunkLeftovers(t *testing.T) {
	commands, err := Parse("^BCN,100,Y,N,N,A,leftover,junk^FS")
	require.NoError(t, err)
	require.Len(t, commands, 2)

	want := Code128{
		Orientation:         ch('N'),
		Height:              u32(100),
		InterpretationLine:  ch('Y'),
		InterpretationAbove: ch('N'),
		CheckDigit:          ch('N'),
		Mode:                ch('A'),
	}
	if diff := cmp.Diff(want, commands[0]); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTruncatedParameterLists(t *testing.T) {
	commands, err := Parse("^GB100,200^GC50^BY3^FS")
	require.NoError(t, err)

	want := []Command{
		GraphicBox{Width: 100, Height: 200},
		GraphicCircle{Diameter: u32(50)},
		BarcodeDefault{ModuleWidth: u32(3)},
		FieldSeparator{},
	}
	if diff := cmp.Diff(want, commands); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestParseMissingSubsequentValueStaysAbsent(t *testing.T) {
	// ",," between height and rounding: the thickness and color slots are
	// empty, not zero.
	commands, err := Parse("^GB100,200,,,2^FS")
	require.NoError(t, err)
	require.Len(t, commands, 2)

	want := GraphicBox{Width: 100, Height: 200, Rounding: u32(2)}
	if diff := cmp.Diff(want, commands[0]); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestParseGraphicField(t *testing.T) {
	commands, err := Parse("^GFA,4,4,2,FFFF8001^FS")
	require.NoError(t, err)
	require.Len(t, commands, 2)

	want := GraphicField{
		Compression:     ch('A'),
		BinaryByteCount: u32(4),
		TotalByteCount:  u32(4),
		BytesPerRow:     u32(2),
		Data:            "FFFF8001",
	}
	if diff := cmp.Diff(want, commands[0]); diff != "" {
		t.Errorf("command mismatch (-want +got):\n%s", diff)
	}
}

func TestParseCustomExtensions(t *testing.T) {
	commands, err := Parse("^GIC100,50,aGVsbG8=^FS^GTC#FF0000^FS^GLC#00FF00^FS")
	require.NoError(t, err)
	require.Len(t, commands, 6)
	assert.Equal(t, CustomImage{Width: 100, Height: 50, Data: "aGVsbG8="}, commands[0])
	assert.Equal(t, TextColor{Color: "#FF0000"}, commands[2])
	assert.Equal(t, LineColor{Color: "#00FF00"}, commands[4])
}

func TestParseCustomImageMissingData(t *testing.T) {
	_, err := Parse("^GIC100,50,^FS")
	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Contains(t, parseErr.Message, "base64")
}

func TestParseLeftoverContentFails(t *testing.T) {
	_, err := Parse("^XA^FS garbage")
	require.Error(t, err)
	var parseErr *ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 1, parseErr.Line)
}

func TestParseEmptyInput(t *testing.T) {
	commands, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, commands)
}
