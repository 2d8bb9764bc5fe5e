package engine

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rafael-arreola/zpl-forge/zpl"
)

// recordingBackend captures every call the engine makes so tests can
// inspect the draw stream without rasterizing anything.
type recordingBackend struct {
	pageW, pageH float64
	res          Resolution
	fonts        *FontRegistry
	drawn        []Instruction
}

func (r *recordingBackend) SetupPage(w, h float64, res Resolution) {
	r.pageW, r.pageH, r.res = w, h, res
}

func (r *recordingBackend) SetupFonts(fonts *FontRegistry) { r.fonts = fonts }

func (r *recordingBackend) DrawText(t Text) error              { r.drawn = append(r.drawn, t); return nil }
func (r *recordingBackend) DrawGraphicBox(b GraphicBox) error  { r.drawn = append(r.drawn, b); return nil }
func (r *recordingBackend) DrawGraphicCircle(c GraphicCircle) error {
	r.drawn = append(r.drawn, c)
	return nil
}
func (r *recordingBackend) DrawGraphicEllipse(e GraphicEllipse) error {
	r.drawn = append(r.drawn, e)
	return nil
}
func (r *recordingBackend) DrawGraphicField(f GraphicField) error {
	r.drawn = append(r.drawn, f)
	return nil
}
func (r *recordingBackend) DrawCustomImage(i CustomImage) error {
	r.drawn = append(r.drawn, i)
	return nil
}
func (r *recordingBackend) DrawCode128(c Code128) error { r.drawn = append(r.drawn, c); return nil }
func (r *recordingBackend) DrawCode39(c Code39) error   { r.drawn = append(r.drawn, c); return nil }
func (r *recordingBackend) DrawQRCode(q QRCode) error   { r.drawn = append(r.drawn, q); return nil }

func (r *recordingBackend) Finalize() ([]byte, error) { return []byte("done"), nil }

func TestNewRejectsEmptyInput(t *testing.T) {
	_, err := New("", Inches(4), Inches(6), Dpi203)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyInput))

	_, err = New("  \n\t ", Inches(4), Inches(6), Dpi203)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrEmptyInput))
}

func TestNewPropagatesParseErrors(t *testing.T) {
	_, err := New("^XA\n^GB100\n^XZ", Inches(4), Inches(6), Dpi203)
	require.Error(t, err)
	var parseErr *zpl.ParseError
	require.True(t, errors.As(err, &parseErr))
	assert.Equal(t, 2, parseErr.Line)
}

func TestRenderPageDimensions(t *testing.T) {
	eng, err := New("^XA^XZ", Inches(4), Inches(6), Dpi203)
	require.NoError(t, err)

	backend := &recordingBackend{}
	out, err := eng.Render(context.Background(), backend, nil)
	require.NoError(t, err)
	assert.Equal(t, []byte("done"), out)
	assert.Equal(t, float64(813), backend.pageW)
	assert.Equal(t, float64(1219), backend.pageH)
	assert.NotNil(t, backend.fonts)
}

func TestRenderSubstitutesVariables(t *testing.T) {
	label := "^XA^FO0,0^FDHello {{name}}^FS^FO0,10^BCN^FD{{code}}^FS^XZ"
	eng, err := New(label, Inches(4), Inches(6), Dpi203)
	require.NoError(t, err)

	backend := &recordingBackend{}
	_, err = eng.Render(context.Background(), backend, map[string]string{
		"name": "Ann",
		"code": "12345",
	})
	require.NoError(t, err)

	require.Len(t, backend.drawn, 2)
	assert.Equal(t, "Hello Ann", backend.drawn[0].(Text).Text)
	assert.Equal(t, "12345", backend.drawn[1].(Code128).Data)
}

func TestRenderKeepsUnknownPlaceholders(t *testing.T) {
	eng, err := New("^XA^FO0,0^FD{{missing}}^FS^XZ", Inches(4), Inches(6), Dpi203)
	require.NoError(t, err)

	backend := &recordingBackend{}
	_, err = eng.Render(context.Background(), backend, map[string]string{"other": "x"})
	require.NoError(t, err)

	require.Len(t, backend.drawn, 1)
	assert.Equal(t, "{{missing}}", backend.drawn[0].(Text).Text)
}

func TestRenderSubstitutionDoesNotMutateEngine(t *testing.T) {
	eng, err := New("^XA^FO0,0^FD{{name}}^FS^XZ", Inches(4), Inches(6), Dpi203)
	require.NoError(t, err)

	first := &recordingBackend{}
	_, err = eng.Render(context.Background(), first, map[string]string{"name": "one"})
	require.NoError(t, err)

	second := &recordingBackend{}
	_, err = eng.Render(context.Background(), second, map[string]string{"name": "two"})
	require.NoError(t, err)

	assert.Equal(t, "one", first.drawn[0].(Text).Text)
	assert.Equal(t, "two", second.drawn[0].(Text).Text)
}

func TestRenderHonorsCanceledContext(t *testing.T) {
	eng, err := New("^XA^FO0,0^FDx^FS^XZ", Inches(4), Inches(6), Dpi203)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = eng.Render(ctx, &recordingBackend{}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}
