// Package pdf renders labels as single-page PDF documents. Drawing is
// delegated to the png backend; Finalize embeds the raster in a page
// whose physical size matches the label at the configured resolution.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/rafael-arreola/zpl-forge/engine"
	"github.com/rafael-arreola/zpl-forge/forge/png"
)

// Backend wraps the png backend and converts its output into a PDF. The
// promoted Draw methods paint onto the raster; only page setup and
// finalization differ.
type Backend struct {
	*png.Backend
	widthDots  float64
	heightDots float64
	res        engine.Resolution
}

func New() *Backend {
	return &Backend{Backend: png.New()}
}

func (b *Backend) SetupPage(width, height float64, res engine.Resolution) {
	b.widthDots = width
	b.heightDots = height
	b.res = res
	b.Backend.SetupPage(width, height, res)
}

// Finalize encodes the raster as PNG and embeds it in a PDF page sized in
// points to the label's physical dimensions.
func (b *Backend) Finalize() ([]byte, error) {
	pngData, err := b.Backend.Finalize()
	if err != nil {
		return nil, err
	}

	dpi := b.res.DPI()
	if dpi == 0 {
		dpi = 203.2
	}
	widthPt := b.widthDots / dpi * 72
	heightPt := b.heightDots / dpi * 72

	doc := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr: "pt",
		Size:    gofpdf.SizeType{Wd: widthPt, Ht: heightPt},
	})
	doc.SetMargins(0, 0, 0)
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()

	opts := gofpdf.ImageOptions{ImageType: "PNG"}
	doc.RegisterImageOptionsReader("label", opts, bytes.NewReader(pngData))
	doc.ImageOptions("label", 0, 0, widthPt, heightPt, false, opts, 0, "")

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, &engine.BackendError{Message: fmt.Sprintf("writing PDF: %v", err)}
	}
	return buf.Bytes(), nil
}
