// Package png renders label instructions onto an RGBA raster and encodes
// the result as a PNG image. It is the reference backend; the pdf package
// wraps it to embed the raster in a document.
package png
