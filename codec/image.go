package codec

import (
	"bytes"
	"fmt"
	"image"

	_ "image/jpeg"
	_ "image/png"
)

// EncodeBytes is Encode for raw image file contents (PNG or JPEG), the form
// label tooling usually starts from.
func EncodeBytes(imageBytes []byte) (data string, total, bytesPerRow int, err error) {
	img, _, err := image.Decode(bytes.NewReader(imageBytes))
	if err != nil {
		return "", 0, 0, fmt.Errorf("load image from bytes: %w", err)
	}
	data, total, bytesPerRow = Encode(img)
	return data, total, bytesPerRow, nil
}
