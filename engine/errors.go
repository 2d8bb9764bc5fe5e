package engine

import "errors"

// ErrEmptyInput reports label text that parsed to zero commands.
var ErrEmptyInput = errors.New("empty or invalid ZPL input")

// BackendError reports a failure inside a rendering backend.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string { return "rendering backend error: " + e.Message }

// FontError reports a font loading or registration failure.
type FontError struct {
	Message string
}

func (e *FontError) Error() string { return "font error: " + e.Message }

// ImageError reports an image decoding failure (base64 or binary).
type ImageError struct {
	Message string
}

func (e *ImageError) Error() string { return "image processing error: " + e.Message }

// SecurityLimitError reports that an operation would exceed a resource cap.
type SecurityLimitError struct {
	Message string
}

func (e *SecurityLimitError) Error() string { return "security limit exceeded: " + e.Message }

// BuilderError is reserved for structural inconsistencies in the command
// stream. The builder currently degrades instead of failing, so nothing
// constructs it yet; callers should still be prepared for it.
type BuilderError struct {
	Message string
}

func (e *BuilderError) Error() string { return "instruction builder error: " + e.Message }
