package kg

import "errors"

// Errors returned by the codec. Call sites wrap these with file-level
// context; match them with errors.Is.
var (
	// ErrInsufficientHeaderData is returned when a file is shorter than the
	// fixed 32-byte header (or its palette block).
	ErrInsufficientHeaderData = errors.New("insufficient header data")

	// ErrInvalidMagic is returned when a file doesn't start with the KG
	// signature.
	ErrInvalidMagic = errors.New("invalid magic")

	// ErrUnsupportedCompressionType is returned for any compression scheme
	// other than BPP3.
	ErrUnsupportedCompressionType = errors.New("unsupported compression type")

	// ErrTruncatedStream is returned when the compressed bit stream ends
	// before the canvas is full.
	ErrTruncatedStream = errors.New("truncated compressed stream")

	// ErrCanvasOverrun is returned when a copy run would write past the end
	// of the canvas.
	ErrCanvasOverrun = errors.New("copy run past end of canvas")

	// ErrTooManyColors is returned when an image can't be expressed with a
	// 256-entry palette.
	ErrTooManyColors = errors.New("too many colors for palette")
)
