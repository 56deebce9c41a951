package neatjson

import "errors"

// Errors returned by the encoder. They are wrapped with context, so match
// them with errors.Is.
var (
	// ErrNonFiniteNumber reports a NaN or infinite number while
	// Options.AllowNaN is false. Encoding aborts; no partial output is
	// returned.
	ErrNonFiniteNumber = errors.New("non-finite number")

	// ErrUnsupportedType reports a value that is not one of the recognized
	// JSON kinds, or an object key that cannot be stringified.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrDepthExceeded reports input nested deeper than Options.MaxDepth.
	ErrDepthExceeded = errors.New("nesting depth exceeded")
)
