package window

import "errors"

var (
	// ErrUnknownType is returned by Parse for an unrecognized window name.
	ErrUnknownType = errors.New("window: unknown type")
	// ErrMismatchedLength is returned when samples and coefficients differ in length.
	ErrMismatchedLength = errors.New("window: samples and coefficients must have same length")
)
