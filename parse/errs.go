package parse

import "errors"

var (
	// ErrUnknownElement reports an element outside the fixed OpenMath
	// tag set, or one in the wrong namespace.
	ErrUnknownElement = errors.New("unknown element")

	// ErrMalformedNode reports a known element whose attributes,
	// children or text violate the encoding.
	ErrMalformedNode = errors.New("malformed node")

	// ErrInvalidEncoding reports byte content that is not valid base64.
	ErrInvalidEncoding = errors.New("invalid encoding")
)
