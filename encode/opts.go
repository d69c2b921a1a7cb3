package encode

import "github.com/OpenMath/go-openmath/omxml"

type encState struct {
	document bool
	indent   int
	colors   *omxml.Colors
}

type EncodeOption func(*encState)

// Document wraps the output in an OMOBJ element with version="2.0".
func Document() EncodeOption {
	return func(es *encState) { es.document = true }
}

// Indent produces one element per line with n-space indentation.
func Indent(n int) EncodeOption {
	return func(es *encState) { es.indent = n }
}

// EncodeColors renders the output with terminal colors.
func EncodeColors(c *omxml.Colors) EncodeOption {
	return func(es *encState) { es.colors = c }
}
