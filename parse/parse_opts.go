package parse

type parseOpts struct {
	snippet bool
}

type ParseOption func(*parseOpts)

// Snippet accepts a bare OpenMath element as the root, without the
// OMOBJ document wrapper.
func Snippet() ParseOption {
	return func(o *parseOpts) { o.snippet = true }
}
