package om

import "errors"

// ErrInvalidNode reports a structurally invalid node construction, such
// as a symbol with an empty name or a binding over a non-variable.
var ErrInvalidNode = errors.New("invalid node")
