package convert

import "errors"

var (
	// ErrNoConversion reports that no rule applies in either direction.
	ErrNoConversion = errors.New("no conversion")

	// ErrCannotConvert may be returned by a registered rule to signal
	// that it does not handle the value, letting conversion fall
	// through to the built-in rules.
	ErrCannotConvert = errors.New("cannot convert")
)
