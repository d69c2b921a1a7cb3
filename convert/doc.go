// Package convert translates between Go values and OpenMath objects.
//
// A Converter holds two extensible rule tables: per-Go-type rules for
// encoding, and per-symbol rules for decoding applications and
// constants. The zero set of rules installed by New covers booleans,
// integers of any width, floats, complex numbers, strings, byte
// slices, sequences, and the Set and Interval container types.
//
// # Encoding
//
// ToOpenMath tries, in order: the Convertible interface on the value
// itself, a registered rule for the value's exact type, and finally
// the built-in rules. A registered rule may decline by returning
// ErrCannotConvert, which falls through to the built-ins.
//
// # Decoding
//
// ToGo maps integers, floats, strings and byte arrays directly.
// Symbols and applications are resolved through the symbol table:
// an application's head symbol selects a handler, which receives the
// already converted arguments. Unknown symbols and unsupported nodes
// report ErrNoConversion.
//
// # Extending
//
// Register, RegisterType and RegisterSymbol add rules. Later
// registrations for the same type or symbol win. The package-level
// functions operate on a shared Default converter; New returns an
// isolated instance. All methods are safe for concurrent use.
package convert
