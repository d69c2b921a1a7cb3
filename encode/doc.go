// Package encode encodes om.Node trees into the OpenMath XML encoding.
//
// The two output surfaces share one element tree:
//
//	el, err := encode.XML(node)           // structured form
//	d, err := encode.Bytes(node)          // serialized UTF-8 form
//	d, err := encode.Bytes(node, encode.Document())
//
// Integers are written as decimal text, floats as a round-trip-safe
// dec attribute, byte payloads as base64 text. The id attribute is
// written when present; cdbase is written exactly when the node
// carries an explicit one, never when it is merely inherited.
package encode
