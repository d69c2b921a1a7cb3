// Package omxml holds the wire-level pieces of the OpenMath XML
// encoding shared by the encode and parse packages: the namespace, the
// element and attribute name tables, and the Element document tree
// with its UTF-8 serialization and tokenization.
//
// Element is the "structured XML value" of the codec's programmatic
// boundary; both byte output and byte input pass through it, so the
// two surfaces cannot disagree.
package omxml
