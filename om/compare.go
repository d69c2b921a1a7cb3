package om

import (
	"bytes"
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes under a structural
// total order. The result will be 0 if a==b, -1 if a < b, and +1 if
// a > b. The id and cdbase attributes participate in the order.
func Compare(a, b *Node) int {
	return compare(a, b, false)
}

// Equal reports deep structural equality, including id and explicit
// cdbase placement.
func Equal(a, b *Node) bool {
	return compare(a, b, false) == 0
}

// EqualIgnoreMeta reports structural equality ignoring id and cdbase
// attributes everywhere in both trees.
func EqualIgnoreMeta(a, b *Node) bool {
	return compare(a, b, true) == 0
}

func compare(a, b *Node, ignoreMeta bool) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.Type != b.Type {
		return cmp.Compare(a.Type, b.Type)
	}

	switch a.Type {
	case IntegerType:
		if c := a.Int.Cmp(b.Int); c != 0 {
			return c
		}
	case FloatType:
		if c := cmp.Compare(*a.Float, *b.Float); c != 0 {
			return c
		}
	case StringType:
		if c := strings.Compare(a.String, b.String); c != 0 {
			return c
		}
	case BytesType:
		if c := bytes.Compare(a.Bytes, b.Bytes); c != 0 {
			return c
		}
	case SymbolType:
		if c := strings.Compare(a.CD, b.CD); c != 0 {
			return c
		}
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
	case VariableType:
		if c := strings.Compare(a.Name, b.Name); c != 0 {
			return c
		}
	case ReferenceType:
		if c := strings.Compare(a.Href, b.Href); c != 0 {
			return c
		}
	case ForeignType:
		if c := strings.Compare(a.Encoding, b.Encoding); c != 0 {
			return c
		}
		if c := strings.Compare(a.Foreign, b.Foreign); c != 0 {
			return c
		}
	case ApplicationType, ErrorType:
		if c := compare(a.Head, b.Head, ignoreMeta); c != 0 {
			return c
		}
		if c := compareValues(a, b, ignoreMeta); c != 0 {
			return c
		}
	case BindingType:
		if c := compare(a.Head, b.Head, ignoreMeta); c != 0 {
			return c
		}
		if c := compareValues(a, b, ignoreMeta); c != 0 {
			return c
		}
		if c := compare(a.Body, b.Body, ignoreMeta); c != 0 {
			return c
		}
	case AttributionType:
		if c := comparePairs(a, b, ignoreMeta); c != 0 {
			return c
		}
		if c := compare(a.Body, b.Body, ignoreMeta); c != 0 {
			return c
		}
	}

	if ignoreMeta {
		return 0
	}
	if c := strings.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	return strings.Compare(a.CDBase, b.CDBase)
}

func compareValues(a, b *Node, ignoreMeta bool) int {
	lenA := len(a.Values)
	lenB := len(b.Values)
	for i := range min(lenA, lenB) {
		if c := compare(a.Values[i], b.Values[i], ignoreMeta); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}

func comparePairs(a, b *Node, ignoreMeta bool) int {
	lenA := len(a.Pairs)
	lenB := len(b.Pairs)
	for i := range min(lenA, lenB) {
		if c := compare(a.Pairs[i].Key, b.Pairs[i].Key, ignoreMeta); c != 0 {
			return c
		}
		if c := compare(a.Pairs[i].Value, b.Pairs[i].Value, ignoreMeta); c != 0 {
			return c
		}
	}
	return cmp.Compare(lenA, lenB)
}
