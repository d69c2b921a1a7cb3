package om

import (
	"encoding/binary"
	"hash/maphash"
	"math"
)

var hashSeed = maphash.MakeSeed()

// Hash returns a 64-bit hash of the node, stable for the lifetime of
// the process. Structurally equal nodes hash equally.
// It panics if n is nil.
func (n *Node) Hash() uint64 {
	if n == nil {
		panic("om: Hash called on nil node")
	}

	var h maphash.Hash
	h.SetSeed(hashSeed)
	h.WriteByte(byte(n.Type))
	h.WriteString(n.ID)
	h.WriteString(n.CDBase)

	switch n.Type {
	case IntegerType:
		h.Write(n.Int.Bytes())
		if n.Int.Sign() < 0 {
			h.WriteByte(1)
		}
	case FloatType:
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(*n.Float))
		h.Write(b[:])
	case StringType:
		h.WriteString(n.String)
	case BytesType:
		h.Write(n.Bytes)
	case SymbolType:
		h.WriteString(n.CD)
		h.WriteByte(0)
		h.WriteString(n.Name)
	case VariableType:
		h.WriteString(n.Name)
	case ReferenceType:
		h.WriteString(n.Href)
	case ForeignType:
		h.WriteString(n.Encoding)
		h.WriteByte(0)
		h.WriteString(n.Foreign)
	case ApplicationType, ErrorType, BindingType, AttributionType:
		var b [8]byte
		sub := func(c *Node) {
			binary.LittleEndian.PutUint64(b[:], c.Hash())
			h.Write(b[:])
		}
		if n.Head != nil {
			sub(n.Head)
		}
		for _, p := range n.Pairs {
			sub(p.Key)
			sub(p.Value)
		}
		for _, v := range n.Values {
			sub(v)
		}
		if n.Body != nil {
			sub(n.Body)
		}
	}
	return h.Sum64()
}
