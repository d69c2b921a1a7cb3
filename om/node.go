package om

import (
	"fmt"
	"math/big"
)

// DefaultCDBase is the base URI against which symbol content-dictionary
// references resolve when no node on the path to the root carries an
// explicit cdbase.
const DefaultCDBase = "http://www.openmath.org/cd"

// Node is a single OpenMath object. It is a tagged union: the Type
// field selects the variant and determines which payload fields are
// populated. See the package documentation for the field/variant
// correspondence.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int

	// ID and CDBase are the optional id and cdbase attributes. An
	// empty CDBase means the node inherits; see EffectiveCDBase.
	ID     string
	CDBase string

	Int      *big.Int // IntegerType
	Float    *float64 // FloatType
	String   string   // StringType
	Bytes    []byte   // BytesType
	CD       string   // SymbolType
	Name     string   // SymbolType, VariableType
	Href     string   // ReferenceType
	Encoding string   // ForeignType
	Foreign  string   // ForeignType

	Head   *Node   // ApplicationType head, BindingType binder, ErrorType symbol
	Values []*Node // ApplicationType and ErrorType arguments, BindingType variables
	Body   *Node   // BindingType body, AttributionType subject
	Pairs  []Pair  // AttributionType pairs
}

// Pair is a single attribution pair. Key is always a Symbol node.
type Pair struct {
	Key   *Node
	Value *Node
}

// WithID sets the id attribute and returns the node.
func (n *Node) WithID(id string) *Node {
	n.ID = id
	return n
}

// WithCDBase sets an explicit cdbase on the node and returns it.
func (n *Node) WithCDBase(cdbase string) *Node {
	n.CDBase = cdbase
	return n
}

func FromInt(v int64) *Node {
	return &Node{Type: IntegerType, Int: big.NewInt(v)}
}

// FromBigInt builds an Integer node holding a copy of v.
func FromBigInt(v *big.Int) (*Node, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: integer without a value", ErrInvalidNode)
	}
	return &Node{Type: IntegerType, Int: new(big.Int).Set(v)}, nil
}

func FromFloat(f float64) *Node {
	return &Node{Type: FloatType, Float: &f}
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

// FromBytes builds a Bytes node holding a copy of d.
func FromBytes(d []byte) *Node {
	return &Node{Type: BytesType, Bytes: append([]byte(nil), d...)}
}

func NewSymbol(cd, name string) (*Node, error) {
	if cd == "" {
		return nil, fmt.Errorf("%w: symbol with empty cd", ErrInvalidNode)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: symbol with empty name", ErrInvalidNode)
	}
	return &Node{Type: SymbolType, CD: cd, Name: name}, nil
}

func NewVariable(name string) (*Node, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: variable with empty name", ErrInvalidNode)
	}
	return &Node{Type: VariableType, Name: name}, nil
}

func NewReference(href string) (*Node, error) {
	if href == "" {
		return nil, fmt.Errorf("%w: reference with empty href", ErrInvalidNode)
	}
	return &Node{Type: ReferenceType, Href: href}, nil
}

// NewForeign builds a Foreign node. The encoding may be empty, the
// payload may not.
func NewForeign(encoding, data string) (*Node, error) {
	if data == "" {
		return nil, fmt.Errorf("%w: foreign object without payload", ErrInvalidNode)
	}
	return &Node{Type: ForeignType, Encoding: encoding, Foreign: data}, nil
}

func NewApplication(head *Node, args ...*Node) (*Node, error) {
	if head == nil {
		return nil, fmt.Errorf("%w: application without a head", ErrInvalidNode)
	}
	res := &Node{Type: ApplicationType}
	res.setHead(head)
	if err := res.setValues(args); err != nil {
		return nil, err
	}
	return res, nil
}

func NewError(sym *Node, args ...*Node) (*Node, error) {
	if sym == nil || sym.Type != SymbolType {
		return nil, fmt.Errorf("%w: error object requires a symbol", ErrInvalidNode)
	}
	res := &Node{Type: ErrorType}
	res.setHead(sym)
	if err := res.setValues(args); err != nil {
		return nil, err
	}
	return res, nil
}

func NewAttribution(subject *Node, pairs ...Pair) (*Node, error) {
	if subject == nil {
		return nil, fmt.Errorf("%w: attribution without a subject", ErrInvalidNode)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("%w: attribution without pairs", ErrInvalidNode)
	}
	res := &Node{Type: AttributionType}
	res.Pairs = make([]Pair, len(pairs))
	for i, p := range pairs {
		if p.Key == nil || p.Key.Type != SymbolType {
			return nil, fmt.Errorf("%w: attribution key must be a symbol", ErrInvalidNode)
		}
		if p.Value == nil {
			return nil, fmt.Errorf("%w: attribution pair without a value", ErrInvalidNode)
		}
		p.Key.Parent = res
		p.Key.ParentIndex = i
		p.Value.Parent = res
		p.Value.ParentIndex = i
		res.Pairs[i] = p
	}
	subject.Parent = res
	subject.ParentIndex = -1
	res.Body = subject
	return res, nil
}

func NewBinding(binder *Node, vars []*Node, body *Node) (*Node, error) {
	if binder == nil {
		return nil, fmt.Errorf("%w: binding without a binder", ErrInvalidNode)
	}
	if body == nil {
		return nil, fmt.Errorf("%w: binding without a body", ErrInvalidNode)
	}
	res := &Node{Type: BindingType}
	res.setHead(binder)
	for _, v := range vars {
		if v == nil || (v.Type != VariableType && v.Type != AttributionType) {
			return nil, fmt.Errorf("%w: bound variable must be a variable or an attributed variable", ErrInvalidNode)
		}
	}
	if err := res.setValues(vars); err != nil {
		return nil, err
	}
	body.Parent = res
	body.ParentIndex = -1
	res.Body = body
	return res, nil
}

func (n *Node) setHead(head *Node) {
	head.Parent = n
	head.ParentIndex = -1
	n.Head = head
}

func (n *Node) setValues(vs []*Node) error {
	n.Values = make([]*Node, len(vs))
	for i, v := range vs {
		if v == nil {
			return fmt.Errorf("%w: nil child", ErrInvalidNode)
		}
		v.Parent = n
		v.ParentIndex = i
		n.Values[i] = v
	}
	return nil
}

// EffectiveCDBase resolves the cdbase this node's content-dictionary
// references resolve against: the nearest explicit cdbase on the path
// to the root, or DefaultCDBase.
func (n *Node) EffectiveCDBase() string {
	for p := n; p != nil; p = p.Parent {
		if p.CDBase != "" {
			return p.CDBase
		}
	}
	return DefaultCDBase
}

func (n *Node) Root() *Node {
	res := n
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

func (n *Node) Clone() *Node {
	res := &Node{}
	return n.CloneTo(res)
}

func (n *Node) CloneTo(dst *Node) *Node {
	dst.Type = n.Type
	dst.Parent = n.Parent
	dst.ParentIndex = n.ParentIndex
	dst.ID = n.ID
	dst.CDBase = n.CDBase

	if n.Int != nil {
		dst.Int = new(big.Int).Set(n.Int)
	}
	if n.Float != nil {
		f := *n.Float
		dst.Float = &f
	}
	dst.String = n.String
	if n.Bytes != nil {
		dst.Bytes = append([]byte(nil), n.Bytes...)
	}
	dst.CD = n.CD
	dst.Name = n.Name
	dst.Href = n.Href
	dst.Encoding = n.Encoding
	dst.Foreign = n.Foreign

	if n.Head != nil {
		dstHead := &Node{}
		n.Head.CloneTo(dstHead)
		dstHead.Parent = dst
		dst.Head = dstHead
	}
	if n.Values != nil {
		dst.Values = make([]*Node, len(n.Values))
		for i, v := range n.Values {
			dstI := &Node{}
			v.CloneTo(dstI)
			dstI.Parent = dst
			dstI.ParentIndex = i
			dst.Values[i] = dstI
		}
	}
	if n.Body != nil {
		dstBody := &Node{}
		n.Body.CloneTo(dstBody)
		dstBody.Parent = dst
		dst.Body = dstBody
	}
	if n.Pairs != nil {
		dst.Pairs = make([]Pair, len(n.Pairs))
		for i, p := range n.Pairs {
			dstK, dstV := &Node{}, &Node{}
			p.Key.CloneTo(dstK)
			p.Value.CloneTo(dstV)
			dstK.Parent = dst
			dstK.ParentIndex = i
			dstV.Parent = dst
			dstV.ParentIndex = i
			dst.Pairs[i] = Pair{Key: dstK, Value: dstV}
		}
	}
	return dst
}

// Visit walks the tree in document order, calling f before (isPost
// false) and after (isPost true) each node's children. Returning false
// from the pre-order call skips the children.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		if n.Head != nil {
			if err := n.Head.Visit(f); err != nil {
				return err
			}
		}
		for _, p := range n.Pairs {
			if err := p.Key.Visit(f); err != nil {
				return err
			}
			if err := p.Value.Visit(f); err != nil {
				return err
			}
		}
		for _, v := range n.Values {
			if err := v.Visit(f); err != nil {
				return err
			}
		}
		if n.Body != nil {
			if err := n.Body.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
