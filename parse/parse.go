// Package parse decodes the OpenMath XML encoding into om.Node trees.
package parse

import (
	"encoding/base64"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/OpenMath/go-openmath/om"
	"github.com/OpenMath/go-openmath/omxml"
)

// Bytes decodes UTF-8 XML into a single node. Without options the
// input must be a document whose root is OMOBJ; with Snippet any
// OpenMath element is accepted as the root. Decoding is all-or-nothing:
// a malformed descendant fails the whole call.
func Bytes(d []byte, opts ...ParseOption) (*om.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	el, err := omxml.ParseBytes(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedNode, err)
	}
	return decodeRoot(el, pOpts)
}

// XML decodes a structured XML value into a single node.
func XML(el *omxml.Element, opts ...ParseOption) (*om.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return decodeRoot(el, pOpts)
}

func decodeRoot(el *omxml.Element, opts *parseOpts) (*om.Node, error) {
	if err := checkNamespace(el); err != nil {
		return nil, err
	}
	if el.Name == omxml.TagObject {
		return decodeObject(el, opts)
	}
	if !opts.snippet {
		return nil, fmt.Errorf("%w: expected %s document root, found %s",
			ErrMalformedNode, omxml.TagObject, el.Name)
	}
	return decode(el)
}

// decodeObject unwraps the OMOBJ document wrapper. The model has no
// wrapper variant, so an explicit cdbase on OMOBJ moves to the
// unwrapped root when that root has none of its own.
func decodeObject(el *omxml.Element, opts *parseOpts) (*om.Node, error) {
	version, hasVersion := el.Attr(omxml.AttrVersion)
	if hasVersion && version != "2.0" {
		return nil, fmt.Errorf("%w: only OpenMath 2.0 is supported, got version %q",
			ErrMalformedNode, version)
	}
	if !hasVersion && !opts.snippet {
		return nil, fmt.Errorf("%w: %s without a version", ErrMalformedNode, omxml.TagObject)
	}
	kids, err := children(el)
	if err != nil {
		return nil, err
	}
	if len(kids) != 1 {
		return nil, fmt.Errorf("%w: %s must contain exactly one object, found %d",
			ErrMalformedNode, omxml.TagObject, len(kids))
	}
	node, err := decode(kids[0])
	if err != nil {
		return nil, err
	}
	if base, ok := el.Attr(omxml.AttrCDBase); ok && node.CDBase == "" {
		node.CDBase = base
	}
	return node, nil
}

func decode(el *omxml.Element) (*om.Node, error) {
	if err := checkNamespace(el); err != nil {
		return nil, err
	}
	t, ok := omxml.TypeForTag(el.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownElement, el.Name)
	}

	var (
		node *om.Node
		err  error
	)
	switch t {
	case om.IntegerType:
		node, err = decodeInteger(el)
	case om.FloatType:
		node, err = decodeFloat(el)
	case om.StringType:
		node = om.FromString(el.Text)
	case om.BytesType:
		node, err = decodeBytes(el)
	case om.SymbolType:
		node, err = decodeSymbol(el)
	case om.VariableType:
		name, ok := el.Attr(omxml.AttrName)
		if !ok {
			return nil, missingAttr(el, omxml.AttrName)
		}
		node, err = retag(om.NewVariable(name))
	case om.ReferenceType:
		href, ok := el.Attr(omxml.AttrHref)
		if !ok {
			return nil, missingAttr(el, omxml.AttrHref)
		}
		node, err = retag(om.NewReference(href))
	case om.ForeignType:
		encoding, _ := el.Attr(omxml.AttrEncoding)
		node, err = retag(om.NewForeign(encoding, el.Text))
	case om.ApplicationType:
		node, err = decodeApplication(el)
	case om.ErrorType:
		node, err = decodeError(el)
	case om.BindingType:
		node, err = decodeBinding(el)
	case om.AttributionType:
		node, err = decodeAttribution(el)
	}
	if err != nil {
		return nil, err
	}

	// only explicitly present attributes are stored; inherited cdbase
	// stays implicit so re-encoding reproduces the source placement
	if id, ok := el.Attr(omxml.AttrID); ok {
		node.ID = id
	}
	if hasCDBase(t) {
		if base, ok := el.Attr(omxml.AttrCDBase); ok {
			node.CDBase = base
		}
	}
	return node, nil
}

// hasCDBase reports whether the encoding defines a cdbase attribute
// for the variant's element.
func hasCDBase(t om.Type) bool {
	switch t {
	case om.SymbolType, om.ApplicationType, om.AttributionType,
		om.BindingType, om.ErrorType, om.ForeignType:
		return true
	default:
		return false
	}
}

func decodeInteger(el *omxml.Element) (*om.Node, error) {
	if len(el.Children) > 0 {
		return nil, unexpectedChildren(el)
	}
	text := strings.TrimSpace(el.Text)
	i, ok := new(big.Int).SetString(text, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %s with invalid integer literal %q",
			ErrMalformedNode, el.Name, text)
	}
	return retag(om.FromBigInt(i))
}

func decodeFloat(el *omxml.Element) (*om.Node, error) {
	if len(el.Children) > 0 {
		return nil, unexpectedChildren(el)
	}
	dec, ok := el.Attr(omxml.AttrDec)
	if !ok {
		return nil, missingAttr(el, omxml.AttrDec)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(dec), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s with invalid float literal %q",
			ErrMalformedNode, el.Name, dec)
	}
	return om.FromFloat(f), nil
}

func decodeBytes(el *omxml.Element) (*om.Node, error) {
	if len(el.Children) > 0 {
		return nil, unexpectedChildren(el)
	}
	text := strings.Join(strings.Fields(el.Text), "")
	d, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s with invalid base64: %v",
			ErrInvalidEncoding, el.Name, err)
	}
	return om.FromBytes(d), nil
}

func decodeSymbol(el *omxml.Element) (*om.Node, error) {
	name, ok := el.Attr(omxml.AttrName)
	if !ok {
		return nil, missingAttr(el, omxml.AttrName)
	}
	cd, ok := el.Attr(omxml.AttrCD)
	if !ok {
		return nil, missingAttr(el, omxml.AttrCD)
	}
	return retag(om.NewSymbol(cd, name))
}

func decodeApplication(el *omxml.Element) (*om.Node, error) {
	kids, err := children(el)
	if err != nil {
		return nil, err
	}
	if len(kids) == 0 {
		return nil, fmt.Errorf("%w: %s without a head", ErrMalformedNode, el.Name)
	}
	args, err := decodeAll(kids)
	if err != nil {
		return nil, err
	}
	return retag(om.NewApplication(args[0], args[1:]...))
}

func decodeError(el *omxml.Element) (*om.Node, error) {
	kids, err := children(el)
	if err != nil {
		return nil, err
	}
	if len(kids) == 0 {
		return nil, fmt.Errorf("%w: %s without a symbol", ErrMalformedNode, el.Name)
	}
	args, err := decodeAll(kids)
	if err != nil {
		return nil, err
	}
	return retag(om.NewError(args[0], args[1:]...))
}

func decodeBinding(el *omxml.Element) (*om.Node, error) {
	kids, err := children(el)
	if err != nil {
		return nil, err
	}
	if len(kids) != 3 {
		return nil, fmt.Errorf("%w: %s must have binder, %s and body, found %d children",
			ErrMalformedNode, el.Name, omxml.TagBindVariables, len(kids))
	}
	binder, err := decode(kids[0])
	if err != nil {
		return nil, err
	}
	bvar := kids[1]
	if err := checkNamespace(bvar); err != nil {
		return nil, err
	}
	if bvar.Name != omxml.TagBindVariables {
		return nil, fmt.Errorf("%w: %s variables must be wrapped in %s, found %s",
			ErrMalformedNode, el.Name, omxml.TagBindVariables, bvar.Name)
	}
	varEls, err := children(bvar)
	if err != nil {
		return nil, err
	}
	vars, err := decodeAll(varEls)
	if err != nil {
		return nil, err
	}
	body, err := decode(kids[2])
	if err != nil {
		return nil, err
	}
	return retag(om.NewBinding(binder, vars, body))
}

func decodeAttribution(el *omxml.Element) (*om.Node, error) {
	kids, err := children(el)
	if err != nil {
		return nil, err
	}
	if len(kids) != 2 {
		return nil, fmt.Errorf("%w: %s must have %s and a subject, found %d children",
			ErrMalformedNode, el.Name, omxml.TagAttrPairs, len(kids))
	}
	atp := kids[0]
	if err := checkNamespace(atp); err != nil {
		return nil, err
	}
	if atp.Name != omxml.TagAttrPairs {
		return nil, fmt.Errorf("%w: %s pairs must be wrapped in %s, found %s",
			ErrMalformedNode, el.Name, omxml.TagAttrPairs, atp.Name)
	}
	pairEls, err := children(atp)
	if err != nil {
		return nil, err
	}
	if len(pairEls)%2 != 0 {
		return nil, fmt.Errorf("%w: %s with odd number of children",
			ErrMalformedNode, omxml.TagAttrPairs)
	}
	pairs := make([]om.Pair, 0, len(pairEls)/2)
	for i := 0; i < len(pairEls); i += 2 {
		key, err := decode(pairEls[i])
		if err != nil {
			return nil, err
		}
		value, err := decode(pairEls[i+1])
		if err != nil {
			return nil, err
		}
		pairs = append(pairs, om.Pair{Key: key, Value: value})
	}
	subject, err := decode(kids[1])
	if err != nil {
		return nil, err
	}
	return retag(om.NewAttribution(subject, pairs...))
}

func decodeAll(els []*omxml.Element) ([]*om.Node, error) {
	res := make([]*om.Node, len(els))
	for i, el := range els {
		n, err := decode(el)
		if err != nil {
			return nil, err
		}
		res[i] = n
	}
	return res, nil
}

// children returns the child elements, rejecting stray non-whitespace
// text between them.
func children(el *omxml.Element) ([]*omxml.Element, error) {
	if strings.TrimSpace(el.Text) != "" {
		return nil, fmt.Errorf("%w: unexpected text %q in %s",
			ErrMalformedNode, strings.TrimSpace(el.Text), el.Name)
	}
	return el.Children, nil
}

func checkNamespace(el *omxml.Element) error {
	if el.Space != "" && el.Space != omxml.Namespace {
		return fmt.Errorf("%w: %s in namespace %q", ErrUnknownElement, el.Name, el.Space)
	}
	return nil
}

func missingAttr(el *omxml.Element, attr string) error {
	return fmt.Errorf("%w: %s without %s", ErrMalformedNode, el.Name, attr)
}

func unexpectedChildren(el *omxml.Element) error {
	return fmt.Errorf("%w: unexpected children in %s", ErrMalformedNode, el.Name)
}

// retag folds constructor violations into the decode error taxonomy.
func retag(n *om.Node, err error) (*om.Node, error) {
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedNode, err)
	}
	return n, nil
}
