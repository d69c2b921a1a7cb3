package encode

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/OpenMath/go-openmath/om"
	"github.com/OpenMath/go-openmath/omxml"
)

// ErrEncoding reports a node that cannot be encoded, such as a
// hand-built node missing a required payload.
var ErrEncoding = errors.New("encoding error")

// XML builds the structured XML form of node.
func XML(node *om.Node) (*omxml.Element, error) {
	return element(node)
}

// Bytes serializes node as UTF-8 XML. By default the output is the
// bare element for node; the Document option wraps it in an OMOBJ
// carrying version="2.0".
func Bytes(node *om.Node, opts ...EncodeOption) ([]byte, error) {
	es := &encState{}
	for _, opt := range opts {
		opt(es)
	}
	el, err := element(node)
	if err != nil {
		return nil, err
	}
	if es.document {
		wrap := &omxml.Element{Space: omxml.Namespace, Name: omxml.TagObject}
		wrap.SetAttr(omxml.AttrVersion, "2.0")
		wrap.Children = []*omxml.Element{el}
		el = wrap
	}
	return el.Bytes(&omxml.WriteState{Indent: es.indent, Colors: es.colors}), nil
}

// Encode serializes node to w.
func Encode(node *om.Node, w io.Writer, opts ...EncodeOption) error {
	d, err := Bytes(node, opts...)
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func element(n *om.Node) (*omxml.Element, error) {
	if n == nil {
		return nil, fmt.Errorf("%w: nil node", ErrEncoding)
	}
	tag := omxml.TagForType(n.Type)
	if tag == "" {
		return nil, fmt.Errorf("%w: unknown node type %d", ErrEncoding, int(n.Type))
	}
	el := &omxml.Element{Space: omxml.Namespace, Name: tag}
	// only an explicitly set cdbase is written; inheritance stays implicit
	if n.CDBase != "" {
		el.SetAttr(omxml.AttrCDBase, n.CDBase)
	}
	if n.ID != "" {
		el.SetAttr(omxml.AttrID, n.ID)
	}

	switch n.Type {
	case om.IntegerType:
		if n.Int == nil {
			return nil, fmt.Errorf("%w: integer without a value", ErrEncoding)
		}
		el.Text = n.Int.String()
	case om.FloatType:
		if n.Float == nil {
			return nil, fmt.Errorf("%w: float without a value", ErrEncoding)
		}
		el.SetAttr(omxml.AttrDec, formatFloat(*n.Float))
	case om.StringType:
		el.Text = n.String
	case om.BytesType:
		el.Text = base64.StdEncoding.EncodeToString(n.Bytes)
	case om.SymbolType:
		el.SetAttr(omxml.AttrName, n.Name)
		el.SetAttr(omxml.AttrCD, n.CD)
	case om.VariableType:
		el.SetAttr(omxml.AttrName, n.Name)
	case om.ReferenceType:
		el.SetAttr(omxml.AttrHref, n.Href)
	case om.ForeignType:
		if n.Encoding != "" {
			el.SetAttr(omxml.AttrEncoding, n.Encoding)
		}
		el.Text = n.Foreign
	case om.ApplicationType, om.ErrorType:
		if err := appendChild(el, n.Head); err != nil {
			return nil, err
		}
		for _, arg := range n.Values {
			if err := appendChild(el, arg); err != nil {
				return nil, err
			}
		}
	case om.BindingType:
		if err := appendChild(el, n.Head); err != nil {
			return nil, err
		}
		bvar := &omxml.Element{Space: omxml.Namespace, Name: omxml.TagBindVariables}
		for _, v := range n.Values {
			if err := appendChild(bvar, v); err != nil {
				return nil, err
			}
		}
		el.Children = append(el.Children, bvar)
		if err := appendChild(el, n.Body); err != nil {
			return nil, err
		}
	case om.AttributionType:
		atp := &omxml.Element{Space: omxml.Namespace, Name: omxml.TagAttrPairs}
		for _, p := range n.Pairs {
			if err := appendChild(atp, p.Key); err != nil {
				return nil, err
			}
			if err := appendChild(atp, p.Value); err != nil {
				return nil, err
			}
		}
		el.Children = append(el.Children, atp)
		if err := appendChild(el, n.Body); err != nil {
			return nil, err
		}
	}
	return el, nil
}

func appendChild(el *omxml.Element, n *om.Node) error {
	c, err := element(n)
	if err != nil {
		return err
	}
	el.Children = append(el.Children, c)
	return nil
}

// formatFloat renders f in a form ParseFloat reads back losslessly.
// Exponent plus signs are stripped from the wire text.
func formatFloat(f float64) string {
	return strings.ReplaceAll(strconv.FormatFloat(f, 'g', -1, 64), "+", "")
}
