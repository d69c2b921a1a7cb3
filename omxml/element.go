package omxml

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Attr is a single XML attribute. Order is significant and preserved.
type Attr struct {
	Name  string
	Value string
}

// Element is the structured form of the OpenMath XML encoding: a
// document tree that both the byte serialization and the decoder
// operate on. Name is the local element name; Space is the resolved
// namespace (empty for elements built programmatically).
type Element struct {
	Space    string
	Name     string
	Attrs    []Attr
	Text     string
	Children []*Element
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// SetAttr appends an attribute.
func (e *Element) SetAttr(name, value string) {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
}

// WriteState controls serialization. Indent 0 produces the compact
// wire form; a positive Indent produces one element per line. Colors,
// when non-nil, wraps output in terminal escape codes.
type WriteState struct {
	Indent int
	Colors *Colors

	depth int
}

// Bytes serializes the element as a UTF-8 XML fragment, declaring the
// OpenMath namespace on the root element.
func (e *Element) Bytes(ws *WriteState) []byte {
	if ws == nil {
		ws = &WriteState{}
	}
	var buf bytes.Buffer
	e.write(&buf, ws, true)
	return buf.Bytes()
}

// WriteTo serializes the element to w.
func (e *Element) WriteTo(w io.Writer, ws *WriteState) error {
	_, err := w.Write(e.Bytes(ws))
	return err
}

func (e *Element) write(buf *bytes.Buffer, ws *WriteState, root bool) {
	colorize := func(a ColorAttr, s string) string {
		if ws.Colors == nil {
			return s
		}
		return ws.Colors.Color(a, s)
	}

	buf.WriteString(colorize(SepColor, "<"))
	buf.WriteString(colorize(TagColor, e.Name))
	if root {
		writeAttr(buf, ws, "xmlns", Namespace)
	}
	for _, a := range e.Attrs {
		writeAttr(buf, ws, a.Name, a.Value)
	}
	if e.Text == "" && len(e.Children) == 0 {
		buf.WriteString(colorize(SepColor, "/>"))
		return
	}
	buf.WriteString(colorize(SepColor, ">"))
	if e.Text != "" {
		buf.WriteString(colorize(ValueColor, escape(e.Text)))
	}
	for _, c := range e.Children {
		if ws.Indent > 0 {
			buf.WriteByte('\n')
			buf.WriteString(strings.Repeat(" ", ws.Indent*(ws.depth+1)))
		}
		ws.depth++
		c.write(buf, ws, false)
		ws.depth--
	}
	if len(e.Children) > 0 && ws.Indent > 0 {
		buf.WriteByte('\n')
		buf.WriteString(strings.Repeat(" ", ws.Indent*ws.depth))
	}
	buf.WriteString(colorize(SepColor, "</"))
	buf.WriteString(colorize(TagColor, e.Name))
	buf.WriteString(colorize(SepColor, ">"))
}

func writeAttr(buf *bytes.Buffer, ws *WriteState, name, value string) {
	colorize := func(a ColorAttr, s string) string {
		if ws.Colors == nil {
			return s
		}
		return ws.Colors.Color(a, s)
	}
	buf.WriteByte(' ')
	buf.WriteString(colorize(AttrColor, name))
	buf.WriteString(colorize(SepColor, `="`))
	buf.WriteString(colorize(ValueColor, escape(value)))
	buf.WriteString(colorize(SepColor, `"`))
}

func escape(s string) string {
	var buf bytes.Buffer
	// EscapeText cannot fail on a bytes.Buffer
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

// ParseBytes tokenizes d into an Element tree. It reports malformed
// XML but performs no OpenMath-level validation; that is the decoder's
// job.
func ParseBytes(d []byte) (*Element, error) {
	dec := xml.NewDecoder(bytes.NewReader(d))
	var (
		root  *Element
		stack []*Element
	)
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Element{Space: t.Name.Space, Name: t.Name.Local}
			for _, a := range t.Attr {
				if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
					continue
				}
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.New("multiple root elements")
				}
				root = el
			} else {
				p := stack[len(stack)-1]
				p.Children = append(p.Children, el)
			}
			stack = append(stack, el)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		case xml.CharData:
			if len(stack) > 0 {
				stack[len(stack)-1].Text += string(t)
			} else if strings.TrimSpace(string(t)) != "" {
				return nil, fmt.Errorf("text outside of root element")
			}
		}
	}
	if root == nil {
		return nil, errors.New("empty document")
	}
	return root, nil
}
