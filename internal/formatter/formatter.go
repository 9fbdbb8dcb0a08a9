package formatter

import (
	"io"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/KimNorgaard/go-kml/xmlstream"
)

const (
	defaultIndent = 2
)

// Formatter rewrites an XML document with one element per line, nested
// elements indented below their parent. Text-only elements stay on one
// line so their content is not changed.
type Formatter struct {
	w      *xmlstream.Writer
	indent string
	depth  int
}

// New returns a new formatter that writes to w.
func New(w io.Writer, indentSpaces *int) *Formatter {
	spaces := defaultIndent
	if indentSpaces != nil {
		spaces = *indentSpaces
	}
	var indentStr string
	if spaces > 0 {
		indentStr = strings.Repeat(" ", spaces)
	}
	return &Formatter{w: xmlstream.NewWriter(w), indent: indentStr}
}

// Format reads the document from r and writes it indented. Namespace
// declarations on the root element keep their prefixes.
func (f *Formatter) Format(r io.Reader) error {
	xr := xmlstream.NewReader(r)
	var root xmlstream.Event
	for root.Kind != xmlstream.StartElement {
		ev, err := xr.Next()
		if err != nil {
			return err
		}
		if ev.Kind == xmlstream.EOF {
			return errors.New("formatter: no root element")
		}
		root = ev
	}
	for _, a := range root.Attr {
		switch {
		case a.Name.Space == "xmlns":
			f.w.Bind(a.Value, a.Name.Local)
		case a.Name.Space == "" && a.Name.Local == "xmlns":
			f.w.Bind(a.Value, "")
		}
	}
	el, err := xr.ReadElement()
	if err != nil {
		return err
	}
	if err := f.w.StartDocument(); err != nil {
		return err
	}
	if err := f.writeNode(el); err != nil {
		return err
	}
	return f.w.EndDocument()
}

func (f *Formatter) writeIndent() error {
	if f.indent == "" {
		return nil
	}
	return f.w.Text(xmlstream.PlainText("\n" + strings.Repeat(f.indent, f.depth)))
}

func (f *Formatter) writeNode(el *xmlstream.Element) error {
	if err := f.w.StartElement(el.Name.Space, el.Name.Local); err != nil {
		return err
	}
	for _, a := range el.Attr {
		if err := f.w.Attr(a.Name.Space, a.Name.Local, a.Value); err != nil {
			return err
		}
	}
	if len(el.Children) > 0 {
		f.depth++
		for _, c := range el.Children {
			if err := f.writeIndent(); err != nil {
				return err
			}
			if err := f.writeNode(c); err != nil {
				return err
			}
		}
		f.depth--
		if err := f.writeIndent(); err != nil {
			return err
		}
	}
	if el.Text.Value != "" {
		if err := f.w.Text(el.Text); err != nil {
			return err
		}
	}
	return f.w.EndElement()
}
