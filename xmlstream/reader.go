package xmlstream

import (
	"bytes"
	"encoding/xml"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
)

var cdataPrefix = []byte("<![CDATA[")

// Reader is a forward-only pull cursor over an XML document. It holds a
// single event of lookahead.
//
// A Reader must not be shared between goroutines. Code that receives a
// Reader in a callback must leave it positioned on the end of the element
// it was handed.
type Reader struct {
	dec *xml.Decoder
	rec *recorder

	cur    Event
	peeked *Event
	err    error
}

// ReaderOption configures a Reader.
type ReaderOption func(*Reader)

// NonStrict puts the underlying decoder in non-strict mode: unknown
// entities and unquoted attribute values are tolerated. Elements are never
// closed implicitly, so KML's Link is not mistaken for HTML's void link.
func NonStrict() ReaderOption {
	return func(r *Reader) {
		r.dec.Strict = false
		r.dec.Entity = xml.HTMLEntity
	}
}

// NewReader returns a Reader consuming r. Documents declaring an encoding
// other than UTF-8 are transcoded on the fly.
func NewReader(r io.Reader, opts ...ReaderOption) *Reader {
	rec := newRecorder(r)
	dec := xml.NewDecoder(rec)
	dec.CharsetReader = rec.charsetReader
	rd := &Reader{dec: dec, rec: rec}
	for _, opt := range opts {
		opt(rd)
	}
	return rd
}

// Current returns the event most recently returned by Next.
func (r *Reader) Current() Event { return r.cur }

// Pos returns the line and column of the current event.
func (r *Reader) Pos() (line, column int) { return r.cur.Line, r.cur.Column }

// Next advances the cursor and returns the new current event. Comments,
// processing instructions and directives are skipped. At the end of input
// it returns an event of kind EOF and a nil error.
func (r *Reader) Next() (Event, error) {
	if r.peeked != nil {
		r.cur = *r.peeked
		r.peeked = nil
		return r.cur, nil
	}
	ev, err := r.read()
	if err != nil {
		return Event{}, err
	}
	r.cur = ev
	return ev, nil
}

// Peek returns the kind of the event Next would return, without
// consuming it.
func (r *Reader) Peek() (Kind, error) {
	if r.peeked == nil {
		ev, err := r.read()
		if err != nil {
			return "", err
		}
		r.peeked = &ev
	}
	return r.peeked.Kind, nil
}

func (r *Reader) read() (Event, error) {
	if r.err != nil {
		return Event{}, r.err
	}
	for {
		line, col := r.dec.InputPos()
		start := r.dec.InputOffset()
		tok, err := r.dec.Token()
		if err == io.EOF {
			return Event{Kind: EOF, Line: line, Column: col}, nil
		}
		if err != nil {
			r.err = errors.Wrapf(err, "xmlstream: line %d, column %d", line, col)
			return Event{}, r.err
		}
		end := r.dec.InputOffset()
		raw := r.rec.span(start, end)
		r.rec.discard(end)

		ev := Event{Line: line, Column: col}
		switch t := tok.(type) {
		case xml.StartElement:
			ev.Kind = StartElement
			ev.Name = t.Name
			ev.Attr = t.Attr
		case xml.EndElement:
			ev.Kind = EndElement
			ev.Name = t.Name
		case xml.CharData:
			ev.Kind = CharData
			if bytes.HasPrefix(raw, cdataPrefix) {
				ev.Kind = CData
			}
			ev.Text = string(t)
		default:
			// comments, processing instructions, directives
			continue
		}
		return ev, nil
	}
}

// Skip consumes the remainder of the element whose start is the current
// event, leaving the cursor on its end.
func (r *Reader) Skip() error {
	if r.cur.Kind != StartElement {
		return errors.Newf("xmlstream: Skip called on %s", r.cur.Kind)
	}
	depth := 1
	for depth > 0 {
		ev, err := r.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case StartElement:
			depth++
		case EndElement:
			depth--
		case EOF:
			return errors.Wrap(io.ErrUnexpectedEOF, "xmlstream: skipping element")
		}
	}
	return nil
}

// ElementText consumes a text-only element whose start is the current
// event and returns its content. The result is marked CDATA when the
// content was written as a CDATA section; whitespace surrounding such a
// section is dropped.
func (r *Reader) ElementText() (Text, error) {
	if r.cur.Kind != StartElement {
		return Text{}, errors.Newf("xmlstream: ElementText called on %s", r.cur.Kind)
	}
	name := r.cur.Name
	var plain, cdata strings.Builder
	sawCDATA := false
	for {
		ev, err := r.Next()
		if err != nil {
			return Text{}, err
		}
		switch ev.Kind {
		case CharData:
			plain.WriteString(ev.Text)
			cdata.WriteString(ev.Text)
		case CData:
			sawCDATA = true
			cdata.WriteString(ev.Text)
		case StartElement:
			return Text{}, errors.Newf("xmlstream: line %d, column %d: unexpected element <%s> inside text element <%s>",
				ev.Line, ev.Column, ev.Name.Local, name.Local)
		case EndElement:
			if !sawCDATA {
				return Text{Value: plain.String()}, nil
			}
			if strings.TrimSpace(plain.String()) == "" {
				return Text{Value: strings.TrimSpace(cdata.String()), CDATA: true}, nil
			}
			return Text{Value: cdata.String(), CDATA: true}, nil
		case EOF:
			return Text{}, errors.Wrapf(io.ErrUnexpectedEOF, "xmlstream: reading text of <%s>", name.Local)
		}
	}
}

// ReadElement consumes the element whose start is the current event and
// returns it as a generic tree.
func (r *Reader) ReadElement() (*Element, error) {
	if r.cur.Kind != StartElement {
		return nil, errors.Newf("xmlstream: ReadElement called on %s", r.cur.Kind)
	}
	el := &Element{Name: r.cur.Name}
	for _, a := range r.cur.Attr {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		el.Attr = append(el.Attr, a)
	}
	var text strings.Builder
	for {
		ev, err := r.Next()
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case CharData:
			text.WriteString(ev.Text)
		case CData:
			el.Text.CDATA = true
			text.WriteString(ev.Text)
		case StartElement:
			child, err := r.ReadElement()
			if err != nil {
				return nil, err
			}
			el.Children = append(el.Children, child)
		case EndElement:
			el.Text.Value = text.String()
			if len(el.Children) > 0 && strings.TrimSpace(el.Text.Value) == "" {
				el.Text = Text{}
			}
			return el, nil
		case EOF:
			return nil, errors.Wrapf(io.ErrUnexpectedEOF, "xmlstream: reading element <%s>", el.Name.Local)
		}
	}
}
