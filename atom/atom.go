// Package atom reads and writes the subset of the Atom syndication format
// that KML 2.2 embeds in features: atom:author and atom:link.
package atom

import (
	"github.com/cockroachdb/errors"

	"github.com/KimNorgaard/go-kml/xmlstream"
)

// Namespace is the Atom namespace URI.
const Namespace = "http://www.w3.org/2005/Atom"

// Prefix is the preferred prefix for Namespace.
const Prefix = "atom"

// Author is an atom:author person construct.
type Author struct {
	Names  []string
	URIs   []string
	Emails []string
}

// Link is an atom:link element.
type Link struct {
	Href     string
	Rel      string
	Type     string
	HrefLang string
	Title    string
	Length   string
}

// ReadAuthor reads an atom:author element. The reader must be positioned
// on its start; it is left on its end.
func ReadAuthor(r *xmlstream.Reader) (*Author, error) {
	start := r.Current()
	if !start.IsStart(Namespace, "author") {
		return nil, errors.Newf("atom: expected author, got %s %q", start.Kind, start.Name.Local)
	}
	a := &Author{}
	for {
		ev, err := r.Next()
		if err != nil {
			return nil, err
		}
		switch ev.Kind {
		case xmlstream.StartElement:
			if ev.Name.Space != Namespace {
				if err := r.Skip(); err != nil {
					return nil, err
				}
				continue
			}
			switch ev.Name.Local {
			case "name", "uri", "email":
				t, err := r.ElementText()
				if err != nil {
					return nil, err
				}
				switch ev.Name.Local {
				case "name":
					a.Names = append(a.Names, t.Value)
				case "uri":
					a.URIs = append(a.URIs, t.Value)
				default:
					a.Emails = append(a.Emails, t.Value)
				}
			default:
				if err := r.Skip(); err != nil {
					return nil, err
				}
			}
		case xmlstream.EndElement:
			if ev.Name.Space == Namespace && ev.Name.Local == "author" {
				return a, nil
			}
		case xmlstream.EOF:
			return nil, errors.New("atom: unexpected end of input in author")
		}
	}
}

// WriteAuthor writes a as an atom:author element.
func WriteAuthor(w *xmlstream.Writer, a *Author) error {
	if err := w.StartElement(Namespace, "author"); err != nil {
		return err
	}
	for _, n := range a.Names {
		if err := w.TextElement(Namespace, "name", xmlstream.PlainText(n)); err != nil {
			return err
		}
	}
	for _, u := range a.URIs {
		if err := w.TextElement(Namespace, "uri", xmlstream.PlainText(u)); err != nil {
			return err
		}
	}
	for _, e := range a.Emails {
		if err := w.TextElement(Namespace, "email", xmlstream.PlainText(e)); err != nil {
			return err
		}
	}
	return w.EndElement()
}

// ReadLink reads an atom:link element. The reader must be positioned on
// its start; it is left on its end.
func ReadLink(r *xmlstream.Reader) (*Link, error) {
	start := r.Current()
	if !start.IsStart(Namespace, "link") {
		return nil, errors.Newf("atom: expected link, got %s %q", start.Kind, start.Name.Local)
	}
	l := &Link{}
	l.Href, _ = start.Attribute("href")
	l.Rel, _ = start.Attribute("rel")
	l.Type, _ = start.Attribute("type")
	l.HrefLang, _ = start.Attribute("hreflang")
	l.Title, _ = start.Attribute("title")
	l.Length, _ = start.Attribute("length")
	if err := r.Skip(); err != nil {
		return nil, err
	}
	return l, nil
}

// WriteLink writes l as an atom:link element.
func WriteLink(w *xmlstream.Writer, l *Link) error {
	if err := w.StartElement(Namespace, "link"); err != nil {
		return err
	}
	attrs := []struct{ name, value string }{
		{"href", l.Href},
		{"rel", l.Rel},
		{"type", l.Type},
		{"hreflang", l.HrefLang},
		{"title", l.Title},
		{"length", l.Length},
	}
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		if err := w.Attr("", a.name, a.value); err != nil {
			return err
		}
	}
	return w.EndElement()
}
