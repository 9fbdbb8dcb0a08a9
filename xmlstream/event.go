package xmlstream

import "encoding/xml"

// Kind is the kind of an event.
type Kind string

const (
	// Special events
	EOF Kind = "EOF" // End of input

	// Structure
	StartElement Kind = "START_ELEMENT" // <name attr="v">
	EndElement   Kind = "END_ELEMENT"   // </name>

	// Content
	CharData Kind = "CHARACTERS" // escaped text
	CData    Kind = "CDATA"      // <![CDATA[ ... ]]>
)

// Event is a single item pulled from a Reader.
type Event struct {
	Kind Kind
	Name xml.Name   // StartElement and EndElement only
	Attr []xml.Attr // StartElement only
	Text string     // CharData and CData only

	Line   int
	Column int
}

// IsStart reports whether e is the start of an element with the given
// namespace and local name.
func (e Event) IsStart(namespace, local string) bool {
	return e.Kind == StartElement && e.Name.Space == namespace && e.Name.Local == local
}

// Attribute returns the value of the attribute with the given local name,
// ignoring its namespace.
func (e Event) Attribute(local string) (string, bool) {
	for _, a := range e.Attr {
		if a.Name.Local == local && a.Name.Space != "xmlns" {
			return a.Value, true
		}
	}
	return "", false
}

// Text is character content together with the way it was encoded, so
// that CDATA sections survive a read/write cycle.
type Text struct {
	Value string
	CDATA bool
}

// PlainText returns s as non-CDATA text.
func PlainText(s string) Text { return Text{Value: s} }

// IsZero reports whether t carries no content.
func (t Text) IsZero() bool { return t.Value == "" }

func (t Text) String() string { return t.Value }
