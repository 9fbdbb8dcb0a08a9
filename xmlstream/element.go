package xmlstream

import "encoding/xml"

// Element is a generic XML element tree. It carries content the engines
// do not model, such as foreign-namespace extensions or KML 2.1 Metadata.
type Element struct {
	Name     xml.Name
	Attr     []xml.Attr
	Text     Text
	Children []*Element
}

// IsSimple reports whether e holds text only.
func (e *Element) IsSimple() bool {
	return len(e.Attr) == 0 && len(e.Children) == 0
}

// Child returns the first child with the given local name, or nil.
func (e *Element) Child(local string) *Element {
	for _, c := range e.Children {
		if c.Name.Local == local {
			return c
		}
	}
	return nil
}
