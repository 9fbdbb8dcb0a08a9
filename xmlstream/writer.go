package xmlstream

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/shabbyrobe/xmlwriter"
)

// Writer is a push-style XML emitter with namespace prefix management.
//
// Namespaces bound with Bind before the root element starts are declared
// on the root. A namespace seen later without a binding gets a generated
// prefix (ns0, ns1, ...) that is reused for the rest of the document and
// declared on each element that needs it. Prefix state belongs to the
// Writer, so two documents never share generated prefixes.
type Writer struct {
	xw *xmlwriter.Writer

	prefixes map[string]string // namespace -> prefix, "" is the default namespace
	declared map[string]bool   // namespaces declared on the root element
	local    map[string]bool   // namespaces declared on the open element
	defaults []string          // default namespace in scope, per open element
	depth    int
	next     int

	onGenerate func(namespace, prefix string)
}

// NewWriter returns a Writer emitting to w. Call EndDocument to flush.
func NewWriter(w io.Writer) *Writer {
	return &Writer{
		xw:       xmlwriter.Open(w),
		prefixes: make(map[string]string),
		declared: make(map[string]bool),
	}
}

// Bind sets the preferred prefix for namespace. An empty prefix makes it
// the default namespace. Bindings made after the root element has started
// are used but not declared on the root.
func (w *Writer) Bind(namespace, prefix string) {
	if namespace == "" {
		return
	}
	if _, ok := w.prefixes[namespace]; ok {
		return
	}
	w.prefixes[namespace] = prefix
}

// Prefix returns the prefix bound to namespace, generating one when the
// namespace has no binding yet.
func (w *Writer) Prefix(namespace string) string {
	if p, ok := w.prefixes[namespace]; ok {
		return p
	}
	var p string
	for p == "" || w.taken(p) {
		p = fmt.Sprintf("ns%d", w.next)
		w.next++
	}
	w.prefixes[namespace] = p
	if w.onGenerate != nil {
		w.onGenerate(namespace, p)
	}
	return p
}

func (w *Writer) taken(prefix string) bool {
	for _, p := range w.prefixes {
		if p == prefix {
			return true
		}
	}
	return false
}

// OnGenerate registers fn to be called whenever Prefix generates a prefix.
func (w *Writer) OnGenerate(fn func(namespace, prefix string)) {
	w.onGenerate = fn
}

// Bound reports whether namespace already has a prefix.
func (w *Writer) Bound(namespace string) bool {
	_, ok := w.prefixes[namespace]
	return ok
}

// StartDocument writes the XML declaration.
func (w *Writer) StartDocument() error {
	return errors.Wrap(w.xw.StartDoc(xmlwriter.Doc{}), "xmlstream: start document")
}

// EndDocument closes every open element and flushes the output.
func (w *Writer) EndDocument() error {
	return errors.Wrap(w.xw.EndAllFlush(), "xmlstream: end document")
}

// Flush writes buffered output.
func (w *Writer) Flush() error {
	return w.xw.Flush()
}

// StartElement opens an element. The first element written becomes the
// root and carries a declaration for every bound namespace. An element in
// no namespace below a default namespace gets xmlns="".
func (w *Writer) StartElement(namespace, local string) error {
	qname := w.qualify(namespace, local)
	if err := w.xw.StartElem(xmlwriter.Elem{Name: qname}); err != nil {
		return errors.Wrapf(err, "xmlstream: start <%s>", qname)
	}
	w.local = make(map[string]bool)
	var inScope string
	if w.depth == 0 {
		if err := w.declareAll(namespace); err != nil {
			return err
		}
		if w.prefixes[namespace] == "" {
			inScope = namespace
		}
	} else {
		inScope = w.defaults[len(w.defaults)-1]
	}
	if namespace == "" || w.prefixes[namespace] == "" {
		if namespace != inScope {
			if err := w.writeDecl(namespace); err != nil {
				return err
			}
			inScope = namespace
		}
	} else if err := w.declare(namespace); err != nil {
		return err
	}
	w.defaults = append(w.defaults, inScope)
	w.depth++
	return nil
}

// Attr writes an attribute on the element just started. Namespaced
// attributes are prefixed like elements.
func (w *Writer) Attr(namespace, local, value string) error {
	name := local
	if namespace != "" {
		p := w.Prefix(namespace)
		if p != "" {
			name = p + ":" + local
		}
		if err := w.declare(namespace); err != nil {
			return err
		}
	}
	return errors.Wrapf(w.xw.WriteAttr(xmlwriter.Attr{Name: name, Value: value}), "xmlstream: attribute %s", name)
}

// Text writes character content. CDATA text is written as a CDATA section
// unless its content cannot be represented as one.
func (w *Writer) Text(t Text) error {
	if t.CDATA && !strings.Contains(t.Value, "]]>") {
		return errors.Wrap(w.xw.Write(xmlwriter.CData{Content: t.Value}), "xmlstream: cdata")
	}
	return errors.Wrap(w.xw.Write(xmlwriter.Text(t.Value)), "xmlstream: text")
}

// EndElement closes the innermost open element.
func (w *Writer) EndElement() error {
	if w.depth == 0 {
		return errors.New("xmlstream: EndElement without open element")
	}
	w.depth--
	w.defaults = w.defaults[:w.depth]
	w.local = nil
	return errors.Wrap(w.xw.EndElem(), "xmlstream: end element")
}

// TextElement writes a complete text-only element.
func (w *Writer) TextElement(namespace, local string, t Text) error {
	if err := w.StartElement(namespace, local); err != nil {
		return err
	}
	if t.Value != "" {
		if err := w.Text(t); err != nil {
			return err
		}
	}
	return w.EndElement()
}

// WriteElement writes a generic element tree.
func (w *Writer) WriteElement(e *Element) error {
	if err := w.StartElement(e.Name.Space, e.Name.Local); err != nil {
		return err
	}
	for _, a := range e.Attr {
		if err := w.Attr(a.Name.Space, a.Name.Local, a.Value); err != nil {
			return err
		}
	}
	for _, c := range e.Children {
		if err := w.WriteElement(c); err != nil {
			return err
		}
	}
	if e.Text.Value != "" {
		if err := w.Text(e.Text); err != nil {
			return err
		}
	}
	return w.EndElement()
}

func (w *Writer) qualify(namespace, local string) string {
	if namespace == "" {
		return local
	}
	if p := w.Prefix(namespace); p != "" {
		return p + ":" + local
	}
	return local
}

// declareAll declares the bound namespaces on the root. A default
// namespace is only declared here if the root is in it.
func (w *Writer) declareAll(root string) error {
	namespaces := make([]string, 0, len(w.prefixes))
	for ns, p := range w.prefixes {
		if p == "" && ns != root {
			continue
		}
		namespaces = append(namespaces, ns)
	}
	// default namespace first, then by prefix
	sort.Slice(namespaces, func(i, j int) bool {
		return w.prefixes[namespaces[i]] < w.prefixes[namespaces[j]]
	})
	for _, ns := range namespaces {
		if err := w.writeDecl(ns); err != nil {
			return err
		}
		w.declared[ns] = true
	}
	return nil
}

func (w *Writer) declare(namespace string) error {
	if namespace == "" || w.prefixes[namespace] == "" || w.declared[namespace] || w.local[namespace] {
		return nil
	}
	return w.writeDecl(namespace)
}

func (w *Writer) writeDecl(namespace string) error {
	name := "xmlns"
	if p := w.prefixes[namespace]; p != "" {
		name = "xmlns:" + p
	}
	if w.local != nil {
		w.local[namespace] = true
	}
	return errors.Wrapf(w.xw.WriteAttr(xmlwriter.Attr{Name: name, Value: namespace}), "xmlstream: declare %s", namespace)
}
