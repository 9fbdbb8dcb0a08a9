package kml

import (
	"bytes"
	"image/color"
	"io"
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/KimNorgaard/go-kml/atom"
	"github.com/KimNorgaard/go-kml/internal/formatter"
	"github.com/KimNorgaard/go-kml/xal"
	"github.com/KimNorgaard/go-kml/xmlstream"
)

// Encoder writes KML documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes doc to the stream.
//
// Elements are written in schema order. A field equal to its default is
// not written. Extension values are handed to the registered extension
// writers at the point of the inheritance chain their level names.
func (enc *Encoder) Encode(doc *KML) error {
	if doc == nil {
		return errors.New("kml: Encode(nil document)")
	}
	o, err := newOptions(enc.opts)
	if err != nil {
		return err
	}
	v := o.version
	if v == "" {
		v = doc.Version
	}
	if v == "" {
		v = DefaultVersion
	}
	if !v.Known() {
		return &UnknownNamespaceError{Namespace: string(v)}
	}
	if o.indent != nil {
		var buf bytes.Buffer
		if err := enc.encode(&buf, doc, o, v); err != nil {
			return err
		}
		return formatter.New(enc.w, o.indent).Format(&buf)
	}
	return enc.encode(enc.w, doc, o, v)
}

func (enc *Encoder) encode(w io.Writer, doc *KML, o *options, v Version) error {
	e := &encodeState{
		w:    xmlstream.NewWriter(w),
		o:    o,
		gate: gate{version: v},
		ns:   v.Namespace(),
		log:  o.log.WithField("version", v.Short()),
	}
	e.w.OnGenerate(func(namespace, prefix string) {
		e.log.WithFields(logrus.Fields{"namespace": namespace, "prefix": prefix}).Debug("kml: generated namespace prefix")
	})
	e.bind(doc)
	if e.err = e.w.StartDocument(); e.err != nil {
		return e.err
	}
	e.kml(doc)
	if e.err != nil {
		return e.err
	}
	return e.w.EndDocument()
}

// encodeState is one write session. The first error stops all further
// output and is returned by Encode.
type encodeState struct {
	w    *xmlstream.Writer
	o    *options
	gate gate
	ns   string
	log  logrus.FieldLogger
	err  error
}

// bind assigns the prefixes declared on the root element: the KML
// namespace as the default namespace, then caller bindings, the embedded
// languages, the document's own extension prefixes and those extensions
// ask for.
func (e *encodeState) bind(doc *KML) {
	e.w.Bind(e.ns, "")
	used := map[string]bool{"": true}
	bind := func(namespace, prefix string) {
		if namespace == "" || prefix == "" || used[prefix] || e.w.Bound(namespace) {
			return
		}
		used[prefix] = true
		e.w.Bind(namespace, prefix)
	}
	bindAll := func(m map[string]string) {
		namespaces := make([]string, 0, len(m))
		for ns := range m {
			namespaces = append(namespaces, ns)
		}
		sort.Strings(namespaces)
		for _, ns := range namespaces {
			bind(ns, m[ns])
		}
	}
	bindAll(e.o.prefixes)
	if e.gate.oneOf(v22...) {
		bind(atom.Namespace, atom.Prefix)
		bind(xal.Namespace, xal.Prefix)
	}
	bindAll(doc.ExtensionPrefixes)
	for _, n := range e.o.extensions.spaces {
		bindAll(n.Namespaces())
	}
}

func (e *encodeState) kml(doc *KML) {
	e.start("kml", nil)
	if doc.Hint != "" {
		e.attr("hint", doc.Hint)
	}
	if doc.NetworkLinkControl != nil {
		e.networkLinkControl(doc.NetworkLinkControl)
	}
	if doc.Feature != nil {
		e.feature(doc.Feature)
	}
	e.flush(&doc.Extensions, LevelKML)
	e.end()
}

// start opens a core element and writes its identity attributes.
func (e *encodeState) start(local string, ids *IDAttributes) {
	if e.err != nil {
		return
	}
	e.err = e.w.StartElement(e.ns, local)
	if ids == nil {
		return
	}
	if ids.ID != "" {
		e.attr("id", ids.ID)
	}
	if ids.TargetID != "" {
		e.attr("targetId", ids.TargetID)
	}
}

func (e *encodeState) attr(local, value string) {
	if e.err == nil {
		e.err = e.w.Attr("", local, value)
	}
}

func (e *encodeState) end() {
	if e.err == nil {
		e.err = e.w.EndElement()
	}
}

// flush writes the extension values of x at level l, simple values first.
func (e *encodeState) flush(x *Extensions, l Level) {
	if e.err != nil {
		return
	}
	for _, v := range x.Simple[l] {
		if e.err = e.o.extensions.writeSimple(e.w, e.gate.version, l, v); e.err != nil {
			return
		}
	}
	for _, v := range x.Complex[l] {
		if e.err = e.o.extensions.writeComplex(e.w, e.gate.version, l, v); e.err != nil {
			return
		}
	}
}

// substitute writes an extension value standing in for a core element.
func (e *encodeState) substitute(v any) {
	if e.err == nil {
		e.err = e.o.extensions.writeComplex(e.w, e.gate.version, LevelNone, v)
	}
}

// licensed reports whether element may be written under the active
// version, failing the session when it may not.
func (e *encodeState) licensed(element string, vs ...Version) bool {
	if e.err != nil {
		return false
	}
	if e.gate.oneOf(vs...) {
		return true
	}
	e.err = &VersionError{Element: element, Version: e.gate.version}
	return false
}

// text writes a text element unconditionally.
func (e *encodeState) text(local string, t Text) {
	if e.err == nil {
		e.err = e.w.TextElement(e.ns, local, t)
	}
}

// optText writes a text element unless t is empty.
func (e *encodeState) optText(local string, t Text) {
	if !t.IsZero() {
		e.text(local, t)
	}
}

func (e *encodeState) str(local, s string) {
	if s != "" {
		e.text(local, PlainText(s))
	}
}

func (e *encodeState) boolean(local string, v, def bool) {
	if v != def {
		e.text(local, PlainText(formatBool(v)))
	}
}

func (e *encodeState) double(local string, v, def float64) {
	if v != def {
		e.text(local, PlainText(formatFloat(v)))
	}
}

func (e *encodeState) integer(local string, v, def int) {
	if v != def {
		e.double(local, float64(v), float64(def))
	}
}

func (e *encodeState) color(local string, c, def color.NRGBA) {
	if c != def {
		e.text(local, PlainText(FormatColor(c)))
	}
}

func (e *encodeState) dateTime(local string, t DateTime) {
	if !t.IsZero() {
		e.text(local, PlainText(t.String()))
	}
}

func (e *encodeState) coordinates(cs Coordinates) {
	if len(cs) > 0 {
		e.text("coordinates", PlainText(cs.String()))
	}
}

// encodeEnum writes an enumeration unless it is the zero value, which is
// always the schema default.
func encodeEnum[E interface {
	~int
	String() string
}](e *encodeState, local string, v E) {
	if v != 0 {
		e.text(local, PlainText(v.String()))
	}
}

// vec2 writes v as attributes of an empty element. Attributes equal to the
// defaults of NewVec2 are left out.
func (e *encodeState) vec2(local string, v *Vec2) {
	if v == nil {
		return
	}
	e.start(local, nil)
	if v.X != 1 {
		e.attr("x", formatFloat(v.X))
	}
	if v.Y != 1 {
		e.attr("y", formatFloat(v.Y))
	}
	if v.XUnits != UnitsFraction {
		e.attr("xunits", v.XUnits.String())
	}
	if v.YUnits != UnitsFraction {
		e.attr("yunits", v.YUnits.String())
	}
	e.end()
}

func (e *encodeState) snippet(local string, s *Snippet) {
	if s == nil {
		return
	}
	e.start(local, nil)
	if s.MaxLines != 2 {
		e.attr("maxLines", formatFloat(float64(s.MaxLines)))
	}
	if e.err == nil && !s.Text.IsZero() {
		e.err = e.w.Text(s.Text)
	}
	e.end()
}

// raw writes a generic element tree under the core namespace.
func (e *encodeState) raw(local string, el *xmlstream.Element) {
	if e.err != nil || el == nil {
		return
	}
	cp := *el
	cp.Name.Space, cp.Name.Local = e.ns, local
	e.err = e.w.WriteElement(&cp)
}

func joinStates(states []ItemIconState) string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	return strings.Join(names, " ")
}
