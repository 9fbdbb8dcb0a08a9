package kml

import (
	"encoding/xml"
	"image/color"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"

	"github.com/KimNorgaard/go-kml/atom"
	"github.com/KimNorgaard/go-kml/xal"
	"github.com/KimNorgaard/go-kml/xmlstream"
)

// Decoder reads KML documents from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder buffers data from r as necessary. It is the caller's
// responsibility to call Close on r if required.
//
// Functional options configure the decoding process, such as Lenient or
// WithExtensions.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads one KML document from its input.
//
// The version of the document is taken from the namespace of its root
// element. Elements are read in a single forward pass; the result is
// complete or Decode returns an error.
func (dec *Decoder) Decode() (*KML, error) {
	if dec.r == nil {
		return nil, errors.New("kml: Decode(nil reader)")
	}
	o, err := newOptions(dec.opts)
	if err != nil {
		return nil, err
	}
	var ropts []xmlstream.ReaderOption
	if o.lenient {
		ropts = append(ropts, xmlstream.NonStrict())
	}
	d := &decodeState{
		r:   xmlstream.NewReader(dec.r, ropts...),
		o:   o,
		log: o.log,
	}
	return d.kml()
}

// decodeState is one read session. The active version is fixed when the
// root element is read and used for the rest of the document.
type decodeState struct {
	r     *xmlstream.Reader
	o     *options
	gate  gate
	depth int
	log   logrus.FieldLogger
}

// frame is one recursive read of an element. It ends at the end element
// named stop.
type frame struct {
	stop string

	// child reads a child element and reports whether it knew it. The key
	// is the local name for core elements and "atom:name" or "xal:name"
	// for the embedded languages.
	child func(key string) (bool, error)

	// ext receives extension values at one of levels. Nil when the
	// element takes no extensions.
	ext    *Extensions
	levels []Level

	// sub receives extension values that stand in for a core element.
	sub func(v any) bool
}

func (d *decodeState) kml() (*KML, error) {
	start, err := d.rootElement()
	if err != nil {
		return nil, err
	}
	v := Version(start.Name.Space)
	if !v.Known() {
		if !d.o.lenient {
			return nil, d.located(&UnknownNamespaceError{Namespace: start.Name.Space})
		}
		d.log.WithField("namespace", start.Name.Space).Debug("kml: unrecognized root namespace, reading as KML 2.2")
		v = DefaultVersion
	}
	d.gate = gate{version: v, lenient: d.o.lenient}
	d.log = d.log.WithField("version", v.Short())
	d.log.Debug("kml: reading document")

	doc := &KML{Version: v}
	if start.Name.Local != "kml" {
		if !d.o.lenient {
			return nil, d.located(&UnexpectedElementError{Name: start.Name, Parent: "document"})
		}
		f, ok, err := d.feature(start.Name.Local)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, d.located(&UnexpectedElementError{Name: start.Name, Parent: "document"})
		}
		doc.Feature = f
		return doc, nil
	}

	doc.Hint, _ = start.Attribute("hint")
	doc.ExtensionPrefixes = d.extensionPrefixes(start.Attr)
	err = d.frame(frame{
		stop:   "kml",
		ext:    &doc.Extensions,
		levels: []Level{LevelKML},
		sub: func(v any) bool {
			doc.Feature = &ExtensionFeature{Value: v}
			return true
		},
		child: func(key string) (bool, error) {
			if key == "NetworkLinkControl" {
				var err error
				doc.NetworkLinkControl, err = d.networkLinkControl()
				return true, err
			}
			f, ok, err := d.feature(key)
			if f != nil {
				doc.Feature = f
			}
			return ok, err
		},
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// rootElement advances to the first element of the document.
func (d *decodeState) rootElement() (xmlstream.Event, error) {
	for {
		ev, err := d.r.Next()
		if err != nil {
			return ev, err
		}
		switch ev.Kind {
		case xmlstream.StartElement:
			return ev, nil
		case xmlstream.EOF:
			return ev, errors.New("kml: no root element")
		}
	}
}

// extensionPrefixes returns the namespace declarations of the root that
// belong to neither KML nor its embedded languages. Declarations the
// session would write itself, from Prefix options or registered
// extensions, are not document state and are left out.
func (d *decodeState) extensionPrefixes(attrs []xml.Attr) map[string]string {
	supplied := make(map[string]string, len(d.o.prefixes))
	for ns, p := range d.o.prefixes {
		supplied[ns] = p
	}
	for _, n := range d.o.extensions.spaces {
		for ns, p := range n.Namespaces() {
			if _, ok := supplied[ns]; !ok {
				supplied[ns] = p
			}
		}
	}
	var m map[string]string
	for _, a := range attrs {
		if a.Name.Space != "xmlns" {
			continue
		}
		switch a.Value {
		case atom.Namespace, xal.Namespace:
			continue
		}
		if Version(a.Value).Known() {
			continue
		}
		if p, ok := supplied[a.Value]; ok && p == a.Name.Local {
			continue
		}
		if m == nil {
			m = make(map[string]string)
		}
		m[a.Value] = a.Name.Local
	}
	return m
}

// frame reads the children of the element under the cursor until its end.
func (d *decodeState) frame(f frame) error {
	d.depth++
	defer func() { d.depth-- }()
	if d.depth > d.o.maxDepth {
		return ErrMaxDepth
	}
	for {
		ev, err := d.r.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case xmlstream.StartElement:
			if err := d.element(f, ev.Name); err != nil {
				return err
			}
		case xmlstream.EndElement:
			if ev.Name.Local == f.stop && d.gate.core(ev.Name.Space) {
				return nil
			}
		case xmlstream.EOF:
			return d.located(errors.Wrapf(io.ErrUnexpectedEOF, "kml: reading %s", f.stop))
		}
	}
}

// element dispatches one child element of f.
func (d *decodeState) element(f frame, name xml.Name) error {
	switch name.Space {
	case atom.Namespace:
		return d.core(f, name, "atom:"+name.Local)
	case xal.Namespace:
		return d.core(f, name, "xal:"+name.Local)
	case d.gate.version.Namespace():
		return d.core(f, name, name.Local)
	}
	if er, isComplex := d.o.extensions.reader(d.gate.version, f.stop, name); er != nil {
		return d.extension(f, er, isComplex, name)
	}
	if d.gate.lenient {
		return d.core(f, name, name.Local)
	}
	return d.unexpected(f, name)
}

func (d *decodeState) core(f frame, name xml.Name, key string) error {
	ok, err := f.child(key)
	if err != nil {
		return err
	}
	if !ok {
		return d.unexpected(f, name)
	}
	return nil
}

func (d *decodeState) unexpected(f frame, name xml.Name) error {
	if d.o.strict {
		return d.located(&UnexpectedElementError{Name: name, Parent: f.stop})
	}
	d.log.WithFields(logrus.Fields{
		"element":   name.Local,
		"namespace": name.Space,
		"parent":    f.stop,
	}).Debug("kml: skipping unknown element")
	return d.r.Skip()
}

func (d *decodeState) extension(f frame, er ExtensionReader, isComplex bool, name xml.Name) error {
	v, level, err := er.ReadExtension(d.r, d.gate.version, f.stop)
	if err != nil {
		return err
	}
	if end := d.r.Current(); end.Kind != xmlstream.EndElement || end.Name != name {
		return d.located(errors.Newf("kml: extension reading %s did not stop at its end element", name.Local))
	}
	if level == LevelNone {
		if f.sub != nil && f.sub(v) {
			return nil
		}
		return d.located(&ExtensionError{Level: level, Value: v})
	}
	if f.ext == nil || !slices.Contains(f.levels, level) {
		return d.located(&ExtensionError{Level: level, Value: v})
	}
	d.log.WithFields(logrus.Fields{
		"element":   name.Local,
		"namespace": name.Space,
		"level":     level,
	}).Debug("kml: read extension")
	if isComplex {
		f.ext.AddComplex(level, v)
	} else {
		f.ext.AddSimple(level, v)
	}
	return nil
}

// licensed reports whether the element under the cursor may be read under
// the active version. An element outside its versions is an error, or is
// skipped in lenient mode.
func (d *decodeState) licensed(element string, vs ...Version) (bool, error) {
	if d.gate.oneOf(vs...) {
		return true, nil
	}
	if d.gate.lenient {
		d.log.WithField("element", element).Debug("kml: skipping element not licensed by version")
		return false, d.r.Skip()
	}
	return false, d.located(&VersionError{Element: element, Version: d.gate.version})
}

// located attaches the position of the current event to err.
func (d *decodeState) located(err error) error {
	line, col := d.r.Pos()
	return &SyntaxError{Line: line, Column: col, Err: err}
}

// ids reads the identity attributes off the current start element.
func (d *decodeState) ids(a *IDAttributes) {
	ev := d.r.Current()
	a.ID, _ = ev.Attribute("id")
	a.TargetID, _ = ev.Attribute("targetId")
}

func (d *decodeState) text() (Text, error) {
	return d.r.ElementText()
}

// raw returns element text as written.
func (d *decodeState) raw() (string, error) {
	t, err := d.r.ElementText()
	return t.Value, err
}

// str returns element text without surrounding whitespace.
func (d *decodeState) str() (string, error) {
	t, err := d.r.ElementText()
	return strings.TrimSpace(t.Value), err
}

func (d *decodeState) boolean() (bool, error) {
	s, err := d.str()
	if err != nil {
		return false, err
	}
	b, err := ParseBool(s)
	if err != nil {
		return false, d.located(err)
	}
	return b, nil
}

func (d *decodeState) double() (float64, error) {
	s, err := d.str()
	if err != nil {
		return 0, err
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, d.located(&EnumError{Kind: "double", Literal: s})
	}
	return f, nil
}

func (d *decodeState) integer() (int, error) {
	s, err := d.str()
	if err != nil {
		return 0, err
	}
	i, err := parseInt(s)
	if err != nil {
		return 0, d.located(err)
	}
	return i, nil
}

func (d *decodeState) color() (color.NRGBA, error) {
	s, err := d.str()
	if err != nil {
		return color.NRGBA{}, err
	}
	c, err := ParseColor(s)
	if err != nil {
		return color.NRGBA{}, d.located(err)
	}
	return c, nil
}

func (d *decodeState) coordinates() (Coordinates, error) {
	s, err := d.raw()
	if err != nil {
		return nil, err
	}
	cs, err := ParseCoordinates(s)
	if err != nil {
		return nil, d.located(err)
	}
	return cs, nil
}

func (d *decodeState) dateTime() (DateTime, error) {
	s, err := d.str()
	if err != nil {
		return DateTime{}, err
	}
	t, err := ParseDateTime(s)
	if err != nil {
		return DateTime{}, d.located(err)
	}
	return t, nil
}

// decodeEnum reads element text as an enumeration literal.
func decodeEnum[E ~int](d *decodeState, parse func(string) (E, error)) (E, error) {
	s, err := d.str()
	if err != nil {
		return 0, err
	}
	v, err := parse(s)
	if err != nil {
		return 0, d.located(err)
	}
	return v, nil
}

// vec2 reads a Vec2 from the attributes of the current element.
func (d *decodeState) vec2() (*Vec2, error) {
	ev := d.r.Current()
	v := NewVec2()
	for _, a := range []struct {
		name string
		f    *float64
	}{{"x", &v.X}, {"y", &v.Y}} {
		s, ok := ev.Attribute(a.name)
		if !ok {
			continue
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, d.located(&EnumError{Kind: "double", Literal: s})
		}
		*a.f = f
	}
	for _, a := range []struct {
		name string
		u    *Units
	}{{"xunits", &v.XUnits}, {"yunits", &v.YUnits}} {
		s, ok := ev.Attribute(a.name)
		if !ok {
			continue
		}
		u, err := ParseUnits(s)
		if err != nil {
			return nil, d.located(err)
		}
		*a.u = u
	}
	return v, d.r.Skip()
}
