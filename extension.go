package kml

import (
	"encoding/xml"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/KimNorgaard/go-kml/xmlstream"
)

// Level names the point in an element's inheritance chain where an
// extension value belongs. KML places extension groups at the end of
// every type's own content, so the level decides where a value is written:
// a LevelFeature value on a Placemark comes after the Feature fields and
// before the Placemark fields.
type Level int

const (
	// LevelNone marks a value that stands in for a core element instead
	// of extending one, such as a foreign geometry in a Placemark.
	LevelNone Level = iota
	LevelKML
	LevelObject
	LevelFeature
	LevelContainer
	LevelDocument
	LevelFolder
	LevelPlacemark
	LevelNetworkLink
	LevelOverlay
	LevelGroundOverlay
	LevelScreenOverlay
	LevelPhotoOverlay
	LevelGeometry
	LevelPoint
	LevelLineString
	LevelLinearRing
	LevelPolygon
	LevelMultiGeometry
	LevelModel
	LevelLocation
	LevelOrientation
	LevelScale
	LevelResourceMap
	LevelAlias
	LevelStyleSelector
	LevelStyle
	LevelStyleMap
	LevelPair
	LevelSubStyle
	LevelColorStyle
	LevelIconStyle
	LevelLabelStyle
	LevelLineStyle
	LevelPolyStyle
	LevelBalloonStyle
	LevelListStyle
	LevelItemIcon
	LevelView
	LevelLookAt
	LevelCamera
	LevelTimePrimitive
	LevelTimeSpan
	LevelTimeStamp
	LevelAbstractLatLonBox
	LevelLatLonBox
	LevelLatLonAltBox
	LevelRegion
	LevelLod
	LevelBasicLink
	LevelLink
	LevelViewVolume
	LevelImagePyramid
	LevelExtendedData
	LevelData
	LevelSchemaData
	LevelNetworkLinkControl
)

var levelNames = [...]string{
	"None", "Kml", "Object", "Feature", "Container", "Document", "Folder",
	"Placemark", "NetworkLink", "Overlay", "GroundOverlay", "ScreenOverlay",
	"PhotoOverlay", "Geometry", "Point", "LineString", "LinearRing",
	"Polygon", "MultiGeometry", "Model", "Location", "Orientation", "Scale",
	"ResourceMap", "Alias", "StyleSelector", "Style", "StyleMap", "Pair",
	"SubStyle", "ColorStyle", "IconStyle", "LabelStyle", "LineStyle",
	"PolyStyle", "BalloonStyle", "ListStyle", "ItemIcon", "View", "LookAt",
	"Camera", "TimePrimitive", "TimeSpan", "TimeStamp", "AbstractLatLonBox",
	"LatLonBox", "LatLonAltBox", "Region", "Lod", "BasicLink", "Link",
	"ViewVolume", "ImagePyramid", "ExtendedData", "Data", "SchemaData",
	"NetworkLinkControl",
}

// String returns the name of l.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return fmt.Sprintf("Level(%d)", int(l))
	}
	return levelNames[l]
}

// Extensions holds the extension values attached to one entity, split
// into text-only (simple) and structured (complex) values and keyed by
// level. The zero value is empty and ready to use.
type Extensions struct {
	Simple  map[Level][]any
	Complex map[Level][]any
}

// AddSimple appends a simple extension value at level l.
func (e *Extensions) AddSimple(l Level, v any) {
	if e.Simple == nil {
		e.Simple = make(map[Level][]any)
	}
	e.Simple[l] = append(e.Simple[l], v)
}

// AddComplex appends a complex extension value at level l.
func (e *Extensions) AddComplex(l Level, v any) {
	if e.Complex == nil {
		e.Complex = make(map[Level][]any)
	}
	e.Complex[l] = append(e.Complex[l], v)
}

// IsEmpty reports whether e holds no values.
func (e Extensions) IsEmpty() bool {
	for _, vs := range e.Simple {
		if len(vs) > 0 {
			return false
		}
	}
	for _, vs := range e.Complex {
		if len(vs) > 0 {
			return false
		}
	}
	return true
}

// Extension is an extension plugin. It implements ExtensionReader,
// ExtensionWriter or both.
type Extension any

// ExtensionReader reads elements outside the core KML namespace.
//
// The reader is asked about complex content first and simple content
// second. ReadExtension is called with the cursor on the element's start
// and must leave it on the matching end. It returns the value and the
// level it belongs to; LevelNone means the value replaces a core element
// of the containing one.
type ExtensionReader interface {
	CanReadComplex(v Version, containing string, name xml.Name) bool
	CanReadSimple(v Version, containing string, name xml.Name) bool
	ReadExtension(r *xmlstream.Reader, v Version, containing string) (any, Level, error)
}

// ExtensionWriter writes extension values back out. It is asked before
// each value is written; the first writer that accepts the value writes
// exactly one element for it.
type ExtensionWriter interface {
	CanWriteComplex(v Version, level Level, value any) bool
	CanWriteSimple(v Version, level Level, value any) bool
	WriteComplex(w *xmlstream.Writer, v Version, level Level, value any) error
	WriteSimple(w *xmlstream.Writer, v Version, level Level, value any) error
}

// Namespacer is implemented by extensions that want their namespaces
// declared with a preferred prefix on the root element.
type Namespacer interface {
	Namespaces() map[string]string
}

// registry is the ordered list of extension plugins of a session.
type registry struct {
	readers []ExtensionReader
	writers []ExtensionWriter
	spaces  []Namespacer
}

func (r *registry) add(ext Extension) error {
	er, isReader := ext.(ExtensionReader)
	ew, isWriter := ext.(ExtensionWriter)
	if !isReader && !isWriter {
		return errors.Newf("kml: %T is neither an ExtensionReader nor an ExtensionWriter", ext)
	}
	if isReader {
		r.readers = append(r.readers, er)
	}
	if isWriter {
		r.writers = append(r.writers, ew)
	}
	if ns, ok := ext.(Namespacer); ok {
		r.spaces = append(r.spaces, ns)
	}
	return nil
}

// reader returns the first reader claiming name and whether it claimed
// it as complex content.
func (r *registry) reader(v Version, containing string, name xml.Name) (ExtensionReader, bool) {
	for _, er := range r.readers {
		if er.CanReadComplex(v, containing, name) {
			return er, true
		}
	}
	for _, er := range r.readers {
		if er.CanReadSimple(v, containing, name) {
			return er, false
		}
	}
	return nil, false
}

func (r *registry) writeComplex(w *xmlstream.Writer, v Version, l Level, value any) error {
	for _, ew := range r.writers {
		if ew.CanWriteComplex(v, l, value) {
			return ew.WriteComplex(w, v, l, value)
		}
	}
	return &ExtensionError{Level: l, Value: value}
}

func (r *registry) writeSimple(w *xmlstream.Writer, v Version, l Level, value any) error {
	for _, ew := range r.writers {
		if ew.CanWriteSimple(v, l, value) {
			return ew.WriteSimple(w, v, l, value)
		}
	}
	return &ExtensionError{Level: l, Value: value}
}

// NamespaceExtension captures every element of one namespace as a generic
// *xmlstream.Element and writes such values back.
//
// Elements whose local name is in Simple are read as text-only simple
// values; everything else is read as complex content. The level of a value
// is taken from Levels by local name, then from Default.
type NamespaceExtension struct {
	Namespace string
	Prefix    string
	Simple    map[string]bool
	Levels    map[string]Level
	Default   Level
}

var (
	_ ExtensionReader = (*NamespaceExtension)(nil)
	_ ExtensionWriter = (*NamespaceExtension)(nil)
	_ Namespacer      = (*NamespaceExtension)(nil)
)

// Namespaces binds Prefix to Namespace. It is empty when Prefix is.
func (n *NamespaceExtension) Namespaces() map[string]string {
	if n.Prefix == "" {
		return nil
	}
	return map[string]string{n.Namespace: n.Prefix}
}

// CanReadComplex claims elements of Namespace that are not in Simple.
func (n *NamespaceExtension) CanReadComplex(_ Version, _ string, name xml.Name) bool {
	return name.Space == n.Namespace && !n.Simple[name.Local]
}

// CanReadSimple claims elements of Namespace listed in Simple.
func (n *NamespaceExtension) CanReadSimple(_ Version, _ string, name xml.Name) bool {
	return name.Space == n.Namespace && n.Simple[name.Local]
}

// ReadExtension reads the element under the cursor as an *xmlstream.Element.
func (n *NamespaceExtension) ReadExtension(r *xmlstream.Reader, _ Version, _ string) (any, Level, error) {
	name := r.Current().Name
	el, err := r.ReadElement()
	if err != nil {
		return nil, LevelNone, err
	}
	level, ok := n.Levels[name.Local]
	if !ok {
		level = n.Default
	}
	return el, level, nil
}

func (n *NamespaceExtension) owns(value any) (*xmlstream.Element, bool) {
	el, ok := value.(*xmlstream.Element)
	if !ok || el.Name.Space != n.Namespace {
		return nil, false
	}
	return el, true
}

// CanWriteComplex accepts any *xmlstream.Element in Namespace.
func (n *NamespaceExtension) CanWriteComplex(_ Version, _ Level, value any) bool {
	_, ok := n.owns(value)
	return ok
}

// CanWriteSimple accepts text-only elements in Namespace.
func (n *NamespaceExtension) CanWriteSimple(_ Version, _ Level, value any) bool {
	el, ok := n.owns(value)
	return ok && el.IsSimple()
}

// WriteComplex writes the element tree.
func (n *NamespaceExtension) WriteComplex(w *xmlstream.Writer, _ Version, _ Level, value any) error {
	el, _ := n.owns(value)
	return w.WriteElement(el)
}

// WriteSimple writes the element with its text.
func (n *NamespaceExtension) WriteSimple(w *xmlstream.Writer, _ Version, _ Level, value any) error {
	el, _ := n.owns(value)
	return w.TextElement(el.Name.Space, el.Name.Local, el.Text)
}
