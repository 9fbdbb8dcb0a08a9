package kml

import "slices"

// Version identifies a KML schema revision by its namespace URI.
type Version string

const (
	// KML21 is the Google KML 2.1 namespace.
	KML21 Version = "http://earth.google.com/kml/2.1"
	// KML22 is the OGC KML 2.2 namespace.
	KML22 Version = "http://www.opengis.net/kml/2.2"
	// KML22Google is the pre-OGC Google namespace for KML 2.2.
	KML22Google Version = "http://earth.google.com/kml/2.2"
)

// DefaultVersion is used when a document does not name one.
const DefaultVersion = KML22

// GxNamespace is the Google extension namespace. It is not part of the
// core schema and is handled through extensions.
const GxNamespace = "http://www.google.com/kml/ext/2.2"

// v22 lists the namespaces that license KML 2.2 content.
var v22 = []Version{KML22, KML22Google}

// Versions returns the recognized schema versions.
func Versions() []Version {
	return []Version{KML21, KML22, KML22Google}
}

// Known reports whether v is a recognized schema version.
func (v Version) Known() bool {
	return slices.Contains(Versions(), v)
}

// Namespace returns the namespace URI of v.
func (v Version) Namespace() string { return string(v) }

// Short returns the revision number, "2.1" or "2.2".
func (v Version) Short() string {
	switch v {
	case KML21:
		return "2.1"
	case KML22, KML22Google:
		return "2.2"
	}
	return string(v)
}

func (v Version) String() string { return v.Short() }

// ParseVersion accepts a revision number or a namespace URI.
func ParseVersion(s string) (Version, error) {
	switch s {
	case "2.1":
		return KML21, nil
	case "2.2":
		return KML22, nil
	}
	if v := Version(s); v.Known() {
		return v, nil
	}
	return "", &UnknownNamespaceError{Namespace: s}
}

// gate holds the version a read or write session runs under. It is set
// once, at the root element.
type gate struct {
	version Version
	lenient bool
}

// is reports whether the active version is exactly v.
func (g gate) is(v Version) bool {
	return g.version == v
}

// oneOf reports whether the active version is any of vs.
func (g gate) oneOf(vs ...Version) bool {
	return slices.Contains(vs, g.version)
}

// core reports whether namespace is the active core namespace. Every
// namespace passes in lenient mode.
func (g gate) core(namespace string) bool {
	return g.lenient || namespace == g.version.Namespace()
}
