package kml

import (
	"bytes"
)

// KML is the root of a document.
type KML struct {
	// Version is the schema the document was read as, and the one it is
	// written as unless TargetVersion overrides it. Empty means
	// DefaultVersion.
	Version Version
	Hint    string

	// ExtensionPrefixes maps extension namespaces declared on the root to
	// their prefixes. The encoder declares them again on write.
	ExtensionPrefixes map[string]string

	NetworkLinkControl *NetworkLinkControl
	Feature            Feature
	Extensions
}

// New returns an empty document of the default version.
func New(f Feature) *KML {
	return &KML{Version: DefaultVersion, Feature: f}
}

// Marshal returns the KML encoding of doc.
func Marshal(doc *KML, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal parses a KML document.
func Unmarshal(data []byte, opts ...Option) (*KML, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}
