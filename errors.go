package kml

import (
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// ErrMaxDepth is returned when a document nests deeper than the configured
// maximum.
var ErrMaxDepth = errors.New("kml: reached max recursion depth")

// A VersionError reports an element used outside the schema versions that
// license it.
type VersionError struct {
	Element string
	Version Version
}

func (e *VersionError) Error() string {
	return fmt.Sprintf("kml: element %s is not allowed in KML %s (%s)", e.Element, e.Version.Short(), string(e.Version))
}

// An UnexpectedElementError reports an element that matches no known
// content and that no extension claimed.
type UnexpectedElementError struct {
	Name   xml.Name
	Parent string
}

func (e *UnexpectedElementError) Error() string {
	name := e.Name.Local
	if e.Name.Space != "" {
		name = "{" + e.Name.Space + "}" + name
	}
	return fmt.Sprintf("kml: unexpected element %s in %s", name, e.Parent)
}

// An EnumError reports a literal that is not valid for its type.
type EnumError struct {
	Kind    string
	Literal string
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("kml: invalid %s %q", e.Kind, e.Literal)
}

// An UnknownNamespaceError reports a root element in a namespace that is
// not a recognized KML version.
type UnknownNamespaceError struct {
	Namespace string
}

func (e *UnknownNamespaceError) Error() string {
	return fmt.Sprintf("kml: unrecognized KML namespace %q", e.Namespace)
}

// An ExtensionError reports an extension value that no registered writer
// accepted, or that a reader placed at a level its element does not have.
type ExtensionError struct {
	Level Level
	Value any
}

func (e *ExtensionError) Error() string {
	return fmt.Sprintf("kml: cannot place extension value %T at level %s", e.Value, e.Level)
}

// A SyntaxError locates a reader failure in the input.
type SyntaxError struct {
	Line   int
	Column int
	Err    error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("kml: line %d, column %d: %s", e.Line, e.Column, strings.TrimPrefix(e.Err.Error(), "kml: "))
}

func (e *SyntaxError) Unwrap() error { return e.Err }
