package kml

import (
	"image/color"

	"github.com/KimNorgaard/go-kml/atom"
	"github.com/KimNorgaard/go-kml/xal"
	"github.com/KimNorgaard/go-kml/xmlstream"
)

// Feature is one of *Placemark, *Folder, *Document, *NetworkLink,
// *GroundOverlay, *ScreenOverlay, *PhotoOverlay or *ExtensionFeature.
type Feature interface {
	isFeature()
}

// Container is a Feature holding other features: *Document or *Folder.
type Container interface {
	Feature
	Children() []Feature
}

// FeatureFields are the fields every feature shares.
type FeatureFields struct {
	Name           string
	Visibility     bool
	Open           bool
	Author         *atom.Author
	AtomLink       *atom.Link
	Address        string
	AddressDetails *xal.AddressDetails
	PhoneNumber    string
	Snippet        *Snippet
	Description    Text
	View           View
	Time           TimePrimitive
	StyleURL       string
	StyleSelectors []StyleSelector
	Region         *Region

	// Metadata is the KML 2.1 free-form metadata element.
	Metadata     *xmlstream.Element
	ExtendedData *ExtendedData
}

func newFeatureFields() FeatureFields {
	return FeatureFields{Visibility: true}
}

// Snippet is a short description shown in place of the full one.
type Snippet struct {
	Text     Text
	MaxLines int
}

func NewSnippet() *Snippet {
	return &Snippet{MaxLines: 2}
}

type Placemark struct {
	IDAttributes
	FeatureFields
	Geometry Geometry
	Extensions
}

func NewPlacemark() *Placemark {
	return &Placemark{FeatureFields: newFeatureFields()}
}

type Document struct {
	IDAttributes
	FeatureFields
	Schemas  []*Schema
	Features []Feature
	Extensions
}

func NewDocument() *Document {
	return &Document{FeatureFields: newFeatureFields()}
}

func (d *Document) Children() []Feature { return d.Features }

type Folder struct {
	IDAttributes
	FeatureFields
	Features []Feature
	Extensions
}

func NewFolder() *Folder {
	return &Folder{FeatureFields: newFeatureFields()}
}

func (f *Folder) Children() []Feature { return f.Features }

type NetworkLink struct {
	IDAttributes
	FeatureFields
	RefreshVisibility bool
	FlyToView         bool
	// Link is written as <Link> in KML 2.2 and as <Url> in KML 2.1.
	Link *Link
	Extensions
}

func NewNetworkLink() *NetworkLink {
	return &NetworkLink{FeatureFields: newFeatureFields()}
}

// OverlayFields are the fields every overlay shares.
type OverlayFields struct {
	Color     color.NRGBA
	DrawOrder int
	Icon      *Link
}

func newOverlayFields() OverlayFields {
	return OverlayFields{Color: White}
}

type GroundOverlay struct {
	IDAttributes
	FeatureFields
	OverlayFields
	Altitude     float64
	AltitudeMode AltitudeMode
	LatLonBox    *LatLonBox
	Extensions
}

func NewGroundOverlay() *GroundOverlay {
	return &GroundOverlay{FeatureFields: newFeatureFields(), OverlayFields: newOverlayFields()}
}

type ScreenOverlay struct {
	IDAttributes
	FeatureFields
	OverlayFields
	OverlayXY  *Vec2
	ScreenXY   *Vec2
	RotationXY *Vec2
	Size       *Vec2
	Rotation   float64
	Extensions
}

func NewScreenOverlay() *ScreenOverlay {
	return &ScreenOverlay{FeatureFields: newFeatureFields(), OverlayFields: newOverlayFields()}
}

type PhotoOverlay struct {
	IDAttributes
	FeatureFields
	OverlayFields
	Rotation     float64
	ViewVolume   *ViewVolume
	ImagePyramid *ImagePyramid
	Point        *Point
	Shape        Shape
	Extensions
}

func NewPhotoOverlay() *PhotoOverlay {
	return &PhotoOverlay{FeatureFields: newFeatureFields(), OverlayFields: newOverlayFields()}
}

type ViewVolume struct {
	IDAttributes
	LeftFov   float64
	RightFov  float64
	BottomFov float64
	TopFov    float64
	Near      float64
	Extensions
}

type ImagePyramid struct {
	IDAttributes
	TileSize   int
	MaxWidth   int
	MaxHeight  int
	GridOrigin GridOrigin
	Extensions
}

func NewImagePyramid() *ImagePyramid {
	return &ImagePyramid{TileSize: 256}
}

// ExtensionFeature stands in for a feature that an extension read from
// outside the KML namespace.
type ExtensionFeature struct {
	Value any
}

func (*Placemark) isFeature()        {}
func (*Document) isFeature()         {}
func (*Folder) isFeature()           {}
func (*NetworkLink) isFeature()      {}
func (*GroundOverlay) isFeature()    {}
func (*ScreenOverlay) isFeature()    {}
func (*PhotoOverlay) isFeature()     {}
func (*ExtensionFeature) isFeature() {}

// FieldsOf returns the shared fields of f, or nil for an extension
// feature.
func FieldsOf(f Feature) *FeatureFields {
	switch f := f.(type) {
	case *Placemark:
		return &f.FeatureFields
	case *Document:
		return &f.FeatureFields
	case *Folder:
		return &f.FeatureFields
	case *NetworkLink:
		return &f.FeatureFields
	case *GroundOverlay:
		return &f.FeatureFields
	case *ScreenOverlay:
		return &f.FeatureFields
	case *PhotoOverlay:
		return &f.FeatureFields
	}
	return nil
}
