package kml

// Geometry is one of *Point, *LineString, *LinearRing, *Polygon,
// *MultiGeometry, *Model or *ExtensionGeometry.
type Geometry interface {
	isGeometry()
}

type Point struct {
	IDAttributes
	Extrude      bool
	AltitudeMode AltitudeMode
	Coordinates  Coordinates
	Extensions
}

func NewPoint() *Point { return &Point{} }

type LineString struct {
	IDAttributes
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
	Coordinates  Coordinates
	Extensions
}

func NewLineString() *LineString { return &LineString{} }

type LinearRing struct {
	IDAttributes
	Extrude      bool
	Tessellate   bool
	AltitudeMode AltitudeMode
	Coordinates  Coordinates
	Extensions
}

func NewLinearRing() *LinearRing { return &LinearRing{} }

type Polygon struct {
	IDAttributes
	Extrude         bool
	Tessellate      bool
	AltitudeMode    AltitudeMode
	OuterBoundary   *LinearRing
	InnerBoundaries []*LinearRing
	Extensions
}

func NewPolygon() *Polygon { return &Polygon{} }

type MultiGeometry struct {
	IDAttributes
	Geometries []Geometry
	Extensions
}

func NewMultiGeometry() *MultiGeometry { return &MultiGeometry{} }

// Model places a 3D model, loaded from Link, on the globe.
type Model struct {
	IDAttributes
	AltitudeMode AltitudeMode
	Location     *Location
	Orientation  *Orientation
	Scale        *Scale
	Link         *Link
	ResourceMap  *ResourceMap
	Extensions
}

func NewModel() *Model { return &Model{} }

type Location struct {
	IDAttributes
	Longitude float64
	Latitude  float64
	Altitude  float64
	Extensions
}

type Orientation struct {
	IDAttributes
	Heading float64
	Tilt    float64
	Roll    float64
	Extensions
}

type Scale struct {
	IDAttributes
	X, Y, Z float64
	Extensions
}

func NewScale() *Scale { return &Scale{X: 1, Y: 1, Z: 1} }

// ResourceMap maps texture paths inside a model to where they are found.
type ResourceMap struct {
	IDAttributes
	Aliases []*Alias
	Extensions
}

type Alias struct {
	IDAttributes
	TargetHref string
	SourceHref string
	Extensions
}

// ExtensionGeometry stands in for a geometry that an extension read from
// outside the KML namespace.
type ExtensionGeometry struct {
	Value any
}

func (*Point) isGeometry()             {}
func (*LineString) isGeometry()        {}
func (*LinearRing) isGeometry()        {}
func (*Polygon) isGeometry()           {}
func (*MultiGeometry) isGeometry()     {}
func (*Model) isGeometry()             {}
func (*ExtensionGeometry) isGeometry() {}
