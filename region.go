package kml

// AbstractLatLonBox is either *LatLonBox or *LatLonAltBox.
type AbstractLatLonBox interface {
	Box() *Bounds
}

// Bounds are the edges every lat/lon box shares, in degrees.
type Bounds struct {
	North float64
	South float64
	East  float64
	West  float64
}

func newBounds() Bounds {
	return Bounds{North: 180, South: -180, East: 180, West: -180}
}

// Box returns b. It makes both box types AbstractLatLonBox values.
func (b *Bounds) Box() *Bounds { return b }

type LatLonBox struct {
	IDAttributes
	Bounds
	Rotation float64
	Extensions
}

func NewLatLonBox() *LatLonBox { return &LatLonBox{Bounds: newBounds()} }

type LatLonAltBox struct {
	IDAttributes
	Bounds
	MinAltitude  float64
	MaxAltitude  float64
	AltitudeMode AltitudeMode
	Extensions
}

func NewLatLonAltBox() *LatLonAltBox { return &LatLonAltBox{Bounds: newBounds()} }

// Region limits when a feature is active by area and screen size.
type Region struct {
	IDAttributes
	LatLonAltBox *LatLonAltBox
	Lod          *Lod
	Extensions
}

func NewRegion() *Region { return &Region{} }

// Lod is a level of detail range in screen pixels.
type Lod struct {
	IDAttributes
	MinLodPixels  float64
	MaxLodPixels  float64
	MinFadeExtent float64
	MaxFadeExtent float64
	Extensions
}

func NewLod() *Lod { return &Lod{MaxLodPixels: -1} }

// BasicLink is a bare reference, as used by IconStyle.
type BasicLink struct {
	IDAttributes
	Href string
	Extensions
}

func NewBasicLink() *BasicLink { return &BasicLink{} }

// Link is a reference with refresh parameters, as used by NetworkLink,
// overlays and Model.
type Link struct {
	IDAttributes
	Href            string
	RefreshMode     RefreshMode
	RefreshInterval float64
	ViewRefreshMode ViewRefreshMode
	ViewRefreshTime float64
	ViewBoundScale  float64
	ViewFormat      string
	HTTPQuery       string
	Extensions
}

func NewLink() *Link {
	return &Link{RefreshInterval: 4, ViewRefreshTime: 4, ViewBoundScale: 1}
}
