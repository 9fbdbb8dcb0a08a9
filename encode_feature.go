package kml

import (
	"github.com/KimNorgaard/go-kml/atom"
	"github.com/KimNorgaard/go-kml/xal"
)

func (e *encodeState) feature(f Feature) {
	switch f := f.(type) {
	case *Placemark:
		e.placemark(f)
	case *Document:
		e.document(f)
	case *Folder:
		e.folder(f)
	case *NetworkLink:
		e.networkLink(f)
	case *GroundOverlay:
		e.groundOverlay(f)
	case *ScreenOverlay:
		e.screenOverlay(f)
	case *PhotoOverlay:
		e.photoOverlay(f)
	case *ExtensionFeature:
		e.substitute(f.Value)
	}
}

func (e *encodeState) featureFields(ff *FeatureFields) {
	e.str("name", ff.Name)
	e.boolean("visibility", ff.Visibility, true)
	e.boolean("open", ff.Open, false)
	if ff.Author != nil && e.licensed("atom:author", v22...) {
		e.err = atom.WriteAuthor(e.w, ff.Author)
	}
	if ff.AtomLink != nil && e.licensed("atom:link", v22...) {
		e.err = atom.WriteLink(e.w, ff.AtomLink)
	}
	e.str("address", ff.Address)
	if ff.AddressDetails != nil && e.licensed("xal:AddressDetails", v22...) {
		e.err = xal.WriteAddressDetails(e.w, ff.AddressDetails)
	}
	e.str("phoneNumber", ff.PhoneNumber)
	e.snippet("Snippet", ff.Snippet)
	e.optText("description", ff.Description)
	if ff.View != nil {
		e.view(ff.View)
	}
	if ff.Time != nil {
		e.timePrimitive(ff.Time)
	}
	e.str("styleUrl", ff.StyleURL)
	for _, s := range ff.StyleSelectors {
		e.styleSelector(s)
	}
	if ff.Region != nil {
		e.region(ff.Region)
	}
	e.raw("Metadata", ff.Metadata)
	if ff.ExtendedData != nil && e.licensed("ExtendedData", v22...) {
		e.extendedData(ff.ExtendedData)
	}
}

func (e *encodeState) placemark(p *Placemark) {
	e.start("Placemark", &p.IDAttributes)
	e.flush(&p.Extensions, LevelObject)
	e.featureFields(&p.FeatureFields)
	e.flush(&p.Extensions, LevelFeature)
	if p.Geometry != nil {
		e.geometry(p.Geometry)
	}
	e.flush(&p.Extensions, LevelPlacemark)
	e.end()
}

func (e *encodeState) document(d *Document) {
	e.start("Document", &d.IDAttributes)
	e.flush(&d.Extensions, LevelObject)
	e.featureFields(&d.FeatureFields)
	e.flush(&d.Extensions, LevelFeature)
	e.flush(&d.Extensions, LevelContainer)
	for _, s := range d.Schemas {
		if e.licensed("Schema", v22...) {
			e.schema(s)
		}
	}
	for _, f := range d.Features {
		e.feature(f)
	}
	e.flush(&d.Extensions, LevelDocument)
	e.end()
}

func (e *encodeState) folder(f *Folder) {
	e.start("Folder", &f.IDAttributes)
	e.flush(&f.Extensions, LevelObject)
	e.featureFields(&f.FeatureFields)
	e.flush(&f.Extensions, LevelFeature)
	e.flush(&f.Extensions, LevelContainer)
	for _, c := range f.Features {
		e.feature(c)
	}
	e.flush(&f.Extensions, LevelFolder)
	e.end()
}

func (e *encodeState) networkLink(nl *NetworkLink) {
	e.start("NetworkLink", &nl.IDAttributes)
	e.flush(&nl.Extensions, LevelObject)
	e.featureFields(&nl.FeatureFields)
	e.flush(&nl.Extensions, LevelFeature)
	e.boolean("refreshVisibility", nl.RefreshVisibility, false)
	e.boolean("flyToView", nl.FlyToView, false)
	if nl.Link != nil {
		name := "Link"
		if e.gate.is(KML21) {
			name = "Url"
		}
		e.link(name, nl.Link)
	}
	e.flush(&nl.Extensions, LevelNetworkLink)
	e.end()
}

func (e *encodeState) overlayFields(of *OverlayFields) {
	e.color("color", of.Color, White)
	e.integer("drawOrder", of.DrawOrder, 0)
	if of.Icon != nil {
		e.link("Icon", of.Icon)
	}
}

func (e *encodeState) groundOverlay(g *GroundOverlay) {
	e.start("GroundOverlay", &g.IDAttributes)
	e.flush(&g.Extensions, LevelObject)
	e.featureFields(&g.FeatureFields)
	e.flush(&g.Extensions, LevelFeature)
	e.overlayFields(&g.OverlayFields)
	e.flush(&g.Extensions, LevelOverlay)
	e.double("altitude", g.Altitude, 0)
	encodeEnum(e, "altitudeMode", g.AltitudeMode)
	if g.LatLonBox != nil {
		e.latLonBox(g.LatLonBox)
	}
	e.flush(&g.Extensions, LevelGroundOverlay)
	e.end()
}

func (e *encodeState) screenOverlay(s *ScreenOverlay) {
	e.start("ScreenOverlay", &s.IDAttributes)
	e.flush(&s.Extensions, LevelObject)
	e.featureFields(&s.FeatureFields)
	e.flush(&s.Extensions, LevelFeature)
	e.overlayFields(&s.OverlayFields)
	e.flush(&s.Extensions, LevelOverlay)
	e.vec2("overlayXY", s.OverlayXY)
	e.vec2("screenXY", s.ScreenXY)
	e.vec2("rotationXY", s.RotationXY)
	e.vec2("size", s.Size)
	e.double("rotation", s.Rotation, 0)
	e.flush(&s.Extensions, LevelScreenOverlay)
	e.end()
}

func (e *encodeState) photoOverlay(p *PhotoOverlay) {
	if !e.licensed("PhotoOverlay", v22...) {
		return
	}
	e.start("PhotoOverlay", &p.IDAttributes)
	e.flush(&p.Extensions, LevelObject)
	e.featureFields(&p.FeatureFields)
	e.flush(&p.Extensions, LevelFeature)
	e.overlayFields(&p.OverlayFields)
	e.flush(&p.Extensions, LevelOverlay)
	e.double("rotation", p.Rotation, 0)
	if p.ViewVolume != nil {
		e.viewVolume(p.ViewVolume)
	}
	if p.ImagePyramid != nil {
		e.imagePyramid(p.ImagePyramid)
	}
	if p.Point != nil {
		e.point(p.Point)
	}
	encodeEnum(e, "shape", p.Shape)
	e.flush(&p.Extensions, LevelPhotoOverlay)
	e.end()
}

func (e *encodeState) viewVolume(v *ViewVolume) {
	e.start("ViewVolume", &v.IDAttributes)
	e.flush(&v.Extensions, LevelObject)
	e.double("leftFov", v.LeftFov, 0)
	e.double("rightFov", v.RightFov, 0)
	e.double("bottomFov", v.BottomFov, 0)
	e.double("topFov", v.TopFov, 0)
	e.double("near", v.Near, 0)
	e.flush(&v.Extensions, LevelViewVolume)
	e.end()
}

func (e *encodeState) imagePyramid(p *ImagePyramid) {
	e.start("ImagePyramid", &p.IDAttributes)
	e.flush(&p.Extensions, LevelObject)
	e.integer("tileSize", p.TileSize, 256)
	e.integer("maxWidth", p.MaxWidth, 0)
	e.integer("maxHeight", p.MaxHeight, 0)
	encodeEnum(e, "gridOrigin", p.GridOrigin)
	e.flush(&p.Extensions, LevelImagePyramid)
	e.end()
}
