package kml

func (e *encodeState) geometry(g Geometry) {
	switch g := g.(type) {
	case *Point:
		e.point(g)
	case *LineString:
		e.lineString(g)
	case *LinearRing:
		e.linearRing(g)
	case *Polygon:
		e.polygon(g)
	case *MultiGeometry:
		e.multiGeometry(g)
	case *Model:
		e.model(g)
	case *ExtensionGeometry:
		e.substitute(g.Value)
	}
}

func (e *encodeState) point(p *Point) {
	e.start("Point", &p.IDAttributes)
	e.flush(&p.Extensions, LevelObject)
	e.flush(&p.Extensions, LevelGeometry)
	e.boolean("extrude", p.Extrude, false)
	encodeEnum(e, "altitudeMode", p.AltitudeMode)
	e.coordinates(p.Coordinates)
	e.flush(&p.Extensions, LevelPoint)
	e.end()
}

func (e *encodeState) lineString(l *LineString) {
	e.start("LineString", &l.IDAttributes)
	e.flush(&l.Extensions, LevelObject)
	e.flush(&l.Extensions, LevelGeometry)
	e.boolean("extrude", l.Extrude, false)
	e.boolean("tessellate", l.Tessellate, false)
	encodeEnum(e, "altitudeMode", l.AltitudeMode)
	e.coordinates(l.Coordinates)
	e.flush(&l.Extensions, LevelLineString)
	e.end()
}

func (e *encodeState) linearRing(l *LinearRing) {
	e.start("LinearRing", &l.IDAttributes)
	e.flush(&l.Extensions, LevelObject)
	e.flush(&l.Extensions, LevelGeometry)
	e.boolean("extrude", l.Extrude, false)
	e.boolean("tessellate", l.Tessellate, false)
	encodeEnum(e, "altitudeMode", l.AltitudeMode)
	e.coordinates(l.Coordinates)
	e.flush(&l.Extensions, LevelLinearRing)
	e.end()
}

func (e *encodeState) polygon(p *Polygon) {
	e.start("Polygon", &p.IDAttributes)
	e.flush(&p.Extensions, LevelObject)
	e.flush(&p.Extensions, LevelGeometry)
	e.boolean("extrude", p.Extrude, false)
	e.boolean("tessellate", p.Tessellate, false)
	encodeEnum(e, "altitudeMode", p.AltitudeMode)
	if p.OuterBoundary != nil {
		e.start("outerBoundaryIs", nil)
		e.linearRing(p.OuterBoundary)
		e.end()
	}
	for _, ring := range p.InnerBoundaries {
		e.start("innerBoundaryIs", nil)
		e.linearRing(ring)
		e.end()
	}
	e.flush(&p.Extensions, LevelPolygon)
	e.end()
}

func (e *encodeState) multiGeometry(m *MultiGeometry) {
	e.start("MultiGeometry", &m.IDAttributes)
	e.flush(&m.Extensions, LevelObject)
	e.flush(&m.Extensions, LevelGeometry)
	for _, g := range m.Geometries {
		e.geometry(g)
	}
	e.flush(&m.Extensions, LevelMultiGeometry)
	e.end()
}

func (e *encodeState) model(m *Model) {
	e.start("Model", &m.IDAttributes)
	e.flush(&m.Extensions, LevelObject)
	e.flush(&m.Extensions, LevelGeometry)
	encodeEnum(e, "altitudeMode", m.AltitudeMode)
	if m.Location != nil {
		e.location(m.Location)
	}
	if m.Orientation != nil {
		e.orientation(m.Orientation)
	}
	if m.Scale != nil {
		e.scale(m.Scale)
	}
	if m.Link != nil {
		e.link("Link", m.Link)
	}
	if m.ResourceMap != nil {
		e.resourceMap(m.ResourceMap)
	}
	e.flush(&m.Extensions, LevelModel)
	e.end()
}

func (e *encodeState) location(l *Location) {
	e.start("Location", &l.IDAttributes)
	e.flush(&l.Extensions, LevelObject)
	e.double("longitude", l.Longitude, 0)
	e.double("latitude", l.Latitude, 0)
	e.double("altitude", l.Altitude, 0)
	e.flush(&l.Extensions, LevelLocation)
	e.end()
}

func (e *encodeState) orientation(o *Orientation) {
	e.start("Orientation", &o.IDAttributes)
	e.flush(&o.Extensions, LevelObject)
	e.double("heading", o.Heading, 0)
	e.double("tilt", o.Tilt, 0)
	e.double("roll", o.Roll, 0)
	e.flush(&o.Extensions, LevelOrientation)
	e.end()
}

func (e *encodeState) scale(s *Scale) {
	e.start("Scale", &s.IDAttributes)
	e.flush(&s.Extensions, LevelObject)
	e.double("x", s.X, 1)
	e.double("y", s.Y, 1)
	e.double("z", s.Z, 1)
	e.flush(&s.Extensions, LevelScale)
	e.end()
}

func (e *encodeState) resourceMap(rm *ResourceMap) {
	e.start("ResourceMap", &rm.IDAttributes)
	e.flush(&rm.Extensions, LevelObject)
	for _, a := range rm.Aliases {
		e.alias(a)
	}
	e.flush(&rm.Extensions, LevelResourceMap)
	e.end()
}

func (e *encodeState) alias(a *Alias) {
	e.start("Alias", &a.IDAttributes)
	e.flush(&a.Extensions, LevelObject)
	e.str("targetHref", a.TargetHref)
	e.str("sourceHref", a.SourceHref)
	e.flush(&a.Extensions, LevelAlias)
	e.end()
}
