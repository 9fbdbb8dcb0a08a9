package kml

// geometry reads the geometry named local. It reports false when local
// names no geometry.
func (d *decodeState) geometry(local string) (Geometry, bool, error) {
	var (
		g   Geometry
		err error
	)
	switch local {
	case "Point":
		g, err = d.point()
	case "LineString":
		g, err = d.lineString()
	case "LinearRing":
		g, err = d.linearRing()
	case "Polygon":
		g, err = d.polygon()
	case "MultiGeometry":
		g, err = d.multiGeometry()
	case "Model":
		g, err = d.model()
	default:
		return nil, false, nil
	}
	return g, true, err
}

func (d *decodeState) point() (*Point, error) {
	p := NewPoint()
	d.ids(&p.IDAttributes)
	err := d.frame(frame{
		stop:   "Point",
		ext:    &p.Extensions,
		levels: []Level{LevelObject, LevelGeometry, LevelPoint},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "extrude":
				p.Extrude, err = d.boolean()
			case "altitudeMode":
				p.AltitudeMode, err = decodeEnum(d, ParseAltitudeMode)
			case "coordinates":
				p.Coordinates, err = d.coordinates()
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (d *decodeState) lineString() (*LineString, error) {
	l := NewLineString()
	d.ids(&l.IDAttributes)
	err := d.frame(frame{
		stop:   "LineString",
		ext:    &l.Extensions,
		levels: []Level{LevelObject, LevelGeometry, LevelLineString},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "extrude":
				l.Extrude, err = d.boolean()
			case "tessellate":
				l.Tessellate, err = d.boolean()
			case "altitudeMode":
				l.AltitudeMode, err = decodeEnum(d, ParseAltitudeMode)
			case "coordinates":
				l.Coordinates, err = d.coordinates()
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (d *decodeState) linearRing() (*LinearRing, error) {
	l := NewLinearRing()
	d.ids(&l.IDAttributes)
	err := d.frame(frame{
		stop:   "LinearRing",
		ext:    &l.Extensions,
		levels: []Level{LevelObject, LevelGeometry, LevelLinearRing},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "extrude":
				l.Extrude, err = d.boolean()
			case "tessellate":
				l.Tessellate, err = d.boolean()
			case "altitudeMode":
				l.AltitudeMode, err = decodeEnum(d, ParseAltitudeMode)
			case "coordinates":
				l.Coordinates, err = d.coordinates()
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (d *decodeState) polygon() (*Polygon, error) {
	p := NewPolygon()
	d.ids(&p.IDAttributes)
	err := d.frame(frame{
		stop:   "Polygon",
		ext:    &p.Extensions,
		levels: []Level{LevelObject, LevelGeometry, LevelPolygon},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "extrude":
				p.Extrude, err = d.boolean()
			case "tessellate":
				p.Tessellate, err = d.boolean()
			case "altitudeMode":
				p.AltitudeMode, err = decodeEnum(d, ParseAltitudeMode)
			case "outerBoundaryIs":
				p.OuterBoundary, err = d.boundary(key)
			case "innerBoundaryIs":
				var ring *LinearRing
				if ring, err = d.boundary(key); ring != nil {
					p.InnerBoundaries = append(p.InnerBoundaries, ring)
				}
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// boundary reads the ring of an outerBoundaryIs or innerBoundaryIs
// element.
func (d *decodeState) boundary(stop string) (*LinearRing, error) {
	var ring *LinearRing
	err := d.frame(frame{
		stop: stop,
		child: func(key string) (bool, error) {
			if key != "LinearRing" {
				return false, nil
			}
			var err error
			ring, err = d.linearRing()
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return ring, nil
}

func (d *decodeState) multiGeometry() (*MultiGeometry, error) {
	m := NewMultiGeometry()
	d.ids(&m.IDAttributes)
	err := d.frame(frame{
		stop:   "MultiGeometry",
		ext:    &m.Extensions,
		levels: []Level{LevelObject, LevelGeometry, LevelMultiGeometry},
		sub: func(v any) bool {
			m.Geometries = append(m.Geometries, &ExtensionGeometry{Value: v})
			return true
		},
		child: func(key string) (bool, error) {
			g, ok, err := d.geometry(key)
			if g != nil && err == nil {
				m.Geometries = append(m.Geometries, g)
			}
			return ok, err
		},
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (d *decodeState) model() (*Model, error) {
	m := NewModel()
	d.ids(&m.IDAttributes)
	err := d.frame(frame{
		stop:   "Model",
		ext:    &m.Extensions,
		levels: []Level{LevelObject, LevelGeometry, LevelModel},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "altitudeMode":
				m.AltitudeMode, err = decodeEnum(d, ParseAltitudeMode)
			case "Location":
				m.Location, err = d.location()
			case "Orientation":
				m.Orientation, err = d.orientation()
			case "Scale":
				m.Scale, err = d.scale()
			case "Link":
				m.Link, err = d.link(key)
			case "ResourceMap":
				m.ResourceMap, err = d.resourceMap()
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return m, nil
}

func (d *decodeState) location() (*Location, error) {
	l := &Location{}
	d.ids(&l.IDAttributes)
	err := d.frame(frame{
		stop:   "Location",
		ext:    &l.Extensions,
		levels: []Level{LevelObject, LevelLocation},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "longitude":
				l.Longitude, err = d.double()
			case "latitude":
				l.Latitude, err = d.double()
			case "altitude":
				l.Altitude, err = d.double()
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (d *decodeState) orientation() (*Orientation, error) {
	o := &Orientation{}
	d.ids(&o.IDAttributes)
	err := d.frame(frame{
		stop:   "Orientation",
		ext:    &o.Extensions,
		levels: []Level{LevelObject, LevelOrientation},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "heading":
				o.Heading, err = d.double()
			case "tilt":
				o.Tilt, err = d.double()
			case "roll":
				o.Roll, err = d.double()
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return o, nil
}

func (d *decodeState) scale() (*Scale, error) {
	s := NewScale()
	d.ids(&s.IDAttributes)
	err := d.frame(frame{
		stop:   "Scale",
		ext:    &s.Extensions,
		levels: []Level{LevelObject, LevelScale},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "x":
				s.X, err = d.double()
			case "y":
				s.Y, err = d.double()
			case "z":
				s.Z, err = d.double()
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (d *decodeState) resourceMap() (*ResourceMap, error) {
	rm := &ResourceMap{}
	d.ids(&rm.IDAttributes)
	err := d.frame(frame{
		stop:   "ResourceMap",
		ext:    &rm.Extensions,
		levels: []Level{LevelObject, LevelResourceMap},
		child: func(key string) (bool, error) {
			if key != "Alias" {
				return false, nil
			}
			a, err := d.alias()
			if a != nil {
				rm.Aliases = append(rm.Aliases, a)
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (d *decodeState) alias() (*Alias, error) {
	a := &Alias{}
	d.ids(&a.IDAttributes)
	err := d.frame(frame{
		stop:   "Alias",
		ext:    &a.Extensions,
		levels: []Level{LevelObject, LevelAlias},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "targetHref":
				a.TargetHref, err = d.str()
			case "sourceHref":
				a.SourceHref, err = d.str()
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}
