package kml

// view reads the view named local. It reports false when local names no
// view.
func (d *decodeState) view(local string) (View, bool, error) {
	var (
		v   View
		err error
	)
	switch local {
	case "LookAt":
		v, err = d.lookAt()
	case "Camera":
		ok, lerr := d.licensed(local, v22...)
		if !ok {
			return nil, true, lerr
		}
		v, err = d.camera()
	default:
		return nil, false, nil
	}
	return v, true, err
}

// viewField reads key into v if it is one of the fields LookAt and Camera
// share.
func (d *decodeState) viewField(v *ViewFields, key string) (bool, error) {
	var err error
	switch key {
	case "longitude":
		v.Longitude, err = d.double()
	case "latitude":
		v.Latitude, err = d.double()
	case "altitude":
		v.Altitude, err = d.double()
	case "heading":
		v.Heading, err = d.double()
	case "tilt":
		v.Tilt, err = d.double()
	case "altitudeMode":
		v.AltitudeMode, err = decodeEnum(d, ParseAltitudeMode)
	default:
		return false, nil
	}
	return true, err
}

func (d *decodeState) lookAt() (*LookAt, error) {
	l := NewLookAt()
	d.ids(&l.IDAttributes)
	err := d.frame(frame{
		stop:   "LookAt",
		ext:    &l.Extensions,
		levels: []Level{LevelObject, LevelView, LevelLookAt},
		child: func(key string) (bool, error) {
			if ok, err := d.viewField(&l.ViewFields, key); ok {
				return true, err
			}
			if key != "range" {
				return false, nil
			}
			var err error
			l.Range, err = d.double()
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (d *decodeState) camera() (*Camera, error) {
	c := NewCamera()
	d.ids(&c.IDAttributes)
	err := d.frame(frame{
		stop:   "Camera",
		ext:    &c.Extensions,
		levels: []Level{LevelObject, LevelView, LevelCamera},
		child: func(key string) (bool, error) {
			if ok, err := d.viewField(&c.ViewFields, key); ok {
				return true, err
			}
			if key != "roll" {
				return false, nil
			}
			var err error
			c.Roll, err = d.double()
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// timePrimitive reads the time primitive named local. It reports false
// when local names no time primitive.
func (d *decodeState) timePrimitive(local string) (TimePrimitive, bool, error) {
	var (
		t   TimePrimitive
		err error
	)
	switch local {
	case "TimeSpan":
		t, err = d.timeSpan()
	case "TimeStamp":
		t, err = d.timeStamp()
	default:
		return nil, false, nil
	}
	return t, true, err
}

func (d *decodeState) timeSpan() (*TimeSpan, error) {
	t := &TimeSpan{}
	d.ids(&t.IDAttributes)
	err := d.frame(frame{
		stop:   "TimeSpan",
		ext:    &t.Extensions,
		levels: []Level{LevelObject, LevelTimePrimitive, LevelTimeSpan},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "begin":
				t.Begin, err = d.dateTime()
			case "end":
				t.End, err = d.dateTime()
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (d *decodeState) timeStamp() (*TimeStamp, error) {
	t := &TimeStamp{}
	d.ids(&t.IDAttributes)
	err := d.frame(frame{
		stop:   "TimeStamp",
		ext:    &t.Extensions,
		levels: []Level{LevelObject, LevelTimePrimitive, LevelTimeStamp},
		child: func(key string) (bool, error) {
			if key != "when" {
				return false, nil
			}
			var err error
			t.When, err = d.dateTime()
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// abstractLatLonBox reads the box named local. It reports false when local
// names no box.
func (d *decodeState) abstractLatLonBox(local string) (AbstractLatLonBox, bool, error) {
	var (
		b   AbstractLatLonBox
		err error
	)
	switch local {
	case "LatLonBox":
		b, err = d.latLonBox()
	case "LatLonAltBox":
		b, err = d.latLonAltBox()
	default:
		return nil, false, nil
	}
	return b, true, err
}

// boundsField reads key into b if it is one of the edges of a box.
func (d *decodeState) boundsField(b AbstractLatLonBox, key string) (bool, error) {
	bounds := b.Box()
	var err error
	switch key {
	case "north":
		bounds.North, err = d.double()
	case "south":
		bounds.South, err = d.double()
	case "east":
		bounds.East, err = d.double()
	case "west":
		bounds.West, err = d.double()
	default:
		return false, nil
	}
	return true, err
}

func (d *decodeState) latLonBox() (*LatLonBox, error) {
	b := NewLatLonBox()
	d.ids(&b.IDAttributes)
	err := d.frame(frame{
		stop:   "LatLonBox",
		ext:    &b.Extensions,
		levels: []Level{LevelObject, LevelAbstractLatLonBox, LevelLatLonBox},
		child: func(key string) (bool, error) {
			if ok, err := d.boundsField(b, key); ok {
				return true, err
			}
			if key != "rotation" {
				return false, nil
			}
			var err error
			b.Rotation, err = d.double()
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (d *decodeState) latLonAltBox() (*LatLonAltBox, error) {
	b := NewLatLonAltBox()
	d.ids(&b.IDAttributes)
	err := d.frame(frame{
		stop:   "LatLonAltBox",
		ext:    &b.Extensions,
		levels: []Level{LevelObject, LevelAbstractLatLonBox, LevelLatLonAltBox},
		child: func(key string) (bool, error) {
			if ok, err := d.boundsField(b, key); ok {
				return true, err
			}
			var err error
			switch key {
			case "minAltitude":
				b.MinAltitude, err = d.double()
			case "maxAltitude":
				b.MaxAltitude, err = d.double()
			case "altitudeMode":
				b.AltitudeMode, err = decodeEnum(d, ParseAltitudeMode)
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (d *decodeState) region() (*Region, error) {
	r := NewRegion()
	d.ids(&r.IDAttributes)
	err := d.frame(frame{
		stop:   "Region",
		ext:    &r.Extensions,
		levels: []Level{LevelObject, LevelRegion},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "LatLonAltBox":
				r.LatLonAltBox, err = d.latLonAltBox()
			case "Lod":
				r.Lod, err = d.lod()
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return r, nil
}

func (d *decodeState) lod() (*Lod, error) {
	l := NewLod()
	d.ids(&l.IDAttributes)
	err := d.frame(frame{
		stop:   "Lod",
		ext:    &l.Extensions,
		levels: []Level{LevelObject, LevelLod},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "minLodPixels":
				l.MinLodPixels, err = d.double()
			case "maxLodPixels":
				l.MaxLodPixels, err = d.double()
			case "minFadeExtent":
				l.MinFadeExtent, err = d.double()
			case "maxFadeExtent":
				l.MaxFadeExtent, err = d.double()
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

// basicLink reads a link that only has an href. The same element name
// stands for a full Link elsewhere, so the caller names the stop tag.
func (d *decodeState) basicLink(stop string) (*BasicLink, error) {
	l := NewBasicLink()
	d.ids(&l.IDAttributes)
	err := d.frame(frame{
		stop:   stop,
		ext:    &l.Extensions,
		levels: []Level{LevelObject, LevelBasicLink},
		child: func(key string) (bool, error) {
			if key != "href" {
				return false, nil
			}
			var err error
			l.Href, err = d.str()
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return l, nil
}

// link reads a Link, Url or Icon element; stop is the element's name.
func (d *decodeState) link(stop string) (*Link, error) {
	l := NewLink()
	d.ids(&l.IDAttributes)
	err := d.frame(frame{
		stop:   stop,
		ext:    &l.Extensions,
		levels: []Level{LevelObject, LevelBasicLink, LevelLink},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "href":
				l.Href, err = d.str()
			case "refreshMode":
				l.RefreshMode, err = decodeEnum(d, ParseRefreshMode)
			case "refreshInterval":
				l.RefreshInterval, err = d.double()
			case "viewRefreshMode":
				l.ViewRefreshMode, err = decodeEnum(d, ParseViewRefreshMode)
			case "viewRefreshTime":
				l.ViewRefreshTime, err = d.double()
			case "viewBoundScale":
				l.ViewBoundScale, err = d.double()
			case "viewFormat":
				l.ViewFormat, err = d.raw()
			case "httpQuery":
				l.HTTPQuery, err = d.raw()
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

func (d *decodeState) extendedData() (*ExtendedData, error) {
	ed := &ExtendedData{}
	err := d.frame(frame{
		stop:   "ExtendedData",
		ext:    &ed.Extensions,
		levels: []Level{LevelExtendedData},
		child: func(key string) (bool, error) {
			switch key {
			case "Data":
				data, err := d.data()
				if data != nil {
					ed.Data = append(ed.Data, data)
				}
				return true, err
			case "SchemaData":
				sd, err := d.schemaData()
				if sd != nil {
					ed.SchemaData = append(ed.SchemaData, sd)
				}
				return true, err
			}
			return false, nil
		},
	})
	if err != nil {
		return nil, err
	}
	return ed, nil
}

func (d *decodeState) data() (*Data, error) {
	data := &Data{}
	d.ids(&data.IDAttributes)
	data.Name, _ = d.r.Current().Attribute("name")
	err := d.frame(frame{
		stop:   "Data",
		ext:    &data.Extensions,
		levels: []Level{LevelObject, LevelData},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "displayName":
				data.DisplayName, err = d.text()
			case "value":
				data.Value, err = d.raw()
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (d *decodeState) schemaData() (*SchemaData, error) {
	sd := &SchemaData{}
	d.ids(&sd.IDAttributes)
	sd.SchemaURL, _ = d.r.Current().Attribute("schemaUrl")
	err := d.frame(frame{
		stop:   "SchemaData",
		ext:    &sd.Extensions,
		levels: []Level{LevelObject, LevelSchemaData},
		child: func(key string) (bool, error) {
			if key != "SimpleData" {
				return false, nil
			}
			name, _ := d.r.Current().Attribute("name")
			v, err := d.raw()
			sd.SimpleData = append(sd.SimpleData, &SimpleData{Name: name, Value: v})
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return sd, nil
}

func (d *decodeState) schema() (*Schema, error) {
	s := &Schema{}
	start := d.r.Current()
	s.ID, _ = start.Attribute("id")
	s.Name, _ = start.Attribute("name")
	err := d.frame(frame{
		stop: "Schema",
		child: func(key string) (bool, error) {
			if key != "SimpleField" {
				return false, nil
			}
			f, err := d.simpleField()
			if f != nil {
				s.SimpleFields = append(s.SimpleFields, f)
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (d *decodeState) simpleField() (*SimpleField, error) {
	f := &SimpleField{}
	start := d.r.Current()
	f.Type, _ = start.Attribute("type")
	f.Name, _ = start.Attribute("name")
	err := d.frame(frame{
		stop: "SimpleField",
		child: func(key string) (bool, error) {
			if key != "displayName" {
				return false, nil
			}
			var err error
			f.DisplayName, err = d.text()
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (d *decodeState) networkLinkControl() (*NetworkLinkControl, error) {
	c := NewNetworkLinkControl()
	err := d.frame(frame{
		stop:   "NetworkLinkControl",
		ext:    &c.Extensions,
		levels: []Level{LevelNetworkLinkControl},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "minRefreshPeriod":
				c.MinRefreshPeriod, err = d.double()
			case "maxSessionLength":
				c.MaxSessionLength, err = d.double()
			case "cookie":
				c.Cookie, err = d.raw()
			case "message":
				c.Message, err = d.raw()
			case "linkName":
				c.LinkName, err = d.raw()
			case "linkDescription":
				c.LinkDescription, err = d.text()
			case "linkSnippet":
				c.LinkSnippet, err = d.snippet()
			case "expires":
				c.Expires, err = d.dateTime()
			case "Update":
				c.Update, err = d.update()
			default:
				v, ok, err := d.view(key)
				if v != nil && err == nil {
					c.View = v
				}
				return ok, err
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (d *decodeState) update() (*Update, error) {
	u := &Update{}
	err := d.frame(frame{
		stop: "Update",
		child: func(key string) (bool, error) {
			var (
				op  UpdateOperation
				err error
			)
			switch key {
			case "targetHref":
				u.TargetHref, err = d.str()
				return true, err
			case "Create":
				op, err = d.create()
			case "Delete":
				op, err = d.delete()
			case "Change":
				op, err = d.change()
			default:
				return false, nil
			}
			if err == nil {
				u.Operations = append(u.Operations, op)
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (d *decodeState) create() (*Create, error) {
	c := &Create{}
	err := d.frame(frame{
		stop: "Create",
		child: func(key string) (bool, error) {
			// only containers can take new features
			switch key {
			case "Document", "Folder":
			default:
				return false, nil
			}
			f, ok, err := d.feature(key)
			if !ok || err != nil {
				return ok, err
			}
			c.Containers = append(c.Containers, f.(Container))
			return true, nil
		},
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (d *decodeState) delete() (*Delete, error) {
	del := &Delete{}
	err := d.frame(frame{
		stop: "Delete",
		child: func(key string) (bool, error) {
			return d.children(&del.Features, key)
		},
	})
	if err != nil {
		return nil, err
	}
	return del, nil
}

func (d *decodeState) change() (*Change, error) {
	c := &Change{}
	err := d.frame(frame{
		stop: "Change",
		child: func(key string) (bool, error) {
			o, ok, err := d.object(key)
			if o != nil && err == nil {
				c.Objects = append(c.Objects, o)
			}
			return ok, err
		},
	})
	if err != nil {
		return nil, err
	}
	return c, nil
}

// object reads any Object-family element named local. It reports false
// when local names no object.
func (d *decodeState) object(local string) (Object, bool, error) {
	type reader func(string) (any, bool, error)
	for _, read := range []reader{
		func(k string) (any, bool, error) { return d.feature(k) },
		func(k string) (any, bool, error) { return d.geometry(k) },
		func(k string) (any, bool, error) { return d.styleSelector(k) },
		func(k string) (any, bool, error) { return d.subStyle(k) },
		func(k string) (any, bool, error) { return d.view(k) },
		func(k string) (any, bool, error) { return d.timePrimitive(k) },
		func(k string) (any, bool, error) { return d.abstractLatLonBox(k) },
	} {
		v, ok, err := read(local)
		if !ok {
			continue
		}
		o, _ := v.(Object)
		return o, true, err
	}
	var (
		o   Object
		err error
	)
	switch local {
	case "Region":
		o, err = d.region()
	case "Lod":
		o, err = d.lod()
	case "Link", "Url", "Icon":
		o, err = d.link(local)
	case "Location":
		o, err = d.location()
	case "Orientation":
		o, err = d.orientation()
	case "Scale":
		o, err = d.scale()
	case "ResourceMap":
		o, err = d.resourceMap()
	case "Alias":
		o, err = d.alias()
	case "Pair":
		o, err = d.pair()
	case "ItemIcon":
		o, err = d.itemIcon()
	case "ViewVolume":
		o, err = d.viewVolume()
	case "ImagePyramid":
		o, err = d.imagePyramid()
	case "Data":
		o, err = d.data()
	case "SchemaData":
		o, err = d.schemaData()
	default:
		return nil, false, nil
	}
	return o, true, err
}
