package kml

func (e *encodeState) view(v View) {
	switch v := v.(type) {
	case *LookAt:
		e.lookAt(v)
	case *Camera:
		e.camera(v)
	}
}

func (e *encodeState) viewFields(v *ViewFields) {
	e.double("longitude", v.Longitude, 0)
	e.double("latitude", v.Latitude, 0)
	e.double("altitude", v.Altitude, 0)
	e.double("heading", v.Heading, 0)
	e.double("tilt", v.Tilt, 0)
}

func (e *encodeState) lookAt(l *LookAt) {
	e.start("LookAt", &l.IDAttributes)
	e.flush(&l.Extensions, LevelObject)
	e.flush(&l.Extensions, LevelView)
	e.viewFields(&l.ViewFields)
	e.double("range", l.Range, 0)
	encodeEnum(e, "altitudeMode", l.AltitudeMode)
	e.flush(&l.Extensions, LevelLookAt)
	e.end()
}

func (e *encodeState) camera(c *Camera) {
	if !e.licensed("Camera", v22...) {
		return
	}
	e.start("Camera", &c.IDAttributes)
	e.flush(&c.Extensions, LevelObject)
	e.flush(&c.Extensions, LevelView)
	e.viewFields(&c.ViewFields)
	e.double("roll", c.Roll, 0)
	encodeEnum(e, "altitudeMode", c.AltitudeMode)
	e.flush(&c.Extensions, LevelCamera)
	e.end()
}

func (e *encodeState) timePrimitive(t TimePrimitive) {
	switch t := t.(type) {
	case *TimeSpan:
		e.start("TimeSpan", &t.IDAttributes)
		e.flush(&t.Extensions, LevelObject)
		e.flush(&t.Extensions, LevelTimePrimitive)
		e.dateTime("begin", t.Begin)
		e.dateTime("end", t.End)
		e.flush(&t.Extensions, LevelTimeSpan)
		e.end()
	case *TimeStamp:
		e.start("TimeStamp", &t.IDAttributes)
		e.flush(&t.Extensions, LevelObject)
		e.flush(&t.Extensions, LevelTimePrimitive)
		e.dateTime("when", t.When)
		e.flush(&t.Extensions, LevelTimeStamp)
		e.end()
	}
}

func (e *encodeState) bounds(b *Bounds) {
	e.double("north", b.North, 180)
	e.double("south", b.South, -180)
	e.double("east", b.East, 180)
	e.double("west", b.West, -180)
}

func (e *encodeState) latLonBox(b *LatLonBox) {
	e.start("LatLonBox", &b.IDAttributes)
	e.flush(&b.Extensions, LevelObject)
	e.bounds(b.Box())
	e.flush(&b.Extensions, LevelAbstractLatLonBox)
	e.double("rotation", b.Rotation, 0)
	e.flush(&b.Extensions, LevelLatLonBox)
	e.end()
}

func (e *encodeState) latLonAltBox(b *LatLonAltBox) {
	e.start("LatLonAltBox", &b.IDAttributes)
	e.flush(&b.Extensions, LevelObject)
	e.bounds(b.Box())
	e.flush(&b.Extensions, LevelAbstractLatLonBox)
	e.double("minAltitude", b.MinAltitude, 0)
	e.double("maxAltitude", b.MaxAltitude, 0)
	encodeEnum(e, "altitudeMode", b.AltitudeMode)
	e.flush(&b.Extensions, LevelLatLonAltBox)
	e.end()
}

func (e *encodeState) region(r *Region) {
	e.start("Region", &r.IDAttributes)
	e.flush(&r.Extensions, LevelObject)
	if r.LatLonAltBox != nil {
		e.latLonAltBox(r.LatLonAltBox)
	}
	if r.Lod != nil {
		e.lod(r.Lod)
	}
	e.flush(&r.Extensions, LevelRegion)
	e.end()
}

func (e *encodeState) lod(l *Lod) {
	e.start("Lod", &l.IDAttributes)
	e.flush(&l.Extensions, LevelObject)
	e.double("minLodPixels", l.MinLodPixels, 0)
	e.double("maxLodPixels", l.MaxLodPixels, -1)
	e.double("minFadeExtent", l.MinFadeExtent, 0)
	e.double("maxFadeExtent", l.MaxFadeExtent, 0)
	e.flush(&l.Extensions, LevelLod)
	e.end()
}

func (e *encodeState) basicLink(local string, l *BasicLink) {
	e.start(local, &l.IDAttributes)
	e.flush(&l.Extensions, LevelObject)
	e.str("href", l.Href)
	e.flush(&l.Extensions, LevelBasicLink)
	e.end()
}

func (e *encodeState) link(local string, l *Link) {
	e.start(local, &l.IDAttributes)
	e.flush(&l.Extensions, LevelObject)
	e.str("href", l.Href)
	e.flush(&l.Extensions, LevelBasicLink)
	encodeEnum(e, "refreshMode", l.RefreshMode)
	e.double("refreshInterval", l.RefreshInterval, 4)
	encodeEnum(e, "viewRefreshMode", l.ViewRefreshMode)
	e.double("viewRefreshTime", l.ViewRefreshTime, 4)
	e.double("viewBoundScale", l.ViewBoundScale, 1)
	e.str("viewFormat", l.ViewFormat)
	e.str("httpQuery", l.HTTPQuery)
	e.flush(&l.Extensions, LevelLink)
	e.end()
}

func (e *encodeState) extendedData(ed *ExtendedData) {
	e.start("ExtendedData", nil)
	for _, d := range ed.Data {
		e.data(d)
	}
	for _, sd := range ed.SchemaData {
		e.schemaData(sd)
	}
	e.flush(&ed.Extensions, LevelExtendedData)
	e.end()
}

func (e *encodeState) data(d *Data) {
	e.start("Data", &d.IDAttributes)
	if d.Name != "" {
		e.attr("name", d.Name)
	}
	e.flush(&d.Extensions, LevelObject)
	e.optText("displayName", d.DisplayName)
	e.text("value", PlainText(d.Value))
	e.flush(&d.Extensions, LevelData)
	e.end()
}

func (e *encodeState) schemaData(sd *SchemaData) {
	e.start("SchemaData", &sd.IDAttributes)
	if sd.SchemaURL != "" {
		e.attr("schemaUrl", sd.SchemaURL)
	}
	e.flush(&sd.Extensions, LevelObject)
	for _, v := range sd.SimpleData {
		e.start("SimpleData", nil)
		e.attr("name", v.Name)
		if e.err == nil && v.Value != "" {
			e.err = e.w.Text(PlainText(v.Value))
		}
		e.end()
	}
	e.flush(&sd.Extensions, LevelSchemaData)
	e.end()
}

func (e *encodeState) schema(s *Schema) {
	e.start("Schema", nil)
	if s.Name != "" {
		e.attr("name", s.Name)
	}
	if s.ID != "" {
		e.attr("id", s.ID)
	}
	for _, f := range s.SimpleFields {
		e.start("SimpleField", nil)
		if f.Type != "" {
			e.attr("type", f.Type)
		}
		if f.Name != "" {
			e.attr("name", f.Name)
		}
		e.optText("displayName", f.DisplayName)
		e.end()
	}
	e.end()
}

func (e *encodeState) networkLinkControl(c *NetworkLinkControl) {
	e.start("NetworkLinkControl", nil)
	e.double("minRefreshPeriod", c.MinRefreshPeriod, 0)
	e.double("maxSessionLength", c.MaxSessionLength, -1)
	e.str("cookie", c.Cookie)
	e.str("message", c.Message)
	e.str("linkName", c.LinkName)
	e.optText("linkDescription", c.LinkDescription)
	e.snippet("linkSnippet", c.LinkSnippet)
	e.dateTime("expires", c.Expires)
	if c.Update != nil {
		e.update(c.Update)
	}
	if c.View != nil {
		e.view(c.View)
	}
	e.flush(&c.Extensions, LevelNetworkLinkControl)
	e.end()
}

func (e *encodeState) update(u *Update) {
	e.start("Update", nil)
	e.str("targetHref", u.TargetHref)
	for _, op := range u.Operations {
		switch op := op.(type) {
		case *Create:
			e.start("Create", nil)
			for _, c := range op.Containers {
				e.feature(c)
			}
			e.end()
		case *Delete:
			e.start("Delete", nil)
			for _, f := range op.Features {
				e.feature(f)
			}
			e.end()
		case *Change:
			e.start("Change", nil)
			for _, o := range op.Objects {
				e.object(o)
			}
			e.end()
		}
	}
	e.end()
}

// object writes any Object-family entity.
func (e *encodeState) object(o Object) {
	switch o := o.(type) {
	case Feature:
		e.feature(o)
	case Geometry:
		e.geometry(o)
	case StyleSelector:
		e.styleSelector(o)
	case SubStyle:
		e.subStyle(o)
	case View:
		e.view(o)
	case TimePrimitive:
		e.timePrimitive(o)
	case *LatLonBox:
		e.latLonBox(o)
	case *LatLonAltBox:
		e.latLonAltBox(o)
	case *Region:
		e.region(o)
	case *Lod:
		e.lod(o)
	case *Link:
		e.link("Link", o)
	case *BasicLink:
		e.basicLink("Icon", o)
	case *Location:
		e.location(o)
	case *Orientation:
		e.orientation(o)
	case *Scale:
		e.scale(o)
	case *ResourceMap:
		e.resourceMap(o)
	case *Alias:
		e.alias(o)
	case *Pair:
		e.pair(o)
	case *ItemIcon:
		e.itemIcon(o)
	case *ViewVolume:
		e.viewVolume(o)
	case *ImagePyramid:
		e.imagePyramid(o)
	case *Data:
		e.data(o)
	case *SchemaData:
		e.schemaData(o)
	}
}
