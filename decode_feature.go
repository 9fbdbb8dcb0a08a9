package kml

import (
	"github.com/KimNorgaard/go-kml/atom"
	"github.com/KimNorgaard/go-kml/xal"
)

// feature reads the feature named local. It reports false when local
// names no feature. A nil feature with a nil error means the element was
// skipped.
func (d *decodeState) feature(local string) (Feature, bool, error) {
	var (
		f   Feature
		err error
	)
	switch local {
	case "Placemark":
		f, err = d.placemark()
	case "Document":
		f, err = d.document()
	case "Folder":
		f, err = d.folder()
	case "NetworkLink":
		f, err = d.networkLink()
	case "GroundOverlay":
		f, err = d.groundOverlay()
	case "ScreenOverlay":
		f, err = d.screenOverlay()
	case "PhotoOverlay":
		ok, lerr := d.licensed("PhotoOverlay", v22...)
		if !ok {
			return nil, true, lerr
		}
		f, err = d.photoOverlay()
	default:
		return nil, false, nil
	}
	return f, true, err
}

// featureField reads key into ff if it is one of the shared feature
// fields.
func (d *decodeState) featureField(ff *FeatureFields, key string) (bool, error) {
	var err error
	switch key {
	case "name":
		ff.Name, err = d.raw()
	case "visibility":
		ff.Visibility, err = d.boolean()
	case "open":
		ff.Open, err = d.boolean()
	case "atom:author":
		if ok, err := d.licensed(key, v22...); !ok {
			return true, err
		}
		ff.Author, err = atom.ReadAuthor(d.r)
	case "atom:link":
		if ok, err := d.licensed(key, v22...); !ok {
			return true, err
		}
		ff.AtomLink, err = atom.ReadLink(d.r)
	case "address":
		ff.Address, err = d.raw()
	case "xal:AddressDetails":
		if ok, err := d.licensed(key, v22...); !ok {
			return true, err
		}
		ff.AddressDetails, err = xal.ReadAddressDetails(d.r)
	case "phoneNumber":
		ff.PhoneNumber, err = d.raw()
	case "Snippet":
		ff.Snippet, err = d.snippet()
	case "description":
		ff.Description, err = d.text()
	case "styleUrl":
		ff.StyleURL, err = d.str()
	case "Region":
		ff.Region, err = d.region()
	case "Metadata":
		ff.Metadata, err = d.r.ReadElement()
	case "ExtendedData":
		if ok, err := d.licensed(key, v22...); !ok {
			return true, err
		}
		ff.ExtendedData, err = d.extendedData()
	default:
		if v, ok, err := d.view(key); ok {
			if v != nil {
				ff.View = v
			}
			return true, err
		}
		if t, ok, err := d.timePrimitive(key); ok {
			if t != nil {
				ff.Time = t
			}
			return true, err
		}
		if s, ok, err := d.styleSelector(key); ok {
			if s != nil {
				ff.StyleSelectors = append(ff.StyleSelectors, s)
			}
			return true, err
		}
		return false, nil
	}
	return true, err
}

func (d *decodeState) snippet() (*Snippet, error) {
	s := NewSnippet()
	if v, ok := d.r.Current().Attribute("maxLines"); ok {
		n, err := parseInt(v)
		if err != nil {
			return nil, d.located(err)
		}
		s.MaxLines = n
	}
	t, err := d.text()
	if err != nil {
		return nil, err
	}
	s.Text = t
	return s, nil
}

func (d *decodeState) placemark() (*Placemark, error) {
	p := NewPlacemark()
	d.ids(&p.IDAttributes)
	err := d.frame(frame{
		stop:   "Placemark",
		ext:    &p.Extensions,
		levels: []Level{LevelObject, LevelFeature, LevelPlacemark},
		sub: func(v any) bool {
			p.Geometry = &ExtensionGeometry{Value: v}
			return true
		},
		child: func(key string) (bool, error) {
			if ok, err := d.featureField(&p.FeatureFields, key); ok || err != nil {
				return true, err
			}
			g, ok, err := d.geometry(key)
			if g != nil {
				p.Geometry = g
			}
			return ok, err
		},
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// children reads a child feature of a container.
func (d *decodeState) children(fs *[]Feature, key string) (bool, error) {
	f, ok, err := d.feature(key)
	if f != nil {
		*fs = append(*fs, f)
	}
	return ok, err
}

func (d *decodeState) document() (*Document, error) {
	doc := NewDocument()
	d.ids(&doc.IDAttributes)
	err := d.frame(frame{
		stop:   "Document",
		ext:    &doc.Extensions,
		levels: []Level{LevelObject, LevelFeature, LevelContainer, LevelDocument},
		sub: func(v any) bool {
			doc.Features = append(doc.Features, &ExtensionFeature{Value: v})
			return true
		},
		child: func(key string) (bool, error) {
			if key == "Schema" {
				ok, err := d.licensed(key, v22...)
				if !ok {
					return true, err
				}
				s, err := d.schema()
				if s != nil {
					doc.Schemas = append(doc.Schemas, s)
				}
				return true, err
			}
			if ok, err := d.featureField(&doc.FeatureFields, key); ok || err != nil {
				return true, err
			}
			return d.children(&doc.Features, key)
		},
	})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func (d *decodeState) folder() (*Folder, error) {
	f := NewFolder()
	d.ids(&f.IDAttributes)
	err := d.frame(frame{
		stop:   "Folder",
		ext:    &f.Extensions,
		levels: []Level{LevelObject, LevelFeature, LevelContainer, LevelFolder},
		sub: func(v any) bool {
			f.Features = append(f.Features, &ExtensionFeature{Value: v})
			return true
		},
		child: func(key string) (bool, error) {
			if ok, err := d.featureField(&f.FeatureFields, key); ok || err != nil {
				return true, err
			}
			return d.children(&f.Features, key)
		},
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (d *decodeState) networkLink() (*NetworkLink, error) {
	nl := NewNetworkLink()
	d.ids(&nl.IDAttributes)
	err := d.frame(frame{
		stop:   "NetworkLink",
		ext:    &nl.Extensions,
		levels: []Level{LevelObject, LevelFeature, LevelNetworkLink},
		child: func(key string) (bool, error) {
			if ok, err := d.featureField(&nl.FeatureFields, key); ok || err != nil {
				return true, err
			}
			var err error
			switch key {
			case "refreshVisibility":
				nl.RefreshVisibility, err = d.boolean()
			case "flyToView":
				nl.FlyToView, err = d.boolean()
			case "Link", "Url":
				nl.Link, err = d.link(key)
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return nl, nil
}

// overlayField reads key into of if it is one of the shared overlay
// fields.
func (d *decodeState) overlayField(of *OverlayFields, key string) (bool, error) {
	var err error
	switch key {
	case "color":
		of.Color, err = d.color()
	case "drawOrder":
		of.DrawOrder, err = d.integer()
	case "Icon":
		of.Icon, err = d.link(key)
	default:
		return false, nil
	}
	return true, err
}

func (d *decodeState) groundOverlay() (*GroundOverlay, error) {
	g := NewGroundOverlay()
	d.ids(&g.IDAttributes)
	err := d.frame(frame{
		stop:   "GroundOverlay",
		ext:    &g.Extensions,
		levels: []Level{LevelObject, LevelFeature, LevelOverlay, LevelGroundOverlay},
		child: func(key string) (bool, error) {
			if ok, err := d.featureField(&g.FeatureFields, key); ok || err != nil {
				return true, err
			}
			if ok, err := d.overlayField(&g.OverlayFields, key); ok || err != nil {
				return true, err
			}
			var err error
			switch key {
			case "altitude":
				g.Altitude, err = d.double()
			case "altitudeMode":
				g.AltitudeMode, err = decodeEnum(d, ParseAltitudeMode)
			case "LatLonBox":
				g.LatLonBox, err = d.latLonBox()
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (d *decodeState) screenOverlay() (*ScreenOverlay, error) {
	s := NewScreenOverlay()
	d.ids(&s.IDAttributes)
	err := d.frame(frame{
		stop:   "ScreenOverlay",
		ext:    &s.Extensions,
		levels: []Level{LevelObject, LevelFeature, LevelOverlay, LevelScreenOverlay},
		child: func(key string) (bool, error) {
			if ok, err := d.featureField(&s.FeatureFields, key); ok || err != nil {
				return true, err
			}
			if ok, err := d.overlayField(&s.OverlayFields, key); ok || err != nil {
				return true, err
			}
			var err error
			switch key {
			case "overlayXY":
				s.OverlayXY, err = d.vec2()
			case "screenXY":
				s.ScreenXY, err = d.vec2()
			case "rotationXY":
				s.RotationXY, err = d.vec2()
			case "size":
				s.Size, err = d.vec2()
			case "rotation":
				s.Rotation, err = d.double()
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

func (d *decodeState) photoOverlay() (*PhotoOverlay, error) {
	p := NewPhotoOverlay()
	d.ids(&p.IDAttributes)
	err := d.frame(frame{
		stop:   "PhotoOverlay",
		ext:    &p.Extensions,
		levels: []Level{LevelObject, LevelFeature, LevelOverlay, LevelPhotoOverlay},
		child: func(key string) (bool, error) {
			if ok, err := d.featureField(&p.FeatureFields, key); ok || err != nil {
				return true, err
			}
			if ok, err := d.overlayField(&p.OverlayFields, key); ok || err != nil {
				return true, err
			}
			var err error
			switch key {
			case "rotation":
				p.Rotation, err = d.double()
			case "ViewVolume":
				p.ViewVolume, err = d.viewVolume()
			case "ImagePyramid":
				p.ImagePyramid, err = d.imagePyramid()
			case "Point":
				p.Point, err = d.point()
			case "shape":
				p.Shape, err = decodeEnum(d, ParseShape)
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

func (d *decodeState) viewVolume() (*ViewVolume, error) {
	v := &ViewVolume{}
	d.ids(&v.IDAttributes)
	err := d.frame(frame{
		stop:   "ViewVolume",
		ext:    &v.Extensions,
		levels: []Level{LevelObject, LevelViewVolume},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "leftFov":
				v.LeftFov, err = d.double()
			case "rightFov":
				v.RightFov, err = d.double()
			case "bottomFov":
				v.BottomFov, err = d.double()
			case "topFov":
				v.TopFov, err = d.double()
			case "near":
				v.Near, err = d.double()
			default:
				return false, nil
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (d *decodeState) imagePyramid() (*ImagePyramid, error) {
	p := NewImagePyramid()
	d.ids(&p.IDAttributes)
	err := d.frame(frame{
		stop:   "ImagePyramid",
		ext:    &p.Extensions,
		levels: []Level{LevelObject, LevelImagePyramid},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "tileSize":
				p.TileSize, err = d.integer()
			case "maxWidth":
				p.MaxWidth, err = d.integer()
			case "maxHeight":
				p.MaxHeight, err = d.integer()
			case "gridOrigin":
				p.GridOrigin, err = decodeEnum(d, ParseGridOrigin)
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
