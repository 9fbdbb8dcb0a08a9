package kml

import "strings"

// styleSelector reads the style selector named local. It reports false
// when local names no style selector.
func (d *decodeState) styleSelector(local string) (StyleSelector, bool, error) {
	var (
		s   StyleSelector
		err error
	)
	switch local {
	case "Style":
		s, err = d.style()
	case "StyleMap":
		s, err = d.styleMap()
	default:
		return nil, false, nil
	}
	return s, true, err
}

// subStyle reads the sub-style named local. It reports false when local
// names no sub-style.
func (d *decodeState) subStyle(local string) (SubStyle, bool, error) {
	if c, ok, err := d.colorStyle(local); ok {
		return c, true, err
	}
	var (
		s   SubStyle
		err error
	)
	switch local {
	case "BalloonStyle":
		s, err = d.balloonStyle()
	case "ListStyle":
		s, err = d.listStyle()
	default:
		return nil, false, nil
	}
	return s, true, err
}

// colorStyle reads the color style named local. It reports false when
// local names no color style.
func (d *decodeState) colorStyle(local string) (ColorStyle, bool, error) {
	var (
		c   ColorStyle
		err error
	)
	switch local {
	case "IconStyle":
		c, err = d.iconStyle()
	case "LabelStyle":
		c, err = d.labelStyle()
	case "LineStyle":
		c, err = d.lineStyle()
	case "PolyStyle":
		c, err = d.polyStyle()
	default:
		return nil, false, nil
	}
	return c, true, err
}

func (d *decodeState) style() (*Style, error) {
	st := NewStyle()
	d.ids(&st.IDAttributes)
	err := d.frame(frame{
		stop:   "Style",
		ext:    &st.Extensions,
		levels: []Level{LevelObject, LevelStyleSelector, LevelStyle},
		child: func(key string) (bool, error) {
			s, ok, err := d.subStyle(key)
			if err == nil && s != nil {
				st.set(s)
			}
			return ok, err
		},
	})
	if err != nil {
		return nil, err
	}
	return st, nil
}

func (d *decodeState) styleMap() (*StyleMap, error) {
	sm := NewStyleMap()
	d.ids(&sm.IDAttributes)
	err := d.frame(frame{
		stop:   "StyleMap",
		ext:    &sm.Extensions,
		levels: []Level{LevelObject, LevelStyleSelector, LevelStyleMap},
		child: func(key string) (bool, error) {
			if key != "Pair" {
				return false, nil
			}
			p, err := d.pair()
			if p != nil {
				sm.Pairs = append(sm.Pairs, p)
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return sm, nil
}

func (d *decodeState) pair() (*Pair, error) {
	p := NewPair()
	d.ids(&p.IDAttributes)
	err := d.frame(frame{
		stop:   "Pair",
		ext:    &p.Extensions,
		levels: []Level{LevelObject, LevelPair},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "key":
				p.Key, err = decodeEnum(d, ParseStyleState)
			case "styleUrl":
				p.StyleURL, err = d.str()
			default:
				s, ok, err := d.styleSelector(key)
				if err == nil && s != nil {
					p.Style = s
				}
				return ok, err
			}
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// colorStyleField reads key into c if it is one of the shared color style
// fields.
func (d *decodeState) colorStyleField(c *ColorStyleFields, key string) (bool, error) {
	var err error
	switch key {
	case "color":
		c.Color, err = d.color()
	case "colorMode":
		c.ColorMode, err = decodeEnum(d, ParseColorMode)
	default:
		return false, nil
	}
	return true, err
}

func (d *decodeState) iconStyle() (*IconStyle, error) {
	s := NewIconStyle()
	d.ids(&s.IDAttributes)
	err := d.frame(frame{
		stop:   "IconStyle",
		ext:    &s.Extensions,
		levels: []Level{LevelObject, LevelSubStyle, LevelColorStyle, LevelIconStyle},
		child: func(key string) (bool, error) {
			if ok, err := d.colorStyleField(&s.ColorStyleFields, key); ok {
				return true, err
			}
			var err error
			switch key {
			case "scale":
				s.Scale, err = d.double()
			case "heading":
				s.Heading, err = d.double()
			case "Icon":
				s.Icon, err = d.basicLink(key)
			case "hotSpot":
				s.HotSpot, err = d.vec2()
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

func (d *decodeState) labelStyle() (*LabelStyle, error) {
	s := NewLabelStyle()
	d.ids(&s.IDAttributes)
	err := d.frame(frame{
		stop:   "LabelStyle",
		ext:    &s.Extensions,
		levels: []Level{LevelObject, LevelSubStyle, LevelColorStyle, LevelLabelStyle},
		child: func(key string) (bool, error) {
			if ok, err := d.colorStyleField(&s.ColorStyleFields, key); ok {
				return true, err
			}
			if key != "scale" {
				return false, nil
			}
			var err error
			s.Scale, err = d.double()
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (d *decodeState) lineStyle() (*LineStyle, error) {
	s := NewLineStyle()
	d.ids(&s.IDAttributes)
	err := d.frame(frame{
		stop:   "LineStyle",
		ext:    &s.Extensions,
		levels: []Level{LevelObject, LevelSubStyle, LevelColorStyle, LevelLineStyle},
		child: func(key string) (bool, error) {
			if ok, err := d.colorStyleField(&s.ColorStyleFields, key); ok {
				return true, err
			}
			if key != "width" {
				return false, nil
			}
			var err error
			s.Width, err = d.double()
			return true, err
		},
	})
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (d *decodeState) polyStyle() (*PolyStyle, error) {
	s := NewPolyStyle()
	d.ids(&s.IDAttributes)
	err := d.frame(frame{
		stop:   "PolyStyle",
		ext:    &s.Extensions,
		levels: []Level{LevelObject, LevelSubStyle, LevelColorStyle, LevelPolyStyle},
		child: func(key string) (bool, error) {
			if ok, err := d.colorStyleField(&s.ColorStyleFields, key); ok {
				return true, err
			}
			var err error
			switch key {
			case "fill":
				s.Fill, err = d.boolean()
			case "outline":
				s.Outline, err = d.boolean()
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

func (d *decodeState) balloonStyle() (*BalloonStyle, error) {
	s := NewBalloonStyle()
	d.ids(&s.IDAttributes)
	err := d.frame(frame{
		stop:   "BalloonStyle",
		ext:    &s.Extensions,
		levels: []Level{LevelObject, LevelSubStyle, LevelBalloonStyle},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "color":
				s.BgColor, err = d.color()
			case "bgColor":
				if ok, err := d.licensed(key, v22...); !ok {
					return true, err
				}
				s.BgColor, err = d.color()
			case "textColor":
				s.TextColor, err = d.color()
			case "text":
				s.Text, err = d.text()
			case "displayMode":
				if ok, err := d.licensed(key, v22...); !ok {
					return true, err
				}
				s.DisplayMode, err = decodeEnum(d, ParseDisplayMode)
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

func (d *decodeState) listStyle() (*ListStyle, error) {
	s := NewListStyle()
	d.ids(&s.IDAttributes)
	err := d.frame(frame{
		stop:   "ListStyle",
		ext:    &s.Extensions,
		levels: []Level{LevelObject, LevelSubStyle, LevelListStyle},
		child: func(key string) (bool, error) {
			var err error
			switch key {
			case "listItemType":
				s.ListItemType, err = decodeEnum(d, ParseListItemType)
			case "bgColor":
				if ok, err := d.licensed(key, v22...); !ok {
					return true, err
				}
				s.BgColor, err = d.color()
			case "ItemIcon":
				var icon *ItemIcon
				if icon, err = d.itemIcon(); icon != nil {
					s.ItemIcons = append(s.ItemIcons, icon)
				}
			case "maxSnippetLines":
				if ok, err := d.licensed(key, v22...); !ok {
					return true, err
				}
				s.MaxSnippetLines, err = d.integer()
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

func (d *decodeState) itemIcon() (*ItemIcon, error) {
	icon := &ItemIcon{}
	d.ids(&icon.IDAttributes)
	err := d.frame(frame{
		stop:   "ItemIcon",
		ext:    &icon.Extensions,
		levels: []Level{LevelObject, LevelItemIcon},
		child: func(key string) (bool, error) {
			switch key {
			case "state":
				s, err := d.str()
				if err != nil {
					return true, err
				}
				for _, f := range strings.Fields(s) {
					st, err := ParseItemIconState(f)
					if err != nil {
						return true, d.located(err)
					}
					icon.State = append(icon.State, st)
				}
				return true, nil
			case "href":
				var err error
				icon.Href, err = d.str()
				return true, err
			}
			return false, nil
		},
	})
	if err != nil {
		return nil, err
	}
	return icon, nil
}
