package kml

func (e *encodeState) styleSelector(s StyleSelector) {
	switch s := s.(type) {
	case *Style:
		e.style(s)
	case *StyleMap:
		e.styleMap(s)
	}
}

func (e *encodeState) style(st *Style) {
	e.start("Style", &st.IDAttributes)
	e.flush(&st.Extensions, LevelObject)
	e.flush(&st.Extensions, LevelStyleSelector)
	for _, s := range []SubStyle{st.IconStyle, st.LabelStyle, st.LineStyle, st.PolyStyle, st.BalloonStyle, st.ListStyle} {
		e.subStyle(s)
	}
	e.flush(&st.Extensions, LevelStyle)
	e.end()
}

// subStyle writes s. Typed nil pointers are skipped.
func (e *encodeState) subStyle(s SubStyle) {
	switch s := s.(type) {
	case *IconStyle:
		if s != nil {
			e.iconStyle(s)
		}
	case *LabelStyle:
		if s != nil {
			e.labelStyle(s)
		}
	case *LineStyle:
		if s != nil {
			e.lineStyle(s)
		}
	case *PolyStyle:
		if s != nil {
			e.polyStyle(s)
		}
	case *BalloonStyle:
		if s != nil {
			e.balloonStyle(s)
		}
	case *ListStyle:
		if s != nil {
			e.listStyle(s)
		}
	}
}

func (e *encodeState) styleMap(sm *StyleMap) {
	e.start("StyleMap", &sm.IDAttributes)
	e.flush(&sm.Extensions, LevelObject)
	e.flush(&sm.Extensions, LevelStyleSelector)
	for _, p := range sm.Pairs {
		e.pair(p)
	}
	e.flush(&sm.Extensions, LevelStyleMap)
	e.end()
}

func (e *encodeState) pair(p *Pair) {
	e.start("Pair", &p.IDAttributes)
	e.flush(&p.Extensions, LevelObject)
	encodeEnum(e, "key", p.Key)
	e.str("styleUrl", p.StyleURL)
	if p.Style != nil {
		e.styleSelector(p.Style)
	}
	e.flush(&p.Extensions, LevelPair)
	e.end()
}

// colorStyle writes the part of a color style up to its own fields.
func (e *encodeState) colorStyle(local string, ids *IDAttributes, x *Extensions, c ColorStyle) {
	e.start(local, ids)
	e.flush(x, LevelObject)
	e.flush(x, LevelSubStyle)
	f := c.colorStyle()
	e.color("color", f.Color, White)
	encodeEnum(e, "colorMode", f.ColorMode)
	e.flush(x, LevelColorStyle)
}

func (e *encodeState) iconStyle(s *IconStyle) {
	e.colorStyle("IconStyle", &s.IDAttributes, &s.Extensions, s)
	e.double("scale", s.Scale, 1)
	e.double("heading", s.Heading, 0)
	if s.Icon != nil {
		e.basicLink("Icon", s.Icon)
	}
	e.vec2("hotSpot", s.HotSpot)
	e.flush(&s.Extensions, LevelIconStyle)
	e.end()
}

func (e *encodeState) labelStyle(s *LabelStyle) {
	e.colorStyle("LabelStyle", &s.IDAttributes, &s.Extensions, s)
	e.double("scale", s.Scale, 1)
	e.flush(&s.Extensions, LevelLabelStyle)
	e.end()
}

func (e *encodeState) lineStyle(s *LineStyle) {
	e.colorStyle("LineStyle", &s.IDAttributes, &s.Extensions, s)
	e.double("width", s.Width, 1)
	e.flush(&s.Extensions, LevelLineStyle)
	e.end()
}

func (e *encodeState) polyStyle(s *PolyStyle) {
	e.colorStyle("PolyStyle", &s.IDAttributes, &s.Extensions, s)
	e.boolean("fill", s.Fill, true)
	e.boolean("outline", s.Outline, true)
	e.flush(&s.Extensions, LevelPolyStyle)
	e.end()
}

func (e *encodeState) balloonStyle(s *BalloonStyle) {
	e.start("BalloonStyle", &s.IDAttributes)
	e.flush(&s.Extensions, LevelObject)
	e.flush(&s.Extensions, LevelSubStyle)
	if e.gate.is(KML21) {
		e.color("color", s.BgColor, White)
	} else {
		e.color("bgColor", s.BgColor, White)
	}
	e.color("textColor", s.TextColor, Black)
	e.optText("text", s.Text)
	if s.DisplayMode != DisplayModeDefault && e.licensed("displayMode", v22...) {
		encodeEnum(e, "displayMode", s.DisplayMode)
	}
	e.flush(&s.Extensions, LevelBalloonStyle)
	e.end()
}

func (e *encodeState) listStyle(s *ListStyle) {
	e.start("ListStyle", &s.IDAttributes)
	e.flush(&s.Extensions, LevelObject)
	e.flush(&s.Extensions, LevelSubStyle)
	encodeEnum(e, "listItemType", s.ListItemType)
	if s.BgColor != White && e.licensed("bgColor", v22...) {
		e.color("bgColor", s.BgColor, White)
	}
	for _, icon := range s.ItemIcons {
		e.itemIcon(icon)
	}
	if s.MaxSnippetLines != 2 && e.licensed("maxSnippetLines", v22...) {
		e.integer("maxSnippetLines", s.MaxSnippetLines, 2)
	}
	e.flush(&s.Extensions, LevelListStyle)
	e.end()
}

func (e *encodeState) itemIcon(icon *ItemIcon) {
	e.start("ItemIcon", &icon.IDAttributes)
	e.flush(&icon.Extensions, LevelObject)
	if len(icon.State) > 0 {
		e.text("state", PlainText(joinStates(icon.State)))
	}
	e.str("href", icon.Href)
	e.flush(&icon.Extensions, LevelItemIcon)
	e.end()
}
