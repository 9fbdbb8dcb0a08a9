package kml

import "image/color"

// StyleSelector is either *Style or *StyleMap.
type StyleSelector interface {
	isStyleSelector()
}

// Style bundles the sub-styles a feature is drawn with.
type Style struct {
	IDAttributes
	IconStyle    *IconStyle
	LabelStyle   *LabelStyle
	LineStyle    *LineStyle
	PolyStyle    *PolyStyle
	BalloonStyle *BalloonStyle
	ListStyle    *ListStyle
	Extensions
}

func NewStyle() *Style { return &Style{} }

// set stores s in the slot for its type.
func (st *Style) set(s SubStyle) {
	switch s := s.(type) {
	case *IconStyle:
		st.IconStyle = s
	case *LabelStyle:
		st.LabelStyle = s
	case *LineStyle:
		st.LineStyle = s
	case *PolyStyle:
		st.PolyStyle = s
	case *BalloonStyle:
		st.BalloonStyle = s
	case *ListStyle:
		st.ListStyle = s
	}
}

// StyleMap switches between two styles by Pair key.
type StyleMap struct {
	IDAttributes
	Pairs []*Pair
	Extensions
}

func NewStyleMap() *StyleMap { return &StyleMap{} }

// Pair refers to a style by URL, holds it inline, or both.
type Pair struct {
	IDAttributes
	Key      StyleState
	StyleURL string
	Style    StyleSelector
	Extensions
}

func NewPair() *Pair { return &Pair{} }

func (*Style) isStyleSelector()    {}
func (*StyleMap) isStyleSelector() {}

// SubStyle is one of *IconStyle, *LabelStyle, *LineStyle, *PolyStyle,
// *BalloonStyle or *ListStyle.
type SubStyle interface {
	isSubStyle()
}

// ColorStyle is a SubStyle with a color: *IconStyle, *LabelStyle,
// *LineStyle or *PolyStyle.
type ColorStyle interface {
	SubStyle
	colorStyle() *ColorStyleFields
}

// ColorStyleFields are the fields every ColorStyle shares.
type ColorStyleFields struct {
	Color     color.NRGBA
	ColorMode ColorMode
}

func newColorStyleFields() ColorStyleFields {
	return ColorStyleFields{Color: White}
}

func (c *ColorStyleFields) colorStyle() *ColorStyleFields { return c }

type IconStyle struct {
	IDAttributes
	ColorStyleFields
	Scale   float64
	Heading float64
	Icon    *BasicLink
	HotSpot *Vec2
	Extensions
}

func NewIconStyle() *IconStyle {
	return &IconStyle{ColorStyleFields: newColorStyleFields(), Scale: 1}
}

type LabelStyle struct {
	IDAttributes
	ColorStyleFields
	Scale float64
	Extensions
}

func NewLabelStyle() *LabelStyle {
	return &LabelStyle{ColorStyleFields: newColorStyleFields(), Scale: 1}
}

type LineStyle struct {
	IDAttributes
	ColorStyleFields
	Width float64
	Extensions
}

func NewLineStyle() *LineStyle {
	return &LineStyle{ColorStyleFields: newColorStyleFields(), Width: 1}
}

type PolyStyle struct {
	IDAttributes
	ColorStyleFields
	Fill    bool
	Outline bool
	Extensions
}

func NewPolyStyle() *PolyStyle {
	return &PolyStyle{ColorStyleFields: newColorStyleFields(), Fill: true, Outline: true}
}

// BalloonStyle is how a feature's description balloon is drawn.
// BgColor is written as <color> in KML 2.1.
type BalloonStyle struct {
	IDAttributes
	BgColor     color.NRGBA
	TextColor   color.NRGBA
	Text        Text
	DisplayMode DisplayMode
	Extensions
}

func NewBalloonStyle() *BalloonStyle {
	return &BalloonStyle{BgColor: White, TextColor: Black}
}

type ListStyle struct {
	IDAttributes
	ListItemType    ListItemType
	BgColor         color.NRGBA
	ItemIcons       []*ItemIcon
	MaxSnippetLines int
	Extensions
}

func NewListStyle() *ListStyle {
	return &ListStyle{BgColor: White, MaxSnippetLines: 2}
}

// ItemIcon is the icon a list entry shows in the given states.
type ItemIcon struct {
	IDAttributes
	State []ItemIconState
	Href  string
	Extensions
}

func (*IconStyle) isSubStyle()    {}
func (*LabelStyle) isSubStyle()   {}
func (*LineStyle) isSubStyle()    {}
func (*PolyStyle) isSubStyle()    {}
func (*BalloonStyle) isSubStyle() {}
func (*ListStyle) isSubStyle()    {}
