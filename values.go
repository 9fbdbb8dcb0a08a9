package kml

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"strconv"
	"strings"
	"time"

	"github.com/twpayne/go-geom"

	"github.com/KimNorgaard/go-kml/xmlstream"
)

// Text is character content that remembers whether it was a CDATA
// section.
type Text = xmlstream.Text

// PlainText returns s as non-CDATA text.
func PlainText(s string) Text { return xmlstream.PlainText(s) }

// CDATA returns s as text written in a CDATA section.
func CDATA(s string) Text { return Text{Value: s, CDATA: true} }

// enumString and parseEnum back the enumeration types below. Index zero
// of names is the schema default and the zero value of the type.
func enumString[E ~int](names []string, v E) string {
	if v < 0 || int(v) >= len(names) {
		return fmt.Sprintf("%d", int(v))
	}
	return names[v]
}

func parseEnum[E ~int](kind string, names []string, s string) (E, error) {
	for i, n := range names {
		if n == s {
			return E(i), nil
		}
	}
	return 0, &EnumError{Kind: kind, Literal: s}
}

// AltitudeMode says how altitude values are interpreted.
type AltitudeMode int

const (
	ClampToGround AltitudeMode = iota
	RelativeToGround
	Absolute
)

var altitudeModeNames = []string{"clampToGround", "relativeToGround", "absolute"}

// String returns the KML literal of m.
func (m AltitudeMode) String() string { return enumString(altitudeModeNames, m) }

// ParseAltitudeMode parses an altitudeMode literal.
func ParseAltitudeMode(s string) (AltitudeMode, error) {
	return parseEnum[AltitudeMode]("altitudeMode", altitudeModeNames, s)
}

// ColorMode says whether a ColorStyle uses its color or a random one.
type ColorMode int

const (
	ColorModeNormal ColorMode = iota
	ColorModeRandom
)

var colorModeNames = []string{"normal", "random"}

// String returns the KML literal of m.
func (m ColorMode) String() string { return enumString(colorModeNames, m) }

// ParseColorMode parses a colorMode literal.
func ParseColorMode(s string) (ColorMode, error) {
	return parseEnum[ColorMode]("colorMode", colorModeNames, s)
}

// DisplayMode says whether a balloon is shown.
type DisplayMode int

const (
	DisplayModeDefault DisplayMode = iota
	DisplayModeHide
)

var displayModeNames = []string{"default", "hide"}

// String returns the KML literal of m.
func (m DisplayMode) String() string { return enumString(displayModeNames, m) }

// ParseDisplayMode parses a displayMode literal.
func ParseDisplayMode(s string) (DisplayMode, error) {
	return parseEnum[DisplayMode]("displayMode", displayModeNames, s)
}

// ListItemType says how a feature and its children show in a list view.
type ListItemType int

const (
	ListItemCheck ListItemType = iota
	ListItemCheckOffOnly
	ListItemCheckHideChildren
	ListItemRadioFolder
)

var listItemTypeNames = []string{"check", "checkOffOnly", "checkHideChildren", "radioFolder"}

// String returns the KML literal of t.
func (t ListItemType) String() string { return enumString(listItemTypeNames, t) }

// ParseListItemType parses a listItemType literal.
func ParseListItemType(s string) (ListItemType, error) {
	return parseEnum[ListItemType]("listItemType", listItemTypeNames, s)
}

// ItemIconState is one state of a list item icon.
type ItemIconState int

const (
	ItemIconOpen ItemIconState = iota
	ItemIconClosed
	ItemIconError
	ItemIconFetching0
	ItemIconFetching1
	ItemIconFetching2
)

var itemIconStateNames = []string{"open", "closed", "error", "fetching0", "fetching1", "fetching2"}

// String returns the KML literal of s.
func (s ItemIconState) String() string { return enumString(itemIconStateNames, s) }

// ParseItemIconState parses an itemIconState literal.
func ParseItemIconState(s string) (ItemIconState, error) {
	return parseEnum[ItemIconState]("itemIconState", itemIconStateNames, s)
}

// RefreshMode says when a Link is fetched again.
type RefreshMode int

const (
	RefreshOnChange RefreshMode = iota
	RefreshOnInterval
	RefreshOnExpire
)

var refreshModeNames = []string{"onChange", "onInterval", "onExpire"}

// String returns the KML literal of m.
func (m RefreshMode) String() string { return enumString(refreshModeNames, m) }

// ParseRefreshMode parses a refreshMode literal.
func ParseRefreshMode(s string) (RefreshMode, error) {
	return parseEnum[RefreshMode]("refreshMode", refreshModeNames, s)
}

// ViewRefreshMode says how a Link reacts to camera movement.
type ViewRefreshMode int

const (
	ViewRefreshNever ViewRefreshMode = iota
	ViewRefreshOnStop
	ViewRefreshOnRequest
	ViewRefreshOnRegion
)

var viewRefreshModeNames = []string{"never", "onStop", "onRequest", "onRegion"}

// String returns the KML literal of m.
func (m ViewRefreshMode) String() string { return enumString(viewRefreshModeNames, m) }

// ParseViewRefreshMode parses a viewRefreshMode literal.
func ParseViewRefreshMode(s string) (ViewRefreshMode, error) {
	return parseEnum[ViewRefreshMode]("viewRefreshMode", viewRefreshModeNames, s)
}

// Units qualifies a Vec2 component.
type Units int

const (
	UnitsFraction Units = iota
	UnitsPixels
	UnitsInsetPixels
)

var unitsNames = []string{"fraction", "pixels", "insetPixels"}

// String returns the KML literal of u.
func (u Units) String() string { return enumString(unitsNames, u) }

// ParseUnits parses a units literal.
func ParseUnits(s string) (Units, error) {
	return parseEnum[Units]("units", unitsNames, s)
}

// GridOrigin is the corner where an ImagePyramid's tile rows start.
type GridOrigin int

const (
	GridOriginLowerLeft GridOrigin = iota
	GridOriginUpperLeft
)

var gridOriginNames = []string{"lowerLeft", "upperLeft"}

// String returns the KML literal of g.
func (g GridOrigin) String() string { return enumString(gridOriginNames, g) }

// ParseGridOrigin parses a gridOrigin literal.
func ParseGridOrigin(s string) (GridOrigin, error) {
	return parseEnum[GridOrigin]("gridOrigin", gridOriginNames, s)
}

// Shape is the projection of a PhotoOverlay.
type Shape int

const (
	ShapeRectangle Shape = iota
	ShapeCylinder
	ShapeSphere
)

var shapeNames = []string{"rectangle", "cylinder", "sphere"}

// String returns the KML literal of s.
func (s Shape) String() string { return enumString(shapeNames, s) }

// ParseShape parses a shape literal.
func ParseShape(s string) (Shape, error) {
	return parseEnum[Shape]("shape", shapeNames, s)
}

// StyleState is the key of a StyleMap pair.
type StyleState int

const (
	StyleNormal StyleState = iota
	StyleHighlight
)

var styleStateNames = []string{"normal", "highlight"}

// String returns the KML literal of s.
func (s StyleState) String() string { return enumString(styleStateNames, s) }

// ParseStyleState parses a styleState literal.
func ParseStyleState(s string) (StyleState, error) {
	return parseEnum[StyleState]("styleState", styleStateNames, s)
}

// ParseBool accepts the xsd:boolean literals.
func ParseBool(s string) (bool, error) {
	switch s {
	case "1", "true":
		return true, nil
	case "0", "false":
		return false, nil
	}
	return false, &EnumError{Kind: "boolean", Literal: s}
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

func parseInt(s string) (int, error) {
	i, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &EnumError{Kind: "int", Literal: s}
	}
	return i, nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// White is the default color of most color fields.
var White = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

// Black is the default BalloonStyle text color.
var Black = color.NRGBA{A: 0xff}

// ParseColor parses a KML color. KML writes colors as aabbggrr.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.TrimPrefix(s, "#")
	if len(s) != 8 {
		return color.NRGBA{}, &EnumError{Kind: "color", Literal: s}
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return color.NRGBA{}, &EnumError{Kind: "color", Literal: s}
	}
	return color.NRGBA{A: b[0], B: b[1], G: b[2], R: b[3]}, nil
}

// FormatColor formats c as aabbggrr.
func FormatColor(c color.NRGBA) string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.A, c.B, c.G, c.R)
}

// Vec2 is a point in an image or on the screen, such as an icon hot spot.
type Vec2 struct {
	X, Y           float64
	XUnits, YUnits Units
}

// NewVec2 returns the point (1, 1) in fraction units.
func NewVec2() *Vec2 {
	return &Vec2{X: 1, Y: 1}
}

// Coordinates is a coordinate list. Each tuple is longitude, latitude and
// an optional altitude.
type Coordinates []geom.Coord

// ParseCoordinates parses whitespace separated lon,lat[,alt] tuples.
func ParseCoordinates(s string) (Coordinates, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	cs := make(Coordinates, 0, len(fields))
	for _, f := range fields {
		parts := strings.Split(strings.Trim(f, ","), ",")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, &EnumError{Kind: "coordinate tuple", Literal: f}
		}
		c := make(geom.Coord, len(parts))
		for i, p := range parts {
			v, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return nil, &EnumError{Kind: "coordinate", Literal: p}
			}
			c[i] = v
		}
		cs = append(cs, c)
	}
	return cs, nil
}

// String formats cs as a KML coordinates list.
func (cs Coordinates) String() string {
	var b strings.Builder
	for i, c := range cs {
		if i > 0 {
			b.WriteByte(' ')
		}
		for j, v := range c {
			if j > 0 {
				b.WriteByte(',')
			}
			b.WriteString(formatFloat(v))
		}
	}
	return b.String()
}

// Precision is the lexical form a DateTime was written in.
type Precision int

const (
	PrecisionNone Precision = iota
	PrecisionYear
	PrecisionMonth
	PrecisionDate
	PrecisionLocal
	PrecisionZoned
)

var precisionLayouts = []string{
	PrecisionYear:  "2006",
	PrecisionMonth: "2006-01",
	PrecisionDate:  "2006-01-02",
	PrecisionLocal: "2006-01-02T15:04:05.999999999",
	PrecisionZoned: time.RFC3339Nano,
}

// DateTime is a KML time value: a year, a month, a date or a full
// dateTime with or without a zone. The zero value is absent.
type DateTime struct {
	Time      time.Time
	Precision Precision
}

// IsZero reports whether d is absent.
func (d DateTime) IsZero() bool { return d.Precision == PrecisionNone }

// String formats d in the lexical form it was read in.
func (d DateTime) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time.Format(precisionLayouts[d.Precision])
}

// ParseDateTime parses s in any of the KML dateTime forms.
func ParseDateTime(s string) (DateTime, error) {
	p := PrecisionZoned
	switch {
	case len(s) == 4:
		p = PrecisionYear
	case len(s) == 7:
		p = PrecisionMonth
	case len(s) == 10:
		p = PrecisionDate
	case !hasZone(s):
		p = PrecisionLocal
	}
	t, err := time.Parse(precisionLayouts[p], s)
	if err != nil {
		return DateTime{}, &EnumError{Kind: "dateTime", Literal: s}
	}
	return DateTime{Time: t, Precision: p}, nil
}

// hasZone reports whether a dateTime literal ends in a zone designator.
func hasZone(s string) bool {
	if strings.HasSuffix(s, "Z") {
		return true
	}
	i := strings.LastIndexAny(s, "+-")
	return i > len("2006-01-02T") && strings.Count(s[i:], ":") == 1
}
