package kml_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-kml"
)

// TestMarshal_Defaults checks that fields equal to their schema default
// are left out and everything else is written.
func TestMarshal_Defaults(t *testing.T) {
	t.Run("Defaults are omitted", func(t *testing.T) {
		st := kml.NewStyle()
		st.IconStyle = kml.NewIconStyle()
		st.LabelStyle = kml.NewLabelStyle()
		st.LineStyle = kml.NewLineStyle()
		st.PolyStyle = kml.NewPolyStyle()
		st.BalloonStyle = kml.NewBalloonStyle()
		st.ListStyle = kml.NewListStyle()

		r := kml.NewRegion()
		r.LatLonAltBox = kml.NewLatLonAltBox()
		r.Lod = kml.NewLod()

		pm := kml.NewPlacemark()
		pm.StyleSelectors = []kml.StyleSelector{st}
		pm.Region = r
		pm.Geometry = kml.NewPoint()

		out := marshal(t, kml.New(pm))
		for _, name := range []string{
			"visibility", "open", "extrude", "altitudeMode", "coordinates",
			"color", "colorMode", "scale", "heading", "width", "fill", "outline",
			"bgColor", "textColor", "displayMode", "listItemType", "maxSnippetLines",
			"north", "south", "east", "west", "minAltitude", "maxAltitude",
			"minLodPixels", "maxLodPixels", "minFadeExtent", "maxFadeExtent",
		} {
			require.NotContains(t, out, "<"+name+">", "default %s was written", name)
		}
		requireOrder(t, out, "<IconStyle", "<LabelStyle", "<LineStyle", "<PolyStyle", "<BalloonStyle", "<ListStyle")
	})

	t.Run("Non-default values are written", func(t *testing.T) {
		pm := kml.NewPlacemark()
		pm.Visibility = false
		pm.Open = true
		pt := kml.NewPoint()
		pt.Extrude = true
		pt.AltitudeMode = kml.RelativeToGround
		pt.Coordinates = kml.Coordinates{{1, 2, 3}}
		pm.Geometry = pt

		st := kml.NewStyle()
		st.LineStyle = kml.NewLineStyle()
		st.LineStyle.Width = 3
		st.LineStyle.ColorMode = kml.ColorModeRandom
		st.PolyStyle = kml.NewPolyStyle()
		st.PolyStyle.Fill = false
		pm.StyleSelectors = []kml.StyleSelector{st}

		out := marshal(t, kml.New(pm))
		requireOrder(t, out,
			"<visibility>0</visibility>", "<open>1</open>",
			"<colorMode>random</colorMode>", "<width>3</width>",
			"<fill>0</fill>",
			"<extrude>1</extrude>", "<altitudeMode>relativeToGround</altitudeMode>",
			"<coordinates>1,2,3</coordinates>",
		)
		require.NotContains(t, out, "<outline>")
	})

	t.Run("Zero numbers that are not defaults", func(t *testing.T) {
		lod := kml.NewLod()
		lod.MaxLodPixels = 0
		st := kml.NewStyle()
		st.IconStyle = kml.NewIconStyle()
		st.IconStyle.Scale = 0
		pm := kml.NewPlacemark()
		pm.Region = &kml.Region{Lod: lod}
		pm.StyleSelectors = []kml.StyleSelector{st}

		out := marshal(t, kml.New(pm))
		require.Contains(t, out, "<scale>0</scale>")
		require.Contains(t, out, "<maxLodPixels>0</maxLodPixels>")
	})

	t.Run("Vec2 attributes", func(t *testing.T) {
		so := kml.NewScreenOverlay()
		so.OverlayXY = kml.NewVec2()
		so.ScreenXY = &kml.Vec2{X: 10, Y: 1, XUnits: kml.UnitsPixels}

		out := marshal(t, kml.New(so))
		require.NotContains(t, out, `x="1"`)
		require.Contains(t, out, `<screenXY x="10" xunits="pixels"`)
	})

	t.Run("Link refresh parameters", func(t *testing.T) {
		nl := kml.NewNetworkLink()
		nl.Link = kml.NewLink()
		nl.Link.Href = "a.kml"
		nl.Link.RefreshMode = kml.RefreshOnInterval
		nl.Link.RefreshInterval = 30

		out := marshal(t, kml.New(nl))
		requireOrder(t, out, "<href>a.kml</href>", "<refreshMode>onInterval</refreshMode>",
			"<refreshInterval>30</refreshInterval>")
		require.NotContains(t, out, "viewRefreshTime")
		require.NotContains(t, out, "viewBoundScale")
	})

	t.Run("Snippet maxLines", func(t *testing.T) {
		pm := kml.NewPlacemark()
		pm.Snippet = kml.NewSnippet()
		pm.Snippet.Text = kml.PlainText("s")
		out := marshal(t, kml.New(pm))
		require.Contains(t, out, "<Snippet>s</Snippet>")

		pm.Snippet.MaxLines = 5
		out = marshal(t, kml.New(pm))
		require.Contains(t, out, `<Snippet maxLines="5">s</Snippet>`)
	})

	t.Run("Text is written even when empty where the schema requires it", func(t *testing.T) {
		d := kml.NewDocument()
		d.ExtendedData = &kml.ExtendedData{Data: []*kml.Data{{Name: "k"}}}
		out := marshal(t, kml.New(d))
		require.Contains(t, out, `<Data name="k">`)
		require.Contains(t, out, "<value")
	})
}
