package kml_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
	"github.com/twpayne/go-geom"

	"github.com/KimNorgaard/go-kml"
)

func TestToGeom(t *testing.T) {
	t.Run("Point", func(t *testing.T) {
		p := kml.NewPoint()
		p.Coordinates = kml.Coordinates{{1, 2}}
		g, err := kml.ToGeom(p)
		require.NoError(t, err)
		pt, ok := g.(*geom.Point)
		require.True(t, ok)
		require.Equal(t, geom.XY, pt.Layout())
		require.Equal(t, []float64{1, 2}, pt.FlatCoords())
	})

	t.Run("Empty point", func(t *testing.T) {
		g, err := kml.ToGeom(kml.NewPoint())
		require.NoError(t, err)
		require.True(t, g.Empty())
	})

	t.Run("Missing altitudes read as zero", func(t *testing.T) {
		ls := kml.NewLineString()
		ls.Coordinates = kml.Coordinates{{1, 2}, {3, 4, 5}}
		g, err := kml.ToGeom(ls)
		require.NoError(t, err)
		require.Equal(t, geom.XYZ, g.Layout())
		require.Equal(t, []float64{1, 2, 0, 3, 4, 5}, g.FlatCoords())
	})

	t.Run("Polygon rings", func(t *testing.T) {
		poly := kml.NewPolygon()
		poly.OuterBoundary = kml.NewLinearRing()
		poly.OuterBoundary.Coordinates = kml.Coordinates{{0, 0}, {4, 0}, {4, 4}, {0, 0}}
		inner := kml.NewLinearRing()
		inner.Coordinates = kml.Coordinates{{1, 1}, {2, 1}, {2, 2}, {1, 1}}
		poly.InnerBoundaries = []*kml.LinearRing{inner}

		g, err := kml.ToGeom(poly)
		require.NoError(t, err)
		p, ok := g.(*geom.Polygon)
		require.True(t, ok)
		require.Equal(t, 2, p.NumLinearRings())
		require.Equal(t, []float64{1, 1, 2, 1, 2, 2, 1, 1}, p.LinearRing(1).FlatCoords())
	})

	t.Run("MultiGeometry becomes a collection", func(t *testing.T) {
		a := kml.NewPoint()
		a.Coordinates = kml.Coordinates{{1, 2}}
		b := kml.NewLineString()
		b.Coordinates = kml.Coordinates{{1, 2}, {3, 4}}
		m := kml.NewMultiGeometry()
		m.Geometries = []kml.Geometry{a, b}

		g, err := kml.ToGeom(m)
		require.NoError(t, err)
		gc, ok := g.(*geom.GeometryCollection)
		require.True(t, ok)
		require.Equal(t, 2, gc.NumGeoms())
		require.IsType(t, &geom.LineString{}, gc.Geom(1))
	})

	t.Run("Model has no equivalent", func(t *testing.T) {
		_, err := kml.ToGeom(kml.NewModel())
		require.Error(t, err)
	})

	t.Run("Nested unsupported geometry", func(t *testing.T) {
		m := kml.NewMultiGeometry()
		m.Geometries = []kml.Geometry{&kml.ExtensionGeometry{Value: 1}}
		_, err := kml.ToGeom(m)
		require.Error(t, err)
	})
}

func TestFromGeom(t *testing.T) {
	t.Run("Measures are dropped", func(t *testing.T) {
		g, err := kml.FromGeom(geom.NewPoint(geom.XYM).MustSetCoords(geom.Coord{1, 2, 9}))
		require.NoError(t, err)
		require.Equal(t, kml.Coordinates{{1, 2}}, g.(*kml.Point).Coordinates)

		g, err = kml.FromGeom(geom.NewPoint(geom.XYZM).MustSetCoords(geom.Coord{1, 2, 3, 9}))
		require.NoError(t, err)
		require.Equal(t, kml.Coordinates{{1, 2, 3}}, g.(*kml.Point).Coordinates)
	})

	t.Run("Empty point", func(t *testing.T) {
		g, err := kml.FromGeom(geom.NewPointEmpty(geom.XY))
		require.NoError(t, err)
		require.Empty(t, g.(*kml.Point).Coordinates)
	})

	t.Run("MultiPolygon", func(t *testing.T) {
		mp := geom.NewMultiPolygon(geom.XY).MustSetCoords([][][]geom.Coord{
			{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}},
			{{{5, 5}, {6, 5}, {6, 6}, {5, 5}}, {{5.2, 5.2}, {5.4, 5.2}, {5.4, 5.4}, {5.2, 5.2}}},
		})
		g, err := kml.FromGeom(mp)
		require.NoError(t, err)
		m, ok := g.(*kml.MultiGeometry)
		require.True(t, ok)
		require.Len(t, m.Geometries, 2)
		second := m.Geometries[1].(*kml.Polygon)
		require.Len(t, second.InnerBoundaries, 1)
		require.Equal(t, kml.Coordinates{{5, 5}, {6, 5}, {6, 6}, {5, 5}}, second.OuterBoundary.Coordinates)
	})

	t.Run("MultiPoint and MultiLineString", func(t *testing.T) {
		g, err := kml.FromGeom(geom.NewMultiPoint(geom.XY).MustSetCoords([]geom.Coord{{1, 2}, {3, 4}}))
		require.NoError(t, err)
		require.Len(t, g.(*kml.MultiGeometry).Geometries, 2)

		g, err = kml.FromGeom(geom.NewMultiLineString(geom.XY).MustSetCoords([][]geom.Coord{{{1, 2}, {3, 4}}}))
		require.NoError(t, err)
		require.IsType(t, &kml.LineString{}, g.(*kml.MultiGeometry).Geometries[0])
	})

	t.Run("Round trip", func(t *testing.T) {
		doc := fixture(t, "full22.kml")
		lawn := doc.Feature.(*kml.Document).Features[1].(*kml.Placemark)

		g, err := kml.ToGeom(lawn.Geometry)
		require.NoError(t, err)
		back, err := kml.FromGeom(g)
		require.NoError(t, err)

		want := lawn.Geometry.(*kml.Polygon)
		got := back.(*kml.Polygon)
		if diff := cmp.Diff(want.OuterBoundary.Coordinates, got.OuterBoundary.Coordinates, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("outer ring changed (-want +got):\n%s", diff)
		}
		require.Len(t, got.InnerBoundaries, len(want.InnerBoundaries))
	})

	t.Run("Unsupported type", func(t *testing.T) {
		_, err := kml.FromGeom(nil)
		require.Error(t, err)
	})
}
