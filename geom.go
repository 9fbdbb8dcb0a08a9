package kml

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
)

// ToGeom converts g to a go-geom geometry. A MultiGeometry becomes a
// GeometryCollection. Coordinates are XYZ when any tuple of the geometry
// carries an altitude, XY otherwise; missing altitudes read as 0.
//
// Models and extension geometries have no go-geom form.
func ToGeom(g Geometry) (geom.T, error) {
	switch g := g.(type) {
	case *Point:
		if len(g.Coordinates) == 0 {
			return geom.NewPointEmpty(geom.XY), nil
		}
		l := layoutOf(g.Coordinates)
		return geom.NewPoint(l).SetCoords(padded(l, g.Coordinates)[0])
	case *LineString:
		l := layoutOf(g.Coordinates)
		return geom.NewLineString(l).SetCoords(padded(l, g.Coordinates))
	case *LinearRing:
		l := layoutOf(g.Coordinates)
		return geom.NewLinearRing(l).SetCoords(padded(l, g.Coordinates))
	case *Polygon:
		rings := make([]Coordinates, 0, len(g.InnerBoundaries)+1)
		if g.OuterBoundary != nil {
			rings = append(rings, g.OuterBoundary.Coordinates)
		}
		for _, r := range g.InnerBoundaries {
			rings = append(rings, r.Coordinates)
		}
		l := layoutOf(rings...)
		coords := make([][]geom.Coord, len(rings))
		for i, r := range rings {
			coords[i] = padded(l, r)
		}
		return geom.NewPolygon(l).SetCoords(coords)
	case *MultiGeometry:
		gc := geom.NewGeometryCollection()
		for _, child := range g.Geometries {
			t, err := ToGeom(child)
			if err != nil {
				return nil, err
			}
			if err := gc.Push(t); err != nil {
				return nil, errors.Wrap(err, "kml: building geometry collection")
			}
		}
		return gc, nil
	}
	return nil, errors.Newf("kml: %T has no go-geom equivalent", g)
}

// FromGeom converts t to a KML geometry. Multi-geometries and collections
// become a MultiGeometry; M ordinates are dropped.
func FromGeom(t geom.T) (Geometry, error) {
	switch t := t.(type) {
	case *geom.Point:
		p := NewPoint()
		if !t.Empty() {
			p.Coordinates = coordinates(t.Layout(), t.Coords())
		}
		return p, nil
	case *geom.LineString:
		ls := NewLineString()
		ls.Coordinates = coordinates(t.Layout(), t.Coords()...)
		return ls, nil
	case *geom.LinearRing:
		return ring(t), nil
	case *geom.Polygon:
		p := NewPolygon()
		for i := 0; i < t.NumLinearRings(); i++ {
			r := ring(t.LinearRing(i))
			if i == 0 {
				p.OuterBoundary = r
			} else {
				p.InnerBoundaries = append(p.InnerBoundaries, r)
			}
		}
		return p, nil
	case *geom.MultiPoint:
		m := NewMultiGeometry()
		for i := 0; i < t.NumPoints(); i++ {
			g, err := FromGeom(t.Point(i))
			if err != nil {
				return nil, err
			}
			m.Geometries = append(m.Geometries, g)
		}
		return m, nil
	case *geom.MultiLineString:
		m := NewMultiGeometry()
		for i := 0; i < t.NumLineStrings(); i++ {
			g, err := FromGeom(t.LineString(i))
			if err != nil {
				return nil, err
			}
			m.Geometries = append(m.Geometries, g)
		}
		return m, nil
	case *geom.MultiPolygon:
		m := NewMultiGeometry()
		for i := 0; i < t.NumPolygons(); i++ {
			g, err := FromGeom(t.Polygon(i))
			if err != nil {
				return nil, err
			}
			m.Geometries = append(m.Geometries, g)
		}
		return m, nil
	case *geom.GeometryCollection:
		m := NewMultiGeometry()
		for _, child := range t.Geoms() {
			g, err := FromGeom(child)
			if err != nil {
				return nil, err
			}
			m.Geometries = append(m.Geometries, g)
		}
		return m, nil
	}
	return nil, errors.Newf("kml: unsupported go-geom type %T", t)
}

func ring(t *geom.LinearRing) *LinearRing {
	r := NewLinearRing()
	r.Coordinates = coordinates(t.Layout(), t.Coords()...)
	return r
}

func layoutOf(css ...Coordinates) geom.Layout {
	for _, cs := range css {
		for _, c := range cs {
			if len(c) > 2 {
				return geom.XYZ
			}
		}
	}
	return geom.XY
}

// padded returns cs with every tuple sized to the stride of l.
func padded(l geom.Layout, cs Coordinates) []geom.Coord {
	out := make([]geom.Coord, len(cs))
	for i, c := range cs {
		p := make(geom.Coord, l.Stride())
		copy(p, c)
		out[i] = p
	}
	return out
}

// coordinates keeps the X, Y and, when present, Z ordinates of cs.
func coordinates(l geom.Layout, cs ...geom.Coord) Coordinates {
	if len(cs) == 0 {
		return nil
	}
	z := l.ZIndex()
	out := make(Coordinates, len(cs))
	for i, c := range cs {
		if z < 0 {
			out[i] = geom.Coord{c[0], c[1]}
		} else {
			out[i] = geom.Coord{c[0], c[1], c[z]}
		}
	}
	return out
}
