package kml_test

import (
	"image/color"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-kml"
)

func TestParseColor(t *testing.T) {
	c, err := kml.ParseColor("ff336699")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0x99, G: 0x66, B: 0x33, A: 0xff}, c)
	require.Equal(t, "ff336699", kml.FormatColor(c))

	c, err = kml.ParseColor("#7f0000ff")
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{R: 0xff, A: 0x7f}, c)

	for _, s := range []string{"", "fff", "ff33669", "zz336699"} {
		_, err := kml.ParseColor(s)
		var eerr *kml.EnumError
		require.True(t, errors.As(err, &eerr), "expected error for %q", s)
		require.Equal(t, "color", eerr.Kind)
	}
}

func TestParseDateTime(t *testing.T) {
	testCases := []struct {
		input     string
		precision kml.Precision
		want      time.Time
	}{
		{"2024", kml.PrecisionYear, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-05", kml.PrecisionMonth, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-05-01", kml.PrecisionDate, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)},
		{"2024-05-01T10:30:00", kml.PrecisionLocal, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{"2024-05-01T10:30:00Z", kml.PrecisionZoned, time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)},
		{"2024-05-01T10:30:00+02:00", kml.PrecisionZoned, time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)},
		{"2024-05-01T10:30:00.5-07:00", kml.PrecisionZoned, time.Date(2024, 5, 1, 17, 30, 0, 500000000, time.UTC)},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			d, err := kml.ParseDateTime(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.precision, d.Precision)
			require.True(t, tc.want.Equal(d.Time), "got %v", d.Time)
			require.Equal(t, tc.input, d.String())
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		for _, s := range []string{"yesterday", "2024-13", "24", "2024-05-01T25:00:00Z"} {
			_, err := kml.ParseDateTime(s)
			var eerr *kml.EnumError
			require.True(t, errors.As(err, &eerr), "expected error for %q", s)
			require.Equal(t, "dateTime", eerr.Kind)
		}
	})

	t.Run("Zero value", func(t *testing.T) {
		var d kml.DateTime
		require.True(t, d.IsZero())
		require.Empty(t, d.String())
	})
}

func TestParseCoordinates(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  kml.Coordinates
	}{
		{name: "Pairs", input: "1,2 3,4", want: kml.Coordinates{{1, 2}, {3, 4}}},
		{name: "Altitude", input: "1,2,3", want: kml.Coordinates{{1, 2, 3}}},
		{name: "Whitespace and newlines", input: "\n\t 1,2\n\n  3,4,5 \n", want: kml.Coordinates{{1, 2}, {3, 4, 5}}},
		{name: "Trailing comma", input: "1,2,", want: kml.Coordinates{{1, 2}}},
		{name: "Exponent", input: "1e1,-2.5E-1", want: kml.Coordinates{{10, -0.25}}},
		{name: "Empty", input: "  ", want: nil},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cs, err := kml.ParseCoordinates(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, cs)
		})
	}

	t.Run("Invalid", func(t *testing.T) {
		for _, s := range []string{"1", "1,2,3,4", "a,b", "1,,2"} {
			_, err := kml.ParseCoordinates(s)
			var eerr *kml.EnumError
			require.True(t, errors.As(err, &eerr), "expected error for %q", s)
		}
	})

	t.Run("String", func(t *testing.T) {
		cs := kml.Coordinates{{-122.0822035425683, 37.42228990140251, 10}, {1, 2}}
		require.Equal(t, "-122.0822035425683,37.42228990140251,10 1,2", cs.String())
	})
}

func TestParseBool(t *testing.T) {
	for in, want := range map[string]bool{"1": true, "true": true, "0": false, "false": false} {
		got, err := kml.ParseBool(in)
		require.NoError(t, err)
		require.Equal(t, want, got, in)
	}
	_, err := kml.ParseBool("yes")
	require.Error(t, err)
}

func TestEnums(t *testing.T) {
	m, err := kml.ParseAltitudeMode("relativeToGround")
	require.NoError(t, err)
	require.Equal(t, kml.RelativeToGround, m)
	require.Equal(t, "relativeToGround", m.String())

	s, err := kml.ParseItemIconState("fetching2")
	require.NoError(t, err)
	require.Equal(t, kml.ItemIconFetching2, s)

	v, err := kml.ParseViewRefreshMode("onRegion")
	require.NoError(t, err)
	require.Equal(t, kml.ViewRefreshOnRegion, v)

	u, err := kml.ParseUnits("insetPixels")
	require.NoError(t, err)
	require.Equal(t, kml.UnitsInsetPixels, u)

	_, err = kml.ParseShape("cube")
	var eerr *kml.EnumError
	require.True(t, errors.As(err, &eerr))
	require.Equal(t, "shape", eerr.Kind)
	require.Equal(t, "cube", eerr.Literal)

	// enumeration literals are case sensitive
	_, err = kml.ParseGridOrigin("LowerLeft")
	require.Error(t, err)

	require.Equal(t, "3", kml.AltitudeMode(3).String())
}

func TestParseVersion(t *testing.T) {
	testCases := []struct {
		input string
		want  kml.Version
	}{
		{"2.1", kml.KML21},
		{"2.2", kml.KML22},
		{"http://earth.google.com/kml/2.2", kml.KML22Google},
		{"http://www.opengis.net/kml/2.2", kml.KML22},
	}
	for _, tc := range testCases {
		v, err := kml.ParseVersion(tc.input)
		require.NoError(t, err)
		require.Equal(t, tc.want, v)
	}

	_, err := kml.ParseVersion("3.0")
	var nerr *kml.UnknownNamespaceError
	require.True(t, errors.As(err, &nerr))

	require.Equal(t, "2.2", kml.KML22Google.Short())
	require.Equal(t, "2.1", kml.KML21.String())
	require.False(t, kml.Version(kml.GxNamespace).Known())
	require.Len(t, kml.Versions(), 3)
}
