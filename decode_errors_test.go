package kml_test

import (
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-kml"
)

func TestUnmarshal_Errors(t *testing.T) {
	testCases := []struct {
		name        string
		input       string
		opts        []kml.Option
		target      func() any // fresh pointer to the expected error type
		expectedErr string
	}{
		{
			name:        "Unknown root namespace",
			input:       `<kml xmlns="http://example.com/kml"><Placemark/></kml>`,
			target:      func() any { return new(*kml.UnknownNamespaceError) },
			expectedErr: `unrecognized KML namespace "http://example.com/kml"`,
		},
		{
			name:        "Bare feature root without lenient",
			input:       `<Placemark xmlns="http://www.opengis.net/kml/2.2"/>`,
			target:      func() any { return new(*kml.UnexpectedElementError) },
			expectedErr: "unexpected element",
		},
		{
			name:        "Invalid enumeration literal",
			input:       kml22 + `<Placemark><Point><altitudeMode>floating</altitudeMode></Point></Placemark></kml>`,
			target:      func() any { return new(*kml.EnumError) },
			expectedErr: `invalid altitudeMode "floating"`,
		},
		{
			name:        "Invalid boolean",
			input:       kml22 + `<Placemark><visibility>yes</visibility></Placemark></kml>`,
			target:      func() any { return new(*kml.EnumError) },
			expectedErr: `invalid boolean "yes"`,
		},
		{
			name:        "Invalid double",
			input:       kml22 + `<Placemark><LookAt><range>far</range></LookAt></Placemark></kml>`,
			target:      func() any { return new(*kml.EnumError) },
			expectedErr: `invalid double "far"`,
		},
		{
			name:        "Coordinate tuple with one value",
			input:       kml22 + `<Placemark><Point><coordinates>1</coordinates></Point></Placemark></kml>`,
			target:      func() any { return new(*kml.EnumError) },
			expectedErr: "invalid coordinate tuple",
		},
		{
			name:        "Invalid color",
			input:       kml22 + `<Placemark><Style><LineStyle><color>red</color></LineStyle></Style></Placemark></kml>`,
			target:      func() any { return new(*kml.EnumError) },
			expectedErr: `invalid color "red"`,
		},
		{
			name:        "PhotoOverlay in KML 2.1",
			input:       kml21 + `<Folder><PhotoOverlay/></Folder></kml>`,
			target:      func() any { return new(*kml.VersionError) },
			expectedErr: "element PhotoOverlay is not allowed in KML 2.1",
		},
		{
			name:        "Camera in KML 2.1",
			input:       kml21 + `<Placemark><Camera/></Placemark></kml>`,
			target:      func() any { return new(*kml.VersionError) },
			expectedErr: "element Camera is not allowed in KML 2.1",
		},
		{
			name:        "ExtendedData in KML 2.1",
			input:       kml21 + `<Placemark><ExtendedData/></Placemark></kml>`,
			target:      func() any { return new(*kml.VersionError) },
			expectedErr: "element ExtendedData is not allowed in KML 2.1",
		},
		{
			name:        "Unknown element with DisallowUnknownElements",
			input:       kml22 + `<Placemark><bogus/></Placemark></kml>`,
			opts:        []kml.Option{kml.DisallowUnknownElements()},
			target:      func() any { return new(*kml.UnexpectedElementError) },
			expectedErr: "unexpected element {http://www.opengis.net/kml/2.2}bogus in Placemark",
		},
		{
			name:        "Non-container in Create with DisallowUnknownElements",
			input:       kml22 + `<NetworkLinkControl><Update><targetHref>a.kml</targetHref><Create><Placemark/></Create></Update></NetworkLinkControl></kml>`,
			opts:        []kml.Option{kml.DisallowUnknownElements()},
			target:      func() any { return new(*kml.UnexpectedElementError) },
			expectedErr: "unexpected element {http://www.opengis.net/kml/2.2}Placemark in Create",
		},
		{
			name:        "Foreign element with DisallowUnknownElements",
			input:       `<kml xmlns="http://www.opengis.net/kml/2.2" xmlns:foo="urn:foo"><Placemark><foo:x/></Placemark></kml>`,
			opts:        []kml.Option{kml.DisallowUnknownElements()},
			target:      func() any { return new(*kml.UnexpectedElementError) },
			expectedErr: "unexpected element {urn:foo}x in Placemark",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kml.Unmarshal([]byte(tc.input), tc.opts...)
			require.Error(t, err)
			require.True(t, errors.As(err, tc.target()), "unexpected error type: %v", err)
			require.Contains(t, err.Error(), tc.expectedErr)
		})
	}
}

func TestUnmarshal_SyntaxErrorPosition(t *testing.T) {
	input := kml22 + "\n<Placemark>\n<Point>\n<extrude>maybe</extrude>\n</Point>\n</Placemark>\n</kml>"
	_, err := kml.Unmarshal([]byte(input))
	require.Error(t, err)

	var serr *kml.SyntaxError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, 4, serr.Line)
	require.Contains(t, err.Error(), "line 4")

	var eerr *kml.EnumError
	require.True(t, errors.As(err, &eerr))
	require.Equal(t, "maybe", eerr.Literal)
}

func TestUnmarshal_ErrorPrefix(t *testing.T) {
	_, err := kml.Unmarshal([]byte(kml21 + `<Placemark><Camera/></Placemark></kml>`))
	require.Error(t, err)
	require.Regexp(t, `^kml: line 1, column \d+: element Camera is not allowed in KML 2\.1`, err.Error())
	require.Equal(t, 1, strings.Count(err.Error(), "kml:"))
}

func TestUnmarshal_MaxDepth(t *testing.T) {
	nested := kml22 + strings.Repeat("<Folder>", 4) + strings.Repeat("</Folder>", 4) + "</kml>"

	t.Run("Exceeded", func(t *testing.T) {
		_, err := kml.Unmarshal([]byte(nested), kml.MaxDepth(3))
		require.Error(t, err)
		require.True(t, errors.Is(err, kml.ErrMaxDepth))
	})

	t.Run("Within limit", func(t *testing.T) {
		doc, err := kml.Unmarshal([]byte(nested), kml.MaxDepth(5))
		require.NoError(t, err)
		require.IsType(t, &kml.Folder{}, doc.Feature)
	})

	t.Run("Invalid depth", func(t *testing.T) {
		_, err := kml.Unmarshal([]byte(nested), kml.MaxDepth(0))
		require.Error(t, err)
		require.Contains(t, err.Error(), "max depth must be a positive integer")
	})
}

func TestUnmarshal_MalformedInput(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "Empty", input: ""},
		{name: "Truncated", input: kml22 + `<Placemark><name>x</name>`},
		{name: "Mismatched tags", input: kml22 + `<Placemark></Folder></kml>`},
		{name: "Element inside text", input: kml22 + `<Placemark><name>a<b/></name></Placemark></kml>`},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := kml.Unmarshal([]byte(tc.input))
			require.Error(t, err)
		})
	}
}

func TestDecoder_NilReader(t *testing.T) {
	_, err := kml.NewDecoder(nil).Decode()
	require.Error(t, err)
}
