package xmlstream_test

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-kml/xmlstream"
)

func newReader(s string, opts ...xmlstream.ReaderOption) *xmlstream.Reader {
	return xmlstream.NewReader(strings.NewReader(s), opts...)
}

// next advances r and fails the test on error.
func next(t *testing.T, r *xmlstream.Reader) xmlstream.Event {
	t.Helper()
	ev, err := r.Next()
	require.NoError(t, err)
	return ev
}

func TestReader_Next(t *testing.T) {
	r := newReader(`<?xml version="1.0"?><!-- c --><a x="1">t<![CDATA[<b>]]><?pi?></a>`)

	ev := next(t, r)
	require.Equal(t, xmlstream.StartElement, ev.Kind)
	require.Equal(t, "a", ev.Name.Local)
	v, ok := ev.Attribute("x")
	require.True(t, ok)
	require.Equal(t, "1", v)

	ev = next(t, r)
	require.Equal(t, xmlstream.CharData, ev.Kind)
	require.Equal(t, "t", ev.Text)

	ev = next(t, r)
	require.Equal(t, xmlstream.CData, ev.Kind)
	require.Equal(t, "<b>", ev.Text)

	ev = next(t, r)
	require.Equal(t, xmlstream.EndElement, ev.Kind)
	require.Equal(t, r.Current(), ev)

	ev = next(t, r)
	require.Equal(t, xmlstream.EOF, ev.Kind)
}

func TestReader_Peek(t *testing.T) {
	r := newReader(`<a><b/></a>`)
	next(t, r)

	kind, err := r.Peek()
	require.NoError(t, err)
	require.Equal(t, xmlstream.StartElement, kind)
	require.Equal(t, "a", r.Current().Name.Local)

	ev := next(t, r)
	require.Equal(t, "b", ev.Name.Local)
}

func TestReader_Pos(t *testing.T) {
	r := newReader("<a>\n  <b/>\n</a>")
	next(t, r)
	next(t, r) // whitespace
	ev := next(t, r)
	require.Equal(t, "b", ev.Name.Local)
	line, _ := r.Pos()
	require.Equal(t, 2, line)
}

func TestReader_Namespaces(t *testing.T) {
	r := newReader(`<a xmlns="urn:a" xmlns:p="urn:p"><p:b/></a>`)
	ev := next(t, r)
	require.Equal(t, xml.Name{Space: "urn:a", Local: "a"}, ev.Name)
	ev = next(t, r)
	require.True(t, ev.IsStart("urn:p", "b"))
	require.False(t, ev.IsStart("urn:a", "b"))
}

func TestReader_Skip(t *testing.T) {
	r := newReader(`<a><b><c>x</c><c/></b><d/></a>`)
	next(t, r)
	next(t, r)
	require.NoError(t, r.Skip())
	require.Equal(t, xmlstream.EndElement, r.Current().Kind)
	require.Equal(t, "b", r.Current().Name.Local)
	require.Equal(t, "d", next(t, r).Name.Local)

	// Skip needs a start element under the cursor.
	next(t, r)
	require.Error(t, r.Skip())
}

func TestReader_ElementText(t *testing.T) {
	testCases := []struct {
		name  string
		input string
		want  xmlstream.Text
	}{
		{name: "Plain", input: `<a> x &amp; y </a>`, want: xmlstream.Text{Value: " x & y "}},
		{name: "Empty", input: `<a/>`, want: xmlstream.Text{}},
		{name: "CDATA", input: `<a><![CDATA[<b>]]></a>`, want: xmlstream.Text{Value: "<b>", CDATA: true}},
		{name: "CDATA with surrounding whitespace", input: "<a>\n  <![CDATA[x]]>\n</a>", want: xmlstream.Text{Value: "x", CDATA: true}},
		{name: "Mixed", input: `<a>1<![CDATA[2]]>3</a>`, want: xmlstream.Text{Value: "123", CDATA: true}},
		{name: "Comment inside", input: `<a>x<!-- c -->y</a>`, want: xmlstream.Text{Value: "xy"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newReader(tc.input)
			next(t, r)
			got, err := r.ElementText()
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
			require.Equal(t, xmlstream.EndElement, r.Current().Kind)
		})
	}

	t.Run("Element inside text", func(t *testing.T) {
		r := newReader(`<a>x<b/></a>`)
		next(t, r)
		_, err := r.ElementText()
		require.Error(t, err)
		require.Contains(t, err.Error(), "unexpected element <b>")
	})

	t.Run("Truncated", func(t *testing.T) {
		r := newReader(`<a>x`)
		next(t, r)
		_, err := r.ElementText()
		require.Error(t, err)
	})
}

func TestReader_ReadElement(t *testing.T) {
	r := newReader(`<a xmlns="urn:a" xmlns:p="urn:p" k="v">
		<p:b p:q="1">text</p:b>
		<c/>
	</a>`)
	next(t, r)
	el, err := r.ReadElement()
	require.NoError(t, err)

	want := &xmlstream.Element{
		Name: xml.Name{Space: "urn:a", Local: "a"},
		Attr: []xml.Attr{{Name: xml.Name{Local: "k"}, Value: "v"}},
		Children: []*xmlstream.Element{
			{
				Name: xml.Name{Space: "urn:p", Local: "b"},
				Attr: []xml.Attr{{Name: xml.Name{Space: "urn:p", Local: "q"}, Value: "1"}},
				Text: xmlstream.Text{Value: "text"},
			},
			{Name: xml.Name{Space: "urn:a", Local: "c"}},
		},
	}
	require.Equal(t, want, el)
	require.False(t, el.IsSimple())
	require.False(t, el.Child("b").IsSimple())
	require.True(t, el.Child("c").IsSimple())
	require.Nil(t, el.Child("missing"))
}

func TestReader_Charset(t *testing.T) {
	t.Run("ISO-8859-1", func(t *testing.T) {
		r := newReader("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><a>Caf\xe9</a>")
		next(t, r)
		got, err := r.ElementText()
		require.NoError(t, err)
		require.Equal(t, "Café", got.Value)
	})

	t.Run("CDATA after transcoding", func(t *testing.T) {
		r := newReader("<?xml version=\"1.0\" encoding=\"windows-1252\"?><a><![CDATA[M\xfcller]]></a>")
		next(t, r)
		got, err := r.ElementText()
		require.NoError(t, err)
		require.Equal(t, xmlstream.Text{Value: "Müller", CDATA: true}, got)
	})

	t.Run("Unknown encoding", func(t *testing.T) {
		r := newReader(`<?xml version="1.0" encoding="x-no-such-charset"?><a/>`)
		_, err := r.Next()
		require.Error(t, err)
	})
}

func TestReader_NonStrict(t *testing.T) {
	const input = `<a>x&nbsp;y</a>`

	r := newReader(input)
	next(t, r)
	_, err := r.ElementText()
	require.Error(t, err)

	r = newReader(input, xmlstream.NonStrict())
	next(t, r)
	got, err := r.ElementText()
	require.NoError(t, err)
	require.Equal(t, "x\u00a0y", got.Value)
}

func TestReader_NonStrictDoesNotAutoClose(t *testing.T) {
	r := newReader(`<Link><href>h</href></Link>`, xmlstream.NonStrict())
	next(t, r)
	el, err := r.ReadElement()
	require.NoError(t, err)
	require.NotNil(t, el.Child("href"))
	require.Equal(t, "h", el.Child("href").Text.Value)
}

func TestReader_StickyError(t *testing.T) {
	r := newReader(`<a></b>`)
	next(t, r)
	_, err := r.Next()
	require.Error(t, err)
	_, err2 := r.Next()
	require.Equal(t, err, err2)
}
