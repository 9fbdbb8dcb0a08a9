package xmlstream_test

import (
	"bytes"
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-kml/xmlstream"
)

func TestWriter_Namespaces(t *testing.T) {
	var buf bytes.Buffer
	w := xmlstream.NewWriter(&buf)
	w.Bind("urn:k", "")
	w.Bind("urn:p", "p")
	w.Bind("urn:p", "other") // first binding wins
	require.True(t, w.Bound("urn:p"))
	require.False(t, w.Bound("urn:q"))

	var generated []string
	w.OnGenerate(func(namespace, prefix string) {
		generated = append(generated, namespace+"="+prefix)
	})

	require.NoError(t, w.StartDocument())
	require.NoError(t, w.StartElement("urn:k", "root"))
	require.NoError(t, w.TextElement("urn:p", "x", xmlstream.PlainText("1")))
	require.NoError(t, w.TextElement("urn:q", "y", xmlstream.PlainText("2")))
	require.NoError(t, w.TextElement("urn:q", "z", xmlstream.PlainText("3")))
	require.NoError(t, w.EndElement())
	require.NoError(t, w.EndDocument())

	out := buf.String()
	require.Contains(t, out, `<root xmlns="urn:k" xmlns:p="urn:p">`)
	require.Contains(t, out, `<p:x>1</p:x>`)
	require.Contains(t, out, `<ns0:y xmlns:ns0="urn:q">2</ns0:y>`)
	require.Contains(t, out, `<ns0:z xmlns:ns0="urn:q">3</ns0:z>`)
	require.Equal(t, []string{"urn:q=ns0"}, generated)
	require.Equal(t, "ns0", w.Prefix("urn:q"))
}

func TestWriter_GeneratedPrefixSkipsBound(t *testing.T) {
	var buf bytes.Buffer
	w := xmlstream.NewWriter(&buf)
	w.Bind("urn:taken", "ns0")
	require.Equal(t, "ns1", w.Prefix("urn:fresh"))
	require.Equal(t, "ns0", w.Prefix("urn:taken"))
}

func TestWriter_NoNamespaceUnderDefault(t *testing.T) {
	var buf bytes.Buffer
	w := xmlstream.NewWriter(&buf)
	w.Bind("urn:k", "")
	require.NoError(t, w.StartDocument())
	require.NoError(t, w.StartElement("urn:k", "root"))
	require.NoError(t, w.StartElement("", "bare"))
	require.NoError(t, w.TextElement("urn:k", "inner", xmlstream.PlainText("1")))
	require.NoError(t, w.TextElement("", "leaf", xmlstream.PlainText("2")))
	require.NoError(t, w.EndElement())
	require.NoError(t, w.TextElement("urn:k", "after", xmlstream.PlainText("3")))
	require.NoError(t, w.EndElement())
	require.NoError(t, w.EndDocument())

	out := buf.String()
	require.Contains(t, out, `<bare xmlns=""><inner xmlns="urn:k">1</inner><leaf>2</leaf></bare>`)
	require.Contains(t, out, `<after>3</after>`)

	r := xmlstream.NewReader(strings.NewReader(out))
	for r.Current().Kind != xmlstream.StartElement {
		_, err := r.Next()
		require.NoError(t, err)
	}
	root, err := r.ReadElement()
	require.NoError(t, err)
	bare := root.Child("bare")
	require.NotNil(t, bare)
	require.Equal(t, "", bare.Name.Space)
	require.Equal(t, "urn:k", bare.Child("inner").Name.Space)
	require.Equal(t, "", bare.Child("leaf").Name.Space)
	require.Equal(t, "urn:k", root.Child("after").Name.Space)
}

func TestWriter_Text(t *testing.T) {
	write := func(t *testing.T, text xmlstream.Text) string {
		t.Helper()
		var buf bytes.Buffer
		w := xmlstream.NewWriter(&buf)
		require.NoError(t, w.StartDocument())
		require.NoError(t, w.TextElement("", "a", text))
		require.NoError(t, w.EndDocument())
		return buf.String()
	}

	t.Run("Escaped", func(t *testing.T) {
		out := write(t, xmlstream.PlainText("a < b & c"))
		require.Contains(t, out, "a &lt; b &amp; c")
	})

	t.Run("CDATA", func(t *testing.T) {
		out := write(t, xmlstream.Text{Value: "<b>x</b>", CDATA: true})
		require.Contains(t, out, "<a><![CDATA[<b>x</b>]]></a>")
	})

	t.Run("CDATA that cannot be a section", func(t *testing.T) {
		out := write(t, xmlstream.Text{Value: "x]]>y", CDATA: true})
		require.NotContains(t, out, "<![CDATA[")
	})
}

func TestWriter_EndWithoutStart(t *testing.T) {
	var buf bytes.Buffer
	w := xmlstream.NewWriter(&buf)
	require.Error(t, w.EndElement())
}

func TestWriter_WriteElementRoundTrip(t *testing.T) {
	el := &xmlstream.Element{
		Name: xml.Name{Space: "urn:a", Local: "a"},
		Attr: []xml.Attr{
			{Name: xml.Name{Local: "k"}, Value: `"quoted" & <angled>`},
			{Name: xml.Name{Space: "urn:p", Local: "q"}, Value: "1"},
		},
		Children: []*xmlstream.Element{
			{Name: xml.Name{Space: "urn:p", Local: "b"}, Text: xmlstream.Text{Value: "x <y>", CDATA: true}},
			{Name: xml.Name{Space: "urn:a", Local: "c"}, Text: xmlstream.PlainText("a & b")},
		},
	}

	var buf bytes.Buffer
	w := xmlstream.NewWriter(&buf)
	w.Bind("urn:a", "")
	require.NoError(t, w.StartDocument())
	require.NoError(t, w.WriteElement(el))
	require.NoError(t, w.EndDocument())

	r := xmlstream.NewReader(strings.NewReader(buf.String()))
	for r.Current().Kind != xmlstream.StartElement {
		ev, err := r.Next()
		require.NoError(t, err)
		require.NotEqual(t, xmlstream.EOF, ev.Kind)
	}
	got, err := r.ReadElement()
	require.NoError(t, err)
	require.Equal(t, el, got)
}
