package atom_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-kml/atom"
	"github.com/KimNorgaard/go-kml/xmlstream"
)

// open returns a reader positioned on the first element of s.
func open(t *testing.T, s string) *xmlstream.Reader {
	t.Helper()
	r := xmlstream.NewReader(strings.NewReader(s))
	_, err := r.Next()
	require.NoError(t, err)
	return r
}

func TestReadAuthor(t *testing.T) {
	r := open(t, `<atom:author xmlns:atom="http://www.w3.org/2005/Atom" xmlns:x="urn:x">
		<atom:name>Ann</atom:name>
		<atom:name>Bo</atom:name>
		<atom:uri>https://example.com</atom:uri>
		<x:ignored><atom:name>not me</atom:name></x:ignored>
		<atom:email>ann@example.com</atom:email>
		<atom:unknown/>
	</atom:author>`)

	a, err := atom.ReadAuthor(r)
	require.NoError(t, err)
	require.Equal(t, &atom.Author{
		Names:  []string{"Ann", "Bo"},
		URIs:   []string{"https://example.com"},
		Emails: []string{"ann@example.com"},
	}, a)
	require.Equal(t, xmlstream.EndElement, r.Current().Kind)
	require.Equal(t, "author", r.Current().Name.Local)
}

func TestReadAuthor_WrongElement(t *testing.T) {
	r := open(t, `<author/>`)
	_, err := atom.ReadAuthor(r)
	require.Error(t, err)
}

func TestReadLink(t *testing.T) {
	r := open(t, `<atom:link xmlns:atom="http://www.w3.org/2005/Atom" href="https://example.com" rel="alternate" hreflang="da"/>`)
	l, err := atom.ReadLink(r)
	require.NoError(t, err)
	require.Equal(t, &atom.Link{Href: "https://example.com", Rel: "alternate", HrefLang: "da"}, l)
	require.Equal(t, xmlstream.EndElement, r.Current().Kind)
}

func TestWriteAndReadBack(t *testing.T) {
	author := &atom.Author{Names: []string{"Ann"}, Emails: []string{"a@b.c"}}
	link := &atom.Link{Href: "https://example.com/x?a=1&b=2", Title: "X"}

	var buf bytes.Buffer
	w := xmlstream.NewWriter(&buf)
	w.Bind(atom.Namespace, atom.Prefix)
	require.NoError(t, w.StartDocument())
	require.NoError(t, w.StartElement("", "root"))
	require.NoError(t, atom.WriteAuthor(w, author))
	require.NoError(t, atom.WriteLink(w, link))
	require.NoError(t, w.EndElement())
	require.NoError(t, w.EndDocument())

	out := buf.String()
	require.Contains(t, out, `xmlns:atom="http://www.w3.org/2005/Atom"`)
	require.Contains(t, out, "<atom:author><atom:name>Ann</atom:name><atom:email>a@b.c</atom:email></atom:author>")

	r := xmlstream.NewReader(strings.NewReader(out))
	for {
		ev, err := r.Next()
		require.NoError(t, err)
		require.NotEqual(t, xmlstream.EOF, ev.Kind)
		if ev.IsStart(atom.Namespace, "author") {
			break
		}
	}
	gotAuthor, err := atom.ReadAuthor(r)
	require.NoError(t, err)
	require.Equal(t, author, gotAuthor)

	_, err = r.Next()
	require.NoError(t, err)
	gotLink, err := atom.ReadLink(r)
	require.NoError(t, err)
	require.Equal(t, link, gotLink)
}
