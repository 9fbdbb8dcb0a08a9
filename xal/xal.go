// Package xal reads and writes the part of the OASIS xAL 2.0 postal
// address language that KML uses in xal:AddressDetails.
//
// Only the common Country / AdministrativeArea / Locality / Thoroughfare
// chain and free-form address lines are modelled. Other xAL elements are
// skipped on read.
package xal

import (
	"github.com/cockroachdb/errors"

	"github.com/KimNorgaard/go-kml/xmlstream"
)

// Namespace is the xAL 2.0 namespace URI.
const Namespace = "urn:oasis:names:tc:ciq:xsdschema:xAL:2.0"

// Prefix is the preferred prefix for Namespace.
const Prefix = "xal"

// AddressDetails is the root of an xAL address.
type AddressDetails struct {
	AddressType  string
	AddressLines []string
	Country      *Country
}

type Country struct {
	CountryNameCode    string
	CountryNames       []string
	AdministrativeArea *AdministrativeArea
	Locality           *Locality
}

type AdministrativeArea struct {
	Names    []string
	Locality *Locality
}

type Locality struct {
	Names        []string
	Thoroughfare *Thoroughfare
	PostalCode   string
}

type Thoroughfare struct {
	Names  []string
	Number string
}

// handler consumes one child element. It returns false for elements it
// does not know, which are then skipped.
type handler func(local string) (bool, error)

// walk reads the children of the element under the cursor until its end.
func walk(r *xmlstream.Reader, h handler) error {
	name := r.Current().Name
	for {
		ev, err := r.Next()
		if err != nil {
			return err
		}
		switch ev.Kind {
		case xmlstream.StartElement:
			ok := false
			if ev.Name.Space == Namespace {
				if ok, err = h(ev.Name.Local); err != nil {
					return err
				}
			}
			if !ok {
				if err := r.Skip(); err != nil {
					return err
				}
			}
		case xmlstream.EndElement:
			if ev.Name == name {
				return nil
			}
		case xmlstream.EOF:
			return errors.Newf("xal: unexpected end of input in %s", name.Local)
		}
	}
}

func text(r *xmlstream.Reader) (string, error) {
	t, err := r.ElementText()
	return t.Value, err
}

// ReadAddressDetails reads an xal:AddressDetails element. The reader must
// be positioned on its start; it is left on its end.
func ReadAddressDetails(r *xmlstream.Reader) (*AddressDetails, error) {
	start := r.Current()
	if !start.IsStart(Namespace, "AddressDetails") {
		return nil, errors.Newf("xal: expected AddressDetails, got %s %q", start.Kind, start.Name.Local)
	}
	ad := &AddressDetails{}
	ad.AddressType, _ = start.Attribute("AddressType")
	err := walk(r, func(local string) (bool, error) {
		switch local {
		case "AddressLines":
			return true, walk(r, func(local string) (bool, error) {
				if local != "AddressLine" {
					return false, nil
				}
				s, err := text(r)
				ad.AddressLines = append(ad.AddressLines, s)
				return true, err
			})
		case "Country":
			c, err := readCountry(r)
			ad.Country = c
			return true, err
		}
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return ad, nil
}

func readCountry(r *xmlstream.Reader) (*Country, error) {
	c := &Country{}
	err := walk(r, func(local string) (bool, error) {
		var err error
		switch local {
		case "CountryNameCode":
			c.CountryNameCode, err = text(r)
		case "CountryName":
			var s string
			s, err = text(r)
			c.CountryNames = append(c.CountryNames, s)
		case "AdministrativeArea":
			c.AdministrativeArea, err = readAdministrativeArea(r)
		case "Locality":
			c.Locality, err = readLocality(r)
		default:
			return false, nil
		}
		return true, err
	})
	return c, err
}

func readAdministrativeArea(r *xmlstream.Reader) (*AdministrativeArea, error) {
	a := &AdministrativeArea{}
	err := walk(r, func(local string) (bool, error) {
		var err error
		switch local {
		case "AdministrativeAreaName":
			var s string
			s, err = text(r)
			a.Names = append(a.Names, s)
		case "Locality":
			a.Locality, err = readLocality(r)
		default:
			return false, nil
		}
		return true, err
	})
	return a, err
}

func readLocality(r *xmlstream.Reader) (*Locality, error) {
	l := &Locality{}
	err := walk(r, func(local string) (bool, error) {
		var err error
		switch local {
		case "LocalityName":
			var s string
			s, err = text(r)
			l.Names = append(l.Names, s)
		case "Thoroughfare":
			l.Thoroughfare, err = readThoroughfare(r)
		case "PostalCode":
			err = walk(r, func(local string) (bool, error) {
				if local != "PostalCodeNumber" {
					return false, nil
				}
				var err error
				l.PostalCode, err = text(r)
				return true, err
			})
		default:
			return false, nil
		}
		return true, err
	})
	return l, err
}

func readThoroughfare(r *xmlstream.Reader) (*Thoroughfare, error) {
	t := &Thoroughfare{}
	err := walk(r, func(local string) (bool, error) {
		var err error
		switch local {
		case "ThoroughfareName":
			var s string
			s, err = text(r)
			t.Names = append(t.Names, s)
		case "ThoroughfareNumber":
			t.Number, err = text(r)
		default:
			return false, nil
		}
		return true, err
	})
	return t, err
}

// writer wraps the emitter with a sticky error.
type writer struct {
	w   *xmlstream.Writer
	err error
}

func (w *writer) start(local string) {
	if w.err == nil {
		w.err = w.w.StartElement(Namespace, local)
	}
}

func (w *writer) end() {
	if w.err == nil {
		w.err = w.w.EndElement()
	}
}

func (w *writer) text(local, s string) {
	if w.err == nil && s != "" {
		w.err = w.w.TextElement(Namespace, local, xmlstream.PlainText(s))
	}
}

func (w *writer) texts(local string, ss []string) {
	for _, s := range ss {
		w.text(local, s)
	}
}

// WriteAddressDetails writes ad as an xal:AddressDetails element.
func WriteAddressDetails(xw *xmlstream.Writer, ad *AddressDetails) error {
	w := &writer{w: xw}
	w.start("AddressDetails")
	if ad.AddressType != "" && w.err == nil {
		w.err = xw.Attr("", "AddressType", ad.AddressType)
	}
	if len(ad.AddressLines) > 0 {
		w.start("AddressLines")
		w.texts("AddressLine", ad.AddressLines)
		w.end()
	}
	if c := ad.Country; c != nil {
		w.start("Country")
		w.text("CountryNameCode", c.CountryNameCode)
		w.texts("CountryName", c.CountryNames)
		if a := c.AdministrativeArea; a != nil {
			w.start("AdministrativeArea")
			w.texts("AdministrativeAreaName", a.Names)
			w.locality(a.Locality)
			w.end()
		}
		w.locality(c.Locality)
		w.end()
	}
	w.end()
	return w.err
}

func (w *writer) locality(l *Locality) {
	if l == nil {
		return
	}
	w.start("Locality")
	w.texts("LocalityName", l.Names)
	if t := l.Thoroughfare; t != nil {
		w.start("Thoroughfare")
		w.texts("ThoroughfareName", t.Names)
		w.text("ThoroughfareNumber", t.Number)
		w.end()
	}
	if l.PostalCode != "" {
		w.start("PostalCode")
		w.text("PostalCodeNumber", l.PostalCode)
		w.end()
	}
	w.end()
}
