/*
Package kml reads and writes KML documents (versions 2.1 and 2.2) to and
from a typed document model. The API mirrors encoding/json: Marshal and
Unmarshal for byte slices, NewEncoder and NewDecoder for streams.

A document is a *KML holding one root Feature. Each KML element is a Go
struct: the abstract types of the schema (Feature, Geometry,
StyleSelector, SubStyle, View, TimePrimitive) are closed interfaces, and
the fields they share are embedded structs such as FeatureFields.
Constructors like NewPlacemark return values with the schema defaults
set. The writer leaves out every field equal to its default, so reading
and writing a document gives back the elements it was written with.

Example of reading a document:

	doc, err := kml.Unmarshal(data)
	if err != nil {
		// handle error
	}
	if pm, ok := doc.Feature.(*kml.Placemark); ok {
		fmt.Println(pm.Name)
	}

Example of writing one:

	pm := kml.NewPlacemark()
	pm.Name = "Gazebo"
	pt := kml.NewPoint()
	pt.Coordinates = kml.Coordinates{{-122.0822, 37.4222}}
	pm.Geometry = pt
	out, err := kml.Marshal(kml.New(pm))

# Versions

The version of a document is the namespace of its root element. It is
fixed for the whole read. Elements that only exist in KML 2.2, such as
PhotoOverlay, Camera or ExtendedData, are rejected in a 2.1 document with
a *VersionError. The Lenient option skips them instead. The encoder writes
doc.Version unless TargetVersion names another one, and renames the
elements whose names changed between versions.

# Extensions

Elements outside the KML namespace are handed to extension plugins
registered with WithExtensions. A plugin implements ExtensionReader,
ExtensionWriter or both, and is asked in registration order. A value read
by a plugin is stored in the Extensions of its element at a Level, which
fixes where in the element's content it is written back.
NamespaceExtension keeps every element of one namespace as a generic
tree, which is enough to carry the Google gx: extensions through a read
and write cycle.

# Geometry

ToGeom and FromGeom convert geometries to and from
github.com/twpayne/go-geom values.
*/
package kml
