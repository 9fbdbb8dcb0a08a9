package kml

// ExtendedData attaches custom data to a feature, either untyped Data
// pairs or SchemaData typed by a Schema. Elements from other namespaces
// are kept as extension values.
type ExtendedData struct {
	Data       []*Data
	SchemaData []*SchemaData
	Extensions
}

// Data is an untyped name/value pair.
type Data struct {
	IDAttributes
	Name        string
	DisplayName Text
	Value       string
	Extensions
}

// SchemaData holds values for the fields of the Schema SchemaURL names.
type SchemaData struct {
	IDAttributes
	SchemaURL  string
	SimpleData []*SimpleData
	Extensions
}

type SimpleData struct {
	Name  string
	Value string
}

// Schema declares a custom data type.
type Schema struct {
	ID           string
	Name         string
	SimpleFields []*SimpleField
}

type SimpleField struct {
	Type        string
	Name        string
	DisplayName Text
}
