package kml

// IDAttributes are the identity attributes every Object carries. Update
// operations address an earlier object through TargetID.
type IDAttributes struct {
	ID       string
	TargetID string
}

// Identity returns a. It makes every type embedding IDAttributes an Object.
func (a *IDAttributes) Identity() *IDAttributes { return a }

// Object is any KML entity with identity attributes.
type Object interface {
	Identity() *IDAttributes
}

// Extended is implemented by every entity that carries extension values.
type Extended interface {
	Ext() *Extensions
}

// Ext returns e. It makes every type embedding Extensions Extended.
func (e *Extensions) Ext() *Extensions { return e }
