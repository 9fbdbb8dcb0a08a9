package kml

// View is either *LookAt or *Camera.
type View interface {
	isView()
}

// ViewFields are the fields LookAt and Camera share.
type ViewFields struct {
	Longitude    float64
	Latitude     float64
	Altitude     float64
	Heading      float64
	Tilt         float64
	AltitudeMode AltitudeMode
}

type LookAt struct {
	IDAttributes
	ViewFields
	Range float64
	Extensions
}

func NewLookAt() *LookAt { return &LookAt{} }

type Camera struct {
	IDAttributes
	ViewFields
	Roll float64
	Extensions
}

func NewCamera() *Camera { return &Camera{} }

func (*LookAt) isView() {}
func (*Camera) isView() {}

// TimePrimitive is either *TimeSpan or *TimeStamp.
type TimePrimitive interface {
	isTimePrimitive()
}

// TimeSpan is a period. A missing end means the span is open.
type TimeSpan struct {
	IDAttributes
	Begin DateTime
	End   DateTime
	Extensions
}

type TimeStamp struct {
	IDAttributes
	When DateTime
	Extensions
}

func (*TimeSpan) isTimePrimitive()  {}
func (*TimeStamp) isTimePrimitive() {}
