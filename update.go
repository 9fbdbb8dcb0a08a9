package kml

// NetworkLinkControl controls how a network link that loaded this
// document behaves.
type NetworkLinkControl struct {
	MinRefreshPeriod float64
	MaxSessionLength float64
	Cookie           string
	Message          string
	LinkName         string
	LinkDescription  Text
	LinkSnippet      *Snippet
	Expires          DateTime
	Update           *Update
	View             View
	Extensions
}

func NewNetworkLinkControl() *NetworkLinkControl {
	return &NetworkLinkControl{MaxSessionLength: -1}
}

// Update changes objects of a document loaded earlier from TargetHref.
type Update struct {
	TargetHref string
	Operations []UpdateOperation
}

// UpdateOperation is one of *Create, *Delete or *Change.
type UpdateOperation interface {
	isUpdateOperation()
}

// Create adds the children of each container to the container whose id
// its TargetID names.
type Create struct {
	Containers []Container
}

// Delete removes the features whose ids their TargetIDs name.
type Delete struct {
	Features []Feature
}

// Change replaces fields of the objects whose ids their TargetIDs name.
type Change struct {
	Objects []Object
}

func (*Create) isUpdateOperation() {}
func (*Delete) isUpdateOperation() {}
func (*Change) isUpdateOperation() {}
