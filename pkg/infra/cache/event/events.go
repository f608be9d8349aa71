package event

import "reflect"

type Event interface {
	Type() string
}

var (
	InvalidateCatalogueEventType = "InvalidateCatalogueEvent"
)

var Registry = map[string]reflect.Type{
	InvalidateCatalogueEventType: reflect.TypeOf(InvalidateCatalogueEvent{}),
}
