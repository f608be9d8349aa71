package event

// InvalidateCatalogueEvent asks every replica to drop its cached object list.
type InvalidateCatalogueEvent struct {
	RequestedBy string `json:"requested_by"`
}

func (e InvalidateCatalogueEvent) Type() string {
	return InvalidateCatalogueEventType
}
