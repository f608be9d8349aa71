package masking

// ScheduledObject is an object with a query currently queued for masking review.
type ScheduledObject struct {
	ObjectName string `json:"object_name"`
	Query      string `json:"query"`
}

// QueryFor returns the query scheduled for object, or "" when it has none.
func QueryFor(scheduled []ScheduledObject, object string) (string, bool) {
	for _, s := range scheduled {
		if s.ObjectName == object {
			return s.Query, true
		}
	}
	return "", false
}
