package scan

const (
	// DefaultObject is the object a scan session opens on when none is given.
	DefaultObject = "User"
	// PlaceholderObject is the console's "nothing chosen" entry.
	PlaceholderObject = "Select the Object Name"
	// DefaultPageSize is the number of fields per table page.
	DefaultPageSize = 7
)

// Field is a column of an object that can be selected for scanning.
type Field struct {
	Field      string `json:"field"`
	Type       string `json:"type"`
	IsSelected bool   `json:"is_selected"`
}
