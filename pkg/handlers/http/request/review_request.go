package request

import (
	"fmt"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/masking"
)

type OpenReviewRequest struct {
	Object string `json:"object"` // @required
}

type RecordEditRequest struct {
	ID       string  `json:"id"` // @required
	IsMasked *string `json:"is_masked,omitempty"`
	Retry    *bool   `json:"retry,omitempty"`
}

type EditRecordsRequest struct {
	Edits []RecordEditRequest `json:"edits"` // @required
}

// Validate rejects malformed edits before they reach the review session.
// Status values are checked by the session itself.
func (r *EditRecordsRequest) Validate() error {
	if len(r.Edits) == 0 {
		return fmt.Errorf("edits is required")
	}
	seen := make(map[string]struct{}, len(r.Edits))
	for i, e := range r.Edits {
		if e.ID == "" {
			return fmt.Errorf("edits[%d].id is required", i)
		}
		if e.IsMasked == nil && e.Retry == nil {
			return fmt.Errorf("edits[%d] changes nothing", i)
		}
		if _, dup := seen[e.ID]; dup {
			return fmt.Errorf("record '%s' is edited more than once", e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return nil
}

func (r *EditRecordsRequest) ToRecordEdits() []masking.RecordEdit {
	edits := make([]masking.RecordEdit, 0, len(r.Edits))
	for _, e := range r.Edits {
		edit := masking.RecordEdit{ID: e.ID, Retry: e.Retry}
		if e.IsMasked != nil {
			status := masking.MaskStatus(*e.IsMasked)
			edit.IsMasked = &status
		}
		edits = append(edits, edit)
	}
	return edits
}

// RetryRequest selects retry-all when All is set; the row selection is then
// ignored.
type RetryRequest struct {
	All bool `json:"all"`
}
