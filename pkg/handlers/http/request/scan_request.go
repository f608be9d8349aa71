package request

import "fmt"

type CreateScanSessionRequest struct {
	Object string `json:"object"`
}

type ChangeScanObjectRequest struct {
	Object string `json:"object"`
}

type SelectFieldsRequest struct {
	Selections map[string]bool `json:"selections"` // @required
	Page       int             `json:"page"`
}

func (r *SelectFieldsRequest) Validate() error {
	if len(r.Selections) == 0 {
		return fmt.Errorf("selections is required")
	}
	for name := range r.Selections {
		if name == "" {
			return fmt.Errorf("field names cannot be empty")
		}
	}
	return nil
}
