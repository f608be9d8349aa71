package response

import (
	"time"

	appmasking "github.com/NeuralTrust/MaskFlow/pkg/app/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/masking"
)

type ReviewOutput struct {
	ID                string                   `json:"id"`
	Object            string                   `json:"object"`
	Query             string                   `json:"query"`
	Columns           []string                 `json:"columns"`
	Records           []map[string]interface{} `json:"records"`
	Eligibility       masking.Eligibility      `json:"eligibility"`
	Controls          masking.Controls         `json:"controls"`
	PendingExemptions []string                 `json:"pending_exemptions"`
	RetrySelection    []string                 `json:"retry_selection"`
	ExpiresAt         time.Time                `json:"expires_at"`
}

type EditOutput struct {
	ID                string   `json:"id"`
	Object            string   `json:"object"`
	PendingExemptions []string `json:"pending_exemptions"`
	RetrySelection    []string `json:"retry_selection"`
}

type ActionOutput struct {
	Action       masking.Action `json:"action"`
	Object       string         `json:"object"`
	RecordIDs    []string       `json:"record_ids"`
	Message      string         `json:"message"`
	Notice       string         `json:"notice,omitempty"`
	StillEnabled bool           `json:"still_enabled"`
}

func NewReviewOutput(review *appmasking.Review) ReviewOutput {
	return ReviewOutput{
		ID:                review.Session.ID,
		Object:            review.Session.Object,
		Query:             review.Session.Query,
		Columns:           review.Table.Columns,
		Records:           FlatRecords(review.Table),
		Eligibility:       review.Eligibility,
		Controls:          review.Controls,
		PendingExemptions: review.PendingExemptions,
		RetrySelection:    review.RetrySelection,
		ExpiresAt:         review.Session.ExpiresAt,
	}
}

// FlatRecords renders each record as one row keyed by column name, with the
// object attributes alongside the fixed columns.
func FlatRecords(table *masking.Table) []map[string]interface{} {
	rows := make([]map[string]interface{}, 0, len(table.Records))
	for _, r := range table.Records {
		row := make(map[string]interface{}, len(r.Attributes)+len(masking.FixedColumns))
		for k, v := range r.Attributes {
			row[k] = v
		}
		row[masking.ColumnRetry] = r.Retry
		row[masking.ColumnID] = r.ID
		row[masking.ColumnIsMasked] = r.IsMasked
		row[masking.ColumnError] = r.Error
		rows = append(rows, row)
	}
	return rows
}

func NewEditOutput(result *appmasking.EditResult) EditOutput {
	return EditOutput{
		ID:                result.Session.ID,
		Object:            result.Session.Object,
		PendingExemptions: result.PendingExemptions,
		RetrySelection:    result.RetrySelection,
	}
}

func NewActionOutput(result *appmasking.ActionResult) ActionOutput {
	ids := result.RecordIDs
	if ids == nil {
		ids = []string{}
	}
	return ActionOutput{
		Action:       result.Action,
		Object:       result.Object,
		RecordIDs:    ids,
		Message:      result.Message,
		Notice:       result.Notice,
		StillEnabled: result.StillEnabled,
	}
}
