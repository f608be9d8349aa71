package response

import (
	"time"

	appscan "github.com/NeuralTrust/MaskFlow/pkg/app/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/scan"
)

type ScanSessionOutput struct {
	ID             string       `json:"id"`
	Object         string       `json:"object"`
	State          scan.State   `json:"state"`
	FieldsSaved    bool         `json:"fields_saved"`
	ScanStarted    bool         `json:"scan_started"`
	SelectedFields []string     `json:"selected_fields"`
	Fields         []scan.Field `json:"fields"`
	Page           int          `json:"page"`
	PerPage        int          `json:"per_page"`
	TotalPages     int          `json:"total_pages"`
	Total          int          `json:"total"`
	Start          int          `json:"start"`
	End            int          `json:"end"`
	ExpiresAt      time.Time    `json:"expires_at"`
}

type SubmitScanOutput struct {
	Session     ScanSessionOutput `json:"session"`
	FieldsSaved bool              `json:"fields_saved"`
	ScanStarted bool              `json:"scan_started"`
	Notices     []string          `json:"notices"`
}

func NewScanSessionOutput(view *appscan.View) ScanSessionOutput {
	s := view.Session
	return ScanSessionOutput{
		ID:             s.ID,
		Object:         s.Object,
		State:          s.State,
		FieldsSaved:    s.FieldsSaved,
		ScanStarted:    s.ScanStarted,
		SelectedFields: s.SelectedFields(),
		Fields:         view.Page.Fields,
		Page:           view.Page.Page,
		PerPage:        view.Page.PerPage,
		TotalPages:     view.Page.TotalPages,
		Total:          view.Page.Total,
		Start:          view.Page.Start,
		End:            view.Page.End,
		ExpiresAt:      s.ExpiresAt,
	}
}

func NewSubmitScanOutput(result *appscan.SubmitResult) SubmitScanOutput {
	notices := result.Notices
	if notices == nil {
		notices = []string{}
	}
	return SubmitScanOutput{
		Session:     NewScanSessionOutput(&result.View),
		FieldsSaved: result.FieldsSaved,
		ScanStarted: result.ScanStarted,
		Notices:     notices,
	}
}
