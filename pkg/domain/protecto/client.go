package protecto

import (
	"context"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/scan"
)

// Operation names, used for metrics labels and error reporting.
const (
	OpListScheduled      = "list_scheduled"
	OpListObjects        = "list_objects"
	OpListFields         = "list_fields"
	OpGetRecords         = "get_records"
	OpSetExempt          = "set_exempt"
	OpRetry              = "retry"
	OpApprove            = "approve"
	OpEligibility        = "eligibility"
	OpSaveFieldSelection = "save_field_selection"
	OpStartScan          = "start_scan"
)

type MessageResult struct {
	Message string `json:"message"`
}

type RetryResult struct {
	RetryEnabled bool   `json:"is_retry_enabled"`
	Message      string `json:"message"`
}

type ApproveResult struct {
	ApproveEnabled bool   `json:"is_approve_enabled"`
	Message        string `json:"message"`
}

type SubmitResult struct {
	Submitted bool `json:"is_scan_submitted"`
}

// Client is the remote Protecto service. Every business decision about
// fields, scans, masking status and eligibility is made there.
//
//go:generate mockery --name=Client --dir=. --output=./mocks --filename=client_mock.go --case=underscore
type Client interface {
	ListScheduled(ctx context.Context) ([]masking.ScheduledObject, error)
	ListObjects(ctx context.Context) ([]string, error)
	ListFields(ctx context.Context, object string) ([]scan.Field, error)
	GetRecords(ctx context.Context, object string) (*masking.Table, error)
	SetExempt(ctx context.Context, object string, ids []string) (*MessageResult, error)
	Retry(ctx context.Context, object string, all bool, ids []string) (*RetryResult, error)
	Approve(ctx context.Context, object string) (*ApproveResult, error)
	Eligibility(ctx context.Context, object string) (*masking.Eligibility, error)
	SaveFieldSelection(ctx context.Context, object string, fields []string) (*SubmitResult, error)
	StartScan(ctx context.Context, fields []string) (*SubmitResult, error)
}
