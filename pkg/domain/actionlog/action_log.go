package actionlog

import (
	"context"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/common"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/database/types"
	"github.com/google/uuid"
)

type Workflow string

const (
	WorkflowScan   Workflow = "scan"
	WorkflowReview Workflow = "review"
)

type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeRejected  Outcome = "rejected"
	OutcomeFailed    Outcome = "failed"
)

// ActionLog is a ledger entry for one mutating workflow action.
type ActionLog struct {
	ID          uuid.UUID         `json:"id" gorm:"type:uuid;primaryKey"`
	Workflow    Workflow          `json:"workflow"`
	Object      string            `json:"object" gorm:"index"`
	Action      string            `json:"action"`
	RecordIDs   types.StringArray `json:"record_ids" gorm:"type:text[]"`
	Operator    string            `json:"operator"`
	ClientAgent string            `json:"client_agent"`
	Outcome     Outcome           `json:"outcome"`
	Message     string            `json:"message"`
	CreatedAt   time.Time         `json:"created_at"`
}

func (a ActionLog) TableName() string {
	return "public.masking_action_logs"
}

func New(workflow Workflow, object, action string, recordIDs []string, operator string) *ActionLog {
	return &ActionLog{
		ID:        uuid.New(),
		Workflow:  workflow,
		Object:    object,
		Action:    action,
		RecordIDs: types.StringArray(recordIDs),
		Operator:  operator,
		Outcome:   OutcomeSucceeded,
		CreatedAt: time.Now().UTC(),
	}
}

// FromContext builds an entry attributed to the operator and console client
// the auth middleware stored on ctx.
func FromContext(ctx context.Context, workflow Workflow, object, action string, recordIDs []string) *ActionLog {
	operator, _ := ctx.Value(common.OperatorKey).(string)
	entry := New(workflow, object, action, recordIDs, operator)
	entry.ClientAgent, _ = ctx.Value(common.ClientAgentKey).(string)
	return entry
}

// Fail marks the entry as failed with the error text.
func (a *ActionLog) Fail(err error) {
	a.Outcome = OutcomeFailed
	if err != nil {
		a.Message = err.Error()
	}
}

func (a *ActionLog) Reject(message string) {
	a.Outcome = OutcomeRejected
	a.Message = message
}
