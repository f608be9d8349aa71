package masking

type Action string

const (
	ActionSave     Action = "save"
	ActionRetry    Action = "retry"
	ActionRetryAll Action = "retry_all"
	ActionApprove  Action = "approve"
)

// Eligibility carries the server-computed flags gating retry and approve.
type Eligibility struct {
	ApproveEnabled bool `json:"is_approve_enabled"`
	RetryEnabled   bool `json:"is_retry_enabled"`
}

// Controls says which review actions are currently usable.
type Controls struct {
	Save     bool `json:"save"`
	Retry    bool `json:"retry"`
	RetryAll bool `json:"retry_all"`
	Approve  bool `json:"approve"`
}

func (e Eligibility) Permits(action Action) bool {
	switch action {
	case ActionSave:
		return true
	case ActionRetry, ActionRetryAll:
		return e.RetryEnabled
	case ActionApprove:
		return e.ApproveEnabled
	default:
		return false
	}
}

func (e Eligibility) Controls() Controls {
	return Controls{
		Save:     e.Permits(ActionSave),
		Retry:    e.Permits(ActionRetry),
		RetryAll: e.Permits(ActionRetryAll),
		Approve:  e.Permits(ActionApprove),
	}
}
