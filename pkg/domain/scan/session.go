package scan

import (
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/domain"
	"github.com/NeuralTrust/MaskFlow/pkg/pagination"
)

type State string

const (
	StateIdle       State = "idle"
	StateSelecting  State = "selecting"
	StateSubmitting State = "submitting"
	StateSubmitted  State = "submitted"
)

// Session is one operator's pass over the scan screen. Once a submission
// starts the session refuses further edits and submissions until Reset.
type Session struct {
	ID          string    `json:"id"`
	Object      string    `json:"object"`
	Fields      []Field   `json:"fields"`
	State       State     `json:"state"`
	Page        int       `json:"page"`
	FieldsSaved bool      `json:"fields_saved"`
	ScanStarted bool      `json:"scan_started"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// FieldPage is the visible slice of a session's field table.
type FieldPage struct {
	Fields []Field `json:"fields"`
	pagination.Window
}

func NewSession(id, object string, fields []Field, ttl time.Duration) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		Object:    object,
		Fields:    fields,
		State:     StateIdle,
		Page:      1,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// ResolveObject applies the default object and rejects the placeholder.
func ResolveObject(object string) (string, error) {
	object = strings.TrimSpace(object)
	if object == "" {
		return DefaultObject, nil
	}
	if object == PlaceholderObject {
		return "", domain.ErrNoObjectSelected
	}
	return object, nil
}

// AcceptsChanges reports whether the session is still before submission.
func (s *Session) AcceptsChanges() bool {
	return s.State == StateIdle || s.State == StateSelecting
}

func (s *Session) Select(selections map[string]bool) error {
	if !s.AcceptsChanges() {
		return domain.NewSubmissionLockedError(s.ID, string(s.State))
	}

	index := make(map[string]int, len(s.Fields))
	for i, f := range s.Fields {
		index[f.Field] = i
	}
	for name := range selections {
		if _, ok := index[name]; !ok {
			return domain.NewValidationError(
				domain.ReasonUnknownRecord,
				fmt.Sprintf("field '%s' does not belong to object '%s'", name, s.Object),
			)
		}
	}

	for name, selected := range selections {
		s.Fields[index[name]].IsSelected = selected
	}
	if s.State == StateIdle {
		s.State = StateSelecting
	}
	s.touch()
	return nil
}

// SelectedFields returns selected field names in table order.
func (s *Session) SelectedFields() []string {
	selected := make([]string, 0, len(s.Fields))
	for _, f := range s.Fields {
		if f.IsSelected {
			selected = append(selected, f.Field)
		}
	}
	return selected
}

// BeginSubmission moves the session to submitting. It refuses a session that
// already started a submission and leaves the state alone on an empty selection.
func (s *Session) BeginSubmission() ([]string, error) {
	if !s.AcceptsChanges() {
		return nil, domain.NewSubmissionLockedError(s.ID, string(s.State))
	}
	selected := s.SelectedFields()
	if len(selected) == 0 {
		return nil, domain.ErrEmptySelection
	}
	s.State = StateSubmitting
	s.FieldsSaved = false
	s.ScanStarted = false
	s.touch()
	return selected, nil
}

// RollbackSubmission returns a submission that saved nothing to selecting.
func (s *Session) RollbackSubmission() {
	if s.State != StateSubmitting {
		return
	}
	s.State = StateSelecting
	s.touch()
}

func (s *Session) CompleteSubmission(scanStarted bool) {
	s.State = StateSubmitted
	s.FieldsSaved = true
	s.ScanStarted = scanStarted
	s.touch()
}

// Reset returns the session to idle with a freshly loaded field list.
func (s *Session) Reset(fields []Field) {
	s.Fields = fields
	s.State = StateIdle
	s.Page = 1
	s.FieldsSaved = false
	s.ScanStarted = false
	s.touch()
}

func (s *Session) ChangeObject(object string, fields []Field) {
	s.Object = object
	s.Reset(fields)
}

// PageOf clamps page into range, remembers it and returns the visible fields.
func (s *Session) PageOf(page, perPage int) FieldPage {
	if page == 0 {
		page = s.Page
	}
	window := pagination.Clamp(len(s.Fields), page, perPage)
	s.Page = window.Page

	visible := make([]Field, window.End-window.Offset)
	copy(visible, s.Fields[window.Offset:window.End])
	return FieldPage{Fields: visible, Window: window}
}

// Extend pushes the expiry ttl past now; sessions expire when idle.
func (s *Session) Extend(ttl time.Duration) {
	s.ExpiresAt = time.Now().Add(ttl)
}

func (s *Session) touch() {
	s.UpdatedAt = time.Now()
}
