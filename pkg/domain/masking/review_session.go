package masking

import (
	"fmt"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/domain"
)

// RecordEdit is one row change made in the review table. Nil fields are
// left as they are.
type RecordEdit struct {
	ID       string      `json:"id"`
	IsMasked *MaskStatus `json:"is_masked,omitempty"`
	Retry    *bool       `json:"retry,omitempty"`
}

// ReviewSession is an operator's edit pass over the records of one object.
// Baseline holds the statuses as last loaded from Protecto; Edits only holds
// rows whose status differs from the baseline.
type ReviewSession struct {
	ID             string                `json:"id"`
	Object         string                `json:"object"`
	Query          string                `json:"query"`
	Order          []string              `json:"order"`
	Baseline       map[string]MaskStatus `json:"baseline"`
	Edits          map[string]MaskStatus `json:"edits"`
	RetrySelection map[string]bool       `json:"retry_selection"`
	CreatedAt      time.Time             `json:"created_at"`
	UpdatedAt      time.Time             `json:"updated_at"`
	ExpiresAt      time.Time             `json:"expires_at"`
}

func NewReviewSession(id, object, query string, table *Table, ttl time.Duration) *ReviewSession {
	now := time.Now()
	s := &ReviewSession{
		ID:             id,
		Object:         object,
		Query:          query,
		Edits:          make(map[string]MaskStatus),
		RetrySelection: make(map[string]bool),
		CreatedAt:      now,
		UpdatedAt:      now,
		ExpiresAt:      now.Add(ttl),
	}
	s.loadBaseline(table)
	for _, r := range table.Records {
		if r.Retry {
			s.RetrySelection[r.ID] = true
		}
	}
	return s
}

// Refresh rebases the session on a freshly loaded table. Pending edits and
// retry marks survive for records that are still present and still differ.
func (s *ReviewSession) Refresh(table *Table) {
	s.loadBaseline(table)
	for id, status := range s.Edits {
		base, ok := s.Baseline[id]
		if !ok || base == status || base == StatusNoMask {
			delete(s.Edits, id)
		}
	}
	for id := range s.RetrySelection {
		if _, ok := s.Baseline[id]; !ok {
			delete(s.RetrySelection, id)
		}
	}
	s.touch()
}

// Apply validates every edit before applying any of them.
func (s *ReviewSession) Apply(edits []RecordEdit) error {
	for _, e := range edits {
		base, ok := s.Baseline[e.ID]
		if !ok {
			return domain.NewValidationError(
				domain.ReasonUnknownRecord,
				fmt.Sprintf("record '%s' is not scheduled for object '%s'", e.ID, s.Object),
			)
		}
		if e.IsMasked == nil {
			continue
		}
		if _, err := ParseMaskStatus(string(*e.IsMasked)); err != nil {
			return err
		}
		if base == StatusNoMask && *e.IsMasked != StatusNoMask {
			return domain.NewValidationError(
				domain.ReasonRecordExempt,
				fmt.Sprintf("record '%s' is exempt from masking and cannot be changed", e.ID),
			)
		}
	}

	s.ensureMaps()
	for _, e := range edits {
		if e.IsMasked != nil {
			if *e.IsMasked == s.Baseline[e.ID] {
				delete(s.Edits, e.ID)
			} else {
				s.Edits[e.ID] = *e.IsMasked
			}
		}
		if e.Retry != nil {
			if *e.Retry {
				s.RetrySelection[e.ID] = true
			} else {
				delete(s.RetrySelection, e.ID)
			}
		}
	}
	s.touch()
	return nil
}

// ExemptionCandidates returns the records relabelled no_mask in this pass,
// in table order. Records already persisted as no_mask are not included.
func (s *ReviewSession) ExemptionCandidates() []string {
	ids := make([]string, 0)
	for _, id := range s.Order {
		if s.Edits[id] == StatusNoMask && s.Baseline[id] != StatusNoMask {
			ids = append(ids, id)
		}
	}
	return ids
}

// RetryCandidates returns retry-marked records in table order. Exemption
// wins: a record exempt or being exempted is never retried.
func (s *ReviewSession) RetryCandidates() []string {
	ids := make([]string, 0)
	for _, id := range s.Order {
		if !s.RetrySelection[id] {
			continue
		}
		if s.Baseline[id] == StatusNoMask || s.Edits[id] == StatusNoMask {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// MarkExempted folds saved exemptions into the baseline.
func (s *ReviewSession) MarkExempted(ids []string) {
	for _, id := range ids {
		if _, ok := s.Baseline[id]; ok {
			s.Baseline[id] = StatusNoMask
		}
		delete(s.Edits, id)
		delete(s.RetrySelection, id)
	}
	s.touch()
}

func (s *ReviewSession) ClearRetry(ids []string) {
	for _, id := range ids {
		delete(s.RetrySelection, id)
	}
	s.touch()
}

// Overlay returns a copy of table with this pass's edits and retry marks
// applied, for rendering.
func (s *ReviewSession) Overlay(table *Table) *Table {
	out := &Table{
		Columns: append([]string(nil), table.Columns...),
		Records: make([]Record, len(table.Records)),
	}
	for i, r := range table.Records {
		if status, ok := s.Edits[r.ID]; ok {
			r.IsMasked = status
		}
		r.Retry = s.RetrySelection[r.ID]
		out.Records[i] = r
	}
	return out
}

func (s *ReviewSession) loadBaseline(table *Table) {
	s.Order = make([]string, 0, len(table.Records))
	s.Baseline = make(map[string]MaskStatus, len(table.Records))
	for _, r := range table.Records {
		s.Order = append(s.Order, r.ID)
		s.Baseline[r.ID] = r.IsMasked
	}
}

func (s *ReviewSession) ensureMaps() {
	if s.Edits == nil {
		s.Edits = make(map[string]MaskStatus)
	}
	if s.RetrySelection == nil {
		s.RetrySelection = make(map[string]bool)
	}
}

// Extend pushes the expiry ttl past now; sessions expire when idle.
func (s *ReviewSession) Extend(ttl time.Duration) {
	s.ExpiresAt = time.Now().Add(ttl)
}

func (s *ReviewSession) touch() {
	s.UpdatedAt = time.Now()
}
