package masking

import (
	"fmt"
	"testing"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func status(s MaskStatus) *MaskStatus { return &s }

func flag(b bool) *bool { return &b }

func newTable(n int, exempt ...string) *Table {
	exemptSet := make(map[string]bool, len(exempt))
	for _, id := range exempt {
		exemptSet[id] = true
	}
	table := &Table{Columns: FixedColumns}
	for i := 1; i <= n; i++ {
		id := fmt.Sprintf("%03d", i)
		st := StatusToBeMasked
		if exemptSet[id] {
			st = StatusNoMask
		}
		table.Records = append(table.Records, Record{ID: id, IsMasked: st})
	}
	return table
}

func TestReviewSession_ExemptionOnlyCoversThisEditPass(t *testing.T) {
	s := NewReviewSession("r1", "User", "SELECT Id FROM User", newTable(5, "004"), time.Hour)

	require.NoError(t, s.Apply([]RecordEdit{
		{ID: "001", IsMasked: status(StatusNoMask)},
		{ID: "004", IsMasked: status(StatusNoMask)},
	}))

	assert.Equal(t, []string{"001"}, s.ExemptionCandidates(), "already persisted no_mask rows are not re-sent")
}

func TestReviewSession_EditBackToBaselineCancels(t *testing.T) {
	s := NewReviewSession("r1", "User", "", newTable(3), time.Hour)

	require.NoError(t, s.Apply([]RecordEdit{{ID: "002", IsMasked: status(StatusNoMask)}}))
	require.NoError(t, s.Apply([]RecordEdit{{ID: "002", IsMasked: status(StatusToBeMasked)}}))

	assert.Empty(t, s.ExemptionCandidates())
	assert.Empty(t, s.Edits)
}

func TestReviewSession_ApplyValidation(t *testing.T) {
	tests := []struct {
		name   string
		edits  []RecordEdit
		reason string
	}{
		{
			name:   "unknown record",
			edits:  []RecordEdit{{ID: "999", Retry: flag(true)}},
			reason: domain.ReasonUnknownRecord,
		},
		{
			name:   "invalid status",
			edits:  []RecordEdit{{ID: "001", IsMasked: status("masked")}},
			reason: domain.ReasonInvalidStatus,
		},
		{
			name:   "exempt record is immutable",
			edits:  []RecordEdit{{ID: "003", IsMasked: status(StatusToBeMasked)}},
			reason: domain.ReasonRecordExempt,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewReviewSession("r1", "User", "", newTable(3, "003"), time.Hour)
			edits := append([]RecordEdit{{ID: "001", Retry: flag(true)}}, tt.edits...)

			err := s.Apply(edits)

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.reason, validationErr.Reason)
			assert.Empty(t, s.RetryCandidates(), "no edit of a rejected batch is applied")
		})
	}
}

func TestReviewSession_RetryCandidates(t *testing.T) {
	s := NewReviewSession("r1", "User", "", newTable(5, "005"), time.Hour)

	require.NoError(t, s.Apply([]RecordEdit{
		{ID: "003", Retry: flag(true)},
		{ID: "001", Retry: flag(true)},
		{ID: "002", Retry: flag(true), IsMasked: status(StatusNoMask)},
		{ID: "005", Retry: flag(true)},
	}))

	assert.Equal(t, []string{"001", "003"}, s.RetryCandidates(), "exemption wins over retry, order follows the table")
	assert.Equal(t, []string{"002"}, s.ExemptionCandidates())

	require.NoError(t, s.Apply([]RecordEdit{{ID: "003", Retry: flag(false)}}))
	assert.Equal(t, []string{"001"}, s.RetryCandidates())
}

func TestReviewSession_InitialRetryFlagsAreKept(t *testing.T) {
	table := newTable(3)
	table.Records[1].Retry = true

	s := NewReviewSession("r1", "User", "", table, time.Hour)

	assert.Equal(t, []string{"002"}, s.RetryCandidates())
}

func TestReviewSession_MarkExemptedAndClearRetry(t *testing.T) {
	s := NewReviewSession("r1", "User", "", newTable(3), time.Hour)
	require.NoError(t, s.Apply([]RecordEdit{
		{ID: "001", IsMasked: status(StatusNoMask)},
		{ID: "002", Retry: flag(true)},
	}))

	s.MarkExempted([]string{"001"})
	assert.Equal(t, StatusNoMask, s.Baseline["001"])
	assert.Empty(t, s.ExemptionCandidates())

	err := s.Apply([]RecordEdit{{ID: "001", IsMasked: status(StatusToBeMasked)}})
	assert.True(t, domain.IsValidationError(err))

	s.ClearRetry([]string{"002"})
	assert.Empty(t, s.RetryCandidates())
}

func TestReviewSession_Refresh(t *testing.T) {
	s := NewReviewSession("r1", "User", "", newTable(4), time.Hour)
	require.NoError(t, s.Apply([]RecordEdit{
		{ID: "001", IsMasked: status(StatusNoMask)},
		{ID: "002", IsMasked: status(StatusNoMask)},
		{ID: "004", Retry: flag(true)},
	}))

	// 002 was exempted elsewhere, 004 is no longer scheduled.
	fresh := newTable(3, "002")
	s.Refresh(fresh)

	assert.Equal(t, []string{"001"}, s.ExemptionCandidates())
	assert.Empty(t, s.RetryCandidates())
	assert.Equal(t, []string{"001", "002", "003"}, s.Order)
}

func TestReviewSession_Overlay(t *testing.T) {
	table := newTable(2)
	s := NewReviewSession("r1", "User", "", table, time.Hour)
	require.NoError(t, s.Apply([]RecordEdit{
		{ID: "001", IsMasked: status(StatusNoMask)},
		{ID: "002", Retry: flag(true)},
	}))

	out := s.Overlay(table)

	assert.Equal(t, StatusNoMask, out.Records[0].IsMasked)
	assert.True(t, out.Records[1].Retry)
	assert.Equal(t, StatusToBeMasked, table.Records[0].IsMasked, "overlay must not mutate the source table")
}

func TestEligibility_Controls(t *testing.T) {
	controls := Eligibility{ApproveEnabled: false, RetryEnabled: true}.Controls()

	assert.False(t, controls.Approve)
	assert.True(t, controls.Retry)
	assert.True(t, controls.RetryAll)
	assert.True(t, controls.Save)
	assert.False(t, Eligibility{}.Permits(Action("delete")))
}

func TestQueryFor(t *testing.T) {
	scheduled := []ScheduledObject{
		{ObjectName: "User", Query: "SELECT Id FROM User"},
		{ObjectName: "Lead", Query: "SELECT Id FROM Lead"},
	}

	q, ok := QueryFor(scheduled, "Lead")
	assert.True(t, ok)
	assert.Equal(t, "SELECT Id FROM Lead", q)

	_, ok = QueryFor(scheduled, "Account")
	assert.False(t, ok)
}

func TestParseMaskStatus(t *testing.T) {
	st, err := ParseMaskStatus("no_mask")
	require.NoError(t, err)
	assert.Equal(t, StatusNoMask, st)

	_, err = ParseMaskStatus("")
	assert.True(t, domain.IsValidationError(err))
}
