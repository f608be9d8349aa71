package masking_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	ledgermocks "github.com/NeuralTrust/MaskFlow/pkg/app/ledger/mocks"
	appmasking "github.com/NeuralTrust/MaskFlow/pkg/app/masking"
	appmocks "github.com/NeuralTrust/MaskFlow/pkg/app/masking/mocks"
	appscan "github.com/NeuralTrust/MaskFlow/pkg/app/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/domain"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/actionlog"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/masking"
	maskingmocks "github.com/NeuralTrust/MaskFlow/pkg/domain/masking/mocks"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/protecto"
	protectomocks "github.com/NeuralTrust/MaskFlow/pkg/domain/protecto/mocks"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/scan"
	scanmocks "github.com/NeuralTrust/MaskFlow/pkg/domain/scan/mocks"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/lock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testOptions = appmasking.Options{SessionTTL: time.Hour, LockTimeout: time.Second}

func userTable(n int) *masking.Table {
	table := &masking.Table{Columns: masking.FixedColumns}
	for i := 1; i <= n; i++ {
		table.Records = append(table.Records, masking.Record{
			ID:       fmt.Sprintf("%03d", i),
			IsMasked: masking.StatusToBeMasked,
		})
	}
	return table
}

func statusPtr(s masking.MaskStatus) *masking.MaskStatus { return &s }

func boolPtr(b bool) *bool { return &b }

type actionsFixture struct {
	client      *protectomocks.Client
	repo        *maskingmocks.ReviewRepository
	eligibility *appmocks.EligibilityChecker
	recorder    *ledgermocks.Recorder
	entries     []*actionlog.ActionLog
	session     *masking.ReviewSession
	actions     appmasking.Actions
}

func newActionsFixture(t *testing.T) *actionsFixture {
	f := &actionsFixture{
		client:      protectomocks.NewClient(t),
		repo:        maskingmocks.NewReviewRepository(t),
		eligibility: appmocks.NewEligibilityChecker(t),
		recorder:    ledgermocks.NewRecorder(t),
		session:     masking.NewReviewSession("r1", "User", "SELECT Id FROM User", userTable(10), time.Hour),
	}
	f.repo.On("Get", mock.Anything, "r1").Return(f.session, nil)
	f.repo.On("Save", mock.Anything, f.session).Return(nil).Maybe()
	f.recorder.On("Record", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		f.entries = append(f.entries, args.Get(1).(*actionlog.ActionLog))
	}).Maybe()
	f.actions = appmasking.NewActions(logrus.New(), f.client, f.repo, lock.NewMemoryLocker(), f.eligibility, f.recorder, testOptions)
	return f
}

func (f *actionsFixture) eligible(approve, retry bool) {
	f.eligibility.On("Fresh", mock.Anything, "User").
		Return(masking.Eligibility{ApproveEnabled: approve, RetryEnabled: retry}, nil)
}

func TestActions_RetryWithNothingSelectedCallsNothing(t *testing.T) {
	f := newActionsFixture(t)

	_, err := f.actions.Retry(context.Background(), "r1", false)

	assert.ErrorIs(t, err, domain.ErrEmptyRetrySet)
	assert.Empty(t, f.client.Calls)
	assert.Empty(t, f.eligibility.Calls)
	require.Len(t, f.entries, 1)
	assert.Equal(t, actionlog.OutcomeRejected, f.entries[0].Outcome)
}

func TestActions_SaveSendsOnlyThisPassExemptions(t *testing.T) {
	f := newActionsFixture(t)
	require.NoError(t, f.session.Apply([]masking.RecordEdit{{ID: "001", IsMasked: statusPtr(masking.StatusNoMask)}}))

	f.client.On("SetExempt", mock.Anything, "User", []string{"001"}).
		Return(&protecto.MessageResult{Message: "1 record updated"}, nil).Once()

	result, err := f.actions.SaveExemptions(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "1 record updated", result.Notice)
	assert.Equal(t, masking.StatusNoMask, f.session.Baseline["001"])
	assert.Empty(t, f.session.ExemptionCandidates())
	assert.Empty(t, f.eligibility.Calls, "saving is not gated")
}

func TestActions_SaveWithoutEditsCallsNothing(t *testing.T) {
	f := newActionsFixture(t)

	_, err := f.actions.SaveExemptions(context.Background(), "r1")

	assert.ErrorIs(t, err, domain.ErrEmptyExemptionSet)
	assert.Empty(t, f.client.Calls)
}

func TestActions_RetryAllIgnoresRowSelection(t *testing.T) {
	f := newActionsFixture(t)
	require.NoError(t, f.session.Apply([]masking.RecordEdit{
		{ID: "002", Retry: boolPtr(true)},
		{ID: "005", Retry: boolPtr(true)},
	}))
	f.eligible(false, true)

	f.client.On("Retry", mock.Anything, "User", true, []string{}).
		Return(&protecto.RetryResult{RetryEnabled: true, Message: "queued"}, nil).Once()

	result, err := f.actions.Retry(context.Background(), "r1", true)

	require.NoError(t, err)
	assert.Equal(t, masking.ActionRetryAll, result.Action)
	assert.Empty(t, result.Notice, "no notice while retry stays enabled")
	assert.True(t, result.StillEnabled)
	assert.Empty(t, f.session.RetryCandidates())
}

func TestActions_RetrySelectedSkipsExemptedRows(t *testing.T) {
	f := newActionsFixture(t)
	require.NoError(t, f.session.Apply([]masking.RecordEdit{
		{ID: "003", Retry: boolPtr(true)},
		{ID: "004", Retry: boolPtr(true), IsMasked: statusPtr(masking.StatusNoMask)},
	}))
	f.eligible(false, true)

	f.client.On("Retry", mock.Anything, "User", false, []string{"003"}).
		Return(&protecto.RetryResult{RetryEnabled: false, Message: "retry complete"}, nil).Once()

	result, err := f.actions.Retry(context.Background(), "r1", false)

	require.NoError(t, err)
	assert.Equal(t, "retry complete", result.Notice)
	assert.Equal(t, []string{"003"}, result.RecordIDs)
	assert.Equal(t, []string{"004"}, f.session.ExemptionCandidates(), "exemption edits survive a retry")
}

func TestActions_GatingFollowsEligibility(t *testing.T) {
	f := newActionsFixture(t)
	require.NoError(t, f.session.Apply([]masking.RecordEdit{{ID: "001", Retry: boolPtr(true)}}))
	f.eligible(false, true)

	_, err := f.actions.Approve(context.Background(), "r1")
	assert.True(t, domain.IsActionDisabledError(err))
	f.client.AssertNotCalled(t, "Approve", mock.Anything, mock.Anything)

	f.client.On("Retry", mock.Anything, "User", false, []string{"001"}).
		Return(&protecto.RetryResult{RetryEnabled: true}, nil).Once()
	_, err = f.actions.Retry(context.Background(), "r1", false)
	assert.NoError(t, err)

	f.client.On("Retry", mock.Anything, "User", true, []string{}).
		Return(&protecto.RetryResult{RetryEnabled: true}, nil).Once()
	_, err = f.actions.Retry(context.Background(), "r1", true)
	assert.NoError(t, err)

	f.eligibility.AssertNumberOfCalls(t, "Fresh", 3)
	f.eligibility.AssertNotCalled(t, "Check", mock.Anything, mock.Anything)
}

func TestActions_RetryDisabledNeverCallsRetry(t *testing.T) {
	f := newActionsFixture(t)
	f.eligible(true, false)

	_, err := f.actions.Retry(context.Background(), "r1", true)

	assert.True(t, domain.IsActionDisabledError(err))
	f.client.AssertNotCalled(t, "Retry", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	require.Len(t, f.entries, 1)
	assert.Equal(t, actionlog.OutcomeRejected, f.entries[0].Outcome)
}

func TestActions_ApproveNotice(t *testing.T) {
	f := newActionsFixture(t)
	f.eligible(true, false)
	f.client.On("Approve", mock.Anything, "User").
		Return(&protecto.ApproveResult{ApproveEnabled: false, Message: "approved"}, nil).Once()

	result, err := f.actions.Approve(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, "approved", result.Notice)
	assert.False(t, result.StillEnabled)
}

func TestActions_CollaboratorFailureIsLedgered(t *testing.T) {
	f := newActionsFixture(t)
	f.eligible(true, true)
	f.client.On("Approve", mock.Anything, "User").
		Return(nil, domain.NewCollaboratorError(protecto.OpApprove, 503, errors.New("unavailable"))).Once()

	_, err := f.actions.Approve(context.Background(), "r1")

	assert.True(t, domain.IsCollaboratorError(err))
	require.Len(t, f.entries, 1)
	assert.Equal(t, actionlog.OutcomeFailed, f.entries[0].Outcome)
}

func TestActions_UnknownReview(t *testing.T) {
	repo := maskingmocks.NewReviewRepository(t)
	repo.On("Get", mock.Anything, "missing").Return(nil, domain.NewNotFoundError("review_session", "missing")).Once()
	a := appmasking.NewActions(logrus.New(), protectomocks.NewClient(t), repo, lock.NewMemoryLocker(),
		appmocks.NewEligibilityChecker(t), ledgermocks.NewRecorder(t), testOptions)

	_, err := a.Approve(context.Background(), "missing")

	assert.True(t, domain.IsNotFoundError(err))
}

func newReviewer(t *testing.T) (*protectomocks.Client, *maskingmocks.ReviewRepository, *appmocks.EligibilityChecker, appmasking.Reviewer) {
	client := protectomocks.NewClient(t)
	repo := maskingmocks.NewReviewRepository(t)
	eligibility := appmocks.NewEligibilityChecker(t)
	return client, repo, eligibility, appmasking.NewReviewer(logrus.New(), client, repo, lock.NewMemoryLocker(), eligibility, testOptions)
}

func TestReviewer_Open(t *testing.T) {
	client, repo, eligibility, reviewer := newReviewer(t)
	client.On("ListScheduled", mock.Anything).
		Return([]masking.ScheduledObject{{ObjectName: "User", Query: "SELECT Id FROM User"}}, nil).Once()
	client.On("GetRecords", mock.Anything, "User").Return(userTable(3), nil).Once()
	eligibility.On("Check", mock.Anything, "User").
		Return(masking.Eligibility{ApproveEnabled: false, RetryEnabled: true}, nil).Once()
	repo.On("Save", mock.Anything, mock.AnythingOfType("*masking.ReviewSession")).Return(nil).Once()

	review, err := reviewer.Open(context.Background(), "User")

	require.NoError(t, err)
	assert.Equal(t, "SELECT Id FROM User", review.Session.Query)
	assert.Len(t, review.Table.Records, 3)
	assert.False(t, review.Controls.Approve)
	assert.True(t, review.Controls.Retry)
	assert.True(t, review.Controls.RetryAll)
	assert.True(t, review.Controls.Save)
}

func TestReviewer_OpenRejections(t *testing.T) {
	tests := []struct {
		name      string
		scheduled []masking.ScheduledObject
		table     *masking.Table
		reason    string
	}{
		{
			name:      "not scheduled",
			scheduled: []masking.ScheduledObject{{ObjectName: "Lead", Query: "q"}},
			table:     userTable(2),
			reason:    domain.ReasonUnknownObject,
		},
		{
			name:      "no records",
			scheduled: []masking.ScheduledObject{{ObjectName: "User", Query: "q"}},
			table:     &masking.Table{Columns: masking.FixedColumns},
			reason:    domain.ReasonNoRecords,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _, eligibility, reviewer := newReviewer(t)
			client.On("ListScheduled", mock.Anything).Return(tt.scheduled, nil).Once()
			client.On("GetRecords", mock.Anything, "User").Return(tt.table, nil).Once()
			eligibility.On("Check", mock.Anything, "User").Return(masking.Eligibility{}, nil).Once()

			_, err := reviewer.Open(context.Background(), "User")

			var validationErr *domain.ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.reason, validationErr.Reason)
		})
	}
}

func TestReviewer_OpenWithoutObject(t *testing.T) {
	_, _, _, reviewer := newReviewer(t)

	_, err := reviewer.Open(context.Background(), " ")

	assert.ErrorIs(t, err, domain.ErrNoObjectSelected)
}

func TestReviewer_GetRefreshesAndOverlays(t *testing.T) {
	client, repo, eligibility, reviewer := newReviewer(t)
	session := masking.NewReviewSession("r1", "User", "q", userTable(3), time.Hour)
	require.NoError(t, session.Apply([]masking.RecordEdit{{ID: "002", IsMasked: statusPtr(masking.StatusNoMask)}}))

	repo.On("Get", mock.Anything, "r1").Return(session, nil).Once()
	repo.On("Save", mock.Anything, session).Return(nil).Once()
	client.On("GetRecords", mock.Anything, "User").Return(userTable(3), nil).Once()
	eligibility.On("Check", mock.Anything, "User").Return(masking.Eligibility{ApproveEnabled: true}, nil).Once()

	review, err := reviewer.Get(context.Background(), "r1")

	require.NoError(t, err)
	assert.Equal(t, masking.StatusNoMask, review.Table.Records[1].IsMasked)
	assert.Equal(t, []string{"002"}, review.PendingExemptions)
	assert.True(t, review.Controls.Approve)
	assert.False(t, review.Controls.Retry)
}

func TestReviewer_GetWithoutRecordsWarns(t *testing.T) {
	client, repo, eligibility, reviewer := newReviewer(t)
	session := masking.NewReviewSession("r1", "User", "q", userTable(3), time.Hour)

	repo.On("Get", mock.Anything, "r1").Return(session, nil).Once()
	client.On("GetRecords", mock.Anything, "User").Return(&masking.Table{Columns: masking.FixedColumns}, nil).Once()
	eligibility.On("Check", mock.Anything, "User").Return(masking.Eligibility{}, nil).Once()

	_, err := reviewer.Get(context.Background(), "r1")

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, domain.ReasonNoRecords, validationErr.Reason)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestReviewer_EditRejectsWholeBatch(t *testing.T) {
	_, repo, _, reviewer := newReviewer(t)
	session := masking.NewReviewSession("r1", "User", "q", userTable(3), time.Hour)
	repo.On("Get", mock.Anything, "r1").Return(session, nil).Once()

	_, err := reviewer.Edit(context.Background(), "r1", []masking.RecordEdit{
		{ID: "001", Retry: boolPtr(true)},
		{ID: "042", Retry: boolPtr(true)},
	})

	assert.True(t, domain.IsValidationError(err))
	assert.Empty(t, session.RetryCandidates())
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestReviewer_Edit(t *testing.T) {
	_, repo, _, reviewer := newReviewer(t)
	session := masking.NewReviewSession("r1", "User", "q", userTable(3), time.Hour)
	repo.On("Get", mock.Anything, "r1").Return(session, nil).Once()
	repo.On("Save", mock.Anything, session).Return(nil).Once()

	result, err := reviewer.Edit(context.Background(), "r1", []masking.RecordEdit{
		{ID: "001", Retry: boolPtr(true)},
		{ID: "003", IsMasked: statusPtr(masking.StatusNoMask)},
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"001"}, result.RetrySelection)
	assert.Equal(t, []string{"003"}, result.PendingExemptions)
}

func TestEligibilityChecker_AlwaysAsksProtecto(t *testing.T) {
	client := protectomocks.NewClient(t)
	client.On("Eligibility", mock.Anything, "User").
		Return(&masking.Eligibility{ApproveEnabled: true, RetryEnabled: false}, nil).Twice()

	checker := appmasking.NewEligibilityChecker(client)
	for i := 0; i < 2; i++ {
		eligibility, err := checker.Check(context.Background(), "User")
		require.NoError(t, err)
		assert.True(t, eligibility.ApproveEnabled)
		assert.False(t, eligibility.RetryEnabled)
	}
}

func TestEligibilityChecker_CheckCoalescesOverlappingCalls(t *testing.T) {
	client := protectomocks.NewClient(t)
	started := make(chan struct{})
	release := make(chan struct{})
	var calls int32
	client.On("Eligibility", mock.Anything, "User").Run(func(mock.Arguments) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(started)
		}
		<-release
	}).Return(&masking.Eligibility{RetryEnabled: true}, nil)

	checker := appmasking.NewEligibilityChecker(client)
	var wg sync.WaitGroup
	results := make([]masking.Eligibility, 2)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			eligibility, err := checker.Check(context.Background(), "User")
			assert.NoError(t, err)
			results[i] = eligibility
		}(i)
		if i == 0 {
			<-started
		}
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.True(t, results[0].RetryEnabled)
	assert.True(t, results[1].RetryEnabled)
}

func TestEligibilityChecker_CanceledRenderDoesNotFailOthers(t *testing.T) {
	client := protectomocks.NewClient(t)
	started := make(chan struct{})
	release := make(chan struct{})
	var remoteCtxErr error
	client.On("Eligibility", mock.Anything, "User").Run(func(args mock.Arguments) {
		close(started)
		<-release
		remoteCtxErr = args.Get(0).(context.Context).Err()
	}).Return(&masking.Eligibility{ApproveEnabled: true}, nil).Once()

	checker := appmasking.NewEligibilityChecker(client)

	renderCtx, cancelRender := context.WithCancel(context.Background())
	renderErr := make(chan error, 1)
	go func() {
		_, err := checker.Check(renderCtx, "User")
		renderErr <- err
	}()
	<-started

	type outcome struct {
		eligibility masking.Eligibility
		err         error
	}
	other := make(chan outcome, 1)
	go func() {
		eligibility, err := checker.Check(context.Background(), "User")
		other <- outcome{eligibility, err}
	}()
	time.Sleep(20 * time.Millisecond)

	cancelRender()
	select {
	case err := <-renderErr:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("canceled caller kept waiting")
	}

	close(release)
	res := <-other
	require.NoError(t, res.err)
	assert.True(t, res.eligibility.ApproveEnabled)
	assert.NoError(t, remoteCtxErr, "the shared request is not tied to one caller")
}

func TestEligibilityChecker_FreshNeverShares(t *testing.T) {
	client := protectomocks.NewClient(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	client.On("Eligibility", ctx, "User").
		Return(&masking.Eligibility{RetryEnabled: true}, nil).Twice()

	checker := appmasking.NewEligibilityChecker(client)
	for i := 0; i < 2; i++ {
		eligibility, err := checker.Fresh(ctx, "User")
		require.NoError(t, err)
		assert.True(t, eligibility.RetryEnabled)
	}
}

// events records the order in which concurrent mock calls happen.
type events struct {
	mu   sync.Mutex
	list []string
}

func (e *events) add(name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.list = append(e.list, name)
}

func (e *events) snapshot() []string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]string(nil), e.list...)
}

func TestActions_SameObjectActionsAreSerializedAcrossSessions(t *testing.T) {
	client := protectomocks.NewClient(t)
	repo := maskingmocks.NewReviewRepository(t)
	eligibility := appmocks.NewEligibilityChecker(t)
	recorder := ledgermocks.NewRecorder(t)
	recorder.On("Record", mock.Anything, mock.Anything).Maybe()

	first := masking.NewReviewSession("r1", "User", "q", userTable(3), time.Hour)
	second := masking.NewReviewSession("r2", "User", "q", userTable(3), time.Hour)
	require.NoError(t, first.Apply([]masking.RecordEdit{{ID: "001", Retry: boolPtr(true)}}))
	repo.On("Get", mock.Anything, "r1").Return(first, nil)
	repo.On("Get", mock.Anything, "r2").Return(second, nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil).Maybe()

	var order events
	retrying := make(chan struct{})
	release := make(chan struct{})
	eligibility.On("Fresh", mock.Anything, "User").Run(func(mock.Arguments) {
		order.add("eligibility")
	}).Return(masking.Eligibility{ApproveEnabled: true, RetryEnabled: true}, nil).Twice()
	client.On("Retry", mock.Anything, "User", false, []string{"001"}).Run(func(mock.Arguments) {
		order.add("retry")
		close(retrying)
		<-release
		order.add("retry done")
	}).Return(&protecto.RetryResult{RetryEnabled: true}, nil).Once()
	client.On("Approve", mock.Anything, "User").Run(func(mock.Arguments) {
		order.add("approve")
	}).Return(&protecto.ApproveResult{ApproveEnabled: false}, nil).Once()

	actions := appmasking.NewActions(logrus.New(), client, repo, lock.NewMemoryLocker(), eligibility, recorder,
		appmasking.Options{SessionTTL: time.Hour, LockTimeout: 5 * time.Second})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := actions.Retry(context.Background(), "r1", false)
		assert.NoError(t, err)
	}()
	<-retrying
	go func() {
		defer wg.Done()
		_, err := actions.Approve(context.Background(), "r2")
		assert.NoError(t, err)
	}()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"eligibility", "retry"}, order.snapshot(), "approve waits for the object lock")

	close(release)
	wg.Wait()

	assert.Equal(t, []string{"eligibility", "retry", "retry done", "eligibility", "approve"}, order.snapshot())
}

func TestActions_ReviewActionWaitsForScanSubmit(t *testing.T) {
	locker := lock.NewMemoryLocker()

	client := protectomocks.NewClient(t)
	recorder := ledgermocks.NewRecorder(t)
	recorder.On("Record", mock.Anything, mock.Anything).Maybe()

	scanRepo := scanmocks.NewRepository(t)
	scanSession := scan.NewSession("s1", "User", []scan.Field{{Field: "Email", Type: "string"}}, time.Hour)
	require.NoError(t, scanSession.Select(map[string]bool{"Email": true}))
	scanRepo.On("Get", mock.Anything, "s1").Return(scanSession, nil)
	scanRepo.On("Save", mock.Anything, scanSession).Return(nil)

	reviewRepo := maskingmocks.NewReviewRepository(t)
	review := masking.NewReviewSession("r1", "User", "q", userTable(2), time.Hour)
	reviewRepo.On("Get", mock.Anything, "r1").Return(review, nil)
	reviewRepo.On("Save", mock.Anything, mock.Anything).Return(nil).Maybe()

	var order events
	saving := make(chan struct{})
	release := make(chan struct{})
	client.On("SaveFieldSelection", mock.Anything, "User", []string{"Email"}).Run(func(mock.Arguments) {
		order.add("save fields")
		close(saving)
		<-release
	}).Return(&protecto.SubmitResult{Submitted: true}, nil).Once()
	client.On("StartScan", mock.Anything, []string{"Email"}).Run(func(mock.Arguments) {
		order.add("start scan")
	}).Return(&protecto.SubmitResult{Submitted: true}, nil).Once()

	eligibility := appmocks.NewEligibilityChecker(t)
	eligibility.On("Fresh", mock.Anything, "User").Run(func(mock.Arguments) {
		order.add("eligibility")
	}).Return(masking.Eligibility{ApproveEnabled: true}, nil).Once()
	client.On("Approve", mock.Anything, "User").Run(func(mock.Arguments) {
		order.add("approve")
	}).Return(&protecto.ApproveResult{}, nil).Once()

	workflow := appscan.NewWorkflow(logrus.New(), client, scanRepo, locker, recorder,
		appscan.Options{SessionTTL: time.Hour, LockTimeout: 5 * time.Second})
	actions := appmasking.NewActions(logrus.New(), client, reviewRepo, locker, eligibility, recorder,
		appmasking.Options{SessionTTL: time.Hour, LockTimeout: 5 * time.Second})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		_, err := workflow.Submit(context.Background(), "s1")
		assert.NoError(t, err)
	}()
	<-saving
	go func() {
		defer wg.Done()
		_, err := actions.Approve(context.Background(), "r1")
		assert.NoError(t, err)
	}()

	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, []string{"save fields"}, order.snapshot())

	close(release)
	wg.Wait()

	assert.Equal(t, []string{"save fields", "start scan", "eligibility", "approve"}, order.snapshot())
}

func TestEligibilityChecker_Error(t *testing.T) {
	client := protectomocks.NewClient(t)
	client.On("Eligibility", mock.Anything, "User").
		Return(nil, domain.NewCollaboratorTimeoutError(protecto.OpEligibility, context.DeadlineExceeded)).Once()

	_, err := appmasking.NewEligibilityChecker(client).Check(context.Background(), "User")

	assert.True(t, domain.IsCollaboratorTimeout(err))
}
