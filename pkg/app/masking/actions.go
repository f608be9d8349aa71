package masking

import (
	"context"
	"fmt"

	"github.com/NeuralTrust/MaskFlow/pkg/app/ledger"
	"github.com/NeuralTrust/MaskFlow/pkg/domain"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/actionlog"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/protecto"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/lock"
	"github.com/sirupsen/logrus"
)

// ActionResult is the outcome of a review action. Notice is the message to
// show the operator, empty when the action needs no acknowledgement.
type ActionResult struct {
	Action       masking.Action
	Object       string
	RecordIDs    []string
	Message      string
	Notice       string
	StillEnabled bool
}

//go:generate mockery --name=Actions --dir=. --output=./mocks --filename=actions_mock.go --case=underscore
type Actions interface {
	SaveExemptions(ctx context.Context, id string) (*ActionResult, error)
	Retry(ctx context.Context, id string, all bool) (*ActionResult, error)
	Approve(ctx context.Context, id string) (*ActionResult, error)
}

type actions struct {
	logger      *logrus.Logger
	client      protecto.Client
	repo        masking.ReviewRepository
	locker      lock.Locker
	eligibility EligibilityChecker
	recorder    ledger.Recorder
	opts        Options
}

func NewActions(
	logger *logrus.Logger,
	client protecto.Client,
	repo masking.ReviewRepository,
	locker lock.Locker,
	eligibility EligibilityChecker,
	recorder ledger.Recorder,
	opts Options,
) Actions {
	return &actions{
		logger:      logger,
		client:      client,
		repo:        repo,
		locker:      locker,
		eligibility: eligibility,
		recorder:    recorder,
		opts:        opts,
	}
}

// SaveExemptions sends the records relabelled no_mask in this edit pass.
// Saving is never gated by eligibility.
func (a *actions) SaveExemptions(ctx context.Context, id string) (*ActionResult, error) {
	var result *ActionResult
	err := a.withReview(ctx, id, func(session *masking.ReviewSession) error {
		ids := session.ExemptionCandidates()
		entry := actionlog.FromContext(ctx, actionlog.WorkflowReview, session.Object, string(masking.ActionSave), ids)
		if len(ids) == 0 {
			return a.reject(ctx, entry, domain.ErrEmptyExemptionSet)
		}

		res, err := a.client.SetExempt(ctx, session.Object, ids)
		if err != nil {
			return a.fail(ctx, entry, fmt.Errorf("failed to save exemptions: %w", err))
		}

		session.MarkExempted(ids)
		a.persist(ctx, session)
		entry.Message = res.Message
		a.recorder.Record(ctx, entry)

		result = &ActionResult{
			Action:    masking.ActionSave,
			Object:    session.Object,
			RecordIDs: ids,
			Message:   res.Message,
			Notice:    res.Message,
		}
		return nil
	})
	return result, err
}

// Retry asks Protecto to retry masking. With all set the row selection is
// ignored and an empty id list is sent.
func (a *actions) Retry(ctx context.Context, id string, all bool) (*ActionResult, error) {
	action := masking.ActionRetry
	if all {
		action = masking.ActionRetryAll
	}

	var result *ActionResult
	err := a.withReview(ctx, id, func(session *masking.ReviewSession) error {
		ids := []string{}
		if !all {
			ids = session.RetryCandidates()
		}
		entry := actionlog.FromContext(ctx, actionlog.WorkflowReview, session.Object, string(action), ids)
		if !all && len(ids) == 0 {
			return a.reject(ctx, entry, domain.ErrEmptyRetrySet)
		}
		if err := a.gate(ctx, session.Object, action, entry); err != nil {
			return err
		}

		res, err := a.client.Retry(ctx, session.Object, all, ids)
		if err != nil {
			return a.fail(ctx, entry, fmt.Errorf("failed to retry masking: %w", err))
		}

		cleared := ids
		if all {
			cleared = session.RetryCandidates()
		}
		session.ClearRetry(cleared)
		a.persist(ctx, session)
		entry.Message = res.Message
		a.recorder.Record(ctx, entry)

		result = &ActionResult{
			Action:       action,
			Object:       session.Object,
			RecordIDs:    ids,
			Message:      res.Message,
			StillEnabled: res.RetryEnabled,
		}
		if !res.RetryEnabled {
			result.Notice = res.Message
		}
		return nil
	})
	return result, err
}

func (a *actions) Approve(ctx context.Context, id string) (*ActionResult, error) {
	var result *ActionResult
	err := a.withReview(ctx, id, func(session *masking.ReviewSession) error {
		entry := actionlog.FromContext(ctx, actionlog.WorkflowReview, session.Object, string(masking.ActionApprove), nil)
		if err := a.gate(ctx, session.Object, masking.ActionApprove, entry); err != nil {
			return err
		}

		res, err := a.client.Approve(ctx, session.Object)
		if err != nil {
			return a.fail(ctx, entry, fmt.Errorf("failed to approve masking: %w", err))
		}
		entry.Message = res.Message
		a.recorder.Record(ctx, entry)

		result = &ActionResult{
			Action:       masking.ActionApprove,
			Object:       session.Object,
			Message:      res.Message,
			StillEnabled: res.ApproveEnabled,
		}
		if !res.ApproveEnabled {
			result.Notice = res.Message
		}
		return nil
	})
	return result, err
}

// gate checks fresh eligibility under the object lock. A disabled action is
// refused before it reaches Protecto.
func (a *actions) gate(ctx context.Context, object string, action masking.Action, entry *actionlog.ActionLog) error {
	eligibility, err := a.eligibility.Fresh(ctx, object)
	if err != nil {
		return a.fail(ctx, entry, err)
	}
	if !eligibility.Permits(action) {
		return a.reject(ctx, entry, domain.NewActionDisabledError(string(action), object))
	}
	return nil
}

// withReview holds the session lock and then the object lock, so actions on
// one object never overlap across sessions or workflows.
func (a *actions) withReview(ctx context.Context, id string, fn func(session *masking.ReviewSession) error) error {
	unlock, err := lock.Acquire(ctx, a.locker, lock.SessionKey(reviewLockKind, id), a.opts.LockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	session, err := a.repo.Get(ctx, id)
	if err != nil {
		return err
	}

	unlockObject, err := lock.Acquire(ctx, a.locker, lock.ObjectKey(session.Object), a.opts.LockTimeout)
	if err != nil {
		return err
	}
	defer unlockObject()

	return fn(session)
}

// persist saves the session after a remote call went through. A failure here
// only loses local edit state, so it is logged rather than returned.
func (a *actions) persist(ctx context.Context, session *masking.ReviewSession) {
	if err := saveReview(context.WithoutCancel(ctx), a.repo, session, a.opts.SessionTTL); err != nil {
		a.logger.WithError(err).WithField("review_id", session.ID).Error("failed to persist review session")
	}
}

func (a *actions) reject(ctx context.Context, entry *actionlog.ActionLog, err error) error {
	entry.Reject(err.Error())
	a.recorder.Record(ctx, entry)
	return err
}

func (a *actions) fail(ctx context.Context, entry *actionlog.ActionLog, err error) error {
	a.logger.WithError(err).WithFields(logrus.Fields{
		"object": entry.Object,
		"action": entry.Action,
	}).Error("review action failed")
	entry.Fail(err)
	a.recorder.Record(ctx, entry)
	return err
}
