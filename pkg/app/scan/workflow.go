package scan

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/app/ledger"
	"github.com/NeuralTrust/MaskFlow/pkg/domain"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/actionlog"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/protecto"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/lock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

const (
	ActionSubmit = "submit"

	sessionLockKind = "scan_session"

	NoticeFieldsSaved    = "Fields saved successfully!"
	NoticeScanStarted    = "Scan initiated successfully!"
	NoticeFieldsNotSaved = "Protecto did not accept the field selection, nothing was submitted"
	NoticeScanNotStarted = "Fields were saved but the scan was not started, reset the session to submit again"
)

type Options struct {
	SessionTTL  time.Duration
	PageSize    int
	LockTimeout time.Duration
}

// View is a scan session with its visible field page.
type View struct {
	Session *scan.Session
	Page    scan.FieldPage
}

// SubmitResult reports how far a submission got. Notices are shown to the
// operator in order.
type SubmitResult struct {
	View
	FieldsSaved bool
	ScanStarted bool
	Notices     []string
}

//go:generate mockery --name=Workflow --dir=. --output=./mocks --filename=workflow_mock.go --case=underscore
type Workflow interface {
	Start(ctx context.Context, object string) (*View, error)
	Get(ctx context.Context, id string, page int) (*View, error)
	ChangeObject(ctx context.Context, id, object string) (*View, error)
	SelectFields(ctx context.Context, id string, selections map[string]bool, page int) (*View, error)
	Submit(ctx context.Context, id string) (*SubmitResult, error)
	Reset(ctx context.Context, id string) (*View, error)
}

type workflow struct {
	logger   *logrus.Logger
	client   protecto.Client
	repo     scan.Repository
	locker   lock.Locker
	recorder ledger.Recorder
	opts     Options
}

func NewWorkflow(
	logger *logrus.Logger,
	client protecto.Client,
	repo scan.Repository,
	locker lock.Locker,
	recorder ledger.Recorder,
	opts Options,
) Workflow {
	if opts.PageSize <= 0 {
		opts.PageSize = scan.DefaultPageSize
	}
	return &workflow{
		logger:   logger,
		client:   client,
		repo:     repo,
		locker:   locker,
		recorder: recorder,
		opts:     opts,
	}
}

func (w *workflow) Start(ctx context.Context, object string) (*View, error) {
	object, err := scan.ResolveObject(object)
	if err != nil {
		return nil, err
	}
	fields, err := w.client.ListFields(ctx, object)
	if err != nil {
		return nil, fmt.Errorf("failed to load fields for %s: %w", object, err)
	}

	session := scan.NewSession(uuid.NewString(), object, fields, w.opts.SessionTTL)
	view := w.view(session, 1)
	if err := w.save(ctx, session); err != nil {
		return nil, err
	}
	return view, nil
}

func (w *workflow) Get(ctx context.Context, id string, page int) (*View, error) {
	var view *View
	err := w.withSession(ctx, id, func(session *scan.Session) error {
		view = w.view(session, page)
		return w.save(ctx, session)
	})
	return view, err
}

func (w *workflow) ChangeObject(ctx context.Context, id, object string) (*View, error) {
	object, err := scan.ResolveObject(object)
	if err != nil {
		return nil, err
	}

	var view *View
	err = w.withSession(ctx, id, func(session *scan.Session) error {
		if session.State == scan.StateSubmitting {
			return domain.NewSubmissionLockedError(session.ID, string(session.State))
		}
		fields, err := w.client.ListFields(ctx, object)
		if err != nil {
			return fmt.Errorf("failed to load fields for %s: %w", object, err)
		}
		session.ChangeObject(object, fields)
		view = w.view(session, 1)
		return w.save(context.WithoutCancel(ctx), session)
	})
	return view, err
}

func (w *workflow) SelectFields(ctx context.Context, id string, selections map[string]bool, page int) (*View, error) {
	var view *View
	err := w.withSession(ctx, id, func(session *scan.Session) error {
		if err := session.Select(selections); err != nil {
			return err
		}
		view = w.view(session, page)
		return w.save(ctx, session)
	})
	return view, err
}

// Submit saves the selected fields and then starts the scan, each exactly once
// per submission cycle. A session that already started a submission is
// refused without calling Protecto.
func (w *workflow) Submit(ctx context.Context, id string) (*SubmitResult, error) {
	var result *SubmitResult
	err := w.withSession(ctx, id, func(session *scan.Session) error {
		entry := actionlog.FromContext(ctx, actionlog.WorkflowScan, session.Object, ActionSubmit, nil)

		fields, err := session.BeginSubmission()
		if err != nil {
			entry.Reject(err.Error())
			w.recorder.Record(ctx, entry)
			return err
		}
		entry.RecordIDs = fields

		unlock, err := lock.Acquire(ctx, w.locker, lock.ObjectKey(session.Object), w.opts.LockTimeout)
		if err != nil {
			return err
		}
		defer unlock()

		if err := w.save(ctx, session); err != nil {
			return err
		}

		result, err = w.submit(ctx, session, fields, entry)
		w.recorder.Record(ctx, entry)
		return err
	})
	return result, err
}

func (w *workflow) submit(
	ctx context.Context,
	session *scan.Session,
	fields []string,
	entry *actionlog.ActionLog,
) (*SubmitResult, error) {
	persistCtx := context.WithoutCancel(ctx)
	log := w.logger.WithFields(logrus.Fields{
		"session_id": session.ID,
		"object":     session.Object,
		"fields":     len(fields),
	})

	saved, err := w.client.SaveFieldSelection(ctx, session.Object, fields)
	if err != nil || saved == nil || !saved.Submitted {
		session.RollbackSubmission()
		if saveErr := w.save(persistCtx, session); saveErr != nil {
			log.WithError(saveErr).Error("failed to roll back scan session")
		}
		if err != nil {
			log.WithError(err).Error("failed to save field selection")
			entry.Fail(err)
			return nil, fmt.Errorf("failed to save field selection: %w", err)
		}
		entry.Fail(errors.New(NoticeFieldsNotSaved))
		return w.result(session, NoticeFieldsNotSaved), nil
	}

	notices := []string{NoticeFieldsSaved}
	started, err := w.client.StartScan(ctx, fields)
	scanStarted := err == nil && started != nil && started.Submitted
	switch {
	case err != nil:
		log.WithError(err).Error("failed to start scan")
		entry.Fail(err)
		notices = append(notices, NoticeScanNotStarted)
	case !scanStarted:
		entry.Fail(errors.New(NoticeScanNotStarted))
		notices = append(notices, NoticeScanNotStarted)
	default:
		notices = append(notices, NoticeScanStarted)
	}

	session.CompleteSubmission(scanStarted)
	if err := w.save(persistCtx, session); err != nil {
		return nil, err
	}
	log.WithField("scan_started", scanStarted).Info("scan submission completed")
	return w.result(session, notices...), nil
}

// Reset reloads the object's fields and returns the session to idle. It is
// allowed from any state.
func (w *workflow) Reset(ctx context.Context, id string) (*View, error) {
	var view *View
	err := w.withSession(ctx, id, func(session *scan.Session) error {
		fields, err := w.client.ListFields(ctx, session.Object)
		if err != nil {
			return fmt.Errorf("failed to load fields for %s: %w", session.Object, err)
		}
		session.Reset(fields)
		view = w.view(session, 1)
		return w.save(context.WithoutCancel(ctx), session)
	})
	return view, err
}

func (w *workflow) withSession(ctx context.Context, id string, fn func(session *scan.Session) error) error {
	unlock, err := lock.Acquire(ctx, w.locker, lock.SessionKey(sessionLockKind, id), w.opts.LockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	session, err := w.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	return fn(session)
}

func (w *workflow) save(ctx context.Context, session *scan.Session) error {
	session.Extend(w.opts.SessionTTL)
	if err := w.repo.Save(ctx, session); err != nil {
		return fmt.Errorf("failed to save scan session: %w", err)
	}
	return nil
}

func (w *workflow) view(session *scan.Session, page int) *View {
	return &View{Session: session, Page: session.PageOf(page, w.opts.PageSize)}
}

func (w *workflow) result(session *scan.Session, notices ...string) *SubmitResult {
	return &SubmitResult{
		View:        *w.view(session, 0),
		FieldsSaved: session.FieldsSaved,
		ScanStarted: session.ScanStarted,
		Notices:     notices,
	}
}
