package masking

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/domain"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/masking"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/protecto"
	"github.com/NeuralTrust/MaskFlow/pkg/domain/scan"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/lock"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const reviewLockKind = "review_session"

var errNoRecords = domain.NewValidationError(domain.ReasonNoRecords, "No records found for the selected object.")

type Options struct {
	SessionTTL  time.Duration
	LockTimeout time.Duration
}

// Review is what the approval screen renders: the records with this pass's
// edits applied and the current action controls.
type Review struct {
	Session           *masking.ReviewSession
	Table             *masking.Table
	Eligibility       masking.Eligibility
	Controls          masking.Controls
	PendingExemptions []string
	RetrySelection    []string
}

// EditResult summarises an edit pass without reloading the records.
type EditResult struct {
	Session           *masking.ReviewSession
	PendingExemptions []string
	RetrySelection    []string
}

//go:generate mockery --name=Reviewer --dir=. --output=./mocks --filename=reviewer_mock.go --case=underscore
type Reviewer interface {
	ListScheduled(ctx context.Context) ([]masking.ScheduledObject, error)
	Open(ctx context.Context, object string) (*Review, error)
	Get(ctx context.Context, id string) (*Review, error)
	Edit(ctx context.Context, id string, edits []masking.RecordEdit) (*EditResult, error)
}

type reviewer struct {
	logger      *logrus.Logger
	client      protecto.Client
	repo        masking.ReviewRepository
	locker      lock.Locker
	eligibility EligibilityChecker
	opts        Options
}

func NewReviewer(
	logger *logrus.Logger,
	client protecto.Client,
	repo masking.ReviewRepository,
	locker lock.Locker,
	eligibility EligibilityChecker,
	opts Options,
) Reviewer {
	return &reviewer{
		logger:      logger,
		client:      client,
		repo:        repo,
		locker:      locker,
		eligibility: eligibility,
		opts:        opts,
	}
}

func (r *reviewer) ListScheduled(ctx context.Context) ([]masking.ScheduledObject, error) {
	scheduled, err := r.client.ListScheduled(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list scheduled objects: %w", err)
	}
	return scheduled, nil
}

// Open starts an edit pass on object. Only objects scheduled for masking can
// be reviewed, and an object without records has nothing to review.
func (r *reviewer) Open(ctx context.Context, object string) (*Review, error) {
	object = strings.TrimSpace(object)
	if object == "" || object == scan.PlaceholderObject {
		return nil, domain.ErrNoObjectSelected
	}

	var (
		scheduled   []masking.ScheduledObject
		table       *masking.Table
		eligibility masking.Eligibility
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		scheduled, err = r.client.ListScheduled(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		table, err = r.client.GetRecords(gctx, object)
		return err
	})
	g.Go(func() error {
		var err error
		eligibility, err = r.eligibility.Check(gctx, object)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to load review for %s: %w", object, err)
	}

	query, ok := masking.QueryFor(scheduled, object)
	if !ok {
		return nil, domain.NewValidationError(
			domain.ReasonUnknownObject,
			fmt.Sprintf("object '%s' is not scheduled for masking", object),
		)
	}
	if table.Empty() {
		return nil, errNoRecords
	}

	session := masking.NewReviewSession(uuid.NewString(), object, query, table, r.opts.SessionTTL)
	if err := r.save(ctx, session); err != nil {
		return nil, err
	}

	r.logger.WithFields(logrus.Fields{
		"review_id": session.ID,
		"object":    object,
		"records":   len(table.Records),
	}).Debug("review opened")

	return newReview(session, table, eligibility), nil
}

// Get re-renders a review from fresh records and flags. Edits to records that
// left the schedule are dropped. When nothing is left to review the session
// is kept as is and the no-records warning is returned.
func (r *reviewer) Get(ctx context.Context, id string) (*Review, error) {
	var review *Review
	err := r.withSession(ctx, id, func(session *masking.ReviewSession) error {
		var (
			table       *masking.Table
			eligibility masking.Eligibility
		)
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			table, err = r.client.GetRecords(gctx, session.Object)
			return err
		})
		g.Go(func() error {
			var err error
			eligibility, err = r.eligibility.Check(gctx, session.Object)
			return err
		})
		if err := g.Wait(); err != nil {
			return fmt.Errorf("failed to load review for %s: %w", session.Object, err)
		}
		if table.Empty() {
			return errNoRecords
		}

		session.Refresh(table)
		if err := r.save(ctx, session); err != nil {
			return err
		}
		review = newReview(session, table, eligibility)
		return nil
	})
	return review, err
}

func (r *reviewer) Edit(ctx context.Context, id string, edits []masking.RecordEdit) (*EditResult, error) {
	var result *EditResult
	err := r.withSession(ctx, id, func(session *masking.ReviewSession) error {
		if err := session.Apply(edits); err != nil {
			return err
		}
		if err := r.save(ctx, session); err != nil {
			return err
		}
		result = &EditResult{
			Session:           session,
			PendingExemptions: session.ExemptionCandidates(),
			RetrySelection:    session.RetryCandidates(),
		}
		return nil
	})
	return result, err
}

func (r *reviewer) withSession(ctx context.Context, id string, fn func(session *masking.ReviewSession) error) error {
	unlock, err := lock.Acquire(ctx, r.locker, lock.SessionKey(reviewLockKind, id), r.opts.LockTimeout)
	if err != nil {
		return err
	}
	defer unlock()

	session, err := r.repo.Get(ctx, id)
	if err != nil {
		return err
	}
	return fn(session)
}

func (r *reviewer) save(ctx context.Context, session *masking.ReviewSession) error {
	return saveReview(ctx, r.repo, session, r.opts.SessionTTL)
}

func saveReview(ctx context.Context, repo masking.ReviewRepository, session *masking.ReviewSession, ttl time.Duration) error {
	session.Extend(ttl)
	if err := repo.Save(ctx, session); err != nil {
		return fmt.Errorf("failed to save review session: %w", err)
	}
	return nil
}

func newReview(session *masking.ReviewSession, table *masking.Table, eligibility masking.Eligibility) *Review {
	return &Review{
		Session:           session,
		Table:             session.Overlay(table),
		Eligibility:       eligibility,
		Controls:          eligibility.Controls(),
		PendingExemptions: session.ExemptionCandidates(),
		RetrySelection:    session.RetryCandidates(),
	}
}
