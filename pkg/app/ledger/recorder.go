package ledger

import (
	"context"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/actionlog"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/prometheus"
	"github.com/sirupsen/logrus"
)

// Recorder writes a finished workflow action to the ledger and the event
// stream. Recording never fails the action itself.
//
//go:generate mockery --name=Recorder --dir=. --output=./mocks --filename=recorder_mock.go --case=underscore
type Recorder interface {
	Record(ctx context.Context, entry *actionlog.ActionLog)
}

// DefaultSaveTimeout bounds the ledger write. Record runs while the object
// lock is held.
const DefaultSaveTimeout = 5 * time.Second

type recorder struct {
	logger      *logrus.Logger
	repo        actionlog.Repository
	publisher   actionlog.Publisher
	saveTimeout time.Duration
}

func NewRecorder(
	logger *logrus.Logger,
	repo actionlog.Repository,
	publisher actionlog.Publisher,
) Recorder {
	return &recorder{
		logger:      logger,
		repo:        repo,
		publisher:   publisher,
		saveTimeout: DefaultSaveTimeout,
	}
}

func (r *recorder) Record(ctx context.Context, entry *actionlog.ActionLog) {
	ctx = context.WithoutCancel(ctx)

	prometheus.WorkflowActionsTotal.
		WithLabelValues(string(entry.Workflow), entry.Action, string(entry.Outcome)).
		Inc()

	fields := logrus.Fields{
		"workflow": entry.Workflow,
		"object":   entry.Object,
		"action":   entry.Action,
		"outcome":  entry.Outcome,
		"operator": entry.Operator,
		"records":  len(entry.RecordIDs),
	}
	saveCtx, cancel := context.WithTimeout(ctx, r.saveTimeout)
	defer cancel()
	if err := r.repo.Save(saveCtx, entry); err != nil {
		r.logger.WithError(err).WithFields(fields).Error("failed to save action log")
	}
	r.publisher.Publish(ctx, entry)

	r.logger.WithFields(fields).Info("workflow action recorded")
}
