package events_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/actionlog"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/events"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/events/logexporter"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExporter struct {
	name        string
	validateErr error
	handleErr   error

	mu      sync.Mutex
	handled []*actionlog.ActionLog
	closed  bool
}

func (e *recordingExporter) Name() string { return e.name }

func (e *recordingExporter) ValidateConfig(map[string]interface{}) error { return e.validateErr }

func (e *recordingExporter) WithSettings(map[string]interface{}) (events.Exporter, error) {
	return e, nil
}

func (e *recordingExporter) Handle(_ context.Context, entry *actionlog.ActionLog) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.handled = append(e.handled, entry)
	return e.handleErr
}

func (e *recordingExporter) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.closed = true
}

func (e *recordingExporter) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.handled)
}

func TestExporterLocator_Build(t *testing.T) {
	good := &recordingExporter{name: "memory"}
	bad := &recordingExporter{name: "broken", validateErr: errors.New("host is required")}
	locator := events.NewExporterLocator(events.WithExporter(good), events.WithExporter(bad))

	built, err := locator.Build([]events.ExporterConfig{{Name: "memory"}})
	require.NoError(t, err)
	assert.Len(t, built, 1)

	_, err = locator.Build([]events.ExporterConfig{{Name: "memory"}, {Name: "broken"}})
	assert.ErrorContains(t, err, "host is required")
	assert.True(t, good.closed, "already built exporters are closed on failure")

	_, err = locator.GetExporter(events.ExporterConfig{Name: "nope"})
	assert.EqualError(t, err, "unknown exporter: nope")
}

func TestDispatcher_DeliversToEveryExporter(t *testing.T) {
	logger, _ := test.NewNullLogger()
	first := &recordingExporter{name: "first"}
	second := &recordingExporter{name: "second", handleErr: errors.New("unreachable")}

	d := events.NewDispatcher(logger, []events.Exporter{first, second}, 10)
	d.StartWorkers(2)

	entry := actionlog.New(actionlog.WorkflowReview, "User", "save_exemptions", []string{"001"}, "ops@example.com")
	d.Publish(context.Background(), entry)
	d.Shutdown()

	assert.Equal(t, 1, first.count())
	assert.Equal(t, 1, second.count(), "a failing exporter does not block the others")
	assert.True(t, first.closed)

	d.Publish(context.Background(), entry)
	assert.Equal(t, 1, first.count(), "publishing after shutdown is a no-op")
}

func TestDispatcher_DropsWhenQueueIsFull(t *testing.T) {
	logger, hook := test.NewNullLogger()
	exporter := &recordingExporter{name: "memory"}
	d := events.NewDispatcher(logger, []events.Exporter{exporter}, 1)

	entry := actionlog.New(actionlog.WorkflowReview, "User", "approve", nil, "ops")
	d.Publish(context.Background(), entry)
	d.Publish(context.Background(), entry)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)

	d.StartWorkers(1)
	d.Shutdown()
	assert.Equal(t, 1, exporter.count())
}

func TestLogExporter_Handle(t *testing.T) {
	logger, hook := test.NewNullLogger()
	exporter, err := logexporter.NewLogExporter(logger).WithSettings(nil)
	require.NoError(t, err)

	entry := actionlog.New(actionlog.WorkflowReview, "User", "retry_all", nil, "ops")
	entry.Message = "retry accepted"
	require.NoError(t, exporter.Handle(context.Background(), entry))

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "retry accepted", hook.LastEntry().Message)
	assert.Equal(t, "User", hook.LastEntry().Data["object"])
}
