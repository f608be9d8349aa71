package logexporter

import (
	"context"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/actionlog"
	"github.com/NeuralTrust/MaskFlow/pkg/infra/events"
	"github.com/sirupsen/logrus"
)

const ExporterName = "log"

// Exporter writes action events to the service log.
type Exporter struct {
	logger *logrus.Logger
}

func NewLogExporter(logger *logrus.Logger) *Exporter {
	return &Exporter{logger: logger}
}

func (e *Exporter) Name() string {
	return ExporterName
}

func (e *Exporter) ValidateConfig(map[string]interface{}) error {
	return nil
}

func (e *Exporter) WithSettings(map[string]interface{}) (events.Exporter, error) {
	return e, nil
}

func (e *Exporter) Handle(_ context.Context, entry *actionlog.ActionLog) error {
	e.logger.WithFields(logrus.Fields{
		"event_id":   entry.ID.String(),
		"workflow":   entry.Workflow,
		"object":     entry.Object,
		"action":     entry.Action,
		"record_ids": []string(entry.RecordIDs),
		"operator":   entry.Operator,
		"outcome":    entry.Outcome,
	}).Info(entry.Message)
	return nil
}

func (e *Exporter) Close() {}
