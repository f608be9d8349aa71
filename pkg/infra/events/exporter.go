package events

import (
	"context"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/actionlog"
)

// Exporter is a prototype: WithSettings returns a configured copy that can
// Handle entries.
type Exporter interface {
	Name() string
	ValidateConfig(settings map[string]interface{}) error
	WithSettings(settings map[string]interface{}) (Exporter, error)
	Handle(ctx context.Context, entry *actionlog.ActionLog) error
	Close()
}

type ExporterConfig struct {
	Name     string                 `mapstructure:"name"`
	Settings map[string]interface{} `mapstructure:"settings"`
}
