package events

import (
	"fmt"
)

type ExporterLocator struct {
	exporters map[string]Exporter
}

type ExporterLocatorOption func(*ExporterLocator)

func WithExporter(exporter Exporter) ExporterLocatorOption {
	return func(el *ExporterLocator) {
		el.exporters[exporter.Name()] = exporter
	}
}

func NewExporterLocator(opts ...ExporterLocatorOption) *ExporterLocator {
	el := &ExporterLocator{
		exporters: make(map[string]Exporter),
	}
	for _, opt := range opts {
		opt(el)
	}
	return el
}

func (p *ExporterLocator) GetExporter(cfg ExporterConfig) (Exporter, error) {
	base, ok := p.exporters[cfg.Name]
	if !ok {
		return nil, fmt.Errorf("unknown exporter: %s", cfg.Name)
	}
	if err := base.ValidateConfig(cfg.Settings); err != nil {
		return nil, err
	}
	return base.WithSettings(cfg.Settings)
}

// Build configures every exporter or none.
func (p *ExporterLocator) Build(configs []ExporterConfig) ([]Exporter, error) {
	built := make([]Exporter, 0, len(configs))
	for _, cfg := range configs {
		exporter, err := p.GetExporter(cfg)
		if err != nil {
			for _, e := range built {
				e.Close()
			}
			return nil, fmt.Errorf("exporter %s: %w", cfg.Name, err)
		}
		built = append(built, exporter)
	}
	return built, nil
}
