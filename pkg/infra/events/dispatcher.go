package events

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/NeuralTrust/MaskFlow/pkg/domain/actionlog"
	"github.com/sirupsen/logrus"
)

const (
	DefaultQueueSize     = 1000
	DefaultHandleTimeout = 10 * time.Second
)

// Dispatcher fans ledger entries out to exporters from a bounded queue.
// Entries are dropped with a warning when the queue is full.
type Dispatcher interface {
	actionlog.Publisher
	StartWorkers(n int)
	Shutdown()
}

type dispatcher struct {
	logger    *logrus.Logger
	exporters []Exporter
	taskChan  chan *actionlog.ActionLog
	ctx       context.Context
	cancel    context.CancelFunc
	mu        sync.RWMutex
	closed    bool
	wg        sync.WaitGroup
}

func NewDispatcher(logger *logrus.Logger, exporters []Exporter, queueSize int) Dispatcher {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &dispatcher{
		logger:    logger,
		exporters: exporters,
		taskChan:  make(chan *actionlog.ActionLog, queueSize),
		ctx:       ctx,
		cancel:    cancel,
	}
}

func (d *dispatcher) Publish(_ context.Context, entry *actionlog.ActionLog) {
	if entry == nil || len(d.exporters) == 0 {
		return
	}
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return
	}
	select {
	case d.taskChan <- entry:
	default:
		d.logger.WithFields(logrus.Fields{
			"object": entry.Object,
			"action": entry.Action,
		}).Warn("event queue is full, dropping action event")
	}
}

func (d *dispatcher) StartWorkers(n int) {
	d.logger.WithField("workers", n).Info("starting action event workers")
	for i := 0; i < n; i++ {
		d.wg.Add(1)
		go func() {
			defer d.wg.Done()
			for {
				select {
				case entry, ok := <-d.taskChan:
					if !ok {
						return
					}
					d.export(entry)
				case <-d.ctx.Done():
					return
				}
			}
		}()
	}
}

// Shutdown drains queued entries, then closes the exporters.
func (d *dispatcher) Shutdown() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.taskChan)
	d.mu.Unlock()

	d.logger.Info("shutting down action event workers")
	d.wg.Wait()
	d.cancel()
	for _, exporter := range d.exporters {
		exporter.Close()
	}
	d.logger.Info("action event workers stopped")
}

func (d *dispatcher) export(entry *actionlog.ActionLog) {
	var failed []string
	for _, exporter := range d.exporters {
		ctx, cancel := context.WithTimeout(d.ctx, DefaultHandleTimeout)
		err := exporter.Handle(ctx, entry)
		cancel()
		if err != nil {
			d.logger.WithFields(logrus.Fields{
				"exporter": exporter.Name(),
				"entry_id": entry.ID.String(),
			}).WithError(err).Error("exporter failed")
			failed = append(failed, fmt.Sprintf("%T", exporter))
		}
	}
	if len(failed) > 0 {
		d.logger.WithField("failedExporters", failed).
			Warnf("%d exporters failed to handle action event", len(failed))
	}
}
