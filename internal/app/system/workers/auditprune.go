// internal/app/system/workers/auditprune.go
package workers

import (
	"context"
	"sync"
	"time"

	"github.com/dalemusser/mentorhub/internal/app/store/audit"
	"go.uber.org/zap"
)

// AuditPrune is a background worker that deletes audit events older than
// the retention period.
type AuditPrune struct {
	events    *audit.Store
	log       *zap.Logger
	interval  time.Duration
	retention time.Duration
	now       func() time.Time
	stopCh    chan struct{}
	wg        sync.WaitGroup
}

// NewAuditPrune creates a new audit prune worker.
//
// Parameters:
//   - events: the audit store
//   - logger: zap logger for logging
//   - interval: how often to prune (e.g., 1 hour)
//   - retention: how long an event is kept (e.g., 90 days)
func NewAuditPrune(events *audit.Store, logger *zap.Logger, interval, retention time.Duration) *AuditPrune {
	return &AuditPrune{
		events:    events,
		log:       logger,
		interval:  interval,
		retention: retention,
		now:       time.Now,
		stopCh:    make(chan struct{}),
	}
}

// Start prunes once, then keeps pruning every interval until Stop.
func (w *AuditPrune) Start() {
	w.wg.Add(1)
	go w.run()
	w.log.Info("audit prune worker started",
		zap.Duration("interval", w.interval),
		zap.Duration("retention", w.retention))
}

// Stop signals the worker to stop and waits for it to finish.
func (w *AuditPrune) Stop() {
	close(w.stopCh)
	w.wg.Wait()
	w.log.Info("audit prune worker stopped")
}

func (w *AuditPrune) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	w.PruneOnce(context.Background())
	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.PruneOnce(context.Background())
		}
	}
}

// PruneOnce deletes expired events and returns how many went.
func (w *AuditPrune) PruneOnce(parent context.Context) int64 {
	ctx, cancel := context.WithTimeout(parent, 30*time.Second)
	defer cancel()

	count, err := w.events.DeleteBefore(ctx, w.now().Add(-w.retention))
	if err != nil {
		w.log.Error("failed to prune audit events", zap.Error(err))
		return 0
	}
	if count > 0 {
		w.log.Info("pruned audit events", zap.Int64("count", count))
	}
	return count
}
