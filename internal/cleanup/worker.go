// Package cleanup sweeps idle sessions on a timer so abandoned games do
// not pile up in memory.
package cleanup

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"gamebox/internal/arcade"
)

type Worker struct {
	manager  *arcade.Manager
	interval time.Duration
	maxIdle  time.Duration
	onExpire func(ids []string)
}

// NewWorker builds a sweep worker. onExpire may be nil; when set it runs
// after every sweep that removed sessions (the transport uses it to drop
// their live feeds).
func NewWorker(m *arcade.Manager, interval, maxIdle time.Duration, onExpire func(ids []string)) *Worker {
	return &Worker{manager: m, interval: interval, maxIdle: maxIdle, onExpire: onExpire}
}

// Start runs the sweep loop until ctx is canceled.
func (w *Worker) Start(ctx context.Context) {
	go w.run(ctx)
	log.Info().
		Dur("interval", w.interval).
		Dur("maxIdle", w.maxIdle).
		Msg("cleanup worker started")
}

func (w *Worker) run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.sweep()
		}
	}
}

func (w *Worker) sweep() {
	removed := w.manager.Sweep(w.maxIdle)
	if len(removed) == 0 {
		return
	}
	log.Info().Int("removed", len(removed)).Msg("swept idle sessions")
	if w.onExpire != nil {
		w.onExpire(removed)
	}
}
