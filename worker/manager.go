package worker

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

// Worker is a long-running task that returns when ctx is done.
type Worker interface {
	Name() string
	Start(ctx context.Context) error
}

// Manager starts and supervises a set of workers.
type Manager struct {
	workers []Worker
}

func NewManager(ws ...Worker) *Manager {
	return &Manager{workers: ws}
}

// Start runs every worker until ctx is cancelled. The first worker error
// cancels the rest and is returned.
func (m *Manager) Start(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, w := range m.workers {
		w := w
		g.Go(func() error {
			slog.Info("worker: starting", "worker", w.Name())
			err := w.Start(gctx)
			if err != nil {
				slog.Error("worker: stopped with error", "worker", w.Name(), "error", err)
			} else {
				slog.Info("worker: stopped", "worker", w.Name())
			}
			return err
		})
	}
	return g.Wait()
}
