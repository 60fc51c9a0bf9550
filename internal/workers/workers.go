package workers

import (
	"github.com/amevide998/contact-management/internal/config"
	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/store"
)

// Workers aggregates every background worker of the application.
type Workers struct {
	workers []Worker
}

// NewWorkers assembles the application's background workers: currently a
// single session cleaner that purges expired tokens on a fixed interval.
func NewWorkers(db *store.DB, storages *store.Storages, cfg config.App, logger *logger.Logger) *Workers {
	logger.Info().Msg("creating new workers...")

	return &Workers{
		workers: []Worker{
			newSessionCleaner(db, storages.Sessions, cfg.SessionCleanupInterval, logger),
		},
	}
}

// Run starts every worker in its own goroutine and returns immediately.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		go worker.Run()
	}
}
