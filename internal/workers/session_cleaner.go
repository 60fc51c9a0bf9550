package workers

import (
	"context"
	"database/sql"
	"time"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/store"
)

// txRunner runs a function inside one database transaction.
// Satisfied by *store.DB.
type txRunner interface {
	WithTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx store.DBTX) error) error
}

// sessionCleaner periodically deletes sessions whose expiry timestamp has
// passed. Expired tokens are already rejected at authentication time; the
// cleaner only keeps the sessions table from growing without bound.
type sessionCleaner struct {
	db       txRunner
	sessions store.SessionRepository
	interval time.Duration
	logger   *logger.Logger
}

func newSessionCleaner(db txRunner, sessions store.SessionRepository, interval time.Duration, logger *logger.Logger) *sessionCleaner {
	return &sessionCleaner{
		db:       db,
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

// Run blocks, purging expired sessions once per interval.
func (c *sessionCleaner) Run() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for range ticker.C {
		c.clean()
	}
}

func (c *sessionCleaner) clean() {
	ctx := c.logger.WithContext(context.Background())

	err := c.db.WithTx(ctx, nil, func(ctx context.Context, tx store.DBTX) error {
		deleted, err := c.sessions.DeleteExpiredSessions(ctx, tx, time.Now().UnixMilli())
		if err != nil {
			return err
		}

		if deleted > 0 {
			c.logger.Info().Int64("deleted", deleted).Msg("purged expired sessions")
		}

		return nil
	})
	if err != nil {
		c.logger.Err(err).Str("func", "*sessionCleaner.clean").Msg("failed to purge expired sessions")
	}
}
