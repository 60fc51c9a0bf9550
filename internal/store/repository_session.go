package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository], working against the "sessions" table.
type sessionRepository struct {
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided logger.
func NewSessionRepository(logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		logger: logger,
	}
}

// CreateSession inserts a new session row. The token is generated by the
// service layer; collisions surface as driver errors and are not retried.
func (r *sessionRepository) CreateSession(ctx context.Context, q DBTX, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := q.ExecContext(ctx, createSession, session.Token, session.Username, session.ExpiresAt)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Str("username", session.Username).Msg("failed to create session")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// FindSessionByToken retrieves the session row keyed by token.
// Expiry is NOT checked here; the authenticator owns that decision.
//
// Error handling:
//   - No matching row → [ErrSessionNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) FindSessionByToken(ctx context.Context, q DBTX, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := q.QueryRowContext(ctx, findSessionByToken, token)

	if err := row.Scan(&session.Token, &session.Username, &session.ExpiresAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindSessionByToken").Msg("unexpected DB error")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// DeleteSessionsByUsername removes every session owned by the given user.
// Deleting zero rows is not an error: logout of an already-logged-out user
// is a no-op.
func (r *sessionRepository) DeleteSessionsByUsername(ctx context.Context, q DBTX, username string) error {
	log := logger.FromContext(ctx)

	_, err := q.ExecContext(ctx, deleteSessionsByUsername, username)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionsByUsername").Str("username", username).Msg("failed to delete sessions")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// DeleteExpiredSessions removes every session whose expiry timestamp is at or
// before now (epoch milliseconds) and reports how many rows were deleted.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, q DBTX, now int64) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := q.ExecContext(ctx, deleteExpiredSessions, now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("failed to delete expired sessions")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("failed to read affected rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return deleted, nil
}
