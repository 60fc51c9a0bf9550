package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// logger. The database handle is supplied per call so that every method can
// run inside the caller's transaction.
func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the canonical database
// representation of the created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrUsernameTaken].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → wrapped as [ErrScanningRow].
func (r *userRepository) CreateUser(ctx context.Context, q DBTX, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := q.QueryRowContext(ctx, createUser, user.Username, user.Name, user.PasswordHash)

	var created models.User
	if err := row.Scan(&created.Username, &created.Name, &created.PasswordHash); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*userRepository.CreateUser").Str("username", user.Username).Msg("username already registered")
			return models.User{}, ErrUsernameTaken
		case "":
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
			return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
		default:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("unexpected DB error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByUsername retrieves the user record with the given username.
//
// Error handling:
//   - No matching row → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserByUsername(ctx context.Context, q DBTX, username string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := q.QueryRowContext(ctx, findUserByUsername, username)

	if err := row.Scan(&foundUser.Username, &foundUser.Name, &foundUser.PasswordHash); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserByUsername").Msg("unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return foundUser, nil
}

// UpdateUser overwrites the mutable columns (name, password hash) of the
// user row identified by user.Username.
//
// Error handling:
//   - Zero affected rows → [ErrUserNotFound].
//   - Any driver-level error → wrapped as [ErrExecutingQuery].
func (r *userRepository) UpdateUser(ctx context.Context, q DBTX, user models.User) error {
	log := logger.FromContext(ctx)

	result, err := q.ExecContext(ctx, updateUser, user.Name, user.PasswordHash, user.Username)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Str("username", user.Username).Msg("failed to update user")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}
