package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/amevide998/contact-management/internal/config"
	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/store"
	"github.com/amevide998/contact-management/internal/utils"
	"github.com/amevide998/contact-management/internal/validators"
	"github.com/amevide998/contact-management/models"
	"golang.org/x/crypto/bcrypt"
)

// TxRunner runs a function inside one database transaction, committing on
// success and rolling back on error. *store.DB is the production
// implementation.
type TxRunner interface {
	WithTx(ctx context.Context, opts *sql.TxOptions, fn func(ctx context.Context, tx store.DBTX) error) error
}

// authService is the concrete implementation of AuthService.
// It verifies credentials with bcrypt and manages opaque session tokens in
// the sessions table; a token carries no embedded claims, so validity is
// decided entirely by lookup plus expiry check.
type authService struct {
	db       TxRunner
	users    store.UserRepository
	sessions store.SessionRepository

	validator validators.Validator
	uuid      *utils.UUIDGenerator

	// tokenDuration controls how long a newly issued session token remains
	// valid.
	tokenDuration time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(db TxRunner, storages *store.Storages, validator validators.Validator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		db:            db,
		users:         storages.Users,
		sessions:      storages.Sessions,
		validator:     validator,
		uuid:          utils.NewUUIDGenerator(),
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}
}

// Login authenticates an existing user and issues a fresh session token.
//
// The credential check deliberately collapses two distinct failures into one
// answer: a missing user and a wrong password both return ErrBadCredentials,
// so the response never confirms that a username exists.
func (a *authService) Login(ctx context.Context, request models.LoginUserRequest) (models.TokenResponse, error) {
	log := logger.FromContext(ctx)

	if err := a.validator.Validate(ctx, request); err != nil {
		return models.TokenResponse{}, err
	}

	var token models.TokenResponse

	err := a.db.WithTx(ctx, nil, func(ctx context.Context, tx store.DBTX) error {
		user, err := a.users.FindUserByUsername(ctx, tx, request.Username)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				log.Info().Str("username", request.Username).Msg("login attempt for unknown username")
				return ErrBadCredentials
			}
			return fmt.Errorf("user lookup failed: %w", err)
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(request.Password)) != nil {
			log.Info().Str("username", request.Username).Msg("login attempt with wrong password")
			return ErrBadCredentials
		}

		session := models.Session{
			Token:     a.uuid.Generate(),
			Username:  user.Username,
			ExpiresAt: time.Now().Add(a.tokenDuration).UnixMilli(),
		}

		if err := a.sessions.CreateSession(ctx, tx, session); err != nil {
			return fmt.Errorf("session creation failed: %w", err)
		}

		token = models.TokenResponse{Token: session.Token, ExpiredAt: session.ExpiresAt}
		return nil
	})
	if err != nil {
		return models.TokenResponse{}, err
	}

	return token, nil
}

// Authenticate resolves a session token to its owning user.
//
// Every failure mode collapses to ErrUnauthorized: blank token, unknown
// token, expired session, vanished user. The caller treats them identically.
func (a *authService) Authenticate(ctx context.Context, token string) (models.User, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.User{}, ErrUnauthorized
	}

	var user models.User

	err := a.db.WithTx(ctx, store.ReadOnly, func(ctx context.Context, tx store.DBTX) error {
		session, err := a.sessions.FindSessionByToken(ctx, tx, token)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				return ErrUnauthorized
			}
			return fmt.Errorf("session lookup failed: %w", err)
		}

		if session.ExpiresAt <= time.Now().UnixMilli() {
			log.Info().Str("username", session.Username).Msg("rejected expired session token")
			return ErrUnauthorized
		}

		user, err = a.users.FindUserByUsername(ctx, tx, session.Username)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				return ErrUnauthorized
			}
			return fmt.Errorf("user lookup failed: %w", err)
		}

		return nil
	})
	if err != nil {
		return models.User{}, err
	}

	return user, nil
}

// Logout revokes every session of the user. Revoking a user with no live
// sessions succeeds: logout is idempotent.
func (a *authService) Logout(ctx context.Context, user models.User) error {
	return a.db.WithTx(ctx, nil, func(ctx context.Context, tx store.DBTX) error {
		if err := a.sessions.DeleteSessionsByUsername(ctx, tx, user.Username); err != nil {
			return fmt.Errorf("session revocation failed: %w", err)
		}
		return nil
	})
}
