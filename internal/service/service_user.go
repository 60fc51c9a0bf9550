package service

import (
	"context"
	"fmt"

	"github.com/amevide998/contact-management/internal/config"
	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/store"
	"github.com/amevide998/contact-management/internal/validators"
	"github.com/amevide998/contact-management/models"
	"golang.org/x/crypto/bcrypt"
)

// userService is the concrete implementation of UserService. It owns account
// registration and the current-user profile operations.
type userService struct {
	db    TxRunner
	users store.UserRepository

	validator validators.Validator

	// bcryptCost is the cost parameter for password hashing. Zero falls back
	// to bcrypt.DefaultCost inside the library.
	bcryptCost int

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given repositories.
func NewUserService(db TxRunner, storages *store.Storages, validator validators.Validator, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		db:         db,
		users:      storages.Users,
		validator:  validator,
		bcryptCost: cfg.BcryptCost,
		logger:     logger,
	}
}

// Register creates a new user account with a bcrypt password hash.
// A duplicate username surfaces as store.ErrUsernameTaken unchanged, which
// the HTTP layer reports as a 400.
func (s *userService) Register(ctx context.Context, request models.RegisterUserRequest) error {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(request.Password), s.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*userService.Register").Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	return s.db.WithTx(ctx, nil, func(ctx context.Context, tx store.DBTX) error {
		_, err := s.users.CreateUser(ctx, tx, models.User{
			Username:     request.Username,
			Name:         request.Name,
			PasswordHash: string(hash),
		})
		return err
	})
}

// Current maps the authenticated user to its public projection. It never
// touches the database: the middleware already resolved the user row.
func (s *userService) Current(user models.User) models.UserResponse {
	return models.UserResponse{Username: user.Username, Name: user.Name}
}

// Update applies a partial profile update: each supplied field overwrites
// the stored value, each absent field is left untouched. A supplied password
// is rehashed before storage.
func (s *userService) Update(ctx context.Context, user models.User, request models.UpdateUserRequest) (models.UserResponse, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, request); err != nil {
		return models.UserResponse{}, err
	}

	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*request.Password), s.bcryptCost)
		if err != nil {
			log.Err(err).Str("func", "*userService.Update").Msg("password hashing failed")
			return models.UserResponse{}, fmt.Errorf("password hashing failed: %w", err)
		}
		user.PasswordHash = string(hash)
	}

	err := s.db.WithTx(ctx, nil, func(ctx context.Context, tx store.DBTX) error {
		return s.users.UpdateUser(ctx, tx, user)
	})
	if err != nil {
		return models.UserResponse{}, err
	}

	return models.UserResponse{Username: user.Username, Name: user.Name}, nil
}
