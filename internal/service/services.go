package service

import (
	"github.com/amevide998/contact-management/internal/config"
	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/store"
	"github.com/amevide998/contact-management/internal/validators"
)

// Services bundles every service behind one constructor so that the HTTP
// layer receives a single dependency.
type Services struct {
	AuthService    AuthService
	UserService    UserService
	ContactService ContactService
	AddressService AddressService
}

// NewServices constructs all services over one database handle and one
// shared request validator.
func NewServices(db *store.DB, storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:    NewAuthService(db, storages, validator, cfg.App, logger),
		UserService:    NewUserService(db, storages, validator, cfg.App, logger),
		ContactService: NewContactService(db, storages, validator, logger),
		AddressService: NewAddressService(db, storages, validator, logger),
	}
}
