package store

import (
	"github.com/amevide998/contact-management/internal/logger"
)

// Storages bundles every repository behind one constructor so that the
// service layer receives a single dependency.
type Storages struct {
	Users     UserRepository
	Sessions  SessionRepository
	Contacts  ContactRepository
	Addresses AddressRepository
}

// NewStorages constructs all repositories.
func NewStorages(logger *logger.Logger) *Storages {
	return &Storages{
		Users:     NewUserRepository(logger),
		Sessions:  NewSessionRepository(logger),
		Contacts:  NewContactRepository(logger),
		Addresses: NewAddressRepository(logger),
	}
}
