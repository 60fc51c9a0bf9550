package store

import (
	"context"

	"github.com/amevide998/contact-management/models"
)

// UserRepository persists user accounts. The username is the primary key and
// is immutable after creation.
type UserRepository interface {
	CreateUser(ctx context.Context, q DBTX, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, q DBTX, username string) (models.User, error)
	UpdateUser(ctx context.Context, q DBTX, user models.User) error
}

// SessionRepository persists issued session tokens. Sessions are keyed by
// token; validity is decided by the expiry column, never by token contents.
type SessionRepository interface {
	CreateSession(ctx context.Context, q DBTX, session models.Session) error
	FindSessionByToken(ctx context.Context, q DBTX, token string) (models.Session, error)
	DeleteSessionsByUsername(ctx context.Context, q DBTX, username string) error
	DeleteExpiredSessions(ctx context.Context, q DBTX, now int64) (int64, error)
}

// ContactRepository persists contacts. Every lookup and mutation is scoped by
// the owning username so that a foreign contact is indistinguishable from a
// missing one.
type ContactRepository interface {
	CreateContact(ctx context.Context, q DBTX, contact models.Contact) error
	FindContactByOwnerAndID(ctx context.Context, q DBTX, username, id string) (models.Contact, error)
	UpdateContact(ctx context.Context, q DBTX, contact models.Contact) error
	DeleteContact(ctx context.Context, q DBTX, username, id string) error
	SearchContacts(ctx context.Context, q DBTX, filter ContactFilter) ([]models.Contact, error)
	CountContacts(ctx context.Context, q DBTX, filter ContactFilter) (int64, error)
}

// AddressRepository persists addresses. Every lookup and mutation is scoped
// by the parent contact id; the service layer resolves the contact by owner
// first, completing the user -> contact -> address ownership chain.
type AddressRepository interface {
	CreateAddress(ctx context.Context, q DBTX, address models.Address) error
	FindAddressByContactAndID(ctx context.Context, q DBTX, contactID, id string) (models.Address, error)
	UpdateAddress(ctx context.Context, q DBTX, address models.Address) error
	DeleteAddress(ctx context.Context, q DBTX, contactID, id string) error
	ListAddressesByContact(ctx context.Context, q DBTX, contactID string) ([]models.Address, error)
	DeleteAddressesByContact(ctx context.Context, q DBTX, contactID string) error
}
