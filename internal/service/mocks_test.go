package service

import (
	"context"
	"database/sql"

	"github.com/amevide998/contact-management/models"

	"github.com/amevide998/contact-management/internal/store"
)

// fakeTxRunner satisfies TxRunner without a database: the callback runs
// directly against a nil handle, which the repository mocks never touch.
type fakeTxRunner struct {
	// beginErr, when set, is returned without running the callback.
	beginErr error
}

func (f *fakeTxRunner) WithTx(ctx context.Context, _ *sql.TxOptions, fn func(ctx context.Context, tx store.DBTX) error) error {
	if f.beginErr != nil {
		return f.beginErr
	}
	return fn(ctx, nil)
}

type mockUserRepository struct {
	createUserFn         func(ctx context.Context, user models.User) (models.User, error)
	findUserByUsernameFn func(ctx context.Context, username string) (models.User, error)
	updateUserFn         func(ctx context.Context, user models.User) error
}

func (m *mockUserRepository) CreateUser(ctx context.Context, _ store.DBTX, user models.User) (models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(ctx, user)
	}
	return user, nil
}

func (m *mockUserRepository) FindUserByUsername(ctx context.Context, _ store.DBTX, username string) (models.User, error) {
	if m.findUserByUsernameFn != nil {
		return m.findUserByUsernameFn(ctx, username)
	}
	return models.User{}, store.ErrUserNotFound
}

func (m *mockUserRepository) UpdateUser(ctx context.Context, _ store.DBTX, user models.User) error {
	if m.updateUserFn != nil {
		return m.updateUserFn(ctx, user)
	}
	return nil
}

type mockSessionRepository struct {
	createSessionFn            func(ctx context.Context, session models.Session) error
	findSessionByTokenFn       func(ctx context.Context, token string) (models.Session, error)
	deleteSessionsByUsernameFn func(ctx context.Context, username string) error
	deleteExpiredSessionsFn    func(ctx context.Context, now int64) (int64, error)
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, _ store.DBTX, session models.Session) error {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, session)
	}
	return nil
}

func (m *mockSessionRepository) FindSessionByToken(ctx context.Context, _ store.DBTX, token string) (models.Session, error) {
	if m.findSessionByTokenFn != nil {
		return m.findSessionByTokenFn(ctx, token)
	}
	return models.Session{}, store.ErrSessionNotFound
}

func (m *mockSessionRepository) DeleteSessionsByUsername(ctx context.Context, _ store.DBTX, username string) error {
	if m.deleteSessionsByUsernameFn != nil {
		return m.deleteSessionsByUsernameFn(ctx, username)
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpiredSessions(ctx context.Context, _ store.DBTX, now int64) (int64, error) {
	if m.deleteExpiredSessionsFn != nil {
		return m.deleteExpiredSessionsFn(ctx, now)
	}
	return 0, nil
}

type mockContactRepository struct {
	createContactFn          func(ctx context.Context, contact models.Contact) error
	findContactByOwnerAndIDFn func(ctx context.Context, username, id string) (models.Contact, error)
	updateContactFn          func(ctx context.Context, contact models.Contact) error
	deleteContactFn          func(ctx context.Context, username, id string) error
	searchContactsFn         func(ctx context.Context, filter store.ContactFilter) ([]models.Contact, error)
	countContactsFn          func(ctx context.Context, filter store.ContactFilter) (int64, error)
}

func (m *mockContactRepository) CreateContact(ctx context.Context, _ store.DBTX, contact models.Contact) error {
	if m.createContactFn != nil {
		return m.createContactFn(ctx, contact)
	}
	return nil
}

func (m *mockContactRepository) FindContactByOwnerAndID(ctx context.Context, _ store.DBTX, username, id string) (models.Contact, error) {
	if m.findContactByOwnerAndIDFn != nil {
		return m.findContactByOwnerAndIDFn(ctx, username, id)
	}
	return models.Contact{}, store.ErrContactNotFound
}

func (m *mockContactRepository) UpdateContact(ctx context.Context, _ store.DBTX, contact models.Contact) error {
	if m.updateContactFn != nil {
		return m.updateContactFn(ctx, contact)
	}
	return nil
}

func (m *mockContactRepository) DeleteContact(ctx context.Context, _ store.DBTX, username, id string) error {
	if m.deleteContactFn != nil {
		return m.deleteContactFn(ctx, username, id)
	}
	return nil
}

func (m *mockContactRepository) SearchContacts(ctx context.Context, _ store.DBTX, filter store.ContactFilter) ([]models.Contact, error) {
	if m.searchContactsFn != nil {
		return m.searchContactsFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockContactRepository) CountContacts(ctx context.Context, _ store.DBTX, filter store.ContactFilter) (int64, error) {
	if m.countContactsFn != nil {
		return m.countContactsFn(ctx, filter)
	}
	return 0, nil
}

type mockAddressRepository struct {
	createAddressFn            func(ctx context.Context, address models.Address) error
	findAddressByContactAndIDFn func(ctx context.Context, contactID, id string) (models.Address, error)
	updateAddressFn            func(ctx context.Context, address models.Address) error
	deleteAddressFn            func(ctx context.Context, contactID, id string) error
	listAddressesByContactFn   func(ctx context.Context, contactID string) ([]models.Address, error)
	deleteAddressesByContactFn func(ctx context.Context, contactID string) error
}

func (m *mockAddressRepository) CreateAddress(ctx context.Context, _ store.DBTX, address models.Address) error {
	if m.createAddressFn != nil {
		return m.createAddressFn(ctx, address)
	}
	return nil
}

func (m *mockAddressRepository) FindAddressByContactAndID(ctx context.Context, _ store.DBTX, contactID, id string) (models.Address, error) {
	if m.findAddressByContactAndIDFn != nil {
		return m.findAddressByContactAndIDFn(ctx, contactID, id)
	}
	return models.Address{}, store.ErrAddressNotFound
}

func (m *mockAddressRepository) UpdateAddress(ctx context.Context, _ store.DBTX, address models.Address) error {
	if m.updateAddressFn != nil {
		return m.updateAddressFn(ctx, address)
	}
	return nil
}

func (m *mockAddressRepository) DeleteAddress(ctx context.Context, _ store.DBTX, contactID, id string) error {
	if m.deleteAddressFn != nil {
		return m.deleteAddressFn(ctx, contactID, id)
	}
	return nil
}

func (m *mockAddressRepository) ListAddressesByContact(ctx context.Context, _ store.DBTX, contactID string) ([]models.Address, error) {
	if m.listAddressesByContactFn != nil {
		return m.listAddressesByContactFn(ctx, contactID)
	}
	return nil, nil
}

func (m *mockAddressRepository) DeleteAddressesByContact(ctx context.Context, _ store.DBTX, contactID string) error {
	if m.deleteAddressesByContactFn != nil {
		return m.deleteAddressesByContactFn(ctx, contactID)
	}
	return nil
}
