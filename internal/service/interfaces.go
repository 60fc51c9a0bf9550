package service

import (
	"context"

	"github.com/amevide998/contact-management/models"
)

// AuthService owns the session token lifecycle: issuing tokens at login,
// resolving tokens back to users, and revoking them at logout.
type AuthService interface {
	// Login verifies the supplied credentials and, on success, issues a new
	// session token. Unknown usernames and wrong passwords are
	// indistinguishable to the caller: both return ErrBadCredentials.
	Login(ctx context.Context, request models.LoginUserRequest) (models.TokenResponse, error)

	// Authenticate resolves a bearer token to its owning user. Missing,
	// unknown and expired tokens all return ErrUnauthorized.
	Authenticate(ctx context.Context, token string) (models.User, error)

	// Logout revokes every session of the given user.
	Logout(ctx context.Context, user models.User) error
}

// UserService owns account registration and profile management.
type UserService interface {
	Register(ctx context.Context, request models.RegisterUserRequest) error
	Current(user models.User) models.UserResponse
	Update(ctx context.Context, user models.User, request models.UpdateUserRequest) (models.UserResponse, error)
}

// ContactService owns contact CRUD and search, always scoped to the calling
// user: a contact belonging to someone else behaves exactly like a missing
// one.
type ContactService interface {
	Create(ctx context.Context, user models.User, request models.CreateContactRequest) (models.ContactResponse, error)
	Get(ctx context.Context, user models.User, contactID string) (models.ContactResponse, error)
	Update(ctx context.Context, user models.User, request models.UpdateContactRequest) (models.ContactResponse, error)
	Delete(ctx context.Context, user models.User, contactID string) error
	Search(ctx context.Context, user models.User, request models.SearchContactRequest) (models.ContactPage, error)
}

// AddressService owns address CRUD beneath a contact. Every operation
// resolves the parent contact by (owner, id) first, so address access is
// transitively ownership-scoped.
type AddressService interface {
	Create(ctx context.Context, user models.User, request models.CreateAddressRequest) (models.AddressResponse, error)
	Get(ctx context.Context, user models.User, contactID, addressID string) (models.AddressResponse, error)
	Update(ctx context.Context, user models.User, request models.UpdateAddressRequest) (models.AddressResponse, error)
	Delete(ctx context.Context, user models.User, contactID, addressID string) error
	List(ctx context.Context, user models.User, contactID string) ([]models.AddressResponse, error)
}
