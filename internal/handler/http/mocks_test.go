package http

import (
	"context"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/service"
	"github.com/amevide998/contact-management/models"
)

type mockAuthService struct {
	loginFn        func(ctx context.Context, request models.LoginUserRequest) (models.TokenResponse, error)
	authenticateFn func(ctx context.Context, token string) (models.User, error)
	logoutFn       func(ctx context.Context, user models.User) error
}

func (m *mockAuthService) Login(ctx context.Context, request models.LoginUserRequest) (models.TokenResponse, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, request)
	}
	return models.TokenResponse{}, service.ErrBadCredentials
}

func (m *mockAuthService) Authenticate(ctx context.Context, token string) (models.User, error) {
	if m.authenticateFn != nil {
		return m.authenticateFn(ctx, token)
	}
	return models.User{}, service.ErrUnauthorized
}

func (m *mockAuthService) Logout(ctx context.Context, user models.User) error {
	if m.logoutFn != nil {
		return m.logoutFn(ctx, user)
	}
	return nil
}

type mockUserService struct {
	registerFn func(ctx context.Context, request models.RegisterUserRequest) error
	currentFn  func(user models.User) models.UserResponse
	updateFn   func(ctx context.Context, user models.User, request models.UpdateUserRequest) (models.UserResponse, error)
}

func (m *mockUserService) Register(ctx context.Context, request models.RegisterUserRequest) error {
	if m.registerFn != nil {
		return m.registerFn(ctx, request)
	}
	return nil
}

func (m *mockUserService) Current(user models.User) models.UserResponse {
	if m.currentFn != nil {
		return m.currentFn(user)
	}
	return models.UserResponse{Username: user.Username, Name: user.Name}
}

func (m *mockUserService) Update(ctx context.Context, user models.User, request models.UpdateUserRequest) (models.UserResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, user, request)
	}
	return models.UserResponse{}, nil
}

type mockContactService struct {
	createFn func(ctx context.Context, user models.User, request models.CreateContactRequest) (models.ContactResponse, error)
	getFn    func(ctx context.Context, user models.User, contactID string) (models.ContactResponse, error)
	updateFn func(ctx context.Context, user models.User, request models.UpdateContactRequest) (models.ContactResponse, error)
	deleteFn func(ctx context.Context, user models.User, contactID string) error
	searchFn func(ctx context.Context, user models.User, request models.SearchContactRequest) (models.ContactPage, error)
}

func (m *mockContactService) Create(ctx context.Context, user models.User, request models.CreateContactRequest) (models.ContactResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user, request)
	}
	return models.ContactResponse{}, nil
}

func (m *mockContactService) Get(ctx context.Context, user models.User, contactID string) (models.ContactResponse, error) {
	if m.getFn != nil {
		return m.getFn(ctx, user, contactID)
	}
	return models.ContactResponse{}, nil
}

func (m *mockContactService) Update(ctx context.Context, user models.User, request models.UpdateContactRequest) (models.ContactResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, user, request)
	}
	return models.ContactResponse{}, nil
}

func (m *mockContactService) Delete(ctx context.Context, user models.User, contactID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, user, contactID)
	}
	return nil
}

func (m *mockContactService) Search(ctx context.Context, user models.User, request models.SearchContactRequest) (models.ContactPage, error) {
	if m.searchFn != nil {
		return m.searchFn(ctx, user, request)
	}
	return models.ContactPage{}, nil
}

type mockAddressService struct {
	createFn func(ctx context.Context, user models.User, request models.CreateAddressRequest) (models.AddressResponse, error)
	getFn    func(ctx context.Context, user models.User, contactID, addressID string) (models.AddressResponse, error)
	updateFn func(ctx context.Context, user models.User, request models.UpdateAddressRequest) (models.AddressResponse, error)
	deleteFn func(ctx context.Context, user models.User, contactID, addressID string) error
	listFn   func(ctx context.Context, user models.User, contactID string) ([]models.AddressResponse, error)
}

func (m *mockAddressService) Create(ctx context.Context, user models.User, request models.CreateAddressRequest) (models.AddressResponse, error) {
	if m.createFn != nil {
		return m.createFn(ctx, user, request)
	}
	return models.AddressResponse{}, nil
}

func (m *mockAddressService) Get(ctx context.Context, user models.User, contactID, addressID string) (models.AddressResponse, error) {
	if m.getFn != nil {
		return m.getFn(ctx, user, contactID, addressID)
	}
	return models.AddressResponse{}, nil
}

func (m *mockAddressService) Update(ctx context.Context, user models.User, request models.UpdateAddressRequest) (models.AddressResponse, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, user, request)
	}
	return models.AddressResponse{}, nil
}

func (m *mockAddressService) Delete(ctx context.Context, user models.User, contactID, addressID string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, user, contactID, addressID)
	}
	return nil
}

func (m *mockAddressService) List(ctx context.Context, user models.User, contactID string) ([]models.AddressResponse, error) {
	if m.listFn != nil {
		return m.listFn(ctx, user, contactID)
	}
	return nil, nil
}

// authenticatedAs returns a mockAuthService that resolves the given token to
// the given user; every other token stays unauthorized.
func authenticatedAs(token string, user models.User) *mockAuthService {
	return &mockAuthService{
		authenticateFn: func(ctx context.Context, presented string) (models.User, error) {
			if presented == token {
				return user, nil
			}
			return models.User{}, service.ErrUnauthorized
		},
	}
}

func newTestHandler(services *service.Services) *Handler {
	if services.AuthService == nil {
		services.AuthService = &mockAuthService{}
	}
	if services.UserService == nil {
		services.UserService = &mockUserService{}
	}
	if services.ContactService == nil {
		services.ContactService = &mockContactService{}
	}
	if services.AddressService == nil {
		services.AddressService = &mockAddressService{}
	}
	return NewHandler(services, logger.Nop())
}
