package service

import (
	"context"
	"testing"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/store"
	"github.com/amevide998/contact-management/internal/utils"
	"github.com/amevide998/contact-management/internal/validators"
	"github.com/amevide998/contact-management/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAddressService(contacts *mockContactRepository, addresses *mockAddressRepository) *addressService {
	return &addressService{
		db:        &fakeTxRunner{},
		contacts:  contacts,
		addresses: addresses,
		validator: validators.NewRequestValidator(),
		uuid:      utils.NewUUIDGenerator(),
		logger:    logger.Nop(),
	}
}

// ownedContact resolves contact c-1 for user hdscode and nothing else, which
// covers both the missing-contact and the foreign-contact cases.
func ownedContact() *mockContactRepository {
	return &mockContactRepository{
		findContactByOwnerAndIDFn: func(ctx context.Context, username, id string) (models.Contact, error) {
			if username == "hdscode" && id == "c-1" {
				return models.Contact{ID: "c-1", Username: "hdscode", FirstName: "monkey"}, nil
			}
			return models.Contact{}, store.ErrContactNotFound
		},
	}
}

func TestAddressCreate_Success(t *testing.T) {
	var created models.Address

	addresses := &mockAddressRepository{
		createAddressFn: func(ctx context.Context, address models.Address) error {
			created = address
			return nil
		},
	}
	svc := newTestAddressService(ownedContact(), addresses)

	response, err := svc.Create(context.Background(), testUser, models.CreateAddressRequest{
		ContactID:  "c-1",
		Street:     "jl sotomarto",
		City:       "jakarta",
		Province:   "dki",
		PostalCode: "12345",
		Country:    "indonesia",
	})
	require.NoError(t, err)

	require.NotEmpty(t, response.ID)
	assert.Equal(t, created.ID, response.ID)
	assert.Equal(t, "c-1", created.ContactID)
	assert.Equal(t, "indonesia", response.Country)
}

func TestAddressCreate_ContactNotFound(t *testing.T) {
	svc := newTestAddressService(ownedContact(), &mockAddressRepository{
		createAddressFn: func(ctx context.Context, address models.Address) error {
			t.Fatal("address must not be created under a foreign contact")
			return nil
		},
	})

	_, err := svc.Create(context.Background(), testUser, models.CreateAddressRequest{ContactID: "foreign"})
	require.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestAddressGet_Success(t *testing.T) {
	addresses := &mockAddressRepository{
		findAddressByContactAndIDFn: func(ctx context.Context, contactID, id string) (models.Address, error) {
			assert.Equal(t, "c-1", contactID)
			return models.Address{ID: id, ContactID: contactID, City: "jakarta"}, nil
		},
	}
	svc := newTestAddressService(ownedContact(), addresses)

	response, err := svc.Get(context.Background(), testUser, "c-1", "a-1")
	require.NoError(t, err)
	assert.Equal(t, "a-1", response.ID)
	assert.Equal(t, "jakarta", response.City)
}

func TestAddressGet_AddressNotFound(t *testing.T) {
	svc := newTestAddressService(ownedContact(), &mockAddressRepository{})

	_, err := svc.Get(context.Background(), testUser, "c-1", "missing")
	require.ErrorIs(t, err, store.ErrAddressNotFound)
}

func TestAddressGet_ContactNotFound(t *testing.T) {
	svc := newTestAddressService(ownedContact(), &mockAddressRepository{
		findAddressByContactAndIDFn: func(ctx context.Context, contactID, id string) (models.Address, error) {
			t.Fatal("address lookup must not run when the contact is not owned")
			return models.Address{}, nil
		},
	})

	_, err := svc.Get(context.Background(), testUser, "foreign", "a-1")
	require.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestAddressUpdate_PartialOverwriteExceptCountry(t *testing.T) {
	var updated models.Address

	addresses := &mockAddressRepository{
		findAddressByContactAndIDFn: func(ctx context.Context, contactID, id string) (models.Address, error) {
			return models.Address{
				ID:         id,
				ContactID:  contactID,
				Street:     "jl sotomarto",
				City:       "jakarta",
				Province:   "dki",
				PostalCode: "12345",
				Country:    "indonesia",
			}, nil
		},
		updateAddressFn: func(ctx context.Context, address models.Address) error {
			updated = address
			return nil
		},
	}
	svc := newTestAddressService(ownedContact(), addresses)

	response, err := svc.Update(context.Background(), testUser, models.UpdateAddressRequest{
		ContactID: "c-1",
		AddressID: "a-1",
		City:      strPtr("bandung"),
		// country intentionally absent from the request body
	})
	require.NoError(t, err)

	// supplied field overwritten, absent pointer fields untouched
	assert.Equal(t, "bandung", updated.City)
	assert.Equal(t, "jl sotomarto", updated.Street)
	assert.Equal(t, "dki", updated.Province)
	assert.Equal(t, "12345", updated.PostalCode)

	// country is written unconditionally: absent means cleared
	assert.Equal(t, "", updated.Country)
	assert.Equal(t, "", response.Country)
}

func TestAddressUpdate_NotFound(t *testing.T) {
	svc := newTestAddressService(ownedContact(), &mockAddressRepository{})

	_, err := svc.Update(context.Background(), testUser, models.UpdateAddressRequest{
		ContactID: "c-1",
		AddressID: "missing",
	})
	require.ErrorIs(t, err, store.ErrAddressNotFound)
}

func TestAddressDelete_Success(t *testing.T) {
	var deleted string

	addresses := &mockAddressRepository{
		deleteAddressFn: func(ctx context.Context, contactID, id string) error {
			deleted = id
			return nil
		},
	}
	svc := newTestAddressService(ownedContact(), addresses)

	require.NoError(t, svc.Delete(context.Background(), testUser, "c-1", "a-1"))
	assert.Equal(t, "a-1", deleted)
}

func TestAddressDelete_ContactNotFound(t *testing.T) {
	svc := newTestAddressService(ownedContact(), &mockAddressRepository{})

	err := svc.Delete(context.Background(), testUser, "foreign", "a-1")
	require.ErrorIs(t, err, store.ErrContactNotFound)
}

func TestAddressList_Success(t *testing.T) {
	addresses := &mockAddressRepository{
		listAddressesByContactFn: func(ctx context.Context, contactID string) ([]models.Address, error) {
			return []models.Address{
				{ID: "a-1", ContactID: contactID, City: "jakarta"},
				{ID: "a-2", ContactID: contactID, City: "bandung"},
			}, nil
		},
	}
	svc := newTestAddressService(ownedContact(), addresses)

	responses, err := svc.List(context.Background(), testUser, "c-1")
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.Equal(t, "a-1", responses[0].ID)
	assert.Equal(t, "a-2", responses[1].ID)
}

func TestAddressList_EmptyContact(t *testing.T) {
	addresses := &mockAddressRepository{
		listAddressesByContactFn: func(ctx context.Context, contactID string) ([]models.Address, error) {
			return []models.Address{}, nil
		},
	}
	svc := newTestAddressService(ownedContact(), addresses)

	responses, err := svc.List(context.Background(), testUser, "c-1")
	require.NoError(t, err)
	assert.Empty(t, responses)
}

func TestAddressList_ContactNotFound(t *testing.T) {
	svc := newTestAddressService(ownedContact(), &mockAddressRepository{})

	_, err := svc.List(context.Background(), testUser, "foreign")
	require.ErrorIs(t, err, store.ErrContactNotFound)
}
