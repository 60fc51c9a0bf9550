package service

import (
	"context"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/store"
	"github.com/amevide998/contact-management/internal/utils"
	"github.com/amevide998/contact-management/internal/validators"
	"github.com/amevide998/contact-management/models"
)

// addressService is the concrete implementation of AddressService.
//
// Every operation resolves the parent contact by (owner, id) before touching
// any address row, which chains ownership: a caller can only reach addresses
// hanging off their own contacts. A foreign contact id yields
// ErrContactNotFound before the address is even looked at.
type addressService struct {
	db        TxRunner
	contacts  store.ContactRepository
	addresses store.AddressRepository

	validator validators.Validator
	uuid      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewAddressService constructs an AddressService wired to the given
// repositories.
func NewAddressService(db TxRunner, storages *store.Storages, validator validators.Validator, logger *logger.Logger) AddressService {
	return &addressService{
		db:        db,
		contacts:  storages.Contacts,
		addresses: storages.Addresses,
		validator: validator,
		uuid:      utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func addressResponse(address models.Address) models.AddressResponse {
	return models.AddressResponse{
		ID:         address.ID,
		Street:     address.Street,
		City:       address.City,
		Province:   address.Province,
		PostalCode: address.PostalCode,
		Country:    address.Country,
	}
}

// Create stores a new address beneath an owned contact.
func (s *addressService) Create(ctx context.Context, user models.User, request models.CreateAddressRequest) (models.AddressResponse, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.AddressResponse{}, err
	}

	address := models.Address{
		ID:         s.uuid.Generate(),
		Street:     request.Street,
		City:       request.City,
		Province:   request.Province,
		PostalCode: request.PostalCode,
		Country:    request.Country,
	}

	err := s.db.WithTx(ctx, nil, func(ctx context.Context, tx store.DBTX) error {
		contact, err := s.contacts.FindContactByOwnerAndID(ctx, tx, user.Username, request.ContactID)
		if err != nil {
			return err
		}

		address.ContactID = contact.ID
		return s.addresses.CreateAddress(ctx, tx, address)
	})
	if err != nil {
		return models.AddressResponse{}, err
	}

	return addressResponse(address), nil
}

// Get returns one address of an owned contact.
func (s *addressService) Get(ctx context.Context, user models.User, contactID, addressID string) (models.AddressResponse, error) {
	var address models.Address

	err := s.db.WithTx(ctx, store.ReadOnly, func(ctx context.Context, tx store.DBTX) error {
		contact, err := s.contacts.FindContactByOwnerAndID(ctx, tx, user.Username, contactID)
		if err != nil {
			return err
		}

		address, err = s.addresses.FindAddressByContactAndID(ctx, tx, contact.ID, addressID)
		return err
	})
	if err != nil {
		return models.AddressResponse{}, err
	}

	return addressResponse(address), nil
}

// Update applies a partial update to an address of an owned contact. All
// fields follow the supplied-means-overwrite rule except country, which is
// written unconditionally: omitting it clears the stored value.
func (s *addressService) Update(ctx context.Context, user models.User, request models.UpdateAddressRequest) (models.AddressResponse, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.AddressResponse{}, err
	}

	var address models.Address

	err := s.db.WithTx(ctx, nil, func(ctx context.Context, tx store.DBTX) error {
		contact, err := s.contacts.FindContactByOwnerAndID(ctx, tx, user.Username, request.ContactID)
		if err != nil {
			return err
		}

		address, err = s.addresses.FindAddressByContactAndID(ctx, tx, contact.ID, request.AddressID)
		if err != nil {
			return err
		}

		if request.Street != nil {
			address.Street = *request.Street
		}
		if request.City != nil {
			address.City = *request.City
		}
		if request.Province != nil {
			address.Province = *request.Province
		}
		if request.PostalCode != nil {
			address.PostalCode = *request.PostalCode
		}
		address.Country = request.Country

		return s.addresses.UpdateAddress(ctx, tx, address)
	})
	if err != nil {
		return models.AddressResponse{}, err
	}

	return addressResponse(address), nil
}

// Delete removes one address of an owned contact.
func (s *addressService) Delete(ctx context.Context, user models.User, contactID, addressID string) error {
	return s.db.WithTx(ctx, nil, func(ctx context.Context, tx store.DBTX) error {
		contact, err := s.contacts.FindContactByOwnerAndID(ctx, tx, user.Username, contactID)
		if err != nil {
			return err
		}

		return s.addresses.DeleteAddress(ctx, tx, contact.ID, addressID)
	})
}

// List returns every address of an owned contact, ordered by id, as a flat
// sequence without pagination.
func (s *addressService) List(ctx context.Context, user models.User, contactID string) ([]models.AddressResponse, error) {
	var addresses []models.Address

	err := s.db.WithTx(ctx, store.ReadOnly, func(ctx context.Context, tx store.DBTX) error {
		contact, err := s.contacts.FindContactByOwnerAndID(ctx, tx, user.Username, contactID)
		if err != nil {
			return err
		}

		addresses, err = s.addresses.ListAddressesByContact(ctx, tx, contact.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	responses := make([]models.AddressResponse, 0, len(addresses))
	for _, address := range addresses {
		responses = append(responses, addressResponse(address))
	}

	return responses, nil
}
