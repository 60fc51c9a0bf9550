package service

import (
	"context"
	"fmt"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/store"
	"github.com/amevide998/contact-management/internal/utils"
	"github.com/amevide998/contact-management/internal/validators"
	"github.com/amevide998/contact-management/models"
)

// contactService is the concrete implementation of ContactService.
//
// Ownership scoping is structural: every repository call that touches a
// contact filters by (owner, id) in the statement itself, so a foreign
// contact and a missing contact are the same ErrContactNotFound.
type contactService struct {
	db        TxRunner
	contacts  store.ContactRepository
	addresses store.AddressRepository

	validator validators.Validator
	uuid      *utils.UUIDGenerator

	logger *logger.Logger
}

// NewContactService constructs a ContactService wired to the given
// repositories.
func NewContactService(db TxRunner, storages *store.Storages, validator validators.Validator, logger *logger.Logger) ContactService {
	return &contactService{
		db:        db,
		contacts:  storages.Contacts,
		addresses: storages.Addresses,
		validator: validator,
		uuid:      utils.NewUUIDGenerator(),
		logger:    logger,
	}
}

func contactResponse(contact models.Contact) models.ContactResponse {
	return models.ContactResponse{
		ID:        contact.ID,
		FirstName: contact.FirstName,
		LastName:  contact.LastName,
		Email:     contact.Email,
		Phone:     contact.Phone,
	}
}

// Create stores a new contact owned by the calling user and returns its
// public projection, id included.
func (s *contactService) Create(ctx context.Context, user models.User, request models.CreateContactRequest) (models.ContactResponse, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.ContactResponse{}, err
	}

	contact := models.Contact{
		ID:        s.uuid.Generate(),
		Username:  user.Username,
		FirstName: request.FirstName,
		LastName:  request.LastName,
		Phone:     request.Phone,
		Email:     request.Email,
	}

	err := s.db.WithTx(ctx, nil, func(ctx context.Context, tx store.DBTX) error {
		return s.contacts.CreateContact(ctx, tx, contact)
	})
	if err != nil {
		return models.ContactResponse{}, err
	}

	return contactResponse(contact), nil
}

// Get returns the contact with the given id, provided the calling user owns
// it.
func (s *contactService) Get(ctx context.Context, user models.User, contactID string) (models.ContactResponse, error) {
	var contact models.Contact

	err := s.db.WithTx(ctx, store.ReadOnly, func(ctx context.Context, tx store.DBTX) error {
		var err error
		contact, err = s.contacts.FindContactByOwnerAndID(ctx, tx, user.Username, contactID)
		return err
	})
	if err != nil {
		return models.ContactResponse{}, err
	}

	return contactResponse(contact), nil
}

// Update applies a partial update to an owned contact: each supplied field
// overwrites the stored value, each absent field is left untouched. The read
// and the write share one transaction, so a concurrent delete cannot slip
// between them.
func (s *contactService) Update(ctx context.Context, user models.User, request models.UpdateContactRequest) (models.ContactResponse, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.ContactResponse{}, err
	}

	var contact models.Contact

	err := s.db.WithTx(ctx, nil, func(ctx context.Context, tx store.DBTX) error {
		var err error
		contact, err = s.contacts.FindContactByOwnerAndID(ctx, tx, user.Username, request.ID)
		if err != nil {
			return err
		}

		if request.FirstName != nil {
			contact.FirstName = *request.FirstName
		}
		if request.LastName != nil {
			contact.LastName = *request.LastName
		}
		if request.Phone != nil {
			contact.Phone = *request.Phone
		}
		if request.Email != nil {
			contact.Email = *request.Email
		}

		return s.contacts.UpdateContact(ctx, tx, contact)
	})
	if err != nil {
		return models.ContactResponse{}, err
	}

	return contactResponse(contact), nil
}

// Delete removes an owned contact together with all of its addresses. The
// schema carries no ON DELETE CASCADE, so the children are removed first,
// inside the same transaction.
func (s *contactService) Delete(ctx context.Context, user models.User, contactID string) error {
	return s.db.WithTx(ctx, nil, func(ctx context.Context, tx store.DBTX) error {
		contact, err := s.contacts.FindContactByOwnerAndID(ctx, tx, user.Username, contactID)
		if err != nil {
			return err
		}

		if err := s.addresses.DeleteAddressesByContact(ctx, tx, contact.ID); err != nil {
			return err
		}

		return s.contacts.DeleteContact(ctx, tx, user.Username, contact.ID)
	})
}

// Search returns one page of the user's contacts matching the optional
// filters, plus the totals needed for the paging envelope. An empty page is
// a valid result.
func (s *contactService) Search(ctx context.Context, user models.User, request models.SearchContactRequest) (models.ContactPage, error) {
	if err := s.validator.Validate(ctx, request); err != nil {
		return models.ContactPage{}, err
	}

	filter := store.ContactFilter{
		Username: user.Username,
		Name:     request.Name,
		Email:    request.Email,
		Phone:    request.Phone,
		Page:     request.Page,
		Size:     request.Size,
	}

	var (
		contacts []models.Contact
		total    int64
	)

	err := s.db.WithTx(ctx, store.ReadOnly, func(ctx context.Context, tx store.DBTX) error {
		var err error

		contacts, err = s.contacts.SearchContacts(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("contact search failed: %w", err)
		}

		total, err = s.contacts.CountContacts(ctx, tx, filter)
		if err != nil {
			return fmt.Errorf("contact count failed: %w", err)
		}

		return nil
	})
	if err != nil {
		return models.ContactPage{}, err
	}

	page := models.ContactPage{
		Contacts:      make([]models.ContactResponse, 0, len(contacts)),
		TotalElements: total,
		TotalPages:    int((total + int64(request.Size) - 1) / int64(request.Size)),
		Page:          request.Page,
		Size:          request.Size,
	}
	for _, contact := range contacts {
		page.Contacts = append(page.Contacts, contactResponse(contact))
	}

	return page, nil
}
