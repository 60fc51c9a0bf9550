package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/models"
)

// contactRepository is the PostgreSQL-backed implementation of
// [ContactRepository], working against the "contacts" table.
//
// Every lookup and mutation filters by (username, id) in a single statement,
// so ownership scoping can never be skipped by a caller.
type contactRepository struct {
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository] backed by the
// provided logger.
func NewContactRepository(logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		logger: logger,
	}
}

// CreateContact inserts a new contact row. The id is assigned by the service
// layer before the call.
func (r *contactRepository) CreateContact(ctx context.Context, q DBTX, contact models.Contact) error {
	log := logger.FromContext(ctx)

	_, err := q.ExecContext(ctx, createContact,
		contact.ID, contact.Username, contact.FirstName, contact.LastName, contact.Phone, contact.Email)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.CreateContact").
			Str("username", contact.Username).
			Msg("failed to create contact")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// FindContactByOwnerAndID retrieves the contact matching the compound
// (owner, id) key.
//
// Error handling:
//   - No matching row (absent or foreign) → [ErrContactNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *contactRepository) FindContactByOwnerAndID(ctx context.Context, q DBTX, username, id string) (models.Contact, error) {
	log := logger.FromContext(ctx)

	var contact models.Contact
	row := q.QueryRowContext(ctx, findContactByOwnerAndID, username, id)

	if err := row.Scan(&contact.ID, &contact.Username, &contact.FirstName, &contact.LastName, &contact.Phone, &contact.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Contact{}, ErrContactNotFound
		}

		log.Err(err).Str("func", "*contactRepository.FindContactByOwnerAndID").Msg("unexpected DB error")
		return models.Contact{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return contact, nil
}

// UpdateContact overwrites the mutable columns of the contact row matching
// (contact.Username, contact.ID).
//
// Error handling:
//   - Zero affected rows → [ErrContactNotFound].
//   - Any driver-level error → wrapped as [ErrExecutingQuery].
func (r *contactRepository) UpdateContact(ctx context.Context, q DBTX, contact models.Contact) error {
	log := logger.FromContext(ctx)

	result, err := q.ExecContext(ctx, updateContact,
		contact.FirstName, contact.LastName, contact.Phone, contact.Email, contact.Username, contact.ID)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.UpdateContact").
			Str("username", contact.Username).
			Str("id", contact.ID).
			Msg("failed to update contact")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// DeleteContact removes the contact row matching (username, id).
//
// Error handling:
//   - Zero affected rows → [ErrContactNotFound].
//   - Any driver-level error → wrapped as [ErrExecutingQuery].
func (r *contactRepository) DeleteContact(ctx context.Context, q DBTX, username, id string) error {
	log := logger.FromContext(ctx)

	result, err := q.ExecContext(ctx, deleteContact, username, id)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.DeleteContact").
			Str("username", username).
			Str("id", id).
			Msg("failed to delete contact")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrContactNotFound
	}

	return nil
}

// SearchContacts executes the dynamically built search query and returns the
// requested page of contacts. An empty page is a valid result, not an error.
func (r *contactRepository) SearchContacts(ctx context.Context, q DBTX, filter ContactFilter) ([]models.Contact, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSearchContactsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.SearchContacts").
			Str("username", filter.Username).
			Msg("failed to build search query")
		return nil, err
	}

	rows, err := q.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.SearchContacts").
			Str("username", filter.Username).
			Msg("failed to execute search query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	contacts := make([]models.Contact, 0, filter.Size)

	for rows.Next() {
		var contact models.Contact

		scanErr := rows.Scan(&contact.ID, &contact.Username, &contact.FirstName, &contact.LastName, &contact.Phone, &contact.Email)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*contactRepository.SearchContacts").
				Str("username", filter.Username).
				Msg("failed to scan contact row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		contacts = append(contacts, contact)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*contactRepository.SearchContacts").
			Str("username", filter.Username).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return contacts, nil
}

// CountContacts returns the number of contacts matching filter, ignoring its
// page window. The count shares the WHERE tree with [SearchContacts], so the
// two always describe the same result set.
func (r *contactRepository) CountContacts(ctx context.Context, q DBTX, filter ContactFilter) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCountContactsQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "*contactRepository.CountContacts").
			Str("username", filter.Username).
			Msg("failed to build count query")
		return 0, err
	}

	var total int64
	row := q.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&total); err != nil {
		log.Err(err).
			Str("func", "*contactRepository.CountContacts").
			Str("username", filter.Username).
			Msg("failed to scan count")
		return 0, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return total, nil
}
