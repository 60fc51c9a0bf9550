package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/models"
)

// addressRepository is the PostgreSQL-backed implementation of
// [AddressRepository], working against the "addresses" table.
//
// Lookups are scoped by contact id only; callers resolve the contact by
// owner first, which completes the ownership chain.
type addressRepository struct {
	logger *logger.Logger
}

// NewAddressRepository constructs an [AddressRepository] backed by the
// provided logger.
func NewAddressRepository(logger *logger.Logger) AddressRepository {
	logger.Debug().Msg("creating address repository")
	return &addressRepository{
		logger: logger,
	}
}

// CreateAddress inserts a new address row. The id is assigned by the service
// layer before the call.
func (r *addressRepository) CreateAddress(ctx context.Context, q DBTX, address models.Address) error {
	log := logger.FromContext(ctx)

	_, err := q.ExecContext(ctx, createAddress,
		address.ID, address.ContactID, address.Street, address.City, address.Province, address.PostalCode, address.Country)
	if err != nil {
		log.Err(err).
			Str("func", "*addressRepository.CreateAddress").
			Str("contact_id", address.ContactID).
			Msg("failed to create address")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// FindAddressByContactAndID retrieves the address matching the compound
// (contact, id) key.
//
// Error handling:
//   - No matching row (absent or belonging to another contact) →
//     [ErrAddressNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *addressRepository) FindAddressByContactAndID(ctx context.Context, q DBTX, contactID, id string) (models.Address, error) {
	log := logger.FromContext(ctx)

	var address models.Address
	row := q.QueryRowContext(ctx, findAddressByContactAndID, contactID, id)

	if err := row.Scan(&address.ID, &address.ContactID, &address.Street, &address.City, &address.Province, &address.PostalCode, &address.Country); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Address{}, ErrAddressNotFound
		}

		log.Err(err).Str("func", "*addressRepository.FindAddressByContactAndID").Msg("unexpected DB error")
		return models.Address{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return address, nil
}

// UpdateAddress overwrites the mutable columns of the address row matching
// (address.ContactID, address.ID).
//
// Error handling:
//   - Zero affected rows → [ErrAddressNotFound].
//   - Any driver-level error → wrapped as [ErrExecutingQuery].
func (r *addressRepository) UpdateAddress(ctx context.Context, q DBTX, address models.Address) error {
	log := logger.FromContext(ctx)

	result, err := q.ExecContext(ctx, updateAddress,
		address.Street, address.City, address.Province, address.PostalCode, address.Country, address.ContactID, address.ID)
	if err != nil {
		log.Err(err).
			Str("func", "*addressRepository.UpdateAddress").
			Str("contact_id", address.ContactID).
			Str("id", address.ID).
			Msg("failed to update address")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAddressNotFound
	}

	return nil
}

// DeleteAddress removes the address row matching (contactID, id).
//
// Error handling:
//   - Zero affected rows → [ErrAddressNotFound].
//   - Any driver-level error → wrapped as [ErrExecutingQuery].
func (r *addressRepository) DeleteAddress(ctx context.Context, q DBTX, contactID, id string) error {
	log := logger.FromContext(ctx)

	result, err := q.ExecContext(ctx, deleteAddress, contactID, id)
	if err != nil {
		log.Err(err).
			Str("func", "*addressRepository.DeleteAddress").
			Str("contact_id", contactID).
			Str("id", id).
			Msg("failed to delete address")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAddressNotFound
	}

	return nil
}

// ListAddressesByContact returns every address of the given contact as a
// flat sequence, ordered by id. No pagination is applied.
func (r *addressRepository) ListAddressesByContact(ctx context.Context, q DBTX, contactID string) ([]models.Address, error) {
	log := logger.FromContext(ctx)

	rows, err := q.QueryContext(ctx, listAddressesByContact, contactID)
	if err != nil {
		log.Err(err).
			Str("func", "*addressRepository.ListAddressesByContact").
			Str("contact_id", contactID).
			Msg("failed to list addresses")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	addresses := make([]models.Address, 0, 8)

	for rows.Next() {
		var address models.Address

		scanErr := rows.Scan(&address.ID, &address.ContactID, &address.Street, &address.City, &address.Province, &address.PostalCode, &address.Country)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*addressRepository.ListAddressesByContact").
				Str("contact_id", contactID).
				Msg("failed to scan address row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		addresses = append(addresses, address)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*addressRepository.ListAddressesByContact").
			Str("contact_id", contactID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return addresses, nil
}

// DeleteAddressesByContact removes every address of the given contact.
// Used by contact deletion: the schema carries no ON DELETE CASCADE, so the
// children go first, inside the same transaction.
func (r *addressRepository) DeleteAddressesByContact(ctx context.Context, q DBTX, contactID string) error {
	log := logger.FromContext(ctx)

	_, err := q.ExecContext(ctx, deleteAddressesByContact, contactID)
	if err != nil {
		log.Err(err).
			Str("func", "*addressRepository.DeleteAddressesByContact").
			Str("contact_id", contactID).
			Msg("failed to delete addresses")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
