package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/models"
)

func newTestAddressRepo(t *testing.T) (AddressRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	repo := NewAddressRepository(logger.Nop())
	return repo, mock, db
}

func TestCreateAddress_Success(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()
	address := models.Address{
		ID:         "a-1",
		ContactID:  "c-1",
		Street:     "jl sotomarto",
		City:       "jakarta",
		Province:   "dki",
		PostalCode: "12345",
		Country:    "indonesia",
	}

	mock.ExpectExec("INSERT INTO addresses").
		WithArgs(address.ID, address.ContactID, address.Street, address.City, address.Province, address.PostalCode, address.Country).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateAddress(ctx, db, address); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateAddress_ExecError(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO addresses").
		WillReturnError(errors.New("db network error"))

	err := repo.CreateAddress(ctx, db, models.Address{ID: "a-1", ContactID: "c-1"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestFindAddressByContactAndID_Success(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "contact_id", "street", "city", "province", "postal_code", "country"}).
		AddRow("a-1", "c-1", "jl sotomarto", "jakarta", "dki", "12345", "indonesia")

	mock.ExpectQuery("SELECT id, contact_id, street, city, province, postal_code, country").
		WithArgs("c-1", "a-1").
		WillReturnRows(rows)

	address, err := repo.FindAddressByContactAndID(ctx, db, "c-1", "a-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if address.ID != "a-1" {
		t.Errorf("expected id a-1, got %s", address.ID)
	}
	if address.Country != "indonesia" {
		t.Errorf("expected country indonesia, got %s", address.Country)
	}
}

func TestFindAddressByContactAndID_NotFound(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, contact_id, street, city, province, postal_code, country").
		WithArgs("c-1", "missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindAddressByContactAndID(ctx, db, "c-1", "missing")
	if !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestUpdateAddress_Success(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()
	address := models.Address{
		ID:         "a-1",
		ContactID:  "c-1",
		Street:     "jl renamed",
		City:       "bandung",
		Province:   "jabar",
		PostalCode: "54321",
		Country:    "indonesia",
	}

	mock.ExpectExec("UPDATE addresses").
		WithArgs(address.Street, address.City, address.Province, address.PostalCode, address.Country, address.ContactID, address.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.UpdateAddress(ctx, db, address); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestUpdateAddress_NotFound(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE addresses").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateAddress(ctx, db, models.Address{ID: "missing", ContactID: "c-1"})
	if !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestDeleteAddress_Success(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM addresses").
		WithArgs("c-1", "a-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteAddress(ctx, db, "c-1", "a-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteAddress_NotFound(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM addresses").
		WithArgs("c-1", "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.DeleteAddress(ctx, db, "c-1", "missing")
	if !errors.Is(err, ErrAddressNotFound) {
		t.Fatalf("expected ErrAddressNotFound, got %v", err)
	}
}

func TestListAddressesByContact_Success(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"id", "contact_id", "street", "city", "province", "postal_code", "country"}).
		AddRow("a-1", "c-1", "jl sotomarto", "jakarta", "dki", "12345", "indonesia").
		AddRow("a-2", "c-1", "jl merdeka", "bandung", "jabar", "54321", "indonesia")

	mock.ExpectQuery("SELECT id, contact_id, street, city, province, postal_code, country").
		WithArgs("c-1").
		WillReturnRows(rows)

	addresses, err := repo.ListAddressesByContact(ctx, db, "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(addresses) != 2 {
		t.Fatalf("expected 2 addresses, got %d", len(addresses))
	}
	if addresses[0].ID != "a-1" || addresses[1].ID != "a-2" {
		t.Errorf("unexpected address order: %v", addresses)
	}
}

func TestListAddressesByContact_Empty(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.NewRows([]string{"id", "contact_id", "street", "city", "province", "postal_code", "country"})

	mock.ExpectQuery("SELECT id, contact_id, street, city, province, postal_code, country").
		WithArgs("c-1").
		WillReturnRows(rows)

	addresses, err := repo.ListAddressesByContact(ctx, db, "c-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(addresses) != 0 {
		t.Fatalf("expected empty list, got %d addresses", len(addresses))
	}
}

func TestDeleteAddressesByContact_Success(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM addresses").
		WithArgs("c-1").
		WillReturnResult(sqlmock.NewResult(0, 3))

	if err := repo.DeleteAddressesByContact(ctx, db, "c-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestDeleteAddressesByContact_ExecError(t *testing.T) {
	repo, mock, db := newTestAddressRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM addresses").
		WillReturnError(errors.New("db network error"))

	err := repo.DeleteAddressesByContact(ctx, db, "c-1")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
