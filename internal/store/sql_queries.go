package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, name, password_hash)
    VALUES ($1, $2, $3)
    RETURNING username, name, password_hash;`

	findUserByUsername = `SELECT username, name, password_hash
    FROM users
    WHERE username = $1;`

	updateUser = `UPDATE users
    SET name = $1, password_hash = $2
    WHERE username = $3;`

	createSession = `INSERT INTO sessions (token, username, expires_at)
    VALUES ($1, $2, $3);`

	findSessionByToken = `SELECT token, username, expires_at
    FROM sessions
    WHERE token = $1;`

	deleteSessionsByUsername = `DELETE FROM sessions
    WHERE username = $1;`

	deleteExpiredSessions = `DELETE FROM sessions
    WHERE expires_at <= $1;`

	createContact = `INSERT INTO contacts (id, username, first_name, last_name, phone, email)
    VALUES ($1, $2, $3, $4, $5, $6);`

	findContactByOwnerAndID = `SELECT id, username, first_name, last_name, phone, email
    FROM contacts
    WHERE username = $1 AND id = $2;`

	updateContact = `UPDATE contacts
    SET first_name = $1, last_name = $2, phone = $3, email = $4
    WHERE username = $5 AND id = $6;`

	deleteContact = `DELETE FROM contacts
    WHERE username = $1 AND id = $2;`

	createAddress = `INSERT INTO addresses (id, contact_id, street, city, province, postal_code, country)
    VALUES ($1, $2, $3, $4, $5, $6, $7);`

	findAddressByContactAndID = `SELECT id, contact_id, street, city, province, postal_code, country
    FROM addresses
    WHERE contact_id = $1 AND id = $2;`

	updateAddress = `UPDATE addresses
    SET street = $1, city = $2, province = $3, postal_code = $4, country = $5
    WHERE contact_id = $6 AND id = $7;`

	deleteAddress = `DELETE FROM addresses
    WHERE contact_id = $1 AND id = $2;`

	listAddressesByContact = `SELECT id, contact_id, street, city, province, postal_code, country
    FROM addresses
    WHERE contact_id = $1
    ORDER BY id;`

	deleteAddressesByContact = `DELETE FROM addresses
    WHERE contact_id = $1;`
)

// ContactFilter describes one contact search: the mandatory owner plus the
// optional substring filters and the requested page window.
type ContactFilter struct {
	// Username scopes the search to one owner. Always required.
	Username string

	// Name, Email and Phone are optional case-insensitive substring
	// filters. An empty string disables the corresponding clause.
	// Name matches against first OR last name; the other two match their
	// own column. Active clauses are AND-ed together.
	Name  string
	Email string
	Phone string

	// Page is the zero-based page index; Size is the page size.
	Page int
	Size int
}

// searchPredicate builds the WHERE tree shared by the page query and the
// count query: owner equality AND-ed with every active optional clause.
func (f ContactFilter) searchPredicate() sq.And {
	pred := sq.And{sq.Eq{"username": f.Username}}

	if f.Name != "" {
		pattern := "%" + f.Name + "%"
		pred = append(pred, sq.Or{
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
		})
	}

	if f.Email != "" {
		pred = append(pred, sq.ILike{"email": "%" + f.Email + "%"})
	}

	if f.Phone != "" {
		pred = append(pred, sq.ILike{"phone": "%" + f.Phone + "%"})
	}

	return pred
}

// buildSearchContactsQuery composes the paged SELECT for a contact search.
// Ordering by id keeps repeated searches over unchanged data stable across
// pages.
func buildSearchContactsQuery(filter ContactFilter) (string, []any, error) {
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("id", "username", "first_name", "last_name", "phone", "email").
		From("contacts").
		Where(filter.searchPredicate()).
		OrderBy("id").
		Limit(uint64(filter.Size)).
		Offset(uint64(filter.Page * filter.Size)).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildCountContactsQuery composes the COUNT(*) companion of
// [buildSearchContactsQuery]. It shares the same WHERE tree so the total
// always describes the same result set as the returned page.
func buildCountContactsQuery(filter ContactFilter) (string, []any, error) {
	query, args, err := sq.StatementBuilder.
		PlaceholderFormat(sq.Dollar).
		Select("COUNT(*)").
		From("contacts").
		Where(filter.searchPredicate()).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
