package models

// RegisterUserRequest is the body of POST /api/users.
type RegisterUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginUserRequest is the body of POST /api/auth/login.
type LoginUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// UpdateUserRequest is the body of PATCH /api/users/current.
//
// Fields are pointers to make PATCH semantics explicit: a nil field was
// absent from the request and leaves the stored value untouched, a non-nil
// field overwrites it.
type UpdateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// CreateContactRequest is the body of POST /api/contacts.
type CreateContactRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// UpdateContactRequest is the body of PUT /api/contacts/{contactId}.
// Same nil-means-absent rule as [UpdateUserRequest], uniformly for all
// four mutable fields.
type UpdateContactRequest struct {
	// ID is taken from the URL path, never from the body.
	ID string `json:"-"`

	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	Phone     *string `json:"phone"`
	Email     *string `json:"email"`
}

// SearchContactRequest carries the query parameters of GET /api/contacts.
// An empty filter string means "no filter on that column".
type SearchContactRequest struct {
	// Name matches case-insensitively against first OR last name.
	Name string

	// Email matches case-insensitively against the email column.
	Email string

	// Phone matches case-insensitively against the phone column.
	Phone string

	// Page is the zero-based page index.
	Page int

	// Size is the page size.
	Size int
}

// CreateAddressRequest is the body of POST /api/contacts/{contactId}/addresses.
type CreateAddressRequest struct {
	// ContactID is taken from the URL path, never from the body.
	ContactID string `json:"-"`

	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// UpdateAddressRequest is the body of
// PUT /api/contacts/{contactId}/addresses/{addressId}.
//
// All fields follow the nil-means-absent rule except Country, which is a
// plain string and is written unconditionally: an absent country clears the
// stored value. The asymmetry is deliberate and mirrors the documented
// behaviour of the address update operation.
type UpdateAddressRequest struct {
	// ContactID and AddressID are taken from the URL path, never from the body.
	ContactID string `json:"-"`
	AddressID string `json:"-"`

	Street     *string `json:"street"`
	City       *string `json:"city"`
	Province   *string `json:"province"`
	PostalCode *string `json:"postalCode"`
	Country    string  `json:"country"`
}
