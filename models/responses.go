package models

// WebResponse is the uniform envelope applied to every HTTP response.
//
// Exactly one of Data and Errors is populated: success responses carry Data
// and omit Errors, failure responses carry Errors and omit Data. Paging is
// attached only by the contact search operation.
type WebResponse struct {
	Data   any    `json:"data,omitempty"`
	Errors string `json:"errors,omitempty"`

	// Paging carries pagination metadata for list responses.
	Paging *PagingResponse `json:"pagingResponse,omitempty"`
}

// PagingResponse describes the position of a page within the full result set.
type PagingResponse struct {
	// CurrentPage is the zero-based index of the returned page.
	CurrentPage int `json:"currentPage"`

	// TotalPages is the number of pages the full result set spans.
	TotalPages int `json:"totalPages"`

	// Size is the requested page size, not the number of rows returned.
	Size int `json:"size"`
}

// TokenResponse is the payload of a successful login.
type TokenResponse struct {
	Token string `json:"token"`

	// ExpiredAt is the token expiry instant in epoch milliseconds.
	ExpiredAt int64 `json:"expiredAt"`
}

// UserResponse is the public projection of a user account.
type UserResponse struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// ContactResponse is the public projection of a contact.
type ContactResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
}

// AddressResponse is the public projection of an address.
type AddressResponse struct {
	ID         string `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// ContactPage is the service-level result of a contact search: one page of
// mapped contacts plus the totals needed to build a PagingResponse.
type ContactPage struct {
	Contacts      []ContactResponse
	TotalElements int64
	TotalPages    int
	Page          int
	Size          int
}
