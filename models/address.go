package models

// Address is a postal address nested under a contact. Addresses are reachable
// only through their parent contact's ownership chain: user -> contact -> address.
type Address struct {
	// ID is the UUID string assigned at creation time.
	ID string `json:"id"`

	// ContactID references the parent contact.
	ContactID string `json:"-"`

	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// TableName returns the name of the database table
// associated with the Address model.
func (a Address) TableName() string {
	return "addresses"
}
