package models

// Contact is a single entry in a user's contact book. Every contact is owned
// by exactly one user and all lookups are scoped by that owner.
type Contact struct {
	// ID is the UUID string assigned at creation time.
	ID string `json:"id"`

	// Username is the owning user. Repository lookups always filter by
	// (username, id) so that a foreign contact is indistinguishable from
	// a missing one.
	Username string `json:"-"`

	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
}

// TableName returns the name of the database table
// associated with the Contact model.
func (c Contact) TableName() string {
	return "contacts"
}
