package models

// Session represents a single authenticated session. Sessions live in their
// own table keyed by token so that identity and session lifecycle stay
// decoupled: issuing or revoking a token never mutates the user row.
type Session struct {
	// Token is the opaque session identifier handed to the client.
	// It carries no embedded claims; validity is decided entirely by the
	// database lookup and the expiry check.
	Token string `json:"token"`

	// Username references the owning user account.
	Username string `json:"-"`

	// ExpiresAt is the expiry instant in epoch milliseconds.
	// A session is valid only while ExpiresAt is strictly greater than
	// the current time.
	ExpiresAt int64 `json:"expiredAt"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
