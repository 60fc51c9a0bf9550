package service

import "errors"

// Sentinel errors of the service layer. Their messages are the exact strings
// the HTTP layer places into the response envelope, so wording changes here
// are client-visible.
var (
	// ErrBadCredentials is returned by Login for unknown usernames and for
	// wrong passwords alike, so the response never reveals which half of the
	// credential pair was wrong.
	ErrBadCredentials = errors.New("username and password doesn't match")

	// ErrUnauthorized is returned by Authenticate for missing, unknown and
	// expired tokens.
	ErrUnauthorized = errors.New("unauthorized")
)
