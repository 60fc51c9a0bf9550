package http

import "errors"

// Sentinel errors produced by the HTTP layer itself, before a request ever
// reaches a service. Their messages are client-visible.
var (
	// ErrInvalidJSONBody is reported when a request body cannot be decoded.
	ErrInvalidJSONBody = errors.New("invalid request body")

	// ErrInvalidQueryParam is reported when a numeric query parameter does
	// not parse.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
