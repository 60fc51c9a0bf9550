package validators

import "errors"

// ErrUnsupportedType is returned when Validate receives a value of a type it
// has no rules for. It signals a programming error, not bad client input.
var ErrUnsupportedType = errors.New("unsupported type for validation")

// ValidationError describes the first rule a request value violated.
//
// Its Error string has the fixed shape "<field>: <message>", which is exactly
// the text the HTTP layer places into the errors field of the response
// envelope. Callers detect it with errors.As.
type ValidationError struct {
	// Field is the JSON name of the offending field, e.g. "firstName".
	Field string

	// Message describes the violated rule, e.g. "must not be blank".
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}
