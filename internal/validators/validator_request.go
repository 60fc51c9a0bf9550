package validators

import (
	"context"
	"net/mail"
	"strconv"
	"strings"

	"github.com/amevide998/contact-management/models"
)

// Rule bounds shared by the request validators. Street lines run longer than
// the other free-text fields, so they get a wider cap.
const (
	maxFieldLength  = 100
	maxStreetLength = 200
)

// RequestValidator implements the Validator interface for every inbound
// request model of the API: registration, login, user update, contact
// create/update/search and address create/update.
//
// It supports both value and pointer receivers for every model type. Rules
// are checked in declaration order and validation stops at the first
// violation, so the caller always receives a single "<field>: <message>"
// error.
type RequestValidator struct {
}

// NewRequestValidator constructs a new RequestValidator
// and returns it as the Validator interface.
func NewRequestValidator() Validator {
	return &RequestValidator{}
}

// Validate dispatches validation to the appropriate type-specific method
// based on the dynamic type of obj. Both value and pointer forms of each
// supported model are accepted.
//
// Returns ErrUnsupportedType if obj does not match any known model.
func (v *RequestValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.RegisterUserRequest:
		return v.validateRegisterUser(ctx, value)
	case *models.RegisterUserRequest:
		return v.validateRegisterUser(ctx, *value)

	case models.LoginUserRequest:
		return v.validateLoginUser(ctx, value)
	case *models.LoginUserRequest:
		return v.validateLoginUser(ctx, *value)

	case models.UpdateUserRequest:
		return v.validateUpdateUser(ctx, value)
	case *models.UpdateUserRequest:
		return v.validateUpdateUser(ctx, *value)

	case models.CreateContactRequest:
		return v.validateCreateContact(ctx, value)
	case *models.CreateContactRequest:
		return v.validateCreateContact(ctx, *value)

	case models.UpdateContactRequest:
		return v.validateUpdateContact(ctx, value)
	case *models.UpdateContactRequest:
		return v.validateUpdateContact(ctx, *value)

	case models.SearchContactRequest:
		return v.validateSearchContact(ctx, value)
	case *models.SearchContactRequest:
		return v.validateSearchContact(ctx, *value)

	case models.CreateAddressRequest:
		return v.validateCreateAddress(ctx, value)
	case *models.CreateAddressRequest:
		return v.validateCreateAddress(ctx, *value)

	case models.UpdateAddressRequest:
		return v.validateUpdateAddress(ctx, value)
	case *models.UpdateAddressRequest:
		return v.validateUpdateAddress(ctx, *value)

	default:
		return ErrUnsupportedType
	}
}

func notBlank(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: "must not be blank"}
	}
	return nil
}

func maxLength(field, value string, limit int) error {
	if len(value) > limit {
		return &ValidationError{Field: field, Message: "must not exceed " + strconv.Itoa(limit) + " characters"}
	}
	return nil
}

// wellFormedEmail accepts the empty string: optional email fields are only
// checked for shape once supplied.
func wellFormedEmail(field, value string) error {
	if value == "" {
		return nil
	}
	if _, err := mail.ParseAddress(value); err != nil {
		return &ValidationError{Field: field, Message: "must be a well-formed email address"}
	}
	return nil
}

func (v *RequestValidator) validateRegisterUser(_ context.Context, request models.RegisterUserRequest) error {
	if err := notBlank("username", request.Username); err != nil {
		return err
	}
	if err := maxLength("username", request.Username, maxFieldLength); err != nil {
		return err
	}
	if err := notBlank("password", request.Password); err != nil {
		return err
	}
	if err := maxLength("password", request.Password, maxFieldLength); err != nil {
		return err
	}
	if err := notBlank("name", request.Name); err != nil {
		return err
	}
	return maxLength("name", request.Name, maxFieldLength)
}

func (v *RequestValidator) validateLoginUser(_ context.Context, request models.LoginUserRequest) error {
	if err := notBlank("username", request.Username); err != nil {
		return err
	}
	if err := maxLength("username", request.Username, maxFieldLength); err != nil {
		return err
	}
	if err := notBlank("password", request.Password); err != nil {
		return err
	}
	return maxLength("password", request.Password, maxFieldLength)
}

func (v *RequestValidator) validateUpdateUser(_ context.Context, request models.UpdateUserRequest) error {
	if request.Name != nil {
		if err := notBlank("name", *request.Name); err != nil {
			return err
		}
		if err := maxLength("name", *request.Name, maxFieldLength); err != nil {
			return err
		}
	}
	if request.Password != nil {
		if err := notBlank("password", *request.Password); err != nil {
			return err
		}
		if err := maxLength("password", *request.Password, maxFieldLength); err != nil {
			return err
		}
	}
	return nil
}

func (v *RequestValidator) validateCreateContact(_ context.Context, request models.CreateContactRequest) error {
	if err := notBlank("firstName", request.FirstName); err != nil {
		return err
	}
	if err := maxLength("firstName", request.FirstName, maxFieldLength); err != nil {
		return err
	}
	if err := maxLength("lastName", request.LastName, maxFieldLength); err != nil {
		return err
	}
	if err := maxLength("phone", request.Phone, maxFieldLength); err != nil {
		return err
	}
	if err := maxLength("email", request.Email, maxFieldLength); err != nil {
		return err
	}
	return wellFormedEmail("email", request.Email)
}

func (v *RequestValidator) validateUpdateContact(_ context.Context, request models.UpdateContactRequest) error {
	if request.FirstName != nil {
		if err := notBlank("firstName", *request.FirstName); err != nil {
			return err
		}
		if err := maxLength("firstName", *request.FirstName, maxFieldLength); err != nil {
			return err
		}
	}
	if request.LastName != nil {
		if err := maxLength("lastName", *request.LastName, maxFieldLength); err != nil {
			return err
		}
	}
	if request.Phone != nil {
		if err := maxLength("phone", *request.Phone, maxFieldLength); err != nil {
			return err
		}
	}
	if request.Email != nil {
		if err := maxLength("email", *request.Email, maxFieldLength); err != nil {
			return err
		}
		return wellFormedEmail("email", *request.Email)
	}
	return nil
}

func (v *RequestValidator) validateSearchContact(_ context.Context, request models.SearchContactRequest) error {
	if request.Page < 0 {
		return &ValidationError{Field: "page", Message: "must not be negative"}
	}
	if request.Size < 1 {
		return &ValidationError{Field: "size", Message: "must be positive"}
	}
	return nil
}

func (v *RequestValidator) validateCreateAddress(_ context.Context, request models.CreateAddressRequest) error {
	if err := maxLength("street", request.Street, maxStreetLength); err != nil {
		return err
	}
	if err := maxLength("city", request.City, maxFieldLength); err != nil {
		return err
	}
	if err := maxLength("province", request.Province, maxFieldLength); err != nil {
		return err
	}
	if err := maxLength("postalCode", request.PostalCode, maxFieldLength); err != nil {
		return err
	}
	return maxLength("country", request.Country, maxFieldLength)
}

func (v *RequestValidator) validateUpdateAddress(_ context.Context, request models.UpdateAddressRequest) error {
	if request.Street != nil {
		if err := maxLength("street", *request.Street, maxStreetLength); err != nil {
			return err
		}
	}
	if request.City != nil {
		if err := maxLength("city", *request.City, maxFieldLength); err != nil {
			return err
		}
	}
	if request.Province != nil {
		if err := maxLength("province", *request.Province, maxFieldLength); err != nil {
			return err
		}
	}
	if request.PostalCode != nil {
		if err := maxLength("postalCode", *request.PostalCode, maxFieldLength); err != nil {
			return err
		}
	}
	return maxLength("country", request.Country, maxFieldLength)
}
