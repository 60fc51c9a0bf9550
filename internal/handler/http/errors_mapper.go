package http

import (
	"errors"
	"net/http"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/service"
	"github.com/amevide998/contact-management/internal/store"
	"github.com/amevide998/contact-management/internal/utils"
	"github.com/amevide998/contact-management/internal/validators"
	"github.com/amevide998/contact-management/models"
)

var errorStatusMap = map[error]int{
	service.ErrBadCredentials: http.StatusUnauthorized,
	service.ErrUnauthorized:   http.StatusUnauthorized,

	// a duplicate username is reported as a plain bad request, not a conflict
	store.ErrUsernameTaken: http.StatusBadRequest,

	store.ErrUserNotFound:    http.StatusNotFound,
	store.ErrContactNotFound: http.StatusNotFound,
	store.ErrAddressNotFound: http.StatusNotFound,
	store.ErrSessionNotFound: http.StatusUnauthorized,

	ErrInvalidJSONBody:   http.StatusBadRequest,
	ErrInvalidQueryParam: http.StatusBadRequest,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
	store.ErrScanningRows:         http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and writes the failure envelope.
// Internal errors keep their detail out of the response body; everything
// else ships the error text verbatim, since sentinel messages and
// validation messages are written to be client-facing.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		log.Err(err).Msg("request failed with internal error")
		message = "internal server error"
	}

	// sentinel wrapping may prefix the client-facing text; unwrap to the
	// mapped sentinel so the body carries only its message
	for target := range errorStatusMap {
		if errors.Is(err, target) && status != http.StatusInternalServerError {
			message = target.Error()
			break
		}
	}
	var vErr *validators.ValidationError
	if errors.As(err, &vErr) {
		message = vErr.Error()
	}

	utils.WriteJSON(w, models.WebResponse{Errors: message}, status)
}
