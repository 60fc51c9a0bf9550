package http

import (
	"context"
	"net/http"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/service"
	"github.com/amevide998/contact-management/internal/utils"
)

// tokenHeader is the request header carrying the session token.
const tokenHeader = "X-API-TOKEN"

// auth is an HTTP middleware that enforces token-based authentication.
//
// It reads the X-API-TOKEN header, resolves it to a user via
// [service.AuthService.Authenticate], and — on success — stores the
// authenticated user in the request context under [utils.UserCtxKey] before
// delegating to the next handler.
//
// Every failure mode (absent header, unknown token, expired session) is
// rejected with HTTP 401 and the "unauthorized" failure envelope; the
// response never says which check failed.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)
		ctx := r.Context()

		token := r.Header.Get(tokenHeader)

		user, err := h.services.AuthService.Authenticate(ctx, token)
		if err != nil {
			log.Info().Err(err).Str("uri", r.RequestURI).Msg("rejected unauthenticated request")
			h.writeError(w, r, service.ErrUnauthorized)
			return
		}

		// Store the resolved user in the context so that downstream handlers
		// can retrieve it without a second lookup.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
