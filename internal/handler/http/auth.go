package http

import (
	"encoding/json"
	"net/http"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/service"
	"github.com/amevide998/contact-management/internal/utils"
	"github.com/amevide998/contact-management/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.LoginUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	token, err := h.services.AuthService.Login(ctx, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("username", request.Username).Msg("user successfully logged in")

	utils.WriteJSON(w, models.WebResponse{Data: token}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, user); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebResponse{Data: "Ok"}, http.StatusOK)
}
