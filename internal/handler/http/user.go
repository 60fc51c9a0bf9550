package http

import (
	"encoding/json"
	"net/http"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/service"
	"github.com/amevide998/contact-management/internal/utils"
	"github.com/amevide998/contact-management/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.RegisterUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	if err := h.services.UserService.Register(ctx, request); err != nil {
		h.writeError(w, r, err)
		return
	}

	log.Debug().Str("username", request.Username).Msg("user successfully registered")

	utils.WriteJSON(w, models.WebResponse{Data: "Ok"}, http.StatusOK)
}

func (h *Handler) currentUser(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	utils.WriteJSON(w, models.WebResponse{Data: h.services.UserService.Current(user)}, http.StatusOK)
}

func (h *Handler) updateCurrentUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	var request models.UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	response, err := h.services.UserService.Update(ctx, user, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebResponse{Data: response}, http.StatusOK)
}
