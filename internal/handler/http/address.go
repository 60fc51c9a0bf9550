package http

import (
	"encoding/json"
	"net/http"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/service"
	"github.com/amevide998/contact-management/internal/utils"
	"github.com/amevide998/contact-management/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	var request models.CreateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}
	request.ContactID = chi.URLParam(r, "contactId")

	response, err := h.services.AddressService.Create(ctx, user, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebResponse{Data: response}, http.StatusOK)
}

func (h *Handler) getAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	response, err := h.services.AddressService.Get(ctx, user, chi.URLParam(r, "contactId"), chi.URLParam(r, "addressId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebResponse{Data: response}, http.StatusOK)
}

func (h *Handler) updateAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	var request models.UpdateAddressRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}
	request.ContactID = chi.URLParam(r, "contactId")
	request.AddressID = chi.URLParam(r, "addressId")

	response, err := h.services.AddressService.Update(ctx, user, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebResponse{Data: response}, http.StatusOK)
}

func (h *Handler) deleteAddress(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	err := h.services.AddressService.Delete(ctx, user, chi.URLParam(r, "contactId"), chi.URLParam(r, "addressId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebResponse{Data: "Ok"}, http.StatusOK)
}

func (h *Handler) listAddresses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	responses, err := h.services.AddressService.List(ctx, user, chi.URLParam(r, "contactId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebResponse{Data: responses}, http.StatusOK)
}
