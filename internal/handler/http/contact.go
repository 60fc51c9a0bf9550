package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/amevide998/contact-management/internal/logger"
	"github.com/amevide998/contact-management/internal/service"
	"github.com/amevide998/contact-management/internal/utils"
	"github.com/amevide998/contact-management/models"
	"github.com/go-chi/chi/v5"
)

// Search pagination defaults applied when the query omits the parameters.
const (
	defaultPage = 0
	defaultSize = 10
)

func (h *Handler) createContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	var request models.CreateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}

	response, err := h.services.ContactService.Create(ctx, user, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebResponse{Data: response}, http.StatusOK)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	response, err := h.services.ContactService.Get(ctx, user, chi.URLParam(r, "contactId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebResponse{Data: response}, http.StatusOK)
}

func (h *Handler) updateContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	var request models.UpdateContactRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		h.writeError(w, r, ErrInvalidJSONBody)
		return
	}
	request.ID = chi.URLParam(r, "contactId")

	response, err := h.services.ContactService.Update(ctx, user, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebResponse{Data: response}, http.StatusOK)
}

func (h *Handler) deleteContact(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	if err := h.services.ContactService.Delete(ctx, user, chi.URLParam(r, "contactId")); err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebResponse{Data: "Ok"}, http.StatusOK)
}

func (h *Handler) searchContacts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		h.writeError(w, r, service.ErrUnauthorized)
		return
	}

	request, err := searchRequestFromQuery(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	page, err := h.services.ContactService.Search(ctx, user, request)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.WebResponse{
		Data: page.Contacts,
		Paging: &models.PagingResponse{
			CurrentPage: page.Page,
			TotalPages:  page.TotalPages,
			Size:        page.Size,
		},
	}, http.StatusOK)
}

// searchRequestFromQuery reads the optional search filters and the page
// window from the URL query. Omitted numbers fall back to the defaults;
// malformed numbers are a client error.
func searchRequestFromQuery(r *http.Request) (models.SearchContactRequest, error) {
	query := r.URL.Query()

	request := models.SearchContactRequest{
		Name:  query.Get("name"),
		Email: query.Get("email"),
		Phone: query.Get("phone"),
		Page:  defaultPage,
		Size:  defaultSize,
	}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			return models.SearchContactRequest{}, ErrInvalidQueryParam
		}
		request.Page = page
	}

	if raw := query.Get("size"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return models.SearchContactRequest{}, ErrInvalidQueryParam
		}
		request.Size = size
	}

	return request, nil
}
