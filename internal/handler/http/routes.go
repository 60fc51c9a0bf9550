package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/users", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind the X-API-TOKEN check
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Delete("/api/auth/logout", h.logout)

		r.Get("/api/users/current", h.currentUser)
		r.Patch("/api/users/current", h.updateCurrentUser)

		r.Route("/api/contacts", func(r chi.Router) {
			r.Post("/", h.createContact)
			r.Get("/", h.searchContacts)

			r.Route("/{contactId}", func(r chi.Router) {
				r.Get("/", h.getContact)
				r.Put("/", h.updateContact)
				r.Delete("/", h.deleteContact)

				r.Route("/addresses", func(r chi.Router) {
					r.Post("/", h.createAddress)
					r.Get("/", h.listAddresses)

					r.Get("/{addressId}", h.getAddress)
					r.Put("/{addressId}", h.updateAddress)
					r.Delete("/{addressId}", h.deleteAddress)
				})
			})
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
