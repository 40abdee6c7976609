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
	router.Use(middleware.Compress(5, "application/json"))

	router.Get("/healthz", h.health)
	router.Get("/api/version", h.getServerVersion)

	// routes guarded by a validation gate
	router.Group(func(r chi.Router) {
		r.With(h.withValidation(h.signUp)).Post("/api/users", h.signUpUser)
		r.With(h.withValidation(h.avatar)).Post("/api/users/avatar", h.uploadAvatar)
		r.With(h.withValidation(h.contact)).Post("/api/contact", h.sendContactMessage)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
