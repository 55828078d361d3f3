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

	router.Route("/api/v1/auth", func(r chi.Router) {
		// routes without authorization
		r.Post("/signup", h.signup)
		r.Post("/login", h.loginSession)
		r.Post("/login-jwt", h.loginBearer)
		r.Get("/verification", h.confirmVerification)
		r.Post("/logout-jwt", h.logoutBearer)

		// session logout needs the authenticated caller to locate its row
		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/logout", h.logoutSession)
		})
	})

	router.Route("/api/v1/users", func(r chi.Router) {
		// public profile preload
		r.Post("/preload", h.preloadUser)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/me", h.me)
			r.Patch("/me", h.updateProfile)
			r.Delete("/me", h.deactivate)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
