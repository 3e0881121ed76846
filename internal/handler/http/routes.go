package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init wires the REST surface. Every collection and item route is
// registered with and without a trailing slash so existing clients of both
// forms keep working.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/", h.status)

	router.Put("/users", h.addUser)
	router.Put("/users/", h.addUser)
	router.Get("/users", h.listUsers)
	router.Get("/users/", h.listUsers)

	router.Get("/user/{username}", h.getUser)
	router.Get("/user/{username}/", h.getUser)
	router.Put("/user/{username}", h.updateUser)
	router.Put("/user/{username}/", h.updateUser)
	router.Delete("/user/{username}", h.removeUser)
	router.Delete("/user/{username}/", h.removeUser)

	router.Post("/access/auth/{username}", h.authenticate)
	router.Post("/access/auth/{username}/", h.authenticate)

	router.Get("/usiverse/dump", h.dumpUsers)
	router.Get("/usiverse/dump/", h.dumpUsers)
	router.Post("/usiverse/load", h.loadUsers)
	router.Post("/usiverse/load/", h.loadUsers)

	return router
}
