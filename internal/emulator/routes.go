package emulator

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the chi router of the emulator.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// identity toolkit and secure token service
	router.Group(func(r chi.Router) {
		r.Use(h.withAPIKey)

		r.Post("/v1/accounts:signUp", h.signUp)
		r.Post("/v1/accounts:signInWithPassword", h.signInWithPassword)
		r.Post("/v1/accounts:sendOobCode", h.sendOobCode)
		r.Post("/v1/accounts:lookup", h.lookup)
		r.Post("/v1/accounts:delete", h.deleteAccount)
		r.Post("/v1/accounts:update", h.updateAccount)
		r.Post("/v1/accounts:resetPassword", h.resetPassword)
		r.Post("/v1/token", h.token)
	})

	router.Get("/emulator/v1/oobCodes", h.listOobCodes)

	// realtime database
	router.Group(func(r chi.Router) {
		r.Use(h.withDatabaseAuth)

		r.Get("/*", h.getData)
		r.Put("/*", h.putData)
		r.Patch("/*", h.patchData)
		r.Delete("/*", h.deleteData)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.methodNotAllowed)

	return router
}
