package httpapi

import (
	"github.com/go-chi/chi/v5"

	"wallmagic/internal/server/metrics"
)

// routes builds the router. Recovery sits inside the observer so that a
// panic turned into a 500 is still logged and counted.
func (s *HTTPServer) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(s.corsMiddleware)
	r.Use(s.observeMiddleware)
	r.Use(s.recoveryMiddleware)

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Handle("/metrics", metrics.Handler(s.gatherer))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/register", s.handleRegister)
		r.Post("/login", s.handleLogin)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)
			r.Get("/me", s.handleMe)
		})
	})

	return r
}
