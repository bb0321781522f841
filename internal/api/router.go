// Package api wires the HTTP surface of the application.
package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/whatiftr/whatif-backend/internal/api/handlers"
	"github.com/whatiftr/whatif-backend/internal/api/middleware"
)

// Handlers bundles everything the router needs.
type Handlers struct {
	Simulation *handlers.SimulationHandler
	Data       *handlers.DataHandler
	System     *handlers.SystemHandler
}

// NewRouter builds the chi router with middleware and all routes mounted.
func NewRouter(h Handlers, allowedOrigins []string) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORS(allowedOrigins).Handler)

	r.Route("/api", func(r chi.Router) {
		r.Route("/simulation", func(r chi.Router) {
			r.Post("/run", h.Simulation.Run)
			r.Post("/time-series", h.Simulation.TimeSeries)
			r.Get("/examples", h.Simulation.Examples)
		})

		r.Route("/data", func(r chi.Router) {
			r.Get("/assets", h.Data.Assets)
			r.Get("/prices/{date}", h.Data.Prices)
			r.Get("/inflation/{year}", h.Data.Inflation)
			r.Get("/date-range", h.Data.DateRange)
			r.Post("/validate", h.Data.Validate)
		})

		r.Route("/system", func(r chi.Router) {
			r.Get("/health", h.System.Health)
			r.Get("/version", h.System.Version)
			r.Put("/evds-key", h.System.UpdateEVDSKey)
		})
	})

	return r
}
