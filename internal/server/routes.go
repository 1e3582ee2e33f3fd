package server

import (
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"bizfinder/internal/finder"
	"bizfinder/internal/handlers"
	"bizfinder/internal/handlers/api"
)

// RegisterRoutes registers all application routes. The HTML and JSON search
// handlers share state so only one action runs at a time.
func (s *Server) RegisterRoutes(svc *finder.Service, state *handlers.State) {
	searchHandler := handlers.NewSearchHandler(svc, state, s.Cfg)
	apiSearchHandler := api.NewSearchHandler(svc, state, s.Cfg)
	probeHandler := handlers.NewProbeHandler(svc.Store())

	// Probes and metrics
	s.App.Get("/healthz", probeHandler.Liveness)
	s.App.Get("/readyz", probeHandler.Readiness)
	s.App.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Frontend routes
	s.App.Get("/", searchHandler.Index)
	s.App.Post("/search", searchHandler.Search)
	s.App.Get("/results/:id/details", searchHandler.Details)
	s.App.Get("/results/:id/export", searchHandler.Export)

	// JSON API
	s.App.Post("/api/search", apiSearchHandler.Search)
}
