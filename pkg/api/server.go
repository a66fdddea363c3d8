// Package api provides the verstamp REST API: publishing, fetching, and
// decoding version stamps over HTTP with API-key authentication and
// Prometheus metrics.
package api

import (
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the chi router for the given server. Split from
// StartServer so tests can drive the full middleware stack without a
// listening socket.
func NewRouter(server *Server, config ServerConfig, metrics *Metrics) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.InstrumentAuthMiddleware(requireAPIKey(config.APIKey)))

		// Health check
		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		// Stamp registry operations
		r.Put("/stamps/{product}", metrics.InstrumentHandler("PUT", "/api/v1/stamps/{product}", server.handlePublish))
		r.Get("/stamps/{product}", metrics.InstrumentHandler("GET", "/api/v1/stamps/{product}", server.handleLatest))
		r.Get("/stamps/{product}/history", metrics.InstrumentHandler("GET", "/api/v1/stamps/{product}/history", server.handleHistory))
		r.Delete("/stamps/{product}", metrics.InstrumentHandler("DELETE", "/api/v1/stamps/{product}", server.handleDelete))

		// Stateless decode of a raw stamp
		r.Post("/decode", metrics.InstrumentHandler("POST", "/api/v1/decode", server.handleDecode))
	})

	return r
}

// StartServer starts the HTTP server with all routes configured
func StartServer(reg StampRegistry, config ServerConfig) error {
	metrics := NewMetrics()
	server := NewServer(reg, config, metrics)
	r := NewRouter(server, config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	fmt.Printf("Starting verstamp REST API server on %s\n", addr)
	fmt.Printf("Metrics available at: http://%s/metrics\n", addr)
	log.Fatal(http.ListenAndServe(addr, r))

	return nil
}
