package api

import (
	"dispatch-simulation-service/internal/api/handlers"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(dispatcher handlers.Dispatcher, gatherer prometheus.Gatherer, logger zerolog.Logger) http.Handler {
	r := mux.NewRouter()

	pkgHandler := &handlers.PackageHandler{Dispatcher: dispatcher}
	truckHandler := &handlers.TruckHandler{Dispatcher: dispatcher}

	r.HandleFunc("/health", handlers.Health).Methods(http.MethodGet)
	r.HandleFunc("/packages", pkgHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/packages/{id}", pkgHandler.Get).Methods(http.MethodGet)
	r.HandleFunc("/trucks", truckHandler.List).Methods(http.MethodGet)
	if gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}

	r.NotFoundHandler = http.HandlerFunc(handlers.NotFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(handlers.MethodNotAllowed)

	return loggingMiddleware(logger, r)
}
