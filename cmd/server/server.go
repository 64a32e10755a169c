// cmd/server/server.go
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	"github.com/hightidestudios/website/internal/api"
	"github.com/hightidestudios/website/internal/api/admin"
	"github.com/hightidestudios/website/internal/api/bookingform"
	"github.com/hightidestudios/website/internal/api/pages"
	"github.com/hightidestudios/website/internal/availability"
	"github.com/hightidestudios/website/internal/booking"
	"github.com/hightidestudios/website/internal/catalog"
	"github.com/hightidestudios/website/internal/config"
	"github.com/hightidestudios/website/internal/db"
)

func newServer(
	cfg *config.Config,
	cat *catalog.Catalog,
	sessions *booking.Store,
	relay booking.Relay,
	database *db.DB,
	blocked *availability.Store,
) *http.Server {
	router := http.NewServeMux()

	// Setup middleware chain
	middleware := []api.Middleware{
		api.WithLogging,
		api.WithRecovery,
		api.WithRequestID,
		api.WithContentType,
	}
	if cfg.Features.EnableMetrics {
		middleware = append([]api.Middleware{api.WithMetrics}, middleware...)
	}
	handler := api.ChainMiddleware(router, middleware...)

	registerRoutes(router, cfg, cat, sessions, relay, database, blocked)

	return &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func registerRoutes(
	mux *http.ServeMux,
	cfg *config.Config,
	cat *catalog.Catalog,
	sessions *booking.Store,
	relay booking.Relay,
	database *db.DB,
	blocked *availability.Store,
) {
	pageHandlers := pages.New(cat, cfg.Studio)
	mux.HandleFunc("/", pageHandlers.HandleHome)
	mux.HandleFunc("/packages", pageHandlers.HandlePackages)
	mux.HandleFunc("/contact", pageHandlers.HandleContact)
	mux.HandleFunc("/privacy", pageHandlers.HandlePrivacy)

	// Health check
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Booking routes
	bookingHandlers := bookingform.New(sessions, cat, relay, database.Queries, cfg.Studio)
	mux.HandleFunc("/book", bookingHandlers.HandleBookingPage)
	mux.HandleFunc("/api/v1/booking/toggle", bookingHandlers.HandleToggleDate)
	mux.HandleFunc("/api/v1/booking/remove", bookingHandlers.HandleRemoveDate)
	mux.HandleFunc("/api/v1/booking/month", bookingHandlers.HandleShiftMonth)
	mux.HandleFunc("/api/v1/booking/submit", bookingHandlers.HandleSubmit)

	// Admin routes, only when a passphrase hash is configured
	adminHandlers := admin.New(blocked, cfg.AdminPassphraseHash)
	if adminHandlers.Enabled() {
		mux.HandleFunc("/api/v1/admin/blocked-dates", adminHandlers.HandleBlockedDates)
	} else {
		log.Warn().Msg("Admin passphrase hash not set; blocked-dates endpoints disabled")
	}

	if cfg.Features.EnableMetrics {
		mux.Handle("/metrics", promhttp.Handler())
	}

	// Static file handling with logging and environment awareness
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "static"
	}
	fs := http.FileServer(http.Dir(staticDir))

	mux.Handle("/static/", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Debug().
			Str("path", r.URL.Path).
			Str("static_dir", staticDir).
			Msg("Static file request")
		http.StripPrefix("/static/", fs).ServeHTTP(w, r)
	}))
}
