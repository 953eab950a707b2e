// Package server exposes the wealth panels as a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/etnz/wealth/selic"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// WebAPI is the HTTP server.
type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

// Config holds the settings of the server.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Currency        string
	CacheSize       int // number of ledgers kept decoded, 0 disables the cache
	Rates           selic.Fetcher
}

// NewWebAPI returns a server configured with config.
func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	h := NewHandler(config.Currency, config.Rates, config.CacheSize)

	router := chi.NewRouter()
	router.Use(Logger(&logger))
	router.Use(middleware.Recoverer)

	router.Get("/healthz", h.Health)
	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/stats", h.Stats)
		r.Post("/goal", h.Goal)
		r.Post("/institutions", h.Institutions)
		r.Post("/plan", h.Plan)
		r.Get("/selic", h.Selic)
	})

	if config.ShutdownTimeout == 0 {
		config.ShutdownTimeout = 10 * time.Second
	}
	return &WebAPI{
		router:          router,
		logger:          &logger,
		shutdownTimeout: config.ShutdownTimeout,
		server: &http.Server{
			Addr:              config.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			BaseContext:       func(net.Listener) context.Context { return logger.WithContext(context.Background()) },
		},
	}
}

// ServeHTTP serves the API.
func (w *WebAPI) ServeHTTP(rw http.ResponseWriter, req *http.Request) { w.router.ServeHTTP(rw, req) }

// Start listens and serves until ctx is done or the process is interrupted, then shuts down
// gracefully.
func (w *WebAPI) Start(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	serverErrors := make(chan error, 1)
	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-ctx.Done():
		w.logger.Info().Msg("shutdown initiated")
	}

	// Give outstanding requests a deadline for completion.
	sctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
	defer cancel()
	if err := w.server.Shutdown(sctx); err != nil {
		w.logger.Error().Err(err).Msg("graceful shutdown failed")
		return errors.Join(err, w.server.Close())
	}
	return nil
}
