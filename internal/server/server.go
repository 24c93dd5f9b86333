// Package server provides the mock shop API used by `larek serve` and the
// integration tests: the product-list endpoint and the order endpoint, both
// shaped exactly like the remote service the storefront talks to.
package server

import (
	"context"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/weblarek/weblarek/pkg/errors"
	"github.com/weblarek/weblarek/pkg/logging"
	"github.com/weblarek/weblarek/pkg/shop"
)

// Server holds the mock shop API state.
type Server struct {
	config  Config
	logger  *zerolog.Logger
	catalog []shop.Product
	httpSrv *http.Server
}

// New creates a server with the given configuration, loading the catalog
// eagerly so a bad catalog file fails at startup, not on first request.
func New(cfg Config, logger *zerolog.Logger) (*Server, error) {
	if logger == nil {
		logger = logging.Default()
	}

	catalog, err := loadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, errors.WrapResource("load", "catalog", cfg.CatalogPath, err)
	}
	logger.Info().Int("products", len(catalog)).Msg("Catalog loaded")

	s := &Server{
		config:  cfg,
		logger:  logger,
		catalog: catalog,
	}
	s.httpSrv = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s, nil
}

// Handler returns the routed and middleware-wrapped handler. Exposed so
// tests can drive the server through httptest without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/product/", s.handleListProducts)
	mux.HandleFunc("/api/order", s.handleSubmitOrder)
	mux.HandleFunc("/health", s.handleHealth)

	return chain(
		recovery(s.logger),
		requestLogger(s.logger),
	)(mux)
}

// ListenAndServe runs the server until the context is cancelled or the
// listener fails.
func (s *Server) ListenAndServe(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.config.Addr).Msg("Shop API listening")
		errCh <- s.httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		return s.Shutdown(context.Background())
	case err := <-errCh:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	}
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
