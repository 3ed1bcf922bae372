package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"github.com/hyblock/hyblock-backend/internal/clients/xrplclient"
	"github.com/hyblock/hyblock-backend/internal/config"
	"github.com/hyblock/hyblock-backend/internal/db"
	"github.com/hyblock/hyblock-backend/internal/observability/tracing"
	"github.com/hyblock/hyblock-backend/internal/services"
)

const (
	requestReadTimeout  = 15 * time.Second
	requestWriteTimeout = 60 * time.Second
	requestIdleTimeout  = 90 * time.Second
)

type Server struct {
	cfg      *config.Config
	service  *services.Service
	xrpl     xrplclient.XrplInterface
	db       db.DbInterface
	validate *validator.Validate
	router   *chi.Mux
}

func New(
	cfg *config.Config,
	service *services.Service,
	xrpl xrplclient.XrplInterface,
	database db.DbInterface,
) *Server {
	s := &Server{
		cfg:      cfg,
		service:  service,
		xrpl:     xrpl,
		db:       database,
		validate: validator.New(),
	}

	router := chi.NewRouter()
	router.Use(tracing.Middleware)
	router.Get("/healthcheck", s.handleHealthcheck)
	router.Get("/get-nfts-list/{wallet_address}", s.handleGetNftsList)
	router.Get("/get-nft-data/{nft_token}", s.handleGetNftData)
	router.Get("/get-nfts/{wallet_address}", s.handleGetNfts)
	router.Post("/resolve_bet", s.handleResolveBet)
	s.router = router

	return s
}

// Router exposes the chi mux, mainly for handler tests.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start blocks serving the public API until the context is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf("%s:%d", s.cfg.API.Host, s.cfg.API.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  requestReadTimeout,
		WriteTimeout: requestWriteTimeout,
		IdleTimeout:  requestIdleTimeout,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("error shutting down api server")
		}
	}()

	log.Info().Msgf("Starting api server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("api server failed: %w", err)
	}

	return nil
}
