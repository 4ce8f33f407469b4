// Package studykeepservice boots the HTTP service.
package studykeepservice

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/studykeep/studykeep/internal/api"
	"github.com/studykeep/studykeep/internal/config"
	"github.com/studykeep/studykeep/internal/ident"
	"github.com/studykeep/studykeep/internal/kv"
	kvmemory "github.com/studykeep/studykeep/internal/kv/memory"
	kvpostgres "github.com/studykeep/studykeep/internal/kv/postgres"
	kvsqlite "github.com/studykeep/studykeep/internal/kv/sqlite"
	"github.com/studykeep/studykeep/internal/logger"
	"github.com/studykeep/studykeep/internal/persist"
	"github.com/studykeep/studykeep/internal/quote"
	"github.com/studykeep/studykeep/internal/services"
	"github.com/studykeep/studykeep/internal/store"
	"github.com/studykeep/studykeep/internal/view"
)

// Run starts the studykeep HTTP server and blocks until shutdown or
// error.
func Run() error {
	log := logger.New("studykeep-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("failed to load configuration")
		return err
	}

	log.Info().
		Str("store_driver", cfg.StoreDriver).
		Int("http_port", cfg.HTTPPort).
		Bool("quote_enabled", cfg.QuoteEnabled).
		Msg("studykeep service starting")

	// Cancellable root context bound to SIGINT/SIGTERM.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	provider, err := newProvider(cfg)
	if err != nil {
		log.Error().Stack().Err(err).Msg("snapshot provider unavailable")
		return err
	}
	defer func() { _ = provider.Close() }()

	// Topic store: load once at startup, save after every mutation.
	topicStore := store.New(ident.New(), persist.NewBridge(provider, log), log)
	topicStore.Load(ctx)
	svc := services.NewTopicService(topicStore, view.NewSelector())

	// Optional quote of the day: one fire-and-forget fetch; a failure
	// only means the panel stays absent this session.
	var fetcher *quote.Fetcher
	if cfg.QuoteEnabled {
		fetcher = quote.NewFetcher(cfg.QuoteURL, log)
		go fetcher.FetchOnce(ctx)
	}

	router := api.NewRouter(svc, provider, fetcher)
	server := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("server forced to shutdown")
			return err
		}
		log.Info().Msg("server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return err
	}
}

// newProvider opens the configured key-value snapshot provider.
func newProvider(cfg *config.Config) (kv.Store, error) {
	switch cfg.StoreDriver {
	case "sqlite":
		return kvsqlite.Open(cfg.SQLitePath)
	case "postgres":
		return kvpostgres.Open(cfg.PostgresDSN)
	case "memory":
		return kvmemory.New(), nil
	default:
		return nil, fmt.Errorf("unsupported store driver: %s", cfg.StoreDriver)
	}
}
