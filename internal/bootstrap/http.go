package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/moses-automall/intranet-api/config"
	httpx "github.com/moses-automall/intranet-api/internal/http"
)

const shutdownTimeout = 10 * time.Second

// RunConfig groups dependencies for Run.
type RunConfig struct {
	Config   *config.AppConfig
	Services ServiceContainer
	// Sweep runs background session eviction until its context is done.
	// Nil when the configured store expires sessions on its own.
	Sweep  func(ctx context.Context)
	Logger *slog.Logger
}

// Run starts the HTTP server and background workers and blocks until a
// shutdown signal arrives or a component fails, then drains gracefully.
func Run(ctx context.Context, cfg RunConfig) error {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:         cfg.Config.HTTP.Addr,
		Handler:      buildHTTPHandler(cfg.Services, cfg.Config.HTTP, logger),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("starting HTTP server", "addr", server.Addr, "dev", cfg.Config.IsDev)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	if cfg.Sweep != nil {
		g.Go(func() error {
			cfg.Sweep(gctx)
			return nil
		})
	}

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}

		logger.Info("HTTP server stopped")
		return nil
	})

	return g.Wait()
}

// buildHTTPHandler wraps the router in middleware.
// Order: Recover -> Logging -> CORS -> Router.
func buildHTTPHandler(services ServiceContainer, httpCfg config.HTTPConfig, logger *slog.Logger) http.Handler {
	h := httpx.NewRouter(httpx.RouterServices{
		Auth:           services.Auth,
		Directory:      services.Directory,
		Training:       services.Training,
		Events:         services.Events,
		Documents:      services.Documents,
		CookieDomain:   httpCfg.CookieDomain,
		FrontendOrigin: httpCfg.FrontendOrigin,
		Logger:         logger,
	})

	h = httpx.CORS(httpCfg.FrontendOrigin)(h)
	h = httpx.Logging(logger)(h)
	h = httpx.Recover(logger)(h)

	return h
}
