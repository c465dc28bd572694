package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/moses-automall/intranet-api/internal/bootstrap"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logger.InfoContext(ctx, "starting intranet portal",
		"addr", cfg.HTTP.Addr,
		"sessionStore", cfg.Session.Store,
		"dev", cfg.IsDev)

	sessions, err := bootstrap.BuildSessionStore(cfg.Session, logger)
	if err != nil {
		return err
	}
	if sessions.Close != nil {
		defer func() {
			if cerr := sessions.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close session store failed", "error", cerr)
			}
		}()
	}

	services, err := bootstrap.NewServices(ctx, &bootstrap.ServiceDeps{
		Config:   &cfg,
		Sessions: sessions.Store,
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	return bootstrap.Run(ctx, bootstrap.RunConfig{
		Config:   &cfg,
		Services: services,
		Sweep:    sessions.Sweep,
		Logger:   logger,
	})
}
