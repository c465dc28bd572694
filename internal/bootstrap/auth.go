package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/moses-automall/intranet-api/config"
	"github.com/moses-automall/intranet-api/internal/adapters/authroles"
	"github.com/moses-automall/intranet-api/internal/adapters/devauth"
	"github.com/moses-automall/intranet-api/internal/adapters/memory"
	"github.com/moses-automall/intranet-api/internal/adapters/oidc"
	redisadapter "github.com/moses-automall/intranet-api/internal/adapters/redis"
	"github.com/moses-automall/intranet-api/internal/adapters/winident"
	"github.com/moses-automall/intranet-api/internal/ports"
	"github.com/moses-automall/intranet-api/internal/service"
)

// SessionStoreResult bundles the configured session store with its
// lifecycle hooks. Sweep is non-nil only for the memory store, which
// needs a background eviction loop; Redis expires keys on its own.
type SessionStoreResult struct {
	Store ports.SessionStore
	Sweep func(ctx context.Context)
	Close func() error
}

// BuildSessionStore selects the session store backend from configuration.
func BuildSessionStore(cfg config.SessionConfig, logger *slog.Logger) (SessionStoreResult, error) {
	switch cfg.Store {
	case config.SessionStoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr(),
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		logger.Info("using redis session store", "addr", cfg.Redis.Addr())
		return SessionStoreResult{
			Store: redisadapter.NewSessionStoreWithPrefix(client, "session:"),
			Close: client.Close,
		}, nil

	case config.SessionStoreMemory:
		store := memory.NewSessionStore()
		logger.Info("using in-memory session store", "sweepInterval", cfg.SweepInterval)
		return SessionStoreResult{
			Store: store,
			Sweep: func(ctx context.Context) { store.RunSweeper(ctx, cfg.SweepInterval) },
		}, nil

	default:
		return SessionStoreResult{}, fmt.Errorf("unknown session store %q", cfg.Store)
	}
}

// BuildAuthProvider selects the interactive login provider. Azure AD is
// used when fully configured; otherwise the dev stub takes its place so
// the portal stays usable on workstations without tenant credentials.
// Exactly one provider is ever active.
func BuildAuthProvider(cfg config.AzureADConfig, logger *slog.Logger) (ports.AuthProvider, error) {
	if !cfg.Configured() {
		logger.Warn("Azure AD not configured, using dev-stub login provider")
		return devauth.NewProvider(), nil
	}

	provider, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.RedirectURL,
		Scope:        cfg.Scope,
		IssuerURL:    cfg.IssuerURL(),
	})
	if err != nil {
		return nil, fmt.Errorf("create Azure AD provider: %w", err)
	}

	logger.Info("using Azure AD login provider", "issuer", cfg.IssuerURL())
	return provider, nil
}

// AuthDeps groups dependencies for BuildAuthService.
type AuthDeps struct {
	Auth     config.AuthConfig
	Session  config.SessionConfig
	Sessions ports.SessionStore
	Logger   *slog.Logger
}

// BuildAuthService wires the auth service: the interactive provider, the
// OS-identity resolver with its role policy, and the session store.
func BuildAuthService(deps AuthDeps) (*service.AuthService, error) {
	provider, err := BuildAuthProvider(deps.Auth.AzureAD, deps.Logger)
	if err != nil {
		return nil, err
	}

	resolver := winident.NewResolver(winident.ResolverOptions{
		Policy:      authroles.NewStaticPolicy(deps.Auth.Windows.AdminAccounts),
		EmailDomain: deps.Auth.Windows.EmailDomain,
	})

	return service.NewAuthService(service.AuthServiceOptions{
		Provider:   provider,
		Resolver:   resolver,
		Sessions:   deps.Sessions,
		SessionTTL: deps.Session.TTL,
	}), nil
}
