package ports

// Package ports defines interfaces (hexagonal ports) for auth-related behavior.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"errors"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
)

// ErrSessionNotFound is returned by SessionStore.Get when no live session
// exists for the given ID. Expired sessions are reported the same way.
var ErrSessionNotFound = errors.New("session not found")

// BeginInput carries inputs for initiating an interactive auth flow.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput groups parameters for the code/token exchange.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// AuthProvider initiates and completes an interactive authentication flow
// against an identity provider.
type AuthProvider interface {
	// Begin starts the login flow and returns the provider auth URL, an opaque state, and a nonce.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange completes the login flow, verifying state and nonce, and returns the
	// authenticated identity. It must not be called when the provider is unconfigured.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// IdentityResolver derives a candidate identity from the local operating-system
// account, with no external network call. A resolution failure is an expected
// negative result: the orchestrator falls through to interactive login.
type IdentityResolver interface {
	Resolve(ctx context.Context) (domainauth.Identity, error)
}

// RolePolicy assigns the role set for an OS account name.
type RolePolicy interface {
	RolesFor(accountName string) []domainauth.Role
}

// SessionStore persists and retrieves user sessions keyed by opaque ID.
// It is the single source of truth for "does a session exist" and "what
// identity does it hold"; callers must not cache sessions across requests.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}
