package devauth

// Package devauth provides a stub AuthProvider for local development when
// no Azure AD tenant is configured.

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	"github.com/moses-automall/intranet-api/internal/ports"
)

// Provider implements ports.AuthProvider for local development.
// It short-circuits the OAuth flow by redirecting back to our own callback
// with locally generated state, and Exchange returns a fixed demo admin
// identity so every portal surface is reachable without a tenant.
type Provider struct {
	identity domainauth.Identity
}

// NewProvider constructs the dev auth provider with the demo identity.
func NewProvider() *Provider {
	return &Provider{
		identity: domainauth.Identity{
			ID:          "dev-user-1",
			Email:       "drewadkins@mosesautonet.com",
			Name:        "Drew Adkins (Dev Mode)",
			Roles:       []domainauth.Role{domainauth.RoleAdmin, domainauth.RoleManager, domainauth.RoleEmployee},
			LoginMethod: domainauth.LoginDevStub,
		},
	}
}

// Begin returns a local callback URL and generated state and nonce.
func (p *Provider) Begin(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
	state, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := randomString(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}
	// The standard handler expects GET /auth/callback?code=...&state=...
	authURL := "/auth/callback?code=dev&state=" + state
	return authURL, state, nonce, nil
}

// Exchange ignores the provided code/state/nonce (validation handled by
// the handler) and returns the demo identity.
func (p *Provider) Exchange(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
	id := p.identity
	id.Roles = append([]domainauth.Role(nil), p.identity.Roles...)
	return id, nil
}

func randomString(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}
	bLen := (n*3 + 3) / 4
	b := make([]byte, bLen)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	if len(s) < n {
		extra := make([]byte, 1)
		if _, err := rand.Read(extra); err != nil {
			return "", err
		}
		s += base64.RawURLEncoding.EncodeToString(extra)
	}
	return s[:n], nil
}
