package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"errors"
	"fmt"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	"github.com/moses-automall/intranet-api/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthProvider     = (*MockAuthProvider)(nil)
	_ ports.IdentityResolver = (*MockIdentityResolver)(nil)
	_ ports.SessionStore     = (*MemorySessionStore)(nil)
)

// MockAuthProvider simulates an IdP for tests with deterministic state/nonce handling.
type MockAuthProvider struct {
	BeginFunc    func(ctx context.Context, in ports.BeginInput) (authURL, state, nonce string, err error)
	ExchangeFunc func(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error)

	// Deterministic values for predictable testing
	AuthURL     string
	StatePrefix string
	NoncePrefix string
	DefaultUser domainauth.Identity

	// Internal state tracking for deterministic behavior
	callCount int
}

// NewMockAuthProvider creates a MockAuthProvider with sensible defaults.
func NewMockAuthProvider() *MockAuthProvider {
	return &MockAuthProvider{
		AuthURL:     "https://mock-idp/auth",
		StatePrefix: "state",
		NoncePrefix: "nonce",
		DefaultUser: domainauth.Identity{
			ID:          "mock-user-1",
			Email:       "mock.user@mosesautonet.com",
			Name:        "Mock User",
			Roles:       []domainauth.Role{domainauth.RoleEmployee},
			LoginMethod: domainauth.LoginAzureAD,
		},
	}
}

func (m *MockAuthProvider) Begin(ctx context.Context, in ports.BeginInput) (string, string, string, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx, in)
	}

	m.callCount++
	authURL := m.AuthURL
	if authURL == "" {
		authURL = "https://mock-idp/auth"
	}

	statePrefix := m.StatePrefix
	if statePrefix == "" {
		statePrefix = "state"
	}
	noncePrefix := m.NoncePrefix
	if noncePrefix == "" {
		noncePrefix = "nonce"
	}

	state := fmt.Sprintf("%s-%d", statePrefix, m.callCount)
	nonce := fmt.Sprintf("%s-%d", noncePrefix, m.callCount)

	return authURL, state, nonce, nil
}

func (m *MockAuthProvider) Exchange(ctx context.Context, in ports.ExchangeInput) (domainauth.Identity, error) {
	if m.ExchangeFunc != nil {
		return m.ExchangeFunc(ctx, in)
	}

	user := m.DefaultUser
	if user.ID == "" {
		user = domainauth.Identity{
			ID:          "mock-user-1",
			Email:       "mock.user@mosesautonet.com",
			Name:        "Mock User",
			Roles:       []domainauth.Role{domainauth.RoleEmployee},
			LoginMethod: domainauth.LoginAzureAD,
		}
	}
	user.Roles = append([]domainauth.Role(nil), user.Roles...)

	return user, nil
}

// MockIdentityResolver simulates the OS-identity path.
type MockIdentityResolver struct {
	ResolveFunc func(ctx context.Context) (domainauth.Identity, error)

	Identity domainauth.Identity
	Err      error
}

func (m *MockIdentityResolver) Resolve(ctx context.Context) (domainauth.Identity, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx)
	}
	if m.Err != nil {
		return domainauth.Identity{}, m.Err
	}
	return m.Identity, nil
}

// MemorySessionStore is an in-memory session store for unit tests.
// Unlike the production memory store it never filters expired sessions,
// so tests can inspect exactly what was saved.
type MemorySessionStore struct {
	sessions map[string]domainauth.Session

	SaveErr   error
	GetErr    error
	DeleteErr error
}

// NewMemorySessionStore creates a new in-memory session store.
func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[string]domainauth.Session),
	}
}

func (m *MemorySessionStore) Save(_ context.Context, sess domainauth.Session) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	m.sessions[sess.ID] = sess
	return nil
}

func (m *MemorySessionStore) Get(_ context.Context, id string) (domainauth.Session, error) {
	if m.GetErr != nil {
		return domainauth.Session{}, m.GetErr
	}
	sess, ok := m.sessions[id]
	if id == "" || !ok {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (m *MemorySessionStore) Delete(_ context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	delete(m.sessions, id)
	return nil
}

// Len returns the number of stored sessions.
func (m *MemorySessionStore) Len() int { return len(m.sessions) }
