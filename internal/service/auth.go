package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	apperrors "github.com/moses-automall/intranet-api/internal/errors"
	"github.com/moses-automall/intranet-api/internal/ports"
)

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider   ports.AuthProvider
	Resolver   ports.IdentityResolver
	Sessions   ports.SessionStore
	SessionTTL time.Duration
	Now        func() time.Time // optional, defaults to time.Now
}

// AuthService orchestrates the authentication paths: silent OS-identity
// auto-login, interactive provider login, and session lifecycle. Sessions
// have a fixed lifetime; activity never extends them.
type AuthService struct {
	provider   ports.AuthProvider
	resolver   ports.IdentityResolver
	sessions   ports.SessionStore
	sessionTTL time.Duration
	now        func() time.Time
}

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	ttl := opts.SessionTTL
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &AuthService{
		provider:   opts.Provider,
		resolver:   opts.Resolver,
		sessions:   opts.Sessions,
		sessionTTL: ttl,
		now:        now,
	}
}

// BeginLoginResult contains the result of beginning a login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates an interactive flow and returns the provider auth
// URL with state and nonce.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExternalAuth, "begin auth flow")
	}

	return &BeginLoginResult{
		AuthURL: authURL,
		State:   state,
		Nonce:   nonce,
	}, nil
}

// CompleteLoginInput groups parameters for completing a login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLoginResult contains the result of completing a login flow.
type CompleteLoginResult struct {
	Session domainauth.Session
}

// CompleteLogin completes an interactive flow by exchanging the code for
// an identity and persisting a new session.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*CompleteLoginResult, error) {
	if input.Code == "" {
		return nil, apperrors.Validation("authorization code is required")
	}
	if input.State == "" {
		return nil, apperrors.Validation("state parameter is required")
	}

	identity, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, apperrors.Wrap(err, apperrors.ErrCodeExternalAuth, "exchange authorization code")
	}

	session, err := s.createSession(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &CompleteLoginResult{Session: session}, nil
}

// AutoLoginOutcome labels how an auto-login attempt concluded.
type AutoLoginOutcome string

const (
	// OutcomeAlreadyAuthenticated means the request carried a live session;
	// the stored identity is returned unchanged.
	OutcomeAlreadyAuthenticated AutoLoginOutcome = "already_authenticated"
	// OutcomeAutoLoginSuccess means a fresh session was minted from the
	// OS account identity.
	OutcomeAutoLoginSuccess AutoLoginOutcome = "auto_login_success"
	// OutcomeAutoLoginFailed means no OS identity could be resolved; the
	// client should offer interactive login.
	OutcomeAutoLoginFailed AutoLoginOutcome = "auto_login_failed"
)

// AutoLoginResult contains the outcome of an auto-login attempt.
// Session is nil when Outcome is OutcomeAutoLoginFailed.
type AutoLoginResult struct {
	Outcome AutoLoginOutcome
	Session *domainauth.Session
}

// AutoLogin attempts a silent sign-in. An existing live session wins and
// is never replaced. Otherwise the OS identity resolver is consulted; a
// resolution failure is a normal outcome, not an error.
func (s *AuthService) AutoLogin(ctx context.Context, existingSessionID string) (*AutoLoginResult, error) {
	if existingSessionID != "" {
		if sess, err := s.GetSession(ctx, existingSessionID); err == nil {
			return &AutoLoginResult{
				Outcome: OutcomeAlreadyAuthenticated,
				Session: sess,
			}, nil
		} else if apperrors.IsStorageFault(err) {
			return nil, err
		}
		// Missing or expired session: fall through to resolution.
	}

	identity, err := s.resolver.Resolve(ctx)
	if err != nil {
		if apperrors.IsResolutionFailure(err) {
			return &AutoLoginResult{Outcome: OutcomeAutoLoginFailed}, nil
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeResolutionFailure, "resolve identity")
	}

	session, err := s.createSession(ctx, identity)
	if err != nil {
		return nil, err
	}

	return &AutoLoginResult{
		Outcome: OutcomeAutoLoginSuccess,
		Session: &session,
	}, nil
}

// GetSession retrieves a live session by ID. Expired and missing sessions
// are both reported as Unauthenticated; expired ones are deleted eagerly.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, apperrors.Unauthenticated("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ports.ErrSessionNotFound) {
			return nil, apperrors.Unauthenticated("session not found")
		}
		return nil, apperrors.Wrap(err, apperrors.ErrCodeStorageFault, "get session")
	}

	if session.Expired(s.now()) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, apperrors.Wrap(deleteErr, apperrors.ErrCodeStorageFault, "delete expired session")
		}
		return nil, apperrors.Unauthenticated("session expired")
	}

	return &session, nil
}

// Logout removes a session. Logging out without a session is a no-op.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperrors.Wrap(err, apperrors.ErrCodeStorageFault, "delete session")
	}

	return nil
}

// createSession mints and persists a session for an identity.
func (s *AuthService) createSession(ctx context.Context, identity domainauth.Identity) (domainauth.Session, error) {
	session := domainauth.Session{
		ID:        generateSessionID(),
		Identity:  identity,
		ExpiresAt: s.now().Add(s.sessionTTL),
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return domainauth.Session{}, apperrors.Wrap(err, apperrors.ErrCodeStorageFault, fmt.Sprintf("save session for %s", identity.Email))
	}

	return session, nil
}

// generateSessionID creates a cryptographically secure random session ID.
func generateSessionID() string {
	return uuid.New().String()
}
