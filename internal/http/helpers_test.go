package httpx

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	apperrors "github.com/moses-automall/intranet-api/internal/errors"
	"github.com/moses-automall/intranet-api/internal/service"
)

// stubAuthService is a function-field test double for AuthServiceInterface.
type stubAuthService struct {
	BeginLoginFunc    func(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error)
	CompleteLoginFunc func(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error)
	AutoLoginFunc     func(ctx context.Context, existingSessionID string) (*service.AutoLoginResult, error)
	GetSessionFunc    func(ctx context.Context, sessionID string) (*domainauth.Session, error)
	LogoutFunc        func(ctx context.Context, sessionID string) error
}

var _ AuthServiceInterface = (*stubAuthService)(nil)

func (s *stubAuthService) BeginLogin(ctx context.Context, redirectURL string) (*service.BeginLoginResult, error) {
	if s.BeginLoginFunc != nil {
		return s.BeginLoginFunc(ctx, redirectURL)
	}
	return &service.BeginLoginResult{AuthURL: "https://idp.example/authorize", State: "state-1", Nonce: "nonce-1"}, nil
}

func (s *stubAuthService) CompleteLogin(ctx context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error) {
	if s.CompleteLoginFunc != nil {
		return s.CompleteLoginFunc(ctx, input)
	}
	return &service.CompleteLoginResult{Session: testSession()}, nil
}

func (s *stubAuthService) AutoLogin(ctx context.Context, existingSessionID string) (*service.AutoLoginResult, error) {
	if s.AutoLoginFunc != nil {
		return s.AutoLoginFunc(ctx, existingSessionID)
	}
	return &service.AutoLoginResult{Outcome: service.OutcomeAutoLoginFailed}, nil
}

func (s *stubAuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if s.GetSessionFunc != nil {
		return s.GetSessionFunc(ctx, sessionID)
	}
	return nil, apperrors.Unauthenticated("session not found")
}

func (s *stubAuthService) Logout(ctx context.Context, sessionID string) error {
	if s.LogoutFunc != nil {
		return s.LogoutFunc(ctx, sessionID)
	}
	return nil
}

// sessionStub returns a stubAuthService that recognizes exactly one session.
func sessionStub(sess domainauth.Session) *stubAuthService {
	return &stubAuthService{
		GetSessionFunc: func(_ context.Context, sessionID string) (*domainauth.Session, error) {
			if sessionID == sess.ID {
				copied := sess
				return &copied, nil
			}
			return nil, apperrors.Unauthenticated("session not found")
		},
	}
}

func testSession(roles ...domainauth.Role) domainauth.Session {
	if len(roles) == 0 {
		roles = []domainauth.Role{domainauth.RoleEmployee}
	}
	return domainauth.Session{
		ID: "sess-1",
		Identity: domainauth.Identity{
			ID:          "user-1",
			Email:       "drewadkins@mosesautonet.com",
			Name:        "Drew Adkins",
			Roles:       roles,
			LoginMethod: domainauth.LoginAzureAD,
		},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func sessionCookie(id string) *http.Cookie {
	return &http.Cookie{Name: "session_id", Value: id}
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// findCookie returns the first Set-Cookie with the given name, or nil.
func findCookie(cookies []*http.Cookie, name string) *http.Cookie {
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}
