package httpx

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	apperrors "github.com/moses-automall/intranet-api/internal/errors"
	"github.com/moses-automall/intranet-api/internal/service"
)

func newAuthHandlers(svc AuthServiceInterface) *AuthHandlers {
	return &AuthHandlers{
		Svc:            svc,
		FrontendOrigin: "http://localhost:3000",
		Logger:         newDiscardLogger(),
	}
}

func TestLogin_RedirectsToProvider(t *testing.T) {
	h := newAuthHandlers(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=/dashboard", nil)
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "https://idp.example/authorize", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	stateCookie := findCookie(cookies, "oauth_state")
	require.NotNil(t, stateCookie)
	assert.Equal(t, "state-1", stateCookie.Value)
	assert.True(t, stateCookie.HttpOnly)

	nonceCookie := findCookie(cookies, "oauth_nonce")
	require.NotNil(t, nonceCookie)
	assert.Equal(t, "nonce-1", nonceCookie.Value)

	redirectCookie := findCookie(cookies, "post_login_redirect")
	require.NotNil(t, redirectCookie)
	assert.Equal(t, "/dashboard", redirectCookie.Value)
}

func TestLogin_RejectsAbsoluteRedirect(t *testing.T) {
	h := newAuthHandlers(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/login?redirect_uri=https://evil.example/phish", nil)
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	redirectCookie := findCookie(rec.Result().Cookies(), "post_login_redirect")
	require.NotNil(t, redirectCookie)
	assert.Equal(t, "/", redirectCookie.Value)
}

func TestLogin_ProviderFailure(t *testing.T) {
	h := newAuthHandlers(&stubAuthService{
		BeginLoginFunc: func(context.Context, string) (*service.BeginLoginResult, error) {
			return nil, errors.New("issuer unreachable")
		},
	})

	rec := httptest.NewRecorder()
	h.Login(rec, httptest.NewRequest(http.MethodGet, "/auth/login", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "login_failed")
}

func TestCallback_MissingParams(t *testing.T) {
	h := newAuthHandlers(&stubAuthService{})

	tests := []struct {
		name    string
		target  string
		errCode string
	}{
		{"missing code", "/auth/callback?state=state-1", "missing_code"},
		{"missing state", "/auth/callback?code=abc", "missing_state"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.Callback(rec, httptest.NewRequest(http.MethodGet, tc.target, nil))

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.errCode)
		})
	}
}

func TestCallback_StateMismatch(t *testing.T) {
	h := newAuthHandlers(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=state-1", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "something-else"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid_state")
}

func TestCallback_Success(t *testing.T) {
	sess := testSession()
	var gotInput service.CompleteLoginInput
	recorded := ""
	h := newAuthHandlers(&stubAuthService{
		CompleteLoginFunc: func(_ context.Context, input service.CompleteLoginInput) (*service.CompleteLoginResult, error) {
			gotInput = input
			return &service.CompleteLoginResult{Session: sess}, nil
		},
	})
	h.Directory = loginRecorderFunc(func(email string) { recorded = email })

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=state-1", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-1"})
	req.AddCookie(&http.Cookie{Name: "oauth_nonce", Value: "nonce-1"})
	req.AddCookie(&http.Cookie{Name: "post_login_redirect", Value: "/dashboard"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "http://localhost:3000/dashboard", rec.Header().Get("Location"))
	assert.Equal(t, service.CompleteLoginInput{Code: "abc", State: "state-1", Nonce: "nonce-1"}, gotInput)
	assert.Equal(t, sess.Identity.Email, recorded)

	cookies := rec.Result().Cookies()
	sc := findCookie(cookies, "session_id")
	require.NotNil(t, sc)
	assert.Equal(t, sess.ID, sc.Value)
	assert.True(t, sc.HttpOnly)
	assert.Positive(t, sc.MaxAge)

	// Temporary OAuth cookies must be cleared.
	stateCookie := findCookie(cookies, "oauth_state")
	require.NotNil(t, stateCookie)
	assert.Negative(t, stateCookie.MaxAge)
}

func TestCallback_CompletionFailure(t *testing.T) {
	h := newAuthHandlers(&stubAuthService{
		CompleteLoginFunc: func(context.Context, service.CompleteLoginInput) (*service.CompleteLoginResult, error) {
			return nil, apperrors.ExternalAuth("token exchange failed")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/auth/callback?code=abc&state=state-1", nil)
	req.AddCookie(&http.Cookie{Name: "oauth_state", Value: "state-1"})
	rec := httptest.NewRecorder()
	h.Callback(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "login_completion_failed")
}

func TestAutoLogin_Success(t *testing.T) {
	sess := testSession()
	sess.Identity.LoginMethod = domainauth.LoginWindowsAuto
	recorded := ""
	h := newAuthHandlers(&stubAuthService{
		AutoLoginFunc: func(context.Context, string) (*service.AutoLoginResult, error) {
			copied := sess
			return &service.AutoLoginResult{Outcome: service.OutcomeAutoLoginSuccess, Session: &copied}, nil
		},
	})
	h.Directory = loginRecorderFunc(func(email string) { recorded = email })

	rec := httptest.NewRecorder()
	h.AutoLogin(rec, httptest.NewRequest(http.MethodPost, "/auth/auto-login", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success bool                `json:"success"`
		User    domainauth.Identity `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, sess.Identity.Email, body.User.Email)
	assert.Equal(t, sess.Identity.Email, recorded)

	sc := findCookie(rec.Result().Cookies(), "session_id")
	require.NotNil(t, sc)
	assert.Equal(t, sess.ID, sc.Value)
}

func TestAutoLogin_AlreadyAuthenticated(t *testing.T) {
	sess := testSession()
	h := newAuthHandlers(&stubAuthService{
		AutoLoginFunc: func(_ context.Context, existingID string) (*service.AutoLoginResult, error) {
			require.Equal(t, sess.ID, existingID)
			copied := sess
			return &service.AutoLoginResult{Outcome: service.OutcomeAlreadyAuthenticated, Session: &copied}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/auto-login", nil)
	req.AddCookie(sessionCookie(sess.ID))
	rec := httptest.NewRecorder()
	h.AutoLogin(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	// No new cookie: the existing session stays as-is.
	assert.Nil(t, findCookie(rec.Result().Cookies(), "session_id"))
}

func TestAutoLogin_Failed(t *testing.T) {
	h := newAuthHandlers(&stubAuthService{})

	rec := httptest.NewRecorder()
	h.AutoLogin(rec, httptest.NewRequest(http.MethodPost, "/auth/auto-login", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body struct {
		Success             bool   `json:"success"`
		RequiresManualLogin bool   `json:"requiresManualLogin"`
		Message             string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.True(t, body.RequiresManualLogin)
	assert.Equal(t, "Failed to authenticate with Windows credentials", body.Message)
	// No session cookie may be set on a failed attempt.
	assert.Nil(t, findCookie(rec.Result().Cookies(), "session_id"))
}

func TestAutoLogin_StorageFault(t *testing.T) {
	h := newAuthHandlers(&stubAuthService{
		AutoLoginFunc: func(context.Context, string) (*service.AutoLoginResult, error) {
			return nil, apperrors.StorageFault("session store unavailable")
		},
	})

	rec := httptest.NewRecorder()
	h.AutoLogin(rec, httptest.NewRequest(http.MethodPost, "/auth/auto-login", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "storage_unavailable")
}

func TestMe_NoCookie(t *testing.T) {
	h := newAuthHandlers(&stubAuthService{})

	rec := httptest.NewRecorder()
	h.Me(rec, httptest.NewRequest(http.MethodGet, "/auth/me", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "authentication_required")
}

func TestMe_InvalidSessionClearsCookie(t *testing.T) {
	h := newAuthHandlers(&stubAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(sessionCookie("stale"))
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	sc := findCookie(rec.Result().Cookies(), "session_id")
	require.NotNil(t, sc)
	assert.Negative(t, sc.MaxAge)
}

func TestMe_Success(t *testing.T) {
	sess := testSession(domainauth.RoleAdmin, domainauth.RoleManager, domainauth.RoleEmployee)
	h := newAuthHandlers(sessionStub(sess))

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.AddCookie(sessionCookie(sess.ID))
	rec := httptest.NewRecorder()
	h.Me(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		User      domainauth.Identity `json:"user"`
		ExpiresAt time.Time           `json:"expiresAt"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, sess.Identity, body.User)
	assert.WithinDuration(t, sess.ExpiresAt, body.ExpiresAt, time.Second)
}

func TestLogout(t *testing.T) {
	deleted := ""
	h := newAuthHandlers(&stubAuthService{
		LogoutFunc: func(_ context.Context, sessionID string) error {
			deleted = sessionID
			return nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(sessionCookie("sess-1"))
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sess-1", deleted)
	sc := findCookie(rec.Result().Cookies(), "session_id")
	require.NotNil(t, sc)
	assert.Negative(t, sc.MaxAge)
}

func TestLogout_StoreFailureStillSucceeds(t *testing.T) {
	h := newAuthHandlers(&stubAuthService{
		LogoutFunc: func(context.Context, string) error {
			return errors.New("redis down")
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(sessionCookie("sess-1"))
	rec := httptest.NewRecorder()
	h.Logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// loginRecorderFunc adapts a func to the LoginRecorder interface.
type loginRecorderFunc func(email string)

func (f loginRecorderFunc) RecordLogin(email string) { f(email) }
