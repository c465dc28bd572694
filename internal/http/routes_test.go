package httpx

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moses-automall/intranet-api/internal/data"
	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	"github.com/moses-automall/intranet-api/internal/service"
)

// newTestRouter wires the full router over real services with seeded
// in-memory data, recognizing only the given session.
func newTestRouter(t *testing.T, sess domainauth.Session) http.Handler {
	t.Helper()

	now := func() time.Time { return time.Date(2025, 7, 21, 12, 0, 0, 0, time.UTC) }
	directory := service.NewDirectoryService(service.DirectoryServiceOptions{
		Users:         data.NewUserRepo(),
		Trainings:     data.NewTrainingRepo(),
		Announcements: data.NewAnnouncementRepo(),
		Now:           now,
	})

	return NewRouter(RouterServices{
		Auth:      sessionStub(sess),
		Directory: directory,
		Training:  service.NewTrainingService(data.NewTrainingRepo()),
		Events:    service.NewEventService(data.NewEventRepo(), now),
		Documents: service.NewDocumentService(service.DocumentServiceOptions{Logger: newDiscardLogger()}),

		FrontendOrigin: "http://localhost:3000",
		Logger:         newDiscardLogger(),
	})
}

func doRequest(router http.Handler, method, target string, sessionID string, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if sessionID != "" {
		req.AddCookie(sessionCookie(sessionID))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t, testSession())

	rec := doRequest(router, http.MethodGet, "/healthz", "", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestRouter_UnknownRouteJSON404(t *testing.T) {
	router := newTestRouter(t, testSession())

	rec := doRequest(router, http.MethodGet, "/api/nope", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "not_found")
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

func TestRouter_ProtectedRoutesRequireSession(t *testing.T) {
	router := newTestRouter(t, testSession())

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/users/profile"},
		{http.MethodGet, "/api/training"},
		{http.MethodGet, "/api/events"},
		{http.MethodGet, "/api/documents"},
		{http.MethodGet, "/api/admin/users"},
	}
	for _, p := range paths {
		rec := doRequest(router, p.method, p.path, "", "")
		assert.Equalf(t, http.StatusUnauthorized, rec.Code, "%s %s", p.method, p.path)
	}
}

func TestRouter_AdminRoutesForbiddenForEmployee(t *testing.T) {
	sess := testSession(domainauth.RoleEmployee)
	router := newTestRouter(t, sess)

	rec := doRequest(router, http.MethodGet, "/api/admin/stats", sess.ID, "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient_permissions")
}

func TestRouter_TrainingFlow(t *testing.T) {
	sess := testSession()
	router := newTestRouter(t, sess)

	rec := doRequest(router, http.MethodGet, "/api/training", sess.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var trainings []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &trainings))
	assert.Len(t, trainings, 2)

	// Progress summary must not be captured by the {id} route.
	rec = doRequest(router, http.MethodGet, "/api/training/progress/summary", sess.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "completionPercentage")

	rec = doRequest(router, http.MethodPost, "/api/training/1/complete", sess.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	rec = doRequest(router, http.MethodGet, "/api/training/999", sess.ID, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_EventRSVP(t *testing.T) {
	sess := testSession()
	router := newTestRouter(t, sess)

	rec := doRequest(router, http.MethodPost, "/api/events/1/rsvp", sess.ID, `{"attending":true}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success   bool `json:"success"`
		Attending bool `json:"attending"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.True(t, body.Attending)
}

func TestRouter_DocumentsFallBackToSampleData(t *testing.T) {
	sess := testSession()
	router := newTestRouter(t, sess)

	rec := doRequest(router, http.MethodGet, "/api/documents", sess.ID, "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Documents []map[string]any `json:"documents"`
		Note      string           `json:"note"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Len(t, body.Documents, 2)
	assert.Contains(t, body.Note, "sample data")
}

func TestRouter_AdminFlow(t *testing.T) {
	sess := testSession(domainauth.RoleAdmin, domainauth.RoleManager, domainauth.RoleEmployee)
	router := newTestRouter(t, sess)

	rec := doRequest(router, http.MethodGet, "/api/admin/users", sess.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var users []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.Len(t, users, 2)

	rec = doRequest(router, http.MethodPut, "/api/admin/users/2/roles", sess.ID, `{"roles":["Manager","Employee"]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Manager")

	rec = doRequest(router, http.MethodPost, "/api/admin/users/2/training", sess.ID, `{"trainingId":"1","dueDate":"2025-09-15"}`)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/admin/stats", sess.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "totalUsers")

	rec = doRequest(router, http.MethodPost, "/api/admin/announcements", sess.ID, `{"title":"Holiday Hours","content":"Closed Labor Day."}`)
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Holiday Hours")
}

func TestRouter_ProfileRoundTrip(t *testing.T) {
	sess := testSession()
	sess.Identity.Email = "drewadkins@mosesautonet.com"
	router := newTestRouter(t, sess)

	rec := doRequest(router, http.MethodGet, "/api/users/profile", sess.ID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var profile struct {
		Email      string `json:"email"`
		Department string `json:"department"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, sess.Identity.Email, profile.Email)
	// Department comes from the directory record matched by email.
	assert.Equal(t, "Management", profile.Department)

	rec = doRequest(router, http.MethodPut, "/api/users/profile", sess.ID, `{"name":"Drew A. Adkins"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Drew A. Adkins")
}
