package httpx

import (
	"errors"
	"net/http"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	"github.com/moses-automall/intranet-api/internal/service"
)

// AdminHandlers provides HTTP handlers for the admin console. Every route
// here is registered behind RequireRole(Admin).
type AdminHandlers struct {
	Directory *service.DirectoryService
}

// ListUsers returns the employee directory.
// GET /api/admin/users.
func (h *AdminHandlers) ListUsers(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, h.Directory.ListUsers())
}

// GetUser returns one directory user.
// GET /api/admin/users/{id}.
func (h *AdminHandlers) GetUser(w http.ResponseWriter, r *http.Request) {
	u, err := h.Directory.GetUser(r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, u)
}

// updateRolesRequest is the request body for UpdateUserRoles.
type updateRolesRequest struct {
	Roles []domainauth.Role `json:"roles"`
}

// UpdateUserRoles replaces a user's role set.
// PUT /api/admin/users/{id}/roles.
func (h *AdminHandlers) UpdateUserRoles(w http.ResponseWriter, r *http.Request) {
	var input updateRolesRequest
	if !DecodeJSON(w, r, &input) {
		return
	}

	u, err := h.Directory.UpdateUserRoles(r.PathValue("id"), input.Roles)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"user":    u,
	})
}

// AssignTraining assigns a training to a user.
// POST /api/admin/users/{id}/training.
func (h *AdminHandlers) AssignTraining(w http.ResponseWriter, r *http.Request) {
	var input service.AssignTrainingInput
	if !DecodeJSON(w, r, &input) {
		return
	}

	assignment, err := h.Directory.AssignTraining(r.PathValue("id"), input)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"success":    true,
		"assignment": assignment,
	})
}

// Stats returns the admin dashboard summary.
// GET /api/admin/stats.
func (h *AdminHandlers) Stats(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, h.Directory.Stats())
}

// PublishAnnouncement publishes a company announcement.
// POST /api/admin/announcements.
func (h *AdminHandlers) PublishAnnouncement(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	var input service.PublishAnnouncementInput
	if !DecodeJSON(w, r, &input) {
		return
	}

	a, err := h.Directory.PublishAnnouncement(session.Identity.Email, input)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusCreated, map[string]any{
		"success":      true,
		"announcement": a,
	})
}
