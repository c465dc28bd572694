package httpx

import (
	"errors"
	"net/http"

	"github.com/moses-automall/intranet-api/internal/service"
)

// UserHandlers provides HTTP handlers for the signed-in user's profile.
type UserHandlers struct {
	Directory *service.DirectoryService
}

// GetProfile returns the signed-in user's profile.
// GET /api/users/profile.
func (h *UserHandlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	WriteJSON(w, http.StatusOK, h.Directory.ProfileFor(session.Identity))
}

// UpdateProfile updates the signed-in user's directory record.
// PUT /api/users/profile.
func (h *UserHandlers) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	var input service.UpdateProfileInput
	if !DecodeJSON(w, r, &input) {
		return
	}

	profile, err := h.Directory.UpdateProfile(session.Identity, input)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, profile)
}
