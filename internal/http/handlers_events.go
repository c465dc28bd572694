package httpx

import (
	"errors"
	"net/http"

	"github.com/moses-automall/intranet-api/internal/service"
)

// EventHandlers provides HTTP handlers for the company calendar.
type EventHandlers struct {
	Svc *service.EventService
}

// List returns upcoming events (today or later).
// GET /api/events.
func (h *EventHandlers) List(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, h.Svc.ListUpcoming())
}

// Get returns one event, including past events.
// GET /api/events/{id}.
func (h *EventHandlers) Get(w http.ResponseWriter, r *http.Request) {
	ev, err := h.Svc.Get(r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, ev)
}

// rsvpRequest is the request body for RSVP.
type rsvpRequest struct {
	Attending bool `json:"attending"`
}

// RSVP records the signed-in user's attendance response.
// POST /api/events/{id}/rsvp.
func (h *EventHandlers) RSVP(w http.ResponseWriter, r *http.Request) {
	session := GetSessionFromContext(r.Context())
	if session == nil {
		WriteError(w, ErrorParams{Code: http.StatusUnauthorized, ErrCode: "authentication_required", Err: errors.New("authentication required")})
		return
	}

	var input rsvpRequest
	if !DecodeJSON(w, r, &input) {
		return
	}

	ev, err := h.Svc.RSVP(r.PathValue("id"), session.Identity.ID, input.Attending)
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"attending": input.Attending,
		"event":     ev,
	})
}
