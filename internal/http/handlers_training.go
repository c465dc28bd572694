package httpx

import (
	"net/http"

	"github.com/moses-automall/intranet-api/internal/service"
)

// TrainingHandlers provides HTTP handlers for the training catalog.
type TrainingHandlers struct {
	Svc *service.TrainingService
}

// List returns all trainings.
// GET /api/training.
func (h *TrainingHandlers) List(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, h.Svc.List())
}

// Get returns one training.
// GET /api/training/{id}.
func (h *TrainingHandlers) Get(w http.ResponseWriter, r *http.Request) {
	tr, err := h.Svc.Get(r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, tr)
}

// Complete marks a training as completed.
// POST /api/training/{id}/complete.
func (h *TrainingHandlers) Complete(w http.ResponseWriter, r *http.Request) {
	tr, err := h.Svc.Complete(r.PathValue("id"))
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"training": tr,
	})
}

// Progress returns the completion summary.
// GET /api/training/progress/summary.
func (h *TrainingHandlers) Progress(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, h.Svc.Progress())
}
