package httpx

import (
	"net/http"

	"github.com/moses-automall/intranet-api/internal/service"
)

// DocumentHandlers provides HTTP handlers for company documents.
type DocumentHandlers struct {
	Svc *service.DocumentService
}

// List returns the root folder's documents. When the drive is unreachable
// the response carries sample data plus a note instead of failing.
// GET /api/documents.
func (h *DocumentHandlers) List(w http.ResponseWriter, r *http.Request) {
	docs, note, err := h.Svc.ListDocuments(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	resp := map[string]any{"documents": docs}
	if note != "" {
		resp["note"] = note
	}
	WriteJSON(w, http.StatusOK, resp)
}

// ListFolders returns the root folder's sub-folders.
// GET /api/documents/folders.
func (h *DocumentHandlers) ListFolders(w http.ResponseWriter, r *http.Request) {
	folders, note, err := h.Svc.ListFolders(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}

	resp := map[string]any{"folders": folders}
	if note != "" {
		resp["note"] = note
	}
	WriteJSON(w, http.StatusOK, resp)
}

// ListFolderDocuments returns the documents in one sub-folder. There is
// no sample-data fallback here; a drive failure is a hard error.
// GET /api/documents/folders/{folderId}.
func (h *DocumentHandlers) ListFolderDocuments(w http.ResponseWriter, r *http.Request) {
	docs, err := h.Svc.ListFolderDocuments(r.Context(), r.PathValue("folderId"))
	if err != nil {
		WriteAppError(w, err)
		return
	}

	WriteJSON(w, http.StatusOK, map[string]any{"documents": docs})
}
