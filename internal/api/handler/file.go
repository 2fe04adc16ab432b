package handler

import (
	"fmt"
	"net/http"
	"path/filepath"

	"github.com/enigmactf/enigma/internal/api/middleware"
)

// FileHandler handles GET /file.
type FileHandler struct {
	svc ChallengeService
}

// NewFileHandler creates a new FileHandler.
func NewFileHandler(svc ChallengeService) *FileHandler {
	return &FileHandler{svc: svc}
}

// Get streams the team's puzzle artifact as a download.
func (h *FileHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	query := r.URL.Query()

	location, err := h.svc.GetFileLocation(r.Context(), query.Get("team_id"), query.Get("puzzle_id"))
	if err != nil {
		writeEngineError(w, err, requestID)
		return
	}

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filepath.Base(location)))
	http.ServeFile(w, r, location)
}
