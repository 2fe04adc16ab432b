package handler

import (
	"net/http"
	"strconv"

	"github.com/enigmactf/enigma/internal/api/middleware"
	"github.com/enigmactf/enigma/internal/api/response"
)

// HintHandler handles GET /hint.
type HintHandler struct {
	svc ChallengeService
}

// NewHintHandler creates a new HintHandler.
func NewHintHandler(svc ChallengeService) *HintHandler {
	return &HintHandler{svc: svc}
}

// Get discloses a hint for the given team, puzzle and hint ordinal.
func (h *HintHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	query := r.URL.Query()

	hintNoStr := query.Get("hint_no")
	if hintNoStr == "" {
		response.Err(w, http.StatusUnprocessableEntity, "MISSING_PARAMETER", "missing required parameter: hint_no", requestID)
		return
	}
	hintNo, err := strconv.Atoi(hintNoStr)
	if err != nil {
		response.Err(w, http.StatusUnprocessableEntity, "INVALID_PARAMETER", "hint_no must be an integer", requestID)
		return
	}

	result, err := h.svc.GetHint(r.Context(), query.Get("team_id"), query.Get("puzzle_id"), hintNo)
	if err != nil {
		writeEngineError(w, err, requestID)
		return
	}

	response.Success(w, http.StatusOK, result, requestID)
}
