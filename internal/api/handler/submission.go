package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/enigmactf/enigma/internal/api/middleware"
	"github.com/enigmactf/enigma/internal/api/response"
)

// SubmissionHandler handles POST /submit.
type SubmissionHandler struct {
	svc ChallengeService
}

// NewSubmissionHandler creates a new SubmissionHandler.
func NewSubmissionHandler(svc ChallengeService) *SubmissionHandler {
	return &SubmissionHandler{svc: svc}
}

// Post validates a submitted answer. The body is a flat JSON object holding
// team_id, puzzle_id and the puzzle's answer fields; non-string values are
// stringified before comparison, matching the contract that all submitted
// data is of type string.
func (h *SubmissionHandler) Post(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var body map[string]any
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fields := make(map[string]string, len(body))
	for k, v := range body {
		if s, ok := v.(string); ok {
			fields[k] = s
		} else {
			fields[k] = fmt.Sprint(v)
		}
	}

	result, err := h.svc.ValidateSubmission(r.Context(), fields["team_id"], fields["puzzle_id"], fields)
	if err != nil {
		writeEngineError(w, err, requestID)
		return
	}

	response.Success(w, http.StatusOK, result, requestID)
}
