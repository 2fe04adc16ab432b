package handler

import (
	"net/http"

	"github.com/enigmactf/enigma/internal/api/middleware"
	"github.com/enigmactf/enigma/internal/api/response"
)

// QuestionHandler handles GET /questions.
type QuestionHandler struct {
	svc ChallengeService
}

// NewQuestionHandler creates a new QuestionHandler.
func NewQuestionHandler(svc ChallengeService) *QuestionHandler {
	return &QuestionHandler{svc: svc}
}

// Get issues every puzzle to the team and returns the question bundle.
func (h *QuestionHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	bundle, err := h.svc.GenerateAllQuestions(r.Context(), r.URL.Query().Get("team_id"))
	if err != nil {
		writeEngineError(w, err, requestID)
		return
	}

	response.Success(w, http.StatusOK, bundle, requestID)
}
