package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/enigmactf/enigma/internal/api/response"
	"github.com/enigmactf/enigma/internal/engine"
	"github.com/enigmactf/enigma/internal/team"
)

// ChallengeService is the engine surface the challenge handlers depend on.
type ChallengeService interface {
	GenerateAllQuestions(ctx context.Context, teamID string) (*engine.QuestionBundle, error)
	ValidateSubmission(ctx context.Context, teamID, puzzleID string, fields map[string]string) (*engine.SubmissionResult, error)
	GetHint(ctx context.Context, teamID, puzzleID string, hintNo int) (*engine.HintResult, error)
	GetFileLocation(ctx context.Context, teamID, puzzleID string) (string, error)
}

// writeEngineError translates engine and store errors to HTTP status codes.
func writeEngineError(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, engine.ErrMissingParameter):
		response.Err(w, http.StatusUnprocessableEntity, "MISSING_PARAMETER", err.Error(), requestID)
	case errors.Is(err, engine.ErrInvalidTeam):
		response.Err(w, http.StatusBadRequest, "INVALID_TEAM", "team_id invalid", requestID)
	case errors.Is(err, engine.ErrInvalidPuzzle):
		response.Err(w, http.StatusBadRequest, "INVALID_PUZZLE", "puzzle_id invalid", requestID)
	case errors.Is(err, engine.ErrInvalidHintNumber):
		response.Err(w, http.StatusBadRequest, "INVALID_HINT_NUMBER", err.Error(), requestID)
	case errors.Is(err, engine.ErrNoFileForPuzzle):
		response.Err(w, http.StatusBadRequest, "NO_FILE_FOR_PUZZLE", "The given level does not have any files", requestID)
	case errors.Is(err, engine.ErrValidationDataMissing):
		response.Err(w, http.StatusInternalServerError, "VALIDATION_DATA_MISSING", err.Error(), requestID)
	case errors.Is(err, team.ErrTeamNotFound):
		response.Err(w, http.StatusBadRequest, "INVALID_TEAM", "team_id invalid", requestID)
	default:
		slog.Error("store operation failed", "error", err, "requestId", requestID)
		response.Err(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "The team store is unavailable", requestID)
	}
}
