package handler_test

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigmactf/enigma/internal/api/handler"
	"github.com/enigmactf/enigma/internal/engine"
)

func TestFileHandler_Get(t *testing.T) {
	location := filepath.Join(t.TempDir(), "RandomSequence_abc")
	require.NoError(t, os.WriteFile(location, []byte("66 6c 61 67"), 0o644))

	svc := &mockChallengeService{
		getFileLocationFn: func(_ context.Context, teamID, puzzleID string) (string, error) {
			assert.Equal(t, "abc", teamID)
			assert.Equal(t, "2", puzzleID)
			return location, nil
		},
	}
	h := handler.NewFileHandler(svc)

	rec := doRequest(t, h.Get, http.MethodGet, "/file?team_id=abc&puzzle_id=2", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="RandomSequence_abc"`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "66 6c 61 67", rec.Body.String())
}

func TestFileHandler_Get_NoFileForPuzzle(t *testing.T) {
	svc := &mockChallengeService{
		getFileLocationFn: func(_ context.Context, _, _ string) (string, error) {
			return "", engine.ErrNoFileForPuzzle
		},
	}
	h := handler.NewFileHandler(svc)

	rec := doRequest(t, h.Get, http.MethodGet, "/file?team_id=abc&puzzle_id=1", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := parseEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "NO_FILE_FOR_PUZZLE", env.Error.Code)
}

func TestFileHandler_Get_InvalidPuzzle(t *testing.T) {
	svc := &mockChallengeService{
		getFileLocationFn: func(_ context.Context, _, _ string) (string, error) {
			return "", engine.ErrInvalidPuzzle
		},
	}
	h := handler.NewFileHandler(svc)

	rec := doRequest(t, h.Get, http.MethodGet, "/file?team_id=abc&puzzle_id=99", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := parseEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_PUZZLE", env.Error.Code)
}
