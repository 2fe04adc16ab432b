package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/enigmactf/enigma/internal/api/response"
	"github.com/enigmactf/enigma/internal/engine"
	"github.com/enigmactf/enigma/internal/team"
)

// mockChallengeService is a struct-of-funcs mock of handler.ChallengeService.
type mockChallengeService struct {
	generateAllQuestionsFn func(ctx context.Context, teamID string) (*engine.QuestionBundle, error)
	validateSubmissionFn   func(ctx context.Context, teamID, puzzleID string, fields map[string]string) (*engine.SubmissionResult, error)
	getHintFn              func(ctx context.Context, teamID, puzzleID string, hintNo int) (*engine.HintResult, error)
	getFileLocationFn      func(ctx context.Context, teamID, puzzleID string) (string, error)
}

func (m *mockChallengeService) GenerateAllQuestions(ctx context.Context, teamID string) (*engine.QuestionBundle, error) {
	return m.generateAllQuestionsFn(ctx, teamID)
}

func (m *mockChallengeService) ValidateSubmission(ctx context.Context, teamID, puzzleID string, fields map[string]string) (*engine.SubmissionResult, error) {
	return m.validateSubmissionFn(ctx, teamID, puzzleID, fields)
}

func (m *mockChallengeService) GetHint(ctx context.Context, teamID, puzzleID string, hintNo int) (*engine.HintResult, error) {
	return m.getHintFn(ctx, teamID, puzzleID, hintNo)
}

func (m *mockChallengeService) GetFileLocation(ctx context.Context, teamID, puzzleID string) (string, error) {
	return m.getFileLocationFn(ctx, teamID, puzzleID)
}

var errNotStubbed = errors.New("not stubbed")

// mockStore is a struct-of-funcs mock of team.Store.
type mockStore struct {
	getTeamFn             func(ctx context.Context, teamID string) (*team.Team, error)
	existsFn              func(ctx context.Context, teamID string) (bool, error)
	createTeamFn          func(ctx context.Context, teamID, teamName string) (string, error)
	updateScoreFn         func(ctx context.Context, teamID string, isCorrect bool, points int64, puzzleName string) (bool, error)
	updateHintScoreFn     func(ctx context.Context, teamID, puzzleName string, cost int64) error
	setGeneratedContentFn func(ctx context.Context, teamID, puzzleName string, question map[string]any, validation map[string]string) error
	listAllFn             func(ctx context.Context) ([]team.Team, error)
}

func (m *mockStore) GetTeam(ctx context.Context, teamID string) (*team.Team, error) {
	if m.getTeamFn == nil {
		return nil, errNotStubbed
	}
	return m.getTeamFn(ctx, teamID)
}

func (m *mockStore) Exists(ctx context.Context, teamID string) (bool, error) {
	if m.existsFn == nil {
		return false, errNotStubbed
	}
	return m.existsFn(ctx, teamID)
}

func (m *mockStore) CreateTeam(ctx context.Context, teamID, teamName string) (string, error) {
	if m.createTeamFn == nil {
		return "", errNotStubbed
	}
	return m.createTeamFn(ctx, teamID, teamName)
}

func (m *mockStore) UpdateScore(ctx context.Context, teamID string, isCorrect bool, points int64, puzzleName string) (bool, error) {
	if m.updateScoreFn == nil {
		return false, errNotStubbed
	}
	return m.updateScoreFn(ctx, teamID, isCorrect, points, puzzleName)
}

func (m *mockStore) UpdateHintScore(ctx context.Context, teamID, puzzleName string, cost int64) error {
	if m.updateHintScoreFn == nil {
		return errNotStubbed
	}
	return m.updateHintScoreFn(ctx, teamID, puzzleName, cost)
}

func (m *mockStore) SetGeneratedContent(ctx context.Context, teamID, puzzleName string, question map[string]any, validation map[string]string) error {
	if m.setGeneratedContentFn == nil {
		return errNotStubbed
	}
	return m.setGeneratedContentFn(ctx, teamID, puzzleName, question, validation)
}

func (m *mockStore) ListAll(ctx context.Context) ([]team.Team, error) {
	if m.listAllFn == nil {
		return nil, errNotStubbed
	}
	return m.listAllFn(ctx)
}

// envelope mirrors response.Envelope with raw data for per-test decoding.
type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *response.Error `json:"error"`
	Meta  response.Meta   `json:"meta"`
}

func doRequest(t *testing.T, h http.HandlerFunc, method, target string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, body)
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

func parseEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	require.NotEmpty(t, env.Meta.RequestID)
	return env
}

func decodeData(t *testing.T, env envelope, out any) {
	t.Helper()
	require.NotNil(t, env.Data)
	require.NoError(t, json.Unmarshal(env.Data, out))
}
