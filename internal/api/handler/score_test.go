package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigmactf/enigma/internal/api/handler"
	"github.com/enigmactf/enigma/internal/team"
)

func TestScoreHandler_Get_RanksByScore(t *testing.T) {
	store := &mockStore{
		listAllFn: func(_ context.Context) ([]team.Team, error) {
			return []team.Team{
				{TeamNo: 0, TeamName: "one", TotalPoints: 100},
				{TeamNo: 1, TeamName: "two", TotalPoints: 250},
				{TeamNo: 2, TeamName: "three", TotalPoints: 100},
				{TeamNo: 3, TeamName: "four", TotalPoints: -40},
			}, nil
		},
	}
	h := handler.NewScoreHandler(store)

	rec := doRequest(t, h.Get, http.MethodGet, "/scores", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := parseEnvelope(t, rec)
	require.Nil(t, env.Error)

	var entries []struct {
		TeamNo   int64  `json:"team_no"`
		TeamName string `json:"team_name"`
		Score    int64  `json:"score"`
	}
	decodeData(t, env, &entries)
	require.Len(t, entries, 4)

	assert.Equal(t, "two", entries[0].TeamName)
	// Ties rank by registration order.
	assert.Equal(t, "one", entries[1].TeamName)
	assert.Equal(t, "three", entries[2].TeamName)
	assert.Equal(t, "four", entries[3].TeamName)
}

func TestScoreHandler_Get_StoreFailure(t *testing.T) {
	store := &mockStore{
		listAllFn: func(_ context.Context) ([]team.Team, error) {
			return nil, errors.New("connection refused")
		},
	}
	h := handler.NewScoreHandler(store)

	rec := doRequest(t, h.Get, http.MethodGet, "/scores", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	env := parseEnvelope(t, rec)
	require.NotNil(t, env.Error)
	assert.Equal(t, "STORE_UNAVAILABLE", env.Error.Code)
}
