package handler

import (
	"log/slog"
	"net/http"
	"sort"

	"github.com/enigmactf/enigma/internal/api/middleware"
	"github.com/enigmactf/enigma/internal/api/response"
	"github.com/enigmactf/enigma/internal/team"
)

// ScoreHandler handles GET /scores.
type ScoreHandler struct {
	store team.Store
}

// NewScoreHandler creates a new ScoreHandler.
func NewScoreHandler(store team.Store) *ScoreHandler {
	return &ScoreHandler{store: store}
}

type scoreEntry struct {
	TeamNo   int64  `json:"team_no"`
	TeamName string `json:"team_name"`
	Score    int64  `json:"score"`
}

// Get returns all teams ranked by total points, highest first.
func (h *ScoreHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	teams, err := h.store.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list teams", "error", err)
		response.Err(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to list scores", requestID)
		return
	}

	entries := make([]scoreEntry, 0, len(teams))
	for _, t := range teams {
		entries = append(entries, scoreEntry{
			TeamNo:   t.TeamNo,
			TeamName: t.TeamName,
			Score:    t.TotalPoints,
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].TeamNo < entries[j].TeamNo
	})

	response.Success(w, http.StatusOK, entries, requestID)
}
