package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/enigmactf/enigma/internal/api/middleware"
	"github.com/enigmactf/enigma/internal/api/response"
	"github.com/enigmactf/enigma/internal/api/validation"
	"github.com/enigmactf/enigma/internal/team"
)

type createTeamRequest struct {
	Name string `json:"name"`
}

type teamResponse struct {
	TeamNo      int64  `json:"team_no"`
	TeamID      string `json:"team_id"`
	TeamName    string `json:"team_name"`
	TotalPoints int64  `json:"total_points"`
}

// TeamHandler handles the operator-gated team administration endpoints.
type TeamHandler struct {
	store team.Store
}

// NewTeamHandler creates a new TeamHandler.
func NewTeamHandler(store team.Store) *TeamHandler {
	return &TeamHandler{store: store}
}

// Create handles POST /teams. The team ID is pre-generated server side and
// returned once; it is the team's access token.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req createTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Err(w, http.StatusBadRequest, "INVALID_JSON", "Request body must be valid JSON", requestID)
		return
	}

	fieldErrors := validation.ValidateCreateTeamRequest(validation.CreateTeamRequest{Name: req.Name})
	if len(fieldErrors) > 0 {
		response.ErrWithDetails(w, http.StatusBadRequest, "VALIDATION_ERROR", "Input validation failed", fieldErrors, requestID)
		return
	}

	teamID, err := team.NewTeamID(r.Context(), h.store)
	if err != nil {
		slog.Error("failed to generate team ID", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create team", requestID)
		return
	}

	if _, err := h.store.CreateTeam(r.Context(), teamID, req.Name); err != nil {
		if errors.Is(err, team.ErrDuplicateTeamID) {
			response.Err(w, http.StatusConflict, "DUPLICATE_TEAM_ID", "Generated team_id collided; retry", requestID)
			return
		}
		slog.Error("failed to create team", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create team", requestID)
		return
	}

	created, err := h.store.GetTeam(r.Context(), teamID)
	if err != nil {
		slog.Error("failed to fetch created team", "error", err)
		response.Err(w, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to create team", requestID)
		return
	}

	response.Success(w, http.StatusCreated, teamResponse{
		TeamNo:      created.TeamNo,
		TeamID:      created.TeamID,
		TeamName:    created.TeamName,
		TotalPoints: created.TotalPoints,
	}, requestID)
}

// List handles GET /teams.
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	teams, err := h.store.ListAll(r.Context())
	if err != nil {
		slog.Error("failed to list teams", "error", err)
		response.Err(w, http.StatusInternalServerError, "STORE_UNAVAILABLE", "Failed to list teams", requestID)
		return
	}

	items := make([]teamResponse, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamResponse{
			TeamNo:      t.TeamNo,
			TeamID:      t.TeamID,
			TeamName:    t.TeamName,
			TotalPoints: t.TotalPoints,
		})
	}

	response.Success(w, http.StatusOK, items, requestID)
}
