package handler

import (
	"context"
	"net/http"

	"github.com/enigmactf/enigma/internal/api/middleware"
	"github.com/enigmactf/enigma/internal/api/response"
)

// DBPinger abstracts the database connectivity check.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler handles GET / and GET /health.
type HealthHandler struct {
	pinger  DBPinger
	version string
	puzzles int
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(pinger DBPinger, version string, puzzles int) *HealthHandler {
	return &HealthHandler{pinger: pinger, version: version, puzzles: puzzles}
}

type databaseStatus struct {
	Connected bool `json:"connected"`
}

type healthData struct {
	Status   string         `json:"status"`
	Version  string         `json:"version"`
	Puzzles  int            `json:"puzzles"`
	Database databaseStatus `json:"database"`
}

// ServeHTTP handles the health check request.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	status := "healthy"
	connected := true
	if err := h.pinger.Ping(r.Context()); err != nil {
		status = "degraded"
		connected = false
	}

	data := healthData{
		Status:   status,
		Version:  h.version,
		Puzzles:  h.puzzles,
		Database: databaseStatus{Connected: connected},
	}

	response.Success(w, http.StatusOK, data, requestID)
}

type statusData struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// Home handles GET /, the plain server-status endpoint.
func (h *HealthHandler) Home(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	response.Success(w, http.StatusOK, statusData{
		Message: "Server is up and running!",
		Status:  "success",
	}, requestID)
}
