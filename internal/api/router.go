package api

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/enigmactf/enigma/internal/api/handler"
	"github.com/enigmactf/enigma/internal/api/middleware"
	"github.com/enigmactf/enigma/internal/auth"
	"github.com/enigmactf/enigma/internal/team"
)

// RouterDeps holds all dependencies needed by the router.
type RouterDeps struct {
	Engine   handler.ChallengeService
	Store    team.Store
	Auth     *auth.Service
	DBPinger handler.DBPinger
	Version  string
	Puzzles  int
	Links    handler.Links
}

// NewRouter creates and configures a Chi router with all middleware and routes.
func NewRouter(deps RouterDeps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery)
	r.Use(chimiddleware.Logger)

	healthHandler := handler.NewHealthHandler(deps.DBPinger, deps.Version, deps.Puzzles)
	r.Get("/", healthHandler.Home)
	r.Get("/health", healthHandler.ServeHTTP)

	questionHandler := handler.NewQuestionHandler(deps.Engine)
	submissionHandler := handler.NewSubmissionHandler(deps.Engine)
	hintHandler := handler.NewHintHandler(deps.Engine)
	fileHandler := handler.NewFileHandler(deps.Engine)
	r.Get("/questions", questionHandler.Get)
	r.Post("/submit", submissionHandler.Post)
	r.Get("/hint", hintHandler.Get)
	r.Get("/file", fileHandler.Get)

	scoreHandler := handler.NewScoreHandler(deps.Store)
	r.Get("/scores", scoreHandler.Get)

	instructionsHandler := handler.NewInstructionsHandler(deps.Links)
	r.Get("/instructions", instructionsHandler.Get)

	teamHandler := handler.NewTeamHandler(deps.Store)
	r.Route("/teams", func(r chi.Router) {
		r.Use(middleware.OperatorAuth(deps.Auth))
		r.Post("/", teamHandler.Create)
		r.Get("/", teamHandler.List)
	})

	return r
}
