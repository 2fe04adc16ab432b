package handler

import (
	"fmt"
	"net/http"

	"github.com/enigmactf/enigma/internal/api/middleware"
	"github.com/enigmactf/enigma/internal/api/response"
)

// Links are the public endpoints the instructions refer to.
type Links struct {
	Questions    string
	Submit       string
	Hint         string
	File         string
	Instructions string
}

// InstructionsHandler handles GET /instructions.
type InstructionsHandler struct {
	lines []string
}

// NewInstructionsHandler creates a new InstructionsHandler with the contest
// instructions rendered against the given links.
func NewInstructionsHandler(links Links) *InstructionsHandler {
	return &InstructionsHandler{
		lines: []string{
			"Welcome to the challenge.",
			fmt.Sprintf("Fetch your questions with a GET request to %s?team_id=<your team_id>.", links.Questions),
			fmt.Sprintf("Submit answers as a JSON POST to %s with team_id, puzzle_id and the answer fields.", links.Submit),
			"All submitted answer fields must be strings.",
			fmt.Sprintf("Hints cost points and must be taken in order: GET %s?team_id=...&puzzle_id=...&hint_no=1.", links.Hint),
			fmt.Sprintf("Puzzles with files serve them at %s?team_id=...&puzzle_id=... .", links.File),
			"Wrong answers deduct the puzzle's penalty; solved puzzles stop scoring.",
			fmt.Sprintf("These instructions live at %s.", links.Instructions),
		},
	}
}

type instructionsData struct {
	Instructions []string `json:"instructions"`
}

// Get returns the contest instructions.
func (h *InstructionsHandler) Get(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	response.Success(w, http.StatusOK, instructionsData{Instructions: h.lines}, requestID)
}
