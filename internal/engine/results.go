package engine

// Outcome status values.
const (
	StatusSuccess = "success"
	StatusFailure = "failure"
	StatusInfo    = "info"
)

const alreadyClearedMessage = "You have already cleared this level."

// HintRef is one entry of a question bundle's hint list: the ordinal and its
// cost, never the text.
type HintRef struct {
	HintNo int   `json:"hint_no"`
	Points int64 `json:"points"`
}

// HintMeta summarizes a puzzle's hints in a question bundle.
type HintMeta struct {
	Count     int       `json:"count"`
	HintsList []HintRef `json:"hints_list"`
}

// QuestionBundle is the response to a generate-all-questions request.
type QuestionBundle struct {
	Note           string           `json:"note"`
	Questions      []map[string]any `json:"questions"`
	TotalQuestions int              `json:"total_questions"`
}

// SubmissionResult is the outcome of an answer submission.
type SubmissionResult struct {
	PuzzleID      string `json:"puzzle_id"`
	PuzzleName    string `json:"puzzle_name"`
	Status        string `json:"status"`
	Message       string `json:"message"`
	PointsAwarded *int64 `json:"points_awarded,omitempty"`
	PenaltyPoints *int64 `json:"penalty_points,omitempty"`
	TotalScore    int64  `json:"total_score"`
}

// HintResult is the outcome of a hint request. HintCost is only present
// when this call paid for the hint; TotalScore is absent on the
// already-cleared outcome.
type HintResult struct {
	PuzzleID   string `json:"puzzle_id"`
	PuzzleName string `json:"puzzle_name"`
	Status     string `json:"status"`
	Message    string `json:"message,omitempty"`
	HintNo     int    `json:"hint_no,omitempty"`
	Hint       string `json:"hint,omitempty"`
	HintCost   *int64 `json:"hint_cost,omitempty"`
	TotalScore *int64 `json:"total_score,omitempty"`
}
