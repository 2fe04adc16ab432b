package team

import "time"

// Team represents a row in the teams table. Progress fields are keyed by
// puzzle name.
type Team struct {
	TeamNo            int64
	TeamID            string
	TeamName          string
	TotalPoints       int64
	Points            map[string]int64
	TotalAttempts     map[string]int64
	IncorrectAttempts map[string]int64
	ClearedChallenges []string
	ClearedAt         map[string]time.Time
	HintsTaken        map[string]int64
	Questions         map[string]map[string]any
	DataToValidate    map[string]map[string]string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Cleared reports whether the team has solved the named puzzle.
func (t *Team) Cleared(puzzleName string) bool {
	for _, name := range t.ClearedChallenges {
		if name == puzzleName {
			return true
		}
	}
	return false
}

// Question returns the memoized generated content for the named puzzle,
// or nil if the puzzle has not been issued yet.
func (t *Team) Question(puzzleName string) map[string]any {
	return t.Questions[puzzleName]
}
