package team

import (
	"context"
	"errors"
)

// ErrTeamNotFound is returned when a team record is not found.
var ErrTeamNotFound = errors.New("team not found")

// ErrDuplicateTeamID is returned when a team with the same team_id already exists.
var ErrDuplicateTeamID = errors.New("team_id already exists")

// Store is the sole authority for persisted team state.
type Store interface {
	// GetTeam retrieves a team by its ID. Returns ErrTeamNotFound if absent.
	GetTeam(ctx context.Context, teamID string) (*Team, error)

	// Exists reports whether a team with the given ID is present.
	Exists(ctx context.Context, teamID string) (bool, error)

	// CreateTeam inserts a new record with all counters zeroed and empty
	// collections. teamName may be empty, in which case a sequential
	// default name is assigned. Returns ErrDuplicateTeamID on collision.
	CreateTeam(ctx context.Context, teamID, teamName string) (string, error)

	// UpdateScore applies +points if correct else -points to both the
	// per-puzzle score and total_points, and bumps the attempt counters.
	// On a correct submission it also appends the puzzle to
	// cleared_challenges and stamps the completion time, conditioned on
	// the puzzle not already being cleared; the returned bool reports
	// whether the update was applied. The whole mutation is a single
	// statement against the store.
	UpdateScore(ctx context.Context, teamID string, isCorrect bool, points int64, puzzleName string) (bool, error)

	// UpdateHintScore deducts the hint cost (with the same attempt
	// bookkeeping as an incorrect submission) and increments the hint
	// counter for the puzzle, atomically.
	UpdateHintScore(ctx context.Context, teamID, puzzleName string, cost int64) error

	// SetGeneratedContent writes the memoized question record and its
	// validation record together, or not at all. The write is a
	// check-and-set: once a question exists for the puzzle the call is a
	// no-op, so concurrent first-time generation converges on one payload.
	SetGeneratedContent(ctx context.Context, teamID, puzzleName string, question map[string]any, validation map[string]string) error

	// ListAll retrieves every team, unordered. Callers sort as needed.
	ListAll(ctx context.Context) ([]Team, error)
}
