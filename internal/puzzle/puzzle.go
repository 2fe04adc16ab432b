package puzzle

import "context"

// Hint is one sequentially-unlockable clue. Cost is deducted the first time
// the hint is revealed.
type Hint struct {
	Cost int64  `json:"points"`
	Text string `json:"text"`
}

// Descriptor is a generator's static metadata: the reward for solving, the
// deduction for a wrong submission, and the ordered hint sequence
// (indexed from 1 by callers).
type Descriptor struct {
	Points  int64  `json:"points"`
	Penalty int64  `json:"penalty"`
	Hints   []Hint `json:"hints,omitempty"`
}

// Generator produces per-team deterministic puzzle content. Implementations
// memoize generated content through the team store so repeated calls return
// the same payload.
type Generator interface {
	// Name is the puzzle's stable name, used as the key for all per-team
	// progress fields.
	Name() string

	// Descriptor returns the puzzle's static metadata.
	Descriptor() Descriptor

	// GenerateQuestion returns the public question payload for the team,
	// writing the question and its validation record to the store on the
	// first call.
	GenerateQuestion(ctx context.Context, teamID string) (map[string]any, error)
}

// ArtifactProvider is the optional capability for puzzles with a
// downloadable artifact. Callers discover it by type assertion on the
// resolved Generator.
type ArtifactProvider interface {
	// FileLocation returns the filesystem path of the team's artifact,
	// synthesizing it on first call.
	FileLocation(ctx context.Context, teamID string) (string, error)
}

// CatalogEntry pairs a puzzle's default descriptor with its constructor.
// Rounds expose a catalog; the round manifest selects and orders entries
// from it, optionally overriding point values.
type CatalogEntry struct {
	Defaults Descriptor
	Build    func(desc Descriptor) Generator
}
