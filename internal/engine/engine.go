// Package engine enforces the cross-cutting challenge rules: idempotent
// question generation, answer validation with score bookkeeping, and
// sequential hint disclosure. It is the only component boundary handlers
// talk to.
package engine

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/enigmactf/enigma/internal/puzzle"
	"github.com/enigmactf/enigma/internal/team"
)

// Engine orchestrates question generation, answer validation and hint
// disclosure over the team store and the puzzle registry.
type Engine struct {
	store    team.Store
	registry *puzzle.Registry
}

// New creates an Engine.
func New(store team.Store, registry *puzzle.Registry) *Engine {
	return &Engine{store: store, registry: registry}
}

// ValidateTeam checks that a team ID is present and known.
func (e *Engine) ValidateTeam(ctx context.Context, teamID string) error {
	if teamID == "" {
		return fmt.Errorf("%w: team_id", ErrMissingParameter)
	}
	exists, err := e.store.Exists(ctx, teamID)
	if err != nil {
		return err
	}
	if !exists {
		return ErrInvalidTeam
	}
	return nil
}

// ValidateTeamAndPuzzle checks both identifiers and resolves the puzzle's
// generator.
func (e *Engine) ValidateTeamAndPuzzle(ctx context.Context, teamID, puzzleID string) (puzzle.Generator, error) {
	if err := e.ValidateTeam(ctx, teamID); err != nil {
		return nil, err
	}
	if puzzleID == "" {
		return nil, fmt.Errorf("%w: puzzle_id", ErrMissingParameter)
	}
	g, ok := e.registry.Resolve(puzzleID)
	if !ok {
		return nil, ErrInvalidPuzzle
	}
	return g, nil
}

// GenerateAllQuestions issues every registered puzzle to the team (a no-op
// for puzzles already issued) and returns the decorated question payloads.
// Safe to call repeatedly: memoized content makes the output identical.
func (e *Engine) GenerateAllQuestions(ctx context.Context, teamID string) (*QuestionBundle, error) {
	if err := e.ValidateTeam(ctx, teamID); err != nil {
		return nil, err
	}

	bundle := &QuestionBundle{
		Note:      "All the data that is submitted via POST method should be of type string.",
		Questions: make([]map[string]any, 0, e.registry.Len()),
	}

	for _, id := range e.registry.IDs() {
		g, _ := e.registry.Resolve(id)
		payload, err := g.GenerateQuestion(ctx, teamID)
		if err != nil {
			return nil, fmt.Errorf("generating %s question: %w", g.Name(), err)
		}
		bundle.Questions = append(bundle.Questions, decorate(id, g.Descriptor(), payload))
	}

	bundle.TotalQuestions = len(bundle.Questions)
	return bundle, nil
}

// decorate merges the puzzle's public metadata into its question payload.
// The hint list deliberately exposes ordinals and costs only; hint text is
// revealed by GetHint alone.
func decorate(puzzleID string, desc puzzle.Descriptor, payload map[string]any) map[string]any {
	out := make(map[string]any, len(payload)+4)
	for k, v := range payload {
		out[k] = v
	}

	refs := make([]HintRef, 0, len(desc.Hints))
	for i, h := range desc.Hints {
		refs = append(refs, HintRef{HintNo: i + 1, Points: h.Cost})
	}

	out["puzzle_id"] = puzzleID
	out["points"] = desc.Points
	out["penalty"] = desc.Penalty
	out["hints"] = HintMeta{Count: len(desc.Hints), HintsList: refs}
	return out
}

// ValidateSubmission checks the submitted fields against the team's
// memoized validation record and applies the scoring outcome.
func (e *Engine) ValidateSubmission(ctx context.Context, teamID, puzzleID string, fields map[string]string) (*SubmissionResult, error) {
	g, err := e.ValidateTeamAndPuzzle(ctx, teamID, puzzleID)
	if err != nil {
		return nil, err
	}

	t, err := e.store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	puzzleName := g.Name()
	totalScore := t.TotalPoints

	if t.Cleared(puzzleName) {
		return alreadyClearedSubmission(puzzleID, puzzleName, totalScore), nil
	}

	expected := t.DataToValidate[puzzleName]
	if len(expected) == 0 {
		return nil, fmt.Errorf("%w: make a GET request to /questions before submitting", ErrValidationDataMissing)
	}

	// Sorted iteration keeps the first-mismatch short-circuit deterministic;
	// the failing field is never disclosed either way.
	keys := make([]string, 0, len(expected))
	for k := range expected {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, ok := fields[key]; !ok {
			return nil, fmt.Errorf("%w: %s", ErrMissingParameter, key)
		}
	}

	desc := g.Descriptor()
	for _, key := range keys {
		if strings.TrimSpace(fields[key]) != strings.TrimSpace(expected[key]) {
			penalty := desc.Penalty
			if _, err := e.store.UpdateScore(ctx, teamID, false, penalty, puzzleName); err != nil {
				return nil, err
			}
			return &SubmissionResult{
				PuzzleID:      puzzleID,
				PuzzleName:    puzzleName,
				Status:        StatusFailure,
				Message:       "Your answer is incorrect.",
				PenaltyPoints: &penalty,
				TotalScore:    totalScore - penalty,
			}, nil
		}
	}

	points := desc.Points
	applied, err := e.store.UpdateScore(ctx, teamID, true, points, puzzleName)
	if err != nil {
		return nil, err
	}
	if !applied {
		// A concurrent correct submission cleared the puzzle first.
		return alreadyClearedSubmission(puzzleID, puzzleName, totalScore), nil
	}

	return &SubmissionResult{
		PuzzleID:      puzzleID,
		PuzzleName:    puzzleName,
		Status:        StatusSuccess,
		Message:       "Your answer is correct.",
		PointsAwarded: &points,
		TotalScore:    totalScore + points,
	}, nil
}

func alreadyClearedSubmission(puzzleID, puzzleName string, totalScore int64) *SubmissionResult {
	return &SubmissionResult{
		PuzzleID:   puzzleID,
		PuzzleName: puzzleName,
		Status:     StatusInfo,
		Message:    alreadyClearedMessage,
		TotalScore: totalScore,
	}
}

// GetHint discloses hints sequentially: an already-paid hint is returned at
// no new cost, the next hint is paid for exactly once, and skipping ahead
// is rejected.
func (e *Engine) GetHint(ctx context.Context, teamID, puzzleID string, hintNo int) (*HintResult, error) {
	g, err := e.ValidateTeamAndPuzzle(ctx, teamID, puzzleID)
	if err != nil {
		return nil, err
	}

	t, err := e.store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	puzzleName := g.Name()
	if t.Cleared(puzzleName) {
		return &HintResult{
			PuzzleID:   puzzleID,
			PuzzleName: puzzleName,
			Status:     StatusInfo,
			Message:    alreadyClearedMessage,
		}, nil
	}

	hints := g.Descriptor().Hints
	if hintNo < 1 || hintNo > len(hints) {
		var msg string
		switch len(hints) {
		case 0:
			msg = "No hints available for this level."
		case 1:
			msg = "There is only one hint available for this level."
		default:
			msg = fmt.Sprintf("Please provide a hint number between 1 and %d.", len(hints))
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidHintNumber, msg)
	}

	taken := t.HintsTaken[puzzleName]
	switch {
	case int64(hintNo) <= taken:
		// Already paid for; no new cost.
		return &HintResult{
			PuzzleID:   puzzleID,
			PuzzleName: puzzleName,
			Status:     StatusSuccess,
			HintNo:     hintNo,
			Hint:       hints[hintNo-1].Text,
			TotalScore: &t.TotalPoints,
		}, nil

	case int64(hintNo) == taken+1:
		cost := hints[hintNo-1].Cost
		if err := e.store.UpdateHintScore(ctx, teamID, puzzleName, cost); err != nil {
			return nil, err
		}
		total := t.TotalPoints - cost
		return &HintResult{
			PuzzleID:   puzzleID,
			PuzzleName: puzzleName,
			Status:     StatusSuccess,
			HintNo:     hintNo,
			Hint:       hints[hintNo-1].Text,
			HintCost:   &cost,
			TotalScore: &total,
		}, nil

	default:
		return &HintResult{
			PuzzleID:   puzzleID,
			PuzzleName: puzzleName,
			Status:     StatusFailure,
			Message:    "Hints must be requested in sequential order.",
		}, nil
	}
}

// GetFileLocation resolves the puzzle's downloadable artifact for the team.
// Puzzles without the artifact capability yield ErrNoFileForPuzzle.
func (e *Engine) GetFileLocation(ctx context.Context, teamID, puzzleID string) (string, error) {
	g, err := e.ValidateTeamAndPuzzle(ctx, teamID, puzzleID)
	if err != nil {
		return "", err
	}

	provider, ok := g.(puzzle.ArtifactProvider)
	if !ok {
		return "", ErrNoFileForPuzzle
	}

	return provider.FileLocation(ctx, teamID)
}
