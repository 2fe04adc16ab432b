package engine

import "errors"

// Engine errors are sentinel values so the boundary layer can distinguish
// them with errors.Is. Call sites wrap them with the offending detail.
var (
	// ErrMissingParameter is returned when a required identifier or
	// submission field is absent.
	ErrMissingParameter = errors.New("missing required parameter")

	// ErrInvalidTeam is returned when a team ID is well-formed but unknown.
	ErrInvalidTeam = errors.New("team_id invalid")

	// ErrInvalidPuzzle is returned when a puzzle ID is well-formed but unknown.
	ErrInvalidPuzzle = errors.New("puzzle_id invalid")

	// ErrValidationDataMissing is returned when a submission arrives before
	// the question has been generated for the team.
	ErrValidationDataMissing = errors.New("validation data missing")

	// ErrInvalidHintNumber is returned when a hint ordinal is out of range.
	ErrInvalidHintNumber = errors.New("invalid hint number")

	// ErrNoFileForPuzzle is returned when a puzzle has no downloadable artifact.
	ErrNoFileForPuzzle = errors.New("puzzle has no file")
)
