package team

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStore implements Store using pgxpool. All compound mutations are
// single UPDATE statements so that concurrent submissions for the same team
// serialize at the row level without explicit transactions.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewStore creates a new Store backed by the given connection pool.
func NewStore(pool *pgxpool.Pool) Store {
	return &PostgresStore{pool: pool}
}

const teamColumns = `
	team_no, team_id, team_name, total_points,
	points, total_attempts, incorrect_attempts,
	cleared_challenges, cleared_at, hints_taken,
	questions, data_to_validate, created_at, updated_at`

func scanTeam(row pgx.Row) (*Team, error) {
	var t Team
	err := row.Scan(
		&t.TeamNo, &t.TeamID, &t.TeamName, &t.TotalPoints,
		&t.Points, &t.TotalAttempts, &t.IncorrectAttempts,
		&t.ClearedChallenges, &t.ClearedAt, &t.HintsTaken,
		&t.Questions, &t.DataToValidate, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// GetTeam retrieves a single team by its ID.
func (s *PostgresStore) GetTeam(ctx context.Context, teamID string) (*Team, error) {
	query := `SELECT` + teamColumns + `
		FROM teams
		WHERE team_id = $1`

	t, err := scanTeam(s.pool.QueryRow(ctx, query, teamID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("querying team: %w", err)
	}

	return t, nil
}

// Exists reports whether a team with the given ID is present.
func (s *PostgresStore) Exists(ctx context.Context, teamID string) (bool, error) {
	var exists bool
	err := s.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM teams WHERE team_id = $1)`, teamID).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("checking team existence: %w", err)
	}
	return exists, nil
}

// CreateTeam inserts a new team record. An empty name defaults to
// "Team - <n>" where n is the current team count.
func (s *PostgresStore) CreateTeam(ctx context.Context, teamID, teamName string) (string, error) {
	query := `
		INSERT INTO teams (team_id, team_name)
		SELECT $1, COALESCE(NULLIF($2, ''), 'Team - ' || (SELECT count(*) FROM teams))
		RETURNING team_no`

	var teamNo int64
	err := s.pool.QueryRow(ctx, query, teamID, teamName).Scan(&teamNo)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return "", ErrDuplicateTeamID
		}
		return "", fmt.Errorf("inserting team: %w", err)
	}

	return teamID, nil
}

// UpdateScore applies the scoring delta and attempt bookkeeping for one
// submission. The correct-path update conditions on the puzzle not already
// being cleared so two concurrent correct submissions award at most once;
// the returned bool reports whether the row was updated.
func (s *PostgresStore) UpdateScore(ctx context.Context, teamID string, isCorrect bool, points int64, puzzleName string) (bool, error) {
	delta := points
	if !isCorrect {
		delta = -points
	}
	var incorrect int64
	if !isCorrect {
		incorrect = 1
	}

	query := `
		UPDATE teams SET
			points = jsonb_set(points, ARRAY[$2::text], to_jsonb(COALESCE((points->>$2)::bigint, 0) + $3)),
			total_points = total_points + $3,
			total_attempts = jsonb_set(total_attempts, ARRAY[$2::text], to_jsonb(COALESCE((total_attempts->>$2)::bigint, 0) + 1)),
			incorrect_attempts = jsonb_set(incorrect_attempts, ARRAY[$2::text], to_jsonb(COALESCE((incorrect_attempts->>$2)::bigint, 0) + $4)),
			cleared_challenges = CASE WHEN $5 THEN cleared_challenges || to_jsonb($2::text) ELSE cleared_challenges END,
			cleared_at = CASE WHEN $5 THEN jsonb_set(cleared_at, ARRAY[$2::text], to_jsonb(now())) ELSE cleared_at END,
			updated_at = now()
		WHERE team_id = $1 AND NOT ($5 AND cleared_challenges ? $2)`

	result, err := s.pool.Exec(ctx, query, teamID, puzzleName, delta, incorrect, isCorrect)
	if err != nil {
		return false, fmt.Errorf("updating score: %w", err)
	}

	if result.RowsAffected() == 0 {
		exists, err := s.Exists(ctx, teamID)
		if err != nil {
			return false, err
		}
		if !exists {
			return false, ErrTeamNotFound
		}
		// Row skipped by the not-already-cleared guard.
		return false, nil
	}

	return true, nil
}

// UpdateHintScore deducts the hint cost with the same bookkeeping as an
// incorrect submission and increments the hint counter, in one statement.
func (s *PostgresStore) UpdateHintScore(ctx context.Context, teamID, puzzleName string, cost int64) error {
	query := `
		UPDATE teams SET
			points = jsonb_set(points, ARRAY[$2::text], to_jsonb(COALESCE((points->>$2)::bigint, 0) - $3)),
			total_points = total_points - $3,
			total_attempts = jsonb_set(total_attempts, ARRAY[$2::text], to_jsonb(COALESCE((total_attempts->>$2)::bigint, 0) + 1)),
			incorrect_attempts = jsonb_set(incorrect_attempts, ARRAY[$2::text], to_jsonb(COALESCE((incorrect_attempts->>$2)::bigint, 0) + 1)),
			hints_taken = jsonb_set(hints_taken, ARRAY[$2::text], to_jsonb(COALESCE((hints_taken->>$2)::bigint, 0) + 1)),
			updated_at = now()
		WHERE team_id = $1`

	result, err := s.pool.Exec(ctx, query, teamID, puzzleName, cost)
	if err != nil {
		return fmt.Errorf("updating hint score: %w", err)
	}

	if result.RowsAffected() == 0 {
		return ErrTeamNotFound
	}

	return nil
}

// SetGeneratedContent writes the question and validation records together.
// The write only happens while no question exists for the puzzle, so the
// first writer wins and repeat calls are no-ops.
func (s *PostgresStore) SetGeneratedContent(ctx context.Context, teamID, puzzleName string, question map[string]any, validation map[string]string) error {
	questionJSON, err := json.Marshal(question)
	if err != nil {
		return fmt.Errorf("encoding question record: %w", err)
	}
	validationJSON, err := json.Marshal(validation)
	if err != nil {
		return fmt.Errorf("encoding validation record: %w", err)
	}

	query := `
		UPDATE teams SET
			questions = jsonb_set(questions, ARRAY[$2::text], $3::jsonb),
			data_to_validate = jsonb_set(data_to_validate, ARRAY[$2::text], $4::jsonb),
			updated_at = now()
		WHERE team_id = $1 AND NOT (questions ? $2)`

	result, err := s.pool.Exec(ctx, query, teamID, puzzleName, string(questionJSON), string(validationJSON))
	if err != nil {
		return fmt.Errorf("setting generated content: %w", err)
	}

	if result.RowsAffected() == 0 {
		exists, err := s.Exists(ctx, teamID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrTeamNotFound
		}
		// Already generated; memoized content stands.
	}

	return nil
}

// ListAll retrieves every team, unordered.
func (s *PostgresStore) ListAll(ctx context.Context) ([]Team, error) {
	query := `SELECT` + teamColumns + ` FROM teams`

	rows, err := s.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning team row: %w", err)
		}
		teams = append(teams, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating team rows: %w", err)
	}

	if teams == nil {
		teams = []Team{}
	}

	return teams, nil
}
