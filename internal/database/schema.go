package database

import (
	"context"
	"fmt"
)

// teamsSchema is the single table owned by this service. Progress fields are
// JSONB so that score, attempt and hint mutations can be applied as one
// UPDATE statement each.
const teamsSchema = `
CREATE TABLE IF NOT EXISTS teams (
	team_no            BIGINT GENERATED ALWAYS AS IDENTITY,
	team_id            TEXT PRIMARY KEY,
	team_name          TEXT NOT NULL,
	total_points       BIGINT NOT NULL DEFAULT 0,
	points             JSONB NOT NULL DEFAULT '{}',
	total_attempts     JSONB NOT NULL DEFAULT '{}',
	incorrect_attempts JSONB NOT NULL DEFAULT '{}',
	cleared_challenges JSONB NOT NULL DEFAULT '[]',
	cleared_at         JSONB NOT NULL DEFAULT '{}',
	hints_taken        JSONB NOT NULL DEFAULT '{}',
	questions          JSONB NOT NULL DEFAULT '{}',
	data_to_validate   JSONB NOT NULL DEFAULT '{}',
	created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// EnsureSchema creates the teams table if it does not exist.
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, teamsSchema); err != nil {
		return fmt.Errorf("ensuring teams schema: %w", err)
	}
	return nil
}
