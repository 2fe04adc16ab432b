// Package importer loads a team roster from a CSV file into the store,
// assigning fresh team IDs where the file has none, and writes the resolved
// roster back so operators can hand out the IDs.
package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/enigmactf/enigma/internal/team"
)

// Result summarizes an import run.
type Result struct {
	Rows    int
	Created int
}

// ImportRoster reads a roster CSV with team_name and team_id columns,
// creates missing teams, and rewrites the file with the assigned IDs.
//
// Per-row rules: an empty ID gets a fresh one; a known ID with a matching
// name is left alone; a known ID under a different name is treated as a new
// team and gets a fresh ID; an unknown ID is kept and created as given.
func ImportRoster(ctx context.Context, store team.Store, path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening roster: %w", err)
	}
	records, err := csv.NewReader(f).ReadAll()
	f.Close()
	if err != nil {
		return nil, fmt.Errorf("parsing roster: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("roster %s is empty", path)
	}

	nameCol, idCol := -1, -1
	for i, col := range records[0] {
		switch strings.TrimSpace(col) {
		case "team_name":
			nameCol = i
		case "team_id":
			idCol = i
		}
	}
	if nameCol < 0 || idCol < 0 {
		return nil, fmt.Errorf("roster %s must have team_name and team_id columns", path)
	}

	result := &Result{}
	for _, row := range records[1:] {
		result.Rows++

		name := strings.TrimSpace(row[nameCol])
		id := strings.TrimSpace(row[idCol])

		resolvedID, created, err := resolveRow(ctx, store, id, name)
		if err != nil {
			return nil, fmt.Errorf("importing team %q: %w", name, err)
		}
		row[idCol] = resolvedID

		if created {
			result.Created++
			slog.Info("team created", "teamName", name, "teamId", resolvedID)
		} else {
			slog.Info("team already exists", "teamName", name, "teamId", resolvedID)
		}
	}

	out, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("rewriting roster: %w", err)
	}
	defer out.Close()

	w := csv.NewWriter(out)
	if err := w.WriteAll(records); err != nil {
		return nil, fmt.Errorf("writing roster: %w", err)
	}

	return result, nil
}

func resolveRow(ctx context.Context, store team.Store, id, name string) (string, bool, error) {
	if id == "" {
		newID, err := team.NewTeamID(ctx, store)
		if err != nil {
			return "", false, err
		}
		if _, err := store.CreateTeam(ctx, newID, name); err != nil {
			return "", false, err
		}
		return newID, true, nil
	}

	existing, err := store.GetTeam(ctx, id)
	if errors.Is(err, team.ErrTeamNotFound) {
		if _, err := store.CreateTeam(ctx, id, name); err != nil {
			return "", false, err
		}
		return id, true, nil
	}
	if err != nil {
		return "", false, err
	}

	if existing.TeamName != name {
		// Same ID, different team: the roster row is a new team.
		newID, err := team.NewTeamID(ctx, store)
		if err != nil {
			return "", false, err
		}
		if _, err := store.CreateTeam(ctx, newID, name); err != nil {
			return "", false, err
		}
		return newID, true, nil
	}

	return id, false, nil
}
