package team

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// NewTeamID pre-generates a collision-free opaque team ID (a dashless
// UUID). Collisions are vanishingly rare; the retry loop guards against
// them anyway since CreateTeam rejects duplicates outright.
func NewTeamID(ctx context.Context, s Store) (string, error) {
	for i := 0; i < 5; i++ {
		id := strings.ReplaceAll(uuid.New().String(), "-", "")
		exists, err := s.Exists(ctx, id)
		if err != nil {
			return "", err
		}
		if !exists {
			return id, nil
		}
	}
	return "", fmt.Errorf("could not generate a unique team ID")
}
