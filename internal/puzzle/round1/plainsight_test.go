package round1_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigmactf/enigma/internal/puzzle"
	"github.com/enigmactf/enigma/internal/puzzle/round1"
)

func newPlainSight(t *testing.T, store *memStore) *round1.PlainSight {
	t.Helper()
	desc := puzzle.Descriptor{
		Points:  100,
		Penalty: 20,
		Hints: []puzzle.Hint{
			{Cost: 20, Text: "Not everything you cannot see is absent."},
			{Cost: 40, Text: "Strip the zero-width characters and read what remains."},
		},
	}
	return round1.NewPlainSight(store, testOptions(t), desc)
}

func isZeroWidth(r rune) bool {
	return r >= '\u200b' && r <= '\u200f'
}

// extractHidden recovers the characters wrapped in matching zero-width
// markers, the way a solver would.
func extractHidden(payload string) string {
	runes := []rune(payload)
	var out []rune
	for i := 0; i+2 < len(runes); i++ {
		if isZeroWidth(runes[i]) && runes[i+2] == runes[i] && !isZeroWidth(runes[i+1]) {
			out = append(out, runes[i+1])
			i += 2
		}
	}
	return string(out)
}

func TestPlainSight_FlagRecoverableFromPayload(t *testing.T) {
	store := newMemStore(testTeam)
	g := newPlainSight(t, store)

	payload, err := g.GenerateQuestion(context.Background(), testTeam)
	require.NoError(t, err)
	assert.Equal(t, "PlainSight", payload["title"])

	hidden, _ := payload["payload"].(string)
	require.NotEmpty(t, hidden)

	validation := store.validation(testTeam, "PlainSight")
	require.NotNil(t, validation)
	require.Len(t, validation["flag"], 10)

	assert.Equal(t, validation["flag"], extractHidden(hidden))
}

func TestPlainSight_PayloadShape(t *testing.T) {
	store := newMemStore(testTeam)
	g := newPlainSight(t, store)

	payload, err := g.GenerateQuestion(context.Background(), testTeam)
	require.NoError(t, err)

	runes := []rune(payload["payload"].(string))

	// 40 carrier characters, 10 flag characters, 20 markers.
	assert.Len(t, runes, 70)

	var visible []rune
	for _, r := range runes {
		if !isZeroWidth(r) {
			visible = append(visible, r)
		}
	}
	assert.Len(t, visible, 50)
}

func TestPlainSight_GenerateQuestion_Memoizes(t *testing.T) {
	store := newMemStore(testTeam)
	g := newPlainSight(t, store)
	ctx := context.Background()

	first, err := g.GenerateQuestion(ctx, testTeam)
	require.NoError(t, err)
	validation := store.validation(testTeam, "PlainSight")

	second, err := g.GenerateQuestion(ctx, testTeam)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, validation, store.validation(testTeam, "PlainSight"))
}

func TestPlainSight_GenerateQuestion_Deterministic(t *testing.T) {
	ctx := context.Background()

	first, err := newPlainSight(t, newMemStore(testTeam)).GenerateQuestion(ctx, testTeam)
	require.NoError(t, err)
	second, err := newPlainSight(t, newMemStore(testTeam)).GenerateQuestion(ctx, testTeam)
	require.NoError(t, err)

	assert.Equal(t, first["payload"], second["payload"])
}
