package round1

import (
	"context"
	"fmt"
	"strings"

	"github.com/enigmactf/enigma/internal/puzzle"
	"github.com/enigmactf/enigma/internal/team"
)

const plainSightName = "PlainSight"

// PlainSight hides a flag inside a visible carrier string using zero-width
// characters: each flag character is preceded by a zero-width marker, so the
// flag reads out in order once the carrier text is discarded.
type PlainSight struct {
	store team.Store
	opts  Options
	desc  puzzle.Descriptor
}

// NewPlainSight creates the PlainSight generator.
func NewPlainSight(store team.Store, opts Options, desc puzzle.Descriptor) *PlainSight {
	return &PlainSight{store: store, opts: opts, desc: desc}
}

func (g *PlainSight) Name() string { return plainSightName }

func (g *PlainSight) Descriptor() puzzle.Descriptor { return g.desc }

// GenerateQuestion returns the team's question payload, memoizing the
// carrier string and flag on first call.
func (g *PlainSight) GenerateQuestion(ctx context.Context, teamID string) (map[string]any, error) {
	t, err := g.store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	record := t.Question(plainSightName)
	if record == nil {
		question, validation := g.synthesize(teamID)
		if err := g.store.SetGeneratedContent(ctx, teamID, plainSightName, question, validation); err != nil {
			return nil, err
		}
		record = question
	}

	payload, _ := record["payload"].(string)

	description := fmt.Sprintf(
		"The string below contains a %d-character flag that you cannot see.\n"+
			"Recover it and submit it as the field \"flag\" to %s.",
		flagLength, g.opts.SubmitURL,
	)

	return map[string]any{
		"title":       plainSightName,
		"description": description,
		"payload":     payload,
	}, nil
}

// synthesize builds the carrier with the hidden flag. Each flag character is
// wrapped in zero-width markers and spliced after every fourth carrier
// character.
func (g *PlainSight) synthesize(teamID string) (map[string]any, map[string]string) {
	r := seededRand(teamID, plainSightName)

	flag := randomString(r, flagLength)
	carrier := randomString(r, 4*flagLength)

	var b strings.Builder
	for i, c := range flag {
		b.WriteString(carrier[i*4 : (i+1)*4])
		marker := invisibleCharacters[r.Intn(len(invisibleCharacters))]
		b.WriteRune(marker)
		b.WriteRune(c)
		b.WriteRune(marker)
	}

	question := map[string]any{"payload": b.String()}
	validation := map[string]string{"flag": flag}
	return question, validation
}
