package round1

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/enigmactf/enigma/internal/puzzle"
	"github.com/enigmactf/enigma/internal/team"
)

const randomSequenceName = "RandomSequence"

const flagLength = 10

// RandomSequence hides a flag{...} marker inside sample text, hex-encodes
// the result character by character, and serves it as a downloadable file.
type RandomSequence struct {
	store team.Store
	opts  Options
	desc  puzzle.Descriptor
}

// NewRandomSequence creates the RandomSequence generator.
func NewRandomSequence(store team.Store, opts Options, desc puzzle.Descriptor) *RandomSequence {
	return &RandomSequence{store: store, opts: opts, desc: desc}
}

func (g *RandomSequence) Name() string { return randomSequenceName }

func (g *RandomSequence) Descriptor() puzzle.Descriptor { return g.desc }

// textToHex converts text to space-separated hex code points.
func textToHex(text string) string {
	parts := make([]string, 0, len(text))
	for _, r := range text {
		parts = append(parts, fmt.Sprintf("%x", r))
	}
	return strings.Join(parts, " ")
}

// GenerateQuestion returns the team's question payload, synthesizing the
// artifact and memoizing its location on first call.
func (g *RandomSequence) GenerateQuestion(ctx context.Context, teamID string) (map[string]any, error) {
	t, err := g.store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	record := t.Question(randomSequenceName)
	if record == nil {
		location, err := g.writeArtifact(teamID)
		if err != nil {
			return nil, err
		}
		flag := g.flagValue(teamID)

		question := map[string]any{"location": location}
		validation := map[string]string{"flag": flag}
		if err := g.store.SetGeneratedContent(ctx, teamID, randomSequenceName, question, validation); err != nil {
			return nil, err
		}
	}

	description := fmt.Sprintf(
		"A flag of the form flag{...} is hidden inside a sequence of numbers.\n"+
			"Download your file from %s (team_id and puzzle_id as query parameters),\n"+
			"recover the flag value, and submit it as the field \"flag\" to %s.",
		g.opts.FileURL, g.opts.SubmitURL,
	)

	return map[string]any{
		"title":       randomSequenceName,
		"description": description,
	}, nil
}

// FileLocation returns the team's artifact path, recreating the file if it
// is missing from disk. Synthesis is deterministic, so a recreated file is
// identical to the original.
func (g *RandomSequence) FileLocation(ctx context.Context, teamID string) (string, error) {
	if _, err := g.GenerateQuestion(ctx, teamID); err != nil {
		return "", err
	}

	location := g.artifactPath(teamID)
	if _, err := os.Stat(location); err != nil {
		if location, err = g.writeArtifact(teamID); err != nil {
			return "", err
		}
	}
	return location, nil
}

func (g *RandomSequence) artifactPath(teamID string) string {
	return filepath.Join(g.opts.FilesDir, fmt.Sprintf("%s_%s", randomSequenceName, teamID))
}

// flagValue derives the team's flag from the deterministic seed.
func (g *RandomSequence) flagValue(teamID string) string {
	r := seededRand(teamID, randomSequenceName)
	return randomString(r, flagLength)
}

// writeArtifact builds the hex sequence with the embedded flag and writes it
// to the team's file, returning the path.
func (g *RandomSequence) writeArtifact(teamID string) (string, error) {
	r := seededRand(teamID, randomSequenceName)
	flag := fmt.Sprintf("flag{%s}", randomString(r, flagLength))

	picks := r.Perm(len(samples))[:10]
	var b strings.Builder
	for _, idx := range picks {
		b.WriteString(samples[idx])
	}
	data := b.String()
	position := r.Intn(len(data) + 1)
	data = data[:position] + flag + data[position:]

	if err := os.MkdirAll(g.opts.FilesDir, 0o755); err != nil {
		return "", fmt.Errorf("creating files directory: %w", err)
	}

	location := g.artifactPath(teamID)
	if err := os.WriteFile(location, []byte(textToHex(data)), 0o644); err != nil {
		return "", fmt.Errorf("writing artifact: %w", err)
	}
	return location, nil
}
