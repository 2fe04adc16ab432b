package puzzle_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigmactf/enigma/internal/puzzle"
)

// fakeGenerator is a minimal Generator for registry tests.
type fakeGenerator struct {
	name string
	desc puzzle.Descriptor
}

func (g *fakeGenerator) Name() string                  { return g.name }
func (g *fakeGenerator) Descriptor() puzzle.Descriptor { return g.desc }
func (g *fakeGenerator) GenerateQuestion(_ context.Context, _ string) (map[string]any, error) {
	return map[string]any{"title": g.name}, nil
}

func TestLoad_AssignsSequentialIDs(t *testing.T) {
	r, err := puzzle.Load([]puzzle.Generator{
		&fakeGenerator{name: "Alpha"},
		&fakeGenerator{name: "Beta"},
		&fakeGenerator{name: "Gamma"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"1", "2", "3"}, r.IDs())
	assert.Equal(t, 3, r.Len())

	g, ok := r.Resolve("2")
	require.True(t, ok)
	assert.Equal(t, "Beta", g.Name())
}

func TestLoad_EmptySetFails(t *testing.T) {
	_, err := puzzle.Load(nil)
	assert.Error(t, err)
}

func TestLoad_DuplicateNameFails(t *testing.T) {
	_, err := puzzle.Load([]puzzle.Generator{
		&fakeGenerator{name: "Alpha"},
		&fakeGenerator{name: "Alpha"},
	})
	assert.Error(t, err)
}

func TestLoad_EmptyNameFails(t *testing.T) {
	_, err := puzzle.Load([]puzzle.Generator{&fakeGenerator{name: ""}})
	assert.Error(t, err)
}

func TestResolve_UnknownID(t *testing.T) {
	r, err := puzzle.Load([]puzzle.Generator{&fakeGenerator{name: "Alpha"}})
	require.NoError(t, err)

	_, ok := r.Resolve("99")
	assert.False(t, ok)
	assert.False(t, r.Has("0"))
	assert.True(t, r.Has("1"))
}

// --- Manifest ---

func testCatalog() map[string]puzzle.CatalogEntry {
	entry := func(name string, points, penalty int64) puzzle.CatalogEntry {
		return puzzle.CatalogEntry{
			Defaults: puzzle.Descriptor{Points: points, Penalty: penalty},
			Build: func(d puzzle.Descriptor) puzzle.Generator {
				return &fakeGenerator{name: name, desc: d}
			},
		}
	}
	return map[string]puzzle.CatalogEntry{
		"Alpha": entry("Alpha", 100, 10),
		"Beta":  entry("Beta", 200, 20),
	}
}

func TestFromManifest_OrderFixesIDs(t *testing.T) {
	m := &puzzle.Manifest{
		Round: "round_1",
		Puzzles: []puzzle.ManifestEntry{
			{Puzzle: "Beta"},
			{Puzzle: "Alpha"},
		},
	}

	r, err := puzzle.FromManifest(m, testCatalog())
	require.NoError(t, err)

	g, _ := r.Resolve("1")
	assert.Equal(t, "Beta", g.Name())
	g, _ = r.Resolve("2")
	assert.Equal(t, "Alpha", g.Name())
}

func TestFromManifest_Overrides(t *testing.T) {
	points := int64(500)
	penalty := int64(50)
	m := &puzzle.Manifest{
		Round: "round_1",
		Puzzles: []puzzle.ManifestEntry{
			{Puzzle: "Alpha", Points: &points, Penalty: &penalty},
		},
	}

	r, err := puzzle.FromManifest(m, testCatalog())
	require.NoError(t, err)

	g, _ := r.Resolve("1")
	assert.Equal(t, int64(500), g.Descriptor().Points)
	assert.Equal(t, int64(50), g.Descriptor().Penalty)
}

func TestFromManifest_UnknownPuzzle(t *testing.T) {
	m := &puzzle.Manifest{
		Round:   "round_1",
		Puzzles: []puzzle.ManifestEntry{{Puzzle: "Nope"}},
	}

	_, err := puzzle.FromManifest(m, testCatalog())
	assert.Error(t, err)
}

func TestFromManifest_Empty(t *testing.T) {
	_, err := puzzle.FromManifest(&puzzle.Manifest{Round: "round_1"}, testCatalog())
	assert.Error(t, err)
}

func TestFromManifest_DuplicateEntry(t *testing.T) {
	m := &puzzle.Manifest{
		Round: "round_1",
		Puzzles: []puzzle.ManifestEntry{
			{Puzzle: "Alpha"},
			{Puzzle: "Alpha"},
		},
	}

	_, err := puzzle.FromManifest(m, testCatalog())
	assert.Error(t, err)
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.yaml")
	content := "round: round_1\npuzzles:\n  - puzzle: Alpha\n  - puzzle: Beta\n    points: 300\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := puzzle.LoadManifest(path)
	require.NoError(t, err)

	assert.Equal(t, "round_1", m.Round)
	require.Len(t, m.Puzzles, 2)
	assert.Equal(t, "Alpha", m.Puzzles[0].Puzzle)
	assert.Nil(t, m.Puzzles[0].Points)
	require.NotNil(t, m.Puzzles[1].Points)
	assert.Equal(t, int64(300), *m.Puzzles[1].Points)
}

func TestLoadManifest_MissingFile(t *testing.T) {
	_, err := puzzle.LoadManifest(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadManifest_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("puzzles: [unclosed"), 0o644))

	_, err := puzzle.LoadManifest(path)
	assert.Error(t, err)
}
