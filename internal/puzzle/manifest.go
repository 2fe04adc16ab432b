package puzzle

import (
	"fmt"
	"os"

	"sigs.k8s.io/yaml"
)

// ManifestEntry enables one catalog puzzle. Points and Penalty, when set,
// override the catalog defaults.
type ManifestEntry struct {
	Puzzle  string `json:"puzzle"`
	Points  *int64 `json:"points,omitempty"`
	Penalty *int64 `json:"penalty,omitempty"`
}

// Manifest declares which puzzles a round runs and in which order. The
// entry order fixes the puzzle IDs.
type Manifest struct {
	Round   string          `json:"round"`
	Puzzles []ManifestEntry `json:"puzzles"`
}

// LoadManifest reads and parses a round manifest from a YAML file.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading round manifest: %w", err)
	}

	var m Manifest
	if err := yaml.UnmarshalStrict(data, &m); err != nil {
		return nil, fmt.Errorf("parsing round manifest %s: %w", path, err)
	}

	return &m, nil
}

// FromManifest builds a registry by resolving each manifest entry against
// the catalog, in manifest order. It fails on an empty manifest, an unknown
// puzzle name, or a name listed twice.
func FromManifest(m *Manifest, catalog map[string]CatalogEntry) (*Registry, error) {
	if len(m.Puzzles) == 0 {
		return nil, fmt.Errorf("round manifest %q lists no puzzles", m.Round)
	}

	generators := make([]Generator, 0, len(m.Puzzles))
	for _, entry := range m.Puzzles {
		ce, ok := catalog[entry.Puzzle]
		if !ok {
			return nil, fmt.Errorf("round manifest %q references unknown puzzle %q", m.Round, entry.Puzzle)
		}

		desc := ce.Defaults
		if entry.Points != nil {
			desc.Points = *entry.Points
		}
		if entry.Penalty != nil {
			desc.Penalty = *entry.Penalty
		}

		generators = append(generators, ce.Build(desc))
	}

	return Load(generators)
}
