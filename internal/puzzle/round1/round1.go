// Package round1 holds the round-1 puzzle generators. Content synthesis is
// deterministic per (team, puzzle) seed, so regenerating after a lost
// memoization race produces the same payload.
package round1

import (
	"hash/fnv"
	"math/rand"

	"github.com/enigmactf/enigma/internal/puzzle"
	"github.com/enigmactf/enigma/internal/team"
)

// Options carries the deployment-specific values that question text refers to.
type Options struct {
	SubmitURL string
	FileURL   string
	FilesDir  string
}

// Catalog returns the round-1 puzzle constructors keyed by puzzle name.
// The round manifest selects and orders entries from this table.
func Catalog(store team.Store, opts Options) map[string]puzzle.CatalogEntry {
	return map[string]puzzle.CatalogEntry{
		base69Name: {
			Defaults: puzzle.Descriptor{Points: 200, Penalty: 40},
			Build: func(d puzzle.Descriptor) puzzle.Generator {
				return NewBase69(store, opts, d)
			},
		},
		randomSequenceName: {
			Defaults: puzzle.Descriptor{
				Points:  50,
				Penalty: 30,
				Hints: []puzzle.Hint{
					{Cost: 40, Text: "Heard the term 'HEX'?"},
				},
			},
			Build: func(d puzzle.Descriptor) puzzle.Generator {
				return NewRandomSequence(store, opts, d)
			},
		},
		plainSightName: {
			Defaults: puzzle.Descriptor{
				Points:  100,
				Penalty: 20,
				Hints: []puzzle.Hint{
					{Cost: 20, Text: "Not everything you cannot see is absent."},
					{Cost: 40, Text: "Strip the zero-width characters and read what remains."},
				},
			},
			Build: func(d puzzle.Descriptor) puzzle.Generator {
				return NewPlainSight(store, opts, d)
			},
		},
	}
}

// base58Alphabet skips 0/O and I/l to avoid visually ambiguous characters in
// generated flags.
const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

// invisibleCharacters are zero-width code points used to hide content in
// plain sight.
var invisibleCharacters = []rune{'\u200b', '\u200c', '\u200d', '\u200e', '\u200f'}

// seededRand returns a deterministic source for the given team and puzzle.
func seededRand(teamID, puzzleName string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(teamID))
	h.Write([]byte{'/'})
	h.Write([]byte(puzzleName))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}

// randomString draws n characters from the base58 alphabet.
func randomString(r *rand.Rand, n int) string {
	out := make([]byte, n)
	for i := range out {
		out[i] = base58Alphabet[r.Intn(len(base58Alphabet))]
	}
	return string(out)
}

// samples are the source sentences puzzle content is built from.
var samples = []string{
	"The quick brown fox jumps over the lazy dog while nobody watches.",
	"A cryptographer never trusts a channel that looks too quiet.",
	"Somewhere in this noise there is a signal worth two hundred points.",
	"Every great cipher begins with an alphabet nobody expected.",
	"The archivist kept every message, even the ones marked for burning.",
	"Hexadecimal is just counting on sixteen fingers with a straight face.",
	"The lighthouse keeper encoded warnings long before radio existed.",
	"Pack my box with five dozen liquor jugs before the contest starts.",
	"Nothing travels faster than a rumor on an unencrypted network.",
	"An empty page can hold a paragraph if you know where to look.",
	"The courier memorized the route but wrote the key on her sleeve.",
	"Old modems sang their secrets to anyone patient enough to listen.",
}
