package round1

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/enigmactf/enigma/internal/puzzle"
	"github.com/enigmactf/enigma/internal/team"
)

const base69Name = "Base69"

// base69Radix is the size of the custom emoji alphabet.
const base69Radix = 69

// Base69 is a codec puzzle over a custom base-69 emoji alphabet. Teams get
// one string to encode and one to decode.
type Base69 struct {
	store    team.Store
	opts     Options
	desc     puzzle.Descriptor
	alphabet []rune
	index    map[rune]int
}

// NewBase69 creates the Base69 generator.
func NewBase69(store team.Store, opts Options, desc puzzle.Descriptor) *Base69 {
	alphabet := make([]rune, base69Radix)
	index := make(map[rune]int, base69Radix)
	for i := 0; i < base69Radix; i++ {
		r := rune(0x1F600 + i)
		alphabet[i] = r
		index[r] = i
	}
	return &Base69{store: store, opts: opts, desc: desc, alphabet: alphabet, index: index}
}

func (g *Base69) Name() string { return base69Name }

func (g *Base69) Descriptor() puzzle.Descriptor { return g.desc }

// Encode converts an ASCII string to the custom base-69 encoding.
func (g *Base69) Encode(s string) string {
	n := new(big.Int).SetBytes([]byte(s))
	radix := big.NewInt(base69Radix)

	var digits []int
	zero := new(big.Int)
	rem := new(big.Int)
	for n.Cmp(zero) != 0 {
		n.QuoRem(n, radix, rem)
		digits = append(digits, int(rem.Int64()))
	}
	if len(digits) == 0 {
		digits = []int{0}
	}

	var b strings.Builder
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteRune(g.alphabet[digits[i]])
	}
	return b.String()
}

// Decode converts a base-69 encoded string back to ASCII. It fails on runes
// outside the alphabet.
func (g *Base69) Decode(encoded string) (string, error) {
	n := new(big.Int)
	radix := big.NewInt(base69Radix)
	for _, r := range encoded {
		digit, ok := g.index[r]
		if !ok {
			return "", fmt.Errorf("rune %q is not in the base-69 alphabet", r)
		}
		n.Mul(n, radix)
		n.Add(n, big.NewInt(int64(digit)))
	}
	return string(n.Bytes()), nil
}

// GenerateQuestion returns the team's question payload, memoizing the
// generated strings on first call.
func (g *Base69) GenerateQuestion(ctx context.Context, teamID string) (map[string]any, error) {
	t, err := g.store.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	record := t.Question(base69Name)
	if record == nil {
		question, validation := g.synthesize(teamID)
		if err := g.store.SetGeneratedContent(ctx, teamID, base69Name, question, validation); err != nil {
			return nil, err
		}
		record = question
	}

	encodeString, _ := record["encode_string"].(string)
	decodeString, _ := record["decode_string"].(string)

	description := fmt.Sprintf(
		"Your team uses a custom base-69 encoding whose alphabet, in digit order, is: %s\n"+
			"Encode the following string into base-69 and submit it as encoded_string:\n%s\n"+
			"Decode the following base-69 string and submit it as decoded_string:\n%s\n"+
			"POST both fields to %s along with your team_id and the puzzle_id shown above.",
		string(g.alphabet), decodeString, encodeString, g.opts.SubmitURL,
	)

	return map[string]any{
		"title":         base69Name,
		"description":   description,
		"character_set": string(g.alphabet),
		"reference":     "https://medium.com/swlh/creating-custom-character-encoding-to-save-space-5cc1e53b8f34",
		"encode_string": encodeString,
		"decode_string": decodeString,
	}, nil
}

// synthesize picks two distinct sample strings: one the team must decode
// (stored encoded) and one it must encode (stored plain). Expected answers
// are precomputed into the validation record.
func (g *Base69) synthesize(teamID string) (map[string]any, map[string]string) {
	r := seededRand(teamID, base69Name)

	i := r.Intn(len(samples))
	j := r.Intn(len(samples) - 1)
	if j >= i {
		j++
	}

	encodeString := g.Encode(samples[i])
	decodeString := samples[j]

	question := map[string]any{
		"encode_string": encodeString,
		"decode_string": decodeString,
	}
	validation := map[string]string{
		"encoded_string": g.Encode(decodeString),
		"decoded_string": samples[i],
	}
	return question, validation
}
