package team_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enigmactf/enigma/internal/team"
)

func TestNested_TopLevelKey(t *testing.T) {
	data := map[string]any{"a": 1}

	assert.Equal(t, 1, team.Nested(data, "a", nil))
}

func TestNested_DeepPath(t *testing.T) {
	data := map[string]any{
		"questions": map[string]any{
			"Base69": map[string]any{
				"encode_string": "xyz",
			},
		},
	}

	assert.Equal(t, "xyz", team.Nested(data, "questions.Base69.encode_string", nil))
}

func TestNested_MissingSegmentReturnsDefault(t *testing.T) {
	data := map[string]any{"questions": map[string]any{}}

	assert.Equal(t, "fallback", team.Nested(data, "questions.Base69.encode_string", "fallback"))
}

func TestNested_NonMapValueReturnsDefault(t *testing.T) {
	data := map[string]any{"questions": "not-a-map"}

	assert.Equal(t, 0, team.Nested(data, "questions.Base69", 0))
}

func TestNested_NilData(t *testing.T) {
	assert.Nil(t, team.Nested(nil, "a.b", nil))
}

func TestNested_DefaultCanBeNil(t *testing.T) {
	data := map[string]any{"hints": map[string]any{"Base69": int64(2)}}

	assert.Equal(t, int64(2), team.Nested(data, "hints.Base69", nil))
	assert.Nil(t, team.Nested(data, "hints.RandomSequence", nil))
}
