package handler_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/enigmactf/enigma/internal/api/handler"
)

func TestInstructionsHandler_Get(t *testing.T) {
	h := handler.NewInstructionsHandler(handler.Links{
		Questions:    "http://localhost:8080/questions",
		Submit:       "http://localhost:8080/submit",
		Hint:         "http://localhost:8080/hint",
		File:         "http://localhost:8080/file",
		Instructions: "http://localhost:8080/instructions",
	})

	rec := doRequest(t, h.Get, http.MethodGet, "/instructions", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	env := parseEnvelope(t, rec)
	require.Nil(t, env.Error)

	var data struct {
		Instructions []string `json:"instructions"`
	}
	decodeData(t, env, &data)
	require.NotEmpty(t, data.Instructions)

	joined := strings.Join(data.Instructions, "\n")
	assert.Contains(t, joined, "http://localhost:8080/questions")
	assert.Contains(t, joined, "http://localhost:8080/submit")
	assert.Contains(t, joined, "http://localhost:8080/hint")
	assert.Contains(t, joined, "http://localhost:8080/file")
}
