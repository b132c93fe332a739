package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAskRelaAI(t *testing.T) {
	h := newTestHandler(t)
	h.Relay = stubProvider{text: "  Of course!"}

	rec := postJSON(t, h.AskRelaAI, "/ask-rela-ai", map[string]string{"prompt": "Say something nice"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "  Of course!", decodeBody[AskResponse](t, rec).Response)
}

func TestAskRelaAI_InvalidPrompt(t *testing.T) {
	h := newTestHandler(t)

	rec := postJSON(t, h.AskRelaAI, "/ask-rela-ai", map[string]string{"prompt": "rm -rf / && echo"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid input", decodeBody[MessageResponse](t, rec).Message)
}

func TestAskRelaAI_ProviderFailure(t *testing.T) {
	h := newTestHandler(t)
	h.Relay = stubProvider{err: errProviderDown}

	rec := postJSON(t, h.AskRelaAI, "/ask-rela-ai", map[string]string{"prompt": "hello"})
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to get response from Rela AI", decodeBody[AskErrorResponse](t, rec).Error)
}
