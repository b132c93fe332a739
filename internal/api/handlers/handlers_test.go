package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rendi001-code/projekrela/internal/repositories"
	"github.com/stretchr/testify/require"
)

// stubProvider satisfies relay.Provider for handler tests.
type stubProvider struct {
	text string
	err  error
}

func (s stubProvider) Complete(_ context.Context, _ string) (string, error) {
	return s.text, s.err
}

var errProviderDown = errors.New("provider down")

func newTestHandler(t *testing.T) *Handler {
	t.Helper()

	store, err := repositories.NewStore(t.TempDir())
	require.NoError(t, err)

	uploads, err := repositories.NewDiskUploadStore(t.TempDir())
	require.NoError(t, err)

	return New(store, uploads, stubProvider{text: "stubbed completion"})
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	b, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}
