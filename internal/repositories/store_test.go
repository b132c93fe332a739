package repositories

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rendi001-code/projekrela/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	return store, dir
}

func TestStore_MissingFilesReadEmpty(t *testing.T) {
	store, _ := newTestStore(t)

	assert.Empty(t, store.Users())
	assert.Empty(t, store.Messages())
	// The feed endpoint encodes this slice directly, so it must be [] not null.
	assert.NotNil(t, store.Messages())
}

func TestStore_CorruptFileReadsEmpty(t *testing.T) {
	store, dir := newTestStore(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "messages.json"), []byte("{not json"), 0o644))
	assert.Empty(t, store.Messages())
}

func TestStore_AddUserRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)

	user := models.User{
		ID:             "u1",
		Email:          "alice",
		Password:       "hash",
		ProfilePicture: "/assets/default_profile.png",
	}
	store.AddUser(user)

	got, ok := store.FindUserByEmail("alice")
	require.True(t, ok)
	assert.Equal(t, user, got)

	_, ok = store.FindUserByEmail("Alice")
	assert.False(t, ok, "email match is case-sensitive")

	byID, ok := store.FindUserByID("u1")
	require.True(t, ok)
	assert.Equal(t, user, byID)
}

func TestStore_MessagesKeepInsertionOrder(t *testing.T) {
	store, dir := newTestStore(t)

	for _, id := range []string{"m1", "m2", "m3"} {
		store.AddMessage(models.Message{ID: id, SenderID: "s", Text: "hi"})
	}

	messages := store.Messages()
	require.Len(t, messages, 3)
	assert.Equal(t, "m1", messages[0].ID)
	assert.Equal(t, "m2", messages[1].ID)
	assert.Equal(t, "m3", messages[2].ID)

	// A fresh store over the same directory sees the same order.
	reloaded, err := NewStore(dir)
	require.NoError(t, err)
	reloadedMessages := reloaded.Messages()
	require.Len(t, reloadedMessages, 3)
	assert.Equal(t, messages, reloadedMessages)
}

func TestStore_WritesWholeFile(t *testing.T) {
	store, dir := newTestStore(t)

	store.AddMessage(models.Message{ID: "m1", SenderID: "s", Text: "hi"})

	data, err := os.ReadFile(filepath.Join(dir, "messages.json"))
	require.NoError(t, err)
	assert.True(t, len(data) > 0 && data[0] == '[', "collection file is one JSON array")
}
