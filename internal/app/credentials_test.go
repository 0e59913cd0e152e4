package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestCredentialsVerify(t *testing.T) {
	credentials, err := NewCredentials(map[string]string{"director": "s3cret"}, bcrypt.MinCost)
	require.NoError(t, err)
	assert.Equal(t, 1, credentials.Len())

	assert.NoError(t, credentials.Verify("director", "s3cret"))
	assert.ErrorIs(t, credentials.Verify("director", "wrong"), ErrInvalidCredentials)
	assert.ErrorIs(t, credentials.Verify("intruso", "s3cret"), ErrInvalidCredentials)
}

func TestNilCredentialsRejectEveryone(t *testing.T) {
	var credentials *Credentials
	assert.Equal(t, 0, credentials.Len())
	assert.ErrorIs(t, credentials.Verify("director", "s3cret"), ErrInvalidCredentials)
}

func TestNewCredentialsRejectsOversizedPassword(t *testing.T) {
	long := make([]byte, 100)
	for i := range long {
		long[i] = 'a'
	}
	_, err := NewCredentials(map[string]string{"director": string(long)}, bcrypt.MinCost)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "director")
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore(time.Hour)
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	session := store.Create("director")
	require.NotEmpty(t, session.Token)
	assert.Equal(t, now.Add(time.Hour), session.ExpiresAt)

	got, ok := store.Lookup(session.Token)
	require.True(t, ok)
	assert.Equal(t, "director", got.Username)

	_, ok = store.Lookup("")
	assert.False(t, ok)
	_, ok = store.Lookup("missing")
	assert.False(t, ok)

	now = now.Add(2 * time.Hour)
	_, ok = store.Lookup(session.Token)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore(0)
	session := store.Create("analista")
	store.Delete(session.Token)

	_, ok := store.Lookup(session.Token)
	assert.False(t, ok)
}

func TestSessionStoreSweep(t *testing.T) {
	store := NewSessionStore(time.Hour)
	now := time.Date(2025, 5, 3, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	expired := store.Create("director")
	now = now.Add(30 * time.Minute)
	live := store.Create("analista")
	now = now.Add(45 * time.Minute)

	assert.Equal(t, 1, store.Sweep())
	assert.Equal(t, 1, store.Len())

	_, ok := store.Lookup(live.Token)
	assert.True(t, ok)
	_, ok = store.Lookup(expired.Token)
	assert.False(t, ok)

	assert.Equal(t, 0, store.Sweep())
}
