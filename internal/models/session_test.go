package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFormSession(t *testing.T) {
	first := NewFormSession("U123")
	second := NewFormSession("U123")

	assert.Equal(t, StateBranchChoice, first.State)
	assert.Equal(t, "U123", first.UserID)
	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestSessionStore(t *testing.T) {
	store := NewSessionStore(time.Hour)

	session := NewFormSession("U123")
	store.Put(session)

	got, ok := store.Get(session.ID)
	require.True(t, ok)
	assert.Equal(t, session, got)

	store.Delete(session.ID)
	_, ok = store.Get(session.ID)
	assert.False(t, ok)
}

func TestSessionStoreMiss(t *testing.T) {
	store := NewSessionStore(time.Hour)
	_, ok := store.Get("nonexistent")
	assert.False(t, ok)
}

func TestSessionStoreExpiry(t *testing.T) {
	store := NewSessionStore(time.Hour)

	stale := NewFormSession("U123")
	stale.CreatedAt = time.Now().Add(-2 * time.Hour)
	store.Put(stale)

	// Протухшая сессия не возвращается
	_, ok := store.Get(stale.ID)
	assert.False(t, ok)

	// И вычищается при следующей записи
	fresh := NewFormSession("U456")
	store.Put(fresh)
	_, ok = store.Get(fresh.ID)
	assert.True(t, ok)
}
