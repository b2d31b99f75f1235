package database

import (
	"encoding/json"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreCreateAndGet(t *testing.T) {
	store := NewSessionStore()

	sess := store.Create(json.RawMessage(`{"id":"user_1"}`))
	require.NotEmpty(t, sess.ID)
	assert.True(t, sess.Verified)

	got, ok := store.Get(sess.ID)
	require.True(t, ok)
	assert.Equal(t, sess.ID, got.ID)
	assert.JSONEq(t, `{"id":"user_1"}`, string(got.User))
}

func TestSessionStoreUnknownID(t *testing.T) {
	store := NewSessionStore()

	_, ok := store.Get("nope")
	assert.False(t, ok)
}

func TestSessionStoreDelete(t *testing.T) {
	store := NewSessionStore()

	sess := store.Create(nil)
	store.Delete(sess.ID)

	_, ok := store.Get(sess.ID)
	assert.False(t, ok)
}

func TestSessionStoreExpiryCheckedOnRead(t *testing.T) {
	store := NewSessionStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	sess := store.Create(nil)

	// Just before the 30-day lifetime the session is still valid.
	store.now = func() time.Time { return now.Add(30*24*time.Hour - time.Minute) }
	_, ok := store.Get(sess.ID)
	assert.True(t, ok)

	// Past the lifetime it is gone, and stays gone.
	store.now = func() time.Time { return now.Add(30*24*time.Hour + time.Minute) }
	_, ok = store.Get(sess.ID)
	assert.False(t, ok)

	store.now = func() time.Time { return now }
	_, ok = store.Get(sess.ID)
	assert.False(t, ok)
}

func TestSessionStoreConcurrentAccess(t *testing.T) {
	store := NewSessionStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sess := store.Create(json.RawMessage(fmt.Sprintf(`{"n":%d}`, i)))
			got, ok := store.Get(sess.ID)
			assert.True(t, ok)
			assert.Equal(t, sess.ID, got.ID)
			store.Delete(sess.ID)
		}(i)
	}
	wg.Wait()
}
