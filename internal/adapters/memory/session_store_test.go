package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/moses-automall/intranet-api/internal/domain/auth"
	"github.com/moses-automall/intranet-api/internal/ports"
)

func testSession(id string, expiresAt time.Time) domainauth.Session {
	return domainauth.Session{
		ID: id,
		Identity: domainauth.Identity{
			ID:    "win-johnsmith",
			Email: "johnsmith@mosesautonet.com",
			Name:  "John Smith",
			Roles: []domainauth.Role{domainauth.RoleEmployee},
		},
		ExpiresAt: expiresAt,
	}
}

func TestSessionStore_SaveAndGet(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()
	sess := testSession("sess-1", time.Now().Add(time.Hour))

	require.NoError(t, store.Save(ctx, sess))

	got, err := store.Get(ctx, "sess-1")
	require.NoError(t, err)
	assert.Equal(t, sess.Identity.Email, got.Identity.Email)
}

func TestSessionStore_GetMissing(t *testing.T) {
	store := NewSessionStore()

	_, err := store.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	_, err = store.Get(context.Background(), "")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
}

func TestSessionStore_SaveRejectsEmptyID(t *testing.T) {
	store := NewSessionStore()
	err := store.Save(context.Background(), testSession("", time.Now().Add(time.Hour)))
	assert.Error(t, err)
}

func TestSessionStore_SaveRejectsExpired(t *testing.T) {
	store := NewSessionStore()
	err := store.Save(context.Background(), testSession("sess-1", time.Now().Add(-time.Minute)))
	assert.Error(t, err)
}

func TestSessionStore_ExpiredInvisibleBeforeSweep(t *testing.T) {
	now := time.Date(2025, 7, 21, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := NewSessionStoreWithClock(clock)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("sess-1", now.Add(24*time.Hour))))

	// Advance past expiry without sweeping.
	now = now.Add(25 * time.Hour)

	_, err := store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)
	// Get also evicts the dead entry.
	assert.Equal(t, 0, store.Len())
}

func TestSessionStore_Sweep(t *testing.T) {
	now := time.Date(2025, 7, 21, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	store := NewSessionStoreWithClock(clock)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("live", now.Add(48*time.Hour))))
	require.NoError(t, store.Save(ctx, testSession("dead-1", now.Add(time.Hour))))
	require.NoError(t, store.Save(ctx, testSession("dead-2", now.Add(2*time.Hour))))

	now = now.Add(3 * time.Hour)

	assert.Equal(t, 2, store.Sweep())
	assert.Equal(t, 1, store.Len())

	_, err := store.Get(ctx, "live")
	assert.NoError(t, err)
}

func TestSessionStore_Delete(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, testSession("sess-1", time.Now().Add(time.Hour))))
	require.NoError(t, store.Delete(ctx, "sess-1"))

	_, err := store.Get(ctx, "sess-1")
	assert.ErrorIs(t, err, ports.ErrSessionNotFound)

	// Deleting a missing or empty ID is a no-op.
	assert.NoError(t, store.Delete(ctx, "sess-1"))
	assert.NoError(t, store.Delete(ctx, ""))
}

func TestSessionStore_ConcurrentAccess(t *testing.T) {
	store := NewSessionStore()
	ctx := context.Background()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			id := string(rune('a' + n))
			_ = store.Save(ctx, testSession(id, time.Now().Add(time.Hour)))
			_, _ = store.Get(ctx, id)
			_ = store.Delete(ctx, id)
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
