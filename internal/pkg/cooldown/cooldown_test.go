package cooldown

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T, ttl time.Duration) (*Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	return NewStore(rdb, ttl), mr
}

func TestStore_Acquire(t *testing.T) {
	store, _ := setupStore(t, time.Minute)
	ctx := context.Background()

	ok, err := store.Acquire(ctx, "user@example.com", "email_verification")
	require.NoError(t, err)
	assert.True(t, ok)

	// 冷却期内第二次获取失败
	ok, err = store.Acquire(ctx, "user@example.com", "email_verification")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_Acquire_DifferentPurpose(t *testing.T) {
	store, _ := setupStore(t, time.Minute)
	ctx := context.Background()

	ok, err := store.Acquire(ctx, "user@example.com", "email_verification")
	require.NoError(t, err)
	assert.True(t, ok)

	// 不同用途互不影响
	ok, err = store.Acquire(ctx, "user@example.com", "password_reset")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_Acquire_AfterExpiry(t *testing.T) {
	store, mr := setupStore(t, time.Minute)
	ctx := context.Background()

	ok, err := store.Acquire(ctx, "user@example.com", "email_verification")
	require.NoError(t, err)
	assert.True(t, ok)

	mr.FastForward(2 * time.Minute)

	ok, err = store.Acquire(ctx, "user@example.com", "email_verification")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestStore_Remaining(t *testing.T) {
	store, _ := setupStore(t, time.Minute)
	ctx := context.Background()

	remaining, err := store.Remaining(ctx, "user@example.com", "email_verification")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), remaining)

	_, err = store.Acquire(ctx, "user@example.com", "email_verification")
	require.NoError(t, err)

	remaining, err = store.Remaining(ctx, "user@example.com", "email_verification")
	require.NoError(t, err)
	assert.True(t, remaining > 0)
	assert.True(t, remaining <= time.Minute)
}

func TestStore_Clear(t *testing.T) {
	store, _ := setupStore(t, time.Minute)
	ctx := context.Background()

	_, err := store.Acquire(ctx, "user@example.com", "email_verification")
	require.NoError(t, err)

	require.NoError(t, store.Clear(ctx, "user@example.com", "email_verification"))

	ok, err := store.Acquire(ctx, "user@example.com", "email_verification")
	require.NoError(t, err)
	assert.True(t, ok)
}
