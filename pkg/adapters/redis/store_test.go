package redis_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	backend "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finitolabs/finito/pkg/adapters/redis"
	"github.com/finitolabs/finito/pkg/automaton"
	"github.com/finitolabs/finito/pkg/ports"
)

func newTestStore(t *testing.T, opts ...redis.Option) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := backend.NewClient(&backend.Options{Addr: mr.Addr()})
	return redis.NewFromClient(client, opts...), mr
}

func TestRedisStore_Contract(t *testing.T) {
	store, _ := newTestStore(t)
	ports.RunMachineStoreContract(t, store)
}

func TestRedisStore_TTLExpiration(t *testing.T) {
	store, mr := newTestStore(t, redis.WithTTL(1*time.Second))
	ctx := context.Background()

	m := automaton.New()
	require.NoError(t, m.AddState("q0", true, true))
	require.NoError(t, store.Save(ctx, "ephemeral", m))

	names, err := store.List(ctx)
	require.NoError(t, err)
	assert.Contains(t, names, "ephemeral")

	// miniredis advances time manually.
	mr.FastForward(2 * time.Second)

	_, err = store.Load(ctx, "ephemeral")
	assert.ErrorIs(t, err, ports.ErrMachineNotFound)

	// List prunes the stale index entry.
	names, err = store.List(ctx)
	require.NoError(t, err)
	assert.NotContains(t, names, "ephemeral")
}

func TestRedisStore_Prefix(t *testing.T) {
	store, mr := newTestStore(t, redis.WithPrefix("custom:"))
	ctx := context.Background()

	m := automaton.New()
	require.NoError(t, m.AddState("q0", true, false))
	require.NoError(t, store.Save(ctx, "demo", m))

	assert.True(t, mr.Exists("custom:demo"))
}
