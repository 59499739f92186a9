package ports

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finitolabs/finito/pkg/automaton"
)

// RunMachineStoreContract verifies the MachineStore behavior every adapter
// must honor. Call it from the adapter's own test package.
func RunMachineStoreContract(t *testing.T, store MachineStore) {
	t.Helper()
	ctx := context.Background()

	build := func() *automaton.Machine {
		m := automaton.New()
		require.NoError(t, m.AddState("q0", true, false))
		require.NoError(t, m.AddState("q1", false, true))
		require.NoError(t, m.AddTransition("q0", "a", "q1"))
		require.NoError(t, m.AddTransition("q1", "b", "q0"))
		return m
	}

	t.Run("load missing", func(t *testing.T) {
		_, err := store.Load(ctx, "contract-missing")
		assert.ErrorIs(t, err, ErrMachineNotFound)
	})

	t.Run("save and load", func(t *testing.T) {
		m := build()
		require.NoError(t, store.Save(ctx, "contract-basic", m))

		got, err := store.Load(ctx, "contract-basic")
		require.NoError(t, err)
		assert.Equal(t, m.States(), got.States())
		assert.Equal(t, m.Transitions(), got.Transitions())
		assert.Equal(t, m.Alphabet(), got.Alphabet())

		wantInitial, _ := m.InitialState()
		gotInitial, _ := got.InitialState()
		assert.Equal(t, wantInitial, gotInitial)
	})

	t.Run("save replaces", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "contract-replace", build()))

		small := automaton.New()
		require.NoError(t, small.AddState("only", true, true))
		require.NoError(t, store.Save(ctx, "contract-replace", small))

		got, err := store.Load(ctx, "contract-replace")
		require.NoError(t, err)
		assert.Equal(t, 1, got.Len())
	})

	t.Run("isolation", func(t *testing.T) {
		m := build()
		require.NoError(t, store.Save(ctx, "contract-isolation", m))

		// Mutating the caller's copy must not leak into the store.
		require.NoError(t, m.AddState("q2", false, false))

		got, err := store.Load(ctx, "contract-isolation")
		require.NoError(t, err)
		assert.Equal(t, 2, got.Len())

		// Mutating a loaded copy must not leak either.
		require.NoError(t, got.RemoveState("q1"))
		again, err := store.Load(ctx, "contract-isolation")
		require.NoError(t, err)
		assert.Equal(t, 2, again.Len())
	})

	t.Run("list", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "contract-list-a", build()))
		require.NoError(t, store.Save(ctx, "contract-list-b", build()))

		names, err := store.List(ctx)
		require.NoError(t, err)
		sort.Strings(names)
		assert.Subset(t, names, []string{"contract-list-a", "contract-list-b"})
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, store.Save(ctx, "contract-delete", build()))
		require.NoError(t, store.Delete(ctx, "contract-delete"))

		_, err := store.Load(ctx, "contract-delete")
		assert.ErrorIs(t, err, ErrMachineNotFound)

		// Idempotent.
		assert.NoError(t, store.Delete(ctx, "contract-delete"))
	})
}
