package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finitolabs/finito/pkg/adapters/file"
	"github.com/finitolabs/finito/pkg/automaton"
	"github.com/finitolabs/finito/pkg/ports"
)

func TestFileStore_Contract(t *testing.T) {
	store := file.NewStore(t.TempDir())
	ports.RunMachineStoreContract(t, store)
}

func TestFileStore_FilesOnDisk(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStore(dir)
	ctx := context.Background()

	m := automaton.New()
	require.NoError(t, m.AddState("q0", true, true))
	require.NoError(t, store.Save(ctx, "demo", m))

	// The machine lands as a plain native-schema file.
	data, err := os.ReadFile(filepath.Join(dir, "demo.afd"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"initial_state": "q0"`)
}

func TestFileStore_CorruptedFile(t *testing.T) {
	dir := t.TempDir()
	store := file.NewStore(dir)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.afd"), []byte("{oops"), 0644))

	_, err := store.Load(context.Background(), "bad")
	require.Error(t, err)

	var parse *automaton.ParseError
	assert.ErrorAs(t, err, &parse)
}
