// Package file provides a filesystem MachineStore. Machines are stored as
// native-schema JSON files under a base directory, one file per name.
package file

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/finitolabs/finito/pkg/automaton"
	"github.com/finitolabs/finito/pkg/codec/native"
	"github.com/finitolabs/finito/pkg/ports"
)

const extension = ".afd"

// Store implements ports.MachineStore using the local filesystem.
type Store struct {
	BasePath string
}

// NewStore creates a file store rooted at basePath. If basePath is empty it
// defaults to ".finito/machines".
func NewStore(basePath string) *Store {
	if basePath == "" {
		basePath = filepath.Join(".finito", "machines")
	}
	return &Store{BasePath: basePath}
}

// Save writes the machine as a native-schema file. The write goes through a
// temp file and rename so a crash never leaves a half-written machine.
func (s *Store) Save(ctx context.Context, name string, m *automaton.Machine) error {
	if name == "" {
		return fmt.Errorf("machine name cannot be empty")
	}
	if err := os.MkdirAll(s.BasePath, 0755); err != nil {
		return fmt.Errorf("failed to ensure machine directory: %w", err)
	}

	data, err := native.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to encode machine: %w", err)
	}

	path := filepath.Join(s.BasePath, name+extension)
	tmp, err := os.CreateTemp(s.BasePath, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write machine file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close machine file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace machine file: %w", err)
	}
	return nil
}

// Load reads and decodes the machine file.
func (s *Store) Load(ctx context.Context, name string) (*automaton.Machine, error) {
	if name == "" {
		return nil, fmt.Errorf("machine name cannot be empty")
	}

	data, err := os.ReadFile(filepath.Join(s.BasePath, name+extension))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ports.ErrMachineNotFound
		}
		return nil, fmt.Errorf("failed to read machine file: %w", err)
	}

	m, err := native.Unmarshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode machine %q: %w", name, err)
	}
	return m, nil
}

// Delete removes the machine file. Missing files are not an error.
func (s *Store) Delete(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(s.BasePath, name+extension))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete machine file: %w", err)
	}
	return nil
}

// List returns the names of all stored machines.
func (s *Store) List(ctx context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.BasePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list machine directory: %w", err)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), extension))
	}
	return names, nil
}
