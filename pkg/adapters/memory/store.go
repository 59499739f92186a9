// Package memory provides an in-memory MachineStore, mainly for tests and
// embedded use.
package memory

import (
	"context"
	"sync"

	"github.com/finitolabs/finito/pkg/automaton"
	"github.com/finitolabs/finito/pkg/ports"
)

// Store implements ports.MachineStore in memory.
// Safe for concurrent use.
type Store struct {
	data map[string]*automaton.Machine
	mu   sync.RWMutex
}

// NewStore creates a new in-memory store.
func NewStore() *Store {
	return &Store{
		data: make(map[string]*automaton.Machine),
	}
}

// Save persists a deep copy of the machine so later caller mutations cannot
// reach the stored version.
func (s *Store) Save(ctx context.Context, name string, m *automaton.Machine) error {
	copied := m.Clone()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = copied
	return nil
}

// Load retrieves a copy of the stored machine.
func (s *Store) Load(ctx context.Context, name string) (*automaton.Machine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.data[name]
	if !ok {
		return nil, ports.ErrMachineNotFound
	}
	return m.Clone(), nil
}

// Delete removes the machine.
func (s *Store) Delete(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, name)
	return nil
}

// List returns stored machine names.
func (s *Store) List(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	return names, nil
}
