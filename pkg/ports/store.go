package ports

import (
	"context"
	"errors"

	"github.com/finitolabs/finito/pkg/automaton"
)

// ErrMachineNotFound is returned when a named machine does not exist in the store.
var ErrMachineNotFound = errors.New("machine not found")

// MachineStore persists whole automata under a name. Implementations must
// isolate callers from each other: a machine handed to Save or returned
// from Load is never shared by reference with the store's internal copy.
type MachineStore interface {
	// Save persists the machine under the given name, replacing any
	// previous version atomically.
	Save(ctx context.Context, name string, m *automaton.Machine) error

	// Load retrieves the machine stored under name.
	// Returns ErrMachineNotFound if the name is unknown.
	Load(ctx context.Context, name string) (*automaton.Machine, error)

	// Delete removes the machine stored under name. Deleting an unknown
	// name is not an error.
	Delete(ctx context.Context, name string) error

	// List returns the names of all stored machines.
	List(ctx context.Context) ([]string, error)
}
