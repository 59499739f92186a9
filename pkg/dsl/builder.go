package dsl

import (
	"fmt"

	"github.com/finitolabs/finito/pkg/automaton"
)

// Builder accumulates state and transition declarations.
type Builder struct {
	order  []string
	states map[string]*StateBuilder
}

// New creates an empty builder.
func New() *Builder {
	return &Builder{states: make(map[string]*StateBuilder)}
}

// State declares a state (or returns the existing declaration for id) and
// switches the fluent chain to it.
func (b *Builder) State(id string) *StateBuilder {
	if sb, ok := b.states[id]; ok {
		return sb
	}
	sb := &StateBuilder{id: id, builder: b}
	b.states[id] = sb
	b.order = append(b.order, id)
	return sb
}

// Build replays the declarations into a fresh machine. The first invariant
// violation aborts the build.
func (b *Builder) Build() (*automaton.Machine, error) {
	m := automaton.New()
	for _, id := range b.order {
		sb := b.states[id]
		if err := m.AddState(id, sb.initial, sb.final); err != nil {
			return nil, fmt.Errorf("state %q: %w", id, err)
		}
	}
	for _, id := range b.order {
		for _, tr := range b.states[id].transitions {
			if err := m.AddTransition(id, tr.symbol, tr.target); err != nil {
				return nil, fmt.Errorf("transition from %q: %w", id, err)
			}
		}
	}
	return m, nil
}

// StateBuilder configures a single declared state.
type StateBuilder struct {
	id          string
	initial     bool
	final       bool
	transitions []transitionDecl
	builder     *Builder
}

type transitionDecl struct {
	symbol string
	target string
}

// Initial marks the state as the machine's entry point. The last state
// marked wins, mirroring the model's single-initial rule.
func (s *StateBuilder) Initial() *StateBuilder {
	s.initial = true
	return s
}

// Final marks the state as accepting.
func (s *StateBuilder) Final() *StateBuilder {
	s.final = true
	return s
}

// On declares a transition consuming symbol into target. The target does
// not need to be declared yet; Build resolves it.
func (s *StateBuilder) On(symbol, target string) *StateBuilder {
	s.transitions = append(s.transitions, transitionDecl{symbol: symbol, target: target})
	return s
}

// State hands the chain back to the builder, declaring the next state.
func (s *StateBuilder) State(id string) *StateBuilder {
	return s.builder.State(id)
}

// Build finishes the chain.
func (s *StateBuilder) Build() (*automaton.Machine, error) {
	return s.builder.Build()
}
