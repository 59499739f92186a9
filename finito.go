/*
Package finito is a deterministic finite automaton (DFA) engine for teaching
and tooling: build machines state by state, validate strings against them
with a step-by-step trace, enumerate bounded closures of an alphabet, and
move automata between the native schema and JFLAP files.

The engine enforces the determinism invariant at every mutation: no
(state, symbol) pair ever maps to two different targets. Undefined
transitions are not errors; a replay that hits one simply gets stuck, and
the stuck trace is a first-class, inspectable result.

# Usage

	eng := finito.NewEngine()
	_ = eng.AddState("q0", true, false)
	_ = eng.AddState("q1", false, true)
	_ = eng.AddTransition("q0", "a", "q1")

	ok, _ := eng.Accept("a") // true

Hosts (CLI, HTTP) drive the engine and render its results; the engine
itself never talks to a user.
*/
package finito

import (
	"log/slog"

	"github.com/finitolabs/finito/internal/logging"
	"github.com/finitolabs/finito/pkg/automaton"
	"github.com/finitolabs/finito/pkg/codec/jflap"
	"github.com/finitolabs/finito/pkg/codec/native"
	"github.com/finitolabs/finito/pkg/language"
	"github.com/finitolabs/finito/pkg/simulate"
)

// Engine owns the active machine and exposes the full operation surface a
// host needs. It is single-caller: one editing/rendering collaborator
// drives it at a time, and every operation runs to completion before
// returning. Hosts that serve concurrent callers serialize access
// themselves.
type Engine struct {
	machine      *automaton.Machine
	logger       *slog.Logger
	closureLimit int
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets a structured logger for mutation and load events.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithMachine starts the engine with an existing machine instead of an
// empty one.
func WithMachine(m *automaton.Machine) Option {
	return func(e *Engine) {
		e.machine = m
	}
}

// WithClosureLimit overrides the safety ceiling applied to closure runs.
func WithClosureLimit(limit int) Option {
	return func(e *Engine) {
		e.closureLimit = limit
	}
}

// NewEngine creates an engine with an empty machine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		machine:      automaton.New(),
		logger:       logging.NewNop(),
		closureLimit: language.DefaultLimit,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// AddState adds a state to the active machine.
func (e *Engine) AddState(id string, initial, final bool) error {
	if err := e.machine.AddState(id, initial, final); err != nil {
		return err
	}
	e.logger.Debug("state added", "id", id, "initial", initial, "final", final)
	return nil
}

// AddTransition adds a transition to the active machine.
func (e *Engine) AddTransition(from, symbol, to string) error {
	if err := e.machine.AddTransition(from, symbol, to); err != nil {
		return err
	}
	e.logger.Debug("transition added", "from", from, "symbol", symbol, "to", to)
	return nil
}

// RemoveState removes a state and everything referencing it.
func (e *Engine) RemoveState(id string) error {
	if err := e.machine.RemoveState(id); err != nil {
		return err
	}
	e.logger.Debug("state removed", "id", id)
	return nil
}

// SetFinal toggles a state's final marking.
func (e *Engine) SetFinal(id string, final bool) error {
	return e.machine.SetFinal(id, final)
}

// Validate reports consistency problems with the active machine.
func (e *Engine) Validate() []error {
	return e.machine.Validate()
}

// Reset clears the active machine.
func (e *Engine) Reset() {
	e.machine.Reset()
	e.logger.Debug("machine reset")
}

// Machine returns a copy of the active machine for inspection. Mutating the
// copy does not touch the engine.
func (e *Engine) Machine() *automaton.Machine {
	return e.machine.Clone()
}

// Accept reports whether the active machine accepts input.
func (e *Engine) Accept(input string) (bool, error) {
	return simulate.Accept(e.machine, input)
}

// BuildTrace replays input against the active machine. The trace snapshots
// the machine at call time: later edits do not invalidate it.
func (e *Engine) BuildTrace(input string) (*simulate.Trace, error) {
	return simulate.BuildTrace(e.machine, input)
}

// Closure enumerates strings over symbols up to maxLength under the
// engine's resource ceiling.
func (e *Engine) Closure(symbols string, maxLength int, includeEmpty bool) ([]string, error) {
	return language.Closure(symbols, maxLength, includeEmpty, language.WithLimit(e.closureLimit))
}

// Analyze decomposes input into substrings, prefixes, and suffixes.
func (e *Engine) Analyze(input string) language.Decomposition {
	return language.Analyze(input)
}

// SaveNative serializes the active machine into the native schema.
func (e *Engine) SaveNative() ([]byte, error) {
	return native.Marshal(e.machine)
}

// LoadNative replaces the active machine with one parsed from the native
// schema. The swap is atomic: on any failure the current machine survives
// untouched.
func (e *Engine) LoadNative(data []byte) error {
	m, err := native.Unmarshal(data)
	if err != nil {
		e.logger.Debug("native load failed", "error", err)
		return err
	}
	e.machine = m
	e.logger.Debug("machine loaded", "format", "native", "states", m.Len())
	return nil
}

// LoadJFLAP replaces the active machine with one parsed from a JFLAP
// document. Non-deterministic source graphs are rejected as a whole; the
// current machine survives any failure.
func (e *Engine) LoadJFLAP(data []byte) error {
	m, err := jflap.Unmarshal(data)
	if err != nil {
		e.logger.Debug("jflap load failed", "error", err)
		return err
	}
	e.machine = m
	e.logger.Debug("machine loaded", "format", "jflap", "states", m.Len())
	return nil
}
