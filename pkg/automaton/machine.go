package automaton

import "sort"

// Epsilon is the distinguished empty symbol. It denotes a lambda transition
// in foreign formats; the strict determinism check treats it like any other
// symbol so that a lambda conflict is rejected rather than silently dropped.
const Epsilon = ""

// State represents a single node of the automaton.
type State struct {
	ID      string `json:"id"`
	Initial bool   `json:"initial"`
	Final   bool   `json:"final"`
}

// Transition is the (from, symbol, to) triple. The machine stores transitions
// in a keyed table internally; this value form is what codecs and inspection
// surfaces consume.
type Transition struct {
	From   string `json:"from"`
	Symbol string `json:"symbol"`
	To     string `json:"to"`
}

// transitionKey identifies a row of the transition table. Uniqueness of the
// key is what makes the machine deterministic.
type transitionKey struct {
	From   string
	Symbol string
}

// Machine is a deterministic finite automaton under construction or in use.
// The zero value is not usable; call New.
//
// Machine is not safe for concurrent mutation. The engine drives it from a
// single caller; stores clone it at their boundaries.
type Machine struct {
	order    []string // state ids in insertion order
	states   map[string]*State
	alphabet []string // symbols in first-seen order
	symbols  map[string]bool
	initial  string // id of the initial state, or "" if unset
	table    map[transitionKey]string
}

// New creates an empty machine.
func New() *Machine {
	return &Machine{
		states:  make(map[string]*State),
		symbols: make(map[string]bool),
		table:   make(map[transitionKey]string),
	}
}

// AddState adds a new state. If initial is true any previous initial marking
// is cleared, so at most one initial state ever exists.
func (m *Machine) AddState(id string, initial, final bool) error {
	if _, ok := m.states[id]; ok {
		return &DuplicateStateError{ID: id}
	}

	if initial && m.initial != "" {
		m.states[m.initial].Initial = false
	}

	m.states[id] = &State{ID: id, Initial: initial, Final: final}
	m.order = append(m.order, id)
	if initial {
		m.initial = id
	}
	return nil
}

// AddTransition records (from, symbol) -> to. Re-adding an identical mapping
// is a no-op; a conflicting mapping is rejected and leaves the table unchanged.
func (m *Machine) AddTransition(from, symbol, to string) error {
	if _, ok := m.states[from]; !ok {
		return &UnknownStateError{ID: from}
	}
	if _, ok := m.states[to]; !ok {
		return &UnknownStateError{ID: to}
	}

	key := transitionKey{From: from, Symbol: symbol}
	if existing, ok := m.table[key]; ok {
		if existing == to {
			return nil
		}
		return &NonDeterministicTransitionError{
			From:     from,
			Symbol:   symbol,
			Existing: existing,
			Proposed: to,
		}
	}

	if symbol != Epsilon && !m.symbols[symbol] {
		m.symbols[symbol] = true
		m.alphabet = append(m.alphabet, symbol)
	}
	m.table[key] = to
	return nil
}

// AddSymbol registers a symbol in the alphabet. Transitions register their
// symbols automatically; this exists for codecs restoring an alphabet that
// carries symbols no remaining transition uses. Epsilon never joins the
// alphabet.
func (m *Machine) AddSymbol(symbol string) {
	if symbol == Epsilon || m.symbols[symbol] {
		return
	}
	m.symbols[symbol] = true
	m.alphabet = append(m.alphabet, symbol)
}

// RemoveState deletes a state together with every transition that references
// it, and clears the initial marking if the state held it.
func (m *Machine) RemoveState(id string) error {
	if _, ok := m.states[id]; !ok {
		return &UnknownStateError{ID: id}
	}

	delete(m.states, id)
	for i, sid := range m.order {
		if sid == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	if m.initial == id {
		m.initial = ""
	}
	for key, to := range m.table {
		if key.From == id || to == id {
			delete(m.table, key)
		}
	}
	return nil
}

// SetFinal toggles the final marking of a state.
func (m *Machine) SetFinal(id string, final bool) error {
	st, ok := m.states[id]
	if !ok {
		return &UnknownStateError{ID: id}
	}
	st.Final = final
	return nil
}

// Reset clears the machine back to empty.
func (m *Machine) Reset() {
	m.order = nil
	m.states = make(map[string]*State)
	m.alphabet = nil
	m.symbols = make(map[string]bool)
	m.initial = ""
	m.table = make(map[transitionKey]string)
}

// Validate reports model consistency problems without mutating anything.
// A nil result means the machine is ready for simulation or save.
func (m *Machine) Validate() []error {
	var errs []error
	if len(m.order) == 0 {
		errs = append(errs, &ValidationError{Reason: "machine has no states"})
	}
	if m.initial == "" {
		errs = append(errs, &ValidationError{Reason: "no initial state defined"})
	}
	for key := range m.table {
		if key.Symbol != Epsilon && !m.symbols[key.Symbol] {
			errs = append(errs, &ValidationError{Reason: "transition symbol outside alphabet: " + key.Symbol})
		}
		if key.Symbol == Epsilon {
			errs = append(errs, &ValidationError{Reason: "lambda transition from state " + key.From + " is not valid in a strict DFA"})
		}
	}
	return errs
}

// States returns the states in insertion order.
func (m *Machine) States() []State {
	out := make([]State, 0, len(m.order))
	for _, id := range m.order {
		out = append(out, *m.states[id])
	}
	return out
}

// Alphabet returns the symbols in sorted order. Sorting keeps the order
// reproducible across save/load cycles, where transition tables are rebuilt
// from unordered maps.
func (m *Machine) Alphabet() []string {
	out := make([]string, len(m.alphabet))
	copy(out, m.alphabet)
	sort.Strings(out)
	return out
}

// InitialState returns the id of the initial state, or false if none is set.
func (m *Machine) InitialState() (string, bool) {
	return m.initial, m.initial != ""
}

// FinalStates returns the ids of all final states in insertion order.
func (m *Machine) FinalStates() []string {
	var out []string
	for _, id := range m.order {
		if m.states[id].Final {
			out = append(out, id)
		}
	}
	return out
}

// IsFinal reports whether id is a final state. Unknown ids are not final.
func (m *Machine) IsFinal(id string) bool {
	st, ok := m.states[id]
	return ok && st.Final
}

// HasState reports whether id is part of the machine.
func (m *Machine) HasState(id string) bool {
	_, ok := m.states[id]
	return ok
}

// Next resolves the target of (from, symbol). The second return is false when
// the transition is undefined, which the simulator treats as a stuck step.
func (m *Machine) Next(from, symbol string) (string, bool) {
	to, ok := m.table[transitionKey{From: from, Symbol: symbol}]
	return to, ok
}

// Transitions returns the table as value triples, sorted by (from, symbol)
// for reproducible iteration.
func (m *Machine) Transitions() []Transition {
	out := make([]Transition, 0, len(m.table))
	for key, to := range m.table {
		out = append(out, Transition{From: key.From, Symbol: key.Symbol, To: to})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// Len returns the number of states.
func (m *Machine) Len() int { return len(m.order) }

// Clone returns a deep copy. Stores and atomic loads rely on this to keep
// callers isolated from each other's mutations.
func (m *Machine) Clone() *Machine {
	c := New()
	c.order = make([]string, len(m.order))
	copy(c.order, m.order)
	for id, st := range m.states {
		cp := *st
		c.states[id] = &cp
	}
	c.alphabet = make([]string, len(m.alphabet))
	copy(c.alphabet, m.alphabet)
	for sym := range m.symbols {
		c.symbols[sym] = true
	}
	c.initial = m.initial
	for key, to := range m.table {
		c.table[key] = to
	}
	return c
}
