// Package native implements the engine's own on-disk representation: a JSON
// document with the alphabet, states, initial/final markings, and a
// transition map keyed by "state,symbol".
package native

import (
	"encoding/json"
	"strings"

	"github.com/finitolabs/finito/pkg/automaton"
)

// document is the wire schema. The transitions map is keyed by
// "state,symbol"; the empty symbol after the first comma denotes a lambda
// transition.
type document struct {
	Alphabet     []string          `json:"alphabet"`
	States       []string          `json:"states"`
	InitialState string            `json:"initial_state"`
	FinalStates  []string          `json:"final_states"`
	Transitions  map[string]string `json:"transitions"`
}

// Marshal serializes a machine into the native schema.
func Marshal(m *automaton.Machine) ([]byte, error) {
	doc := document{
		Alphabet:    m.Alphabet(),
		FinalStates: m.FinalStates(),
		Transitions: make(map[string]string),
	}
	if doc.FinalStates == nil {
		doc.FinalStates = []string{}
	}
	for _, st := range m.States() {
		doc.States = append(doc.States, st.ID)
	}
	if doc.States == nil {
		doc.States = []string{}
	}
	if doc.Alphabet == nil {
		doc.Alphabet = []string{}
	}
	if initial, ok := m.InitialState(); ok {
		doc.InitialState = initial
	}
	for _, tr := range m.Transitions() {
		doc.Transitions[tr.From+","+tr.Symbol] = tr.To
	}

	return json.MarshalIndent(doc, "", "  ")
}

// Unmarshal parses the native schema and rebuilds the machine. The machine
// is built fresh and returned only on full success; a failure never exposes
// a partially populated model.
//
// The transition key is unique by construction in well-formed JSON. If a
// corrupted file carries duplicate keys the JSON decoder keeps the last one
// (last-write-wins), unlike interactive editing where a duplicate pair is a
// hard NonDeterministicTransitionError.
func Unmarshal(data []byte) (*automaton.Machine, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &automaton.ParseError{Format: "native", Cause: err}
	}

	if doc.States == nil {
		return nil, &automaton.SchemaError{Field: "states", Reason: "required"}
	}
	if doc.Transitions == nil {
		return nil, &automaton.SchemaError{Field: "transitions", Reason: "required"}
	}

	m := automaton.New()
	finals := make(map[string]bool, len(doc.FinalStates))
	for _, id := range doc.FinalStates {
		finals[id] = true
	}

	for _, id := range doc.States {
		if err := m.AddState(id, id == doc.InitialState, finals[id]); err != nil {
			return nil, err
		}
	}
	if doc.InitialState != "" && !m.HasState(doc.InitialState) {
		return nil, &automaton.SchemaError{Field: "initial_state", Reason: "unknown state " + doc.InitialState}
	}

	// The alphabet field is authoritative: it may carry symbols no
	// transition uses anymore, and those survive a save/load cycle.
	for _, sym := range doc.Alphabet {
		m.AddSymbol(sym)
	}

	for key, to := range doc.Transitions {
		from, symbol, ok := strings.Cut(key, ",")
		if !ok {
			return nil, &automaton.SchemaError{Field: "transitions", Reason: "malformed key " + key}
		}
		if err := m.AddTransition(from, symbol, to); err != nil {
			return nil, err
		}
	}

	return m, nil
}
