package simulate

import "github.com/finitolabs/finito/pkg/automaton"

// Config is a single snapshot of the replay: the step index, the state the
// machine sits in, and how much of the input has been consumed so far.
// Stuck marks the endpoint of a replay that hit an undefined transition.
type Config struct {
	Step      int    `json:"step"`
	StateID   string `json:"state_id"`
	Consumed  int    `json:"consumed"`
	Remaining string `json:"remaining"`
	Stuck     bool   `json:"stuck"`
}

// Trace is the ordered sequence of configurations produced for one
// (machine, input) pair. It is immutable once built; navigate it with a
// Cursor.
type Trace struct {
	Input    string   `json:"input"`
	Configs  []Config `json:"configs"`
	Accepted bool     `json:"accepted"`
}

// Len returns the number of configurations, always consumed+1.
func (t *Trace) Len() int { return len(t.Configs) }

// Last returns the final configuration.
func (t *Trace) Last() Config { return t.Configs[len(t.Configs)-1] }

// BuildTrace replays input symbol by symbol from the machine's initial
// state. When a transition is undefined for (current, symbol) the trace
// terminates early with a stuck configuration; that is a valid result, not
// an error. The only failure mode is a machine with no initial state.
func BuildTrace(m *automaton.Machine, input string) (*Trace, error) {
	initial, ok := m.InitialState()
	if !ok {
		return nil, automaton.ErrNoInitialState
	}

	runes := []rune(input)
	trace := &Trace{
		Input:   input,
		Configs: []Config{{Step: 0, StateID: initial, Remaining: input}},
	}

	current := initial
	for i, r := range runes {
		next, ok := m.Next(current, string(r))
		if !ok {
			last := &trace.Configs[len(trace.Configs)-1]
			last.Stuck = true
			return trace, nil
		}
		current = next
		trace.Configs = append(trace.Configs, Config{
			Step:      i + 1,
			StateID:   current,
			Consumed:  i + 1,
			Remaining: string(runes[i+1:]),
		})
	}

	trace.Accepted = m.IsFinal(current)
	return trace, nil
}

// Accept reports whether the machine accepts input: the trace must consume
// the whole string and end in a final state.
func Accept(m *automaton.Machine, input string) (bool, error) {
	trace, err := BuildTrace(m, input)
	if err != nil {
		return false, err
	}
	return trace.Accepted, nil
}
