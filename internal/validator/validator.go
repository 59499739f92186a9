// Package validator analyzes a machine's transition graph beyond the
// model's structural invariants: it crawls the graph from the initial state
// and reports states the automaton can never visit.
package validator

import (
	"fmt"

	"github.com/finitolabs/finito/pkg/automaton"
)

// Finding is a single advisory result. Findings do not make a machine
// unusable; they flag definitions that are probably mistakes.
type Finding struct {
	StateID string
	Reason  string
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s", f.StateID, f.Reason)
}

// CheckReachability crawls the transition graph from the initial state and
// reports unreachable states. Unreachable final states get a sharper
// message since they silently shrink the accepted language.
func CheckReachability(m *automaton.Machine) []Finding {
	initial, ok := m.InitialState()
	if !ok {
		return nil
	}

	visited := map[string]bool{initial: true}
	queue := []string{initial}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, sym := range append(m.Alphabet(), automaton.Epsilon) {
			next, ok := m.Next(current, sym)
			if !ok || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}

	var findings []Finding
	for _, st := range m.States() {
		if visited[st.ID] {
			continue
		}
		reason := "unreachable from the initial state"
		if st.Final {
			reason = "final state is unreachable; it can never accept anything"
		}
		findings = append(findings, Finding{StateID: st.ID, Reason: reason})
	}
	return findings
}

// Check combines the model's own validation errors with reachability
// findings, for hosts that want a single report.
func Check(m *automaton.Machine) ([]error, []Finding) {
	return m.Validate(), CheckReachability(m)
}
