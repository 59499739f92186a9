package simulate_test

import (
	"errors"
	"testing"

	"github.com/finitolabs/finito/pkg/automaton"
	"github.com/finitolabs/finito/pkg/simulate"
)

// endsInA accepts every string over {a,b} whose last symbol is 'a'.
// Layout: q0 (initial), q1 (final); q0-a->q1, q1-a->q1, q0-b->q0, q1-b->q0.
func endsInA(t *testing.T) *automaton.Machine {
	t.Helper()
	m := automaton.New()
	for _, step := range []error{
		m.AddState("q0", true, false),
		m.AddState("q1", false, true),
		m.AddTransition("q0", "a", "q1"),
		m.AddTransition("q1", "a", "q1"),
		m.AddTransition("q0", "b", "q0"),
		m.AddTransition("q1", "b", "q0"),
	} {
		if step != nil {
			t.Fatalf("building machine: %v", step)
		}
	}
	return m
}

func TestAccept(t *testing.T) {
	m := endsInA(t)

	tests := []struct {
		input string
		want  bool
	}{
		{"a", true},
		{"ba", true},
		{"bb", false},
		{"", false},
		{"aab", false},
		{"bba", true},
	}

	for _, tt := range tests {
		got, err := simulate.Accept(m, tt.input)
		if err != nil {
			t.Fatalf("Accept(%q) error = %v", tt.input, err)
		}
		if got != tt.want {
			t.Errorf("Accept(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestAccept_EmptyInputEqualsInitialFinality(t *testing.T) {
	m := automaton.New()
	_ = m.AddState("q0", true, true)

	got, err := simulate.Accept(m, "")
	if err != nil {
		t.Fatalf("Accept() error = %v", err)
	}
	if !got {
		t.Error("empty input on a final initial state should be accepted")
	}

	_ = m.SetFinal("q0", false)
	got, _ = simulate.Accept(m, "")
	if got {
		t.Error("empty input on a non-final initial state should be rejected")
	}
}

func TestBuildTrace(t *testing.T) {
	m := endsInA(t)

	trace, err := simulate.BuildTrace(m, "ba")
	if err != nil {
		t.Fatalf("BuildTrace() error = %v", err)
	}

	wantStates := []string{"q0", "q0", "q1"}
	if trace.Len() != len(wantStates) {
		t.Fatalf("trace length = %d, want %d", trace.Len(), len(wantStates))
	}
	for i, want := range wantStates {
		cfg := trace.Configs[i]
		if cfg.Step != i || cfg.StateID != want {
			t.Errorf("config %d = (%d, %s), want (%d, %s)", i, cfg.Step, cfg.StateID, i, want)
		}
	}
	if !trace.Accepted {
		t.Error("trace for \"ba\" should be accepted")
	}
	if trace.Configs[1].Remaining != "a" {
		t.Errorf("config 1 remaining = %q, want a", trace.Configs[1].Remaining)
	}
}

func TestBuildTrace_Stuck(t *testing.T) {
	m := endsInA(t)

	// 'c' is undefined everywhere.
	trace, err := simulate.BuildTrace(m, "aca")
	if err != nil {
		t.Fatalf("BuildTrace() error = %v", err)
	}

	// One consumed symbol plus the start configuration.
	if trace.Len() != 2 {
		t.Fatalf("trace length = %d, want 2", trace.Len())
	}
	last := trace.Last()
	if !last.Stuck {
		t.Error("last configuration should be stuck")
	}
	if trace.Accepted {
		t.Error("stuck trace must not be accepted")
	}
}

func TestBuildTrace_NoInitialState(t *testing.T) {
	m := automaton.New()
	_ = m.AddState("q0", false, true)

	_, err := simulate.BuildTrace(m, "a")
	if !errors.Is(err, automaton.ErrNoInitialState) {
		t.Errorf("expected ErrNoInitialState, got %v", err)
	}
}

func TestCursor(t *testing.T) {
	m := endsInA(t)
	trace, err := simulate.BuildTrace(m, "ba")
	if err != nil {
		t.Fatalf("BuildTrace() error = %v", err)
	}

	c := simulate.NewCursor(trace)
	if c.Current().StateID != "q0" {
		t.Errorf("cursor starts at %s, want q0", c.Current().StateID)
	}

	// Bounded at the start.
	if c.Prev() {
		t.Error("Prev() at step 0 should report false")
	}

	if !c.Next() || !c.Next() {
		t.Fatal("Next() should succeed twice")
	}
	if c.Current().StateID != "q1" {
		t.Errorf("cursor at %s, want q1", c.Current().StateID)
	}

	// Bounded at the end.
	if c.Next() {
		t.Error("Next() at the last step should report false")
	}
	if c.Index() != 2 {
		t.Errorf("index = %d, want 2", c.Index())
	}

	if !c.Prev() {
		t.Error("Prev() should succeed")
	}
	c.Reset()
	if c.Index() != 0 {
		t.Errorf("index after Reset = %d, want 0", c.Index())
	}

	// Re-navigable indefinitely.
	for i := 0; i < 3; i++ {
		for c.Next() {
		}
		c.Reset()
	}
	if c.Current().StateID != "q0" {
		t.Error("trace changed under navigation")
	}
}
