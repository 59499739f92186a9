package dsl_test

import (
	"errors"
	"testing"

	"github.com/finitolabs/finito/pkg/automaton"
	"github.com/finitolabs/finito/pkg/dsl"
	"github.com/finitolabs/finito/pkg/simulate"
)

func TestBuilder(t *testing.T) {
	m, err := dsl.New().
		State("q0").Initial().On("a", "q1").On("b", "q0").
		State("q1").Final().On("a", "q1").On("b", "q0").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	if got, _ := simulate.Accept(m, "ba"); !got {
		t.Error("built machine should accept \"ba\"")
	}
	if got, _ := simulate.Accept(m, "bb"); got {
		t.Error("built machine should reject \"bb\"")
	}
}

func TestBuilder_ForwardReference(t *testing.T) {
	// q1 is referenced before it is declared.
	m, err := dsl.New().
		State("q0").Initial().On("a", "q1").
		State("q1").Final().
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if to, ok := m.Next("q0", "a"); !ok || to != "q1" {
		t.Errorf("Next(q0, a) = %q, %v, want q1, true", to, ok)
	}
}

func TestBuilder_UndeclaredTarget(t *testing.T) {
	_, err := dsl.New().
		State("q0").Initial().On("a", "ghost").
		Build()

	var unknown *automaton.UnknownStateError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected *UnknownStateError, got %v", err)
	}
}

func TestBuilder_NonDeterministicDeclaration(t *testing.T) {
	_, err := dsl.New().
		State("q0").Initial().On("a", "q1").On("a", "q0").
		State("q1").
		Build()

	var nd *automaton.NonDeterministicTransitionError
	if !errors.As(err, &nd) {
		t.Fatalf("expected *NonDeterministicTransitionError, got %v", err)
	}
}

func TestBuilder_LastInitialWins(t *testing.T) {
	m, err := dsl.New().
		State("q0").Initial().
		State("q1").Initial().
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	initial, _ := m.InitialState()
	if initial != "q1" {
		t.Errorf("initial = %q, want q1", initial)
	}
}
