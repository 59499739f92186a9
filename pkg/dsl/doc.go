/*
Package dsl provides a fluent builder for constructing automata in code.

It is a convenience layer over the automaton package: the builder records
declarations and replays them through the model's own mutation operations at
Build time, so every invariant (unique ids, single initial state, determinism)
is enforced exactly as it would be for interactive edits.

	m, err := dsl.New().
		State("q0").Initial().On("a", "q1").On("b", "q0").
		State("q1").Final().On("a", "q1").On("b", "q0").
		Build()
*/
package dsl
