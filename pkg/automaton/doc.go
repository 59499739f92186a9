/*
Package automaton contains the core model for deterministic finite automata.

It defines the fundamental entities of the machine (states, the alphabet,
and the transition table) and enforces the determinism invariant at every
mutation boundary: for any (state, symbol) pair the table holds at most one
target state. This package is kept pure and free of I/O or persistence
concerns; codecs and stores live in their own packages and talk to the model
only through its exported operations.

# Key Entities

  - State: a named node with initial/final markings.
  - Machine: the automaton value; alphabet, states, transition table.
  - Transition: a (from, symbol, to) triple, used for inspection and codecs.
  - Epsilon: the distinguished empty symbol carried by foreign formats.
*/
package automaton
