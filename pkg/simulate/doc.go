/*
Package simulate replays input strings against a deterministic finite
automaton and exposes the result as a navigable trace.

A trace is an immutable snapshot: one configuration per consumed symbol plus
the starting configuration, stuck-terminated early when a transition is
undefined. A stuck trace is a normal, inspectable outcome rather than an
error. Navigation over a trace is owned entirely by the caller through a
Cursor, so stepping back and forth never re-runs the simulation.
*/
package simulate
