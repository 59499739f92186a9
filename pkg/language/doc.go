/*
Package language provides stateless formal-language helpers: bounded Kleene
and positive closure generation over a symbol set, and decomposition of a
string into its substrings, prefixes, and suffixes.

These functions operate on raw symbols and strings and are independent of
the automaton model. Closure generation is combinatorial, so it carries an
explicit safety ceiling and refuses runs whose projected output would exceed
it instead of allocating unbounded memory.
*/
package language
