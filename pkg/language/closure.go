package language

import (
	"unicode"

	"github.com/finitolabs/finito/pkg/automaton"
)

// DefaultLimit caps the number of strings a single closure run may produce.
// Callers with more memory to spend can raise it per call with WithLimit.
const DefaultLimit = 1 << 20

type closureConfig struct {
	limit int
}

// ClosureOption adjusts a single closure run.
type ClosureOption func(*closureConfig)

// WithLimit overrides the output-size ceiling for one run.
func WithLimit(limit int) ClosureOption {
	return func(c *closureConfig) {
		c.limit = limit
	}
}

// Closure enumerates strings over the given symbols up to maxLength, ordered
// by length and then by symbol order within each length. Repeated symbols
// and whitespace in the input collapse away. The empty string is included
// iff includeEmpty. If the projected output size exceeds the ceiling the run
// is refused with *automaton.ResourceLimitError before anything is built.
func Closure(symbols string, maxLength int, includeEmpty bool, opts ...ClosureOption) ([]string, error) {
	cfg := closureConfig{limit: DefaultLimit}
	for _, opt := range opts {
		opt(&cfg)
	}

	alphabet := dedupe(symbols)
	if maxLength < 0 {
		maxLength = 0
	}

	projected := projectedSize(len(alphabet), maxLength, includeEmpty)
	if projected > cfg.limit {
		return nil, &automaton.ResourceLimitError{Projected: projected, Limit: cfg.limit}
	}

	result := make([]string, 0, projected)
	if includeEmpty {
		result = append(result, "")
	}

	// Strings of length L+1 are every length-L string extended by each
	// symbol in order, which yields the (length, symbol-order) ordering.
	previous := []string{""}
	for length := 1; length <= maxLength; length++ {
		next := make([]string, 0, len(previous)*len(alphabet))
		for _, prefix := range previous {
			for _, sym := range alphabet {
				next = append(next, prefix+sym)
			}
		}
		result = append(result, next...)
		previous = next
	}

	return result, nil
}

// KleeneStar enumerates Σ* up to maxLength, empty string included.
func KleeneStar(symbols string, maxLength int, opts ...ClosureOption) ([]string, error) {
	return Closure(symbols, maxLength, true, opts...)
}

// PositiveClosure enumerates Σ+ up to maxLength, empty string excluded.
func PositiveClosure(symbols string, maxLength int, opts ...ClosureOption) ([]string, error) {
	return Closure(symbols, maxLength, false, opts...)
}

// projectedSize computes sum of |Σ|^L for L in [1, maxLength], plus one for
// the empty string. Saturates instead of overflowing.
func projectedSize(n, maxLength int, includeEmpty bool) int {
	total := 0
	if includeEmpty {
		total = 1
	}
	power := 1
	for l := 1; l <= maxLength; l++ {
		if n != 0 && power > (1<<40)/n {
			return 1 << 41 // saturated, certain to exceed any sane limit
		}
		power *= n
		total += power
	}
	return total
}

func dedupe(symbols string) []string {
	seen := make(map[rune]bool)
	var out []string
	for _, r := range symbols {
		if unicode.IsSpace(r) || seen[r] {
			continue
		}
		seen[r] = true
		out = append(out, string(r))
	}
	return out
}
