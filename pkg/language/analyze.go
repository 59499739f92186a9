package language

// Decomposition holds the substrings, prefixes, and suffixes of one input.
type Decomposition struct {
	// Substrings is the deduplicated set of non-empty contiguous spans,
	// ordered by first occurrence in the scan.
	Substrings []string `json:"substrings"`
	// Prefixes is input[:k] for k = 1..n, shortest first.
	Prefixes []string `json:"prefixes"`
	// Suffixes is input[k:] for k = 0..n-1, longest first.
	Suffixes []string `json:"suffixes"`
}

// Analyze decomposes input into its substrings, prefixes, and suffixes.
// The empty string yields an empty decomposition.
func Analyze(input string) Decomposition {
	runes := []rune(input)
	n := len(runes)

	var d Decomposition
	seen := make(map[string]bool)
	for i := 0; i < n; i++ {
		for j := i + 1; j <= n; j++ {
			span := string(runes[i:j])
			if !seen[span] {
				seen[span] = true
				d.Substrings = append(d.Substrings, span)
			}
		}
	}

	for k := 1; k <= n; k++ {
		d.Prefixes = append(d.Prefixes, string(runes[:k]))
	}
	for k := 0; k < n; k++ {
		d.Suffixes = append(d.Suffixes, string(runes[k:]))
	}
	return d
}
