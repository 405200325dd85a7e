package picker

import (
	"fmt"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// MatchMode names a filter matching strategy.
type MatchMode string

const (
	// MatchSubstring keeps items containing the query verbatim (case-sensitive).
	MatchSubstring MatchMode = "substring"
	// MatchFuzzy keeps items containing the query runes in order (case-sensitive).
	MatchFuzzy MatchMode = "fuzzy"
)

// Matcher reports whether item satisfies query.
type Matcher func(item, query string) bool

// SubstringMatch is the default matcher.
func SubstringMatch(item, query string) bool {
	return strings.Contains(item, query)
}

// FuzzyMatch matches query as an in-order subsequence of item.
func FuzzyMatch(item, query string) bool {
	return fuzzy.Match(query, item)
}

// ParseMatchMode validates a configured match mode. Empty selects substring.
func ParseMatchMode(value string) (MatchMode, error) {
	switch MatchMode(strings.ToLower(strings.TrimSpace(value))) {
	case "", MatchSubstring:
		return MatchSubstring, nil
	case MatchFuzzy:
		return MatchFuzzy, nil
	default:
		return "", fmt.Errorf("unknown match mode %q (want substring or fuzzy)", value)
	}
}

// MatcherFor returns the matcher for mode, defaulting to substring matching.
func MatcherFor(mode MatchMode) Matcher {
	if mode == MatchFuzzy {
		return FuzzyMatch
	}
	return SubstringMatch
}

// FilterItems returns the items matching query in their original order. An
// empty query keeps everything.
func FilterItems(items []string, query string, match Matcher) []string {
	if match == nil {
		match = SubstringMatch
	}
	filtered := make([]string, 0, len(items))
	for _, item := range items {
		if query == "" || match(item, query) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
