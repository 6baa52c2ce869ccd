package schema

import "sort"

// NearestNames returns up to 5 candidates close to name, ordered by edit distance, for use in
// "did you mean" hints on unknown-argument/unknown-field errors. A candidate is only suggested if
// its distance is within a third of its own length (plus one), the same threshold graphql-js uses
// for its suggestion lists.
func NearestNames(name string, candidates []string) []string {
	type scored struct {
		name string
		dist int
	}
	var matches []scored
	for _, candidate := range candidates {
		threshold := len(candidate)/3 + 1
		if d := levenshtein(name, candidate); d <= threshold {
			matches = append(matches, scored{candidate, d})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].dist < matches[j].dist
	})
	if len(matches) > 5 {
		matches = matches[:5]
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = m.name
	}
	return names
}

// SuggestionMessage formats a list of candidate names as a " Did you mean ...?" suffix, or the
// empty string if there are no candidates.
func SuggestionMessage(candidates []string) string {
	switch len(candidates) {
	case 0:
		return ""
	case 1:
		return " Did you mean \"" + candidates[0] + "\"?"
	default:
		msg := " Did you mean "
		for i, c := range candidates {
			if i > 0 {
				if i == len(candidates)-1 {
					msg += " or "
				} else {
					msg += ", "
				}
			}
			msg += "\"" + c + "\""
		}
		return msg + "?"
	}
}

func levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			del := prev[j] + 1
			ins := curr[j-1] + 1
			sub := prev[j-1] + cost
			min := del
			if ins < min {
				min = ins
			}
			if sub < min {
				min = sub
			}
			curr[j] = min
		}
		prev, curr = curr, prev
	}
	return prev[len(rb)]
}
