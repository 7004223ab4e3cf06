package util

import "github.com/sahilm/fuzzy"

// ScoreCompletions returns the top N matches for the input string from the candidates list.
func ScoreCompletions(input string, candidates []string, n int) []string {
	if input == "" {
		return candidates
	}
	matches := fuzzy.Find(input, candidates)
	if len(matches) == 0 {
		return nil
	}

	limit := n
	if n <= 0 || len(matches) < limit {
		limit = len(matches)
	}

	out := make([]string, limit)
	for i := 0; i < limit; i++ {
		out[i] = matches[i].Str
	}
	return out
}

// ClosestHeader suggests the spreadsheet header most likely meant by want,
// or "" when nothing resembles it.
func ClosestHeader(want string, headers []string) string {
	best := ScoreCompletions(want, headers, 1)
	if len(best) == 0 {
		return ""
	}
	return best[0]
}
