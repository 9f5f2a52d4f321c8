package suggest

import (
	"fmt"
	"sort"
	"strings"
)

// Candidate couples a learned word with its confidence, the number of
// times the word was seen when the candidate was last indexed.
// Two candidates are the same candidate when their words match.
type Candidate struct {
	Word       string
	Confidence int
}

func (c Candidate) String() string {
	return fmt.Sprintf("\"%s\" (%d)", c.Word, c.Confidence)
}

// SortCandidates orders by confidence (highest first); equal confidences
// fall back to ascending word order so results are reproducible.
func SortCandidates(candidates []Candidate) {
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Confidence != candidates[j].Confidence {
			return candidates[i].Confidence > candidates[j].Confidence
		}
		return candidates[i].Word < candidates[j].Word
	})
}

// FormatCandidates renders candidates as `"word" (n)` separated by commas
func FormatCandidates(candidates []Candidate) string {
	parts := make([]string, len(candidates))
	for i, c := range candidates {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
