package suggest

import "strings"

// FrequencyCounter tracks how often each lowercased word was seen.
// Counts only grow and entries are never removed.
type FrequencyCounter struct {
	counts   map[string]int
	total    int
	maxCount int
}

func NewFrequencyCounter() *FrequencyCounter {
	return &FrequencyCounter{
		counts: make(map[string]int),
	}
}

// Increment bumps the count of word and returns the new count
func (fc *FrequencyCounter) Increment(word string) int {
	word = strings.ToLower(word)
	count := fc.counts[word] + 1
	fc.counts[word] = count
	fc.total++
	if count > fc.maxCount {
		fc.maxCount = count
	}
	return count
}

// HasAnyEntries reports whether at least one word was ever counted
func (fc *FrequencyCounter) HasAnyEntries() bool {
	return len(fc.counts) > 0
}

// Count returns the current count of word, 0 if it was never seen
func (fc *FrequencyCounter) Count(word string) int {
	return fc.counts[strings.ToLower(word)]
}

// Len is the number of distinct words
func (fc *FrequencyCounter) Len() int {
	return len(fc.counts)
}

// Total is the number of counted occurrences across all words
func (fc *FrequencyCounter) Total() int {
	return fc.total
}

func (fc *FrequencyCounter) Max() int {
	return fc.maxCount
}
