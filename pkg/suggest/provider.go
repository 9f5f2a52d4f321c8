package suggest

import (
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Provider learns words from passages and answers prefix lookups.
// It owns both the word counts and the prefix index; a count bump and
// the re-index of that word happen under the same lock.
type Provider struct {
	counter *FrequencyCounter
	index   *PrefixIndex
	mu      sync.RWMutex
}

func NewProvider() *Provider {
	return &Provider{
		counter: NewFrequencyCounter(),
		index:   NewPrefixIndex(),
	}
}

// Train lowercases passage, splits it on whitespace and learns every word
// in order. A word repeated inside one passage is counted once per
// occurrence and its latest count wins in the index.
func (p *Provider) Train(passage string) error {
	if len(passage) == 0 {
		return ErrInvalidInput
	}

	words := strings.Fields(strings.ToLower(passage))
	if len(words) <= 1 {
		return ErrInsufficientInput
	}

	start := time.Now()
	p.mu.Lock()
	for _, word := range words {
		count := p.counter.Increment(word)
		p.index.IndexWord(word, count)
	}
	p.mu.Unlock()

	log.Debugf("Trained %d words in %v", len(words), time.Since(start))
	return nil
}

// Lookup returns every learned word starting with fragment
func (p *Provider) Lookup(fragment string) ([]Candidate, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, ErrInvalidInput
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if !p.counter.HasAnyEntries() {
		return nil, ErrNotYetTrained
	}
	return p.index.Query(fragment)
}

// Count returns how many times word was learned
func (p *Provider) Count(word string) int {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.counter.Count(word)
}

func (p *Provider) Stats() map[string]int {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return map[string]int{
		"distinctWords": p.counter.Len(),
		"totalWords":    p.counter.Total(),
		"maxFrequency":  p.counter.Max(),
		"indexedWords":  p.index.Len(),
	}
}
