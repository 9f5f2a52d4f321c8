package suggest

import (
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// PrefixIndex maps every prefix of every indexed word to the candidates
// carrying that prefix. Words are the trie keys, so the subtree under a
// prefix holds exactly one Candidate per distinct word.
type PrefixIndex struct {
	trie  *patricia.Trie
	words int
}

func NewPrefixIndex() *PrefixIndex {
	return &PrefixIndex{
		trie: patricia.NewTrie(),
	}
}

// IndexWord stores word with the given confidence, replacing the
// candidate left by any earlier indexing of the same word.
func (pi *PrefixIndex) IndexWord(word string, confidence int) {
	word = strings.ToLower(word)
	key := patricia.Prefix(word)
	if pi.trie.Get(key) == nil {
		pi.words++
	}
	pi.trie.Set(key, Candidate{Word: word, Confidence: confidence})
}

// Query returns the candidates for fragment, highest confidence first
func (pi *PrefixIndex) Query(fragment string) ([]Candidate, error) {
	if strings.TrimSpace(fragment) == "" {
		return nil, ErrInvalidInput
	}
	lowerFragment := strings.ToLower(fragment)

	var candidates []Candidate
	err := pi.trie.VisitSubtree(patricia.Prefix(lowerFragment), func(p patricia.Prefix, item patricia.Item) error {
		c, ok := item.(Candidate)
		if !ok {
			log.Errorf("Unknown item type: %T for word %s", item, p)
			return nil
		}
		candidates = append(candidates, c)
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil, err
	}

	if len(candidates) == 0 {
		return nil, ErrNotFound
	}

	SortCandidates(candidates)
	return candidates, nil
}

// Len is the number of distinct indexed words
func (pi *PrefixIndex) Len() int {
	return pi.words
}
