// Package suggest provides prefix completions over the corpus vocabulary,
// used as a secondary lookup mode next to spelling correction.
package suggest

import (
	"sort"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Suggestion is a single completion candidate.
type Suggestion struct {
	Word      string
	Frequency int
}

// Completer indexes corpus words in a Patricia trie for prefix retrieval.
// It satisfies dictionary.WordSink so the loader can feed it while the
// correction trie is built.
type Completer struct {
	trie         *patricia.Trie
	totalWords   int
	maxFrequency int
}

// NewCompleter returns an empty completer.
func NewCompleter() *Completer {
	return &Completer{trie: patricia.NewTrie()}
}

// AddWord records word with its corpus frequency. Repeated calls for the
// same word keep the highest frequency seen.
func (c *Completer) AddWord(word string, frequency int) {
	if item := c.trie.Get(patricia.Prefix(word)); item != nil {
		if prev, ok := item.(int); ok && prev >= frequency {
			return
		}
	} else {
		c.totalWords++
	}
	c.trie.Set(patricia.Prefix(word), frequency)
	if frequency > c.maxFrequency {
		c.maxFrequency = frequency
	}
}

// Complete returns up to limit corpus words starting with prefix, ranked by
// frequency (highest first). The prefix itself is excluded.
func (c *Completer) Complete(prefix string, limit int) []Suggestion {
	lowerPrefix := strings.ToLower(prefix)

	var suggestions []Suggestion
	err := c.trie.VisitSubtree(patricia.Prefix(lowerPrefix), func(p patricia.Prefix, item patricia.Item) error {
		word := string(p)
		if word == lowerPrefix {
			return nil
		}

		freq := 1
		switch v := item.(type) {
		case int:
			freq = v
		case int32:
			freq = int(v)
		case uint32:
			freq = int(v)
		default:
			log.Errorf("Unknown item type: %T for word %s", item, p)
		}

		suggestions = append(suggestions, Suggestion{Word: word, Frequency: freq})
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting trie subtree: %v", err)
		return nil
	}

	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Frequency != suggestions[j].Frequency {
			return suggestions[i].Frequency > suggestions[j].Frequency
		}
		return suggestions[i].Word < suggestions[j].Word
	})

	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// Stats returns counters about the indexed vocabulary.
func (c *Completer) Stats() map[string]int {
	return map[string]int{
		"totalWords":   c.totalWords,
		"maxFrequency": c.maxFrequency,
	}
}
