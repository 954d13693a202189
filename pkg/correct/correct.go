// Package correct is the core, walking the dictionary trie with a bounded
// edit budget to find the most plausible correction for a query word.
//
// A correction is a corpus word reachable from the query within the edit
// budget, where one edit is the deletion of a letter, the insertion of a
// letter at any position, the replacement of one letter with another, or the
// transposition of two neighboring letters. Fewer edits always wins; among
// candidates at the same distance the higher corpus frequency wins.
package correct

import "github.com/bastiangx/spellserve/pkg/dictionary"

// DefaultMaxEdits is the edit budget used when none is configured. "Small
// edits" are those within 2 edits.
const DefaultMaxEdits = 2

// Result holds a single accepted correction.
type Result struct {
	Word      string
	Frequency int
	Edits     int
}

// Corrector searches a dictionary for bounded-edit corrections. It only
// reads the trie, so a single Corrector may serve any number of independent
// queries.
type Corrector struct {
	dict     *dictionary.Trie
	maxEdits int
}

// searchState accumulates the best candidate over one query. A fresh state
// is created per call and never shared.
type searchState struct {
	word  string
	found bool
	freq  int
	edits int
}

// NewCorrector wraps dict with the given edit budget. A budget of 0 accepts
// exact matches only; a negative budget falls back to DefaultMaxEdits.
func NewCorrector(dict *dictionary.Trie, maxEdits int) *Corrector {
	if maxEdits < 0 {
		maxEdits = DefaultMaxEdits
	}
	return &Corrector{dict: dict, maxEdits: maxEdits}
}

// MaxEdits returns the configured edit budget.
func (c *Corrector) MaxEdits() int {
	return c.maxEdits
}

// Correct returns the best correction for word, or ok=false when no corpus
// word lies within the edit budget. The query is matched as-is; callers that
// want case-insensitive behavior normalize first.
func (c *Corrector) Correct(word string) (Result, bool) {
	state := &searchState{edits: c.maxEdits}
	path := make([]rune, 0, len(word)+c.maxEdits)

	c.search(c.dict.Root(), []rune(word), path, 0, state)

	if !state.found {
		return Result{}, false
	}
	return Result{Word: state.word, Frequency: state.freq, Edits: state.edits}, true
}

// search recursively explores (node, remaining suffix, edits spent). path
// holds the runes of the trie path walked so far; it is pushed before each
// descent and popped right after, so at any terminal it spells the candidate
// word.
func (c *Corrector) search(n *dictionary.Node, rest, path []rune, k int, state *searchState) {
	if len(rest) == 0 {
		// Candidate: the whole query has been consumed at this node.
		if (k < state.edits && n.Count() > 0) || (k == state.edits && n.Count() > state.freq) {
			state.word = string(path)
			state.found = true
			state.freq = n.Count()
			state.edits = k
		}
		if k >= state.edits {
			// Trailing insertions cost k+1 and can no longer qualify.
			return
		}
		// Insert letters at the end to complete a longer corpus word.
		for _, r := range n.Children() {
			path = append(path, r)
			c.search(n.Child(r), rest, path, k+1, state)
			path = path[:len(path)-1]
		}
		return
	}

	// Exact match, no edit spent.
	if child := n.Child(rest[0]); child != nil {
		path = append(path, rest[0])
		c.search(child, rest[1:], path, k, state)
		path = path[:len(path)-1]
	}

	if k >= state.edits {
		// A candidate at least this good exists; no edited continuation
		// from here can beat it. This is the only bound on the search.
		return
	}

	// Delete a letter.
	c.search(n, rest[1:], path, k+1, state)

	// Transpose two neighboring letters, counted as a single edit.
	if len(rest) > 1 {
		if child := n.Child(rest[1]); child != nil {
			swapped := make([]rune, 0, len(rest)-1)
			swapped = append(swapped, rest[0])
			swapped = append(swapped, rest[2:]...)

			path = append(path, rest[1])
			c.search(child, swapped, path, k+1, state)
			path = path[:len(path)-1]
		}
	}

	for _, r := range n.Children() {
		child := n.Child(r)
		path = append(path, r)

		// Insert a letter before the rest of the query.
		c.search(child, rest, path, k+1, state)

		// Replace the current letter.
		c.search(child, rest[1:], path, k+1, state)

		path = path[:len(path)-1]
	}
}
