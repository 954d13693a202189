// Package dictionary implements the frequency-annotated prefix trie that
// backs spelling correction, along with corpus ingestion.
//
// The trie stores every distinct corpus word as a path from the root, one
// edge per rune. Each node carries the number of corpus occurrences of the
// word terminating exactly there. The tree is built once from the training
// corpus and treated as read-only afterwards; concurrent read-only lookups
// are safe, concurrent mutation is not.
package dictionary

import "sort"

// Node is a single trie node. Nodes are created lazily during insertion and
// are exclusively owned by their parent; external code only ever holds
// read-only references obtained through Root and Child.
type Node struct {
	count    int
	children map[rune]*Node
	order    []rune
}

func newNode() *Node {
	return &Node{children: make(map[rune]*Node)}
}

// Count returns how many corpus words terminate exactly at this node.
func (n *Node) Count() int {
	return n.count
}

// Child returns the child reached by r, or nil if no inserted word continues
// with r from this prefix.
func (n *Node) Child(r rune) *Node {
	return n.children[r]
}

// Children returns the outgoing edge runes in ascending rune order. The
// canonical order keeps same-distance, same-frequency correction ties
// deterministic across runs.
func (n *Node) Children() []rune {
	return n.order
}

func (n *Node) ensureChild(r rune) *Node {
	if child, ok := n.children[r]; ok {
		return child
	}
	child := newNode()
	n.children[r] = child

	i := sort.Search(len(n.order), func(i int) bool { return n.order[i] >= r })
	n.order = append(n.order, 0)
	copy(n.order[i+1:], n.order[i:])
	n.order[i] = r
	return child
}

// Trie is the dictionary built from a training corpus.
type Trie struct {
	root          *Node
	totalWords    int
	distinctWords int
	maxFrequency  int
}

// NewTrie returns an empty dictionary.
func NewTrie() *Trie {
	return &Trie{root: newNode()}
}

// Insert adds one corpus occurrence of word. Inserting the same word again
// increments its frequency; the empty string increments the root count.
func (t *Trie) Insert(word string) {
	n := t.root
	for _, r := range word {
		n = n.ensureChild(r)
	}
	n.count++
	t.totalWords++
	if n.count == 1 {
		t.distinctWords++
	}
	if n.count > t.maxFrequency {
		t.maxFrequency = n.count
	}
}

// Contains reports whether word was inserted at least once. Prefixes of
// inserted words do not count.
func (t *Trie) Contains(word string) bool {
	return t.Frequency(word) > 0
}

// Frequency returns the number of corpus occurrences of word, 0 if absent.
func (t *Trie) Frequency(word string) int {
	n := t.root
	for _, r := range word {
		if n = n.Child(r); n == nil {
			return 0
		}
	}
	return n.count
}

// Root returns the node for the empty prefix.
func (t *Trie) Root() *Node {
	return t.root
}

// Stats returns counters about the loaded dictionary.
func (t *Trie) Stats() map[string]int {
	return map[string]int{
		"totalWords":    t.totalWords,
		"distinctWords": t.distinctWords,
		"maxFrequency":  t.maxFrequency,
	}
}
