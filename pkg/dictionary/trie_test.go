package dictionary

import (
	"sort"
	"testing"
)

func TestInsertAndContains(t *testing.T) {
	trie := NewTrie()

	words := []string{"a", "an", "apple"}
	for _, w := range words {
		trie.Insert(w)
	}

	for _, w := range words {
		if !trie.Contains(w) {
			t.Errorf("Contains(%q) = false, want true", w)
		}
	}

	// Prefixes of inserted words are not members.
	for _, w := range []string{"ap", "app", "appl", "b", ""} {
		if trie.Contains(w) {
			t.Errorf("Contains(%q) = true, want false", w)
		}
	}
}

func TestFrequencyAccumulates(t *testing.T) {
	trie := NewTrie()

	for i := 0; i < 5; i++ {
		trie.Insert("an")
	}
	trie.Insert("a")

	if got := trie.Frequency("an"); got != 5 {
		t.Errorf("Frequency(\"an\") = %d, want 5", got)
	}
	if got := trie.Frequency("a"); got != 1 {
		t.Errorf("Frequency(\"a\") = %d, want 1", got)
	}
	if got := trie.Frequency("missing"); got != 0 {
		t.Errorf("Frequency(\"missing\") = %d, want 0", got)
	}
}

func TestInsertEmptyWord(t *testing.T) {
	trie := NewTrie()
	trie.Insert("")

	if !trie.Contains("") {
		t.Error("empty word should be a member after explicit insert")
	}
	if got := trie.Root().Count(); got != 1 {
		t.Errorf("root count = %d, want 1", got)
	}
}

func TestChildrenSharePrefixNodes(t *testing.T) {
	trie := NewTrie()
	trie.Insert("an")
	trie.Insert("an")
	trie.Insert("a")

	root := trie.Root()
	if got := len(root.Children()); got != 1 {
		t.Fatalf("root has %d children, want 1", got)
	}

	a := root.Child('a')
	if a == nil {
		t.Fatal("missing 'a' child")
	}
	if a.Count() != 1 {
		t.Errorf("node 'a' count = %d, want 1", a.Count())
	}

	n := a.Child('n')
	if n == nil {
		t.Fatal("missing 'n' child under 'a'")
	}
	if n.Count() != 2 {
		t.Errorf("node 'an' count = %d, want 2", n.Count())
	}
}

func TestChildOrderIsCanonical(t *testing.T) {
	trie := NewTrie()
	// Insertion order deliberately scrambled.
	for _, w := range []string{"melon", "apple", "zebra", "cherry", "banana"} {
		trie.Insert(w)
	}

	children := trie.Root().Children()
	if !sort.SliceIsSorted(children, func(i, j int) bool { return children[i] < children[j] }) {
		t.Errorf("root children not in ascending rune order: %q", string(children))
	}
	if got, want := string(children), "abcmz"; got != want {
		t.Errorf("root children = %q, want %q", got, want)
	}
}

func TestStats(t *testing.T) {
	trie := NewTrie()
	trie.Insert("two")
	trie.Insert("three")
	trie.Insert("three")

	stats := trie.Stats()
	if stats["totalWords"] != 3 {
		t.Errorf("totalWords = %d, want 3", stats["totalWords"])
	}
	if stats["distinctWords"] != 2 {
		t.Errorf("distinctWords = %d, want 2", stats["distinctWords"])
	}
	if stats["maxFrequency"] != 2 {
		t.Errorf("maxFrequency = %d, want 2", stats["maxFrequency"])
	}
}
