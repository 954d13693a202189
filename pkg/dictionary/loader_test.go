package dictionary

import (
	"strings"
	"testing"
)

func TestLoadCorpusCountsWords(t *testing.T) {
	trie, err := LoadCorpus(strings.NewReader("two three\n two three three\n"))
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}

	if got := trie.Frequency("two"); got != 2 {
		t.Errorf("Frequency(\"two\") = %d, want 2", got)
	}
	if got := trie.Frequency("three"); got != 3 {
		t.Errorf("Frequency(\"three\") = %d, want 3", got)
	}
}

func TestLoadCorpusLowercases(t *testing.T) {
	trie, err := LoadCorpus(strings.NewReader("Two  tHree\n TWO THREE three\n"))
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}

	if got := trie.Frequency("two"); got != 2 {
		t.Errorf("Frequency(\"two\") = %d, want 2", got)
	}
	if got := trie.Frequency("three"); got != 3 {
		t.Errorf("Frequency(\"three\") = %d, want 3", got)
	}
	if trie.Contains("Two") {
		t.Error("uppercase form should not survive normalization")
	}
}

func TestLoadCorpusStripsPunctuation(t *testing.T) {
	trie, err := LoadCorpus(strings.NewReader("'one' two, : \"three\"\n two? three (three)\n"))
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}

	wantFreqs := map[string]int{
		"one":   1,
		"two":   2,
		"three": 3,
	}
	for word, want := range wantFreqs {
		if got := trie.Frequency(word); got != want {
			t.Errorf("Frequency(%q) = %d, want %d", word, got, want)
		}
	}

	// The bare ":" token is punctuation only and must not be indexed.
	if got := trie.Stats()["distinctWords"]; got != 3 {
		t.Errorf("distinctWords = %d, want 3", got)
	}
}

func TestNormalizeToken(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"Hello", "hello"},
		{"world,", "world"},
		{"'quoted'", "quoted"},
		{"(bracketed)", "bracketed"},
		{"[dash-ed]-", "dash-ed"},
		{"...", ""},
		{"", ""},
	}

	for _, tc := range testCases {
		if got := NormalizeToken(tc.in); got != tc.want {
			t.Errorf("NormalizeToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

type recordingSink struct {
	last map[string]int
}

func (s *recordingSink) AddWord(word string, frequency int) {
	s.last[word] = frequency
}

func TestLoadCorpusFeedsSinks(t *testing.T) {
	sink := &recordingSink{last: make(map[string]int)}

	_, err := LoadCorpus(strings.NewReader("hello world,\nbye world\n"), sink)
	if err != nil {
		t.Fatalf("LoadCorpus: %v", err)
	}

	if got := sink.last["world"]; got != 2 {
		t.Errorf("sink saw world with frequency %d, want 2", got)
	}
	if got := sink.last["hello"]; got != 1 {
		t.Errorf("sink saw hello with frequency %d, want 1", got)
	}
}
