package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// stripMarks is the punctuation stripped from both ends of every corpus
// token before insertion.
const stripMarks = ".,:;'\"?!()[]-"

// WordSink receives each normalized corpus token as it is read. Secondary
// indexes (the prefix completer) register here so the corpus is only
// scanned once.
type WordSink interface {
	AddWord(word string, frequency int)
}

// NormalizeToken lowercases a raw corpus token and strips the fixed
// punctuation set from both ends. Returns "" for tokens that were nothing
// but punctuation.
func NormalizeToken(token string) string {
	return strings.ToLower(strings.Trim(token, stripMarks))
}

// LoadCorpus builds a dictionary from free text: lines are split on
// whitespace and every normalized token is inserted. Extra sinks receive
// each token with its running frequency.
func LoadCorpus(r io.Reader, sinks ...WordSink) (*Trie, error) {
	trie := NewTrie()
	scanner := bufio.NewScanner(r)

	lines := 0
	for scanner.Scan() {
		lines++
		for _, token := range strings.Fields(scanner.Text()) {
			word := NormalizeToken(token)
			if word == "" {
				continue
			}
			trie.Insert(word)
			for _, sink := range sinks {
				sink.AddWord(word, trie.Frequency(word))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading corpus: %w", err)
	}

	log.Debugf("Corpus loaded: %d lines, %d words (%d distinct)",
		lines, trie.totalWords, trie.distinctWords)
	return trie, nil
}

// LoadCorpusFile builds a dictionary from the corpus file at path.
func LoadCorpusFile(path string, sinks ...WordSink) (*Trie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening corpus file: %w", err)
	}
	defer file.Close()

	return LoadCorpus(file, sinks...)
}
