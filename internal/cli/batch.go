package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/bastiangx/spellserve/pkg/correct"
)

// RunBatch reads one query word per line from in and writes one result line
// per query to out, in input order:
//
//	word            the word is spelled correctly
//	word, better    the best correction within the edit budget
//	word, -         no correction found
//
// Queries are trimmed of surrounding whitespace but otherwise passed to the
// corrector as typed; blank lines are skipped.
func RunBatch(corrector correct.ICorrector, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	writer := bufio.NewWriter(out)

	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word == "" {
			continue
		}
		if _, err := fmt.Fprintln(writer, FormatCorrection(corrector, word)); err != nil {
			return fmt.Errorf("writing result: %w", err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading queries: %w", err)
	}
	return writer.Flush()
}

// FormatCorrection renders the result line for a single query word.
func FormatCorrection(corrector correct.ICorrector, word string) string {
	result, ok := corrector.Correct(word)
	switch {
	case ok && result.Word == word:
		return word
	case ok:
		return word + ", " + result.Word
	default:
		return word + ", -"
	}
}
