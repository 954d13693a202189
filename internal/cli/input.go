// Package cli handles the batch correction pipeline and the interactive
// prompt used for testing and debugging.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/correct"
	"github.com/bastiangx/spellserve/pkg/suggest"
	"github.com/charmbracelet/log"
)

// InputHandler processes user input from stdin, printing corrections or
// prefix completions. Flags control filtering, the completion limit, and
// the maximum accepted query length.
type InputHandler struct {
	corrector    correct.ICorrector
	completer    *suggest.Completer
	maxQueryLen  int
	suggestLimit int
	noFilter     bool
	completions  bool
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(corrector correct.ICorrector, completer *suggest.Completer, maxLen, limit int, noFilter, completions bool) *InputHandler {
	return &InputHandler{
		corrector:    corrector,
		completer:    completer,
		maxQueryLen:  maxLen,
		suggestLimit: limit,
		noFilter:     noFilter,
		completions:  completions,
	}
}

// Start begins the interface loop.
// It continuously prompts for input, reads a line from stdin,
// and passes the trimmed input to handleInput() for processing.
// Loop terminates if an error occurs while reading from stdin.
func (h *InputHandler) Start() error {
	if h.completions {
		log.Print("SpellServe CLI -- completion mode")
		log.Print("type a prefix and press Enter to see completions (Ctrl+C to exit):")
	} else {
		log.Print("SpellServe CLI")
		log.Print("type a word and press Enter to check its spelling (Ctrl+C to exit):")
	}
	reader := bufio.NewReader(os.Stdin)

	for {
		log.Print("> ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return err
		}
		word := strings.TrimSpace(line)
		if word == "" {
			continue
		}
		h.handleInput(word)
	}
}

// handleInput processes a single query. It validates length and content,
// then asks the corrector (or completer) and prints the formatted result.
func (h *InputHandler) handleInput(word string) {
	if len(word) > h.maxQueryLen {
		log.Errorf("Query too long: %s", word)
		return
	}

	// input filtering by default (unless --no-filter flag is used)
	if !h.noFilter && !utils.IsValidInput(word) {
		log.Warnf("Skipping query: '%s'", word)
		return
	}

	start := time.Now()

	if h.completions {
		suggestions := h.completer.Complete(word, h.suggestLimit)
		log.Debugf("Took [ %v ] for prefix '%s'", time.Since(start), word)

		if len(suggestions) == 0 {
			log.Warnf("No completions found for prefix: '%s'", word)
			return
		}
		log.Printf("Found %d completions for prefix '%s':", len(suggestions), word)
		for i, s := range suggestions {
			fmtFreq := utils.FormatWithCommas(s.Frequency)
			clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", s.Word)
			log.Printf("%2d. %-40s (freq: %8s)", i+1, clWord, fmtFreq)
		}
		return
	}

	result, ok := h.corrector.Correct(word)
	log.Debugf("Took [ %v ] for word '%s'", time.Since(start), word)

	switch {
	case !ok:
		log.Warnf("No correction within %d edits for '%s'", h.corrector.MaxEdits(), word)
	case result.Word == word:
		log.Printf("'%s' is spelled correctly (freq: %s)", word, utils.FormatWithCommas(result.Frequency))
	default:
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", result.Word)
		log.Printf("'%s' -> %s (%d edits, freq: %s)",
			word, clWord, result.Edits, utils.FormatWithCommas(result.Frequency))
	}
}
