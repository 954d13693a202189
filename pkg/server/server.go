package server

import (
	"errors"
	"io"
	"time"

	"github.com/bastiangx/spellserve/internal/logger"
	"github.com/bastiangx/spellserve/internal/utils"
	"github.com/bastiangx/spellserve/pkg/config"
	"github.com/bastiangx/spellserve/pkg/correct"
	"github.com/bastiangx/spellserve/pkg/dictionary"
	"github.com/bastiangx/spellserve/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for spelling corrections.
type Server struct {
	corrector correct.ICorrector
	completer *suggest.Completer
	dict      *dictionary.Trie
	cfg       *config.Config
	decoder   *msgpack.Decoder
	encoder   *msgpack.Encoder
	log       *log.Logger
}

// NewServer creates a correction server speaking msgpack over r and w.
// main wires these to stdin/stdout; tests use in-memory buffers.
func NewServer(corrector correct.ICorrector, completer *suggest.Completer, dict *dictionary.Trie, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	return &Server{
		corrector: corrector,
		completer: completer,
		dict:      dict,
		cfg:       cfg,
		decoder:   msgpack.NewDecoder(r),
		encoder:   msgpack.NewEncoder(w),
		log:       logger.Default("ipc"),
	}
}

// Start begins listening for IPC requests and blocks until EOF or a
// transport error.
func (s *Server) Start() error {
	s.log.Debug("Starting server.")

	for {
		var request CorrectionRequest
		if err := s.decoder.Decode(&request); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches a single decoded request.
func (s *Server) handleRequest(request CorrectionRequest) {
	switch request.Action {
	case "":
		s.handleCorrect(request)
	case "complete":
		s.handleComplete(request)
	case "stats":
		s.sendResponse(StatsResponse{ID: request.ID, Stats: s.dict.Stats()})
	default:
		s.sendError(request.ID, "Unknown action: "+request.Action, 400)
	}
}

// handleCorrect runs one query through the corrector.
func (s *Server) handleCorrect(request CorrectionRequest) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		s.log.Debug("Word is empty in request")
		return
	}
	if s.cfg.Corrector.EnableFilter && !utils.IsValidInput(request.Word) {
		s.sendResponse(CorrectionResponse{ID: request.ID, Word: request.Word})
		return
	}

	start := time.Now()
	result, ok := s.corrector.Correct(request.Word)
	elapsed := time.Since(start).Microseconds()

	response := CorrectionResponse{
		ID:        request.ID,
		Word:      request.Word,
		Found:     ok,
		TimeTaken: elapsed,
	}
	if ok {
		response.Correction = result.Word
		response.Edits = result.Edits
		response.Frequency = result.Frequency
	}
	s.sendResponse(response)
}

// handleComplete returns prefix completions for the requested word.
func (s *Server) handleComplete(request CorrectionRequest) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		return
	}

	limit := request.Limit
	if limit <= 0 || limit > s.cfg.Server.MaxLimit {
		limit = s.cfg.Server.MaxLimit
	}

	start := time.Now()
	suggestions := s.completer.Complete(request.Word, limit)
	elapsed := time.Since(start).Microseconds()

	response := CompletionResponse{
		ID:          request.ID,
		Prefix:      request.Word,
		Suggestions: make([]CompletionSuggestion, 0, len(suggestions)),
		Count:       len(suggestions),
		TimeTaken:   elapsed,
	}
	for _, sg := range suggestions {
		response.Suggestions = append(response.Suggestions, CompletionSuggestion{
			Word:      sg.Word,
			Frequency: sg.Frequency,
		})
	}
	s.sendResponse(response)
}

// sendResponse encodes the given response and writes it to the client.
func (s *Server) sendResponse(response any) {
	if err := s.encoder.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(CorrectionError{ID: id, Error: message, Code: code})
}
