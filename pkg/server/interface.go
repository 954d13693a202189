/*
Package server implements msgpack IPC for spelling correction services.

The server package provides a minimal interface for spell checking using
msgpack serialization over stdin/stdout.

The protocol uses binary msgpack encoding and supports correction requests,
prefix completion requests, and dictionary stats. Messages are processed
synchronously with timing info included in responses.

# IPC

The server operates on a request response model where clients send structured
messages via stdin and receive responses through stdout. Each message contains
an ID field and other fields based on the operation type.

Correction requests use this structure:

	{"id": "req_001", "w": "wordl"}

The server responds with the best correction within the edit budget:

	{"id": "req_001", "w": "wordl", "c": "world", "f": true, "e": 1, "q": 2, "t": 145}

Completion requests reuse the same envelope with an action field:

	{"id": "req_002", "action": "complete", "w": "wor", "l": 10}
	{"id": "req_003", "action": "stats"}

Response structures include status information and error details when an op
fails.
*/
package server

// CorrectionRequest - request envelope for all operations
type CorrectionRequest struct {
	ID     string `msgpack:"id"`
	Action string `msgpack:"action,omitempty"` // "" (correct), "complete", "stats"
	Word   string `msgpack:"w"`
	Limit  int    `msgpack:"l,omitempty"`
}

// CorrectionResponse - correction response
type CorrectionResponse struct {
	ID         string `msgpack:"id"`
	Word       string `msgpack:"w"`
	Correction string `msgpack:"c,omitempty"`
	Found      bool   `msgpack:"f"`
	Edits      int    `msgpack:"e,omitempty"`
	Frequency  int    `msgpack:"q,omitempty"`
	TimeTaken  int64  `msgpack:"t"`
}

// CompletionSuggestion - minimal suggestion entry
type CompletionSuggestion struct {
	Word      string `msgpack:"w"`
	Frequency int    `msgpack:"q"`
}

// CompletionResponse - prefix completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Prefix      string                 `msgpack:"p"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// StatsResponse - dictionary stats response
type StatsResponse struct {
	ID    string         `msgpack:"id"`
	Stats map[string]int `msgpack:"stats"`
}

// CorrectionError holds basic error information for failed requests
type CorrectionError struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
