package server

import (
	"encoding/json"

	"github.com/you-not-fish/nova/internal/compiler"
)

// WSMessage represents a message from the editor
type WSMessage struct {
	Type    string          `json:"type"`    // "check", "ping"
	Payload json.RawMessage `json:"payload"` // Message-specific payload
}

// CheckPayload asks for one source text to be run through the pipeline.
type CheckPayload struct {
	ID       string `json:"id,omitempty"` // echoed back; generated when empty
	Filename string `json:"filename,omitempty"`
	Source   string `json:"source"`
}

// WSResponse represents a message to the editor
type WSResponse struct {
	Type    string      `json:"type"`    // "result", "error", "pong"
	Payload interface{} `json:"payload"` // Response-specific payload
}

// ResultPayload is the outcome of a check. Exactly one of Outline and
// Diagnostic is set.
type ResultPayload struct {
	ID         string               `json:"id"`
	OK         bool                 `json:"ok"`
	Outline    *compiler.Outline    `json:"outline,omitempty"`
	Diagnostic *compiler.Diagnostic `json:"diagnostic,omitempty"`
	ElapsedMS  int64                `json:"elapsed_ms"`
}

// WSErrorPayload represents an error payload
type WSErrorPayload struct {
	ID      string `json:"id,omitempty"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error codes
const (
	CodeInvalidPayload = "invalid_payload"
	CodeUnknownType    = "unknown_type"
	CodeTooLarge       = "too_large"
	CodeTimeout        = "timeout"
	CodeInternal       = "internal"
)
