// Package llm is a small provider abstraction over hosted language models.
// Callers describe the JSON they expect with a Schema and get validated
// JSON back, whichever vendor serves the request.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates a single structured completion.
type Provider interface {
	// Generate sends req and returns the model output. When req.Schema is
	// set the output has already been checked against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID is the model the provider sends requests to.
	ModelID() string
}

// Request is one prompt.
type Request struct {
	System   string
	Messages []Message

	// Schema asks the provider for native structured output. A nil Schema
	// returns the raw text as Content.
	Schema *Schema

	MaxTokens int

	// Temperature in 0..1. Zero leaves the vendor default in place.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies who sent a Message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema definition. Name doubles as the cache key
// for the compiled schema, so it must be unique per definition.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

// Response is the model output and its accounting.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string

	// StopReason is normalised to "end" or "max_tokens".
	StopReason string
}

// Usage counts tokens for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
