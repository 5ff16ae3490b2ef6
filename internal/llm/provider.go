package llm

import (
	"context"
	"encoding/json"
)

// Provider abstracts a text-generation backend. Every content operation in
// the bot is a single-turn request: one prompt in, one text or JSON
// document out.
type Provider interface {
	// Generate sends the request and returns the model output. When the
	// request carries a Schema the returned Content is JSON validated
	// against it; otherwise Content is the raw text.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the configured model identifier.
	ModelID() string
}

// Request describes a single generation call.
type Request struct {
	// System sets the model's role. Optional.
	System string

	// Prompt is the user-turn content.
	Prompt string

	// Schema, when set, requests structured JSON output conforming to it.
	Schema *Schema

	// MaxTokens bounds the response length.
	MaxTokens int

	// Temperature controls randomness, 0.0-1.0.
	Temperature float64
}

// Schema is a named JSON Schema for structured output.
type Schema struct {
	// Name identifies the schema to the provider (kebab-case).
	Name string

	// Description tells the model what the document represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model output.
type Response struct {
	// Content is validated JSON when the request had a Schema, raw text
	// otherwise.
	Content json.RawMessage

	// Usage reports token consumption.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage tracks token consumption for one request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// Text returns the response content as a plain string, stripping the JSON
// string quoting if present.
func (r *Response) Text() string {
	var s string
	if err := json.Unmarshal(r.Content, &s); err == nil {
		return s
	}
	return string(r.Content)
}
