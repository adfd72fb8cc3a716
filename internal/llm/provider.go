package llm

import (
	"context"
	"encoding/json"
)

// Provider generates model output for the two AI features of the app:
// interview question sets (schema-bound JSON) and mentor advice (plain
// text). Implementations normalize provider-specific failures into the
// typed errors in this package.
type Provider interface {
	// Generate sends one request and returns the model output. When the
	// request carries a Schema the returned Content is JSON that has
	// already been checked against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model this provider is configured to call.
	ModelID() string
}

// Request is one generation call.
type Request struct {
	// System sets the model's role. The interview generator and the
	// career advisor each carry their own.
	System string

	// Messages is the conversation. Both features here are single-turn,
	// so this is normally one user message.
	Messages []Message

	// Schema, when set, makes the provider use its structured output
	// mechanism and validates the result before returning it. Nil means
	// free text, returned as a JSON-encoded string.
	Schema *Schema

	// MaxTokens caps the output. Zero means the per-purpose budget
	// (see budgetFor) is applied from the context's Purpose.
	MaxTokens int

	// Temperature in [0,1]. Zero means provider default (deterministic
	// where the provider supports it).
	Temperature float64
}

// withBudget fills MaxTokens from the context purpose when unset.
func withBudget(ctx context.Context, req Request) Request {
	if req.MaxTokens <= 0 {
		req.MaxTokens = budgetFor(PurposeFrom(ctx))
	}
	return req
}

// Message is a single conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role is the message sender.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names a JSON Schema the response must conform to. The question
// set schema in the interview package is the main instance.
type Schema struct {
	// Name identifies the schema to the provider (tool name for
	// Anthropic, schema name for OpenAI). Kebab-case.
	Name string

	// Description tells the model what the structure represents.
	Description string

	// Definition is the JSON Schema as a map.
	Definition map[string]any
}

// Response is the model output.
type Response struct {
	// Content is validated JSON when the request had a Schema, otherwise
	// the raw text wrapped as a JSON string.
	Content json.RawMessage

	// Usage is the token consumption reported by the provider.
	Usage Usage

	// Model is the model that actually served the request.
	Model string

	// StopReason is normalized to "end", "max_tokens" or "error".
	StopReason string
}

// Usage is per-request token accounting, fed to the event log.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
