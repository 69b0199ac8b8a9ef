package llm

import (
	"context"
)

// Message represents a chat turn in a provider-agnostic format
type Message struct {
	Role    string // "user" or "assistant"
	Content string
}

// Attachment carries decoded binary content inlined into a generation call.
// Files are read from storage at call time, never persisted as base64.
type Attachment struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Citation is a web source the model grounded its answer on
type Citation struct {
	Title   string
	URL     string
	Snippet string
}

type GenerateRequest struct {
	SystemPrompt      string
	History           []Message
	Prompt            string
	Attachments       []Attachment
	WebSearch         bool
	ExtendedReasoning bool
}

type GenerateResult struct {
	Text          string
	Citations     []Citation
	SearchQueries []string
}

// Provider defines the contract for any generative AI backend
type Provider interface {
	// Generate sends a full conversation turn to the model
	Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error)

	// GenerateText sends a single prompt to the model (convenience method)
	GenerateText(ctx context.Context, prompt string) (string, error)
}
