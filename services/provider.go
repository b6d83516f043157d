package services

import "context"

// GenerationRequest is what every provider accepts
type GenerationRequest struct {
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
	// JSON asks the provider for a JSON-only response where it supports that
	JSON bool
}

// Provider is an external text generation service
type Provider interface {
	Name() string
	Model() string
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}
