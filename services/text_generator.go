package services

import (
	"context"

	"debatecoach/internal/logger"
	"debatecoach/models"

	"github.com/rs/zerolog"
)

// TextGenerator forwards free-form prompts to the primary provider with no
// fallback. It exists to check provider connectivity on its own.
type TextGenerator struct {
	primary Provider
	log     zerolog.Logger
}

func NewTextGenerator(log zerolog.Logger, primary Provider) *TextGenerator {
	return &TextGenerator{primary: primary, log: log}
}

// Available reports whether a primary provider is configured
func (t *TextGenerator) Available() bool {
	return t.primary != nil
}

// Generate sends req verbatim. Zero max tokens and a nil temperature take the
// endpoint defaults.
func (t *TextGenerator) Generate(ctx context.Context, req models.TextRequest) (*models.TextResponse, error) {
	if t.primary == nil {
		return nil, ErrProviderUnavailable
	}

	maxTokens := req.MaxTokens
	if maxTokens <= 0 {
		maxTokens = models.DefaultTextMaxTokens
	}
	temperature := models.DefaultTextTemperature
	if req.Temperature != nil {
		temperature = *req.Temperature
	}

	text, err := t.primary.Generate(ctx, GenerationRequest{
		Prompt:      req.Prompt,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})
	if err != nil {
		logger.From(ctx, t.log).Error().
			Str("provider", t.primary.Name()).
			Str("error", logger.Truncate(err.Error(), 300)).
			Msg("text generation failed")
		return nil, &ProviderError{Provider: t.primary.Name(), Err: err}
	}
	return &models.TextResponse{Response: text, Model: t.primary.Model()}, nil
}
