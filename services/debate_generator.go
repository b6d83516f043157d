package services

import (
	"context"
	"strings"

	"debatecoach/internal/logger"
	"debatecoach/models"

	"github.com/rs/zerolog"
)

// debateAttempt is one step in the generation chain. An error is a soft
// failure: the chain logs it and moves on.
type debateAttempt interface {
	Name() string
	Attempt(ctx context.Context, topic string) (*rawDebate, error)
}

type providerAttempt struct {
	provider Provider
}

func (p providerAttempt) Name() string { return p.provider.Name() }

func (p providerAttempt) Attempt(ctx context.Context, topic string) (*rawDebate, error) {
	text, err := p.provider.Generate(ctx, debateRequest(topic))
	if err != nil {
		return nil, &ProviderError{Provider: p.provider.Name(), Err: err}
	}
	raw, err := parseDebatePayload(text)
	if err != nil {
		return nil, &ProviderError{Provider: p.provider.Name(), Err: err}
	}
	return raw, nil
}

// localAttempt synthesizes arguments without any network call and never fails
type localAttempt struct{}

func (localAttempt) Name() string { return "local" }

func (localAttempt) Attempt(_ context.Context, topic string) (*rawDebate, error) {
	return localDebate(topic), nil
}

// DebateGenerator produces both sides of a debate, trying each provider in
// order and ending with locally synthesized arguments.
type DebateGenerator struct {
	attempts []debateAttempt
	log      zerolog.Logger
}

// NewDebateGenerator builds the chain from providers in priority order.
// Nil providers are skipped, so callers can pass unconfigured slots directly.
func NewDebateGenerator(log zerolog.Logger, providers ...Provider) *DebateGenerator {
	attempts := make([]debateAttempt, 0, len(providers)+1)
	for _, p := range providers {
		if p == nil {
			continue
		}
		attempts = append(attempts, providerAttempt{provider: p})
	}
	attempts = append(attempts, localAttempt{})
	return &DebateGenerator{attempts: attempts, log: log}
}

// Sources lists the attempt names in the order they are tried
func (g *DebateGenerator) Sources() []string {
	names := make([]string, len(g.attempts))
	for i, a := range g.attempts {
		names[i] = a.Name()
	}
	return names
}

// Generate returns debate arguments for topic. Provider failures are absorbed;
// only an empty topic or a result that fails shape validation is returned as
// an error.
func (g *DebateGenerator) Generate(ctx context.Context, topic string) (*models.DebateResult, error) {
	if strings.TrimSpace(topic) == "" {
		return nil, ErrEmptyTopic
	}
	log := logger.From(ctx, g.log)

	for i, attempt := range g.attempts {
		raw, err := attempt.Attempt(ctx, topic)
		if err != nil {
			ev := log.Warn().
				Str("provider", attempt.Name()).
				Str("topic", logger.Truncate(topic, 80)).
				Str("error", logger.Truncate(err.Error(), 300))
			if i+1 < len(g.attempts) {
				ev = ev.Str("next", g.attempts[i+1].Name())
			}
			ev.Msg("debate generation attempt failed, falling back")
			continue
		}

		result, err := normalizeDebate(topic, raw)
		if err != nil {
			log.Error().
				Str("provider", attempt.Name()).
				Str("error", logger.Truncate(err.Error(), 300)).
				Msg("debate result failed shape validation")
			return nil, err
		}
		log.Debug().
			Str("provider", attempt.Name()).
			Int("for", len(result.ArgumentsFor)).
			Int("against", len(result.ArgumentsAgainst)).
			Msg("debate arguments generated")
		return result, nil
	}

	// The local attempt always succeeds, so this only triggers if the chain
	// was built without it.
	return nil, shapeErrorf("no generation attempt produced a result")
}
