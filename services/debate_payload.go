package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"debatecoach/models"
)

const debateSystemInstruction = "You are a knowledgeable debate coach who provides balanced, well-researched arguments for any topic. Always respond with valid JSON only."

const (
	debateTemperature     = float32(0.7)
	debateMaxOutputTokens = 2000
)

// debatePrompt builds the instruction sent to every provider for topic
func debatePrompt(topic string) string {
	return fmt.Sprintf(`Generate balanced debate arguments for the topic: "%s"

Please provide:
1. 3-4 strong arguments FOR the topic with supporting facts
2. 3-4 strong arguments AGAINST the topic with supporting facts

Format the response as JSON with this structure:
{
  "arguments_for": [
    {
      "point": "Main argument point",
      "supporting_facts": ["Fact 1", "Fact 2", "Fact 3"]
    }
  ],
  "arguments_against": [
    {
      "point": "Main argument point",
      "supporting_facts": ["Fact 1", "Fact 2", "Fact 3"]
    }
  ]
}

Ensure arguments are well-researched, factual, and present both sides fairly.`, topic)
}

// debateRequest is built from the topic alone on every call, so each provider
// in the chain receives the same prompt regardless of what ran before it.
func debateRequest(topic string) GenerationRequest {
	return GenerationRequest{
		System:      debateSystemInstruction,
		Prompt:      debatePrompt(topic),
		Temperature: debateTemperature,
		MaxTokens:   debateMaxOutputTokens,
		JSON:        true,
	}
}

// rawArgument keeps pointers and nil slices so a missing field can be told
// apart from an empty one during normalization.
type rawArgument struct {
	Point           *string  `json:"point"`
	SupportingFacts []string `json:"supporting_facts"`
}

type rawDebate struct {
	ArgumentsFor     []rawArgument `json:"arguments_for"`
	ArgumentsAgainst []rawArgument `json:"arguments_against"`
}

// cleanModelOutput strips a markdown code fence wrapped around a payload
func cleanModelOutput(text string) string {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```JSON")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	return strings.TrimSpace(cleaned)
}

// parseDebatePayload decodes provider text. When the first decode fails and
// the text carries fence markers, it strips them and decodes exactly once more.
// A literal null counts as malformed output, not as an empty result.
func parseDebatePayload(text string) (*rawDebate, error) {
	var raw *rawDebate
	err := json.Unmarshal([]byte(text), &raw)
	if err == nil {
		return nonNullPayload(raw)
	}

	cleaned := cleanModelOutput(text)
	if cleaned == strings.TrimSpace(text) {
		return nil, fmt.Errorf("malformed model output: %w", err)
	}

	var retry *rawDebate
	if err := json.Unmarshal([]byte(cleaned), &retry); err != nil {
		return nil, fmt.Errorf("malformed model output after stripping code fence: %w", err)
	}
	return nonNullPayload(retry)
}

func nonNullPayload(raw *rawDebate) (*rawDebate, error) {
	if raw == nil {
		return nil, errors.New("malformed model output: null payload")
	}
	return raw, nil
}

// normalizeDebate maps raw into a DebateResult, rejecting anything that would
// break the contract instead of filling in blanks.
func normalizeDebate(topic string, raw *rawDebate) (*models.DebateResult, error) {
	if raw == nil {
		return nil, shapeErrorf("no payload")
	}
	forArgs, err := normalizeSide("arguments_for", raw.ArgumentsFor)
	if err != nil {
		return nil, err
	}
	againstArgs, err := normalizeSide("arguments_against", raw.ArgumentsAgainst)
	if err != nil {
		return nil, err
	}
	return &models.DebateResult{
		Topic:            topic,
		ArgumentsFor:     forArgs,
		ArgumentsAgainst: againstArgs,
	}, nil
}

func normalizeSide(side string, entries []rawArgument) ([]models.Argument, error) {
	if len(entries) == 0 {
		return nil, shapeErrorf("%s is missing or empty", side)
	}
	out := make([]models.Argument, 0, len(entries))
	for i, e := range entries {
		if e.Point == nil || strings.TrimSpace(*e.Point) == "" {
			return nil, shapeErrorf("%s[%d] has no point", side, i)
		}
		if e.SupportingFacts == nil {
			return nil, shapeErrorf("%s[%d] has no supporting_facts", side, i)
		}
		if len(e.SupportingFacts) == 0 {
			return nil, shapeErrorf("%s[%d] has empty supporting_facts", side, i)
		}
		facts := make([]string, len(e.SupportingFacts))
		copy(facts, e.SupportingFacts)
		out = append(out, models.Argument{Point: *e.Point, SupportingFacts: facts})
	}
	return out, nil
}
