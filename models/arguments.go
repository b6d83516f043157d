package models

// DebateRequest is the body of POST /api/generate-debate
type DebateRequest struct {
	Topic string `json:"topic" binding:"required"`
}

// Argument is one point on a side of a debate with the facts backing it
type Argument struct {
	Point           string   `json:"point"`
	SupportingFacts []string `json:"supporting_facts"`
}

// DebateResult holds both sides of a generated debate. Both slices are
// non-empty and every Argument has at least one supporting fact.
type DebateResult struct {
	Topic            string     `json:"topic"`
	ArgumentsFor     []Argument `json:"arguments_for"`
	ArgumentsAgainst []Argument `json:"arguments_against"`
}

// TextRequest is the body of POST /api/generate-text. Zero values are
// replaced by the defaults before the request reaches a provider.
type TextRequest struct {
	Prompt      string   `json:"prompt" binding:"required"`
	MaxTokens   int      `json:"max_tokens" binding:"omitempty,min=1,max=65536"`
	Temperature *float32 `json:"temperature" binding:"omitempty,min=0,max=2"`
}

const (
	DefaultTextMaxTokens   = 1000
	DefaultTextTemperature = float32(0.7)
)

// TextResponse carries raw provider output for the passthrough endpoint
type TextResponse struct {
	Response string `json:"response"`
	Model    string `json:"model"`
}
