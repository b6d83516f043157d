package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultOpenAIModel = "gpt-4o"
	defaultOpenAIURL   = "https://api.openai.com/v1/chat/completions"
)

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []chatMessage   `json:"messages"`
	Temperature    float32         `json:"temperature"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type responseFormat struct {
	Type string `json:"type"`
}

// ChatGPT talks to the OpenAI chat completions endpoint
type ChatGPT struct {
	APIKey string
	URL    string
	model  string
	client *http.Client
}

// NewChatGPT builds a client for apiKey. Empty model or url select the
// public defaults.
func NewChatGPT(apiKey, model, url string, timeout time.Duration) *ChatGPT {
	if model == "" {
		model = defaultOpenAIModel
	}
	if url == "" {
		url = defaultOpenAIURL
	}
	return &ChatGPT{
		APIKey: apiKey,
		URL:    url,
		model:  model,
		client: &http.Client{Timeout: timeout},
	}
}

func (c *ChatGPT) Name() string  { return "openai" }
func (c *ChatGPT) Model() string { return c.model }

func (c *ChatGPT) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	var messages []chatMessage
	if req.System != "" {
		messages = append(messages, chatMessage{Role: "system", Content: req.System})
	}
	messages = append(messages, chatMessage{Role: "user", Content: req.Prompt})

	requestData := chatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: req.Temperature,
		MaxTokens:   req.MaxTokens,
	}
	if req.JSON {
		requestData.ResponseFormat = &responseFormat{Type: "json_object"}
	}

	payload, err := json.Marshal(requestData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request data: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var responseData struct {
		Choices []struct {
			Message chatMessage `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &responseData); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}
	if len(responseData.Choices) == 0 {
		return "", errors.New("unexpected response format: no choices")
	}
	return responseData.Choices[0].Message.Content, nil
}
