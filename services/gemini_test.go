package services

import (
	"math"
	"testing"

	"github.com/google/generative-ai-go/genai"
)

func TestResponseText(t *testing.T) {
	resp := &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{
			{Content: &genai.Content{Parts: []genai.Part{genai.Text(`{"a":`), genai.Text(`1}`)}}},
			{Content: &genai.Content{Parts: []genai.Part{genai.Text("ignored")}}},
		},
	}
	got, err := responseText(resp)
	if err != nil {
		t.Fatalf("responseText returned error: %v", err)
	}
	if got != `{"a":1}` {
		t.Errorf("Expected joined first candidate, got %q", got)
	}
}

func TestResponseTextErrors(t *testing.T) {
	cases := map[string]*genai.GenerateContentResponse{
		"nil":        nil,
		"no cands":   {},
		"nil body":   {Candidates: []*genai.Candidate{{}}},
		"no parts":   {Candidates: []*genai.Candidate{{Content: &genai.Content{}}}},
		"blob parts": {Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}}}}}},
	}
	for name, resp := range cases {
		if _, err := responseText(resp); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestNewGeminiProviderRequiresKey(t *testing.T) {
	if _, err := NewGeminiProvider(t.Context(), "", "", 0); err == nil {
		t.Fatal("Expected error for empty api key")
	}
}

func TestClampTokens(t *testing.T) {
	cases := map[int]int32{
		1:                 1,
		2000:              2000,
		math.MaxInt32:     math.MaxInt32,
		math.MaxInt32 + 1: math.MaxInt32,
		1 << 40:           math.MaxInt32,
	}
	for in, want := range cases {
		if got := clampTokens(in); got != want {
			t.Errorf("clampTokens(%d) = %d, want %d", in, got, want)
		}
	}
}
