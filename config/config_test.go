package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yml"))
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Server.Port != 8001 {
		t.Errorf("Expected default port 8001, got %d", cfg.Server.Port)
	}
	if cfg.Generation.TimeoutSeconds != 30 {
		t.Errorf("Expected default timeout 30, got %d", cfg.Generation.TimeoutSeconds)
	}
}

func TestLoadConfigReadsYAMLAndEnv(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	path := filepath.Join(dir, "config.yml")
	yml := `
server:
  port: 9000
gemini:
  apiKey: file-key
  model: gemini-test
database:
  uri: mongodb://localhost:27017/debates
`
	if err := os.WriteFile(path, []byte(yml), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GEMINI_API_KEY", "env-key")
	t.Setenv("PORT", "9100")
	t.Setenv("CORS_ORIGINS", "http://a.test, http://b.test")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if cfg.Gemini.ApiKey != "env-key" {
		t.Errorf("Expected env key to override file, got %q", cfg.Gemini.ApiKey)
	}
	if cfg.Gemini.Model != "gemini-test" {
		t.Errorf("Expected model from file, got %q", cfg.Gemini.Model)
	}
	if cfg.Server.Port != 9100 {
		t.Errorf("Expected port 9100, got %d", cfg.Server.Port)
	}
	if len(cfg.Server.AllowedOrigins) != 2 || cfg.Server.AllowedOrigins[1] != "http://b.test" {
		t.Errorf("Unexpected origins: %v", cfg.Server.AllowedOrigins)
	}
	if cfg.Openai.Model != "gpt-4o" {
		t.Errorf("Expected default OpenAI model to survive, got %q", cfg.Openai.Model)
	}
}

func TestLoadConfigRejectsBadPort(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "eighty")

	if _, err := LoadConfig("does-not-exist.yml"); err == nil {
		t.Fatal("Expected error for non-numeric PORT")
	}
}

func TestProviderCredentials(t *testing.T) {
	cases := []struct {
		key  string
		want bool
	}{
		{"", false},
		{"   ", false},
		{"sk-placeholder-123", false},
		{"sk-live-abc", true},
	}
	for _, c := range cases {
		cfg := Default()
		cfg.Openai.GptApiKey = c.key
		if got := cfg.OpenAIConfigured(); got != c.want {
			t.Errorf("OpenAIConfigured(%q) = %v, want %v", c.key, got, c.want)
		}
	}

	cfg := Default()
	if cfg.GeminiConfigured() {
		t.Error("Expected Gemini to be unconfigured by default")
	}
	cfg.Gemini.ApiKey = "g-key"
	if !cfg.GeminiConfigured() {
		t.Error("Expected Gemini to be configured once a key is set")
	}
}
