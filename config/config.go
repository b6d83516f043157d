package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// PlaceholderKeyPrefix marks an OpenAI key that was never filled in.
const PlaceholderKeyPrefix = "sk-placeholder"

type Config struct {
	Server struct {
		Port           int      `yaml:"port"`
		AllowedOrigins []string `yaml:"allowedOrigins"`
	} `yaml:"server"`

	Log struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`
	} `yaml:"log"`

	Openai struct {
		GptApiKey string `yaml:"gptApiKey"`
		Model     string `yaml:"model"`
		URL       string `yaml:"url"`
	} `yaml:"openai"`

	Gemini struct {
		ApiKey string `yaml:"apiKey"`
		Model  string `yaml:"model"`
	} `yaml:"gemini"`

	Database struct {
		URI  string `yaml:"uri"`
		Name string `yaml:"name"`
	} `yaml:"database"`

	Generation struct {
		TimeoutSeconds int `yaml:"timeoutSeconds"`
	} `yaml:"generation"`
}

// Default returns a Config populated with the values used when neither the
// file nor the environment say otherwise.
func Default() *Config {
	var cfg Config
	cfg.Server.Port = 8001
	cfg.Server.AllowedOrigins = []string{"*"}
	cfg.Log.Level = "info"
	cfg.Log.Format = "console"
	cfg.Openai.Model = "gpt-4o"
	cfg.Openai.URL = "https://api.openai.com/v1/chat/completions"
	cfg.Gemini.Model = "gemini-2.0-flash-001"
	cfg.Generation.TimeoutSeconds = 30
	return &cfg
}

// LoadConfig reads the configuration file on top of the defaults, then applies
// any .env file found next to the process and the environment overrides.
// A missing config file is not an error.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal yaml: %w", err)
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// .env is optional; real environment variables always win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}

	str("GEMINI_API_KEY", &c.Gemini.ApiKey)
	str("GEMINI_MODEL", &c.Gemini.Model)
	str("OPENAI_API_KEY", &c.Openai.GptApiKey)
	str("OPENAI_MODEL", &c.Openai.Model)
	str("MONGO_URL", &c.Database.URI)
	str("DB_NAME", &c.Database.Name)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)

	if v, ok := lookup("PORT"); ok && v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid PORT %q: %w", v, err)
		}
		c.Server.Port = port
	}
	if v, ok := lookup("CORS_ORIGINS"); ok && v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.Server.AllowedOrigins = origins
	}
	return nil
}

// GeminiConfigured reports whether a primary provider credential is present.
func (c *Config) GeminiConfigured() bool {
	return strings.TrimSpace(c.Gemini.ApiKey) != ""
}

// OpenAIConfigured reports whether the secondary credential is real, i.e.
// neither empty nor the placeholder value shipped in sample env files.
func (c *Config) OpenAIConfigured() bool {
	key := strings.TrimSpace(c.Openai.GptApiKey)
	return key != "" && !strings.HasPrefix(key, PlaceholderKeyPrefix)
}
