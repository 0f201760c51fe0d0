package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment
// variables. Everything here is read-only after startup; a missing LLM
// credential is not a boot error, it just makes every invoke fail with a
// not-configured error.
type Config struct {
	AppEnv                 string
	Port                   string
	LLMProvider            string
	GeminiAPIKey           string
	GeminiModel            string
	GeminiBaseURL          string
	OpenAIAPIKey           string
	OpenAIModel            string
	OpenAIBaseURL          string
	OpenAIOrg              string
	DefaultRecommendations int
	AgentName              string
	AgentVersion           string
	AgentDescription       string
	HTTPReadTimeout        time.Duration
	HTTPWriteTimeout       time.Duration
	HTTPIdleTimeout        time.Duration
	RateLimitPerMin        int
	CORSAllowedOrigins     []string
}

// LoadConfig loads configuration from environment variables and applies
// defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:                 getEnv("APP_ENV", "development"),
		Port:                   getEnv("PORT", "8080"),
		LLMProvider:            strings.ToLower(getEnv("LLM_PROVIDER", "gemini")),
		GeminiAPIKey:           os.Getenv("GEMINI_API_KEY"),
		GeminiModel:            getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiBaseURL:          getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		OpenAIAPIKey:           os.Getenv("OPENAI_API_KEY"),
		OpenAIModel:            getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		OpenAIBaseURL:          getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIOrg:              os.Getenv("OPENAI_ORG"),
		DefaultRecommendations: getEnvInt("DEFAULT_RECOMMENDATIONS", 5),
		AgentName:              getEnv("AGENT_NAME", "showscout"),
		AgentVersion:           getEnv("AGENT_VERSION", "1.0.0"),
		AgentDescription:       getEnv("AGENT_DESCRIPTION", "LLM-backed TV show recommendations from genre, mood and platform preferences"),
		HTTPReadTimeout:        time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout:       time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 60)),
		HTTPIdleTimeout:        time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:        getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
		CORSAllowedOrigins:     splitEnvList("CORS_ALLOWED_ORIGINS"),
	}

	if cfg.LLMProvider != "gemini" && cfg.LLMProvider != "openai" {
		return nil, fmt.Errorf("LLM_PROVIDER must be gemini or openai, got %q", cfg.LLMProvider)
	}

	if cfg.DefaultRecommendations <= 0 {
		return nil, fmt.Errorf("DEFAULT_RECOMMENDATIONS must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitEnvList(key string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return nil
	}
	var items []string
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			items = append(items, part)
		}
	}
	return items
}
