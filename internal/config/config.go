package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the process-level settings shared by the serve and play
// commands. LLM provider settings live in llm.Config.
type Config struct {
	// Addr is the listen address for the HTTP server.
	Addr string

	// DBPath is the SQLite file for the LLM audit log. Empty means the
	// default XDG location.
	DBPath string

	// AllowedOrigins lists browser origins allowed by CORS. "*" allows any.
	AllowedOrigins []string

	LogLevel  string
	LogFormat string
}

// Load reads configuration from the environment, after loading an optional
// .env file from the working directory.
func Load() *Config {
	// A missing .env is the normal case.
	_ = godotenv.Load()

	return &Config{
		Addr:           getEnv("VOCABQUIZ_ADDR", ":8080"),
		DBPath:         os.Getenv("VOCABQUIZ_DB"),
		AllowedOrigins: splitList(getEnv("VOCABQUIZ_ALLOWED_ORIGINS", "*")),
		LogLevel:       getEnv("VOCABQUIZ_LOG_LEVEL", "info"),
		LogFormat:      getEnv("VOCABQUIZ_LOG_FORMAT", "text"),
	}
}

// getEnv reads an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
