package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// UI modes.
const (
	UITerminal = "tui"
	UIPlain    = "plain"
)

type Config struct {
	// Widget
	ChatURL     string
	ChatTimeout time.Duration
	UI          string

	// Logging
	LogFile string
	Verbose bool

	// Stub server
	Port      string
	StubModel string
}

func Load() *Config {
	// Load .env file if it exists
	godotenv.Load()

	cfg := &Config{
		ChatURL:     getEnvOrDefault("CHAT_API_URL", "http://localhost:5000/api/chat"),
		ChatTimeout: time.Duration(getEnvAsIntOrDefault("CHAT_TIMEOUT_SECONDS", 0)) * time.Second,
		UI:          getEnvOrDefault("CHAT_UI", UITerminal),
		LogFile:     getEnvOrDefault("CHAT_LOG_FILE", "chatwidget.log"),
		Verbose:     getEnvAsBoolOrDefault("CHAT_VERBOSE", false),
		Port:        getEnvOrDefault("PORT", "5000"),
		StubModel:   getEnvOrDefault("CHAT_STUB_MODEL", "echo"),
	}

	return cfg
}

func getEnvOrDefault(key, defaultVal string) string {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func getEnvAsIntOrDefault(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}

func getEnvAsBoolOrDefault(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return defaultVal
	}
	return b
}
