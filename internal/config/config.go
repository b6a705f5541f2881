package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port         int
	NatsURL      string
	NatsToken    string
	LogLevel     string
	OpenAIAPIKey string
	TaglineModel string
	APIToken     string
}

func Load() Config {
	return Config{
		Port:         envInt("LIBRA_PORT", 8760),
		NatsURL:      envStr("NATS_URL", ""),
		NatsToken:    envStr("NATS_TOKEN", ""),
		LogLevel:     envStr("LOG_LEVEL", "info"),
		OpenAIAPIKey: envStr("OPENAI_API_KEY", ""),
		TaglineModel: envStr("LIBRA_TAGLINE_MODEL", "gpt-4o-mini"),
		APIToken:     envStr("LIBRA_API_TOKEN", ""),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
