package config

import (
	"os"
	"time"
)

type MarketplaceConfig struct {
	Port         string
	LogDir       string
	NoticeTTL    time.Duration
	RabbitMQCfg  RabbitMQConfig
	GeminiAPICfg GeminiAPIConfig
}

type RabbitMQConfig struct {
	Enabled  bool
	Username string
	Password string
	Host     string
	Port     string
}

type GeminiAPIConfig struct {
	APIKey    string
	FlashName string
	Timeout   time.Duration
}

func New() *MarketplaceConfig {
	return &MarketplaceConfig{
		Port:      getEnvOrDefault("PORT", "8090"),
		LogDir:    getEnvOrDefault("LOG_DIR", "/kisanbazaar/log/marketplace_service"),
		NoticeTTL: getDurationOrDefault("NOTICE_TTL", 3*time.Second),
		RabbitMQCfg: RabbitMQConfig{
			Enabled:  getEnvOrDefault("RABBITMQ_ENABLED", "false") == "true",
			Username: getEnvOrDefault("RABBITMQ_USER", "admin"),
			Password: getEnvOrDefault("RABBITMQ_PWD", "admin"),
			Host:     getEnvOrDefault("RABBITMQ_HOST", "localhost"),
			Port:     getEnvOrDefault("RABBITMQ_PORT", "5672"),
		},
		GeminiAPICfg: GeminiAPIConfig{
			APIKey:    getEnvOrDefault("GEMINI_KEY", ""),
			FlashName: getEnvOrDefault("GEMINI_FLASH_MODEL", "gemini-2.5-flash"),
			Timeout:   getDurationOrDefault("GEMINI_TIMEOUT", 60*time.Second),
		},
	}
}

// AdviceConfigured reports whether the advice credential is present.
func (c *MarketplaceConfig) AdviceConfigured() bool {
	return c.GeminiAPICfg.APIKey != ""
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return defaultValue
	}
	return d
}
