package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

type Config struct {
	Port            string
	LogLevel        string
	AllowedOrigins  []string
	SessionTTL      time.Duration
	CleanupInterval time.Duration
	MaxBoardWidth   int
	MaxBoardHeight  int
	MaxPlayers      int
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")
	logLevel := GetEnv("LOG_LEVEL", "info")

	sessionTTLMin := GetEnvAsInt("SESSION_TTL_MINUTES", 30)
	cleanupIntervalMin := GetEnvAsInt("CLEANUP_INTERVAL_MINUTES", 5)

	// Build allowed origins list (CSV values; empty list allows any origin)
	var allowedOrigins []string
	if raw := GetEnv("ALLOWED_ORIGINS", ""); raw != "" {
		for _, origin := range strings.Split(raw, ",") {
			trimmed := strings.TrimSpace(origin)
			if trimmed != "" {
				allowedOrigins = append(allowedOrigins, trimmed)
			}
		}
	}

	AppConfig = &Config{
		Port:            port,
		LogLevel:        logLevel,
		AllowedOrigins:  allowedOrigins,
		SessionTTL:      time.Duration(sessionTTLMin) * time.Minute,
		CleanupInterval: time.Duration(cleanupIntervalMin) * time.Minute,
		MaxBoardWidth:   GetEnvAsInt("MAX_BOARD_WIDTH", 32),
		MaxBoardHeight:  GetEnvAsInt("MAX_BOARD_HEIGHT", 32),
		MaxPlayers:      GetEnvAsInt("MAX_PLAYERS", 8),
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Warn().Str("key", key).Str("value", valueStr).Int("default", defaultValue).Msg("invalid integer env value")
		return defaultValue
	}
	return value
}
