package utils

import (
	"os"
	"strconv"
	"strings"

	"github.com/sdejt/planaula-backend/internal/logger"
)

func GetEnv(key, fallback string, log *logger.Logger) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		if log != nil {
			log.Debug("Env var not set, using fallback", "key", key, "fallback", fallback)
		}
		return fallback
	}
	return value
}

func GetEnvAsInt(key string, fallback int, log *logger.Logger) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		if log != nil {
			log.Warn("Env var is not an integer, using fallback", "key", key, "value", value, "fallback", fallback)
		}
		return fallback
	}
	return parsed
}
