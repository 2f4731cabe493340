package config

import (
	"os"
	"strconv"
	"strings"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	EventsPort   string
	EventsURL    string
	Environment  string
	ReadTimeout  int
	WriteTimeout int
	CellSize     int
	DocsPath     string
	CORSOrigins  []string
}

// Load загружает конфигурацию из переменных окружения
func Load() *Config {
	cfg := &Config{
		Port:         getEnv("PORT", "3000"),
		EventsPort:   getEnv("EVENTS_PORT", "3001"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),
		CellSize:     getEnvAsInt("CELL_SIZE", 50),
		DocsPath:     getEnv("DOCS_PATH", "docs/circuit-board.openapi.yaml"),
		CORSOrigins:  getEnvAsList("CORS_ORIGINS"),
	}
	// Адрес SSE для страницы; пустая строка отключает подписку.
	cfg.EventsURL = getEnv("EVENTS_URL", "http://localhost:"+cfg.EventsPort+"/events")
	if cfg.CellSize <= 0 {
		cfg.CellSize = 50
	}
	return cfg
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}

func getEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
