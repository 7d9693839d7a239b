package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const (
	HistoryBackendMemory = "memory"
	HistoryBackendRedis  = "redis"
)

type GenAIConfig struct {
	BaseURL        string
	APIKey         string
	Model          string
	TimeoutSeconds int
}

type Config struct {
	LogMode               string
	ServerPort            string
	MaxActiveRuns         int
	RetainedRuns          int
	MaxItemsPerRun        int
	ItemDelay             time.Duration
	HistoryBackend        string
	HistoryLimit          int
	RedisAddr             string
	ReferenceMaxDimension int
	GenAI                 GenAIConfig
}

func checkEnv(envVars []string) error {
	var missingVars []string

	for _, envVar := range envVars {
		if value, exists := os.LookupEnv(envVar); !exists || value == "" {
			missingVars = append(missingVars, envVar)
		}
	}

	if len(missingVars) > 0 {
		return fmt.Errorf("error: this env vars are missing: %v", missingVars)
	}

	return nil
}

func validateEnv() error {
	err := checkEnv([]string{
		"LOG_MODE",
		"SERVER_PORT",
		"MAX_ACTIVE_RUNS",
	})
	if err != nil {
		return err
	}

	return nil
}

func stringToInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("LoadConfig: empty configuration file path")
	}

	err := godotenv.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load cofiguration file: %w", err)
	}

	err = validateEnv()
	if err != nil {
		return nil, fmt.Errorf("LoadConfig: %w", err)
	}

	maxActiveRuns := stringToInt(os.Getenv("MAX_ACTIVE_RUNS"))
	if maxActiveRuns <= 0 {
		return nil, fmt.Errorf("LoadConfig: MAX_ACTIVE_RUNS must be a positive number")
	}

	backend := getEnv("HISTORY_BACKEND", HistoryBackendMemory)
	if backend != HistoryBackendMemory && backend != HistoryBackendRedis {
		return nil, fmt.Errorf("LoadConfig: unknown HISTORY_BACKEND %q", backend)
	}

	cfg := &Config{
		LogMode:               os.Getenv("LOG_MODE"),
		ServerPort:            os.Getenv("SERVER_PORT"),
		MaxActiveRuns:         maxActiveRuns,
		RetainedRuns:          getEnvAsInt("RETAINED_RUNS", 100),
		MaxItemsPerRun:        getEnvAsInt("MAX_ITEMS_PER_RUN", 20),
		ItemDelay:             time.Duration(getEnvAsInt("ITEM_DELAY_MS", 1000)) * time.Millisecond,
		HistoryBackend:        backend,
		HistoryLimit:          getEnvAsInt("HISTORY_LIMIT", 200),
		RedisAddr:             getEnv("REDIS_ADDR", "localhost:6379"),
		ReferenceMaxDimension: getEnvAsInt("REFERENCE_MAX_DIMENSION", 1536),
		GenAI: GenAIConfig{
			BaseURL:        getEnv("GENAI_BASE_URL", ""),
			APIKey:         os.Getenv("GENAI_API_KEY"),
			Model:          getEnv("GENAI_MODEL", ""),
			TimeoutSeconds: getEnvAsInt("GENAI_TIMEOUT_SECONDS", 120),
		},
	}

	return cfg, nil
}
