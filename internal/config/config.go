package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	LLMBaseURL         string
	LLMModelName       string
	LLMAPIKey          string
	LLMTimeout         time.Duration
	EmbeddingBaseURL   string
	EmbeddingModelName string
	DBPath             string
	QdrantURL          string
	QdrantCollection   string
	QdrantVectorSize   int
	OCRBaseURL         string // empty disables image ingestion
	APIPort            string
	LogLevel           slog.Level
	LogFormat          string

	ChunkWindow       int
	ChunkOverlap      int
	HistoryLimit      int
	DefaultPageNumber int // page number for chunks without an intrinsic page

	WeakMinTokens     int
	WeakMinLength     int
	LexicalLimit      int
	SemanticLimit     int
	ScoreThreshold    float64
	DistanceThreshold float64
}

// Load reads configuration from environment variables and returns a Config struct.
// It applies defaults for optional fields and validates required fields.
// If a .env file exists in the current directory or project root, it will be loaded automatically.
// Environment variables already set take precedence over .env file values.
func Load() (*Config, error) {
	_ = godotenv.Load() // Try current directory

	// Walk up toward the project root looking for a .env file
	if wd, err := os.Getwd(); err == nil {
		dir := wd
		for i := 0; i < 5; i++ {
			envPath := filepath.Join(dir, ".env")
			if _, err := os.Stat(envPath); err == nil {
				_ = godotenv.Load(envPath)
				break
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	cfg := &Config{
		LLMBaseURL:         getEnv("LLM_BASE_URL", "https://api.openai.com"),
		LLMModelName:       getEnv("LLM_MODEL", "gpt-4o-mini"),
		LLMAPIKey:          getEnv("LLM_API_KEY", "dummy-key"),
		EmbeddingBaseURL:   getEnv("EMBEDDING_BASE_URL", "https://api.openai.com"),
		EmbeddingModelName: getEnv("EMBEDDING_MODEL_NAME", "text-embedding-3-small"),
		DBPath:             getEnv("DB_PATH", "./data/contexta.db"),
		QdrantURL:          getEnv("QDRANT_URL", "http://localhost:6333"),
		QdrantCollection:   getEnv("QDRANT_COLLECTION", "context_chunks"),
		OCRBaseURL:         getEnv("OCR_BASE_URL", ""),
		APIPort:            getEnv("API_PORT", "9000"),
		LogFormat:          getEnv("LOG_FORMAT", "text"),
	}

	var err error
	if cfg.LLMTimeout, err = getDurationEnv("LLM_TIMEOUT", 60*time.Second); err != nil {
		return nil, err
	}

	cfg.LogLevel, err = parseLogLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, err
	}

	// Vector size must match the embeddings model output. If it changes,
	// the Qdrant collection must be recreated.
	vectorSizeStr := getEnv("QDRANT_VECTOR_SIZE", "")
	if vectorSizeStr == "" {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE is required")
	}
	vectorSize, err := strconv.Atoi(vectorSizeStr)
	if err != nil {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be a valid integer: %w", err)
	}
	if vectorSize <= 0 {
		return nil, fmt.Errorf("QDRANT_VECTOR_SIZE must be greater than 0")
	}
	cfg.QdrantVectorSize = vectorSize

	if cfg.ChunkWindow, err = getIntEnv("CHUNK_WINDOW", 1200); err != nil {
		return nil, err
	}
	if cfg.ChunkOverlap, err = getIntEnv("CHUNK_OVERLAP", 200); err != nil {
		return nil, err
	}
	if cfg.ChunkOverlap >= cfg.ChunkWindow {
		return nil, fmt.Errorf("CHUNK_OVERLAP must be smaller than CHUNK_WINDOW")
	}
	if cfg.HistoryLimit, err = getIntEnv("HISTORY_LIMIT", 50); err != nil {
		return nil, err
	}
	if cfg.DefaultPageNumber, err = getIntEnv("DEFAULT_PAGE_NUMBER", 0); err != nil {
		return nil, err
	}

	if cfg.WeakMinTokens, err = getIntEnv("WEAK_QUERY_MIN_TOKENS", 4); err != nil {
		return nil, err
	}
	if cfg.WeakMinLength, err = getIntEnv("WEAK_QUERY_MIN_LENGTH", 30); err != nil {
		return nil, err
	}
	if cfg.LexicalLimit, err = getIntEnv("LEXICAL_LIMIT", 8); err != nil {
		return nil, err
	}
	if cfg.SemanticLimit, err = getIntEnv("SEMANTIC_LIMIT", 5); err != nil {
		return nil, err
	}
	if cfg.ScoreThreshold, err = getFloatEnv("SCORE_THRESHOLD", 0.4); err != nil {
		return nil, err
	}
	if cfg.DistanceThreshold, err = getFloatEnv("DISTANCE_THRESHOLD", 0.45); err != nil {
		return nil, err
	}

	// Create the data directory if it doesn't exist
	dataDir := filepath.Dir(cfg.DBPath)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	return cfg, nil
}

// getEnv gets an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid integer: %w", key, err)
	}
	return value, nil
}

func getFloatEnv(key string, defaultValue float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid number: %w", key, err)
	}
	return value, nil
}

func getDurationEnv(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be a valid duration: %w", key, err)
	}
	return value, nil
}

func parseLogLevel(raw string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return 0, fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %w", err)
	}
	return level, nil
}
