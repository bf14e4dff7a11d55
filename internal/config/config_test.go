package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// setEnv sets an environment variable, ignoring errors (for test setup)
func setEnv(key, value string) {
	_ = os.Setenv(key, value)
}

// unsetEnv unsets an environment variable, ignoring errors (for test cleanup)
func unsetEnv(key string) {
	_ = os.Unsetenv(key)
}

func TestLoad(t *testing.T) {
	// Save original env vars
	originalEnv := make(map[string]string)
	envVars := []string{
		"QDRANT_VECTOR_SIZE", "LLM_BASE_URL", "LLM_API_KEY", "LLM_MODEL",
		"LLM_TIMEOUT", "EMBEDDING_BASE_URL", "EMBEDDING_MODEL_NAME",
		"DB_PATH", "QDRANT_URL", "QDRANT_COLLECTION", "OCR_BASE_URL",
		"API_PORT", "LOG_LEVEL", "LOG_FORMAT",
		"CHUNK_WINDOW", "CHUNK_OVERLAP", "HISTORY_LIMIT",
		"WEAK_QUERY_MIN_TOKENS", "WEAK_QUERY_MIN_LENGTH",
		"LEXICAL_LIMIT", "SEMANTIC_LIMIT", "SCORE_THRESHOLD", "DISTANCE_THRESHOLD",
	}
	for _, key := range envVars {
		originalEnv[key] = os.Getenv(key)
		unsetEnv(key)
	}
	defer func() {
		for key, value := range originalEnv {
			if value != "" {
				setEnv(key, value)
			} else {
				unsetEnv(key)
			}
		}
	}()

	tests := []struct {
		name        string
		setupEnv    func(*testing.T)
		wantErr     bool
		checkConfig func(*Config) bool
	}{
		{
			name: "defaults with required vector size",
			setupEnv: func(t *testing.T) {
				setEnv("QDRANT_VECTOR_SIZE", "1536")
				setEnv("DB_PATH", filepath.Join(t.TempDir(), "contexta.db"))
			},
			wantErr: false,
			checkConfig: func(cfg *Config) bool {
				return cfg.QdrantVectorSize == 1536 &&
					cfg.ChunkWindow == 1200 &&
					cfg.ChunkOverlap == 200 &&
					cfg.HistoryLimit == 50 &&
					cfg.DefaultPageNumber == 0 &&
					cfg.WeakMinTokens == 4 &&
					cfg.WeakMinLength == 30 &&
					cfg.LexicalLimit == 8 &&
					cfg.SemanticLimit == 5 &&
					cfg.ScoreThreshold == 0.4 &&
					cfg.DistanceThreshold == 0.45 &&
					cfg.LLMTimeout == 60*time.Second &&
					cfg.LogLevel == slog.LevelInfo
			},
		},
		{
			name:     "missing QDRANT_VECTOR_SIZE",
			setupEnv: func(t *testing.T) {},
			wantErr:  true,
		},
		{
			name: "invalid QDRANT_VECTOR_SIZE",
			setupEnv: func(t *testing.T) {
				setEnv("QDRANT_VECTOR_SIZE", "not-a-number")
			},
			wantErr: true,
		},
		{
			name: "zero QDRANT_VECTOR_SIZE",
			setupEnv: func(t *testing.T) {
				setEnv("QDRANT_VECTOR_SIZE", "0")
			},
			wantErr: true,
		},
		{
			name: "overlap not smaller than window",
			setupEnv: func(t *testing.T) {
				setEnv("QDRANT_VECTOR_SIZE", "1536")
				setEnv("CHUNK_WINDOW", "100")
				setEnv("CHUNK_OVERLAP", "100")
			},
			wantErr: true,
		},
		{
			name: "invalid LOG_LEVEL",
			setupEnv: func(t *testing.T) {
				setEnv("QDRANT_VECTOR_SIZE", "1536")
				setEnv("LOG_LEVEL", "verbose")
			},
			wantErr: true,
		},
		{
			name: "invalid LLM_TIMEOUT",
			setupEnv: func(t *testing.T) {
				setEnv("QDRANT_VECTOR_SIZE", "1536")
				setEnv("LLM_TIMEOUT", "sixty")
			},
			wantErr: true,
		},
		{
			name: "overridden retrieval knobs",
			setupEnv: func(t *testing.T) {
				setEnv("QDRANT_VECTOR_SIZE", "1536")
				setEnv("DB_PATH", filepath.Join(t.TempDir(), "contexta.db"))
				setEnv("SCORE_THRESHOLD", "0.5")
				setEnv("DISTANCE_THRESHOLD", "0.3")
				setEnv("LEXICAL_LIMIT", "12")
				setEnv("LLM_TIMEOUT", "30s")
			},
			wantErr: false,
			checkConfig: func(cfg *Config) bool {
				return cfg.ScoreThreshold == 0.5 &&
					cfg.DistanceThreshold == 0.3 &&
					cfg.LexicalLimit == 12 &&
					cfg.LLMTimeout == 30*time.Second
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range envVars {
				unsetEnv(key)
			}
			tt.setupEnv(t)

			cfg, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if tt.checkConfig != nil && !tt.checkConfig(cfg) {
				t.Errorf("config check failed: %+v", cfg)
			}
		})
	}
}
