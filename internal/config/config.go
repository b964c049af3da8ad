// ABOUTME: Centralized configuration for the sitechat service
// ABOUTME: Loads from environment variables with validation and defaults
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all configuration for the sitechat service
type Config struct {
	// OpenAI settings
	OpenAIKey      string
	ChatModel      string
	EmbeddingModel string
	Timeout        time.Duration
	MaxRetries     int
	RetryDelay     time.Duration

	// Index settings
	IndexPath string

	// Ingestion settings
	ChunkSize     int
	ChunkOverlap  int
	MinChunkWords int
	FetchTimeout  time.Duration

	// Answering settings
	TopK int

	// HTTP settings
	ListenAddr string
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		// Defaults
		OpenAIKey:      os.Getenv("OPENAI_API_KEY"),
		ChatModel:      getEnv("SITECHAT_OPENAI_MODEL", "gpt-4o-mini"),
		EmbeddingModel: getEnv("SITECHAT_EMBEDDING_MODEL", "text-embedding-3-small"),
		Timeout:        getEnvDuration("OPENAI_TIMEOUT", 30*time.Second),
		MaxRetries:     getEnvInt("OPENAI_MAX_RETRIES", 3),
		RetryDelay:     getEnvDuration("OPENAI_RETRY_DELAY", 2*time.Second),
		IndexPath:      getEnv("SITECHAT_INDEX_PATH", "index"),
		ChunkSize:      getEnvInt("SITECHAT_CHUNK_SIZE", 500),
		ChunkOverlap:   getEnvInt("SITECHAT_CHUNK_OVERLAP", 50),
		MinChunkWords:  getEnvInt("SITECHAT_MIN_CHUNK_WORDS", 50),
		FetchTimeout:   getEnvDuration("SITECHAT_FETCH_TIMEOUT", 10*time.Second),
		TopK:           getEnvInt("SITECHAT_TOP_K", 5),
		ListenAddr:     getEnv("SITECHAT_LISTEN_ADDR", ":8080"),
	}

	return cfg, cfg.Validate()
}

func (c *Config) Validate() error {
	if c.ChunkSize <= 0 {
		return fmt.Errorf("SITECHAT_CHUNK_SIZE must be positive, got %d", c.ChunkSize)
	}
	if c.ChunkOverlap < 0 {
		return fmt.Errorf("SITECHAT_CHUNK_OVERLAP must be non-negative, got %d", c.ChunkOverlap)
	}
	if c.ChunkOverlap >= c.ChunkSize {
		return fmt.Errorf("SITECHAT_CHUNK_OVERLAP (%d) must be smaller than SITECHAT_CHUNK_SIZE (%d)", c.ChunkOverlap, c.ChunkSize)
	}
	if c.MinChunkWords < 0 {
		return fmt.Errorf("SITECHAT_MIN_CHUNK_WORDS must be non-negative, got %d", c.MinChunkWords)
	}
	if c.TopK <= 0 {
		return fmt.Errorf("SITECHAT_TOP_K must be positive, got %d", c.TopK)
	}
	if c.MaxRetries < 0 || c.MaxRetries > 10 {
		return fmt.Errorf("OPENAI_MAX_RETRIES must be 0-10, got %d", c.MaxRetries)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
