// ABOUTME: Tests for centralized configuration system
// ABOUTME: Verifies environment variable parsing and validation

package config

import (
	"os"
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	// Clear environment to test defaults
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	// Verify defaults
	if cfg.ChatModel != "gpt-4o-mini" {
		t.Errorf("ChatModel = %s, want gpt-4o-mini", cfg.ChatModel)
	}
	if cfg.EmbeddingModel != "text-embedding-3-small" {
		t.Errorf("EmbeddingModel = %s, want text-embedding-3-small", cfg.EmbeddingModel)
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("Timeout = %v, want 30s", cfg.Timeout)
	}
	if cfg.MaxRetries != 3 {
		t.Errorf("MaxRetries = %d, want 3", cfg.MaxRetries)
	}
	if cfg.RetryDelay != 2*time.Second {
		t.Errorf("RetryDelay = %v, want 2s", cfg.RetryDelay)
	}
	if cfg.IndexPath != "index" {
		t.Errorf("IndexPath = %s, want index", cfg.IndexPath)
	}
	if cfg.ChunkSize != 500 {
		t.Errorf("ChunkSize = %d, want 500", cfg.ChunkSize)
	}
	if cfg.ChunkOverlap != 50 {
		t.Errorf("ChunkOverlap = %d, want 50", cfg.ChunkOverlap)
	}
	if cfg.MinChunkWords != 50 {
		t.Errorf("MinChunkWords = %d, want 50", cfg.MinChunkWords)
	}
	if cfg.FetchTimeout != 10*time.Second {
		t.Errorf("FetchTimeout = %v, want 10s", cfg.FetchTimeout)
	}
	if cfg.TopK != 5 {
		t.Errorf("TopK = %d, want 5", cfg.TopK)
	}
	if cfg.ListenAddr != ":8080" {
		t.Errorf("ListenAddr = %s, want :8080", cfg.ListenAddr)
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	os.Clearenv()
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("SITECHAT_OPENAI_MODEL", "gpt-4o")
	t.Setenv("SITECHAT_INDEX_PATH", "/var/lib/sitechat/index")
	t.Setenv("SITECHAT_CHUNK_SIZE", "200")
	t.Setenv("SITECHAT_CHUNK_OVERLAP", "20")
	t.Setenv("SITECHAT_MIN_CHUNK_WORDS", "10")
	t.Setenv("SITECHAT_FETCH_TIMEOUT", "5s")
	t.Setenv("SITECHAT_TOP_K", "3")
	t.Setenv("SITECHAT_LISTEN_ADDR", ":9090")
	t.Setenv("OPENAI_TIMEOUT", "1m")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.OpenAIKey != "sk-test" {
		t.Errorf("OpenAIKey = %s, want sk-test", cfg.OpenAIKey)
	}
	if cfg.ChatModel != "gpt-4o" {
		t.Errorf("ChatModel = %s, want gpt-4o", cfg.ChatModel)
	}
	if cfg.IndexPath != "/var/lib/sitechat/index" {
		t.Errorf("IndexPath = %s", cfg.IndexPath)
	}
	if cfg.ChunkSize != 200 {
		t.Errorf("ChunkSize = %d, want 200", cfg.ChunkSize)
	}
	if cfg.ChunkOverlap != 20 {
		t.Errorf("ChunkOverlap = %d, want 20", cfg.ChunkOverlap)
	}
	if cfg.MinChunkWords != 10 {
		t.Errorf("MinChunkWords = %d, want 10", cfg.MinChunkWords)
	}
	if cfg.FetchTimeout != 5*time.Second {
		t.Errorf("FetchTimeout = %v, want 5s", cfg.FetchTimeout)
	}
	if cfg.TopK != 3 {
		t.Errorf("TopK = %d, want 3", cfg.TopK)
	}
	if cfg.ListenAddr != ":9090" {
		t.Errorf("ListenAddr = %s, want :9090", cfg.ListenAddr)
	}
	if cfg.Timeout != time.Minute {
		t.Errorf("Timeout = %v, want 1m", cfg.Timeout)
	}
}

func TestLoad_InvalidIntFallsBackToDefault(t *testing.T) {
	os.Clearenv()
	t.Setenv("SITECHAT_TOP_K", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.TopK != 5 {
		t.Errorf("TopK = %d, want default 5", cfg.TopK)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid defaults", func(c *Config) {}, false},
		{"zero chunk size", func(c *Config) { c.ChunkSize = 0 }, true},
		{"negative overlap", func(c *Config) { c.ChunkOverlap = -1 }, true},
		{"overlap equals chunk size", func(c *Config) { c.ChunkOverlap = c.ChunkSize }, true},
		{"overlap larger than chunk size", func(c *Config) { c.ChunkOverlap = c.ChunkSize + 1 }, true},
		{"negative min words", func(c *Config) { c.MinChunkWords = -1 }, true},
		{"zero min words allowed", func(c *Config) { c.MinChunkWords = 0 }, false},
		{"zero top k", func(c *Config) { c.TopK = 0 }, true},
		{"retries out of range", func(c *Config) { c.MaxRetries = 11 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Clearenv()
			cfg, err := Load()
			if err != nil {
				t.Fatalf("Load() failed: %v", err)
			}
			tt.mutate(cfg)

			err = cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
