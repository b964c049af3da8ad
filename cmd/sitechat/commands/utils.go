// ABOUTME: Shared helpers for CLI commands
// ABOUTME: Builds the configured OpenAI client and loads environment config
package commands

import (
	"fmt"

	"github.com/harper/sitechat/internal/config"
	"github.com/harper/sitechat/internal/llm"
	"github.com/joho/godotenv"
)

// loadConfig reads .env (when present) and the process environment
func loadConfig() (*config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return cfg, nil
}

// newClient builds the OpenAI client from config
func newClient(cfg *config.Config) (*llm.OpenAIClient, error) {
	client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: llm.EmbeddingModel(cfg.EmbeddingModel),
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
		Timeout:        cfg.Timeout,
	})
	if err != nil {
		return nil, fmt.Errorf("creating OpenAI client: %w", err)
	}
	return client, nil
}
