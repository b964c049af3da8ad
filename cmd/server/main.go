// ABOUTME: Main entry point for the sitechat HTTP question-answering service
// ABOUTME: Loads config and the persisted index, then serves /qa, /upload, and /
package main

import (
	"errors"
	"log"
	"net/http"

	"github.com/harper/sitechat/internal/answer"
	"github.com/harper/sitechat/internal/config"
	"github.com/harper/sitechat/internal/extract"
	"github.com/harper/sitechat/internal/index"
	"github.com/harper/sitechat/internal/llm"
	"github.com/harper/sitechat/internal/server"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (for API keys)
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found (this is okay for production): %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	client, err := llm.NewOpenAIClientWithConfig(&llm.ClientConfig{
		APIKey:         cfg.OpenAIKey,
		ChatModel:      cfg.ChatModel,
		EmbeddingModel: llm.EmbeddingModel(cfg.EmbeddingModel),
		MaxRetries:     cfg.MaxRetries,
		RetryDelay:     cfg.RetryDelay,
		Timeout:        cfg.Timeout,
	})
	if err != nil {
		log.Fatalf("Failed to create OpenAI client: %v", err)
	}

	// A missing index is not fatal: the service starts and reports not-ready
	// on /qa until an ingestion run creates one.
	var store *index.Store
	var searcher answer.Searcher
	loaded, err := index.Load(cfg.IndexPath, client)
	switch {
	case err == nil:
		store = loaded
		searcher = loaded
		log.Printf("Loaded vector index from %s (%d entries)", cfg.IndexPath, loaded.Len())
	case errors.Is(err, index.ErrIndexNotFound):
		log.Printf("Vector index not found at %s; run `sitechat ingest` to create it", cfg.IndexPath)
	default:
		log.Fatalf("Failed to load vector index: %v", err)
	}

	answerer := answer.New(searcher, client, cfg.TopK)
	srv := server.New(answerer, extract.New(), client, cfg.IndexPath, store)

	log.Printf("sitechat service listening on %s", cfg.ListenAddr)
	if err := http.ListenAndServe(cfg.ListenAddr, srv.Routes()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
