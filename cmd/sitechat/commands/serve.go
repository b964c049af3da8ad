// ABOUTME: CLI command to run the HTTP question-answering service
// ABOUTME: Mirrors cmd/server so the service can also start from the CLI
package commands

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/harper/sitechat/internal/answer"
	"github.com/harper/sitechat/internal/extract"
	"github.com/harper/sitechat/internal/index"
	"github.com/harper/sitechat/internal/server"
)

// NewServeCmd creates the serve command
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP question-answering service",
		Long: `Run the HTTP question-answering service.

Exposes POST /qa, POST /upload, and GET / on SITECHAT_LISTEN_ADDR.
The service starts even when no index exists yet; /qa reports a clear
not-ready condition until an ingestion run creates one.`,
		RunE: runServe,
	}

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	var store *index.Store
	var searcher answer.Searcher
	loaded, err := index.Load(cfg.IndexPath, client)
	switch {
	case err == nil:
		store = loaded
		searcher = loaded
		if !quiet {
			log.Printf("Loaded vector index from %s (%d entries)", cfg.IndexPath, loaded.Len())
		}
	case errors.Is(err, index.ErrIndexNotFound):
		log.Printf("Vector index not found at %s; run `sitechat ingest` to create it", cfg.IndexPath)
	default:
		return fmt.Errorf("loading index: %w", err)
	}

	answerer := answer.New(searcher, client, cfg.TopK)
	srv := server.New(answerer, extract.New(), client, cfg.IndexPath, store)

	log.Printf("sitechat service listening on %s", cfg.ListenAddr)
	return http.ListenAndServe(cfg.ListenAddr, srv.Routes())
}
