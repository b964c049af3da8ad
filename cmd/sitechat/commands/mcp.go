// ABOUTME: MCP command starts a Model Context Protocol server over stdio
// ABOUTME: Enables LLM agents to ask questions and trigger ingestion
package commands

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/harper/sitechat/internal/answer"
	"github.com/harper/sitechat/internal/chunker"
	"github.com/harper/sitechat/internal/fetcher"
	"github.com/harper/sitechat/internal/index"
	"github.com/harper/sitechat/internal/ingest"
	"github.com/harper/sitechat/internal/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// NewMCPCmd creates the MCP command
func NewMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Start MCP server for LLM agents",
		Long: `Start MCP server for LLM agents.

Runs sitechat as an MCP (Model Context Protocol) server over stdio,
exposing ask_question, ingest_urls, and index_status tools.`,
		RunE: runMCP,
		Example: `  # Start MCP server (typically called by an MCP client)
  sitechat mcp`,
	}

	return cmd
}

func runMCP(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	var searcher answer.Searcher
	indexLen := func() int { return 0 }
	store, err := index.Load(cfg.IndexPath, client)
	switch {
	case err == nil:
		searcher = store
		indexLen = store.Len
	case errors.Is(err, index.ErrIndexNotFound):
		if !quiet {
			log.Printf("Vector index not found at %s; ask_question reports not-ready until ingest_urls runs", cfg.IndexPath)
		}
	default:
		return fmt.Errorf("loading index: %w", err)
	}

	ch := &chunker.Chunker{
		ChunkSize:     cfg.ChunkSize,
		Overlap:       cfg.ChunkOverlap,
		MinChunkWords: cfg.MinChunkWords,
	}
	pipeline := ingest.New(fetcher.New(cfg.FetchTimeout), ch, client)
	answerer := answer.New(searcher, client, cfg.TopK)

	server := mcpserver.NewMCPServer("sitechat", versionInfo.Version)
	mcp.RegisterTools(server, answerer, pipeline, cfg.IndexPath, indexLen)

	if !quiet {
		log.Println("sitechat MCP server starting on stdio...")
	}
	return mcpserver.ServeStdio(server)
}
