// ABOUTME: CLI command to ingest web pages into the vector index
// ABOUTME: Fetches, chunks, embeds, and merges chunks into the persisted index
package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/harper/sitechat/internal/chunker"
	"github.com/harper/sitechat/internal/fetcher"
	"github.com/harper/sitechat/internal/ingest"
)

// NewIngestCmd creates the ingest command
func NewIngestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest <url>...",
		Short: "Ingest web pages into the vector index",
		Long: `Ingest web pages into the vector index.

Each URL is fetched, stripped to plain text, split into overlapping
word-count-bounded chunks, embedded, and merged into the index at
SITECHAT_INDEX_PATH. Unreachable URLs are skipped with a zero chunk
count; the rest of the batch is still ingested.

Examples:
  sitechat ingest https://example.com/help/getting-started
  sitechat ingest https://a.example.com https://b.example.com`,
		Args: cobra.MinimumNArgs(1),
		RunE: runIngest,
	}

	return cmd
}

func runIngest(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	ch := &chunker.Chunker{
		ChunkSize:     cfg.ChunkSize,
		Overlap:       cfg.ChunkOverlap,
		MinChunkWords: cfg.MinChunkWords,
	}

	pipeline := ingest.New(fetcher.New(cfg.FetchTimeout), ch, client)
	summary, err := pipeline.Ingest(args, cfg.IndexPath)
	if err != nil {
		return fmt.Errorf("ingesting: %w", err)
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	if !quiet {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "URL\tFETCHED\tCHUNKS\n")
		for _, r := range summary.Results {
			fmt.Fprintf(w, "%s\t%t\t%d\n", r.URL, r.Fetched, r.Chunks)
		}
		w.Flush()
		fmt.Fprintf(cmd.OutOrStdout(), "Total chunks added: %d\n", summary.TotalAdded)
	}

	return nil
}
