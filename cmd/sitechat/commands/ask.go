// ABOUTME: CLI command to answer a single question from the index
// ABOUTME: Runs the retrieval-augmented flow and prints the answer
package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harper/sitechat/internal/answer"
	"github.com/harper/sitechat/internal/index"
)

// NewAskCmd creates the ask command
func NewAskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ask <question>",
		Short: "Answer a question from the indexed content",
		Long: `Answer a question from the indexed content.

Retrieves the most relevant chunks from the vector index and asks the
LLM to synthesize an answer grounded in them. Requires an index built
with "sitechat ingest".

Examples:
  sitechat ask "How do I reset my password?"
  sitechat ask --format json "What platforms are supported?"`,
		Args: cobra.ExactArgs(1),
		RunE: runAsk,
	}

	return cmd
}

func runAsk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client, err := newClient(cfg)
	if err != nil {
		return err
	}

	store, err := index.Load(cfg.IndexPath, client)
	if err != nil {
		if errors.Is(err, index.ErrIndexNotFound) {
			return fmt.Errorf("no index at %s, run `sitechat ingest` first", cfg.IndexPath)
		}
		return fmt.Errorf("loading index: %w", err)
	}

	answerer := answer.New(store, client, cfg.TopK)
	result, err := answerer.Answer(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("answering: %w", err)
	}

	if outputFormat == "json" {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling JSON: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Answer)
	if len(result.Sources) > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "Source: %s\n", result.Sources[0])
	}
	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), result.FollowUp)
	}

	return nil
}
