// ABOUTME: Root command for the sitechat CLI with global flags
// ABOUTME: Wires up serve, ingest, ask, mcp, and version subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	quiet        bool
	outputFormat string
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sitechat",
		Short: "Retrieval-augmented question answering over web content",
		Long: `sitechat ingests web pages and documents into a local vector index
and answers questions about them with an LLM grounded in retrieved chunks.

Typical flow:
  sitechat ingest https://example.com/help/page
  sitechat ask "How do I get started?"
  sitechat serve`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress informational output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "text", "Output format: text or json")

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewIngestCmd())
	cmd.AddCommand(NewAskCmd())
	cmd.AddCommand(NewMCPCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}
