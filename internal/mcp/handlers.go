// ABOUTME: MCP tool handler implementations for the sitechat server
// ABOUTME: Maps tool calls onto the answering flow and the ingestion pipeline
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/sitechat/internal/answer"
	"github.com/harper/sitechat/internal/ingest"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	answerer  *answer.Answerer
	pipeline  *ingest.Pipeline
	indexPath string
	indexLen  func() int
}

// AskQuestion handles the ask_question tool
func (h *Handlers) AskQuestion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	question, err := request.RequireString("question")
	if err != nil {
		return mcp.NewToolResultError("question argument is required and must be a string"), nil
	}

	result, err := h.answerer.Answer(ctx, question)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("answering failed: %v", err)), nil
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// IngestURLs handles the ingest_urls tool
func (h *Handlers) IngestURLs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	urls := request.GetStringSlice("urls", nil)
	if len(urls) == 0 {
		return mcp.NewToolResultError("urls argument is required and must be a non-empty array of strings"), nil
	}

	summary, err := h.pipeline.Ingest(urls, h.indexPath)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("ingestion failed: %v", err)), nil
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding summary: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// IndexStatus handles the index_status tool
func (h *Handlers) IndexStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	entries := 0
	if h.indexLen != nil {
		entries = h.indexLen()
	}

	status := map[string]any{
		"loaded":  h.answerer != nil && h.answerer.Ready(),
		"entries": entries,
		"path":    h.indexPath,
	}

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding status: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}
