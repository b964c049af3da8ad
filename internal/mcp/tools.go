// ABOUTME: MCP tool definitions and registration for the sitechat server
// ABOUTME: Exposes ask_question, ingest_urls, and index_status over MCP
package mcp

import (
	"github.com/harper/sitechat/internal/answer"
	"github.com/harper/sitechat/internal/ingest"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, answerer *answer.Answerer, pipeline *ingest.Pipeline, indexPath string, indexLen func() int) *Handlers {
	handlers := &Handlers{
		answerer:  answerer,
		pipeline:  pipeline,
		indexPath: indexPath,
		indexLen:  indexLen,
	}

	// 1. ask_question - answer a question from the indexed content
	server.AddTool(mcp.Tool{
		Name:        "ask_question",
		Description: "Answer a natural-language question using content previously ingested into the vector index.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"question": map[string]interface{}{
					"type":        "string",
					"description": "Question to answer",
				},
			},
			Required: []string{"question"},
		},
	}, handlers.AskQuestion)

	// 2. ingest_urls - fetch, chunk, embed, and index a batch of URLs
	server.AddTool(mcp.Tool{
		Name:        "ingest_urls",
		Description: "Fetch web pages, chunk their text, and merge the chunks into the vector index. Unreachable URLs are skipped.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"urls": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "URLs to ingest",
				},
			},
			Required: []string{"urls"},
		},
	}, handlers.IngestURLs)

	// 3. index_status - report index readiness and size
	server.AddTool(mcp.Tool{
		Name:        "index_status",
		Description: "Report whether the vector index is loaded and how many entries it holds.",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, handlers.IndexStatus)

	return handlers
}
