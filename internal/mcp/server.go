// Package mcp exposes the digital twin over the Model Context Protocol,
// using stdio transport so agent hosts can ask questions, search the
// profile, and browse the query catalog as tools.
package mcp

import (
	"context"
	"database/sql"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/tylorle/twin/internal/config"
	"github.com/tylorle/twin/internal/engine"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"twin_ask": {
		def:     askToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleAsk },
	},
	"twin_search": {
		def:     searchToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSearch },
	},
	"twin_catalog": {
		def:     catalogToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCatalog },
	},
	"twin_profile": {
		def:     profileToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleProfile },
	},
	"twin_history": {
		def:     historyToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleHistory },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// NewServer creates a new MCP server with twin tools registered.
func NewServer(eng *engine.Engine, store *sql.DB, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"twin",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(eng, store, cfg)

	for _, entry := range toolRegistry {
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(eng *engine.Engine, store *sql.DB, cfg *config.Config, version string) error {
	s := NewServer(eng, store, cfg, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
