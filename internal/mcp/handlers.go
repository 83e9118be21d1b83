package mcp

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/tylorle/twin/internal/config"
	"github.com/tylorle/twin/internal/db"
	"github.com/tylorle/twin/internal/engine"
	"github.com/tylorle/twin/internal/errors"
	"github.com/tylorle/twin/internal/profile"
)

// Handlers holds dependencies for MCP tool handlers. The transcript store
// is optional; when nil, answered questions are not recorded.
type Handlers struct {
	eng   *engine.Engine
	store *sql.DB
	cfg   *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(eng *engine.Engine, store *sql.DB, cfg *config.Config) *Handlers {
	return &Handlers{eng: eng, store: store, cfg: cfg}
}

// Request types for each tool

// AskRequest represents the arguments for twin_ask.
type AskRequest struct {
	Question string `json:"question"`
}

// SearchRequest represents the arguments for twin_search.
type SearchRequest struct {
	Query    string `json:"query"`
	TopK     int    `json:"top_k,omitempty"`
	Category string `json:"category,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

// HistoryRequest represents the arguments for twin_history.
type HistoryRequest struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`
}

// Handler implementations

// HandleAsk handles the twin_ask tool call.
func (h *Handlers) HandleAsk(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[AskRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}

	start := time.Now()
	text, mode := h.eng.Ask(ctx, input.Question)
	h.record(input.Question, text, mode, time.Since(start))

	return successResult(map[string]any{
		"question": input.Question,
		"answer":   text,
		"mode":     string(mode),
	})
}

// HandleSearch handles the twin_search tool call.
func (h *Handlers) HandleSearch(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if input.Query == "" {
		return errorResult(errors.NewInvalidRequest("query is required")), nil
	}

	topK := input.TopK
	if topK <= 0 {
		topK = 8
	}
	results := h.eng.Search(ctx, input.Query, topK, input.Category, input.Tag)
	if results == nil {
		results = []engine.Result{}
	}

	return successResult(map[string]any{"results": results})
}

// HandleCatalog handles the twin_catalog tool call.
func (h *Handlers) HandleCatalog(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	queries := make([]map[string]any, 0, len(profile.QueryCatalog))
	for _, entry := range profile.QueryCatalog {
		queries = append(queries, map[string]any{
			"id":         entry.ID,
			"text":       entry.Text,
			"behavioral": entry.Behavioral,
		})
	}
	return successResult(map[string]any{"queries": queries})
}

// HandleProfile handles the twin_profile tool call.
func (h *Handlers) HandleProfile(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prof := h.eng.Profile()
	if prof == nil {
		return errorResult(errors.NewProfileMissing("")), nil
	}
	return successResult(prof.Public())
}

// HandleHistory handles the twin_history tool call.
func (h *Handlers) HandleHistory(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[HistoryRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(err.Error())), nil
	}
	if h.store == nil {
		return successResult(map[string]any{"transcripts": []*db.Transcript{}})
	}

	transcripts, err := db.ListTranscripts(h.store, input.Limit, input.Offset)
	if err != nil {
		return errorResult(err), nil
	}
	if transcripts == nil {
		transcripts = []*db.Transcript{}
	}
	return successResult(map[string]any{"transcripts": transcripts})
}

// record stores a transcript row, best-effort.
func (h *Handlers) record(question, answer string, mode engine.Mode, elapsed time.Duration) {
	if h.store == nil {
		return
	}
	source := "mcp"
	t := &db.Transcript{
		Question:   question,
		Answer:     answer,
		Mode:       string(mode),
		Source:     &source,
		DurationMS: elapsed.Milliseconds(),
	}
	if h.cfg != nil && h.cfg.Model != "" {
		model := h.cfg.Model
		t.Model = &model
	}
	_ = db.InsertTranscript(h.store, t)
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if twinErr, ok := err.(*errors.TwinError); ok && twinErr.Code != errors.ErrInternal {
		payload = map[string]any{
			"error": map[string]any{
				"code":    twinErr.Code,
				"message": twinErr.Message,
				"status":  twinErr.Status,
			},
		}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
