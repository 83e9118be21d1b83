package web

import (
	"database/sql"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/tylorle/twin/internal/config"
	"github.com/tylorle/twin/internal/db"
	"github.com/tylorle/twin/internal/engine"
	"github.com/tylorle/twin/internal/errors"
	"github.com/tylorle/twin/internal/profile"
)

// Handlers contains HTTP route handlers for the web UI and JSON API.
// The transcript store is optional; when nil, answers are not recorded.
type Handlers struct {
	eng      *engine.Engine
	store    *sql.DB
	cfg      *config.Config
	renderer *Renderer
}

// askRequest is the POST /api/ask body.
type askRequest struct {
	Question string `json:"question"`
}

// bulkAskRequest is the POST /api/bulk-ask body.
type bulkAskRequest struct {
	Items []bulkAskItem `json:"items"`
}

type bulkAskItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
}

// HandleChat handles GET / — the chat page.
func (h *Handlers) HandleChat(w http.ResponseWriter, r *http.Request) {
	name := ""
	if p := h.eng.Profile(); p != nil {
		name = p.CanonicalName("")
	}
	h.renderer.renderPage(w, r, "chat", ChatPageData{
		PageData: PageData{
			Title:   "Chat",
			Version: h.renderer.version,
			Nav:     "chat",
		},
		Name:    name,
		Queries: profile.QueryCatalog,
	})
}

// HandleProfilePage handles GET /profile — the public profile page.
func (h *Handlers) HandleProfilePage(w http.ResponseWriter, r *http.Request) {
	p := h.eng.Profile()
	if p == nil {
		h.renderer.renderError(w, r, errors.NewProfileMissing(""))
		return
	}
	h.renderer.renderPage(w, r, "profile", ProfilePageData{
		PageData: PageData{
			Title:   "Profile",
			Version: h.renderer.version,
			Nav:     "profile",
		},
		View: p.Public(),
	})
}

// HandleHistoryPage handles GET /history — recent transcripts.
func (h *Handlers) HandleHistoryPage(w http.ResponseWriter, r *http.Request) {
	var items []HistoryItem
	if h.store != nil {
		transcripts, err := db.ListTranscripts(h.store, parseIntParam(r, "limit", 50), parseIntParam(r, "offset", 0))
		if err != nil {
			h.renderer.renderError(w, r, err)
			return
		}
		for _, t := range transcripts {
			items = append(items, HistoryItem{
				Transcript: t,
				AnswerHTML: renderMarkdown(t.Answer),
			})
		}
	}
	h.renderer.renderPage(w, r, "history", HistoryPageData{
		PageData: PageData{
			Title:   "History",
			Version: h.renderer.version,
			Nav:     "history",
		},
		Items: items,
	})
}

// HandleAsk handles POST /api/ask.
func (h *Handlers) HandleAsk(w http.ResponseWriter, r *http.Request) {
	var req askRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid JSON body"))
		return
	}

	start := time.Now()
	text, mode := h.eng.Ask(r.Context(), req.Question)
	h.record(req.Question, text, mode, time.Since(start))

	renderJSON(w, http.StatusOK, map[string]any{"answer": text})
}

// HandleBulkAsk handles POST /api/bulk-ask. Items are answered in order;
// the whole batch is skipped when either provider is unavailable.
func (h *Handlers) HandleBulkAsk(w http.ResponseWriter, r *http.Request) {
	var req bulkAskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("invalid JSON body"))
		return
	}

	results := make([]map[string]any, 0, len(req.Items))
	indexReady, genReady := h.eng.Ready()
	if !indexReady || !genReady {
		renderJSON(w, http.StatusOK, map[string]any{"results": results})
		return
	}

	for _, item := range req.Items {
		text, _ := h.eng.Ask(r.Context(), item.Question)
		results = append(results, map[string]any{
			"id":     item.ID,
			"answer": text,
		})
	}
	renderJSON(w, http.StatusOK, map[string]any{"results": results})
}

// HandleSearch handles GET /api/search.
func (h *Handlers) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		h.renderer.renderError(w, r, errors.NewInvalidRequest("q parameter is required"))
		return
	}

	results := h.eng.Search(
		r.Context(),
		query,
		parseIntParam(r, "top_k", 8),
		r.URL.Query().Get("category"),
		r.URL.Query().Get("tag"),
	)
	if results == nil {
		results = []engine.Result{}
	}
	renderJSON(w, http.StatusOK, map[string]any{"results": results})
}

// HandleSampleQueries handles GET /api/sample-queries.
func (h *Handlers) HandleSampleQueries(w http.ResponseWriter, r *http.Request) {
	renderJSON(w, http.StatusOK, map[string]any{"queries": profile.QueryCatalog})
}

// HandleHealth handles GET /api/health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	indexReady, genReady := h.eng.Ready()
	renderJSON(w, http.StatusOK, map[string]any{
		"status":      "ok",
		"index_ready": indexReady,
		"groq_ready":  genReady,
	})
}

// HandleProfileData handles GET /api/profile-data.
func (h *Handlers) HandleProfileData(w http.ResponseWriter, r *http.Request) {
	p := h.eng.Profile()
	if p == nil {
		renderJSON(w, http.StatusNotFound, map[string]any{"error": "profile json missing"})
		return
	}
	renderJSON(w, http.StatusOK, p.Public())
}

// record stores a transcript row, best-effort.
func (h *Handlers) record(question, answer string, mode engine.Mode, elapsed time.Duration) {
	if h.store == nil {
		return
	}
	source := "web"
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

// parseIntParam parses an integer query parameter with a default value.
func parseIntParam(r *http.Request, name string, defaultVal int) int {
	s := r.URL.Query().Get(name)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return defaultVal
	}
	return v
}
