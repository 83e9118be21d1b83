// Package engine orchestrates question answering: classification, retrieval,
// context assembly, prompting, generation, and answer normalization.
package engine

import (
	"context"
	"strings"

	"github.com/tylorle/twin/internal/answer"
	"github.com/tylorle/twin/internal/profile"
)

// Fixed responses. Every failure path degrades to one of these strings; the
// engine never surfaces an error to its caller.
const (
	RefusalMessage       = "I can discuss my professional experience and skills, but I don't share personal contact or identification details."
	NoInfoMessage        = "I don't have information related to that yet."
	EmptyQuestionMessage = "Empty question."

	generationErrPrefix = "Error generating response: "
)

// Retrieval sizing.
const (
	DefaultTopK  = 10
	starTopK     = 6
	fallbackTopK = 8
)

// Result is one retrieval hit from the vector search provider, after
// metadata flattening.
type Result struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Score    float64  `json:"score"`
	Content  string   `json:"content"`
	Category string   `json:"category"`
	Tags     []string `json:"tags"`
}

// SearchProvider is the vector search collaborator. A failed or empty query
// is treated as "no results", never as a fatal condition.
type SearchProvider interface {
	Query(ctx context.Context, text string, topK int) ([]Result, error)
}

// Generator is the text generation collaborator.
type Generator interface {
	Generate(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// Mode tags how an answer was produced, for transcripts and diagnostics.
type Mode string

const (
	ModeEmpty    Mode = "empty"
	ModeRefused  Mode = "refused"
	ModeNoInfo   Mode = "no_info"
	ModeRAG      Mode = "rag"
	ModeFallback Mode = "fallback"
	ModeError    Mode = "error"
)

// Engine answers questions about the loaded profile. It is stateless per
// call: all fields are read-only after construction, so one Engine may serve
// concurrent requests.
type Engine struct {
	search       SearchProvider
	gen          Generator
	prof         *profile.Profile
	chunks       []profile.Chunk
	topK         int
	contextChars int
}

// New builds an Engine. Either provider may be nil; the engine then answers
// through the degraded fallback path over the locally built chunks.
func New(search SearchProvider, gen Generator, prof *profile.Profile) *Engine {
	e := &Engine{
		search:       search,
		gen:          gen,
		prof:         prof,
		topK:         DefaultTopK,
		contextChars: DefaultContextChars,
	}
	if prof != nil {
		e.chunks = profile.BuildChunks(prof)
	}
	return e
}

// Tune overrides the retrieval depth and context budget. Zero or negative
// values keep the current settings. Must be called before the engine serves
// requests.
func (e *Engine) Tune(topK, contextChars int) {
	if topK > 0 {
		e.topK = topK
	}
	if contextChars > 0 {
		e.contextChars = contextChars
	}
}

// Ready reports provider availability: vector index and generator.
func (e *Engine) Ready() (indexReady, generatorReady bool) {
	return e.search != nil, e.gen != nil
}

// Chunks exposes the locally built profile chunks (read-only).
func (e *Engine) Chunks() []profile.Chunk { return e.chunks }

// Profile exposes the loaded profile (read-only, may be nil).
func (e *Engine) Profile() *profile.Profile { return e.prof }

// Ask answers a single question. The returned string is always a complete
// answer, refusal, or degradation message; Mode tells which path produced it.
func (e *Engine) Ask(ctx context.Context, question string) (string, Mode) {
	question = strings.TrimSpace(question)
	if question == "" {
		return EmptyQuestionMessage, ModeEmpty
	}
	if answer.IsPIIRequest(question) {
		return RefusalMessage, ModeRefused
	}
	if e.search == nil || e.gen == nil {
		return e.Fallback(ctx, question, fallbackTopK), ModeFallback
	}

	retrieved := e.Search(ctx, question, e.topK, "", "")
	if answer.IsBehavioralQuery(question) {
		star := e.Search(ctx, question, starTopK, "", "star")
		retrieved = MergeResults(star, retrieved, e.topK)
	}
	if len(retrieved) == 0 {
		return NoInfoMessage, ModeNoInfo
	}

	raw := DirectContext(retrieved)
	if LongContext(retrieved) {
		raw = SummarizeChunks(retrieved, e.contextChars)
	}
	contextBlock := answer.SanitizeText(raw)

	system := SystemPrompt(e.prof.CanonicalName(""))
	user := UserPrompt(contextBlock, question)
	text, err := e.gen.Generate(ctx, system, user)
	if err != nil {
		return generationErrPrefix + err.Error(), ModeError
	}
	return answer.Normalize(text), ModeRAG
}

// Search queries the vector provider and applies the retrieval-boundary
// filters: the hard contact-information exclusion, then optional exact
// category and tag-membership filters. Provider errors yield an empty list.
func (e *Engine) Search(ctx context.Context, query string, topK int, category, tag string) []Result {
	if e.search == nil {
		return nil
	}
	raw, err := e.search.Query(ctx, query, topK)
	if err != nil {
		return nil
	}
	var out []Result
	for _, r := range raw {
		if strings.EqualFold(strings.TrimSpace(r.Title), profile.ContactTitle) {
			continue
		}
		if category != "" && r.Category != category {
			continue
		}
		if tag != "" && !hasTag(r.Tags, tag) {
			continue
		}
		out = append(out, r)
	}
	return out
}

func hasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if t == tag {
			return true
		}
	}
	return false
}
