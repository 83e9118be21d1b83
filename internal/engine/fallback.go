package engine

import (
	"context"
	"regexp"
	"sort"
	"strings"

	"github.com/tylorle/twin/internal/answer"
	"github.com/tylorle/twin/internal/profile"
)

var tokenRE = regexp.MustCompile(`[a-zA-Z0-9]+`)

// Fallback answers without the generation provider. With a vector provider
// it still retrieves; without one it ranks the locally built chunks by
// bag-of-words overlap with the question (+2 for STAR-tagged chunks). The
// top results are shaped into an intro plus one bullet per chunk, then run
// through the same normalization cascade as generated answers.
func (e *Engine) Fallback(ctx context.Context, question string, topK int) string {
	if answer.IsPIIRequest(question) {
		return RefusalMessage
	}
	var results []Result
	if e.search != nil {
		results = e.Search(ctx, question, topK, "", "")
		if answer.IsBehavioralQuery(question) {
			star := e.Search(ctx, question, starTopK, "", "star")
			results = MergeResults(star, results, topK)
		}
	} else {
		results = e.lexicalRank(question, topK)
	}
	if len(results) == 0 {
		return NoInfoMessage
	}

	intro := answer.StripHeadingPrefix(answer.FirstSentence(results[0].Content))
	limit := len(results)
	if limit > 5 {
		limit = 5
	}
	var bullets []string
	for _, r := range results[:limit] {
		title := strings.TrimSpace(strings.ReplaceAll(r.Title, "Experience - ", ""))
		sent := answer.StripHeadingPrefix(answer.FirstSentence(r.Content))
		bullets = append(bullets, "- "+title+": "+sent)
	}
	content := strings.TrimSpace(intro + "\n\n" + strings.Join(bullets, "\n"))
	content = answer.SanitizeText(content)
	return answer.NormalizeSynthetic(content)
}

// lexicalRank scores each chunk by the size of the token intersection with
// the question, with a small boost for STAR chunks, and returns the top k as
// zero-score results.
func (e *Engine) lexicalRank(question string, topK int) []Result {
	if len(e.chunks) == 0 {
		return nil
	}
	qTokens := tokenSet(question)
	type scored struct {
		score int
		chunk profile.Chunk
	}
	var ranked []scored
	for _, ch := range e.chunks {
		score := overlap(qTokens, ch.Title+". "+ch.Content)
		if hasTag(ch.Tags, "star") {
			score += 2
		}
		if score > 0 {
			ranked = append(ranked, scored{score, ch})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if topK > len(ranked) {
		topK = len(ranked)
	}
	out := make([]Result, 0, topK)
	for _, s := range ranked[:topK] {
		out = append(out, Result{
			Title:    s.chunk.Title,
			Content:  s.chunk.Content,
			Category: s.chunk.Category,
			Tags:     s.chunk.Tags,
		})
	}
	return out
}

func tokenSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, t := range tokenRE.FindAllString(strings.ToLower(text), -1) {
		set[t] = true
	}
	return set
}

func overlap(qTokens map[string]bool, text string) int {
	n := 0
	for t := range tokenSet(text) {
		if qTokens[t] {
			n++
		}
	}
	return n
}
