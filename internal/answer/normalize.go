package answer

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// Word budget for a finished answer. The upper bound is enforced
// mechanically; the lower bound is only encouraged through the generation
// prompt.
const (
	MinAnswerWords = 50
	MaxAnswerWords = 200
)

// Normalize runs the full cleanup cascade over raw generated text and
// returns a recruiter-ready answer: dash bullets, no markdown decoration, no
// prologue or decorative headings, first-person singular, word-bounded, and
// ending at a sentence boundary.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	s = normalizeBulletMarkers(s)
	s = stripMarkdown(s)
	return polish(s)
}

// NormalizeSynthetic cleans text assembled locally from profile chunks. The
// bullet-marker and markdown stages are skipped since the text never passed
// through a model; the rest of the cascade is identical.
func NormalizeSynthetic(raw string) string {
	return polish(strings.TrimSpace(raw))
}

func polish(s string) string {
	s = stripHeadingPrefixes(s)
	s = cleanPrologue(s)
	s = removeStandaloneHeadings(s)
	s = bulletizeIfNeeded(s)
	s = simplifyBulletHeadings(s)
	s = enforceFirstPersonSingular(s)
	s = unifyBullets(s)
	s = collapseBlankLines(s)
	s = limitWords(s, MaxAnswerWords)
	s = ensureTerminalPunct(s)
	return s
}

// --- stage 1: bullet markers ---

var bulletMarkerRE = regexp.MustCompile(`(?m)^[ \t]*[•*\-]\s+`)

// normalizeBulletMarkers rewrites •, * and - list markers at line starts to
// the canonical "- ". Mid-line markers are left alone.
func normalizeBulletMarkers(s string) string {
	return bulletMarkerRE.ReplaceAllString(s, "- ")
}

// --- stage 2: markdown decoration ---

var (
	boldStarRE   = regexp.MustCompile(`(?s)\*\*(.*?)\*\*`)
	boldUnderRE  = regexp.MustCompile(`(?s)__(.*?)__`)
	italStarRE   = regexp.MustCompile(`(?s)\*(.*?)\*`)
	italUnderRE  = regexp.MustCompile(`(?s)_(.*?)_`)
	codeSpanRE   = regexp.MustCompile("`([^`]*)`")
	strayStarsRE = regexp.MustCompile(`\*+`)
)

// stripMarkdown unwraps bold/italic/code spans and removes any asterisks
// left over (bullets are already "- " by this point).
func stripMarkdown(s string) string {
	s = boldStarRE.ReplaceAllString(s, "$1")
	s = boldUnderRE.ReplaceAllString(s, "$1")
	s = italStarRE.ReplaceAllString(s, "$1")
	s = italUnderRE.ReplaceAllString(s, "$1")
	s = codeSpanRE.ReplaceAllString(s, "$1")
	return strayStarsRE.ReplaceAllString(s, "")
}

// --- stage 3: decorative heading prefixes ---

var knownPrefixREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^\s*Elevator Pitch\s*[:\-]\s*`),
	regexp.MustCompile(`(?i)^\s*Behavioral Questions\s*[:\-]\s*`),
	regexp.MustCompile(`(?i)^\s*Company Research\s*[:\-]\s*`),
}

var genericHeadingPrefixRE = regexp.MustCompile(`^\s*[A-Za-z][^:]{0,40}:\s*`)

// StripHeadingPrefix removes decorative heading prefixes from a single line:
// the known decorative titles plus any short heading-like prefix ending in a
// colon.
func StripHeadingPrefix(line string) string {
	for _, re := range knownPrefixREs {
		line = re.ReplaceAllString(line, "")
	}
	return genericHeadingPrefixRE.ReplaceAllString(line, "")
}

func stripHeadingPrefixes(s string) string {
	lines := strings.Split(s, "\n")
	for i, ln := range lines {
		lines[i] = StripHeadingPrefix(ln)
	}
	return strings.Join(lines, "\n")
}

// --- stage 4: prologue cleaning ---

var prologueDropREs = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^here\s+(are|is)\b`),
	regexp.MustCompile(`(?i)^in\s+the\s+format\s+requested\b`),
	regexp.MustCompile(`(?i)^the\s+following\b`),
	regexp.MustCompile(`(?i)^below\b`),
	regexp.MustCompile(`(?i)^i\s*'?d\s+be\s+happy\s+to\b`),
	regexp.MustCompile(`(?i)^i\s+would\s+be\s+happy\s+to\b`),
	regexp.MustCompile(`(?i)^i\s+am\s+happy\s+to\b`),
	regexp.MustCompile(`(?i)^i\s*'?m\s+happy\s+to\b`),
	regexp.MustCompile(`(?i)^sure[, ]`),
	regexp.MustCompile(`(?i)^certainly[, ]`),
	regexp.MustCompile(`(?i)^of\s+course[, ]`),
}

var questionStarterRE = regexp.MustCompile(`(?i)^(describe|tell\s+me\s+about|what\s+is|how\s+do\s+you|give\s+me|walk\s+me\s+through|explain|summarize|list|discuss)\b`)

func isMetaLine(line string) bool {
	for _, re := range prologueDropREs {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}

// cleanPrologue drops leading meta-disclaimer lines ("here are...", "sure,"),
// then strips leading sentences that merely restate the question. Line
// structure is preserved unless a restatement is actually removed.
func cleanPrologue(text string) string {
	if text == "" {
		return text
	}
	var kept []string
	skipping := true
	for _, ln := range strings.Split(text, "\n") {
		ln = strings.TrimSpace(ln)
		if skipping && isMetaLine(ln) {
			continue
		}
		skipping = false
		kept = append(kept, ln)
	}
	cleaned := strings.TrimSpace(strings.Join(kept, "\n"))
	if cleaned == "" {
		return text
	}
	sentences := splitSentences(cleaned)
	n := 0
	for n < len(sentences) && questionStarterRE.MatchString(strings.TrimSpace(sentences[n])) {
		n++
	}
	if n == 0 {
		return cleaned
	}
	var out []string
	for _, s := range sentences[n:] {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return strings.Join(out, " ")
}

// --- stage 5: standalone headings ---

var standaloneHeadingRE = regexp.MustCompile(`(?i)^(my\s+)?(background(\s+and\s+skills)?|skills|summary|overview|key\s+highlights|experience\s+highlights|professional\s+summary|profile)\s*$`)

// removeStandaloneHeadings drops non-bullet lines that are nothing but a
// generic section heading. Blank lines and bullets pass through.
func removeStandaloneHeadings(text string) string {
	if text == "" {
		return text
	}
	var out []string
	for _, ln := range strings.Split(text, "\n") {
		s := strings.TrimSpace(ln)
		if s != "" && !strings.HasPrefix(s, "- ") && standaloneHeadingRE.MatchString(s) {
			continue
		}
		out = append(out, ln)
	}
	return strings.Join(out, "\n")
}

// --- stage 6: bulletization fallback ---

var bulletLineRE = regexp.MustCompile(`(?m)^\s*\-\s+`)

// bulletizeIfNeeded converts prose into an intro sentence plus dash bullets
// when the text carries no bullet list of its own. Sentences under 20
// characters ride along with the previous bullet instead of standing alone.
func bulletizeIfNeeded(text string) string {
	if bulletLineRE.MatchString(text) {
		return text
	}
	var sentences []string
	for _, s := range splitAfterTerminators(strings.TrimSpace(text), true) {
		if t := strings.TrimSpace(s); t != "" {
			sentences = append(sentences, t)
		}
	}
	if len(sentences) <= 1 {
		return text
	}
	intro := sentences[0]
	var merged []string
	for _, s := range sentences[1:] {
		if len(merged) > 0 && utf8.RuneCountInString(s) < 20 {
			merged[len(merged)-1] = strings.TrimRight(merged[len(merged)-1], ".") + "; " + s
		} else {
			merged = append(merged, s)
		}
	}
	lines := []string{intro, ""}
	for _, b := range merged {
		lines = append(lines, "- "+b)
	}
	return strings.Join(lines, "\n")
}

// --- stage 7: bullet heading simplification ---

var (
	bulletHeadingRE  = regexp.MustCompile(`^(\-\s*)([^:\n]{3,120}):\s*`)
	protectedLabelRE = regexp.MustCompile(`(?i)^(situation|task|action|result|impact|tech|role|duration)\b`)
	doubleDashRE     = regexp.MustCompile(`^(\-\s*)\-\s*`)
)

// simplifyBulletHeadings strips a leading descriptive phrase before a colon
// on bullet lines, keeping the semantic STAR-style labels intact.
func simplifyBulletHeadings(text string) string {
	lines := strings.Split(text, "\n")
	for i, ln := range lines {
		if !isBulletLine(ln) {
			continue
		}
		m := bulletHeadingRE.FindStringSubmatch(ln)
		if m == nil || protectedLabelRE.MatchString(m[2]) {
			continue
		}
		simplified := m[1] + ln[len(m[0]):]
		lines[i] = doubleDashRE.ReplaceAllString(simplified, "$1")
	}
	return strings.Join(lines, "\n")
}

// --- stage 8: first-person singularization ---

var firstPersonRepls = []struct {
	re  *regexp.Regexp
	rep string
}{
	{regexp.MustCompile(`(?i)\bwe're\b`), "I'm"},
	{regexp.MustCompile(`(?i)\bwe\s+are\b`), "I am"},
	{regexp.MustCompile(`(?i)\bwe\s+were\b`), "I was"},
	{regexp.MustCompile(`(?i)\bwe've\b`), "I've"},
	{regexp.MustCompile(`(?i)\bwe\s+have\b`), "I have"},
	{regexp.MustCompile(`(?i)\bwe\s+had\b`), "I had"},
	{regexp.MustCompile(`(?i)\bwe\s+can\b`), "I can"},
	{regexp.MustCompile(`(?i)\bwe\s+could\b`), "I could"},
	{regexp.MustCompile(`(?i)\bwe\s+do\b`), "I do"},
	{regexp.MustCompile(`(?i)\bwe\s+did\b`), "I did"},
	{regexp.MustCompile(`(?i)\bwe\b`), "I"},
	{regexp.MustCompile(`(?i)\bourselves\b`), "myself"},
	{regexp.MustCompile(`(?i)\bours\b`), "mine"},
	{regexp.MustCompile(`(?i)\bour\b`), "my"},
	{regexp.MustCompile(`(?i)\bus\b`), "me"},
}

// enforceFirstPersonSingular rewrites plural first-person forms to singular.
// Heuristic with word boundaries; compound forms are handled before the bare
// "we" so "we are" never becomes "I are".
func enforceFirstPersonSingular(text string) string {
	out := text
	for _, r := range firstPersonRepls {
		out = r.re.ReplaceAllString(out, r.rep)
	}
	return out
}

// --- stage 9: bullet unification ---

var (
	wsRunRE      = regexp.MustCompile(`\s+`)
	langBulletRE = regexp.MustCompile(`(?i)^-\s*(languages?:)?\s*(.+)`)
	langSplitRE  = regexp.MustCompile(`[,/|]`)
	digitRE      = regexp.MustCompile(`\d`)
)

var stackKeywords = []string{"php", "python", "c#", "java", "javascript", "node"}

func isBulletLine(ln string) bool {
	return strings.HasPrefix(strings.TrimLeft(ln, " \t"), "- ")
}

func mentionsStack(b string) bool {
	low := strings.ToLower(b)
	for _, k := range stackKeywords {
		if strings.Contains(low, k) {
			return true
		}
	}
	return false
}

// unifyBullets consolidates language-stack bullets into a single "Languages:"
// bullet, drops bullets subsumed by longer ones, and orders quantified
// bullets first.
func unifyBullets(text string) string {
	lines := strings.Split(text, "\n")
	var norm []string
	for _, ln := range lines {
		if isBulletLine(ln) {
			norm = append(norm, wsRunRE.ReplaceAllString(strings.TrimSpace(ln), " "))
		}
	}
	if len(norm) == 0 {
		return text
	}

	// Pull programming-language bullets out and collect their tokens.
	var langItems []string
	var retained []string
	for _, b := range norm {
		m := langBulletRE.FindStringSubmatch(b)
		if m != nil && mentionsStack(b) {
			for _, p := range langSplitRE.Split(m[2], -1) {
				if tok := strings.TrimSpace(p); tok != "" {
					langItems = append(langItems, tok)
				}
			}
			continue
		}
		retained = append(retained, b)
	}
	if len(langItems) > 0 {
		seen := make(map[string]bool, len(langItems))
		var dedup []string
		for _, l := range langItems {
			key := strings.ToLower(l)
			if !seen[key] {
				seen[key] = true
				dedup = append(dedup, l)
			}
		}
		retained = append([]string{"- Languages: " + strings.Join(dedup, ", ")}, retained...)
	}

	// Drop bullets whose content is a strict substring of another bullet.
	var filtered []string
	for _, b := range retained {
		content := strings.ToLower(b[2:])
		subsumed := false
		for _, o := range retained {
			other := strings.ToLower(o[2:])
			if content != other && strings.Contains(other, content) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			filtered = append(filtered, b)
		}
	}

	// Bullets with numbers lead; longer bullets win ties.
	sort.SliceStable(filtered, func(i, j int) bool {
		di, dj := digitRE.MatchString(filtered[i]), digitRE.MatchString(filtered[j])
		if di != dj {
			return di
		}
		return len(filtered[i]) > len(filtered[j])
	})

	var out []string
	for _, ln := range lines {
		if !isBulletLine(ln) {
			out = append(out, ln)
		}
	}
	if len(out) > 0 && strings.TrimSpace(out[len(out)-1]) != "" {
		out = append(out, "")
	}
	out = append(out, filtered...)
	return strings.Join(out, "\n")
}

// --- stages 10-12: blank collapse, word limit, terminal punctuation ---

var blankRunRE = regexp.MustCompile(`\n{3,}`)

func collapseBlankLines(s string) string {
	return blankRunRE.ReplaceAllString(s, "\n\n")
}

var terminalPunctRE = regexp.MustCompile(`[.!?]['”"]?\s*$`)

// limitWords truncates text to maxWords words, then backs up to the last
// sentence terminator so the answer never ends mid-sentence. There is no
// matching lower-bound trim: short answers are a prompting concern.
func limitWords(text string, maxWords int) string {
	if text == "" {
		return text
	}
	if words := strings.Fields(text); len(words) > maxWords {
		text = strings.Join(words[:maxWords], " ")
	}
	if terminalPunctRE.MatchString(text) {
		return text
	}
	if i := strings.LastIndexAny(text, ".!?"); i >= 0 {
		return text[:i+1]
	}
	return text
}

func ensureTerminalPunct(s string) string {
	if terminalPunctRE.MatchString(s) {
		return s
	}
	return s + "."
}
