package answer

import (
	"strings"
	"unicode/utf8"
)

func isTerminator(b byte) bool {
	return b == '.' || b == '!' || b == '?'
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}

// sentenceOpener reports whether a rune can begin a new sentence for the
// bulletization split: an uppercase letter, quote, or opening paren.
func sentenceOpener(r rune) bool {
	return (r >= 'A' && r <= 'Z') || r == '\'' || r == '"' || r == '('
}

// splitAfterTerminators splits text after every run of whitespace that
// follows a sentence terminator. When capOnly is set, a boundary only counts
// if the following rune looks like a sentence opener.
func splitAfterTerminators(text string, capOnly bool) []string {
	var out []string
	start := 0
	i := 0
	for i < len(text) {
		if isTerminator(text[i]) && i+1 < len(text) && isSpaceByte(text[i+1]) {
			j := i + 1
			for j < len(text) && isSpaceByte(text[j]) {
				j++
			}
			ok := j < len(text)
			if ok && capOnly {
				r, _ := utf8.DecodeRuneInString(text[j:])
				ok = sentenceOpener(r)
			}
			if ok {
				out = append(out, text[start:i+1])
				start = j
			}
			i = j
			continue
		}
		i++
	}
	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

// splitSentences splits text into sentences on terminal punctuation followed
// by whitespace.
func splitSentences(text string) []string {
	return splitAfterTerminators(text, false)
}

// FirstSentence returns the first sentence of text, trimmed.
func FirstSentence(text string) string {
	t := strings.TrimSpace(text)
	if t == "" {
		return ""
	}
	parts := splitSentences(t)
	if len(parts) == 0 {
		return t
	}
	return strings.TrimSpace(parts[0])
}
