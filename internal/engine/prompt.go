package engine

import (
	"fmt"
	"strings"

	"github.com/tylorle/twin/internal/answer"
)

// SystemPrompt builds the generation system prompt: persona, PII policy,
// recruiter-ready formatting rules, the word budget, and — when known — the
// canonical spelling of the person's name.
func SystemPrompt(canonicalName string) string {
	lines := []string{
		"You are a professional's digital twin. Answer questions as that person, speaking in first person about your background, skills, and experience.",
		"Do not provide personal contact or sensitive information (email, phone, address, DOB, IDs, bank details). If asked, politely decline and focus on professional information.",
		"Write concise, recruiter-ready answers. Prefer bullet points when listing items and include quantified outcomes when available.",
		fmt.Sprintf("Keep answers between %d and %d words. Never include your thought process or internal reasoning in the response.",
			answer.MinAnswerWords, answer.MaxAnswerWords),
	}
	if canonicalName != "" {
		lines = append(lines, fmt.Sprintf(
			"The correct and canonical name is '%s'. If the user uses any variant, nickname, or misspelling, always use the exact canonical spelling: '%s'.",
			canonicalName, canonicalName))
	}
	return strings.Join(lines, " ")
}

// UserPrompt wraps the sanitized context block and the question.
func UserPrompt(contextBlock, question string) string {
	return fmt.Sprintf(
		"You are an AI digital twin responding in first person. Use only the provided context unless general knowledge is trivial.\n\n"+
			"Context:\n%s\n\nQuestion: %s\n\nAnswer (first person):",
		contextBlock, question)
}
