package engine

import (
	"strings"
	"testing"
)

func TestSystemPrompt(t *testing.T) {
	p := SystemPrompt("Jordan Avery")
	for _, want := range []string{"digital twin", "first person", "Jordan Avery", "between 50 and 200 words"} {
		if !strings.Contains(p, want) {
			t.Errorf("system prompt missing %q", want)
		}
	}

	anon := SystemPrompt("")
	if strings.Contains(anon, "canonical name is") {
		t.Error("nameless prompt still pins a canonical name")
	}
}

func TestUserPrompt(t *testing.T) {
	p := UserPrompt("[Education] BSc", "What did you study?")
	if !strings.Contains(p, "Context:\n[Education] BSc") {
		t.Errorf("prompt missing context block: %q", p)
	}
	if !strings.Contains(p, "Question: What did you study?") {
		t.Errorf("prompt missing question: %q", p)
	}
	if !strings.HasSuffix(p, "Answer (first person):") {
		t.Errorf("prompt missing answer cue: %q", p)
	}
}
