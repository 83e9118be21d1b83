package engine

import (
	"strings"
	"testing"
)

func resultsOfLen(n, contentLen int) []Result {
	out := make([]Result, n)
	for i := range out {
		out[i] = Result{Title: "T", Content: strings.Repeat("x", contentLen)}
	}
	return out
}

func TestLongContext(t *testing.T) {
	tests := []struct {
		name    string
		results []Result
		want    bool
	}{
		{"few short results", resultsOfLen(4, 100), false},
		{"many results", resultsOfLen(5, 100), true},
		{"single long result", resultsOfLen(1, 601), true},
		{"single result at limit", resultsOfLen(1, 600), false},
		{"empty", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LongContext(tt.results); got != tt.want {
				t.Errorf("LongContext = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDirectContext(t *testing.T) {
	results := []Result{
		{Title: "Education", Content: "BSc Computer Science"},
		{Title: "Projects", Content: "Metrics Hub"},
	}
	want := "[Education] BSc Computer Science\n\n[Projects] Metrics Hub"
	if got := DirectContext(results); got != want {
		t.Errorf("DirectContext = %q, want %q", got, want)
	}
}

func TestSummarizeChunks(t *testing.T) {
	// Each segment is "[A] " plus 100 characters: 104 total.
	results := []Result{
		{Title: "A", Content: strings.Repeat("x", 100)},
		{Title: "A", Content: strings.Repeat("y", 100)},
	}
	seg1 := "[A] " + strings.Repeat("x", 100)
	seg2 := "[A] " + strings.Repeat("y", 100)

	t.Run("everything fits", func(t *testing.T) {
		want := seg1 + "\n\n" + seg2
		if got := SummarizeChunks(results, 500); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("partial fragment appended", func(t *testing.T) {
		// 76 characters of budget remain after the first segment.
		want := seg1 + "\n\n" + seg2[:76]
		if got := SummarizeChunks(results, 180); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("small remainder dropped", func(t *testing.T) {
		// Only 46 characters remain, under the fragment minimum.
		if got := SummarizeChunks(results, 150); got != seg1 {
			t.Errorf("got %q, want first segment only", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		if got := SummarizeChunks(nil, 100); got != "" {
			t.Errorf("got %q, want empty", got)
		}
	})
}
