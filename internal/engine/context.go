package engine

import (
	"fmt"
	"strings"
)

// Context assembly limits.
const (
	// DefaultContextChars bounds the assembled context in long-context mode.
	DefaultContextChars = 1200
	// minFragmentChars is the smallest partial segment worth appending when
	// the budget runs out mid-chunk.
	minFragmentChars = 60

	longContextResults = 4
	longContentChars   = 600
)

// LongContext decides whether extractive truncation is needed: more than
// four results, or any single result with content over 600 characters.
func LongContext(results []Result) bool {
	if len(results) > longContextResults {
		return true
	}
	for _, r := range results {
		if len(r.Content) > longContentChars {
			return true
		}
	}
	return false
}

// DirectContext joins every result as "[title] content" with blank-line
// separators, with no truncation.
func DirectContext(results []Result) string {
	segments := make([]string, len(results))
	for i, r := range results {
		segments[i] = segment(r)
	}
	return strings.Join(segments, "\n\n")
}

// SummarizeChunks greedily concatenates "[title] content" segments in input
// order until the budget would be exceeded. If the next segment does not fit
// but at least 60 characters of budget remain, that many characters of it
// are appended as a final fragment. The result may exceed maxChars by at
// most the joined fragment, never by a whole segment.
func SummarizeChunks(results []Result, maxChars int) string {
	var assembled []string
	total := 0
	for _, r := range results {
		seg := segment(r)
		if total+len(seg) > maxChars {
			if remaining := maxChars - total; remaining > minFragmentChars {
				assembled = append(assembled, seg[:remaining])
			}
			break
		}
		assembled = append(assembled, seg)
		total += len(seg)
	}
	return strings.Join(assembled, "\n\n")
}

func segment(r Result) string {
	return fmt.Sprintf("[%s] %s", r.Title, r.Content)
}
