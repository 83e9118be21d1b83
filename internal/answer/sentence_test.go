package answer

import (
	"reflect"
	"testing"
)

func TestSplitAfterTerminators(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		capOnly bool
		want    []string
	}{
		{
			name:    "plain split",
			in:      "First part. Second part.",
			capOnly: false,
			want:    []string{"First part.", "Second part."},
		},
		{
			name:    "version numbers do not split",
			in:      "Works in v1.2 builds. Next line.",
			capOnly: false,
			want:    []string{"Works in v1.2 builds.", "Next line."},
		},
		{
			name:    "capOnly ignores lowercase continuation",
			in:      "end. then more",
			capOnly: true,
			want:    []string{"end. then more"},
		},
		{
			name:    "lowercase continuation splits without capOnly",
			in:      "end. then more",
			capOnly: false,
			want:    []string{"end.", "then more"},
		},
		{
			name:    "quote opens a sentence",
			in:      "I agreed. \"Ship it\" was the call.",
			capOnly: true,
			want:    []string{"I agreed.", "\"Ship it\" was the call."},
		},
		{
			name:    "no terminators",
			in:      "no boundaries here",
			capOnly: false,
			want:    []string{"no boundaries here"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitAfterTerminators(tt.in, tt.capOnly)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitAfterTerminators(%q, %v) = %#v, want %#v", tt.in, tt.capOnly, got, tt.want)
			}
		})
	}
}

func TestFirstSentence(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello there. Second part.", "Hello there."},
		{"no terminator at all", "no terminator at all"},
		{"  padded sentence.  ", "padded sentence."},
		{"", ""},
	}
	for _, tt := range tests {
		if got := FirstSentence(tt.in); got != tt.want {
			t.Errorf("FirstSentence(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
