package profile

import (
	"fmt"
	"testing"
)

func TestQueryCatalog(t *testing.T) {
	if len(QueryCatalog) != 40 {
		t.Fatalf("catalog has %d entries, want 40", len(QueryCatalog))
	}
	for i, q := range QueryCatalog {
		want := fmt.Sprintf("Q%02d", i+1)
		if q.ID != want {
			t.Errorf("entry %d: ID = %q, want %q", i, q.ID, want)
		}
		if q.Text == "" {
			t.Errorf("entry %s has empty text", q.ID)
		}
	}
}

func TestPIIQueryIDs(t *testing.T) {
	if len(PIIQueryIDs) != 2 || !PIIQueryIDs["Q36"] || !PIIQueryIDs["Q37"] {
		t.Fatalf("PIIQueryIDs = %v, want exactly Q36 and Q37", PIIQueryIDs)
	}
	for _, q := range QueryCatalog {
		if PIIQueryIDs[q.ID] && q.Behavioral {
			t.Errorf("%s is both PII and behavioral", q.ID)
		}
	}
}
