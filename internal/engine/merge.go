package engine

// MergeResults concatenates primary then secondary, deduplicating by ID (or
// title when the ID is empty) while preserving first-seen order, and caps the
// output at maxItems. Scores are never consulted: insertion order from the
// two inputs is authoritative, which is what lets behavior-tagged results
// outrank general ones.
func MergeResults(primary, secondary []Result, maxItems int) []Result {
	var out []Result
	seen := make(map[string]bool)
	add := func(r Result) {
		key := r.ID
		if key == "" {
			key = r.Title
		}
		if key == "" || seen[key] {
			return
		}
		seen[key] = true
		out = append(out, r)
	}
	for _, r := range primary {
		add(r)
	}
	for _, r := range secondary {
		add(r)
	}
	if len(out) > maxItems {
		out = out[:maxItems]
	}
	return out
}
