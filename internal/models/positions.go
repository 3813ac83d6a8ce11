package models

// AssignPositions returns a copy of entries where the i-th entry carries
// position i+1. Every entry-list mutation goes through here so that
// positions are always exactly {1..N} with no gaps or duplicates.
func AssignPositions(entries []Entry) []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		e.Position = i + 1
		out[i] = e
	}
	return out
}
