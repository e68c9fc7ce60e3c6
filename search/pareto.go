package search

// FilterPareto walks MappedPaths by time ascending, keeping only entries
// whose space strictly improves a rolling best-known peak — the same
// final filter the deterministic, probabilistic, and parallel drivers all
// share. The result is sorted by Time ascending by construction.
func FilterPareto(results MappedPaths, maxTime int) []Path {
	rolling := Infinity
	out := make([]Path, 0, len(results))
	for t := 0; t <= maxTime; t++ {
		entry, ok := results[t]
		if !ok {
			continue
		}
		if entry.Space < rolling {
			rolling = entry.Space
			out = append(out, Path{Time: t, Space: entry.Space, Steps: entry.Steps})
		}
	}

	return out
}
