// Package mapreduce aggregates per-document word counts into corpus-wide
// counts.
package mapreduce

// Map generates the word count map for a single document's token stream.
func Map(tokens []string) map[string]int {
	counts := make(map[string]int, len(tokens)/2)
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

// Reduce merges a slice of per-document count maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
