// Package freqrank counts token occurrences and produces rank-ordered
// frequency tables.
package freqrank

import "sort"

// Entry is one (rank, word, count) row of a frequency table.
type Entry struct {
	Rank  int
	Word  string
	Count int
}

// Table is a descending-frequency ranking of a token sequence.
type Table struct {
	Total   int // token count including repeats
	Unique  int // distinct token count before any top-N truncation
	Entries []Entry
}

// Rank counts the tokens and returns the table ordered by descending
// frequency. Equal-frequency words keep the relative order in which they were
// first counted; no secondary key is imposed. topN > 0 truncates the table to
// the highest-frequency entries, clamping silently when fewer exist.
func Rank(tokens []string, topN int) Table {
	counts := make(map[string]int, len(tokens))
	order := make([]string, 0, len(tokens)/2)
	for _, tok := range tokens {
		if counts[tok] == 0 {
			order = append(order, tok)
		}
		counts[tok]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	return build(len(tokens), len(order), order, counts, topN)
}

// FromCounts ranks an already-aggregated count map, as produced by merging
// per-document counts. A count map carries no insertion order, so ties break
// alphabetically to keep the table deterministic.
func FromCounts(counts map[string]int, topN int) Table {
	total := 0
	order := make([]string, 0, len(counts))
	for word, count := range counts {
		order = append(order, word)
		total += count
	}
	sort.Slice(order, func(i, j int) bool {
		if counts[order[i]] != counts[order[j]] {
			return counts[order[i]] > counts[order[j]]
		}
		return order[i] < order[j]
	})

	return build(total, len(counts), order, counts, topN)
}

func build(total, unique int, order []string, counts map[string]int, topN int) Table {
	if topN > 0 && topN < len(order) {
		order = order[:topN]
	}

	entries := make([]Entry, len(order))
	for i, word := range order {
		entries[i] = Entry{Rank: i + 1, Word: word, Count: counts[word]}
	}

	return Table{Total: total, Unique: unique, Entries: entries}
}
