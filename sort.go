package wordoccur

import (
	"cmp"
	"slices"
)

// Entry is one row of a report.
type Entry struct {
	Word  string
	Count int
}

// SortByOccurrences returns the entries of m ordered by count descending,
// equal counts ordered by word ascending.
//
// The order is built in two stable passes: by word first, then by count.
// The second pass keeps the alphabetical order among equal counts.
func SortByOccurrences(m Occurrences) []Entry {
	out := make([]Entry, 0, len(m))
	for w, n := range m {
		out = append(out, Entry{Word: w, Count: n})
	}
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Compare(a.Word, b.Word)
	})
	slices.SortStableFunc(out, func(a, b Entry) int {
		return cmp.Compare(b.Count, a.Count)
	})
	return out
}
