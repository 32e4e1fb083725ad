package wordoccur

// Occurrences maps a token to the number of times it was seen.
type Occurrences map[string]int

// Count adds the occurrences of every token of text to acc and returns it.
// A nil acc is replaced by a fresh map, so passing the result back in
// accumulates across many fragments (e.g. the lines of a file) while memory
// grows only with the number of distinct tokens.
//
// Empty tokens are skipped.
func Count(text string, t Tokenizer, acc Occurrences) Occurrences {
	if acc == nil {
		acc = make(Occurrences)
	}
	for w := range t.Tokens(text) {
		if w == "" {
			continue
		}
		acc[w]++
	}
	return acc
}

// Merge adds the counts of src into dst and returns dst.
// A nil dst is allocated.
func Merge(dst, src Occurrences) Occurrences {
	if dst == nil {
		dst = make(Occurrences, len(src))
	}
	for w, n := range src {
		dst[w] += n
	}
	return dst
}

// Total returns the sum of all counts in m.
func Total(m Occurrences) int {
	sum := 0
	for _, n := range m {
		sum += n
	}
	return sum
}
