// Package wordoccur counts word occurrences in text and reports them
// ordered by descending frequency.
//
// The pipeline has three stages that compose through small interfaces:
//
//	m := wordoccur.Count(line, wordoccur.Words, m)   // Tokenizer -> Occurrences
//	entries := wordoccur.SortByOccurrences(m)        // Occurrences -> []Entry
//	wordoccur.Print(os.Stdout, entries, nil)         // []Entry -> "word: count" lines
//
// CountReader drives Count line by line over an io.Reader with a single
// running accumulator.
package wordoccur

import (
	"iter"
	"regexp"
	"strings"
)

// Tokenizer splits text into a lazy sequence of tokens.
// Sequences must be finite and restartable: ranging twice yields the same tokens.
type Tokenizer interface {
	Tokens(text string) iter.Seq[string]
}

// TokenizerFunc adapts a plain function to Tokenizer.
type TokenizerFunc func(text string) iter.Seq[string]

// Tokens calls f(text).
func (f TokenizerFunc) Tokens(text string) iter.Seq[string] { return f(text) }

// wordRun matches a maximal run of word characters, apostrophes and hyphens.
// Word characters are Unicode letters, numbers and underscore.
var wordRun = regexp.MustCompile(`[\p{L}\p{N}_'-]+`)

// Words is the default tokenizer. A token is a match of \b([\w'-]+)\b:
// inside a run, the word-boundary anchors drop leading and trailing
// apostrophes and hyphens, so "text'!" yields "text" and "mary's" is kept whole.
var Words Tokenizer = TokenizerFunc(words)

// Fields splits on white space only.
var Fields Tokenizer = TokenizerFunc(strings.FieldsSeq)

func words(text string) iter.Seq[string] {
	return func(yield func(string) bool) {
		rest := text
		for {
			loc := wordRun.FindStringIndex(rest)
			if loc == nil {
				return
			}
			w := strings.Trim(rest[loc[0]:loc[1]], "'-")
			rest = rest[loc[1]:]
			if w == "" {
				continue
			}
			if !yield(w) {
				return
			}
		}
	}
}
