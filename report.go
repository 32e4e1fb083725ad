package wordoccur

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Formatter renders one report line, without the trailing newline.
type Formatter interface {
	Format(e Entry) string
}

// FormatterFunc adapts a plain function to Formatter.
type FormatterFunc func(e Entry) string

// Format calls f(e).
func (f FormatterFunc) Format(e Entry) string { return f(e) }

// ColonFormatter renders "word: count".
var ColonFormatter Formatter = FormatterFunc(func(e Entry) string {
	return e.Word + ": " + strconv.Itoa(e.Count)
})

// JSONFormatter renders {"word":"...","count":N}.
var JSONFormatter Formatter = FormatterFunc(func(e Entry) string {
	b, err := json.Marshal(jsonEntry{Word: e.Word, Count: e.Count})
	if err != nil {
		// a string and an int always marshal
		panic(err)
	}
	return string(b)
})

type jsonEntry struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Print writes f(e) followed by a newline for every entry, in order.
// A nil f means ColonFormatter. Output stops at the first write error.
func Print(w io.Writer, entries []Entry, f Formatter) error {
	if f == nil {
		f = ColonFormatter
	}
	for _, e := range entries {
		if _, err := io.WriteString(w, f.Format(e)+"\n"); err != nil {
			return errors.Wrapf(err, "write %q", e.Word)
		}
	}
	return nil
}

// Report sorts m and prints it.
func Report(w io.Writer, m Occurrences, f Formatter) error {
	return Print(w, SortByOccurrences(m), f)
}
