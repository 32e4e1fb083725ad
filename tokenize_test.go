package wordoccur

import (
	"iter"
	"slices"
	"testing"
)

func TestWordsTokens(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"punctuation only", " .,;:!? '' -- ", nil},
		{
			"punctuation stripped",
			"some. mary's text'! ;with:?! , texts, ,occurrences?",
			[]string{"some", "mary's", "text", "with", "texts", "occurrences"},
		},
		{"case kept", "Some some SOME", []string{"Some", "some", "SOME"}},
		{"hyphen inside", "full-stack state-of-the-art", []string{"full-stack", "state-of-the-art"}},
		{"edge hyphens and quotes", "-dash- 'quoted' --x''", []string{"dash", "quoted", "x"}},
		{"underscore and digits", "snake_case w3 42", []string{"snake_case", "w3", "42"}},
		{"unicode letters", "naïve café, Straße", []string{"naïve", "café", "Straße"}},
		{"newline", "line one\n", []string{"line", "one"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := slices.Collect(Words.Tokens(tt.in))
			if !slices.Equal(got, tt.want) {
				t.Fatalf("Tokens(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestWordsRestartable(t *testing.T) {
	seq := Words.Tokens("to be or not to be")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	if !slices.Equal(first, second) {
		t.Fatalf("second pass = %q, want %q", second, first)
	}
}

func TestWordsStopsEarly(t *testing.T) {
	var got []string
	for w := range Words.Tokens("a b c d") {
		got = append(got, w)
		if len(got) == 2 {
			break
		}
	}
	if want := []string{"a", "b"}; !slices.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestFieldsTokens(t *testing.T) {
	got := slices.Collect(Fields.Tokens("  w3\tw1  w2,\n"))
	if want := []string{"w3", "w1", "w2,"}; !slices.Equal(got, want) {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestTokenizerFunc(t *testing.T) {
	var tok Tokenizer = TokenizerFunc(func(string) iter.Seq[string] {
		return slices.Values([]string{"x", "y"})
	})
	if got := slices.Collect(tok.Tokens("ignored")); !slices.Equal(got, []string{"x", "y"}) {
		t.Fatalf("got %q", got)
	}
}
