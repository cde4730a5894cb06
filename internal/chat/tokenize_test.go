package chat

import (
	"strings"
	"testing"
)

func TestTokenizeRoundTrip(t *testing.T) {
	cases := []string{
		"hello world",
		"one two three",
		"  leading and   uneven\tspacing\n",
		"single",
		"line one\nline two\n",
	}
	for _, in := range cases {
		tokens := Tokenize(in)
		if len(tokens) == 0 {
			t.Fatalf("Tokenize(%q) returned no tokens", in)
		}
		if got := strings.Join(tokens, ""); got != in {
			t.Fatalf("concatenated tokens = %q, want %q", got, in)
		}
	}
}

func TestTokenizeDeterministic(t *testing.T) {
	in := "the quick brown fox"
	a := Tokenize(in)
	b := Tokenize(in)
	if len(a) != len(b) {
		t.Fatalf("token counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("token %d differs: %q vs %q", i, a[i], b[i])
		}
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if tokens := Tokenize(""); tokens != nil {
		t.Fatalf("Tokenize(\"\") = %v, want nil", tokens)
	}
}

func TestTokenizeOneTokenPerWord(t *testing.T) {
	tokens := Tokenize("a b c")
	if len(tokens) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(tokens), tokens)
	}
}
