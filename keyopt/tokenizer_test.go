package keyopt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func drain(ts *TokenStream) []string {
	var out []string
	for {
		tok := ts.Next()
		if tok == "" {
			return out
		}
		out = append(out, tok)
	}
}

func TestTokenStreamNext(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"bare tokens", "copy from to", []string{"copy", "from", "to"}},
		{"whitespace runs", "  copy \t  from   to  ", []string{"copy", "from", "to"}},
		{"quoted token keeps spaces", `name "John Doe" age 3`, []string{"name", "John Doe", "age", "3"}},
		{"adjacent delimiters skipped", `a "" b`, []string{"a", "b"}},
		{"unterminated quote runs to end", `say "hello wor`, []string{"say", "hello wor"}},
		{"delimiter splits bare token", `x"y"z`, []string{"x", "y", "z"}},
		{"tabs as separators", "a\tb\tc", []string{"a", "b", "c"}},
		{"empty input", "", nil},
		{"only whitespace", "   \t ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := drain(NewTokenStream(tt.input))
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("tokens mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenStreamCustomDelimiters(t *testing.T) {
	ts := NewTokenStream(`greet 'hello there' "not special"`).Delimiters("'")
	want := []string{"greet", "hello there", `"not`, `special"`}
	if diff := cmp.Diff(want, drain(ts)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenStreamRewind(t *testing.T) {
	ts := NewTokenStream("first second third")

	if tok := ts.Next(); tok != "first" {
		t.Fatalf("Next() = %q, want %q", tok, "first")
	}

	pos := ts.Pos()
	if tok := ts.Next(); tok != "second" {
		t.Fatalf("Next() = %q, want %q", tok, "second")
	}

	ts.Rewind(pos)
	if tok := ts.Next(); tok != "second" {
		t.Errorf("Next() after Rewind = %q, want %q", tok, "second")
	}
	if tok := ts.Next(); tok != "third" {
		t.Errorf("Next() = %q, want %q", tok, "third")
	}
	if tok := ts.Next(); tok != "" {
		t.Errorf("Next() at end = %q, want empty", tok)
	}
}

func TestTokenStreamRewindClamps(t *testing.T) {
	ts := NewTokenStream("abc")
	ts.Rewind(-10)
	if ts.Pos() != 0 {
		t.Errorf("Pos() = %d, want 0", ts.Pos())
	}
	ts.Rewind(1000)
	if ts.Pos() != 3 {
		t.Errorf("Pos() = %d, want 3", ts.Pos())
	}
}

func TestTokenStreamPeek(t *testing.T) {
	ts := NewTokenStream("alpha beta")
	if tok := ts.Peek(); tok != "alpha" {
		t.Fatalf("Peek() = %q, want %q", tok, "alpha")
	}
	if tok := ts.Next(); tok != "alpha" {
		t.Errorf("Next() after Peek = %q, want %q", tok, "alpha")
	}
}

func TestNewTokenStreamFromArgs(t *testing.T) {
	ts := NewTokenStreamFromArgs([]string{"name", "John Doe", "age", "42"})
	want := []string{"name", "John Doe", "age", "42"}
	if diff := cmp.Diff(want, drain(ts)); diff != "" {
		t.Errorf("tokens mismatch (-want +got):\n%s", diff)
	}
}
