package fuzzy

import "testing"

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "", 0},
		{"abc", "abc", 0},
		{"abc", "", 3},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"move", "mvoe", 2},
		{"delete", "delet", 1},
	}

	for _, tt := range tests {
		if got := levenshtein(tt.a, tt.b); got != tt.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFindBestOption(t *testing.T) {
	options := []string{"move", "rotate", "delete", "insert"}

	if got := FindBestOption("mvoe", options, 2); got != "move" {
		t.Errorf("expected 'move' for 'mvoe', got %q", got)
	}
	if got := FindBestOption("delet", options, 2); got != "delete" {
		t.Errorf("expected 'delete' for 'delet', got %q", got)
	}
	if got := FindBestOption("zzzzzz", options, 2); got != "" {
		t.Errorf("expected no suggestion for 'zzzzzz', got %q", got)
	}
}

func TestShortInputsNotSuggested(t *testing.T) {
	if got := FindBestOption("x", []string{"xy", "xz"}, 2); got != "" {
		t.Errorf("expected no suggestion for single-char input, got %q", got)
	}
}

func TestExactMatchSkipped(t *testing.T) {
	// An exact match is not a typo; the caller already failed the lookup.
	matches := NewMatcher(2).FindMatches("move", []string{"move", "mode"})
	for _, m := range matches {
		if m.Value == "move" {
			t.Error("exact match should not appear in fuzzy results")
		}
	}
}

func TestPrefixPreferred(t *testing.T) {
	// Both are distance 1 from "rotat"; the shared-prefix candidate wins.
	got := NewMatcher(2).FindBest("rotat", []string{"rotate", "notat"})
	if got != "rotate" {
		t.Errorf("expected prefix match 'rotate', got %q", got)
	}
}
