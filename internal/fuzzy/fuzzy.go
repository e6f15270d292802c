// Package fuzzy provides edit-distance matching for go-keyopt error
// suggestions. Used by keyopt's ErrorHandler to propose a registered option
// name when an unknown token looks like a typo.
package fuzzy

import (
	"sort"
	"strings"
)

// Matcher finds close candidates for a mistyped input.
type Matcher struct {
	maxDistance int
	minLength   int
}

// NewMatcher creates a matcher with the given maximum edit distance.
func NewMatcher(maxDistance int) *Matcher {
	return &Matcher{
		maxDistance: maxDistance,
		minLength:   2, // don't suggest for very short inputs
	}
}

// Match is one candidate within the allowed distance.
type Match struct {
	Value    string
	Distance int
	Score    float64 // 0.0 to 1.0, higher is better
}

// FindBest returns the best matching candidate, or the empty string when no
// candidate is close enough.
func (m *Matcher) FindBest(input string, candidates []string) string {
	matches := m.FindMatches(input, candidates)
	if len(matches) == 0 {
		return ""
	}
	return matches[0].Value
}

// FindMatches returns all candidates within the allowed distance, best first.
func (m *Matcher) FindMatches(input string, candidates []string) []Match {
	if len(input) < m.minLength {
		return nil
	}

	input = strings.ToLower(input)
	var matches []Match

	for _, candidate := range candidates {
		lower := strings.ToLower(candidate)
		if lower == input {
			continue // exact matches are not fuzzy
		}

		distance := levenshtein(input, lower)
		if distance > m.maxDistance {
			continue
		}
		matches = append(matches, Match{
			Value:    candidate,
			Distance: distance,
			Score:    score(input, lower, distance),
		})
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Score == matches[j].Score {
			if matches[i].Distance == matches[j].Distance {
				return matches[i].Value < matches[j].Value
			}
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Score > matches[j].Score
	})
	return matches
}

// FindBestOption is the convenience entry point used by the error handler.
func FindBestOption(input string, options []string, maxDistance int) string {
	return NewMatcher(maxDistance).FindBest(input, options)
}

// score rates a candidate: shared prefixes and similar lengths beat raw
// distance alone.
func score(input, candidate string, distance int) float64 {
	longest := len(input)
	if len(candidate) > longest {
		longest = len(candidate)
	}
	if longest == 0 {
		return 0
	}

	s := 1.0 - float64(distance)/float64(longest)

	// Prefix bonus: typos usually happen late in the word.
	prefix := 0
	for prefix < len(input) && prefix < len(candidate) && input[prefix] == candidate[prefix] {
		prefix++
	}
	s += 0.1 * float64(prefix) / float64(longest)

	if s > 1.0 {
		s = 1.0
	}
	return s
}

// levenshtein computes edit distance with a two-row rolling buffer.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
