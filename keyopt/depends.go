package keyopt

import (
	"slices"
	"strings"
)

// validateQueue checks every queued option's dependency sets against the rest
// of the queue. The owner itself is excluded from the co-occurrence set, so an
// option never satisfies or violates its own constraints. The first offending
// option produces one combined error naming the full missing or conflicting
// list; any violation cancels the whole queue.
func (r *Registry) validateQueue(queue []queued) *ParseError {
	if len(queue) == 0 {
		return nil
	}

	names := make([]string, 0, len(queue))
	for _, q := range queue {
		names = append(names, q.opt.Name)
	}
	slices.Sort(names)

	for _, q := range queue {
		others := withoutOne(names, q.opt.Name)

		if q.opt.Standalone && len(others) > 0 {
			conflicting := dedupSorted(others)
			return &ParseError{
				Type:   ErrorTypeConflict,
				Option: q.opt.Name,
				Message: "option '" + q.opt.displayName() + "' must be used alone, but found: " +
					strings.Join(conflicting, ", "),
			}
		}

		if len(q.opt.Requires) > 0 {
			required := append([]string(nil), q.opt.Requires...)
			slices.Sort(required)
			if missing := sortedDiff(dedupSorted(required), others); len(missing) > 0 {
				return &ParseError{
					Type:   ErrorTypeMissingRequirement,
					Option: q.opt.Name,
					Message: "option '" + q.opt.displayName() + "' requires missing options: " +
						strings.Join(missing, ", "),
				}
			}
		}

		if len(q.opt.Conflicts) > 0 {
			conflicts := append([]string(nil), q.opt.Conflicts...)
			slices.Sort(conflicts)
			if present := sortedIntersect(dedupSorted(conflicts), dedupSorted(others)); len(present) > 0 {
				return &ParseError{
					Type:   ErrorTypeConflict,
					Option: q.opt.Name,
					Message: "option '" + q.opt.displayName() + "' cannot be combined with: " +
						strings.Join(present, ", "),
				}
			}
		}
	}

	return nil
}

// checkRequired verifies that every option registered as required appears in
// the queue. One combined error names all absentees.
func (r *Registry) checkRequired(queue []queued) *ParseError {
	var missing []string
	for name, opt := range r.options {
		if !opt.Required {
			continue
		}
		found := false
		for _, q := range queue {
			if q.opt.Name == name {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	slices.Sort(missing)
	return &ParseError{
		Type:    ErrorTypeMissingRequired,
		Message: "required options not specified: " + strings.Join(missing, ", "),
	}
}

// withoutOne returns sorted with a single occurrence of name removed. The
// input must be sorted; the result shares no storage with it.
func withoutOne(sorted []string, name string) []string {
	idx, found := slices.BinarySearch(sorted, name)
	out := make([]string, 0, len(sorted)-1)
	if !found {
		return append(out, sorted...)
	}
	out = append(out, sorted[:idx]...)
	return append(out, sorted[idx+1:]...)
}

// sortedDiff returns the elements of a not present in b. Both inputs must be
// sorted; the result preserves a's order.
func sortedDiff(a, b []string) []string {
	var out []string
	i, j := 0, 0
	for i < len(a) {
		switch {
		case j >= len(b) || a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] == b[j]:
			i++
			j++
		default:
			j++
		}
	}
	return out
}

// sortedIntersect returns the elements present in both a and b. Both inputs
// must be sorted and deduplicated.
func sortedIntersect(a, b []string) []string {
	var out []string
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, a[i])
			i++
			j++
		case a[i] < b[j]:
			i++
		default:
			j++
		}
	}
	return out
}

// dedupSorted collapses adjacent duplicates in a sorted slice.
func dedupSorted(sorted []string) []string {
	return slices.Compact(slices.Clone(sorted))
}
