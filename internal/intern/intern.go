// Package intern provides string interning for go-keyopt.
// The registry pre-interns registered option names so the parse loop's
// name lookups reuse canonical strings instead of allocating per token.
package intern

import "sync"

// Interner provides thread-safe string interning.
type Interner struct {
	mu      sync.RWMutex
	strings map[string]string
}

// New creates an interner with the given pre-allocated capacity.
func New(capacity int) *Interner {
	if capacity <= 0 {
		capacity = 32
	}
	return &Interner{strings: make(map[string]string, capacity)}
}

// Intern returns the canonical copy of s, storing it on first sight.
func (in *Interner) Intern(s string) string {
	in.mu.RLock()
	canonical, ok := in.strings[s]
	in.mu.RUnlock()
	if ok {
		return canonical
	}

	in.mu.Lock()
	defer in.mu.Unlock()
	if canonical, ok = in.strings[s]; ok {
		return canonical
	}
	in.strings[s] = s
	return s
}

// Lookup returns the canonical copy of s without storing unseen strings.
// The second result reports whether s was already interned.
func (in *Interner) Lookup(s string) (string, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	canonical, ok := in.strings[s]
	return canonical, ok
}

// PreIntern stores a batch of known strings ahead of parsing.
func (in *Interner) PreIntern(values []string) {
	in.mu.Lock()
	defer in.mu.Unlock()
	for _, s := range values {
		in.strings[s] = s
	}
}

// Len returns the number of interned strings.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.strings)
}
