package keyopt

import "strings"

// DefaultDelimiters is the quote delimiter set used by new token streams.
// A token opened by a delimiter character runs to the next delimiter and may
// contain whitespace.
const DefaultDelimiters = `"`

// TokenStream is a destructive cursor over a single command-line string.
// Consuming a token advances the cursor; a consumed token cannot be re-read
// without an explicit Rewind.
type TokenStream struct {
	input  string
	pos    int
	delims string
}

// NewTokenStream creates a stream over a raw command line.
func NewTokenStream(line string) *TokenStream {
	return &TokenStream{input: line, delims: DefaultDelimiters}
}

// NewTokenStreamFromArgs creates a stream from argv-style arguments. Elements
// containing whitespace are re-quoted so the shell's grouping survives the
// join into a single line.
func NewTokenStreamFromArgs(args []string) *TokenStream {
	var b strings.Builder
	for i, arg := range args {
		if i > 0 {
			b.WriteByte(' ')
		}
		if strings.ContainsAny(arg, " \t") {
			b.WriteByte('"')
			b.WriteString(arg)
			b.WriteByte('"')
		} else {
			b.WriteString(arg)
		}
	}
	return NewTokenStream(b.String())
}

// Delimiters replaces the quote delimiter set and returns the stream for chaining.
func (ts *TokenStream) Delimiters(delims string) *TokenStream {
	ts.delims = delims
	return ts
}

// Pos returns the current cursor position, suitable for a later Rewind.
func (ts *TokenStream) Pos() int {
	return ts.pos
}

// Rewind moves the cursor back to a position previously obtained from Pos.
func (ts *TokenStream) Rewind(pos int) {
	if pos < 0 {
		pos = 0
	}
	if pos > len(ts.input) {
		pos = len(ts.input)
	}
	ts.pos = pos
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func (ts *TokenStream) isDelim(c byte) bool {
	return strings.IndexByte(ts.delims, c) >= 0
}

// Next returns the next token and advances the cursor past it, including one
// trailing delimiter when present. Leading runs of whitespace and empty
// delimited spans are skipped. Returns the empty string at end of stream.
func (ts *TokenStream) Next() string {
	for ts.pos < len(ts.input) {
		c := ts.input[ts.pos]

		if isSpace(c) {
			ts.pos++
			continue
		}

		if ts.isDelim(c) {
			// Delimited token: runs to the matching delimiter, whitespace included.
			ts.pos++
			start := ts.pos
			for ts.pos < len(ts.input) && !ts.isDelim(ts.input[ts.pos]) {
				ts.pos++
			}
			tok := ts.input[start:ts.pos]
			if ts.pos < len(ts.input) {
				ts.pos++ // consume the closing delimiter
			}
			if tok == "" {
				// Adjacent delimiters produce an empty span; keep scanning.
				continue
			}
			return tok
		}

		// Bare token: runs to whitespace or a delimiter.
		start := ts.pos
		for ts.pos < len(ts.input) && !isSpace(ts.input[ts.pos]) && !ts.isDelim(ts.input[ts.pos]) {
			ts.pos++
		}
		tok := ts.input[start:ts.pos]
		if ts.pos < len(ts.input) && isSpace(ts.input[ts.pos]) {
			ts.pos++ // consume one trailing delimiter
		}
		return tok
	}
	return ""
}

// Peek returns the next token without consuming it.
func (ts *TokenStream) Peek() string {
	pos := ts.pos
	tok := ts.Next()
	ts.pos = pos
	return tok
}
