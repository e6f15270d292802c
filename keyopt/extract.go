package keyopt

import (
	"math"
	"strconv"
	"unicode/utf8"
)

// ValueKind identifies the semantic type of a single option parameter.
type ValueKind uint8

const (
	KindInt ValueKind = iota
	KindInt64
	KindUint
	KindUint64
	KindChar
	KindFloat
	KindUFloat
	KindString
)

// Label returns the fixed usage label for the kind, used in error messages
// and help text.
func (k ValueKind) Label() string {
	switch k {
	case KindInt:
		return "<int>"
	case KindInt64:
		return "<int64>"
	case KindUint:
		return "<uint>"
	case KindUint64:
		return "<uint64>"
	case KindChar:
		return "<char>"
	case KindFloat:
		return "<float>"
	case KindUFloat:
		return "<ufloat>"
	case KindString:
		return "<string>"
	default:
		return "<?>"
	}
}

// Value holds one extracted parameter. Storage is typed per kind to avoid
// interface boxing; use the accessor matching the declared kind.
type Value struct {
	Kind ValueKind

	intVal   int64
	uintVal  uint64
	floatVal float64
	charVal  rune
	strVal   string
}

// Int returns the value of an <int> parameter.
func (v Value) Int() int { return int(v.intVal) }

// Int64 returns the value of an <int64> parameter.
func (v Value) Int64() int64 { return v.intVal }

// Uint returns the value of a <uint> parameter.
func (v Value) Uint() uint { return uint(v.uintVal) }

// Uint64 returns the value of a <uint64> parameter.
func (v Value) Uint64() uint64 { return v.uintVal }

// Char returns the value of a <char> parameter.
func (v Value) Char() rune { return v.charVal }

// Float returns the value of a <float> or <ufloat> parameter.
func (v Value) Float() float64 { return v.floatVal }

// Str returns the value of a <string> parameter.
func (v Value) Str() string { return v.strVal }

// Values is the ordered list of parameters extracted for one option, in
// declaration order.
type Values []Value

// extractValue pulls one token from the stream and converts it to the
// requested kind. Failures report the expected usage label and the literal
// text that failed to convert.
func extractValue(ts *TokenStream, kind ValueKind) (Value, error) {
	tok := ts.Next()
	if tok == "" {
		return Value{}, &ParseError{
			Type:    ErrorTypeMissingValue,
			Message: "missing parameter, expected " + kind.Label(),
			Usage:   kind.Label(),
		}
	}
	return convertToken(tok, kind)
}

// convertToken applies the per-kind conversion rules to a single token.
func convertToken(tok string, kind ValueKind) (Value, error) {
	switch kind {
	case KindInt:
		n, ok := parseSigned(tok)
		if !ok || n < math.MinInt || n > math.MaxInt {
			return Value{}, conversionError(kind, tok)
		}
		return Value{Kind: kind, intVal: n}, nil

	case KindInt64:
		n, ok := parseSigned(tok)
		if !ok {
			return Value{}, conversionError(kind, tok)
		}
		return Value{Kind: kind, intVal: n}, nil

	case KindUint:
		n, ok := parseUnsigned(tok)
		if !ok || n > math.MaxUint {
			return Value{}, conversionError(kind, tok)
		}
		return Value{Kind: kind, uintVal: n}, nil

	case KindUint64:
		n, ok := parseUnsigned(tok)
		if !ok {
			return Value{}, conversionError(kind, tok)
		}
		return Value{Kind: kind, uintVal: n}, nil

	case KindChar:
		// Exactly one character; any additional character is a failure.
		r, size := utf8.DecodeRuneInString(tok)
		if r == utf8.RuneError || size != len(tok) {
			return Value{}, conversionError(kind, tok)
		}
		return Value{Kind: kind, charVal: r}, nil

	case KindFloat:
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Value{}, conversionError(kind, tok)
		}
		return Value{Kind: kind, floatVal: f}, nil

	case KindUFloat:
		// Rejects a leading '-' exactly like the unsigned-integer path.
		if tok[0] == '-' {
			return Value{}, conversionError(kind, tok)
		}
		f, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return Value{}, conversionError(kind, tok)
		}
		return Value{Kind: kind, floatVal: f}, nil

	case KindString:
		return Value{Kind: kind, strVal: tok}, nil

	default:
		return Value{}, &ParseError{
			Type:    ErrorTypeInternal,
			Message: "unsupported parameter kind",
		}
	}
}

func conversionError(kind ValueKind, literal string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeInvalidValue,
		Message: "expected " + kind.Label() + ", got \"" + literal + "\"",
		Literal: literal,
		Usage:   kind.Label(),
	}
}

// parseSigned parses a signed integer token: optional leading '-', decimal
// first, then the whole token re-attempted as bare base-16 when the decimal
// parse cannot consume every character. Both attempts must exhaust the token.
func parseSigned(tok string) (int64, bool) {
	body := tok
	negative := false
	if body != "" && body[0] == '-' {
		negative = true
		body = body[1:]
	}
	if body == "" {
		return 0, false
	}

	n, ok := parseDecimal(body)
	if !ok {
		// Decimal left unconsumed trailing characters; retry as bare hex.
		n, ok = parseHex(body)
		if !ok {
			return 0, false
		}
	}

	if negative {
		return -n, true
	}
	return n, true
}

// parseUnsigned parses an unsigned integer token with the same decimal/hex
// fallback; a leading '-' is itself a failure.
func parseUnsigned(tok string) (uint64, bool) {
	if tok == "" || tok[0] == '-' {
		return 0, false
	}

	n, ok := parseUdecimal(tok)
	if !ok {
		n, ok = parseUhex(tok)
		if !ok {
			return 0, false
		}
	}
	return n, true
}

// parseDecimal parses base-10 using ASCII math; every character must be a digit.
func parseDecimal(s string) (int64, bool) {
	var result int64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		digit := int64(c - '0')
		if result > (math.MaxInt64-digit)/10 {
			return 0, false
		}
		result = result*10 + digit
	}
	return result, true
}

// parseHex parses bare base-16 digits (no 0x prefix); every character must be
// a hex digit.
func parseHex(s string) (int64, bool) {
	var result int64
	for i := 0; i < len(s); i++ {
		digit, ok := hexDigit(s[i])
		if !ok {
			return 0, false
		}
		if result > (math.MaxInt64-digit)/16 {
			return 0, false
		}
		result = result*16 + digit
	}
	return result, true
}

func parseUdecimal(s string) (uint64, bool) {
	var result uint64
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		digit := uint64(c - '0')
		if result > (math.MaxUint64-digit)/10 {
			return 0, false
		}
		result = result*10 + digit
	}
	return result, true
}

func parseUhex(s string) (uint64, bool) {
	var result uint64
	for i := 0; i < len(s); i++ {
		digit, ok := hexDigit(s[i])
		if !ok {
			return 0, false
		}
		udigit := uint64(digit)
		if result > (math.MaxUint64-udigit)/16 {
			return 0, false
		}
		result = result*16 + udigit
	}
	return result, true
}

func hexDigit(c byte) (int64, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int64(c - '0'), true
	case c >= 'a' && c <= 'f':
		return int64(c-'a') + 10, true
	case c >= 'A' && c <= 'F':
		return int64(c-'A') + 10, true
	default:
		return 0, false
	}
}
