package keyopt

import (
	"errors"
	"fmt"

	"github.com/dzonerzy/go-keyopt/internal/fuzzy"
)

// ErrHelpShown is returned by Run when a reserved help token ("?" or "help")
// was encountered. Nothing is queued and no callbacks execute for that run.
var ErrHelpShown = errors.New("help shown")

// ErrorType represents error categories for registration and run failures.
type ErrorType string

const (
	ErrorTypeUnknownOption      ErrorType = "unknown_option"
	ErrorTypeInvalidValue       ErrorType = "invalid_value"
	ErrorTypeMissingValue       ErrorType = "missing_value"
	ErrorTypeRegistration       ErrorType = "registration"
	ErrorTypeDuplicateOption    ErrorType = "duplicate_option"
	ErrorTypeMissingRequirement ErrorType = "missing_requirement"
	ErrorTypeConflict           ErrorType = "conflict"
	ErrorTypeMissingRequired    ErrorType = "missing_required"
	ErrorTypeInternal           ErrorType = "internal_error"
)

// ParseError carries the error category plus the context needed for a useful
// message: the owning option, the literal text that failed to convert, and
// the expected usage label.
type ParseError struct {
	Type       ErrorType
	Message    string
	Option     string
	Literal    string
	Usage      string
	Suggestion string
}

func (e *ParseError) Error() string {
	return e.Message
}

// NewParseError creates a ParseError with the given type and message.
func NewParseError(typ ErrorType, message string) *ParseError {
	return &ParseError{Type: typ, Message: message}
}

// asParseError normalizes an arbitrary error into a ParseError so the run
// loop can report uniformly.
func asParseError(err error) *ParseError {
	perr := &ParseError{}
	if errors.As(err, &perr) {
		return perr
	}
	return &ParseError{Type: ErrorTypeInternal, Message: err.Error()}
}

// ErrorHandler decorates and displays run-time failures. Suggestions for
// unknown options use fuzzy matching and are opt-in.
type ErrorHandler struct {
	suggestOptions bool
	maxDistance    int
	customHandlers map[ErrorType]func(*ParseError) *ParseError
}

// NewErrorHandler creates an error handler with defaults.
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{
		suggestOptions: false, // user must opt-in
		maxDistance:    2,
		customHandlers: make(map[ErrorType]func(*ParseError) *ParseError),
	}
}

// SuggestOptions enables/disables fuzzy suggestions for unknown options.
func (eh *ErrorHandler) SuggestOptions(enabled bool) *ErrorHandler {
	eh.suggestOptions = enabled
	return eh
}

// MaxDistance sets the maximum edit distance for suggestions.
func (eh *ErrorHandler) MaxDistance(distance int) *ErrorHandler {
	eh.maxDistance = distance
	return eh
}

// Handle registers a custom handler for a specific error type.
func (eh *ErrorHandler) Handle(typ ErrorType, handler func(*ParseError) *ParseError) *ErrorHandler {
	eh.customHandlers[typ] = handler
	return eh
}

// Process applies custom handlers and attaches suggestions where applicable.
func (eh *ErrorHandler) Process(perr *ParseError, reg *Registry) *ParseError {
	if handler, exists := eh.customHandlers[perr.Type]; exists {
		perr = handler(perr)
	}

	if perr.Type == ErrorTypeUnknownOption && eh.suggestOptions && perr.Option != "" {
		names := make([]string, 0, len(reg.options))
		for name := range reg.options {
			names = append(names, name)
		}
		for alias := range reg.aliases {
			names = append(names, alias)
		}
		if best := fuzzy.FindBestOption(perr.Option, names, eh.maxDistance); best != "" {
			perr.Suggestion = fmt.Sprintf("Did you mean '%s'?", best)
		}
	}

	return perr
}

// Display writes the error message, and any suggestion, to the registry's
// error writer. Messages are colored when the terminal supports it.
func (eh *ErrorHandler) Display(perr *ParseError, reg *Registry) {
	w := reg.IO().Err()
	pal := reg.IO().Palette()

	fmt.Fprintf(w, "%s %s\n", pal.Red("Error:"), perr.Message)
	if perr.Suggestion != "" {
		fmt.Fprintf(w, "  %s\n", pal.Yellow(perr.Suggestion))
	}
}
