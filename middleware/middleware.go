// Package middleware provides dispatch interceptors for go-keyopt option
// callbacks: Logger, Recovery, Timing, and Validator.
//
// The package defines its own Context interface to avoid an import cycle with
// the keyopt package; *keyopt.Context satisfies it. Middleware wraps the
// callback of every dispatched option, in registration order.
package middleware

// Context describes what middleware may observe about the option being
// dispatched. It is implemented by *keyopt.Context.
type Context interface {
	// Done returns a channel closed when the run's context is canceled.
	Done() <-chan struct{}

	// Cancel requests cancellation of the current run's context. Idempotent.
	Cancel()

	// Option returns the name of the option being dispatched. The default
	// option reports an empty name.
	Option() string

	// Arity returns the number of parameters extracted for this dispatch.
	Arity() int

	// Set stores a key/value pair in the dispatch metadata. Keys should be
	// namespaced to avoid collisions (e.g. "timing.started").
	Set(key string, value any)

	// Get retrieves a value previously stored via Set, or nil.
	Get(key string) any
}

// HandlerFunc is the middleware-facing shape of an option callback.
type HandlerFunc func(Context) error

// Middleware transforms a handler into a wrapped handler.
type Middleware interface {
	Apply(next HandlerFunc) HandlerFunc
}

// Func adapts an ordinary function to the Middleware interface.
type Func func(next HandlerFunc) HandlerFunc

// Apply implements Middleware.
func (f Func) Apply(next HandlerFunc) HandlerFunc {
	return f(next)
}

// MiddlewareChain composes middleware so the first added wraps outermost.
type MiddlewareChain struct {
	middleware []Middleware
}

// Chain builds a composition of the given middleware.
func Chain(middleware ...Middleware) *MiddlewareChain {
	return &MiddlewareChain{middleware: middleware}
}

// Apply wraps the handler with every middleware in the chain.
func (c *MiddlewareChain) Apply(handler HandlerFunc) HandlerFunc {
	// Wrap in reverse so the first middleware runs first.
	for i := len(c.middleware) - 1; i >= 0; i-- {
		handler = c.middleware[i].Apply(handler)
	}
	return handler
}
