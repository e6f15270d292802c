package keyopt

import (
	"context"

	keyio "github.com/dzonerzy/go-keyopt/io"
)

// Context is passed to option callbacks. It exposes the owning registry, the
// run's cancelable Go context, and per-dispatch metadata. It implements
// middleware.Context.
type Context struct {
	registry *Registry
	ctx      context.Context
	cancel   context.CancelFunc
	option   *Option
	arity    int
	metadata map[string]any
}

// Registry returns the registry that dispatched this callback.
func (c *Context) Registry() *Registry {
	return c.registry
}

// Context returns the underlying Go context for cancellation.
func (c *Context) Context() context.Context {
	return c.ctx
}

// Done returns a channel closed when the run's context is canceled.
func (c *Context) Done() <-chan struct{} {
	return c.ctx.Done()
}

// Err returns a non-nil error after Done is closed.
func (c *Context) Err() error {
	return c.ctx.Err()
}

// Cancel requests cancellation of the current run. Callbacks queued after
// the canceling one will not execute.
func (c *Context) Cancel() {
	if c.cancel != nil {
		c.cancel()
	}
}

// Option returns the name of the option being dispatched; the default option
// reports an empty name.
func (c *Context) Option() string {
	if c.option == nil {
		return ""
	}
	return c.option.Name
}

// Arity returns the number of parameters extracted for this dispatch.
func (c *Context) Arity() int {
	return c.arity
}

// Set stores a key/value pair in the dispatch metadata.
func (c *Context) Set(key string, value any) {
	if c.metadata == nil {
		c.metadata = make(map[string]any)
	}
	c.metadata[key] = value
}

// Get retrieves a value stored via Set, or nil.
func (c *Context) Get(key string) any {
	if c.metadata == nil {
		return nil
	}
	return c.metadata[key]
}

// IO returns the registry's IO manager, for callbacks that produce output.
func (c *Context) IO() *keyio.IOManager {
	return c.registry.IO()
}
