package middleware

// ValidateFunc inspects a dispatch before the callback runs. A non-nil error
// aborts the callback.
type ValidateFunc func(Context) error

// Validator returns middleware that runs the given checks in order before
// the callback; the first failing check wins and the callback never runs.
func Validator(checks ...ValidateFunc) Middleware {
	return Func(func(next HandlerFunc) HandlerFunc {
		return func(ctx Context) error {
			for _, check := range checks {
				if err := check(ctx); err != nil {
					return err
				}
			}
			return next(ctx)
		}
	})
}

// OnlyOptions restricts a middleware to the named options; everything else
// passes through unwrapped behavior.
func OnlyOptions(mw Middleware, names ...string) Middleware {
	allowed := make(map[string]bool, len(names))
	for _, name := range names {
		allowed[name] = true
	}

	return Func(func(next HandlerFunc) HandlerFunc {
		wrapped := mw.Apply(next)
		return func(ctx Context) error {
			if allowed[ctx.Option()] {
				return wrapped(ctx)
			}
			return next(ctx)
		}
	})
}
