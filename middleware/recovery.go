package middleware

import "fmt"

// PanicError wraps a panic recovered from an option callback.
type PanicError struct {
	Option string
	Value  any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("option '%s' panicked: %v", e.Option, e.Value)
}

// Recovery returns middleware that converts a panicking callback into an
// ordinary error so one misbehaving handler cannot crash the host process.
func Recovery() Middleware {
	return Func(func(next HandlerFunc) HandlerFunc {
		return func(ctx Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = &PanicError{Option: ctx.Option(), Value: r}
				}
			}()
			return next(ctx)
		}
	})
}
