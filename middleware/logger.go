package middleware

import (
	"time"

	keyio "github.com/dzonerzy/go-keyopt/io"
)

// Logger returns middleware that logs every dispatched option with its
// outcome and elapsed time through the given logger.
func Logger(log *keyio.Logger) Middleware {
	return Func(func(next HandlerFunc) HandlerFunc {
		return func(ctx Context) error {
			name := ctx.Option()
			if name == "" {
				name = "(default)"
			}

			started := time.Now()
			err := next(ctx)
			elapsed := time.Since(started)

			if err != nil {
				log.Errorf("option %s failed after %s: %v", name, elapsed, err)
				return err
			}
			log.Infof("option %s completed in %s (%d params)", name, elapsed, ctx.Arity())
			return nil
		}
	})
}
