package middleware

import "time"

// Metadata keys written by Timing.
const (
	TimingStartedKey = "timing.started"
	TimingElapsedKey = "timing.elapsed"
)

// Timing returns middleware that records the dispatch start time and elapsed
// duration in the context metadata, for later middleware or the caller.
func Timing() Middleware {
	return Func(func(next HandlerFunc) HandlerFunc {
		return func(ctx Context) error {
			started := time.Now()
			ctx.Set(TimingStartedKey, started)

			err := next(ctx)

			ctx.Set(TimingElapsedKey, time.Since(started))
			return err
		}
	})
}

// Elapsed reads the duration recorded by Timing, if any.
func Elapsed(ctx Context) (time.Duration, bool) {
	d, ok := ctx.Get(TimingElapsedKey).(time.Duration)
	return d, ok
}
