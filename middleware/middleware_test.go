package middleware

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	keyio "github.com/dzonerzy/go-keyopt/io"
)

// fakeContext is a minimal Context for exercising middleware in isolation.
type fakeContext struct {
	option   string
	arity    int
	meta     map[string]any
	done     chan struct{}
	canceled bool
}

func newFakeContext(option string, arity int) *fakeContext {
	return &fakeContext{
		option: option,
		arity:  arity,
		meta:   make(map[string]any),
		done:   make(chan struct{}),
	}
}

func (c *fakeContext) Done() <-chan struct{} { return c.done }
func (c *fakeContext) Cancel() {
	if !c.canceled {
		c.canceled = true
		close(c.done)
	}
}
func (c *fakeContext) Option() string            { return c.option }
func (c *fakeContext) Arity() int                { return c.arity }
func (c *fakeContext) Set(key string, value any) { c.meta[key] = value }
func (c *fakeContext) Get(key string) any        { return c.meta[key] }

func TestChainOrder(t *testing.T) {
	var order []string

	tag := func(name string) Middleware {
		return Func(func(next HandlerFunc) HandlerFunc {
			return func(ctx Context) error {
				order = append(order, name+":before")
				err := next(ctx)
				order = append(order, name+":after")
				return err
			}
		})
	}

	handler := func(Context) error {
		order = append(order, "handler")
		return nil
	}

	if err := Chain(tag("a"), tag("b")).Apply(handler)(newFakeContext("x", 0)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"a:before", "b:before", "handler", "b:after", "a:after"}
	if len(order) != len(want) {
		t.Fatalf("expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, order)
		}
	}
}

func TestRecoveryConvertsPanic(t *testing.T) {
	handler := Recovery().Apply(func(Context) error {
		panic("boom")
	})

	err := handler(newFakeContext("explode", 0))
	if err == nil {
		t.Fatal("expected error from panicking handler")
	}

	panicErr := &PanicError{}
	if !errors.As(err, &panicErr) {
		t.Fatalf("expected PanicError, got %T", err)
	}
	if panicErr.Option != "explode" {
		t.Errorf("expected option 'explode', got %q", panicErr.Option)
	}
}

func TestRecoveryPassesThroughErrors(t *testing.T) {
	sentinel := errors.New("ordinary failure")
	handler := Recovery().Apply(func(Context) error { return sentinel })

	if err := handler(newFakeContext("x", 0)); !errors.Is(err, sentinel) {
		t.Errorf("expected sentinel error, got %v", err)
	}
}

func TestTimingRecordsElapsed(t *testing.T) {
	handler := Timing().Apply(func(Context) error {
		time.Sleep(time.Millisecond)
		return nil
	})

	ctx := newFakeContext("slow", 1)
	if err := handler(ctx); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	elapsed, ok := Elapsed(ctx)
	if !ok {
		t.Fatal("expected elapsed duration in metadata")
	}
	if elapsed <= 0 {
		t.Errorf("expected positive elapsed duration, got %v", elapsed)
	}
}

func TestValidatorBlocksHandler(t *testing.T) {
	called := false
	deny := func(Context) error { return errors.New("denied") }

	handler := Validator(deny).Apply(func(Context) error {
		called = true
		return nil
	})

	if err := handler(newFakeContext("x", 0)); err == nil {
		t.Fatal("expected validation error")
	}
	if called {
		t.Error("handler must not run when validation fails")
	}
}

func TestOnlyOptionsScopesMiddleware(t *testing.T) {
	deny := Validator(func(Context) error { return errors.New("denied") })
	scoped := OnlyOptions(deny, "guarded")

	handler := scoped.Apply(func(Context) error { return nil })

	if err := handler(newFakeContext("guarded", 0)); err == nil {
		t.Error("expected scoped middleware to fire for 'guarded'")
	}
	if err := handler(newFakeContext("open", 0)); err != nil {
		t.Errorf("expected scoped middleware to skip 'open', got %v", err)
	}
}

func TestLoggerMiddleware(t *testing.T) {
	var out, errBuf bytes.Buffer
	m := keyio.New().WithOut(&out).WithErr(&errBuf).NoColor()
	log := keyio.NewLogger(m)

	ok := Logger(log).Apply(func(Context) error { return nil })
	if err := ok(newFakeContext("move", 2)); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out.String(), "option move completed") {
		t.Errorf("expected completion log, got %q", out.String())
	}

	failing := Logger(log).Apply(func(Context) error { return errors.New("boom") })
	if err := failing(newFakeContext("move", 2)); err == nil {
		t.Fatal("expected error to propagate through logger middleware")
	}
	if !strings.Contains(errBuf.String(), "option move failed") {
		t.Errorf("expected failure log on err stream, got %q", errBuf.String())
	}
}
