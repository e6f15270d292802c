package keyopt

import (
	"context"
	"os"

	"github.com/dzonerzy/go-keyopt/internal/intern"
	"github.com/dzonerzy/go-keyopt/internal/pool"
	keyio "github.com/dzonerzy/go-keyopt/io"
	"github.com/dzonerzy/go-keyopt/middleware"
)

// helpKeywords are reserved tokens that render help and suppress execution
// for the current run.
var helpKeywords = map[string]bool{
	"?":    true,
	"help": true,
}

// Pools shared by all registries: queue entries and extracted parameter
// slices are recycled across runs. Extracted Values are valid only for the
// duration of the callback they are passed to.
var (
	valuePool = pool.NewSlicePool[Value](8)
	queuePool = pool.NewSlicePool[queued](8)
)

func getValues() Values     { return Values(valuePool.Get()) }
func putValues(vals Values) { valuePool.Put([]Value(vals)) }

// queued is one successfully parsed occurrence pending validation and
// execution.
type queued struct {
	opt  *Option
	vals Values
}

// Registry owns a set of option descriptors keyed by unique name and drives
// the parse/validate/execute cycle. A Registry is not safe for concurrent
// use, and Run must not be invoked from within a callback it triggers.
type Registry struct {
	name        string
	version     string
	description string

	options    map[string]*Option
	aliases    map[string]string // alias -> canonical name
	defaultOpt *Option

	interner     *intern.Interner
	errorHandler *ErrorHandler
	ioManager    *keyio.IOManager
	middleware   []middleware.Middleware
}

// New creates a registry for the named program.
func New(name, description string) *Registry {
	return &Registry{
		name:         name,
		description:  description,
		options:      make(map[string]*Option),
		aliases:      make(map[string]string),
		interner:     intern.New(32),
		errorHandler: NewErrorHandler(),
		ioManager:    keyio.New(),
	}
}

// Version sets the version string shown in help output.
func (r *Registry) Version(version string) *Registry {
	r.version = version
	return r
}

// Use appends middleware wrapped around every dispatched callback.
func (r *Registry) Use(mw ...middleware.Middleware) *Registry {
	r.middleware = append(r.middleware, mw...)
	return r
}

// IO returns the registry's IOManager for fluent configuration.
func (r *Registry) IO() *keyio.IOManager {
	return r.ioManager
}

// ErrorHandler returns the registry's error handler for configuration.
func (r *Registry) ErrorHandler() *ErrorHandler {
	return r.errorHandler
}

// Option starts building an option under the given name. The empty name
// declares the default option, which matches any bare token and may not
// coexist with named options.
func (r *Registry) Option(name, description string) *OptionBuilder {
	return &OptionBuilder{
		reg: r,
		opt: &Option{Name: name, Description: description},
	}
}

// Len returns the number of registered options, the default option included.
func (r *Registry) Len() int {
	n := len(r.options)
	if r.defaultOpt != nil {
		n++
	}
	return n
}

// Require adds names to an already registered option's required set. Both the
// owner and every referenced option must exist.
func (r *Registry) Require(owner string, names ...string) error {
	opt, ok := r.options[owner]
	if !ok {
		return unknownOwnerError(owner)
	}
	for _, name := range names {
		if perr := r.checkDependencyName(owner, name); perr != nil {
			return perr
		}
		opt.Requires = append(opt.Requires, name)
	}
	return nil
}

// Exclude adds names to an already registered option's not-wanted set. Both
// the owner and every referenced option must exist.
func (r *Registry) Exclude(owner string, names ...string) error {
	opt, ok := r.options[owner]
	if !ok {
		return unknownOwnerError(owner)
	}
	for _, name := range names {
		if perr := r.checkDependencyName(owner, name); perr != nil {
			return perr
		}
		opt.Conflicts = append(opt.Conflicts, name)
	}
	return nil
}

func unknownOwnerError(owner string) *ParseError {
	return &ParseError{
		Type:    ErrorTypeRegistration,
		Option:  owner,
		Message: "dependency declared for unknown option '" + owner + "'",
	}
}

// checkDependencyName validates one referenced dependency name at declaration
// time: it must name an already registered option other than the owner.
func (r *Registry) checkDependencyName(owner, name string) *ParseError {
	if name == owner {
		return &ParseError{
			Type:    ErrorTypeRegistration,
			Option:  owner,
			Message: "option '" + owner + "' cannot depend on itself",
		}
	}
	if _, ok := r.options[name]; !ok {
		return &ParseError{
			Type:    ErrorTypeRegistration,
			Option:  owner,
			Message: "dependency references unknown option '" + name + "'",
		}
	}
	return nil
}

// add registers a finished option. A failed add leaves the registry unchanged.
func (r *Registry) add(opt *Option) *ParseError {
	if opt.Handler == nil {
		return &ParseError{
			Type:    ErrorTypeRegistration,
			Option:  opt.Name,
			Message: "option '" + opt.displayName() + "': nil handler",
		}
	}

	if opt.Name == "" {
		// The default option matches any bare token; it must consume at least
		// one parameter or the parse loop could never advance.
		if len(opt.Params) == 0 && !opt.Variadic {
			return &ParseError{
				Type:    ErrorTypeRegistration,
				Message: "default option must declare at least one parameter",
			}
		}
		if r.defaultOpt != nil {
			return &ParseError{
				Type:    ErrorTypeDuplicateOption,
				Message: "default option already registered",
			}
		}
		if len(r.options) > 0 {
			return &ParseError{
				Type:    ErrorTypeRegistration,
				Message: "default option cannot coexist with named options",
			}
		}
		if len(opt.Aliases) > 0 {
			return &ParseError{
				Type:    ErrorTypeRegistration,
				Message: "default option cannot have aliases",
			}
		}
		r.defaultOpt = opt
		return nil
	}

	if r.defaultOpt != nil {
		return &ParseError{
			Type:    ErrorTypeRegistration,
			Option:  opt.Name,
			Message: "named option '" + opt.Name + "' cannot coexist with a default option",
		}
	}
	if r.nameTaken(opt.Name) {
		return &ParseError{
			Type:    ErrorTypeDuplicateOption,
			Option:  opt.Name,
			Message: "option '" + opt.Name + "' already registered",
		}
	}
	for _, alias := range opt.Aliases {
		if alias == "" || r.nameTaken(alias) || alias == opt.Name {
			return &ParseError{
				Type:    ErrorTypeDuplicateOption,
				Option:  opt.Name,
				Message: "option '" + opt.Name + "': alias '" + alias + "' already registered",
			}
		}
	}
	if helpKeywords[opt.Name] {
		return &ParseError{
			Type:    ErrorTypeRegistration,
			Option:  opt.Name,
			Message: "option name '" + opt.Name + "' is a reserved help keyword",
		}
	}

	r.options[opt.Name] = opt
	r.interner.PreIntern([]string{opt.Name})
	for _, alias := range opt.Aliases {
		r.aliases[alias] = opt.Name
		r.interner.PreIntern([]string{alias})
	}
	return nil
}

func (r *Registry) nameTaken(name string) bool {
	if _, ok := r.options[name]; ok {
		return true
	}
	_, ok := r.aliases[name]
	return ok
}

// lookup resolves a token to a registered option via the interner, following
// aliases. Returns nil for unknown tokens.
func (r *Registry) lookup(tok string) *Option {
	canonical, ok := r.interner.Lookup(tok)
	if !ok {
		return nil
	}
	if opt, found := r.options[canonical]; found {
		return opt
	}
	if name, found := r.aliases[canonical]; found {
		return r.options[name]
	}
	return nil
}

// isStopToken reports whether a token terminates a variadic tail: a
// registered option name, alias, or help keyword.
func (r *Registry) isStopToken(tok string) bool {
	return helpKeywords[tok] || r.lookup(tok) != nil
}

// Run parses os.Args, validates the queue, and dispatches callbacks.
func (r *Registry) Run() error {
	return r.RunContext(context.Background())
}

// RunContext runs with a caller-supplied context for cancellation.
func (r *Registry) RunContext(ctx context.Context) error {
	return r.RunWithArgs(ctx, os.Args[1:])
}

// RunWithArgs runs over argv-style arguments.
func (r *Registry) RunWithArgs(ctx context.Context, args []string) error {
	return r.run(ctx, NewTokenStreamFromArgs(args))
}

// RunLine runs over a raw command-line string.
func (r *Registry) RunLine(ctx context.Context, line string) error {
	return r.run(ctx, NewTokenStream(line))
}

// run is the two-phase state machine: parse everything into the queue, then
// validate the whole queue and execute it in discovery order. Any parse or
// validation failure is displayed through the error handler, aborts the whole
// run, and nothing queued executes.
func (r *Registry) run(ctx context.Context, ts *TokenStream) error {
	queue := queuePool.Get()
	defer func() {
		for _, q := range queue {
			putValues(q.vals)
		}
		queuePool.Put(queue)
	}()

	// Parse phase.
	for {
		pos := ts.Pos()
		tok := ts.Next()
		if tok == "" {
			break
		}

		if helpKeywords[tok] {
			r.showHelp()
			return ErrHelpShown
		}

		opt := r.lookup(tok)
		if opt == nil {
			if r.defaultOpt == nil {
				return r.fail(&ParseError{
					Type:    ErrorTypeUnknownOption,
					Option:  tok,
					Message: "unknown option: " + tok,
				})
			}
			// Bare token with a default option registered: the token itself
			// is the first parameter, so extraction restarts at it.
			opt = r.defaultOpt
			ts.Rewind(pos)
		}

		vals, err := opt.extract(ts, r.isStopToken)
		if err != nil {
			return r.fail(asParseError(err))
		}
		queue = append(queue, queued{opt: opt, vals: vals})
	}

	// Validate phase: a single violation cancels every queued callback.
	if perr := r.validateQueue(queue); perr != nil {
		return r.fail(perr)
	}
	if perr := r.checkRequired(queue); perr != nil {
		return r.fail(perr)
	}

	// Execute phase: callbacks fire in discovery order.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	for _, q := range queue {
		if runCtx.Err() != nil {
			break
		}
		ectx := &Context{
			registry: r,
			ctx:      runCtx,
			cancel:   cancel,
			option:   q.opt,
			arity:    len(q.vals),
		}
		if err := r.dispatch(ectx, q.opt, q.vals); err != nil {
			return err
		}
	}
	return nil
}

// dispatch invokes one callback through the middleware chain.
func (r *Registry) dispatch(ectx *Context, opt *Option, vals Values) error {
	if len(r.middleware) == 0 {
		return opt.Handler(ectx, vals)
	}

	inner := func(mc middleware.Context) error {
		kctx, ok := mc.(*Context)
		if !ok {
			return NewParseError(ErrorTypeInternal, "invalid middleware context type")
		}
		return opt.Handler(kctx, vals)
	}
	return middleware.Chain(r.middleware...).Apply(inner)(ectx)
}

// fail routes a run-time error through the handler for suggestions and
// display, then returns it. The library never lets these crash the host.
func (r *Registry) fail(perr *ParseError) error {
	perr = r.errorHandler.Process(perr, r)
	r.errorHandler.Display(perr, r)
	return perr
}
