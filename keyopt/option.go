package keyopt

import "strings"

// HandlerFunc is the callback bound to an option. It receives the execution
// context and the parameters extracted for this occurrence, in declaration
// order.
type HandlerFunc func(*Context, Values) error

// MaxParams is the highest fixed parameter arity an option may declare.
const MaxParams = 5

// Option binds a name to a callback with a fixed parameter signature plus
// dependency constraints. Options are created through Registry.Option and are
// immutable after registration, except for dependency-set additions via
// Registry.Require and Registry.Exclude.
type Option struct {
	Name        string
	Description string
	Aliases     []string
	Params      []ValueKind
	Variadic    bool // trailing variable-length <string> tail
	Handler     HandlerFunc

	Requires   []string
	Conflicts  []string
	Standalone bool // must not co-occur with any other option
	Required   bool
	Hidden     bool
}

// Usage returns the usage string built by concatenating each parameter's
// usage label.
func (o *Option) Usage() string {
	if len(o.Params) == 0 && !o.Variadic {
		return ""
	}
	var b strings.Builder
	for i, kind := range o.Params {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(kind.Label())
	}
	if o.Variadic {
		if len(o.Params) > 0 {
			b.WriteByte(' ')
		}
		b.WriteString("<string>...")
	}
	return b.String()
}

// extract pulls this option's parameters from the stream in left-to-right
// order. The first failure aborts the whole option: values already extracted
// are discarded and the error is decorated with the option name. For variadic
// options, the tail collects string tokens until the stream ends or the next
// token names a registered option or help keyword.
func (o *Option) extract(ts *TokenStream, stop func(string) bool) (Values, error) {
	vals := getValues()

	for _, kind := range o.Params {
		v, err := extractValue(ts, kind)
		if err != nil {
			putValues(vals)
			return nil, o.decorate(err)
		}
		vals = append(vals, v)
	}

	if o.Variadic {
		for {
			pos := ts.Pos()
			tok := ts.Next()
			if tok == "" {
				break
			}
			if stop != nil && stop(tok) {
				ts.Rewind(pos)
				break
			}
			vals = append(vals, Value{Kind: KindString, strVal: tok})
		}
	}

	return vals, nil
}

func (o *Option) decorate(err error) *ParseError {
	perr := asParseError(err)
	perr.Option = o.Name
	perr.Message = "option '" + o.displayName() + "': " + perr.Message
	return perr
}

// displayName names the option in messages; the default option has no name.
func (o *Option) displayName() string {
	if o.Name == "" {
		return "(default)"
	}
	return o.Name
}

// OptionBuilder provides the fluent configuration API for a single option.
// Register terminates the chain and surfaces registration errors immediately.
type OptionBuilder struct {
	reg *Registry
	opt *Option
	err *ParseError // first problem captured while building
}

// Int appends an <int> parameter slot.
func (b *OptionBuilder) Int() *OptionBuilder { return b.param(KindInt) }

// Int64 appends an <int64> parameter slot.
func (b *OptionBuilder) Int64() *OptionBuilder { return b.param(KindInt64) }

// Uint appends a <uint> parameter slot.
func (b *OptionBuilder) Uint() *OptionBuilder { return b.param(KindUint) }

// Uint64 appends a <uint64> parameter slot.
func (b *OptionBuilder) Uint64() *OptionBuilder { return b.param(KindUint64) }

// Char appends a <char> parameter slot.
func (b *OptionBuilder) Char() *OptionBuilder { return b.param(KindChar) }

// Float appends a <float> parameter slot.
func (b *OptionBuilder) Float() *OptionBuilder { return b.param(KindFloat) }

// UFloat appends a <ufloat> parameter slot.
func (b *OptionBuilder) UFloat() *OptionBuilder { return b.param(KindUFloat) }

// String appends a <string> parameter slot.
func (b *OptionBuilder) String() *OptionBuilder { return b.param(KindString) }

// Strings declares a variadic <string> tail after the fixed slots.
func (b *OptionBuilder) Strings() *OptionBuilder {
	if b.opt.Variadic {
		b.fail("option '" + b.opt.displayName() + "': variadic tail declared twice")
		return b
	}
	b.opt.Variadic = true
	return b
}

func (b *OptionBuilder) param(kind ValueKind) *OptionBuilder {
	if b.opt.Variadic {
		b.fail("option '" + b.opt.displayName() + "': fixed parameter after variadic tail")
		return b
	}
	if len(b.opt.Params) >= MaxParams {
		b.fail("option '" + b.opt.displayName() + "': too many parameters")
		return b
	}
	b.opt.Params = append(b.opt.Params, kind)
	return b
}

// Aliases adds alternate names that dispatch to the same option.
func (b *OptionBuilder) Aliases(aliases ...string) *OptionBuilder {
	b.opt.Aliases = append(b.opt.Aliases, aliases...)
	return b
}

// Required marks the option as mandatory for every run.
func (b *OptionBuilder) Required() *OptionBuilder {
	b.opt.Required = true
	return b
}

// Standalone marks the option as not wanted with any other option.
func (b *OptionBuilder) Standalone() *OptionBuilder {
	b.opt.Standalone = true
	return b
}

// Requires names options that must co-occur with this one. The referenced
// options must already be registered.
func (b *OptionBuilder) Requires(names ...string) *OptionBuilder {
	for _, name := range names {
		if perr := b.reg.checkDependencyName(b.opt.Name, name); perr != nil {
			b.err = perr
			return b
		}
		b.opt.Requires = append(b.opt.Requires, name)
	}
	return b
}

// Conflicts names options that must not co-occur with this one. The
// referenced options must already be registered.
func (b *OptionBuilder) Conflicts(names ...string) *OptionBuilder {
	for _, name := range names {
		if perr := b.reg.checkDependencyName(b.opt.Name, name); perr != nil {
			b.err = perr
			return b
		}
		b.opt.Conflicts = append(b.opt.Conflicts, name)
	}
	return b
}

// Hidden excludes the option from help output; it still dispatches.
func (b *OptionBuilder) Hidden() *OptionBuilder {
	b.opt.Hidden = true
	return b
}

// Handler binds the callback invoked when the option is dispatched.
func (b *OptionBuilder) Handler(fn HandlerFunc) *OptionBuilder {
	b.opt.Handler = fn
	return b
}

// Register finalizes the option and adds it to the registry. The first
// problem detected during building or registration is returned; a failed
// Register leaves the registry unchanged.
func (b *OptionBuilder) Register() error {
	if b.err != nil {
		return b.err
	}
	if perr := b.reg.add(b.opt); perr != nil {
		return perr
	}
	return nil
}

func (b *OptionBuilder) fail(message string) {
	if b.err == nil {
		b.err = NewParseError(ErrorTypeRegistration, message)
	}
}
