package exact

import "sort"

// Context is a context for evaluating expressions: an ordered stack of
// variable scopes, searched dynamically from innermost to outermost, plus one
// flat table of user-defined functions and the library of named primitives.
// A Context lives for the whole session; the global scope at the bottom of
// the stack is never popped, and the function table only grows or is
// overwritten. It is not safe to use a Context concurrently.
type Context struct {
	scopes  []map[string]*Number
	funcs   map[string]userFunc
	library map[string]Func
}

// userFunc is a stored function definition. It is immutable once stored;
// redefinition replaces the whole entry.
type userFunc struct {
	params []string
	body   *node
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption(*Context)
}

type (
	varopt struct {
		name string
		val  *Number
	}
	varsopt map[string]*Number
	libopt  map[string]Func
)

func (o varopt) ctxOption(ctx *Context) {
	ctx.scopes[0][o.name] = o.val
}

func (o varsopt) ctxOption(ctx *Context) {
	for k, v := range o {
		ctx.scopes[0][k] = v
	}
}

func (o libopt) ctxOption(ctx *Context) {
	for k, v := range o {
		if v == nil {
			delete(ctx.library, k)
			continue
		}
		ctx.library[k] = v
	}
}

// SetVar presets a variable in the global scope.
func SetVar(name string, val *Number) ContextOption {
	return varopt{name, val}
}

// SetVars presets any number of variables in the global scope.
func SetVars(vars map[string]*Number) ContextOption {
	return varsopt(vars)
}

// Library installs named primitives. Setting a name to nil removes it. The
// map is copied; later changes to it do not affect the context.
func Library(fns map[string]Func) ContextOption {
	return libopt(fns)
}

// NewContext creates an empty evaluation context: one global scope, no user
// functions, and whatever primitives the options install.
func NewContext(opts ...ContextOption) *Context {
	ctx := &Context{
		scopes:  []map[string]*Number{make(map[string]*Number)},
		funcs:   make(map[string]userFunc),
		library: make(map[string]Func),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt.ctxOption(ctx)
	}
	return ctx
}

// Lookup returns the value of a variable, searching scopes from innermost to
// outermost and returning the first match.
func (ctx *Context) Lookup(name string) (*Number, bool) {
	for i := len(ctx.scopes) - 1; i >= 0; i-- {
		if v, ok := ctx.scopes[i][name]; ok {
			return v, true
		}
	}
	return nil, false
}

// Set assigns a variable with the dynamic update-or-define rule: the first
// existing binding found searching innermost to outermost is overwritten, and
// only if no scope binds the name is a new binding created in the innermost
// scope.
func (ctx *Context) Set(name string, val *Number) {
	for i := len(ctx.scopes) - 1; i >= 0; i-- {
		if _, ok := ctx.scopes[i][name]; ok {
			ctx.scopes[i][name] = val
			return
		}
	}
	ctx.scopes[len(ctx.scopes)-1][name] = val
}

// define force-binds a name in the innermost scope, shadowing any outer
// binding. Parameter binding on call entry is the only user of this.
func (ctx *Context) define(name string, val *Number) {
	ctx.scopes[len(ctx.scopes)-1][name] = val
}

func (ctx *Context) pushScope() {
	ctx.scopes = append(ctx.scopes, make(map[string]*Number))
}

func (ctx *Context) popScope() {
	// The global scope stays.
	if len(ctx.scopes) > 1 {
		ctx.scopes = ctx.scopes[:len(ctx.scopes)-1]
	}
}

// Funcs returns the sorted names of the user-defined functions.
func (ctx *Context) Funcs() []string {
	names := make([]string, 0, len(ctx.funcs))
	for k := range ctx.funcs {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
