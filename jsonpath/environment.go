package jsonpath

// Environment bundles a set of Options — most notably a FunctionRegistry
// that custom filter functions have been Register-ed on — for reuse
// across many Compile calls, mirroring Python jsonpath's JSONPathEnvironment.
type Environment struct {
	opts Options
	regs *FunctionRegistry
}

// NewEnvironment returns an Environment seeded with the built-in function
// registry and the given options. Register additional functions on the
// returned Environment before compiling any paths with it.
func NewEnvironment(opts ...Option) *Environment {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	regs := o.resolveRegistry()
	o.FunctionRegistry = regs
	return &Environment{opts: o, regs: regs}
}

// Register adds or replaces a filter function visible to every path this
// Environment subsequently compiles.
func (e *Environment) Register(name string, sig FunctionSig, fn Function) {
	e.regs.Register(name, sig, fn)
}

// Compile parses path using this Environment's options and function
// registry, plus any extra per-call options.
func (e *Environment) Compile(path string, extra ...Option) (*Path, error) {
	opts := append([]Option{WithFunctionRegistry(e.regs)}, extra...)
	merged := e.opts
	for _, opt := range opts {
		opt(&merged)
	}
	p := newParser(path, merged.Strict, merged.FunctionRegistry)
	compiled, err := p.parsePath(path)
	if err != nil {
		return nil, err
	}
	compiled.opts = merged
	return compiled, nil
}

// FindAll compiles path with this Environment and evaluates it against doc.
func (e *Environment) FindAll(path string, doc any) (NodeList, error) {
	compiled, err := e.Compile(path)
	if err != nil {
		return nil, err
	}
	return compiled.FindAll(doc)
}
