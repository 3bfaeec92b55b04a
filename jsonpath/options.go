package jsonpath

const (
	// DefaultMaxRecursionDepth bounds descendant-segment traversal depth.
	DefaultMaxRecursionDepth = 100
	// DefaultRegexCacheCapacity is the number of compiled patterns an
	// Environment retains before evicting the least recently used.
	DefaultRegexCacheCapacity = defaultRegexCacheCapacity
)

// Options controls compilation and evaluation behavior. The zero value is
// not useful on its own; construct via defaultOptions and Option funcs, or
// simply Compile/NewEnvironment with the desired With* options.
type Options struct {
	Strict               bool
	MaxRecursionDepth    int
	RegexCacheCapacity   int
	ThreadSafeRegexCache bool
	Debug                bool
	Logger               Logger
	FunctionRegistry     *FunctionRegistry
}

func defaultOptions() Options {
	return Options{
		Strict:             false,
		MaxRecursionDepth:  DefaultMaxRecursionDepth,
		RegexCacheCapacity: DefaultRegexCacheCapacity,
		Logger:             NopLogger{},
	}
}

// Option configures a Compile or NewEnvironment call.
type Option func(*Options)

// WithStrict rejects these non-standard constructs (this engine's
// extensions beyond RFC 9535): compound paths, in/contains/=~, #-context
// references, ~ key selectors, undefined/missing literals, and whitespace
// after '.'. It also requires the path to start with '$'.
func WithStrict() Option { return func(o *Options) { o.Strict = true } }

// WithMaxRecursionDepth overrides the descendant-segment traversal limit.
func WithMaxRecursionDepth(n int) Option {
	return func(o *Options) { o.MaxRecursionDepth = n }
}

// WithRegexCacheCapacity overrides the compiled-pattern cache size used by
// match(), search(), and =~.
func WithRegexCacheCapacity(n int) Option {
	return func(o *Options) { o.RegexCacheCapacity = n }
}

// WithThreadSafeRegexCache makes the regex cache safe for concurrent use
// by multiple goroutines sharing one compiled Path or Environment.
func WithThreadSafeRegexCache() Option { return func(o *Options) { o.ThreadSafeRegexCache = true } }

// WithDebug makes the regex cache's compile step return a
// *pkerrors.RegexError for a pattern that fails to compile, instead of a
// nil pattern. match(), search() and =~ still evaluate such a pattern as a
// non-match; the error is not returned from FindAll or the other query
// entry points. The failure is logged through the Logger in both modes.
func WithDebug() Option { return func(o *Options) { o.Debug = true } }

// WithLogger overrides the Logger used for structured diagnostic output
// (e.g. regex compilation failures). Wrap a *slog.Logger
// with NewSlogAdapter to use the standard library logger.
func WithLogger(l Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithFunctionRegistry overrides the default built-in filter-function
// registry, e.g. to add custom functions via Environment.Register.
func WithFunctionRegistry(r *FunctionRegistry) Option {
	return func(o *Options) { o.FunctionRegistry = r }
}

func (o *Options) resolveRegistry() *FunctionRegistry {
	if o.FunctionRegistry != nil {
		return o.FunctionRegistry
	}
	return newFunctionRegistry(newRegexCache(o.RegexCacheCapacity, o.ThreadSafeRegexCache, o.Debug, o.logger()))
}

func (o *Options) logger() Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return NopLogger{}
}
