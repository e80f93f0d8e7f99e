// Package evaluator reduces parsed expressions to nodes.
//
// The evaluator walks the AST produced by the parser and supports:
//   - Number, string and identifier literals
//   - Variable bindings
//   - Arithmetic through a pluggable strategy (see package arith)
//   - Calls of the list operations and user-registered functions
//   - Detached rulesets, evaluated lazily by the functions receiving them
//   - Timeout and cancellation via context.Context
//
// # Example
//
//	ev := evaluator.New()
//	result, err := ev.Eval(ctx, expr)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Arithmetic
//
// Binary operators are delegated to an [arith.Arithmetic]. Broadcasting
// over lists is enabled by default and can be turned off:
//
//	ev := evaluator.New(evaluator.WithBroadcasting(false))
package evaluator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/sandrolain/golists/pkg/arith"
	"github.com/sandrolain/golists/pkg/cache"
	"github.com/sandrolain/golists/pkg/functions"
	"github.com/sandrolain/golists/pkg/parser"
	"github.com/sandrolain/golists/pkg/types"
)

// Evaluator evaluates expressions.
type Evaluator struct {
	opts   EvalOptions
	logger *slog.Logger
	arith  arith.Arithmetic
	cache  *cache.Cache            // non-nil when Caching is enabled
	fns    map[string]*FunctionDef // builtins and user-registered functions
}

// EvalOptions configures evaluator behavior.
type EvalOptions struct {
	// Caching enables expression compilation caching for EvalString.
	// The default cache holds up to 256 entries with LRU eviction.
	Caching bool
	// CacheSize sets the maximum number of cached expressions.
	// Only used when Caching is true and no explicit Cache is provided.
	CacheSize int
	// Cache is a custom expression cache. If non-nil, Caching is implicitly enabled.
	Cache *cache.Cache
	// MaxDepth limits call and list nesting depth.
	MaxDepth int
	// Timeout sets evaluation timeout.
	Timeout time.Duration
	// Debug enables debug logging.
	Debug bool
	// Logger for structured logging.
	Logger *slog.Logger
	// Arithmetic is the scalar strategy for binary operators.
	// Defaults to arith.Scalar.
	Arithmetic arith.Arithmetic
	// Broadcasting decorates Arithmetic with list broadcasting.
	Broadcasting bool
	// Functions holds user-defined functions. They shadow builtins of the
	// same name.
	Functions []functions.FunctionEntry
}

// New creates a new Evaluator with default options.
func New(opts ...EvalOption) *Evaluator {
	options := EvalOptions{
		MaxDepth:     arith.DefaultMaxDepth,
		Timeout:      30 * time.Second,
		Broadcasting: true,
	}

	for _, opt := range opts {
		opt(&options)
	}

	if options.Logger == nil {
		options.Logger = slog.Default()
	}

	var c *cache.Cache
	if options.Cache != nil {
		c = options.Cache
	} else if options.Caching {
		c = cache.New(options.CacheSize)
	}

	e := &Evaluator{
		opts:   options,
		logger: options.Logger,
		cache:  c,
		fns:    builtinFunctions(),
	}
	e.arith = e.strategy()

	for _, fe := range options.Functions {
		if def := functionDef(fe); def != nil {
			e.fns[def.Name] = def
		}
	}

	return e
}

// strategy composes the configured arithmetic. Installing broadcasting over
// a strategy that already broadcasts keeps a single layer.
func (e *Evaluator) strategy() arith.Arithmetic {
	base := e.opts.Arithmetic
	if !e.opts.Broadcasting {
		return arith.Unwrap(base)
	}
	var logger *slog.Logger
	if e.opts.Debug {
		logger = e.logger
	}
	return arith.Install(base, arith.WithMaxDepth(e.opts.MaxDepth), arith.WithLogger(logger))
}

// Arithmetic returns the strategy binary operators are evaluated with.
func (e *Evaluator) Arithmetic() arith.Arithmetic {
	return e.arith
}

// Cache returns the expression cache, or nil if caching is disabled.
func (e *Evaluator) Cache() *cache.Cache {
	return e.cache
}

// Eval evaluates an expression. A nil result with a nil error means the
// expression produced no value.
func (e *Evaluator) Eval(ctx context.Context, expr *types.Expression) (*types.Node, error) {
	return e.EvalWithBindings(ctx, expr, nil)
}

// EvalWithBindings evaluates an expression with custom variable bindings.
func (e *Evaluator) EvalWithBindings(ctx context.Context, expr *types.Expression, bindings map[string]*types.Node) (*types.Node, error) {
	if expr == nil || expr.AST() == nil {
		return nil, fmt.Errorf("invalid expression")
	}

	// Apply timeout if configured
	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	evalCtx := NewContext()
	evalCtx.SetBindings(bindings)

	return e.evalNode(ctx, expr.AST(), evalCtx)
}

// EvalString compiles src, through the cache when caching is enabled, and
// evaluates it.
func (e *Evaluator) EvalString(ctx context.Context, src string, bindings map[string]*types.Node) (*types.Node, error) {
	var (
		expr *types.Expression
		err  error
	)
	if e.cache != nil {
		expr, err = e.cache.GetOrCompile(src, func() (*types.Expression, error) {
			return parser.Compile(src)
		})
	} else {
		expr, err = parser.Compile(src)
	}
	if err != nil {
		return nil, err
	}
	return e.EvalWithBindings(ctx, expr, bindings)
}

// EvalOption configures evaluation behavior.
type EvalOption func(*EvalOptions)

// WithCaching enables or disables expression compilation caching.
// When enabled, a default LRU cache of 256 entries is created.
// To control the cache size use WithCacheSize; to supply your own cache use WithCache.
func WithCaching(enabled bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Caching = enabled
	}
}

// WithCacheSize sets the maximum number of cached expressions.
// Only effective when combined with WithCaching(true).
func WithCacheSize(size int) EvalOption {
	return func(opts *EvalOptions) {
		opts.CacheSize = size
	}
}

// WithCache attaches an external expression cache.
func WithCache(c *cache.Cache) EvalOption {
	return func(opts *EvalOptions) {
		opts.Cache = c
	}
}

// WithTimeout sets the evaluation timeout.
func WithTimeout(timeout time.Duration) EvalOption {
	return func(opts *EvalOptions) {
		opts.Timeout = timeout
	}
}

// WithDebug enables or disables debug logging.
func WithDebug(enabled bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Debug = enabled
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) EvalOption {
	return func(opts *EvalOptions) {
		opts.Logger = logger
	}
}

// WithMaxDepth sets the maximum call and list nesting depth.
func WithMaxDepth(depth int) EvalOption {
	return func(opts *EvalOptions) {
		opts.MaxDepth = depth
	}
}

// WithArithmetic sets the arithmetic strategy. Broadcasting, when enabled,
// is installed over it.
func WithArithmetic(a arith.Arithmetic) EvalOption {
	return func(opts *EvalOptions) {
		opts.Arithmetic = a
	}
}

// WithBroadcasting enables or disables list broadcasting of arithmetic.
func WithBroadcasting(enabled bool) EvalOption {
	return func(opts *EvalOptions) {
		opts.Broadcasting = enabled
	}
}

// WithFunctions registers one or more function definitions. Both
// [functions.CustomFunctionDef] and [functions.AdvancedCustomFunctionDef]
// are accepted, so whole extension sets can be passed at once:
//
//	evaluator.New(evaluator.WithFunctions(mypkg.AllEntries()...))
func WithFunctions(fns ...functions.FunctionEntry) EvalOption {
	return func(opts *EvalOptions) {
		opts.Functions = append(opts.Functions, fns...)
	}
}

// WithCustomFunction registers a user-defined function.
// minArgs and maxArgs bound the argument count; pass -1 as maxArgs for
// variadic functions.
//
// Example:
//
//	golists.Eval(`double(2)`, nil, golists.WithCustomFunction("double", 1, 1, func(ctx context.Context, args ...*types.Node) (*types.Node, error) {
//	    return types.Number(args[0].Number * 2), nil
//	}))
func WithCustomFunction(name string, minArgs, maxArgs int, fn functions.CustomFunc) EvalOption {
	return WithFunctions(functions.CustomFunctionDef{
		Name:    name,
		MinArgs: minArgs,
		MaxArgs: maxArgs,
		Fn:      fn,
	})
}
