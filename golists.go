// Package golists evaluates list expressions: space and comma delimited
// lists of numbers, keywords and text, with indexed and keyed lookup,
// slicing, concatenation, flattening, transposition and elementwise
// arithmetic.
//
// # Quick Start
//
//	// Simple evaluation
//	result, err := golists.Eval(`l(1, 2, 3) + 10`, nil)
//	// result.CSS() == "11, 12, 13"
//
//	// Compile once, evaluate many times
//	expr, err := golists.Compile(`at(list, -1)`)
//	ev := evaluator.New()
//	r1, _ := ev.EvalWithBindings(ctx, expr, map[string]*types.Node{"list": a})
//	r2, _ := ev.EvalWithBindings(ctx, expr, map[string]*types.Node{"list": b})
//
//	// With options
//	result, err := golists.Eval(`l(1, 2) * l(3, 4, 5)`, nil,
//	    golists.WithBroadcasting(false),
//	    golists.WithTimeout(5*time.Second),
//	)
//
// # Broadcasting
//
// Arithmetic on lists is applied elementwise at every depth. A list and a
// scalar combine element by element; two lists must have the same length.
//
// # More Information
//
// For detailed documentation, see:
//   - List operations: github.com/sandrolain/golists/pkg/lists
//   - Arithmetic: github.com/sandrolain/golists/pkg/arith
//   - Evaluator: github.com/sandrolain/golists/pkg/evaluator
//   - Types: github.com/sandrolain/golists/pkg/types
package golists

import (
	"context"
	"fmt"
	"time"

	"github.com/sandrolain/golists/pkg/arith"
	"github.com/sandrolain/golists/pkg/evaluator"
	"github.com/sandrolain/golists/pkg/functions"
	"github.com/sandrolain/golists/pkg/parser"
	"github.com/sandrolain/golists/pkg/types"
)

// Version returns the current version of golists.
func Version() string {
	return "v0.1.0-dev"
}

// Compile compiles an expression for repeated evaluation.
//
// The compiled expression can be evaluated any number of times with
// different bindings. It is safe for concurrent use.
func Compile(src string, opts ...parser.CompileOption) (*types.Expression, error) {
	return parser.Compile(src, opts...)
}

// MustCompile is like Compile but panics if the expression cannot be compiled.
// It simplifies safe initialization of global variables.
func MustCompile(src string) *types.Expression {
	expr, err := Compile(src)
	if err != nil {
		panic(fmt.Sprintf("golists: Compile(%q): %v", src, err))
	}
	return expr
}

// Eval compiles and evaluates src in a single call. bindings may be nil.
//
// For repeated evaluations of the same expression, use Compile instead.
func Eval(src string, bindings map[string]*types.Node, opts ...evaluator.EvalOption) (*types.Node, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	return EvalWithContext(ctx, src, bindings, opts...)
}

// EvalWithContext evaluates src with a custom context.
func EvalWithContext(ctx context.Context, src string, bindings map[string]*types.Node, opts ...evaluator.EvalOption) (*types.Node, error) {
	expr, err := Compile(src)
	if err != nil {
		return nil, err
	}
	return evaluator.New(opts...).EvalWithBindings(ctx, expr, bindings)
}

// Option re-exports, so callers need not import the evaluator package.

// WithTimeout sets the evaluation timeout.
func WithTimeout(timeout time.Duration) evaluator.EvalOption {
	return evaluator.WithTimeout(timeout)
}

// WithMaxDepth bounds call and list nesting.
func WithMaxDepth(depth int) evaluator.EvalOption {
	return evaluator.WithMaxDepth(depth)
}

// WithDebug enables debug logging.
func WithDebug(enabled bool) evaluator.EvalOption {
	return evaluator.WithDebug(enabled)
}

// WithBroadcasting enables or disables elementwise list arithmetic.
func WithBroadcasting(enabled bool) evaluator.EvalOption {
	return evaluator.WithBroadcasting(enabled)
}

// WithArithmetic sets the scalar arithmetic strategy.
func WithArithmetic(a arith.Arithmetic) evaluator.EvalOption {
	return evaluator.WithArithmetic(a)
}

// WithFunctions registers function definitions.
func WithFunctions(fns ...functions.FunctionEntry) evaluator.EvalOption {
	return evaluator.WithFunctions(fns...)
}

// WithCustomFunction registers a single function.
func WithCustomFunction(name string, minArgs, maxArgs int, fn functions.CustomFunc) evaluator.EvalOption {
	return evaluator.WithCustomFunction(name, minArgs, maxArgs, fn)
}
