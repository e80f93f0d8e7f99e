// Package parser turns expression source into the AST consumed by the
// evaluator.
//
// Tokenizing and precedence handling are done by expr-lang's parser; this
// package lowers its tree into [types.ASTNode], rejecting constructs the
// evaluator has no meaning for. The accepted language is:
//
//	1, 2.5, "text"          numbers and quoted strings
//	name                    a binding, or a keyword when unbound
//	a + b, a - b, a * b, a / b, -a
//	[a, b, c]               comma list
//	f(a, b)                 function call; for_each calls for-each
//	{name: expr, "@v": x}   detached ruleset
//
// # Example
//
//	expr, err := parser.Parse(`at(l(l(a, 1), l(b, 2)), a)`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	ast := expr.AST()
package parser

import (
	exprparser "github.com/expr-lang/expr/parser"

	"github.com/sandrolain/golists/pkg/types"
)

// DefaultMaxDepth is the default bound on AST nesting.
const DefaultMaxDepth = 512

// Parse parses an expression and returns the compiled Expression.
//
// Syntax errors carry the ErrSyntaxError code and wrap the underlying
// parser error.
//
// Example:
//
//	expr, err := parser.Parse("cat(l(1, 2), 3)")
//	if err != nil {
//	    fmt.Println(err)
//	    return
//	}
func Parse(query string) (*types.Expression, error) {
	return Compile(query)
}

// Compile parses query with the given options.
func Compile(query string, opts ...CompileOption) (*types.Expression, error) {
	options := CompileOptions{MaxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(&options)
	}

	tree, err := exprparser.Parse(query)
	if err != nil {
		return nil, types.NewError(types.ErrSyntaxError, err.Error(), -1).WithCause(err)
	}

	l := &lowerer{maxDepth: options.MaxDepth}
	ast, err := l.lower(tree.Node)
	if err != nil {
		return nil, err
	}
	return types.NewExpression(ast, query), nil
}

// CompileOption configures compilation behavior.
type CompileOption func(*CompileOptions)

// CompileOptions holds parser configuration.
type CompileOptions struct {
	// MaxDepth limits AST nesting. Zero disables the bound.
	MaxDepth int
}

// WithMaxDepth sets the maximum parsing depth.
func WithMaxDepth(depth int) CompileOption {
	return func(opts *CompileOptions) {
		opts.MaxDepth = depth
	}
}
