// Package functions provides types for registering named functions with the
// golists evaluator.
//
// Functions receive already-evaluated argument nodes and return a node.
// A nil node with a nil error means "no value": the call produced nothing.
//
// # Example
//
//	result, err := golists.Eval(`double(l(1, 2))`, nil,
//	    golists.WithCustomFunction("double", 1, 1, func(ctx context.Context, args ...*types.Node) (*types.Node, error) {
//	        return types.CommaList(args[0], args[0]), nil
//	    }),
//	)
package functions

import (
	"context"

	"github.com/sandrolain/golists/pkg/types"
)

// CustomFunc is the signature for functions that only need their arguments.
type CustomFunc func(ctx context.Context, args ...*types.Node) (*types.Node, error)

// CustomFunctionDef describes a named function together with its arity.
type CustomFunctionDef struct {
	// Name is the function name as it appears inside expressions.
	Name string
	// MinArgs is the minimum number of arguments.
	MinArgs int
	// MaxArgs is the maximum number of arguments, -1 for unlimited.
	MaxArgs int
	// Fn is the implementation.
	Fn CustomFunc
}

// Host is the evaluator side of the contract. It is handed to
// AdvancedCustomFunc implementations that need to evaluate rulesets.
type Host interface {
	// EvalRuleset evaluates every unevaluated rule of rs in rs's scope
	// extended with bindings, and returns a new ruleset of evaluated rules.
	EvalRuleset(ctx context.Context, rs *types.Ruleset, bindings map[string]*types.Node) (*types.Ruleset, error)
}

// AdvancedCustomFunc is like CustomFunc but also receives the Host.
type AdvancedCustomFunc func(ctx context.Context, host Host, args ...*types.Node) (*types.Node, error)

// AdvancedCustomFunctionDef is the struct counterpart of AdvancedCustomFunc.
type AdvancedCustomFunctionDef struct {
	Name    string
	MinArgs int
	MaxArgs int
	Fn      AdvancedCustomFunc
}

// FunctionEntry is a common marker interface implemented by both
// [CustomFunctionDef] and [AdvancedCustomFunctionDef].
// It allows mixing both kinds in a single variadic call to WithFunctions.
type FunctionEntry interface {
	isFunctionEntry()
	FunctionName() string
}

func (c CustomFunctionDef) isFunctionEntry()         {}
func (a AdvancedCustomFunctionDef) isFunctionEntry() {}

// FunctionName returns the registered name.
func (c CustomFunctionDef) FunctionName() string { return c.Name }

// FunctionName returns the registered name.
func (a AdvancedCustomFunctionDef) FunctionName() string { return a.Name }
