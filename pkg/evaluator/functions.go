package evaluator

import (
	"context"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/sandrolain/golists/pkg/functions"
	"github.com/sandrolain/golists/pkg/lists"
	"github.com/sandrolain/golists/pkg/types"
)

// FunctionDef defines a callable function.
type FunctionDef struct {
	Name    string
	MinArgs int
	MaxArgs int // -1 for unlimited
	Impl    FunctionImpl
}

// FunctionImpl is the implementation of a function.
type FunctionImpl func(ctx context.Context, e *Evaluator, args []*types.Node) (*types.Node, error)

var (
	builtins     map[string]*FunctionDef
	builtinsOnce sync.Once
)

// initBuiltinFunctions initializes the built-in function registry.
func initBuiltinFunctions() {
	builtinsOnce.Do(func() {
		builtins = map[string]*FunctionDef{
			// Value helpers
			"dim": {Name: "dim", MinArgs: 1, MaxArgs: 2, Impl: fnDim},
			"sp":  {Name: "sp", MinArgs: 0, MaxArgs: -1, Impl: fnSp},
			"e":   {Name: "e", MinArgs: 1, MaxArgs: 1, Impl: fnEscape},
		}
		for _, fe := range lists.AllEntries() {
			def := functionDef(fe)
			builtins[def.Name] = def
		}
	})
}

// builtinFunctions returns a copy of the builtin registry.
func builtinFunctions() map[string]*FunctionDef {
	initBuiltinFunctions()
	return maps.Clone(builtins)
}

// BuiltinNames lists the names of the builtin functions.
func BuiltinNames() []string {
	initBuiltinFunctions()
	return slices.Sorted(maps.Keys(builtins))
}

// functionDef adapts a registry entry.
func functionDef(fe functions.FunctionEntry) *FunctionDef {
	switch f := fe.(type) {
	case functions.CustomFunctionDef:
		return &FunctionDef{
			Name:    f.Name,
			MinArgs: f.MinArgs,
			MaxArgs: f.MaxArgs,
			Impl: func(ctx context.Context, _ *Evaluator, args []*types.Node) (*types.Node, error) {
				return f.Fn(ctx, args...)
			},
		}
	case functions.AdvancedCustomFunctionDef:
		return &FunctionDef{
			Name:    f.Name,
			MinArgs: f.MinArgs,
			MaxArgs: f.MaxArgs,
			Impl: func(ctx context.Context, e *Evaluator, args []*types.Node) (*types.Node, error) {
				return f.Fn(ctx, e, args...)
			},
		}
	}
	return nil
}

// lookupFunction resolves name. Underscores stand in for hyphens, so
// for_each calls for-each.
func (e *Evaluator) lookupFunction(name string) (*FunctionDef, bool) {
	if fn, ok := e.fns[name]; ok {
		return fn, true
	}
	if strings.Contains(name, "_") {
		fn, ok := e.fns[strings.ReplaceAll(name, "_", "-")]
		return fn, ok
	}
	return nil, false
}

// Functions returns the sorted names of every function the evaluator can
// call.
func (e *Evaluator) Functions() []string {
	return slices.Sorted(maps.Keys(e.fns))
}

// fnDim builds a dimension from a number and a unit.
func fnDim(_ context.Context, _ *Evaluator, args []*types.Node) (*types.Node, error) {
	n := args[0]
	if n.Kind != types.KindDimension {
		return nil, types.Errorf(types.ErrInvalidOperand, "dim: expected a number, got `%s`", n.CSS())
	}
	unit := n.Unit
	if len(args) > 1 {
		unit = args[1].RawText()
	}
	return types.Dimension(n.Number, unit), nil
}

// fnSp builds a space list.
func fnSp(_ context.Context, _ *Evaluator, args []*types.Node) (*types.Node, error) {
	return types.SpaceList(args...), nil
}

// fnEscape turns text into anonymous text, dropping quotes.
func fnEscape(_ context.Context, _ *Evaluator, args []*types.Node) (*types.Node, error) {
	return types.Anonymous(args[0].RawText()), nil
}
