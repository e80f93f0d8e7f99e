// Package lists implements list operations over space and comma delimited
// nodes: indexed and keyed lookup, slicing, concatenation, flattening,
// transposition and stringification.
//
// Every operation is a pure function of its argument nodes and returns a
// fresh list; inputs are never modified. The functions are also exposed as
// registry entries for the evaluator:
//
//	result, err := golists.Eval(`join(cat(l(1, 2), 3), "-")`, nil)
//	// result.CSS() == "1-2-3"
package lists

import (
	"context"

	"github.com/sandrolain/golists/pkg/functions"
	"github.com/sandrolain/golists/pkg/types"
)

// All returns the definitions of the operations that only need their
// arguments.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		AtFunc(),
		CatFunc(),
		LFunc(),
		SliceFunc(),
		SpliceFunc(),
		FlattenFunc(),
		TransposeFunc(),
		JoinFunc(),
		InspectFunc(),
	}
}

// AllAdvanced returns the definitions of the operations that evaluate
// rulesets through the host.
func AllAdvanced() []functions.AdvancedCustomFunctionDef {
	return []functions.AdvancedCustomFunctionDef{
		ForEachFunc(),
		ToListFunc(),
	}
}

// AllEntries returns all definitions as [functions.FunctionEntry].
func AllEntries() []functions.FunctionEntry {
	simple := All()
	adv := AllAdvanced()
	out := make([]functions.FunctionEntry, 0, len(simple)+len(adv))
	for _, f := range simple {
		out = append(out, f)
	}
	for _, f := range adv {
		out = append(out, f)
	}
	return out
}

// arg returns args[i] or nil when the argument was omitted.
func arg(args []*types.Node, i int) *types.Node {
	if i < len(args) {
		return args[i]
	}
	return nil
}

// AtFunc returns the definition for at(list, index).
func AtFunc() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "at",
		MinArgs: 2,
		MaxArgs: 2,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return At(args[0], args[1]), nil
		},
	}
}

// CatFunc returns the definition for cat(args...).
func CatFunc() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "cat",
		MinArgs: 0,
		MaxArgs: -1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return Cat(args...), nil
		},
	}
}

// LFunc returns the definition for l(a, b, ...).
func LFunc() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "l",
		MinArgs: 0,
		MaxArgs: -1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return L(args...), nil
		},
	}
}

// SliceFunc returns the definition for slice(list [, start [, end]]).
func SliceFunc() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "slice",
		MinArgs: 1,
		MaxArgs: 3,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return Slice(args[0], arg(args, 1), arg(args, 2))
		},
	}
}

// SpliceFunc returns the definition for splice(list [, start [, end [, value]]]).
func SpliceFunc() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "splice",
		MinArgs: 1,
		MaxArgs: 4,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return Splice(args[0], arg(args, 1), arg(args, 2), arg(args, 3))
		},
	}
}

// FlattenFunc returns the definition for flatten(list [, delimiter]).
func FlattenFunc() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "flatten",
		MinArgs: 1,
		MaxArgs: 2,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return Flatten(args[0], arg(args, 1))
		},
	}
}

// TransposeFunc returns the definition for transpose(matrix).
func TransposeFunc() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "transpose",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return Transpose(args[0]), nil
		},
	}
}

// JoinFunc returns the definition for join(list [, delimiter]).
func JoinFunc() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "join",
		MinArgs: 1,
		MaxArgs: 2,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return Join(args[0], arg(args, 1)), nil
		},
	}
}

// InspectFunc returns the definition for inspect(value [, prefix [, suffix]]).
func InspectFunc() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "inspect",
		MinArgs: 1,
		MaxArgs: 3,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return Inspect(args[0], arg(args, 1), arg(args, 2)), nil
		},
	}
}

// ForEachFunc returns the definition for for-each(list, [vars,] ruleset).
func ForEachFunc() functions.AdvancedCustomFunctionDef {
	return functions.AdvancedCustomFunctionDef{
		Name:    "for-each",
		MinArgs: 2,
		MaxArgs: 3,
		Fn: func(ctx context.Context, host functions.Host, args ...*types.Node) (*types.Node, error) {
			return ForEach(ctx, host, args[0], args[1], arg(args, 2))
		},
	}
}

// ToListFunc returns the definition for to-list(ruleset).
func ToListFunc() functions.AdvancedCustomFunctionDef {
	return functions.AdvancedCustomFunctionDef{
		Name:    "to-list",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(ctx context.Context, host functions.Host, args ...*types.Node) (*types.Node, error) {
			return ToList(ctx, host, args[0])
		},
	}
}
