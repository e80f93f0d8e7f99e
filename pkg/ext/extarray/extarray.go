// Package extarray provides extra list functions beyond the core list
// operations.
package extarray

import (
	"context"
	"fmt"
	"slices"

	"github.com/sandrolain/golists/pkg/ext/extutil"
	"github.com/sandrolain/golists/pkg/functions"
	"github.com/sandrolain/golists/pkg/types"
)

// All returns all extended list function definitions.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		First(),
		Last(),
		Take(),
		Skip(),
		Reverse(),
		Length(),
		Range(),
		Chunk(),
		Unique(),
	}
}

// AllEntries returns all list function definitions as
// [functions.FunctionEntry], suitable for spreading into
// [golists.WithFunctions]:
//
//	golists.WithFunctions(extarray.AllEntries()...)
func AllEntries() []functions.FunctionEntry {
	simple := All()
	out := make([]functions.FunctionEntry, 0, len(simple))
	for _, f := range simple {
		out = append(out, f)
	}
	return out
}

// First returns the definition for first(list).
func First() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "first",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			items := args[0].Elements()
			if len(items) == 0 {
				return nil, nil
			}
			return items[0], nil
		},
	}
}

// Last returns the definition for last(list).
func Last() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "last",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			items := args[0].Elements()
			if len(items) == 0 {
				return nil, nil
			}
			return items[len(items)-1], nil
		},
	}
}

// Take returns the definition for take(list, n): the first n elements.
func Take() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "take",
		MinArgs: 2,
		MaxArgs: 2,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			items := args[0].Elements()
			n, err := extutil.AsInt(args[1])
			if err != nil {
				return nil, fmt.Errorf("take: %w", err)
			}
			n = min(max(n, 0), len(items))
			return types.NewList(extutil.ListKind(args[0]), items[:n]...), nil
		},
	}
}

// Skip returns the definition for skip(list, n): all but the first n
// elements.
func Skip() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "skip",
		MinArgs: 2,
		MaxArgs: 2,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			items := args[0].Elements()
			n, err := extutil.AsInt(args[1])
			if err != nil {
				return nil, fmt.Errorf("skip: %w", err)
			}
			n = min(max(n, 0), len(items))
			return types.NewList(extutil.ListKind(args[0]), items[n:]...), nil
		},
	}
}

// Reverse returns the definition for reverse(list).
func Reverse() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "reverse",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			items := slices.Clone(args[0].Elements())
			slices.Reverse(items)
			return types.NewList(extutil.ListKind(args[0]), items...), nil
		},
	}
}

// Length returns the definition for length(list). A scalar has length 1.
func Length() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "length",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return types.Number(float64(args[0].Len())), nil
		},
	}
}

// maxRange bounds the number of elements range may produce.
const maxRange = 1 << 16

// Range returns the definition for range([start,] end [, step]). The
// result is a space list running from start (default 1) to end inclusive,
// carrying the unit of end.
func Range() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "range",
		MinArgs: 1,
		MaxArgs: 3,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			start, step := 1.0, 1.0
			endArg := args[0]
			if len(args) > 1 {
				s, _, err := extutil.AsDimension(args[0])
				if err != nil {
					return nil, fmt.Errorf("range: %w", err)
				}
				start = s
				endArg = args[1]
			}
			if len(args) > 2 {
				s, _, err := extutil.AsDimension(args[2])
				if err != nil {
					return nil, fmt.Errorf("range: %w", err)
				}
				step = s
			}
			end, unit, err := extutil.AsDimension(endArg)
			if err != nil {
				return nil, fmt.Errorf("range: %w", err)
			}
			if step <= 0 {
				return nil, types.Errorf(types.ErrInvalidOperand, "range: step must be positive, got %s", types.FormatNumber(step))
			}
			if (end-start)/step >= maxRange {
				return nil, types.Errorf(types.ErrInvalidOperand, "range: more than %d elements", maxRange)
			}
			var items []*types.Node
			for v := start; v <= end; v += step {
				items = append(items, types.Dimension(v, unit))
			}
			return types.SpaceList(items...), nil
		},
	}
}

// Chunk returns the definition for chunk(list, size): a comma list of
// sub-lists of at most size elements, each of the input's kind.
func Chunk() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "chunk",
		MinArgs: 2,
		MaxArgs: 2,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			size, err := extutil.AsInt(args[1])
			if err != nil {
				return nil, fmt.Errorf("chunk: %w", err)
			}
			if size < 1 {
				return nil, types.Errorf(types.ErrUnexpectedIndex, "chunk: size must be at least 1, got %d", size)
			}
			kind := extutil.ListKind(args[0])
			var out []*types.Node
			for c := range slices.Chunk(args[0].Elements(), size) {
				out = append(out, types.NewList(kind, c...))
			}
			return types.CommaList(out...), nil
		},
	}
}

// Unique returns the definition for unique(list): the elements in order
// of first appearance, without repeats.
func Unique() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "unique",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			var out []*types.Node
			for _, it := range args[0].Elements() {
				if !slices.ContainsFunc(out, func(o *types.Node) bool { return types.Equal(o, it) }) {
					out = append(out, it)
				}
			}
			return types.NewList(extutil.ListKind(args[0]), out...), nil
		},
	}
}
