// Package extnumeric provides numeric functions over dimensions and lists
// of dimensions. Units are carried through, never converted.
package extnumeric

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/sandrolain/golists/pkg/ext/extutil"
	"github.com/sandrolain/golists/pkg/functions"
	"github.com/sandrolain/golists/pkg/types"
)

// All returns all extended numeric function definitions.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		mathFunc1("abs", math.Abs),
		mathFunc1("floor", math.Floor),
		mathFunc1("ceil", math.Ceil),
		Round(),
		Percentage(),
		Clamp(),
		Sum(),
		Min(),
		Max(),
		Median(),
	}
}

// AllEntries returns all numeric function definitions as
// [functions.FunctionEntry].
func AllEntries() []functions.FunctionEntry {
	simple := All()
	out := make([]functions.FunctionEntry, 0, len(simple))
	for _, f := range simple {
		out = append(out, f)
	}
	return out
}

// Round returns the definition for round(n [, places]).
func Round() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "round",
		MinArgs: 1,
		MaxArgs: 2,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			n, unit, err := extutil.AsDimension(args[0])
			if err != nil {
				return nil, fmt.Errorf("round: %w", err)
			}
			places := 0
			if len(args) > 1 {
				if places, err = extutil.AsInt(args[1]); err != nil {
					return nil, fmt.Errorf("round: %w", err)
				}
			}
			p := math.Pow(10, float64(places))
			return types.Dimension(math.Round(n*p)/p, unit), nil
		},
	}
}

// Percentage returns the definition for percentage(n): 0.5 becomes 50%.
func Percentage() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "percentage",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			n, _, err := extutil.AsDimension(args[0])
			if err != nil {
				return nil, fmt.Errorf("percentage: %w", err)
			}
			return types.Dimension(n*100, "%"), nil
		},
	}
}

// Clamp returns the definition for clamp(n, lo, hi).
func Clamp() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "clamp",
		MinArgs: 3,
		MaxArgs: 3,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			n, lo, hi := args[0], args[1], args[2]
			for _, a := range args {
				if _, _, err := extutil.AsDimension(a); err != nil {
					return nil, fmt.Errorf("clamp: %w", err)
				}
			}
			switch {
			case order(n, lo) == types.OrderLess:
				return lo, nil
			case order(n, hi) == types.OrderGreater:
				return hi, nil
			}
			return n, nil
		},
	}
}

// Sum returns the definition for sum(list). The result carries the first
// unit found. It takes a single argument: the expression parser reserves a
// second sum argument for a predicate.
func Sum() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "sum",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			total, unit := 0.0, ""
			for _, a := range spread(args) {
				n, u, err := extutil.AsDimension(a)
				if err != nil {
					return nil, fmt.Errorf("sum: %w", err)
				}
				if unit == "" {
					unit = u
				}
				total += n
			}
			return types.Dimension(total, unit), nil
		},
	}
}

// Min returns the definition for min(values...).
func Min() functions.CustomFunctionDef {
	return extremum("min", types.OrderLess)
}

// Max returns the definition for max(values...).
func Max() functions.CustomFunctionDef {
	return extremum("max", types.OrderGreater)
}

func extremum(name string, want types.Order) functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    name,
		MinArgs: 1,
		MaxArgs: -1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			var best *types.Node
			for _, a := range spread(args) {
				if _, _, err := extutil.AsDimension(a); err != nil {
					return nil, fmt.Errorf("%s: %w", name, err)
				}
				if best == nil {
					best = a
					continue
				}
				switch order(a, best) {
				case want:
					best = a
				case types.OrderUnordered:
					return nil, types.Errorf(types.ErrInvalidOperand,
						"%s: incompatible types (%s and %s)", name, best.CSS(), a.CSS())
				}
			}
			return best, nil
		},
	}
}

// Median returns the definition for median(values...).
func Median() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "median",
		MinArgs: 1,
		MaxArgs: -1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			vals := spread(args)
			nums := make([]float64, len(vals))
			unit := ""
			for i, a := range vals {
				n, u, err := extutil.AsDimension(a)
				if err != nil {
					return nil, fmt.Errorf("median: %w", err)
				}
				if unit == "" {
					unit = u
				}
				nums[i] = n
			}
			if len(nums) == 0 {
				return nil, nil
			}
			slices.Sort(nums)
			mid := len(nums) / 2
			if len(nums)%2 == 0 {
				return types.Dimension((nums[mid-1]+nums[mid])/2, unit), nil
			}
			return types.Dimension(nums[mid], unit), nil
		},
	}
}

// ── helpers ────────────────────────────────────────────────────────────────

func mathFunc1(name string, fn func(float64) float64) functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    name,
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			n, unit, err := extutil.AsDimension(args[0])
			if err != nil {
				return nil, fmt.Errorf("%s: %w", name, err)
			}
			return types.Dimension(fn(n), unit), nil
		},
	}
}

// spread expands a lone list argument into its elements.
func spread(args []*types.Node) []*types.Node {
	if len(args) == 1 && args[0].IsContainer() {
		return args[0].Items
	}
	return args
}

// order compares dimensions, treating a unitless side as matching any unit.
func order(a, b *types.Node) types.Order {
	if a.Unit == "" || b.Unit == "" {
		return types.Compare(types.Number(a.Number), types.Number(b.Number))
	}
	return types.Compare(a, b)
}
