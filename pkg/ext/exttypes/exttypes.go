// Package exttypes provides kind predicates and fallbacks for nodes.
package exttypes

import (
	"context"

	"github.com/sandrolain/golists/pkg/ext/extutil"
	"github.com/sandrolain/golists/pkg/functions"
	"github.com/sandrolain/golists/pkg/types"
)

// All returns all type function definitions.
func All() []functions.CustomFunctionDef {
	return []functions.CustomFunctionDef{
		predicate("is-list", func(n *types.Node) bool { return n.IsContainer() }),
		predicate("is-number", func(n *types.Node) bool { return n.Kind == types.KindDimension }),
		predicate("is-keyword", func(n *types.Node) bool { return n.Kind == types.KindKeyword }),
		predicate("is-string", func(n *types.Node) bool { return n.Kind == types.KindQuoted }),
		predicate("is-ruleset", func(n *types.Node) bool { return n.Kind == types.KindDetached }),
		predicate("is-empty", func(n *types.Node) bool {
			return n.Kind == types.KindEmpty || n.IsContainer() && len(n.Items) == 0
		}),
		IsUnit(),
		Kind(),
		Default(),
	}
}

// AllEntries returns all type function definitions as
// [functions.FunctionEntry].
func AllEntries() []functions.FunctionEntry {
	simple := All()
	out := make([]functions.FunctionEntry, 0, len(simple))
	for _, f := range simple {
		out = append(out, f)
	}
	return out
}

func predicate(name string, fn func(*types.Node) bool) functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    name,
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return extutil.Bool(fn(args[0])), nil
		},
	}
}

// IsUnit returns the definition for is-unit(v, unit).
func IsUnit() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "is-unit",
		MinArgs: 2,
		MaxArgs: 2,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			v := args[0]
			return extutil.Bool(v.Kind == types.KindDimension && v.Unit == args[1].RawText()), nil
		},
	}
}

// Kind returns the definition for kind(v): the node kind as a keyword.
func Kind() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "kind",
		MinArgs: 1,
		MaxArgs: 1,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return types.Keyword(args[0].Kind.String()), nil
		},
	}
}

// Default returns the definition for default(v, fallback): fallback when
// v is an empty marker.
func Default() functions.CustomFunctionDef {
	return functions.CustomFunctionDef{
		Name:    "default",
		MinArgs: 2,
		MaxArgs: 2,
		Fn: func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			if args[0].Kind == types.KindEmpty {
				return args[1], nil
			}
			return args[0], nil
		},
	}
}
