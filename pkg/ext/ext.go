// Package ext provides optional extension functions for golists that go
// beyond the core list operations.
//
// The extension functions live in sub-packages grouped by category:
//   - extarray   – first, last, take, skip, reverse, length, range, chunk, unique
//   - extnumeric – abs, floor, ceil, round, percentage, clamp, sum, min, max, median
//   - exttypes   – is-list, is-number, is-keyword, is-string, is-unit, kind, default, …
//
// # Integration – all extensions at once
//
//	import "github.com/sandrolain/golists/pkg/ext"
//
//	result, err := golists.Eval(expr, bindings, ext.WithAll())
//
// # Integration – by category
//
//	result, err := golists.Eval(expr, bindings,
//	    ext.WithArray(),
//	    ext.WithNumeric(),
//	)
//
// # Integration – single function from a sub-package
//
//	import "github.com/sandrolain/golists/pkg/ext/extarray"
//
//	result, err := golists.Eval(expr, bindings,
//	    golists.WithFunctions(extarray.Range()),
//	)
package ext

import (
	"github.com/sandrolain/golists/pkg/evaluator"
	"github.com/sandrolain/golists/pkg/ext/extarray"
	"github.com/sandrolain/golists/pkg/ext/extnumeric"
	"github.com/sandrolain/golists/pkg/ext/exttypes"
	"github.com/sandrolain/golists/pkg/functions"
)

// AllEntries returns all extension function definitions as
// [functions.FunctionEntry], suitable for spreading into
// [golists.WithFunctions]:
//
//	golists.WithFunctions(ext.AllEntries()...)
func AllEntries() []functions.FunctionEntry {
	var all []functions.FunctionEntry
	all = append(all, extarray.AllEntries()...)
	all = append(all, extnumeric.AllEntries()...)
	all = append(all, exttypes.AllEntries()...)
	return all
}

// WithAll returns an EvalOption that registers all extension functions.
func WithAll() evaluator.EvalOption {
	return evaluator.WithFunctions(AllEntries()...)
}

// WithArray returns an EvalOption for the extended list functions.
func WithArray() evaluator.EvalOption {
	return evaluator.WithFunctions(extarray.AllEntries()...)
}

// WithNumeric returns an EvalOption for the numeric functions.
func WithNumeric() evaluator.EvalOption {
	return evaluator.WithFunctions(extnumeric.AllEntries()...)
}

// WithTypes returns an EvalOption for the kind predicates.
func WithTypes() evaluator.EvalOption {
	return evaluator.WithFunctions(exttypes.AllEntries()...)
}
