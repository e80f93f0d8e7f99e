// Package scenario runs expression checks described in YAML files.
//
// A scenario file is a sequence of mappings:
//
//	- name: positional lookup
//	  expr: at(xs, -1)
//	  bindings: {xs: [10, 20, 30]}
//	  css: "30"
//
// Each scenario checks at most one of: an error code (with an optional
// message fragment), an absent result, or the result's text, its bracketed
// inspection and its kind.
package scenario

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/sandrolain/golists/pkg/convert"
	"github.com/sandrolain/golists/pkg/evaluator"
	"github.com/sandrolain/golists/pkg/lists"
	"github.com/sandrolain/golists/pkg/types"
)

// Scenario is a single check.
type Scenario struct {
	Name     string         `yaml:"name"`
	Expr     string         `yaml:"expr"`
	Bindings map[string]any `yaml:"bindings"`
	CSS      *string        `yaml:"css"`
	Inspect  *string        `yaml:"inspect"`
	Kind     string         `yaml:"kind"`
	Absent   bool           `yaml:"absent"`
	Error    string         `yaml:"error"`
	Message  string         `yaml:"message"`
}

// Result is the outcome of running a Scenario.
type Result struct {
	Scenario *Scenario
	Got      *types.Node
	Err      error
	// Failure describes the mismatch, empty when the scenario passed.
	Failure string
}

// OK reports whether the scenario passed.
func (r *Result) OK() bool {
	return r.Failure == ""
}

// Load reads scenarios from a YAML file.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	scs, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return scs, nil
}

// Parse decodes scenarios from YAML.
func Parse(data []byte) ([]Scenario, error) {
	var out []Scenario
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	for i := range out {
		if out[i].Expr == "" {
			return nil, fmt.Errorf("scenario %d (%s): missing expr", i, out[i].Name)
		}
	}
	return out, nil
}

// Run evaluates sc with ev and compares the outcome.
func Run(ctx context.Context, ev *evaluator.Evaluator, sc *Scenario) *Result {
	res := &Result{Scenario: sc}
	bindings, err := convert.Bindings(sc.Bindings)
	if err != nil {
		res.Err = err
		res.Failure = err.Error()
		return res
	}
	res.Got, res.Err = ev.EvalString(ctx, sc.Expr, bindings)
	res.Failure = check(sc, res.Got, res.Err)
	return res
}

func check(sc *Scenario, got *types.Node, err error) string {
	if sc.Error != "" {
		var te *types.Error
		if !errors.As(err, &te) {
			return fmt.Sprintf("expected error %s, got %v (result %q)", sc.Error, err, got.CSS())
		}
		if string(te.Code) != sc.Error {
			return fmt.Sprintf("expected error %s, got %s", sc.Error, te.Code)
		}
		if sc.Message != "" && !strings.Contains(te.Message, sc.Message) {
			return "message: " + Diff(sc.Message, te.Message)
		}
		return ""
	}
	if err != nil {
		return fmt.Sprintf("unexpected error: %v", err)
	}
	if sc.Absent {
		if got != nil {
			return fmt.Sprintf("expected no value, got %q", got.CSS())
		}
		return ""
	}
	if got == nil {
		return "expected a value, got none"
	}
	if sc.CSS != nil && got.CSS() != *sc.CSS {
		return "css: " + Diff(*sc.CSS, got.CSS())
	}
	if sc.Inspect != nil {
		if s := lists.Stringify(got, "[", "]"); s != *sc.Inspect {
			return "inspect: " + Diff(*sc.Inspect, s)
		}
	}
	if sc.Kind != "" && got.Kind.String() != sc.Kind {
		return fmt.Sprintf("expected kind %s, got %s", sc.Kind, got.Kind)
	}
	return ""
}

// Diff renders the character differences between want and got, marking
// removed text as [-text-] and added text as {+text+}.
func Diff(want, got string) string {
	dmp := diffpatch.New()
	diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(want, got, false))
	var sb strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffpatch.DiffEqual:
			sb.WriteString(d.Text)
		case diffpatch.DiffDelete:
			sb.WriteString("[-" + d.Text + "-]")
		case diffpatch.DiffInsert:
			sb.WriteString("{+" + d.Text + "+}")
		}
	}
	return sb.String()
}

// PrettyDiff is like Diff but marks changes with terminal colors.
func PrettyDiff(want, got string) string {
	dmp := diffpatch.New()
	return dmp.DiffPrettyText(dmp.DiffCleanupSemantic(dmp.DiffMain(want, got, false)))
}
