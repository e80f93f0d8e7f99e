package cascade_test

import (
	"testing"

	"github.com/sandrolain/golists/pkg/cascade"
	"github.com/sandrolain/golists/pkg/types"
)

func rule(name, merge, value string) types.Rule {
	return types.Rule{Name: name, Merge: merge, Value: types.Keyword(value)}
}

func TestMergeRules(t *testing.T) {
	in := []types.Rule{
		rule("a", types.MergeNone, "1"),
		rule("t", types.MergeComma, "x"),
		rule("b", types.MergeNone, "2"),
		rule("t", types.MergeSpace, "y"),
		rule("t", types.MergeComma, "z"),
		rule("t", types.MergeSpace, "w"),
	}
	out := cascade.MergeRules(in)
	if len(out) != 3 {
		t.Fatalf("expected 3 rules, got %d", len(out))
	}
	names := []string{out[0].Name, out[1].Name, out[2].Name}
	if names[0] != "a" || names[1] != "t" || names[2] != "b" {
		t.Fatalf("order = %v", names)
	}
	if got, want := out[1].Value.CSS(), "x y, z w"; got != want {
		t.Fatalf("merged = %q, want %q", got, want)
	}
	if in[1].Value.CSS() != "x" {
		t.Fatal("input modified")
	}
}

func TestMergeRulesSpaceOnly(t *testing.T) {
	out := cascade.MergeRules([]types.Rule{
		rule("m", types.MergeSpace, "1"),
		rule("m", types.MergeSpace, "2"),
	})
	if got := out[0].Value.CSS(); got != "1 2" {
		t.Fatalf("merged = %q", got)
	}
}

func TestMergeRulesPassThrough(t *testing.T) {
	in := []types.Rule{rule("a", types.MergeNone, "1"), rule("a", types.MergeNone, "2")}
	out := cascade.MergeRules(in)
	if len(out) != 2 || out[1].Value.CSS() != "2" {
		t.Fatalf("unflagged rules must pass through: %v", out)
	}
}
