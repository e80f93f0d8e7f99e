package lists_test

import (
	"context"
	"testing"

	"github.com/sandrolain/golists/pkg/lists"
	"github.com/sandrolain/golists/pkg/types"
)

// echoHost evaluates every rule to the binding of the same name, or keeps
// the rule's value.
type echoHost struct {
	calls int
}

func (h *echoHost) EvalRuleset(_ context.Context, rs *types.Ruleset, bindings map[string]*types.Node) (*types.Ruleset, error) {
	h.calls++
	out := make([]types.Rule, len(rs.Rules))
	for i, r := range rs.Rules {
		out[i] = types.Rule{Name: r.Name, Merge: r.Merge, Value: r.Value}
		if v, ok := bindings[r.BareName()]; ok {
			out[i].Value = v
		}
	}
	return types.NewRuleset(nil, out...), nil
}

func body(names ...string) *types.Node {
	rules := make([]types.Rule, len(names))
	for i, n := range names {
		rules[i] = types.Rule{Name: n}
	}
	return types.Detached(types.NewRuleset(nil, rules...))
}

func TestForEach(t *testing.T) {
	h := &echoHost{}
	got, err := lists.ForEach(context.Background(), h, types.CommaList(kw("a"), kw("b")), body("value", "index"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if h.calls != 2 {
		t.Fatalf("body evaluated %d times", h.calls)
	}
	if want := "{value: a; index: 1; value: b; index: 2}"; got.CSS() != want {
		t.Fatalf("for-each = %s, want %s", got.CSS(), want)
	}
}

func TestForEachRenamed(t *testing.T) {
	h := &echoHost{}
	vars := types.CommaList(kw("@v"), kw("@i"))
	got, err := lists.ForEach(context.Background(), h, num(7), vars, body("v", "i"))
	if err != nil {
		t.Fatal(err)
	}
	if want := "{v: 7; i: 1}"; got.CSS() != want {
		t.Fatalf("for-each = %s, want %s", got.CSS(), want)
	}
}

func TestForEachErrors(t *testing.T) {
	h := &echoHost{}
	if _, err := lists.ForEach(context.Background(), h, nums(1), num(1), nil); errCode(err) != types.ErrExpectedRuleset {
		t.Fatalf("expected %s, got %v", types.ErrExpectedRuleset, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := lists.ForEach(ctx, h, nums(1, 2), body("value"), nil); err == nil {
		t.Fatal("expected cancellation error")
	}
}

func TestToList(t *testing.T) {
	rs := types.NewRuleset(nil,
		types.Rule{Name: "@w", Value: num(2)},
		types.Rule{Name: "font", Merge: types.MergeComma, Value: kw("a")},
		types.Rule{Name: "font", Merge: types.MergeSpace, Value: kw("b")},
		types.Rule{Name: "color"},
	)
	got, err := lists.ToList(context.Background(), &echoHost{}, types.Detached(rs))
	if err != nil {
		t.Fatal(err)
	}
	if want := "[[w 2], [font [[a b]]], [color ]]"; show(got) != want {
		t.Fatalf("to-list = %s, want %s", show(got), want)
	}
}
