package convert_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/google/go-cmp/cmp"

	"github.com/sandrolain/golists/pkg/convert"
	"github.com/sandrolain/golists/pkg/evaluator"
	"github.com/sandrolain/golists/pkg/types"
)

func TestFromString(t *testing.T) {
	tests := []struct {
		in   string
		want *types.Node
	}{
		{"10", types.Number(10)},
		{"-1.5em", types.Dimension(-1.5, "em")},
		{"50%", types.Dimension(50, "%")},
		{".5", types.Number(0.5)},
		{"solid", types.Keyword("solid")},
		{"-webkit-box", types.Keyword("-webkit-box")},
		{"a b", types.Quoted("a b")},
		{"#fff", types.Quoted("#fff")},
	}
	for _, tt := range tests {
		if diff := cmp.Diff(tt.want, convert.FromString(tt.in)); diff != "" {
			t.Errorf("FromString(%q) (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestFromAny(t *testing.T) {
	got, err := convert.FromAny([]any{1, uint64(2), int64(-3), 1.5, "4px", true, nil, []any{"a"}})
	if err != nil {
		t.Fatal(err)
	}
	want := types.CommaList(
		types.Number(1), types.Number(2), types.Number(-3), types.Number(1.5),
		types.Dimension(4, "px"), types.Keyword("true"), types.Empty(),
		types.CommaList(types.Keyword("a")),
	)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestFromAnyMap(t *testing.T) {
	got, err := convert.FromAny(map[string]any{"b": 2, "a": "x", "c+": 3})
	if err != nil {
		t.Fatal(err)
	}
	if got.Kind != types.KindDetached {
		t.Fatalf("kind = %s", got.Kind)
	}
	if s := got.CSS(); s != "{a: x; b: 2; c+: 3}" {
		t.Fatalf("got %s", s)
	}
	if _, err := convert.FromAny(struct{}{}); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func TestToAny(t *testing.T) {
	n := types.CommaList(
		types.Number(1),
		types.Dimension(2, "px"),
		types.Quoted("q"),
		types.SpaceList(types.Keyword("a"), types.Empty()),
		types.Detached(types.NewRuleset(nil, types.Rule{Name: "k", Value: types.Number(3)})),
	)
	want := []any{1.0, "2px", "q", []any{"a", nil}, convert.Rules{{Key: "k", Value: 3.0}}}
	if diff := cmp.Diff(want, convert.ToAny(n)); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestToAnyRulesetOrder(t *testing.T) {
	n, err := evaluator.New().EvalString(context.Background(), `for_each([a, b], {name: value, "w+_": 1})`, nil)
	if err != nil {
		t.Fatal(err)
	}
	want := convert.Rules{
		{Key: "name", Value: "a"},
		{Key: "w+_", Value: 1.0},
		{Key: "name", Value: "b"},
		{Key: "w+_", Value: 1.0},
	}
	got := convert.ToAny(n)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}

	back, err := convert.FromAny(got)
	if err != nil {
		t.Fatal(err)
	}
	if back.CSS() != n.CSS() {
		t.Fatalf("round trip = %q, want %q", back.CSS(), n.CSS())
	}

	js, err := json.Marshal(got)
	if err != nil {
		t.Fatal(err)
	}
	wantJSON := `[{"name":"name","value":"a"},{"name":"w+_","value":1},{"name":"name","value":"b"},{"name":"w+_","value":1}]`
	if string(js) != wantJSON {
		t.Fatalf("json = %s, want %s", js, wantJSON)
	}

	y, err := yaml.Marshal(convert.ToAny(types.Detached(types.NewRuleset(nil,
		types.Rule{Name: "b", Value: types.Keyword("x")},
		types.Rule{Name: "a", Value: types.Keyword("y")},
	))))
	if err != nil {
		t.Fatal(err)
	}
	if string(y) != "b: x\na: y\n" {
		t.Fatalf("yaml = %q", y)
	}
}

func TestParseBinding(t *testing.T) {
	tests := []struct {
		in   string
		name string
		want string
	}{
		{"x=10px", "x", "10px"},
		{"xs=[1, 2, 3]", "xs", "1, 2, 3"},
		{"m=[[a, 1], [b, 2]]", "m", "a, 1, b, 2"},
		{"r={w: 1, h: 2}", "r", "{w: 1; h: 2}"},
	}
	for _, tt := range tests {
		name, n, err := convert.ParseBinding(tt.in)
		if err != nil {
			t.Fatalf("%s: %v", tt.in, err)
		}
		if name != tt.name || n.CSS() != tt.want {
			t.Errorf("%s: got %s=%q", tt.in, name, n.CSS())
		}
	}
	for _, bad := range []string{"novalue", "=1"} {
		if _, _, err := convert.ParseBinding(bad); err == nil {
			t.Errorf("%s: expected error", bad)
		}
	}
}
