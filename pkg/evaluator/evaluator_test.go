package evaluator_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/sandrolain/golists/pkg/arith"
	"github.com/sandrolain/golists/pkg/evaluator"
	"github.com/sandrolain/golists/pkg/functions"
	"github.com/sandrolain/golists/pkg/lists"
	"github.com/sandrolain/golists/pkg/parser"
	"github.com/sandrolain/golists/pkg/types"
)

func eval(t *testing.T, ev *evaluator.Evaluator, src string, bindings map[string]*types.Node) (*types.Node, error) {
	t.Helper()
	expr, err := parser.Compile(src)
	if err != nil {
		t.Fatalf("compile %s: %v", src, err)
	}
	return ev.EvalWithBindings(context.Background(), expr, bindings)
}

func code(err error) types.ErrorCode {
	var te *types.Error
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

func TestEvalBasics(t *testing.T) {
	ev := evaluator.New()
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "7"},
		{"-(1 + 1)", "-2"},
		{"+4", "4"},
		{`"text"`, `"text"`},
		{"solid", "solid"},
		{"dim(5, px) * 2", "10px"},
		{"dim(dim(5, px))", "5px"},
		{"dim(5, \"%\")", "5%"},
		{"sp(1, solid, red)", "1 solid red"},
		{`e("a, b")`, "a, b"},
		{"[1, [2, 3]]", "1, 2, 3"},
		{"cat(sp(1, 2), 3)", "1 2 3"},
	}
	for _, tt := range tests {
		got, err := eval(t, ev, tt.src, nil)
		if err != nil {
			t.Fatalf("%s: %v", tt.src, err)
		}
		if got.CSS() != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got.CSS(), tt.want)
		}
	}
}

func TestEvalBindings(t *testing.T) {
	ev := evaluator.New()
	got, err := eval(t, ev, "x * y", map[string]*types.Node{
		"x": types.CommaList(types.Number(1), types.Number(2)),
		"y": types.Dimension(3, "em"),
	})
	if err != nil {
		t.Fatal(err)
	}
	if got.CSS() != "3em, 6em" {
		t.Fatalf("got %q", got.CSS())
	}
}

func TestEvalAbsent(t *testing.T) {
	ev := evaluator.New()
	got, err := eval(t, ev, "at([1, 2], 5)", nil)
	if err != nil || got != nil {
		t.Fatalf("expected no value, got %v, %v", got, err)
	}
	// an absent argument reaches functions as an empty marker
	got, err = eval(t, ev, "cat(at([1], 5), 2)", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Len() != 2 || got.Items[0].Kind != types.KindEmpty {
		t.Fatalf("got %s", lists.Stringify(got, "[", "]"))
	}
}

func TestEvalErrors(t *testing.T) {
	ev := evaluator.New()
	tests := []struct {
		src  string
		want types.ErrorCode
	}{
		{"nope(1)", types.ErrUndefinedFunction},
		{"at(1)", types.ErrArgumentCountMismatch},
		{"transpose(1, 2)", types.ErrArgumentCountMismatch},
		{"[1, 2] + [1]", types.ErrListLengthMismatch},
		{"solid + 1", types.ErrInvalidOperand},
		{"1 / 0", types.ErrDivisionByZero},
		{"slice([1], dim(1, px))", types.ErrUnexpectedIndex},
		{"flatten([1], tab)", types.ErrInvalidDelimiter},
		{"for_each([1], 2)", types.ErrExpectedRuleset},
	}
	for _, tt := range tests {
		_, err := eval(t, ev, tt.src, nil)
		if code(err) != tt.want {
			t.Errorf("%s: expected %s, got %v", tt.src, tt.want, err)
		}
	}
	var te *types.Error
	_, err := eval(t, ev, "nope(1)", nil)
	if !errors.As(err, &te) || te.Token != "nope" {
		t.Fatalf("expected token nope, got %v", err)
	}

	positions := []struct {
		src string
		min int
	}{
		{"1 + slice([1], dim(1, px))", 4},
		{"solid + 1", 0},
		{"1 + [1, 2] + [1]", 1},
	}
	for _, tt := range positions {
		_, err := eval(t, ev, tt.src, nil)
		if !errors.As(err, &te) || te.Position < tt.min {
			t.Errorf("%s: expected position >= %d, got %v", tt.src, tt.min, err)
		}
	}
}

func TestBroadcastingOption(t *testing.T) {
	on := evaluator.New()
	if _, ok := on.Arithmetic().(*arith.Broadcast); !ok {
		t.Fatalf("default strategy = %T", on.Arithmetic())
	}
	off := evaluator.New(evaluator.WithBroadcasting(false))
	if _, err := eval(t, off, "[1, 2] + 1", nil); code(err) != types.ErrInvalidOperand {
		t.Fatalf("expected %s without broadcasting, got %v", types.ErrInvalidOperand, err)
	}
	// an already broadcasting strategy is not wrapped twice
	twice := evaluator.New(evaluator.WithArithmetic(on.Arithmetic()))
	b := twice.Arithmetic().(*arith.Broadcast)
	if _, ok := b.Base.(*arith.Broadcast); ok {
		t.Fatal("nested broadcast layers")
	}
	off = evaluator.New(evaluator.WithArithmetic(on.Arithmetic()), evaluator.WithBroadcasting(false))
	if _, ok := off.Arithmetic().(*arith.Broadcast); ok {
		t.Fatal("broadcasting disabled but still installed")
	}
}

func TestCustomArithmetic(t *testing.T) {
	concat := arith.Func(func(_ context.Context, op string, a, b *types.Node) (*types.Node, error) {
		return types.Anonymous(a.CSS() + op + b.CSS()), nil
	})
	ev := evaluator.New(evaluator.WithArithmetic(concat))
	got, err := eval(t, ev, "[a, b] + c", nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.CSS() != "a+c, b+c" {
		t.Fatalf("got %q", got.CSS())
	}
}

func TestCustomFunctions(t *testing.T) {
	ev := evaluator.New(
		evaluator.WithCustomFunction("twice", 1, 1, func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return types.CommaList(args[0], args[0]), nil
		}),
		evaluator.WithFunctions(functions.AdvancedCustomFunctionDef{
			Name:    "apply",
			MinArgs: 1,
			MaxArgs: 1,
			Fn: func(ctx context.Context, host functions.Host, args ...*types.Node) (*types.Node, error) {
				rs, err := host.EvalRuleset(ctx, args[0].Rules, map[string]*types.Node{"x": types.Number(5)})
				if err != nil {
					return nil, err
				}
				return rs.Rules[0].Value, nil
			},
		}),
		// shadows the builtin
		evaluator.WithCustomFunction("l", 0, -1, func(_ context.Context, args ...*types.Node) (*types.Node, error) {
			return types.SpaceList(args...), nil
		}),
	)
	for src, want := range map[string]string{
		"twice(1)":          "1, 1",
		"apply({y: x * 2})": "10",
		"l(1)":              "1",
	} {
		got, err := eval(t, ev, src, nil)
		if err != nil {
			t.Fatalf("%s: %v", src, err)
		}
		if got.CSS() != want {
			t.Errorf("%s = %q, want %q", src, got.CSS(), want)
		}
	}
	names := ev.Functions()
	for _, name := range []string{"twice", "apply", "for-each", "dim"} {
		found := false
		for _, n := range names {
			found = found || n == name
		}
		if !found {
			t.Errorf("Functions() misses %s", name)
		}
	}
}

func TestRulesets(t *testing.T) {
	ev := evaluator.New()
	tests := []struct {
		src  string
		want string
	}{
		{"for_each([1, 2], {x: value * 10, i: index})", "{x: 10; i: 1; x: 20; i: 2}"},
		{"for_each(sp(a, b), [n, k], {name: n, pos: k})", "{name: a; pos: 1; name: b; pos: 2}"},
		{`for_each([1, 2], {"@d": value * 2, w: d + 1})`, "{@d: 2; w: 3; @d: 4; w: 5}"},
		{`to_list({"@w": 2, margin: w * 4, "font+": serif, "font+_": mono})`, "w 2, margin 8, font serif mono"},
		{"to_list(for_each([1, 2], {v: value}))", "v 1, v 2"},
	}
	for _, tt := range tests {
		got, err := eval(t, ev, tt.src, nil)
		if err != nil {
			t.Fatalf("%s: %v", tt.src, err)
		}
		if got.CSS() != tt.want {
			t.Errorf("%s = %q, want %q", tt.src, got.CSS(), tt.want)
		}
	}
}

func TestRulesetClosure(t *testing.T) {
	ev := evaluator.New()
	got, err := eval(t, ev, "for_each([1, 2], {v: value + base})", map[string]*types.Node{"base": types.Number(100)})
	if err != nil {
		t.Fatal(err)
	}
	if got.CSS() != "{v: 101; v: 102}" {
		t.Fatalf("got %q", got.CSS())
	}
}

func TestMaxDepth(t *testing.T) {
	ev := evaluator.New(evaluator.WithMaxDepth(3))
	if _, err := eval(t, ev, "l(l(l(l(1, 2), 2), 2), 2)", nil); code(err) != types.ErrDepthExceeded {
		t.Fatalf("expected %s, got %v", types.ErrDepthExceeded, err)
	}
	deep := types.Number(1)
	for range 5 {
		deep = types.CommaList(deep)
	}
	if _, err := eval(t, ev, "x + 1", map[string]*types.Node{"x": deep}); code(err) != types.ErrDepthExceeded {
		t.Fatalf("expected %s, got %v", types.ErrDepthExceeded, err)
	}
}

func TestCancellation(t *testing.T) {
	ev := evaluator.New(evaluator.WithTimeout(time.Second))
	expr, err := parser.Compile("cat(1, 2)")
	if err != nil {
		t.Fatal(err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := ev.Eval(ctx, expr); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if _, err := ev.Eval(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil expression")
	}
}

func TestEvalStringCaching(t *testing.T) {
	ev := evaluator.New(evaluator.WithCaching(true), evaluator.WithCacheSize(2))
	for range 3 {
		got, err := ev.EvalString(context.Background(), "join([1, 2], x)", map[string]*types.Node{"x": types.Quoted("+")})
		if err != nil {
			t.Fatal(err)
		}
		if got.CSS() != "1+2" {
			t.Fatalf("got %q", got.CSS())
		}
	}
	st := ev.Cache().Stats()
	if st.Hits != 2 || st.Misses != 1 {
		t.Fatalf("stats = %+v", st)
	}
	if evaluator.New().Cache() != nil {
		t.Fatal("cache enabled by default")
	}
}

func TestDebugLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ev := evaluator.New(evaluator.WithDebug(true), evaluator.WithLogger(logger))
	if _, err := eval(t, ev, "cat([1], 2) + 1", nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, msg := range []string{"evaluating node", "calling function", "broadcasting"} {
		if !strings.Contains(out, msg) {
			t.Errorf("debug output misses %q", msg)
		}
	}
}

func TestBuiltinNames(t *testing.T) {
	names := evaluator.BuiltinNames()
	if len(names) != len(lists.AllEntries())+3 {
		t.Fatalf("got %d builtins: %v", len(names), names)
	}
}
