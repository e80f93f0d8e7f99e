package arith_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/sandrolain/golists/pkg/arith"
	"github.com/sandrolain/golists/pkg/lists"
	"github.com/sandrolain/golists/pkg/types"
)

func nums(vs ...float64) *types.Node {
	items := make([]*types.Node, len(vs))
	for i, v := range vs {
		items[i] = types.Number(v)
	}
	return types.CommaList(items...)
}

func code(err error) types.ErrorCode {
	var te *types.Error
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

func TestScalar(t *testing.T) {
	ctx := context.Background()
	px := func(v float64) *types.Node { return types.Dimension(v, "px") }
	tests := []struct {
		op   string
		a, b *types.Node
		want string
	}{
		{"+", types.Number(1), types.Number(2), "3"},
		{"-", px(5), types.Number(2), "3px"},
		{"*", types.Number(2), px(4), "8px"},
		{"/", px(10), px(4), "2.5"},
		{"/", px(10), types.Number(4), "2.5px"},
		{"+", px(1), types.Dimension(1, "em"), "2px"},
	}
	for _, tt := range tests {
		got, err := arith.Scalar{}.Operate(ctx, tt.op, tt.a, tt.b)
		if err != nil {
			t.Fatal(err)
		}
		if got.CSS() != tt.want {
			t.Errorf("%v %s %v = %s, want %s", tt.a, tt.op, tt.b, got.CSS(), tt.want)
		}
	}
}

func TestScalarErrors(t *testing.T) {
	ctx := context.Background()
	if _, err := (arith.Scalar{}).Operate(ctx, "/", types.Number(1), types.Number(0)); code(err) != types.ErrDivisionByZero {
		t.Fatalf("expected %s, got %v", types.ErrDivisionByZero, err)
	}
	if _, err := (arith.Scalar{}).Operate(ctx, "+", types.Keyword("a"), types.Number(1)); code(err) != types.ErrInvalidOperand {
		t.Fatalf("expected %s, got %v", types.ErrInvalidOperand, err)
	}
	if _, err := (arith.Scalar{}).Operate(ctx, "%", types.Number(1), types.Number(1)); code(err) != types.ErrInvalidOperand {
		t.Fatalf("expected %s, got %v", types.ErrInvalidOperand, err)
	}
}

func TestBroadcast(t *testing.T) {
	ctx := context.Background()
	b := arith.Install(arith.Scalar{})
	tests := []struct {
		name string
		a, b *types.Node
		want *types.Node
	}{
		{"lists", nums(1, 2, 3), nums(10, 20, 30), nums(11, 22, 33)},
		{"list scalar", nums(1, 2, 3), types.Number(10), nums(11, 12, 13)},
		{"scalar list", types.Number(10), types.SpaceList(types.Number(1)), types.SpaceList(types.Number(11))},
		{"scalars", types.Number(1), types.Number(2), types.Number(3)},
		{"left kind wins", types.SpaceList(types.Number(1)), nums(1), types.SpaceList(types.Number(2))},
		{"nested", types.CommaList(nums(1, 2), nums(3, 4)), types.Number(1),
			types.CommaList(nums(2, 3), nums(4, 5))},
		{"empty lists", nums(), nums(), nums()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Operate(ctx, "+", tt.a, tt.b)
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("(-want +got):\n%s", diff)
			}
		})
	}
}

func TestBroadcastShapeLaw(t *testing.T) {
	ctx := context.Background()
	b := arith.Install(nil)
	a := nums(3, -1, 7.5, 0)
	s := types.Dimension(2, "px")
	for _, op := range []string{"+", "-", "*", "/"} {
		got, err := b.Operate(ctx, op, a, s)
		if err != nil {
			t.Fatal(err)
		}
		if got.Len() != a.Len() {
			t.Fatalf("%s: length %d, want %d", op, got.Len(), a.Len())
		}
		for i, it := range a.Items {
			want, _ := arith.Scalar{}.Operate(ctx, op, it, s)
			if !types.Equal(want, got.Items[i]) {
				t.Fatalf("%s[%d]: %v, want %v", op, i, got.Items[i], want)
			}
		}
	}
}

func TestBroadcastLengthMismatch(t *testing.T) {
	_, err := arith.Install(arith.Scalar{}).Operate(context.Background(), "+", nums(1, 2), nums(1, 2, 3))
	if code(err) != types.ErrListLengthMismatch {
		t.Fatalf("expected %s, got %v", types.ErrListLengthMismatch, err)
	}
	if !strings.Contains(err.Error(), "`+` op, incompatible lists length (2 vs. 3)") {
		t.Fatalf("message: %v", err)
	}
}

func TestBroadcastDepth(t *testing.T) {
	deep := types.Number(1)
	for range 10 {
		deep = types.CommaList(deep)
	}
	b := arith.Install(arith.Scalar{}, arith.WithMaxDepth(5))
	if _, err := b.Operate(context.Background(), "+", deep, types.Number(1)); code(err) != types.ErrDepthExceeded {
		t.Fatalf("expected %s, got %v", types.ErrDepthExceeded, err)
	}
	b = arith.Install(arith.Scalar{}, arith.WithMaxDepth(0))
	got, err := b.Operate(context.Background(), "+", deep, types.Number(1))
	if err != nil {
		t.Fatal(err)
	}
	if s := lists.Stringify(got, "[", "]"); s != "[[[[[[[[[[2]]]]]]]]]]" {
		t.Fatalf("got %s", s)
	}
}

func TestInstallIdempotent(t *testing.T) {
	calls := 0
	base := arith.Func(func(ctx context.Context, op string, a, b *types.Node) (*types.Node, error) {
		calls++
		return arith.Scalar{}.Operate(ctx, op, a, b)
	})
	var a arith.Arithmetic = base
	for range 50 {
		a = arith.Install(a)
	}
	b := a.(*arith.Broadcast)
	if _, ok := b.Base.(*arith.Broadcast); ok {
		t.Fatal("broadcast wraps another broadcast")
	}
	if _, err := b.Operate(context.Background(), "*", nums(1, 2), types.Number(2)); err != nil {
		t.Fatal(err)
	}
	if calls != 2 {
		t.Fatalf("base called %d times, want 2", calls)
	}
	if _, ok := arith.Unwrap(a).(arith.Func); !ok {
		t.Fatalf("Unwrap = %T", arith.Unwrap(a))
	}
}

func TestInstallKeepsSettings(t *testing.T) {
	b := arith.Install(arith.Scalar{}, arith.WithMaxDepth(7))
	again := arith.Install(b)
	if again.MaxDepth != 7 {
		t.Fatalf("MaxDepth = %d", again.MaxDepth)
	}
}

func TestBroadcastLogs(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	b := arith.Install(arith.Scalar{}, arith.WithLogger(logger))
	if _, err := b.Operate(context.Background(), "+", nums(1), nums(1)); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "broadcasting") {
		t.Fatalf("expected debug output, got %q", buf.String())
	}
}
