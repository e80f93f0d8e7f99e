package golists_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/sandrolain/golists/pkg/evaluator"
	"github.com/sandrolain/golists/pkg/parser"
	"github.com/sandrolain/golists/pkg/types"
)

func numbers(n int) *types.Node {
	items := make([]*types.Node, n)
	for i := range items {
		items[i] = types.Dimension(float64(i), "px")
	}
	return types.CommaList(items...)
}

func matrix(rows, cols int) *types.Node {
	out := make([]*types.Node, rows)
	for i := range out {
		out[i] = types.SpaceList(numbers(cols).Items...)
	}
	return types.CommaList(out...)
}

func BenchmarkParse(b *testing.B) {
	src := `join(transpose(slice(rows, 2, -1)) * 2 + l(1, 2), "-")`
	b.ReportAllocs()
	for b.Loop() {
		if _, err := parser.Compile(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEval(b *testing.B) {
	cases := []struct {
		name string
		src  string
	}{
		{"At", `at(xs, -1)`},
		{"Slice", `slice(xs, 2, -1)`},
		{"Flatten", `flatten(rows)`},
		{"Transpose", `transpose(rows)`},
		{"Broadcast", `rows * 2`},
	}
	ctx := context.Background()
	for _, size := range []int{10, 100} {
		bindings := map[string]*types.Node{"xs": numbers(size), "rows": matrix(size, size)}
		for _, c := range cases {
			b.Run(fmt.Sprintf("%s_%d", c.name, size), func(b *testing.B) {
				expr, err := parser.Compile(c.src)
				if err != nil {
					b.Fatal(err)
				}
				ev := evaluator.New()
				b.ReportAllocs()
				for b.Loop() {
					if _, err := ev.EvalWithBindings(ctx, expr, bindings); err != nil {
						b.Fatal(err)
					}
				}
			})
		}
	}
}

func BenchmarkEvalStringCached(b *testing.B) {
	ev := evaluator.New(evaluator.WithCaching(true))
	bindings := map[string]*types.Node{"xs": numbers(10)}
	ctx := context.Background()
	b.ReportAllocs()
	for b.Loop() {
		if _, err := ev.EvalString(ctx, `xs * 2`, bindings); err != nil {
			b.Fatal(err)
		}
	}
}
