package parser_test

import (
	"errors"
	"testing"

	"github.com/sandrolain/golists/pkg/parser"
	"github.com/sandrolain/golists/pkg/types"
)

func code(err error) types.ErrorCode {
	var te *types.Error
	if errors.As(err, &te) {
		return te.Code
	}
	return ""
}

func TestParseLiterals(t *testing.T) {
	tests := []struct {
		src string
		typ types.NodeType
		str string
		num float64
	}{
		{"42", types.NodeNumber, "", 42},
		{"2.5", types.NodeNumber, "", 2.5},
		{`"a b"`, types.NodeString, "a b", 0},
		{"solid", types.NodeName, "solid", 0},
		{"true", types.NodeName, "true", 0},
	}
	for _, tt := range tests {
		expr, err := parser.Parse(tt.src)
		if err != nil {
			t.Fatalf("%s: %v", tt.src, err)
		}
		ast := expr.AST()
		if ast.Type != tt.typ || ast.StrValue != tt.str || ast.NumValue != tt.num {
			t.Errorf("%s: got %s %q %v", tt.src, ast.Type, ast.StrValue, ast.NumValue)
		}
		if expr.Source() != tt.src {
			t.Errorf("source = %q", expr.Source())
		}
	}
}

func TestParsePositions(t *testing.T) {
	expr, err := parser.Parse("1 + at(xs, 2)")
	if err != nil {
		t.Fatal(err)
	}
	root := expr.AST()
	if root.LHS.Position != 0 {
		t.Errorf("lhs position = %d, want 0", root.LHS.Position)
	}
	if root.RHS.Position < 4 {
		t.Errorf("call position = %d, want at least 4", root.RHS.Position)
	}
	if arg := root.RHS.Arguments[1]; arg.Position <= root.RHS.Position {
		t.Errorf("argument position %d not after call %d", arg.Position, root.RHS.Position)
	}
}

func TestParseOperators(t *testing.T) {
	expr, err := parser.Parse("1 + 2 * -x")
	if err != nil {
		t.Fatal(err)
	}
	root := expr.AST()
	if root.Type != types.NodeBinary || root.StrValue != "+" {
		t.Fatalf("root = %s %s", root.Type, root.StrValue)
	}
	mul := root.RHS
	if mul.Type != types.NodeBinary || mul.StrValue != "*" {
		t.Fatalf("rhs = %s %s", mul.Type, mul.StrValue)
	}
	neg := mul.RHS
	if neg.Type != types.NodeUnary || neg.StrValue != "-" || neg.LHS.StrValue != "x" {
		t.Fatalf("unary = %s %s", neg.Type, neg.StrValue)
	}
}

func TestParseCalls(t *testing.T) {
	tests := []struct {
		src  string
		name string
		args int
	}{
		{"cat(1, [2, 3])", "cat", 2},
		{`join([1, 2], "-")`, "join", 2},
		{"flatten([[1]])", "flatten", 1},
		{"for_each(l, {x: value})", "for_each", 2},
	}
	for _, tt := range tests {
		ast := mustParse(t, tt.src).AST()
		if ast.Type != types.NodeFunction || ast.StrValue != tt.name || len(ast.Arguments) != tt.args {
			t.Errorf("%s: got %s %q with %d args", tt.src, ast.Type, ast.StrValue, len(ast.Arguments))
		}
	}
	expr := mustParse(t, "cat(1, [2, 3])")
	arr := expr.AST().Arguments[1]
	if arr.Type != types.NodeArray || len(arr.Arguments) != 2 {
		t.Fatalf("array = %s with %d items", arr.Type, len(arr.Arguments))
	}
}

func TestParseRuleset(t *testing.T) {
	expr := mustParse(t, `{"@v": 1, width: v * 2, "font+": a, "font+_": b}`)
	rs := expr.AST()
	if rs.Type != types.NodeRuleset {
		t.Fatalf("type = %s", rs.Type)
	}
	want := []struct{ name, merge string }{
		{"@v", types.MergeNone},
		{"width", types.MergeNone},
		{"font", types.MergeComma},
		{"font", types.MergeSpace},
	}
	if len(rs.Rules) != len(want) {
		t.Fatalf("got %d rules", len(rs.Rules))
	}
	for i, w := range want {
		r := rs.Rules[i]
		if r.Name != w.name || r.Merge != w.merge || r.Expr == nil {
			t.Errorf("rule %d = %q %q", i, r.Name, r.Merge)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		src  string
		want types.ErrorCode
	}{
		{"cat(1, ", types.ErrSyntaxError},
		{"1 % 2", types.ErrUnsupportedOperator},
		{"a == b", types.ErrUnsupportedOperator},
		{"!a", types.ErrUnsupportedOperator},
		{"a.b", types.ErrUnsupportedSyntax},
		{"a ? b : c", types.ErrUnsupportedSyntax},
		{"nil", types.ErrUnsupportedSyntax},
	}
	for _, tt := range tests {
		_, err := parser.Parse(tt.src)
		if code(err) != tt.want {
			t.Errorf("%s: expected %s, got %v", tt.src, tt.want, err)
		}
	}
}

func TestCompileMaxDepth(t *testing.T) {
	src := "l(l(l(l(l(1, 2), 2), 2), 2), 2)"
	if _, err := parser.Compile(src, parser.WithMaxDepth(3)); code(err) != types.ErrDepthExceeded {
		t.Fatalf("expected %s, got %v", types.ErrDepthExceeded, err)
	}
	if _, err := parser.Compile(src); err != nil {
		t.Fatal(err)
	}
}

func mustParse(t *testing.T, src string) *types.Expression {
	t.Helper()
	expr, err := parser.Parse(src)
	if err != nil {
		t.Fatal(err)
	}
	return expr
}
