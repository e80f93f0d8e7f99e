// Package arith provides the binary arithmetic strategies used by the
// evaluator.
//
// The evaluator delegates every binary arithmetic operation to an
// [Arithmetic]. [Scalar] is the default strategy for numbers with units;
// [Broadcast] decorates another strategy so that lists are combined
// elementwise:
//
//	a := arith.Install(arith.Scalar{})
//	r, err := a.Operate(ctx, "+", types.CommaList(one, two), ten)
//	// r: 11, 12
package arith

import (
	"context"
	"math"

	"github.com/sandrolain/golists/pkg/types"
)

// Arithmetic evaluates op on two evaluated operands.
type Arithmetic interface {
	Operate(ctx context.Context, op string, a, b *types.Node) (*types.Node, error)
}

// Func adapts an ordinary function to Arithmetic.
type Func func(ctx context.Context, op string, a, b *types.Node) (*types.Node, error)

// Operate calls f.
func (f Func) Operate(ctx context.Context, op string, a, b *types.Node) (*types.Node, error) {
	return f(ctx, op, a, b)
}

// Scalar operates on dimensions. Units are not converted: a unitless
// operand takes the other operand's unit, and dividing equal units yields
// a unitless number.
type Scalar struct{}

// Operate implements Arithmetic.
func (Scalar) Operate(_ context.Context, op string, a, b *types.Node) (*types.Node, error) {
	if a == nil || b == nil || a.Kind != types.KindDimension || b.Kind != types.KindDimension {
		return nil, types.Errorf(types.ErrInvalidOperand,
			"`%s` op, operation on an invalid type (%s and %s)", op, kindOf(a), kindOf(b))
	}
	unit := a.Unit
	if unit == "" {
		unit = b.Unit
	}
	var v float64
	switch op {
	case "+":
		v = a.Number + b.Number
	case "-":
		v = a.Number - b.Number
	case "*":
		v = a.Number * b.Number
	case "/":
		if b.Number == 0 {
			return nil, types.Errorf(types.ErrDivisionByZero, "`/` op, division by zero")
		}
		v = a.Number / b.Number
		if a.Unit != "" && a.Unit == b.Unit {
			unit = ""
		}
	default:
		return nil, types.Errorf(types.ErrInvalidOperand, "unsupported arithmetic operator `%s`", op)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, types.Errorf(types.ErrInvalidOperand, "`%s` op, number out of range", op)
	}
	return types.Dimension(v, unit), nil
}

func kindOf(n *types.Node) string {
	if n == nil {
		return "nothing"
	}
	return n.Kind.String()
}
