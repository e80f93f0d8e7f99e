package arith

import (
	"context"
	"log/slog"

	"github.com/sandrolain/golists/pkg/types"
)

// DefaultMaxDepth bounds the list nesting Broadcast descends into.
const DefaultMaxDepth = 1000

// Broadcast applies Base elementwise when either operand is a list.
//
// A list and a scalar combine into a list of the list's kind where the
// scalar meets every element. Two lists must have the same length and
// combine pairwise into a list of the left operand's kind. Each pair is
// evaluated by Broadcast itself, so nested lists broadcast at every depth.
type Broadcast struct {
	Base     Arithmetic
	MaxDepth int
	Logger   *slog.Logger
}

// Option configures a Broadcast.
type Option func(*Broadcast)

// WithMaxDepth sets the maximum nesting depth. Zero disables the bound.
func WithMaxDepth(depth int) Option {
	return func(b *Broadcast) {
		b.MaxDepth = depth
	}
}

// WithLogger sets a logger for debug output.
func WithLogger(logger *slog.Logger) Option {
	return func(b *Broadcast) {
		b.Logger = logger
	}
}

// Install decorates a with broadcasting. If a already is a Broadcast, or
// wraps one, the new decorator is built over the innermost non-broadcast
// strategy, so installing any number of times yields a single layer.
// A nil a installs over Scalar.
func Install(a Arithmetic, opts ...Option) *Broadcast {
	b := &Broadcast{MaxDepth: DefaultMaxDepth}
	if prev, ok := a.(*Broadcast); ok {
		b.MaxDepth = prev.MaxDepth
		b.Logger = prev.Logger
	}
	b.Base = Unwrap(a)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Unwrap strips every Broadcast layer from a.
func Unwrap(a Arithmetic) Arithmetic {
	for {
		b, ok := a.(*Broadcast)
		if !ok {
			break
		}
		a = b.Base
	}
	if a == nil {
		return Scalar{}
	}
	return a
}

type depthKey struct{}

func depthOf(ctx context.Context) int {
	if d, ok := ctx.Value(depthKey{}).(int); ok {
		return d
	}
	return 0
}

func withDepth(ctx context.Context, depth int) context.Context {
	return context.WithValue(ctx, depthKey{}, depth)
}

// Operate implements Arithmetic.
func (b *Broadcast) Operate(ctx context.Context, op string, x, y *types.Node) (*types.Node, error) {
	xl, yl := x.IsContainer(), y.IsContainer()
	if !xl && !yl {
		return Unwrap(b.Base).Operate(ctx, op, x, y)
	}

	depth := depthOf(ctx)
	if b.MaxDepth > 0 && depth >= b.MaxDepth {
		return nil, types.Errorf(types.ErrDepthExceeded, "`%s` op, list nesting deeper than %d", op, b.MaxDepth)
	}
	ctx = withDepth(ctx, depth+1)

	var (
		n    int
		kind types.Kind
	)
	switch {
	case xl && yl:
		if len(x.Items) != len(y.Items) {
			return nil, types.Errorf(types.ErrListLengthMismatch,
				"`%s` op, incompatible lists length (%d vs. %d)", op, len(x.Items), len(y.Items))
		}
		n, kind = len(x.Items), x.Kind
	case xl:
		n, kind = len(x.Items), x.Kind
	default:
		n, kind = len(y.Items), y.Kind
	}

	if b.Logger != nil {
		b.Logger.Debug("broadcasting", "op", op, "len", n, "kind", kind, "depth", depth)
	}

	out := make([]*types.Node, n)
	for i := range n {
		xi, yi := x, y
		if xl {
			xi = x.Items[i]
		}
		if yl {
			yi = y.Items[i]
		}
		r, err := b.Operate(ctx, op, xi, yi)
		if err != nil {
			return nil, err
		}
		out[i] = r
	}
	return types.NewList(kind, out...), nil
}
