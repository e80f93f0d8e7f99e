package evaluator

import (
	"context"
	"errors"
	"fmt"

	"github.com/sandrolain/golists/pkg/types"
)

// recurseDepthKey is used to store call depth in context.Context.
type recurseDepthKey struct{}

// getRecurseDepth returns the current call depth from a context.Context.
func getRecurseDepth(ctx context.Context) int {
	if d, ok := ctx.Value(recurseDepthKey{}).(int); ok {
		return d
	}
	return 0
}

// withRecurseDepth returns a context.Context carrying depth.
func withRecurseDepth(ctx context.Context, depth int) context.Context {
	return context.WithValue(ctx, recurseDepthKey{}, depth)
}

func (e *Evaluator) evalNode(ctx context.Context, node *types.ASTNode, evalCtx *EvalContext) (*types.Node, error) {
	// Check context cancellation
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	if node == nil {
		return nil, nil
	}

	if e.opts.Debug {
		e.logger.Debug("evaluating node",
			"type", node.Type,
			"value", node.StrValue,
			"depth", evalCtx.Depth())
	}

	switch node.Type {
	case types.NodeNumber:
		return types.Number(node.NumValue), nil
	case types.NodeString:
		return types.Quoted(node.StrValue), nil
	case types.NodeName:
		return e.evalName(node, evalCtx), nil
	case types.NodeUnary:
		return e.evalUnary(ctx, node, evalCtx)
	case types.NodeBinary:
		return e.evalBinary(ctx, node, evalCtx)
	case types.NodeArray:
		return e.evalArray(ctx, node, evalCtx)
	case types.NodeFunction:
		return e.evalFunction(ctx, node, evalCtx)
	case types.NodeRuleset:
		return types.Detached(types.NewRuleset(evalCtx, node.Rules...)), nil
	default:
		return nil, types.NewError(types.ErrUnsupportedSyntax,
			fmt.Sprintf("unsupported node type: %s", node.Type), node.Position)
	}
}

// evalName resolves a binding. Unbound names evaluate to keywords.
func (e *Evaluator) evalName(node *types.ASTNode, evalCtx *EvalContext) *types.Node {
	if v, ok := evalCtx.GetBinding(node.StrValue); ok {
		return v
	}
	return types.Keyword(node.StrValue)
}

// evalOperand evaluates an operand or argument. An absent value becomes
// an empty marker so operations never see nil.
func (e *Evaluator) evalOperand(ctx context.Context, node *types.ASTNode, evalCtx *EvalContext) (*types.Node, error) {
	v, err := e.evalNode(ctx, node, evalCtx)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return types.Empty(), nil
	}
	return v, nil
}

// evalUnary evaluates a sign. Negation multiplies by -1 through the
// arithmetic strategy, so it broadcasts over lists.
func (e *Evaluator) evalUnary(ctx context.Context, node *types.ASTNode, evalCtx *EvalContext) (*types.Node, error) {
	v, err := e.evalOperand(ctx, node.LHS, evalCtx)
	if err != nil {
		return nil, err
	}
	switch node.StrValue {
	case "+":
		return v, nil
	case "-":
		return e.operate(ctx, node, "*", types.Number(-1), v)
	}
	return nil, types.NewError(types.ErrUnsupportedOperator,
		fmt.Sprintf("unsupported unary operator `%s`", node.StrValue), node.Position)
}

// evalBinary evaluates both operands left to right and hands them to the
// arithmetic strategy.
func (e *Evaluator) evalBinary(ctx context.Context, node *types.ASTNode, evalCtx *EvalContext) (*types.Node, error) {
	left, err := e.evalOperand(ctx, node.LHS, evalCtx)
	if err != nil {
		return nil, err
	}
	right, err := e.evalOperand(ctx, node.RHS, evalCtx)
	if err != nil {
		return nil, err
	}
	return e.operate(ctx, node, node.StrValue, left, right)
}

func (e *Evaluator) operate(ctx context.Context, node *types.ASTNode, op string, left, right *types.Node) (*types.Node, error) {
	result, err := e.arith.Operate(ctx, op, left, right)
	if err != nil {
		var te *types.Error
		if errors.As(err, &te) && te.Position < 0 {
			te.Position = node.Position
		}
		return nil, err
	}
	return result, nil
}

// evalArray builds a comma list.
func (e *Evaluator) evalArray(ctx context.Context, node *types.ASTNode, evalCtx *EvalContext) (*types.Node, error) {
	items := make([]*types.Node, len(node.Arguments))
	for i, arg := range node.Arguments {
		v, err := e.evalOperand(ctx, arg, evalCtx)
		if err != nil {
			return nil, err
		}
		items[i] = v
	}
	return types.CommaList(items...), nil
}

// evalFunction evaluates the arguments left to right and calls the named
// function.
func (e *Evaluator) evalFunction(ctx context.Context, node *types.ASTNode, evalCtx *EvalContext) (*types.Node, error) {
	name := node.StrValue
	fn, ok := e.lookupFunction(name)
	if !ok {
		return nil, types.NewError(types.ErrUndefinedFunction,
			fmt.Sprintf("function %s is not defined", name), node.Position).WithToken(name)
	}

	depth := getRecurseDepth(ctx)
	if e.opts.MaxDepth > 0 && depth >= e.opts.MaxDepth {
		return nil, types.NewError(types.ErrDepthExceeded, "maximum recursion depth exceeded", node.Position)
	}
	ctx = withRecurseDepth(ctx, depth+1)

	args := make([]*types.Node, len(node.Arguments))
	for i, arg := range node.Arguments {
		v, err := e.evalOperand(ctx, arg, evalCtx)
		if err != nil {
			return nil, err
		}
		args[i] = v
	}

	if len(args) < fn.MinArgs {
		return nil, types.NewError(types.ErrArgumentCountMismatch,
			fmt.Sprintf("function %s requires at least %d arguments, got %d", fn.Name, fn.MinArgs, len(args)), node.Position).WithToken(name)
	}
	if fn.MaxArgs != -1 && len(args) > fn.MaxArgs {
		return nil, types.NewError(types.ErrArgumentCountMismatch,
			fmt.Sprintf("function %s accepts at most %d arguments, got %d", fn.Name, fn.MaxArgs, len(args)), node.Position).WithToken(name)
	}

	if e.opts.Debug {
		e.logger.Debug("calling function", "name", fn.Name, "args", len(args), "depth", depth)
	}

	result, err := fn.Impl(ctx, e, args)
	if err != nil {
		var te *types.Error
		if errors.As(err, &te) && te.Position < 0 {
			te.Position = node.Position
			if te.Token == "" {
				te.Token = name
			}
		}
		return nil, err
	}
	return result, nil
}
