package evaluator

import (
	"context"

	"github.com/sandrolain/golists/pkg/functions"
	"github.com/sandrolain/golists/pkg/types"
)

var _ functions.Host = (*Evaluator)(nil)

// EvalRuleset evaluates the pending rules of rs in a child of the scope rs
// was created in, extended with bindings. Variable rules bind their value
// for the rules that follow them. It implements functions.Host.
func (e *Evaluator) EvalRuleset(ctx context.Context, rs *types.Ruleset, bindings map[string]*types.Node) (*types.Ruleset, error) {
	if rs == nil {
		return types.NewRuleset(nil), nil
	}
	scope, ok := rs.Scope.(*EvalContext)
	if !ok || scope == nil {
		scope = NewContext()
	}
	local := scope.NewChildContext()
	local.SetBindings(bindings)

	out := make([]types.Rule, 0, len(rs.Rules))
	for _, r := range rs.Rules {
		value := r.Value
		if !r.Evaluated() {
			v, err := e.evalOperand(ctx, r.Expr, local)
			if err != nil {
				return nil, err
			}
			value = v
		}
		if r.IsVariable() {
			local.SetBinding(r.BareName(), value)
		}
		out = append(out, types.Rule{Name: r.Name, Merge: r.Merge, Value: value})
	}
	return types.NewRuleset(local, out...), nil
}
