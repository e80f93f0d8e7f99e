package lists

import (
	"context"
	"strings"

	"github.com/sandrolain/golists/pkg/cascade"
	"github.com/sandrolain/golists/pkg/functions"
	"github.com/sandrolain/golists/pkg/types"
)

// Default binding names of ForEach.
const (
	DefaultValueName = "value"
	DefaultIndexName = "index"
)

func expectRuleset(fn string, n *types.Node) (*types.Ruleset, error) {
	if n == nil || n.Kind != types.KindDetached || n.Rules == nil {
		return nil, types.Errorf(types.ErrExpectedRuleset, "%s: expected a detached ruleset, got `%s`", fn, n.CSS())
	}
	return n.Rules, nil
}

// ForEach evaluates body once per element of list with the element bound
// to "value" and its 1-based position bound to "index", and returns the
// concatenated rules as a detached ruleset. vars, when non-nil, renames
// the two bindings. When body is nil, vars is taken as the body.
func ForEach(ctx context.Context, host functions.Host, list, vars, body *types.Node) (*types.Node, error) {
	if body == nil {
		body, vars = vars, nil
	}
	rs, err := expectRuleset("for-each", body)
	if err != nil {
		return nil, err
	}
	valueName, indexName := DefaultValueName, DefaultIndexName
	if vars != nil {
		names := vars.Elements()
		if len(names) > 0 {
			valueName = strings.TrimPrefix(names[0].RawText(), "@")
		}
		if len(names) > 1 {
			indexName = strings.TrimPrefix(names[1].RawText(), "@")
		}
	}

	var out []types.Rule
	for i, item := range list.Elements() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		iter, err := host.EvalRuleset(ctx, rs, map[string]*types.Node{
			indexName: types.Number(float64(i + 1)),
			valueName: item,
		})
		if err != nil {
			return nil, err
		}
		out = append(out, iter.Rules...)
	}
	return types.Detached(types.NewRuleset(nil, out...)), nil
}

// ToList evaluates a detached ruleset, merges its properties and returns
// a comma list of "name value" space lists.
func ToList(ctx context.Context, host functions.Host, obj *types.Node) (*types.Node, error) {
	rs, err := expectRuleset("to-list", obj)
	if err != nil {
		return nil, err
	}
	evaluated, err := host.EvalRuleset(ctx, rs, nil)
	if err != nil {
		return nil, err
	}
	rules := cascade.MergeRules(evaluated.Rules)
	items := make([]*types.Node, 0, len(rules))
	for _, r := range rules {
		value := r.Value
		if value == nil {
			value = types.Empty()
		}
		items = append(items, types.SpaceList(types.Keyword(r.BareName()), value))
	}
	return types.CommaList(items...), nil
}
