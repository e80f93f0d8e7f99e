// Package cascade holds the pieces of rule resolution that list operations
// borrow from the host stylesheet pipeline.
package cascade

import "github.com/sandrolain/golists/pkg/types"

// MergeRules folds every rule carrying a merge flag into the first rule of
// the same name, which keeps its position. Values are grouped into space
// lists inside a comma list: a "+" rule starts a new comma segment and a
// "+_" rule extends the current space segment. Rules without a flag pass
// through untouched. The input slice is not modified.
func MergeRules(rules []types.Rule) []types.Rule {
	out := make([]types.Rule, 0, len(rules))
	first := map[string]int{}
	groups := map[string][]types.Rule{}
	for _, r := range rules {
		if r.Merge == types.MergeNone {
			out = append(out, r)
			continue
		}
		if _, ok := first[r.Name]; !ok {
			first[r.Name] = len(out)
			out = append(out, r)
		}
		groups[r.Name] = append(groups[r.Name], r)
	}
	for i := range out {
		r := out[i]
		group, ok := groups[r.Name]
		if !ok || first[r.Name] != i {
			continue
		}
		out[i].Value = mergeValues(group)
	}
	return out
}

func mergeValues(group []types.Rule) *types.Node {
	var comma []*types.Node
	var space []*types.Node
	for _, r := range group {
		if r.Merge == types.MergeComma && len(space) > 0 {
			comma = append(comma, types.SpaceList(space...))
			space = nil
		}
		space = append(space, r.Value)
	}
	comma = append(comma, types.SpaceList(space...))
	return types.CommaList(comma...)
}
