package lists

import (
	"strings"

	"github.com/sandrolain/golists/pkg/types"
)

// Cat concatenates its arguments into one list. Container arguments
// contribute their elements one level deep; scalars are appended as is.
// The result takes the kind of the first container argument, or is a
// comma list when there is none.
func Cat(args ...*types.Node) *types.Node {
	kind := types.KindCommaList
	found := false
	var items []*types.Node
	for _, arg := range args {
		if arg == nil {
			continue
		}
		if !arg.IsContainer() {
			items = append(items, arg)
			continue
		}
		if !found {
			kind = arg.Kind
			found = true
		}
		items = append(items, arg.Items...)
	}
	return types.NewList(kind, items...)
}

// L wraps its arguments in a comma list. It needs at least two arguments
// and returns nil otherwise.
func L(args ...*types.Node) *types.Node {
	if len(args) < 2 {
		return nil
	}
	return types.CommaList(args...)
}

// DelimiterKind maps a delimiter keyword to a list kind.
func DelimiterKind(delim *types.Node) (types.Kind, error) {
	switch delim.RawText() {
	case "comma", ",":
		return types.KindCommaList, nil
	case "space", " ":
		return types.KindSpaceList, nil
	}
	return 0, types.Errorf(types.ErrInvalidDelimiter,
		"invalid `%s` delimiter. Expected `comma`, `space`, `,` or ` `", delim.CSS())
}

// Flatten expands nested lists at every depth into a single list of
// scalar leaves. The result is a comma list unless delim names another
// kind. Scalars are returned unchanged.
func Flatten(list, delim *types.Node) (*types.Node, error) {
	if !list.IsContainer() {
		return list, nil
	}
	kind := types.KindCommaList
	if delim != nil {
		k, err := DelimiterKind(delim)
		if err != nil {
			return nil, err
		}
		kind = k
	}
	return types.NewList(kind, leaves(nil, list.Items)...), nil
}

func leaves(dst, items []*types.Node) []*types.Node {
	for _, it := range items {
		if it.IsContainer() {
			dst = leaves(dst, it.Items)
			continue
		}
		dst = append(dst, it)
	}
	return dst
}

// Transpose swaps rows and columns of a list of rows. A scalar row is a
// row of one. Columns run as wide as the first row; cells missing from
// shorter rows are filled with empty markers. Columns take the kind of the
// outer list and the result takes the kind of the first row.
func Transpose(list *types.Node) *types.Node {
	if !list.IsContainer() || len(list.Items) == 0 {
		return list
	}
	rows := list.Items
	width := rows[0].Len()
	cols := make([]*types.Node, width)
	for i := range width {
		cells := make([]*types.Node, len(rows))
		for j, row := range rows {
			els := row.Elements()
			if i < len(els) {
				cells[j] = els[i]
			} else {
				cells[j] = types.Empty()
			}
		}
		cols[i] = types.NewList(list.Kind, cells...)
	}
	return types.NewList(rows[0].Kind, cols...)
}

// Join renders every leaf of list and joins them with delim, ", " by
// default, whatever the nesting. A scalar renders as its own text.
func Join(list, delim *types.Node) *types.Node {
	if !list.IsContainer() {
		return types.Anonymous(list.CSS())
	}
	sep := ", "
	if delim != nil {
		sep = delim.RawText()
	}
	ls := leaves(nil, list.Items)
	parts := make([]string, len(ls))
	for i, leaf := range ls {
		parts[i] = leaf.CSS()
	}
	return types.Anonymous(strings.Join(parts, sep))
}

// Stringify renders n, wrapping every list level in prefix and suffix and
// separating items by the list's own delimiter.
func Stringify(n *types.Node, prefix, suffix string) string {
	if !n.IsContainer() {
		return n.CSS()
	}
	parts := make([]string, len(n.Items))
	for i, it := range n.Items {
		parts[i] = Stringify(it, prefix, suffix)
	}
	return prefix + strings.Join(parts, n.Kind.Delimiter()) + suffix
}

// Inspect returns a debug rendering of n, bracketed by "[" and "]" unless
// prefix or suffix are given.
func Inspect(n, prefix, suffix *types.Node) *types.Node {
	pre, post := "[", "]"
	if prefix != nil {
		pre = prefix.RawText()
	}
	if suffix != nil {
		post = suffix.RawText()
	}
	return types.Anonymous(Stringify(n, pre, post))
}
