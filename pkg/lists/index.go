package lists

import (
	"math"

	"github.com/sandrolain/golists/pkg/types"
)

// maxIndex bounds index magnitudes before integer conversion. It is far
// past any list length, so clamped indices keep their distance to in-range
// ones and splice counts between two indices still cover the list.
const maxIndex = math.MaxInt32 / 2

// NormalizeIndex converts a 1-based index into a 0-based offset into a
// sequence of length n. Zero and negative indices address from the end.
// Indices far outside the sequence are clamped before conversion, so they
// still land past either end. A nil index selects def. An index that is
// not a unitless number is an argument error.
func NormalizeIndex(n int, index *types.Node, def int) (int, error) {
	v := def
	if index != nil {
		if !index.IsUnitless() || math.IsNaN(index.Number) {
			return 0, types.Errorf(types.ErrUnexpectedIndex, "unexpected index `%s`", index.CSS())
		}
		v = int(min(max(index.Number, -maxIndex), maxIndex))
	}
	if v < 1 {
		return v + n, nil
	}
	return v - 1, nil
}

// clampOffset resolves a relative offset the way array slicing does:
// negative offsets count from the end and the result lies in [0, n].
func clampOffset(i, n int) int {
	if i < 0 {
		i += n
		if i < 0 {
			return 0
		}
		return i
	}
	if i > n {
		return n
	}
	return i
}

// At returns the element of list at index. An index carrying a unit or
// that is not a number is used as a key instead (see AtKey). A lone scalar
// behaves as a one-element list. Out of range and fractional indices
// yield nil.
func At(list, index *types.Node) *types.Node {
	if list == nil || index == nil {
		return nil
	}
	if !index.IsUnitless() {
		return AtKey(list, index)
	}
	if index.Number != math.Trunc(index.Number) {
		return nil
	}
	items := list.Elements()
	if math.Abs(index.Number) > float64(len(items)) {
		return nil
	}
	i := int(index.Number)
	if i < 1 {
		i += len(items)
	} else {
		i--
	}
	if i < 0 || i >= len(items) {
		return nil
	}
	return items[i]
}

// AtKey scans the top-level entries of list for key. A container entry is
// a pair whose first element is compared with key; a scalar entry that
// equals key yields an empty marker. A space list whose first element is a
// scalar is a single unwrapped pair. Missing keys yield an empty marker.
func AtKey(list, key *types.Node) *types.Node {
	if list == nil || key == nil {
		return types.Empty()
	}
	entries := list.Elements()
	if list.Kind == types.KindSpaceList && len(list.Items) > 0 && !list.Items[0].IsContainer() {
		entries = []*types.Node{list}
	}
	for _, entry := range entries {
		if !entry.IsContainer() {
			if types.Equal(key, entry) {
				return types.Empty()
			}
			continue
		}
		if len(entry.Items) == 0 || !types.Equal(key, entry.Items[0]) {
			continue
		}
		switch len(entry.Items) {
		case 1:
			return types.Empty()
		case 2:
			return entry.Items[1]
		default:
			return types.NewList(entry.Kind, entry.Items[1:]...)
		}
	}
	return types.Empty()
}

// Slice returns the elements of list from start up to, not including, end
// as a new list of the same kind. start defaults to 1 and end to one past
// the last element.
func Slice(list, start, end *types.Node) (*types.Node, error) {
	if list == nil {
		return nil, nil
	}
	items := list.Elements()
	n := len(items)
	s, err := NormalizeIndex(n, start, 1)
	if err != nil {
		return nil, err
	}
	e, err := NormalizeIndex(n, end, 0)
	if err != nil {
		return nil, err
	}
	s, e = clampOffset(s, n), clampOffset(e, n)
	if e < s {
		e = s
	}
	return types.NewList(list.Kind, items[s:e]...), nil
}

// Splice returns a copy of list with the span [start, end) removed and,
// when replacement is non-nil, replacement inserted at start as a single
// element. When end is omitted it defaults to start+2 before
// normalization.
func Splice(list, start, end, replacement *types.Node) (*types.Node, error) {
	if list == nil {
		return nil, nil
	}
	items := list.Elements()
	n := len(items)
	s, err := NormalizeIndex(n, start, 1)
	if err != nil {
		return nil, err
	}
	e, err := NormalizeIndex(n, end, s+2)
	if err != nil {
		return nil, err
	}
	count := e - s
	s = clampOffset(s, n)
	count = min(max(count, 0), n-s)

	out := make([]*types.Node, 0, n-count+1)
	out = append(out, items[:s]...)
	if replacement != nil {
		out = append(out, replacement)
	}
	out = append(out, items[s+count:]...)
	return types.NewList(list.Kind, out...), nil
}
