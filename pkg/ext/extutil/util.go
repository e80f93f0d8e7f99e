// Package extutil provides shared helpers for the ext sub-packages.
package extutil

import (
	"math"

	"github.com/sandrolain/golists/pkg/types"
)

// AsInt returns the value of a unitless integer node.
func AsInt(n *types.Node) (int, error) {
	if !n.IsUnitless() || n.Number != math.Trunc(n.Number) {
		return 0, types.Errorf(types.ErrUnexpectedIndex, "expected an integer, got `%s`", n.CSS())
	}
	return int(n.Number), nil
}

// AsDimension returns the number and unit of a dimension node.
func AsDimension(n *types.Node) (float64, string, error) {
	if n == nil || n.Kind != types.KindDimension {
		return 0, "", types.Errorf(types.ErrInvalidOperand, "expected a number, got `%s`", n.CSS())
	}
	return n.Number, n.Unit, nil
}

// Bool returns the keyword true or false.
func Bool(b bool) *types.Node {
	if b {
		return types.Keyword("true")
	}
	return types.Keyword("false")
}

// ListKind returns the kind of n when it is a list, and a comma list
// otherwise.
func ListKind(n *types.Node) types.Kind {
	if n.IsContainer() {
		return n.Kind
	}
	return types.KindCommaList
}
