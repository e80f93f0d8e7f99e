package types

import (
	"cmp"
	"reflect"
	"strings"
)

// Order is the result of comparing two nodes.
type Order int8

const (
	OrderLess      Order = -1
	OrderEqual     Order = 0
	OrderGreater   Order = 1
	OrderUnordered Order = 2
)

func (o Order) String() string {
	switch o {
	case OrderLess:
		return "less"
	case OrderEqual:
		return "equal"
	case OrderGreater:
		return "greater"
	}
	return "unordered"
}

// Compare orders two nodes.
//
// Dimensions are ordered only when their units match. Quoted text orders
// against quoted text; quoted and anonymous text equal any node rendering
// to the same text. Keywords and lists of the same kind are equal when
// their payloads are equal. Every other pair is unordered.
func Compare(a, b *Node) Order {
	if a == nil || b == nil {
		if a == b {
			return OrderEqual
		}
		return OrderUnordered
	}
	if a == b {
		return OrderEqual
	}
	if isText(a.Kind) && !isText(b.Kind) {
		return compareText(a, b)
	}
	if isText(b.Kind) {
		if a.Kind == KindQuoted && b.Kind == KindQuoted && !a.Escaped && !b.Escaped {
			return Order(strings.Compare(a.Text, b.Text))
		}
		return compareText(b, a)
	}
	if a.Kind != b.Kind {
		return OrderUnordered
	}
	switch a.Kind {
	case KindDimension:
		if a.Unit != b.Unit {
			return OrderUnordered
		}
		return Order(cmp.Compare(a.Number, b.Number))
	case KindKeyword:
		if a.Text == b.Text {
			return OrderEqual
		}
	case KindSpaceList, KindCommaList:
		if len(a.Items) != len(b.Items) {
			return OrderUnordered
		}
		for i := range a.Items {
			if Compare(a.Items[i], b.Items[i]) != OrderEqual {
				return OrderUnordered
			}
		}
		return OrderEqual
	case KindEmpty:
		return OrderEqual
	case KindOpaque:
		if opaqueEqual(a.Opaque, b.Opaque) {
			return OrderEqual
		}
	}
	return OrderUnordered
}

// Equal reports whether Compare(a, b) is OrderEqual.
func Equal(a, b *Node) bool {
	return Compare(a, b) == OrderEqual
}

// opaqueEqual compares host payloads with ==. Payloads whose dynamic value
// cannot be compared (slices, maps, funcs) are never equal.
func opaqueEqual(x, y any) bool {
	if x == nil || y == nil {
		return x == nil && y == nil
	}
	vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
	if vx.Type() != vy.Type() || !vx.Comparable() || !vy.Comparable() {
		return false
	}
	return x == y
}

func isText(k Kind) bool {
	return k == KindQuoted || k == KindAnonymous
}

func compareText(text, other *Node) Order {
	if text.CSS() == other.CSS() {
		return OrderEqual
	}
	return OrderUnordered
}
