package types

import (
	"math"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Node.
type Kind uint8

const (
	// KindEmpty is the placeholder node: a missing transpose cell or a key
	// that is present without a value.
	KindEmpty Kind = iota
	KindDimension
	KindKeyword
	KindQuoted
	KindAnonymous
	// KindSpaceList is a space-delimited container ("1 2 3").
	KindSpaceList
	// KindCommaList is a comma-delimited container ("1, 2, 3").
	KindCommaList
	// KindDetached is a detached ruleset.
	KindDetached
	// KindOpaque carries a host value this package does not interpret.
	KindOpaque
)

var kindNames = [...]string{
	KindEmpty:     "empty",
	KindDimension: "dimension",
	KindKeyword:   "keyword",
	KindQuoted:    "quoted",
	KindAnonymous: "anonymous",
	KindSpaceList: "space-list",
	KindCommaList: "comma-list",
	KindDetached:  "detached",
	KindOpaque:    "opaque",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Kinds returns every node kind.
func Kinds() []Kind {
	return []Kind{KindEmpty, KindDimension, KindKeyword, KindQuoted, KindAnonymous,
		KindSpaceList, KindCommaList, KindDetached, KindOpaque}
}

// IsList reports whether k is one of the two container kinds.
func (k Kind) IsList() bool {
	return k == KindSpaceList || k == KindCommaList
}

// Delimiter returns the separator used when rendering a list of kind k.
func (k Kind) Delimiter() string {
	if k == KindSpaceList {
		return " "
	}
	return ", "
}

// Shape classifies a node as a scalar or a container.
type Shape uint8

const (
	ShapeScalar Shape = iota
	ShapeContainer
)

// Node is a value of the expression tree: either a scalar or an ordered
// container of child nodes. Nodes are never mutated after construction.
type Node struct {
	Kind Kind

	// Number and Unit hold a dimension.
	Number float64
	Unit   string

	// Text holds keyword, quoted and anonymous payloads.
	Text    string
	Quote   byte
	Escaped bool

	// Items holds the children of a list.
	Items []*Node

	// Rules holds a detached ruleset.
	Rules *Ruleset

	// Opaque holds a host value of a KindOpaque node.
	Opaque any
}

// Shape returns ShapeContainer for list kinds and ShapeScalar otherwise.
func (n *Node) Shape() Shape {
	if n != nil && n.Kind.IsList() {
		return ShapeContainer
	}
	return ShapeScalar
}

// IsContainer reports whether the node's payload is a sequence.
func (n *Node) IsContainer() bool {
	return n.Shape() == ShapeContainer
}

// Len returns the number of items of a container, 1 for any other node
// and 0 for nil.
func (n *Node) Len() int {
	if n == nil {
		return 0
	}
	if n.IsContainer() {
		return len(n.Items)
	}
	return 1
}

// Elements returns the items of a container, or a one-element slice
// holding n itself. The returned slice must not be modified.
func (n *Node) Elements() []*Node {
	if n == nil {
		return nil
	}
	if n.IsContainer() {
		return n.Items
	}
	return []*Node{n}
}

// IsUnitless reports whether n is a dimension without a unit.
func (n *Node) IsUnitless() bool {
	return n != nil && n.Kind == KindDimension && n.Unit == ""
}

// Empty returns a new empty marker node.
func Empty() *Node {
	return &Node{Kind: KindEmpty}
}

// Dimension returns a number with an optional unit.
func Dimension(v float64, unit string) *Node {
	return &Node{Kind: KindDimension, Number: v, Unit: unit}
}

// Number returns a unitless dimension.
func Number(v float64) *Node {
	return Dimension(v, "")
}

// Keyword returns an identifier node.
func Keyword(s string) *Node {
	return &Node{Kind: KindKeyword, Text: s}
}

// Quoted returns a double quoted text node.
func Quoted(s string) *Node {
	return &Node{Kind: KindQuoted, Text: s, Quote: '"'}
}

// Anonymous returns an opaque text node rendered verbatim.
func Anonymous(s string) *Node {
	return &Node{Kind: KindAnonymous, Text: s}
}

// Opaque wraps a host value.
func Opaque(v any) *Node {
	return &Node{Kind: KindOpaque, Opaque: v}
}

// Detached wraps a ruleset.
func Detached(rs *Ruleset) *Node {
	return &Node{Kind: KindDetached, Rules: rs}
}

// NewList builds a container of the given kind from a copy of items.
// Any kind other than KindSpaceList yields a comma list.
func NewList(kind Kind, items ...*Node) *Node {
	if kind != KindSpaceList {
		kind = KindCommaList
	}
	cp := make([]*Node, len(items))
	copy(cp, items)
	return &Node{Kind: kind, Items: cp}
}

// CommaList builds a comma-delimited container.
func CommaList(items ...*Node) *Node {
	return NewList(KindCommaList, items...)
}

// SpaceList builds a space-delimited container.
func SpaceList(items ...*Node) *Node {
	return NewList(KindSpaceList, items...)
}

// CSS returns the plain textual form of the node.
func (n *Node) CSS() string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindDimension:
		return FormatNumber(n.Number) + n.Unit
	case KindKeyword, KindAnonymous:
		return n.Text
	case KindQuoted:
		if n.Escaped || n.Quote == 0 {
			return n.Text
		}
		q := string(n.Quote)
		return q + n.Text + q
	case KindSpaceList, KindCommaList:
		parts := make([]string, len(n.Items))
		for i, it := range n.Items {
			parts[i] = it.CSS()
		}
		return strings.Join(parts, n.Kind.Delimiter())
	case KindDetached:
		return n.Rules.String()
	case KindOpaque:
		if s, ok := n.Opaque.(interface{ String() string }); ok {
			return s.String()
		}
		return ""
	}
	return ""
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	return n.CSS()
}

// RawText returns the unquoted text of a text node, or the CSS form of
// any other node.
func (n *Node) RawText() string {
	if n == nil {
		return ""
	}
	switch n.Kind {
	case KindKeyword, KindQuoted, KindAnonymous:
		return n.Text
	}
	return n.CSS()
}

// FormatNumber renders v with at most 8 decimals and no trailing zeros.
func FormatNumber(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	r := math.Round(v*1e8) / 1e8
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}
