package parser

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr/ast"

	"github.com/sandrolain/golists/pkg/types"
)

// lowerer converts an expr-lang tree into types.ASTNode.
type lowerer struct {
	maxDepth int
	depth    int
}

// noPos marks nodes without a source position.
const noPos = -1

func (l *lowerer) lower(n ast.Node) (*types.ASTNode, error) {
	l.depth++
	defer func() { l.depth-- }()
	if l.maxDepth > 0 && l.depth > l.maxDepth {
		return nil, types.Errorf(types.ErrDepthExceeded, "expression nesting deeper than %d", l.maxDepth)
	}
	pos := noPos
	if n != nil {
		pos = n.Location().From
	}

	switch n := n.(type) {
	case *ast.IntegerNode:
		node := types.NewASTNode(types.NodeNumber, pos)
		node.NumValue = float64(n.Value)
		return node, nil

	case *ast.FloatNode:
		node := types.NewASTNode(types.NodeNumber, pos)
		node.NumValue = n.Value
		return node, nil

	case *ast.StringNode:
		node := types.NewASTNode(types.NodeString, pos)
		node.StrValue = n.Value
		return node, nil

	case *ast.BoolNode:
		// true and false are plain keywords
		node := types.NewASTNode(types.NodeName, pos)
		node.StrValue = fmt.Sprint(n.Value)
		return node, nil

	case *ast.IdentifierNode:
		node := types.NewASTNode(types.NodeName, pos)
		node.StrValue = n.Value
		return node, nil

	case *ast.UnaryNode:
		if n.Operator != "-" && n.Operator != "+" {
			return nil, unsupportedOperator(n.Operator, pos)
		}
		operand, err := l.lower(n.Node)
		if err != nil {
			return nil, err
		}
		node := types.NewASTNode(types.NodeUnary, pos)
		node.StrValue = n.Operator
		node.LHS = operand
		return node, nil

	case *ast.BinaryNode:
		switch n.Operator {
		case "+", "-", "*", "/":
		default:
			return nil, unsupportedOperator(n.Operator, pos)
		}
		lhs, err := l.lower(n.Left)
		if err != nil {
			return nil, err
		}
		rhs, err := l.lower(n.Right)
		if err != nil {
			return nil, err
		}
		node := types.NewASTNode(types.NodeBinary, pos)
		node.StrValue = n.Operator
		node.LHS = lhs
		node.RHS = rhs
		return node, nil

	case *ast.CallNode:
		id, ok := n.Callee.(*ast.IdentifierNode)
		if !ok {
			return nil, unsupported(n, pos)
		}
		return l.call(id.Value, n.Arguments, pos)

	case *ast.BuiltinNode:
		// expr resolves some names (join, flatten, ...) to its own builtins
		return l.call(n.Name, n.Arguments, pos)

	case *ast.ArrayNode:
		items, err := l.lowerAll(n.Nodes)
		if err != nil {
			return nil, err
		}
		node := types.NewASTNode(types.NodeArray, pos)
		node.Arguments = items
		return node, nil

	case *ast.MapNode:
		return l.ruleset(n, pos)
	}
	return nil, unsupported(n, pos)
}

func (l *lowerer) lowerAll(nodes []ast.Node) ([]*types.ASTNode, error) {
	out := make([]*types.ASTNode, len(nodes))
	for i, n := range nodes {
		v, err := l.lower(n)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (l *lowerer) call(name string, args []ast.Node, pos int) (*types.ASTNode, error) {
	lowered, err := l.lowerAll(args)
	if err != nil {
		return nil, err
	}
	node := types.NewASTNode(types.NodeFunction, pos)
	node.StrValue = name
	node.Arguments = lowered
	return node, nil
}

// ruleset lowers a map literal. Keys name the rules; a trailing "+" or
// "+_" marks a merged property.
func (l *lowerer) ruleset(n *ast.MapNode, pos int) (*types.ASTNode, error) {
	node := types.NewASTNode(types.NodeRuleset, pos)
	node.Rules = make([]types.Rule, 0, len(n.Pairs))
	for _, p := range n.Pairs {
		pair, ok := p.(*ast.PairNode)
		if !ok {
			return nil, unsupported(p, pos)
		}
		var key string
		switch k := pair.Key.(type) {
		case *ast.StringNode:
			key = k.Value
		case *ast.IdentifierNode:
			key = k.Value
		default:
			return nil, types.NewError(types.ErrUnsupportedSyntax, "ruleset keys must be names", pos)
		}
		key = strings.TrimSpace(key)
		if key == "" || key == "@" {
			return nil, types.NewError(types.ErrUnsupportedSyntax, "empty rule name", pos)
		}
		value, err := l.lower(pair.Value)
		if err != nil {
			return nil, err
		}
		name, merge := types.ParseRuleName(key)
		node.Rules = append(node.Rules, types.Rule{Name: name, Merge: merge, Expr: value})
	}
	return node, nil
}

func unsupportedOperator(op string, pos int) error {
	return types.NewError(types.ErrUnsupportedOperator,
		fmt.Sprintf("unsupported operator `%s`", op), pos).WithToken(op)
}

func unsupported(n ast.Node, pos int) error {
	return types.NewError(types.ErrUnsupportedSyntax,
		fmt.Sprintf("unsupported syntax `%s`", n.String()), pos)
}
