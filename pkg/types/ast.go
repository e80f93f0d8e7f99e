package types

// NodeType identifies the type of an AST node.
type NodeType string

// AST node types.
const (
	// Literals
	NodeNumber NodeType = "number"
	NodeString NodeType = "string"
	NodeName   NodeType = "name" // identifier: a binding or a keyword

	// Operators
	NodeBinary NodeType = "binary" // +, -, *, /
	NodeUnary  NodeType = "unary"  // -, +

	// Functions
	NodeFunction NodeType = "function" // named function call

	// Constructors
	NodeArray   NodeType = "array"   // [...] comma list
	NodeRuleset NodeType = "ruleset" // {...} detached ruleset
)

// ASTNode represents a node in the Abstract Syntax Tree.
type ASTNode struct {
	Type     NodeType
	StrValue string  // operator, identifier, function name or string literal
	NumValue float64 // number literal
	Position int

	LHS       *ASTNode
	RHS       *ASTNode
	Arguments []*ASTNode // function arguments and array items
	Rules     []Rule     // ruleset declarations, Expr set
}

// NewASTNode creates a new AST node of the specified type.
func NewASTNode(nodeType NodeType, position int) *ASTNode {
	return &ASTNode{
		Type:     nodeType,
		Position: position,
	}
}

// String returns a string representation of the node type.
func (n *ASTNode) String() string {
	return string(n.Type)
}
