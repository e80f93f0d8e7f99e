package evaluator

import (
	"fmt"

	"github.com/sandrolain/golists/pkg/types"
)

// EvalContext maintains variable bindings during evaluation. Rulesets keep
// the context they were created in and evaluate their rules in a child of
// it.
type EvalContext struct {
	// parent is the enclosing scope
	parent *EvalContext

	// bindings stores variable assignments
	bindings map[string]*types.Node

	// depth is the scope nesting level
	depth int
}

// NewContext creates a new root evaluation context.
func NewContext() *EvalContext {
	return &EvalContext{
		bindings: make(map[string]*types.Node),
	}
}

// NewChildContext creates a child scope.
func (c *EvalContext) NewChildContext() *EvalContext {
	return &EvalContext{
		parent:   c,
		bindings: make(map[string]*types.Node),
		depth:    c.depth + 1,
	}
}

// Parent returns the parent context.
func (c *EvalContext) Parent() *EvalContext {
	return c.parent
}

// Depth returns the scope nesting level.
func (c *EvalContext) Depth() int {
	return c.depth
}

// SetBinding sets a variable binding.
func (c *EvalContext) SetBinding(name string, value *types.Node) {
	c.bindings[name] = value
}

// GetBinding retrieves a variable binding.
// It searches the current context and parent contexts.
func (c *EvalContext) GetBinding(name string) (*types.Node, bool) {
	for s := c; s != nil; s = s.parent {
		if value, ok := s.bindings[name]; ok {
			return value, true
		}
	}
	return nil, false
}

// SetBindings sets multiple variable bindings at once.
func (c *EvalContext) SetBindings(bindings map[string]*types.Node) {
	for name, value := range bindings {
		c.bindings[name] = value
	}
}

// Clone creates a shallow copy of the context with the same bindings.
func (c *EvalContext) Clone() *EvalContext {
	newBindings := make(map[string]*types.Node, len(c.bindings))
	for k, v := range c.bindings {
		newBindings[k] = v
	}

	return &EvalContext{
		parent:   c.parent,
		bindings: newBindings,
		depth:    c.depth,
	}
}

// String returns a string representation of the context.
func (c *EvalContext) String() string {
	return fmt.Sprintf("Context{depth=%d, bindings=%d}", c.depth, len(c.bindings))
}
