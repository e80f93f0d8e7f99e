package types

import "strings"

// Merge flags of a rule name suffix.
const (
	MergeNone  = ""
	MergeComma = "+"
	MergeSpace = "+_"
)

// Rule is a single declaration of a ruleset. Before evaluation Expr holds
// the value expression; after evaluation Value holds the result.
type Rule struct {
	Name  string
	Merge string
	Expr  *ASTNode
	Value *Node
}

// IsVariable reports whether the rule declares a variable.
func (r Rule) IsVariable() bool {
	return strings.HasPrefix(r.Name, "@")
}

// BareName returns the rule name without a leading "@".
func (r Rule) BareName() string {
	return strings.TrimPrefix(r.Name, "@")
}

// Evaluated reports whether the rule carries a value.
func (r Rule) Evaluated() bool {
	return r.Expr == nil
}

// ParseRuleName splits a merge suffix off a declared name.
func ParseRuleName(name string) (string, string) {
	switch {
	case strings.HasSuffix(name, MergeSpace):
		return strings.TrimSuffix(name, MergeSpace), MergeSpace
	case strings.HasSuffix(name, MergeComma):
		return strings.TrimSuffix(name, MergeComma), MergeComma
	}
	return name, MergeNone
}

// Ruleset is an ordered block of rules. Scope is the host's closure for
// unevaluated rules; it is opaque to this package.
type Ruleset struct {
	Rules []Rule
	Scope any
}

// NewRuleset returns a ruleset holding a copy of rules.
func NewRuleset(scope any, rules ...Rule) *Ruleset {
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Ruleset{Rules: cp, Scope: scope}
}

// String renders evaluated rules as "{name: value; ...}".
func (rs *Ruleset) String() string {
	if rs == nil {
		return "{}"
	}
	var sb strings.Builder
	sb.WriteByte('{')
	for i, r := range rs.Rules {
		if i > 0 {
			sb.WriteString("; ")
		}
		sb.WriteString(r.Name)
		sb.WriteString(r.Merge)
		sb.WriteString(": ")
		if r.Value != nil {
			sb.WriteString(r.Value.CSS())
		} else {
			sb.WriteString("...")
		}
	}
	sb.WriteByte('}')
	return sb.String()
}
