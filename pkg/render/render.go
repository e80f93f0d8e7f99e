// Package render writes nodes for humans: plain CSS text, or a bracketed
// structural view, optionally colored for terminals.
package render

import (
	"strings"

	"github.com/sandrolain/golists/pkg/types"
)

// Options configures a Renderer.
type Options struct {
	// Colors enables colored output when non-nil.
	Colors *Colors
	// Brackets wraps every list level in Prefix and Suffix.
	Brackets bool
	Prefix   string
	Suffix   string
}

// Option configures a Renderer.
type Option func(*Options)

// WithColors enables colors.
func WithColors(c *Colors) Option {
	return func(o *Options) { o.Colors = c }
}

// WithBrackets wraps list levels in prefix and suffix.
func WithBrackets(prefix, suffix string) Option {
	return func(o *Options) {
		o.Brackets = true
		o.Prefix = prefix
		o.Suffix = suffix
	}
}

// Renderer renders nodes.
type Renderer struct {
	opts Options
}

// New returns a Renderer.
func New(opts ...Option) *Renderer {
	r := &Renderer{}
	for _, opt := range opts {
		opt(&r.opts)
	}
	return r
}

// String renders n.
func (r *Renderer) String(n *types.Node) string {
	var sb strings.Builder
	r.write(&sb, n)
	return sb.String()
}

func (r *Renderer) color(k types.Kind, a ColorAttr, s string) string {
	if r.opts.Colors == nil {
		return s
	}
	return r.opts.Colors.Color(k, a, s)
}

func (r *Renderer) write(sb *strings.Builder, n *types.Node) {
	if n == nil {
		return
	}
	switch n.Kind {
	case types.KindDimension:
		sb.WriteString(r.color(n.Kind, ValueColor, types.FormatNumber(n.Number)))
		if n.Unit != "" {
			sb.WriteString(r.color(n.Kind, UnitColor, n.Unit))
		}
	case types.KindSpaceList, types.KindCommaList:
		if r.opts.Brackets {
			sb.WriteString(r.color(n.Kind, BracketColor, r.opts.Prefix))
		}
		sep := r.color(n.Kind, SepColor, n.Kind.Delimiter())
		for i, it := range n.Items {
			if i > 0 {
				sb.WriteString(sep)
			}
			r.write(sb, it)
		}
		if r.opts.Brackets {
			sb.WriteString(r.color(n.Kind, BracketColor, r.opts.Suffix))
		}
	case types.KindDetached:
		r.writeRuleset(sb, n)
	default:
		sb.WriteString(r.color(n.Kind, ValueColor, n.CSS()))
	}
}

func (r *Renderer) writeRuleset(sb *strings.Builder, n *types.Node) {
	sb.WriteString(r.color(n.Kind, BracketColor, "{"))
	if n.Rules != nil {
		for i, rule := range n.Rules.Rules {
			if i > 0 {
				sb.WriteString(r.color(n.Kind, SepColor, "; "))
			}
			sb.WriteString(r.color(n.Kind, NameColor, rule.Name+rule.Merge))
			sb.WriteString(": ")
			if rule.Value != nil {
				r.write(sb, rule.Value)
			} else {
				sb.WriteString(r.color(n.Kind, ValueColor, "..."))
			}
		}
	}
	sb.WriteString(r.color(n.Kind, BracketColor, "}"))
}
