package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/sandrolain/golists/pkg/types"
)

// Colorable selects a color by node kind and role.
type Colorable struct {
	Kind types.Kind
	Attr ColorAttr
}

// ColorAttr is the role of a rendered fragment.
type ColorAttr int

const (
	ValueColor ColorAttr = iota
	UnitColor
	SepColor
	BracketColor
	NameColor
)

// Colors maps fragments to color functions.
type Colors struct {
	Default func(string, ...any) string
	Map     map[Colorable]func(string, ...any) string
}

// NewColors returns the default palette.
func NewColors() *Colors {
	colors := &Colors{
		Default: colorDefault,
		Map:     map[Colorable]func(string, ...any) string{},
	}
	for _, k := range types.Kinds() {
		colors.Map[Colorable{Kind: k, Attr: SepColor}] = color.RGB(255, 0, 196).SprintfFunc()
		colors.Map[Colorable{Kind: k, Attr: BracketColor}] = color.RGB(74, 92, 138).SprintfFunc()
	}
	able := Colorable{Attr: ValueColor}

	able.Kind = types.KindDimension
	colors.Map[able] = color.RGB(128, 216, 236).SprintfFunc()
	able.Attr = UnitColor
	colors.Map[able] = color.RGB(196, 96, 16).SprintfFunc()
	able.Attr = ValueColor

	able.Kind = types.KindEmpty
	colors.Map[able] = color.RGB(168, 0, 196).SprintfFunc()

	able.Kind = types.KindKeyword
	colors.Map[able] = color.CyanString

	able.Kind = types.KindQuoted
	colors.Map[able] = color.RGB(8, 196, 16).SprintfFunc()

	able.Kind = types.KindAnonymous
	colors.Map[able] = color.RGB(198, 198, 46).SprintfFunc()

	able.Kind = types.KindOpaque
	colors.Map[able] = color.RGB(96, 96, 96).SprintfFunc()

	able.Kind = types.KindDetached
	colors.Map[able] = color.RGB(196, 168, 128).SprintfFunc()
	able.Attr = NameColor
	colors.Map[able] = color.RGB(128, 168, 196).SprintfFunc()

	for k, f := range colors.Map {
		colors.Map[k] = func(v string, _ ...any) string {
			return f(strings.ReplaceAll(v, "%", "%%"))
		}
	}
	return colors
}

func colorDefault(v string, _ ...any) string { return v }

// Color renders s in the color of (k, a).
func (c *Colors) Color(k types.Kind, a ColorAttr, s string) string {
	return c.Get(k, a)(s)
}

// Get returns the color function of (k, a), or Default.
func (c *Colors) Get(k types.Kind, a ColorAttr) func(string, ...any) string {
	f := c.Map[Colorable{Kind: k, Attr: a}]
	if f == nil {
		return c.Default
	}
	return f
}
