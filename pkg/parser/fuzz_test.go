package parser_test

import (
	"testing"

	"github.com/sandrolain/golists/pkg/parser"
)

func FuzzParser(f *testing.F) {
	seeds := []string{
		`at([1, 2, 3], -1)`,
		`slice(sp(a, b, c), 2)`,
		`for_each([1, 2], {w: value * 2})`,
		`{"@v": 1, "font+": a}`,
		`-l(1, 2) / 3`,
		`1 + 2 * 3`,
		``,
		`(`,
		`cat(`,
		`[[[[`,
	}
	for _, s := range seeds {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, input string) {
		_, _ = parser.Compile(input)
	})
}
