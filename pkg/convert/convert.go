// Package convert maps decoded YAML or JSON values to nodes and back.
//
// Numbers become unitless dimensions, strings that read as a number with a
// unit become dimensions, identifier-like strings become keywords and any
// other string becomes quoted text. Sequences become comma lists and
// mappings become detached rulesets.
package convert

import (
	"encoding/json"
	"fmt"
	"math"
	"maps"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/sandrolain/golists/pkg/types"
)

var (
	dimensionRe = regexp.MustCompile(`^([+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?)(%|[a-zA-Z]+)?$`)
	identRe     = regexp.MustCompile(`^-?[a-zA-Z_][a-zA-Z0-9_-]*$`)
)

// ParseDimension parses text such as "10", "-1.5em" or "50%".
func ParseDimension(s string) (*types.Node, bool) {
	m := dimensionRe.FindStringSubmatch(s)
	if m == nil {
		return nil, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil, false
	}
	return types.Dimension(v, m[2]), true
}

// FromString converts text the way FromAny converts a string.
func FromString(s string) *types.Node {
	if n, ok := ParseDimension(s); ok {
		return n
	}
	if identRe.MatchString(s) {
		return types.Keyword(s)
	}
	return types.Quoted(s)
}

// FromAny converts a decoded value into a node.
func FromAny(v any) (*types.Node, error) {
	switch v := v.(type) {
	case nil:
		return types.Empty(), nil
	case *types.Node:
		return v, nil
	case []*types.Node:
		return types.CommaList(v...), nil
	case bool:
		return types.Keyword(strconv.FormatBool(v)), nil
	case int:
		return types.Number(float64(v)), nil
	case int64:
		return types.Number(float64(v)), nil
	case uint64:
		return types.Number(float64(v)), nil
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("convert: number %v out of range", v)
		}
		return types.Number(v), nil
	case string:
		return FromString(v), nil
	case []any:
		items := make([]*types.Node, len(v))
		for i, elt := range v {
			n, err := FromAny(elt)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}
			items[i] = n
		}
		return types.CommaList(items...), nil
	case Rules:
		return FromAny(yaml.MapSlice(v))
	case yaml.MapSlice:
		rules := make([]types.Rule, 0, len(v))
		for _, item := range v {
			r, err := rule(fmt.Sprint(item.Key), item.Value)
			if err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
		return types.Detached(types.NewRuleset(nil, rules...)), nil
	case map[string]any:
		rules := make([]types.Rule, 0, len(v))
		for _, k := range slices.Sorted(maps.Keys(v)) {
			r, err := rule(k, v[k])
			if err != nil {
				return nil, err
			}
			rules = append(rules, r)
		}
		return types.Detached(types.NewRuleset(nil, rules...)), nil
	}
	return nil, fmt.Errorf("convert: unsupported value of type %T", v)
}

func rule(key string, v any) (types.Rule, error) {
	n, err := FromAny(v)
	if err != nil {
		return types.Rule{}, fmt.Errorf("key %q: %w", key, err)
	}
	name, merge := types.ParseRuleName(key)
	return types.Rule{Name: name, Merge: merge, Value: n}, nil
}

// Rules is the ordered form ToAny gives a detached ruleset. Names keep
// their merge flag and repeat as often as the ruleset declares them. It
// encodes to YAML as a mapping and to JSON as an array of name and value
// objects, since JSON objects cannot repeat keys.
type Rules []yaml.MapItem

// MarshalYAML implements yaml.InterfaceMarshaler.
func (r Rules) MarshalYAML() (any, error) {
	return yaml.MapSlice(r), nil
}

// MarshalJSON implements json.Marshaler.
func (r Rules) MarshalJSON() ([]byte, error) {
	type pair struct {
		Name  string `json:"name"`
		Value any    `json:"value"`
	}
	out := make([]pair, len(r))
	for i, it := range r {
		out[i] = pair{Name: fmt.Sprint(it.Key), Value: it.Value}
	}
	return json.Marshal(out)
}

// ToAny converts a node into plain Go values suitable for JSON or YAML
// encoding. Unitless numbers become float64, other scalars their text and
// detached rulesets [Rules].
func ToAny(n *types.Node) any {
	if n == nil {
		return nil
	}
	switch n.Kind {
	case types.KindEmpty:
		return nil
	case types.KindDimension:
		if n.Unit == "" {
			return n.Number
		}
		return n.CSS()
	case types.KindKeyword, types.KindQuoted, types.KindAnonymous:
		return n.RawText()
	case types.KindSpaceList, types.KindCommaList:
		res := make([]any, len(n.Items))
		for i, elt := range n.Items {
			res[i] = ToAny(elt)
		}
		return res
	case types.KindDetached:
		res := Rules{}
		if n.Rules == nil {
			return res
		}
		for _, r := range n.Rules.Rules {
			if !r.Evaluated() {
				continue
			}
			res = append(res, yaml.MapItem{Key: r.Name + r.Merge, Value: ToAny(r.Value)})
		}
		return res
	case types.KindOpaque:
		return n.Opaque
	}
	return n.CSS()
}

// Bindings converts decoded values into evaluator bindings.
func Bindings(vars map[string]any) (map[string]*types.Node, error) {
	out := make(map[string]*types.Node, len(vars))
	for name, v := range vars {
		n, err := FromAny(v)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}
		out[name] = n
	}
	return out, nil
}

// ParseBinding parses "name=value" where value is a YAML document.
func ParseBinding(s string) (string, *types.Node, error) {
	name, raw, ok := strings.Cut(s, "=")
	if !ok || name == "" {
		return "", nil, fmt.Errorf("binding %q: expected name=value", s)
	}
	var v any
	if err := yaml.UnmarshalWithOptions([]byte(raw), &v, yaml.UseOrderedMap()); err != nil {
		return "", nil, fmt.Errorf("binding %s: %w", name, err)
	}
	n, err := FromAny(v)
	if err != nil {
		return "", nil, fmt.Errorf("binding %s: %w", name, err)
	}
	return name, n, nil
}
