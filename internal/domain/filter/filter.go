// Package filter evaluates slot filter specifications against layers.
//
// A specification is either the sentinel "any" (matches every layer) or a
// set of attribute clauses. Clauses combine with AND; the accepted values
// inside one clause combine with OR. The pseudo-attribute "team" matches if
// either team slot of the layer carries one of the accepted values.
package filter

import (
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bsubei/squadrot/internal/domain/layer"
)

// AnySentinel is the specification that matches every layer, compared
// case-insensitively when parsed from config.
const AnySentinel = "any"

// TeamAttr is the alias attribute expanding to both team slots.
const TeamAttr = "team"

// teamSlots are the underlying attributes the team alias expands to.
var teamSlots = [2]string{"team1", "team2"}

// Clause is one attribute constraint used when building a Spec in code.
// Values may be strings, booleans or numbers, mirroring what YAML configs
// can carry.
type Clause struct {
	Attr   string
	Values []any
}

type clause struct {
	attr   string
	values []layer.Value
	labels []string
}

// Spec is one slot's filter specification.
type Spec struct {
	matchAny bool
	clauses  []clause
}

// Any returns the specification that matches every layer.
func Any() Spec {
	return Spec{matchAny: true}
}

// New builds a Spec from clauses, preserving their order for descriptions.
func New(clauses ...Clause) (Spec, error) {
	s := Spec{}
	for _, c := range clauses {
		if c.Attr == "" {
			return Spec{}, fmt.Errorf("filter clause has an empty attribute name")
		}
		if len(c.Values) == 0 {
			return Spec{}, fmt.Errorf("filter clause %q has no accepted values", c.Attr)
		}
		cl := clause{attr: c.Attr}
		for _, raw := range c.Values {
			v, ok := layer.Normalize(raw)
			if !ok {
				return Spec{}, fmt.Errorf("filter clause %q has a non-scalar value %v", c.Attr, raw)
			}
			cl.values = append(cl.values, v)
			cl.labels = append(cl.labels, label(c.Attr, raw))
		}
		s.clauses = append(s.clauses, cl)
	}
	return s, nil
}

// label renders one accepted value for slot descriptions. Boolean values
// read as the attribute name itself ("helicopters" rather than "true").
func label(attr string, raw any) string {
	if b, ok := raw.(bool); ok {
		if b {
			return attr
		}
		return "no-" + attr
	}
	v, _ := layer.Normalize(raw)
	return string(v)
}

// IsAny reports whether the spec is the match-anything sentinel.
func (s Spec) IsAny() bool { return s.matchAny }

// Match reports whether the layer satisfies every clause of the spec.
func (s Spec) Match(l layer.Layer) bool {
	if s.matchAny {
		return true
	}
	for _, c := range s.clauses {
		if !c.match(l) {
			return false
		}
	}
	return true
}

func (c clause) match(l layer.Layer) bool {
	names := []string{c.attr}
	if c.attr == TeamAttr {
		names = teamSlots[:]
	}
	for _, name := range names {
		got, ok := l.Attr(name)
		if !ok {
			continue
		}
		for _, want := range c.values {
			if got == want {
				return true
			}
		}
	}
	return false
}

// Describe returns the human-readable slot description: the literal accepted
// values in configuration order, or ["any"] for the sentinel.
func (s Spec) Describe() []string {
	if s.matchAny {
		return []string{AnySentinel}
	}
	var out []string
	for _, c := range s.clauses {
		out = append(out, c.labels...)
	}
	return out
}

// Attrs returns the underlying attribute names the spec references, with the
// team alias already expanded. Empty for the sentinel.
func (s Spec) Attrs() []string {
	var out []string
	for _, c := range s.clauses {
		if c.attr == TeamAttr {
			out = append(out, teamSlots[:]...)
			continue
		}
		out = append(out, c.attr)
	}
	return out
}

// Apply returns the subset of candidates matching the spec. The result may
// legitimately be empty; the caller decides what that means for its slot.
func Apply(s Spec, candidates []layer.Layer) []layer.Layer {
	if s.matchAny {
		out := make([]layer.Layer, len(candidates))
		copy(out, candidates)
		return out
	}
	var out []layer.Layer
	for _, l := range candidates {
		if s.Match(l) {
			out = append(out, l)
		}
	}
	return out
}

// UnmarshalYAML decodes a slot entry: either the scalar "any" or a mapping
// of attribute name to a scalar or list of accepted values. Mapping order is
// preserved so descriptions read in configuration order.
func (s *Spec) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!str" && strings.EqualFold(node.Value, AnySentinel) {
			*s = Any()
			return nil
		}
		return fmt.Errorf("line %d: slot entry %q is neither %q nor a filter mapping", node.Line, node.Value, AnySentinel)
	case yaml.MappingNode:
		spec := Spec{}
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valNode := node.Content[i], node.Content[i+1]
			if keyNode.Kind != yaml.ScalarNode || keyNode.Tag != "!!str" {
				return fmt.Errorf("line %d: filter attribute name must be a string", keyNode.Line)
			}
			cl, err := decodeClause(keyNode.Value, valNode)
			if err != nil {
				return err
			}
			spec.clauses = append(spec.clauses, cl)
		}
		if len(spec.clauses) == 0 {
			return fmt.Errorf("line %d: filter mapping has no attributes", node.Line)
		}
		*s = spec
		return nil
	default:
		return fmt.Errorf("line %d: slot entry must be %q or a filter mapping", node.Line, AnySentinel)
	}
}

func decodeClause(attr string, valNode *yaml.Node) (clause, error) {
	cl := clause{attr: attr}

	valueNodes := []*yaml.Node{valNode}
	if valNode.Kind == yaml.SequenceNode {
		if len(valNode.Content) == 0 {
			return clause{}, fmt.Errorf("line %d: filter %q has an empty value list", valNode.Line, attr)
		}
		valueNodes = valNode.Content
	}

	for _, vn := range valueNodes {
		if vn.Kind != yaml.ScalarNode {
			return clause{}, fmt.Errorf("line %d: filter %q values must be scalars", vn.Line, attr)
		}
		raw, err := scalarValue(vn)
		if err != nil {
			return clause{}, fmt.Errorf("filter %q: %w", attr, err)
		}
		v, ok := layer.Normalize(raw)
		if !ok {
			return clause{}, fmt.Errorf("line %d: filter %q has unsupported value %q", vn.Line, attr, vn.Value)
		}
		cl.values = append(cl.values, v)
		cl.labels = append(cl.labels, label(attr, raw))
	}
	return cl, nil
}

// scalarValue maps a YAML scalar node to its Go value, keeping booleans as
// booleans so description labels can render them by attribute name.
func scalarValue(n *yaml.Node) (any, error) {
	switch n.Tag {
	case "!!bool":
		b, err := strconv.ParseBool(n.Value)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid boolean %q", n.Line, n.Value)
		}
		return b, nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid integer %q", n.Line, n.Value)
		}
		return i, nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid float %q", n.Line, n.Value)
		}
		return f, nil
	default:
		return n.Value, nil
	}
}
