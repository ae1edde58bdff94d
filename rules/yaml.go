package rules

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for Ruleset.
// Accepts a mapping of target field to rule, or null for an empty ruleset.
func (rs *Ruleset) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.DocumentNode && len(node.Content) == 1 {
		node = node.Content[0]
	}

	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*rs = Ruleset{}
			return nil
		}

		return fmt.Errorf("line %d: expected a mapping of target fields, got scalar %q", node.Line, node.Value)

	case yaml.MappingNode:
		parsed := Ruleset{Fields: make([]Field, 0, len(node.Content)/2)}

		for i := 0; i+1 < len(node.Content); i += 2 {
			var target string

			err := node.Content[i].Decode(&target)
			if err != nil {
				return fmt.Errorf("line %d: invalid target field: %w", node.Content[i].Line, err)
			}

			var raw any

			err = node.Content[i+1].Decode(&raw)
			if err != nil {
				return fmt.Errorf("line %d: invalid rule for %q: %w", node.Content[i+1].Line, target, err)
			}

			parsed.Set(target, FromValue(raw))
		}

		*rs = parsed

		return nil

	default:
		return fmt.Errorf("line %d: expected a mapping of target fields", node.Line)
	}
}

// MarshalYAML implements custom YAML marshaling for Ruleset, keeping field
// order.
func (rs Ruleset) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}

	for _, f := range rs.Fields {
		var val yaml.Node

		err := val.Encode(ToValue(f.Rule))
		if err != nil {
			return nil, fmt.Errorf("encode rule for %q: %w", f.Target, err)
		}

		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: f.Target},
			&val,
		)
	}

	return node, nil
}
