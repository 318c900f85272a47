package style

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrNotAMapping is returned by DecodeYAML if a YAML document does not hold
// a mapping at its top level.
var ErrNotAMapping = errors.New("style: YAML style must be a mapping")

// DecodeYAML reads a static style map from a YAML document. Other than
// decoding into a Go map, the order of keys is preserved:
//
//     color: red
//     ":hover":
//       color: cyan
//     "@media (min-width: 300px)":
//       fontSize: 12px
//
// An empty document results in an empty style map.
func DecodeYAML(data []byte) (M, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("style: cannot decode YAML: %w", err)
	}
	node := &doc
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return M{}, nil
		}
		node = node.Content[0]
	}
	if node.Kind == 0 {
		return M{}, nil
	}
	return decodeMapping(node)
}

func decodeMapping(node *yaml.Node) (M, error) {
	node = resolveAlias(node)
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%w (line %d)", ErrNotAMapping, node.Line)
	}
	m := make(M, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], resolveAlias(node.Content[i+1])
		var v any
		switch val.Kind {
		case yaml.MappingNode:
			nested, err := decodeMapping(val)
			if err != nil {
				return nil, err
			}
			v = nested
		default:
			if err := val.Decode(&v); err != nil {
				return nil, fmt.Errorf("style: cannot decode value for %q (line %d): %w",
					key.Value, val.Line, err)
			}
		}
		tracer().Debugf("style: YAML key %q", key.Value)
		m = append(m, KV{Key: key.Value, Value: v})
	}
	return m, nil
}

func resolveAlias(node *yaml.Node) *yaml.Node {
	for node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	return node
}
