package manifest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DocumentYAML renders the whole-graph manifest as YAML. Key order is
// preserved by building yaml.v3 nodes from the ordered document tree rather
// than round-tripping through Go maps.
func (s *Serializer) DocumentYAML(ctx context.Context) ([]byte, error) {
	resources := newObject()
	for _, res := range s.ec.Graph().Resources() {
		doc, err := s.resourceObject(ctx, res)
		if err != nil {
			return nil, err
		}
		resources.set(res.Name(), doc)
	}
	root := newObject()
	root.set("resources", resources)

	node, err := yamlNode(root)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(node); err != nil {
		return nil, fmt.Errorf("encoding YAML manifest: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("closing YAML encoder: %w", err)
	}
	return buf.Bytes(), nil
}

// yamlNode converts a document tree value into a yaml.Node.
func yamlNode(v any) (*yaml.Node, error) {
	switch val := v.(type) {
	case *object:
		node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		for _, k := range val.keys {
			keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
			valNode, err := yamlNode(val.vals[k])
			if err != nil {
				return nil, err
			}
			node.Content = append(node.Content, keyNode, valNode)
		}
		return node, nil
	case []string:
		node := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, s := range val {
			node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s})
		}
		return node, nil
	case string:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: val}, nil
	case int:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprintf("%d", val)}, nil
	case bool:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: fmt.Sprintf("%t", val)}, nil
	default:
		// Fallback for anything else that is JSON-encodable.
		data, err := json.Marshal(val)
		if err != nil {
			return nil, fmt.Errorf("unsupported manifest value %T: %w", val, err)
		}
		return &yaml.Node{Kind: yaml.ScalarNode, Value: string(data)}, nil
	}
}
