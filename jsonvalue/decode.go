package jsonvalue

import (
	"fmt"
	"strconv"

	yaml "go.yaml.in/yaml/v4"
)

// Decode parses data (JSON, or YAML as a superset of JSON) into the jsonvalue
// model, preserving object member order. It decodes via [yaml.Node] rather
// than encoding/json because encoding/json's map[string]any discards key
// order, which RFC 9535 normalized-path and wildcard-ordering semantics
// require.
func Decode(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("jsonvalue: decode: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}
	return fromNode(doc.Content[0])
}

func fromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return fromNode(n.Content[0])
	case yaml.AliasNode:
		return fromNode(n.Alias)
	case yaml.ScalarNode:
		return scalarFromNode(n)
	case yaml.SequenceNode:
		arr := make([]any, 0, len(n.Content))
		for _, item := range n.Content {
			v, err := fromNode(item)
			if err != nil {
				return nil, err
			}
			arr = append(arr, v)
		}
		return arr, nil
	case yaml.MappingNode:
		obj := NewObject(len(n.Content) / 2)
		for i := 0; i+1 < len(n.Content); i += 2 {
			keyNode, valNode := n.Content[i], n.Content[i+1]
			key, err := scalarFromNode(keyNode)
			if err != nil {
				return nil, err
			}
			keyStr, ok := key.(string)
			if !ok {
				keyStr = fmt.Sprint(key)
			}
			v, err := fromNode(valNode)
			if err != nil {
				return nil, err
			}
			obj.Set(keyStr, v)
		}
		return obj, nil
	default:
		return nil, fmt.Errorf("jsonvalue: unsupported node kind %v", n.Kind)
	}
}

func scalarFromNode(n *yaml.Node) (any, error) {
	switch n.Tag {
	case "!!null":
		return nil, nil
	case "!!bool":
		return n.Value == "true", nil
	case "!!int":
		i, err := strconv.ParseInt(n.Value, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(n.Value, 64)
			if ferr != nil {
				return nil, fmt.Errorf("jsonvalue: invalid integer %q: %w", n.Value, err)
			}
			return f, nil
		}
		return i, nil
	case "!!float":
		f, err := strconv.ParseFloat(n.Value, 64)
		if err != nil {
			return nil, fmt.Errorf("jsonvalue: invalid float %q: %w", n.Value, err)
		}
		return f, nil
	default:
		return n.Value, nil
	}
}
