package document

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	nullTag  = "!!null"
	mergeTag = "!!merge"
)

// Load reads a YAML document from disk
func Load(path string) (*Value, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{
			Message: fmt.Sprintf("failed to read file %s", path),
			Cause:   err,
		}
	}

	return Parse(content)
}

// Parse decodes YAML content into a Value tree. It works on yaml.Node rather
// than map[string]any so that mapping keys keep the order they were written in.
func Parse(content []byte) (*Value, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, &LoadError{
			Message: "failed to parse YAML",
			Cause:   err,
		}
	}

	// An empty file yields a zero node
	if root.Kind == 0 {
		return &Value{Kind: NullKind}, nil
	}

	node := &root
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) != 1 {
			return nil, &LoadError{Message: "invalid YAML structure: document node should have exactly one child"}
		}
		node = node.Content[0]
	}

	return convert(node, 0)
}

// maxAliasDepth bounds alias expansion so a self-referencing anchor cannot recurse forever
const maxAliasDepth = 64

func convert(node *yaml.Node, depth int) (*Value, error) {
	switch node.Kind {
	case yaml.AliasNode:
		if depth >= maxAliasDepth || node.Alias == nil {
			return nil, &LoadError{Message: fmt.Sprintf("line %d: unresolvable alias *%s", node.Line, node.Value)}
		}
		return convert(node.Alias, depth+1)

	case yaml.ScalarNode:
		tag := node.ShortTag()
		if tag == nullTag {
			return &Value{Kind: NullKind, Tag: tag, Line: node.Line}, nil
		}
		return &Value{Kind: ScalarKind, Text: node.Value, Tag: tag, Line: node.Line}, nil

	case yaml.SequenceNode:
		v := &Value{Kind: SequenceKind, Line: node.Line, Items: make([]*Value, 0, len(node.Content))}
		for _, child := range node.Content {
			item, err := convert(child, depth)
			if err != nil {
				return nil, err
			}
			v.Items = append(v.Items, item)
		}
		return v, nil

	case yaml.MappingNode:
		return convertMapping(node, depth)

	default:
		return nil, &LoadError{Message: fmt.Sprintf("line %d: unsupported YAML node kind %d", node.Line, node.Kind)}
	}
}

// convertMapping builds a mapping value. Merge keys (`<<: *anchor` or
// `<<: [*a, *b]`) pull in the fields of the referenced mappings; keys written
// in the mapping itself take precedence, and among several merged mappings
// the earlier one wins. Merged keys come first in key order.
func convertMapping(node *yaml.Node, depth int) (*Value, error) {
	explicit := &Value{Kind: MappingKind, fields: make(map[string]*Value, len(node.Content)/2)}
	var merged []*Value

	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valueNode := node.Content[i], node.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, &LoadError{Message: fmt.Sprintf("line %d: mapping keys must be scalars", keyNode.Line)}
		}

		if keyNode.ShortTag() == mergeTag {
			sources, err := mergeSources(valueNode, depth)
			if err != nil {
				return nil, err
			}
			merged = append(merged, sources...)
			continue
		}

		key := keyNode.Value
		if _, dup := explicit.fields[key]; dup {
			return nil, &LoadError{Message: fmt.Sprintf("line %d: duplicate key %q", keyNode.Line, key)}
		}
		child, err := convert(valueNode, depth)
		if err != nil {
			return nil, err
		}
		explicit.Keys = append(explicit.Keys, key)
		explicit.fields[key] = child
	}

	if len(merged) == 0 {
		explicit.Line = node.Line
		return explicit, nil
	}

	v := &Value{Kind: MappingKind, Line: node.Line, fields: make(map[string]*Value)}
	for _, src := range merged {
		for _, key := range src.Keys {
			if _, seen := v.fields[key]; !seen {
				v.Keys = append(v.Keys, key)
				v.fields[key] = src.fields[key]
			}
		}
	}
	for _, key := range explicit.Keys {
		if _, seen := v.fields[key]; !seen {
			v.Keys = append(v.Keys, key)
		}
		v.fields[key] = explicit.fields[key]
	}
	return v, nil
}

// mergeSources resolves the value of a merge key to the mappings it names
func mergeSources(node *yaml.Node, depth int) ([]*Value, error) {
	if node.Kind == yaml.SequenceNode {
		sources := make([]*Value, 0, len(node.Content))
		for _, item := range node.Content {
			src, err := convert(item, depth)
			if err != nil {
				return nil, err
			}
			if !src.IsMapping() {
				return nil, &LoadError{Message: fmt.Sprintf("line %d: merge key sequence must contain only mappings", item.Line)}
			}
			sources = append(sources, src)
		}
		return sources, nil
	}

	src, err := convert(node, depth)
	if err != nil {
		return nil, err
	}
	if !src.IsMapping() {
		return nil, &LoadError{Message: fmt.Sprintf("line %d: merge key must reference a mapping", node.Line)}
	}
	return []*Value{src}, nil
}
