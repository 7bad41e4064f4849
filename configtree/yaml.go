// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The protectconf Authors

package configtree

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Decode reads a single YAML document from r into a [*Tree].
//
// The document root must be a mapping; keys must be plain scalars, unique
// within their level; values must be scalars or nested mappings. Comments
// are ignored, anchors and aliases are resolved and flattened. An empty
// document decodes to an empty tree.
func Decode(r io.Reader) (*Tree, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return NewTree(), nil
		}
		return nil, fmt.Errorf("decode yaml: %w", err)
	}

	root := resolveAlias(&doc)
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return NewTree(), nil
		}
		root = resolveAlias(root.Content[0])
	}
	if root.Kind == yaml.ScalarNode && root.Tag == "!!null" {
		return NewTree(), nil
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: %w", root.Line, ErrNotMapping)
	}
	return treeFromNode(root, nil)
}

// Parse decodes an in-memory YAML document. See [Decode].
func Parse(data []byte) (*Tree, error) {
	return Decode(bytes.NewReader(data))
}

// Encode writes t to w as YAML with two-space indentation, preserving key
// order.
func Encode(w io.Writer, t *Tree) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode yaml: %w", err)
	}
	return nil
}

// EncodeBytes renders t as YAML. See [Encode].
func EncodeBytes(t *Tree) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler, emitting children in key order.
func (t *Tree) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range t.keys {
		valNode, err := nodeFromValue(t.vals[k])
		if err != nil {
			return nil, err
		}
		keyNode := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}
		node.Content = append(node.Content, keyNode, valNode)
	}
	return node, nil
}

func resolveAlias(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func treeFromNode(n *yaml.Node, path []string) (*Tree, error) {
	t := NewTree()
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode := resolveAlias(n.Content[i])
		valNode := resolveAlias(n.Content[i+1])

		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("%s (line %d): %w", JoinPath(path), keyNode.Line, ErrBadKey)
		}
		if keyNode.Tag == "!!merge" {
			return nil, fmt.Errorf("%s (line %d): merge keys are not supported: %w",
				JoinPath(path), keyNode.Line, ErrUnsupportedNode)
		}

		// full slice expression so sibling paths never share growth
		childPath := append(path[:len(path):len(path)], keyNode.Value)

		if _, exists := t.Get(keyNode.Value); exists {
			return nil, fmt.Errorf("%s (line %d): %w", JoinPath(childPath), keyNode.Line, ErrDuplicateKey)
		}

		v, err := valueFromNode(valNode, childPath)
		if err != nil {
			return nil, err
		}
		t.Set(keyNode.Value, v)
	}
	return t, nil
}

func valueFromNode(n *yaml.Node, path []string) (Value, error) {
	switch n.Kind {
	case yaml.MappingNode:
		return treeFromNode(n, path)
	case yaml.ScalarNode:
		return scalarFromNode(n, path)
	case yaml.SequenceNode:
		return nil, fmt.Errorf("%s (line %d): sequences cannot be represented: %w",
			JoinPath(path), n.Line, ErrUnsupportedNode)
	default:
		return nil, fmt.Errorf("%s (line %d): %w", JoinPath(path), n.Line, ErrUnsupportedNode)
	}
}

func scalarFromNode(n *yaml.Node, path []string) (Scalar, error) {
	switch n.Tag {
	case "!!null":
		return Null(), nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return Scalar{}, fmt.Errorf("%s (line %d): %w", JoinPath(path), n.Line, err)
		}
		return Bool(b), nil
	case "!!int":
		var i int64
		if err := n.Decode(&i); err != nil {
			// out of int64 range: keep the literal text
			return String(n.Value), nil
		}
		return Int(i), nil
	case "!!float":
		var f float64
		if err := n.Decode(&f); err != nil {
			return Scalar{}, fmt.Errorf("%s (line %d): %w", JoinPath(path), n.Line, err)
		}
		return Float(f), nil
	case "!!str":
		return String(n.Value), nil
	default:
		return Scalar{}, fmt.Errorf("%s (line %d): tag %s: %w",
			JoinPath(path), n.Line, n.Tag, ErrUnsupportedNode)
	}
}

func nodeFromValue(v Value) (*yaml.Node, error) {
	switch val := v.(type) {
	case *Tree:
		n, err := val.MarshalYAML()
		if err != nil {
			return nil, err
		}
		return n.(*yaml.Node), nil
	case Scalar:
		n := &yaml.Node{Kind: yaml.ScalarNode}
		switch val.kind {
		case kindBool:
			n.Tag = "!!bool"
			n.Value = strconv.FormatBool(val.b)
		case kindInt:
			n.Tag = "!!int"
			n.Value = strconv.FormatInt(val.i, 10)
		case kindFloat:
			n.Tag = "!!float"
			n.Value = strconv.FormatFloat(val.f, 'g', -1, 64)
		case kindString:
			n.Tag = "!!str"
			n.Value = val.s
		default:
			n.Tag = "!!null"
			n.Value = ""
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unknown value type %T", v)
	}
}
