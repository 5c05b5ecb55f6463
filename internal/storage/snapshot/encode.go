package snapshot

import (
	"io"
	"sort"

	"gopkg.in/yaml.v3"
)

// Indent is the indentation used for every encoded document.
const Indent = 2

// MappingNode builds a block-style YAML mapping from m with keys in
// byte-wise order.
func MappingNode(m map[string]string) *yaml.Node {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range keys {
		node.Content = append(node.Content, StringNode(k), StringNode(m[k]))
	}
	return node
}

// StringNode returns a string scalar node.
func StringNode(s string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: s}
}

// NullNode returns a null scalar node.
func NullNode() *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
}

// EncodeNode writes node as a single YAML document.
func EncodeNode(w io.Writer, node *yaml.Node) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(Indent)
	if err := enc.Encode(node); err != nil {
		return err
	}
	return enc.Close()
}

// Decode parses a snapshot document.
func Decode(data []byte) (map[string]string, error) {
	m := make(map[string]string)
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
