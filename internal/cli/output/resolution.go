package output

import (
	"bytes"
	"encoding/json"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/DistributedDoge/oss-directory/internal/core/domain"
	"github.com/DistributedDoge/oss-directory/internal/storage/snapshot"
)

// ResolutionNode returns res as an ordered YAML mapping of namespace to slug.
func ResolutionNode(res domain.Resolution) *yaml.Node {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, ns := range res {
		value := snapshot.NullNode()
		if ns.Resolved {
			value = snapshot.StringNode(ns.Slug)
		}
		node.Content = append(node.Content, snapshot.StringNode(ns.Namespace), value)
	}
	return node
}

// MarshalResolutionJSON encodes res as a JSON object whose keys keep the
// ranking order.
func MarshalResolutionJSON(res domain.Resolution) ([]byte, error) {
	if len(res) == 0 {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	buf.WriteString("{\n")
	for i, ns := range res {
		key, err := json.Marshal(ns.Namespace)
		if err != nil {
			return nil, err
		}
		value := []byte("null")
		if ns.Resolved {
			if value, err = json.Marshal(ns.Slug); err != nil {
				return nil, err
			}
		}
		buf.WriteString("  ")
		buf.Write(key)
		buf.WriteString(": ")
		buf.Write(value)
		if i < len(res)-1 {
			buf.WriteByte(',')
		}
		buf.WriteByte('\n')
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// ResolutionTable lists res with one row per namespace.
func ResolutionTable(res domain.Resolution) *Table {
	table := &Table{Headers: []string{"NAMESPACE", "ADDRESSES", "SLUG"}}
	for _, ns := range res {
		slug := "-"
		if ns.Resolved {
			slug = ns.Slug
		}
		table.AddRow(ns.Namespace, strconv.Itoa(ns.AddressCount), slug)
	}
	return table
}
