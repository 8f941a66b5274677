package output

import (
	"bytes"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/boxoffice-go/pkg/boxoffice/models"
)

// ToYAML serialises v as YAML. Records keep their column order.
func ToYAML(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// MarshalYAML encodes the view with its records as ordered mappings.
func (v ViewDocument) MarshalYAML() (any, error) {
	records := make([]*yaml.Node, len(v.Records))
	for i, r := range v.Records {
		node, err := recordNode(r)
		if err != nil {
			return nil, err
		}
		records[i] = node
	}
	return struct {
		Name    string       `yaml:"name"`
		Title   string       `yaml:"title"`
		Columns []string     `yaml:"columns"`
		Records []*yaml.Node `yaml:"records"`
	}{v.Name, v.Title, v.Columns, records}, nil
}

func recordNode(r models.Record) (*yaml.Node, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for i, c := range r.Columns {
		var value any
		if i < len(r.Values) {
			value = r.Values[i]
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c}
		val := &yaml.Node{}
		if err := val.Encode(value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, key, val)
	}
	return node, nil
}
