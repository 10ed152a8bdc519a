// Package testutil loads YAML test fixtures into the value model.
//
// Mappings become *value.Object with keys in document order, sequences
// become []any and scalars take their resolved YAML type. Three local tags
// reach the kinds YAML has no syntax for:
//
//	!map  {1: one, 2: two}   # *value.Map
//	!set  [a, b]             # *value.Set
//	!undefined ""            # value.Undefined
package testutil

import (
	"fmt"
	"os"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/hasbyte1/go-datakit/value"
)

// Decode parses a single YAML document into the value model.
func Decode(data []byte) (any, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("testutil: parse yaml: %w", err)
	}
	return FromNode(&doc)
}

// FromNode converts a parsed YAML node into the value model.
func FromNode(n *yaml.Node) (any, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return FromNode(n.Content[0])
	case yaml.AliasNode:
		return FromNode(n.Alias)
	case yaml.SequenceNode:
		items := make([]any, len(n.Content))
		for i, child := range n.Content {
			v, err := FromNode(child)
			if err != nil {
				return nil, err
			}
			items[i] = v
		}
		if n.Tag == "!set" {
			return value.NewSet(items...), nil
		}
		return items, nil
	case yaml.MappingNode:
		return fromMapping(n)
	case yaml.ScalarNode:
		if n.Tag == "!undefined" {
			return value.Undefined, nil
		}
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("testutil: line %d: %w", n.Line, err)
		}
		return v, nil
	}
	return nil, fmt.Errorf("testutil: line %d: unsupported node kind %d", n.Line, n.Kind)
}

func fromMapping(n *yaml.Node) (any, error) {
	asMap := n.Tag == "!map"
	obj := value.NewObject()
	m := value.NewMap()
	for i := 0; i+1 < len(n.Content); i += 2 {
		val, err := FromNode(n.Content[i+1])
		if err != nil {
			return nil, err
		}
		if !asMap {
			obj.Set(n.Content[i].Value, val)
			continue
		}
		key, err := FromNode(n.Content[i])
		if err != nil {
			return nil, err
		}
		if !m.Set(key, val) {
			return nil, fmt.Errorf("testutil: line %d: map key %v is not comparable", n.Content[i].Line, key)
		}
	}
	if asMap {
		return m, nil
	}
	return obj, nil
}

// LoadCases reads a fixture file holding a sequence of mappings and returns
// one *value.Object per case. It fails the test on any error.
func LoadCases(tb testing.TB, path string) []*value.Object {
	tb.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		tb.Fatalf("read fixture %s: %v", path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		tb.Fatalf("decode fixture %s: %v", path, err)
	}
	items, ok := doc.([]any)
	if !ok {
		tb.Fatalf("fixture %s: top level must be a sequence, got %s", path, value.Of(doc))
	}
	cases := make([]*value.Object, 0, len(items))
	for i, item := range items {
		c, ok := item.(*value.Object)
		if !ok {
			tb.Fatalf("fixture %s: case %d must be a mapping, got %s", path, i, value.Of(item))
		}
		cases = append(cases, c)
	}
	return cases
}

// Get returns field key of a fixture case, or value.Undefined when absent.
func Get(c *value.Object, key string) any {
	v, ok := c.Get(key)
	if !ok {
		return value.Undefined
	}
	return v
}
