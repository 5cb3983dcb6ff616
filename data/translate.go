package data

import (
	"fmt"

	"github.com/goccy/go-yaml"
)

// MarshalYAML encodes a container as a YAML document. Keys are emitted in
// insertion order, nested views become nested mappings and stored lists
// become sequences. The view model itself fixes no wire format; this is a
// standalone translation over the container's structural shape.
func MarshalYAML(c *Container) ([]byte, error) {
	if c == nil {
		return nil, ErrNilValue
	}
	out, err := yaml.Marshal(mapSliceOf(c))
	if err != nil {
		return nil, fmt.Errorf("data: encode yaml: %w", err)
	}
	return out, nil
}

func mapSliceOf(v *View) yaml.MapSlice {
	ms := make(yaml.MapSlice, 0, len(v.keys))
	for _, k := range v.keys {
		ms = append(ms, yaml.MapItem{Key: k, Value: yamlValue(v.values[k])})
	}
	return ms
}

func yamlValue(val any) any {
	switch t := val.(type) {
	case *View:
		return mapSliceOf(t)
	case []any:
		out := make([]any, 0, len(t))
		for _, el := range t {
			out = append(out, yamlValue(el))
		}
		return out
	}
	return val
}

// UnmarshalYAML decodes a YAML mapping into a fresh container, preserving
// the document's key order. Nested mappings become nested views; mappings
// inside sequences stay plain maps, mirroring how Set normalizes list
// elements. Null values have no tree representation and are skipped.
func UnmarshalYAML(b []byte) (*Container, error) {
	var doc yaml.MapSlice
	if err := yaml.UnmarshalWithOptions(b, &doc, yaml.UseOrderedMap()); err != nil {
		return nil, fmt.Errorf("data: decode yaml: %w", err)
	}
	c := NewContainer()
	if err := setMapSlice(c, doc); err != nil {
		return nil, err
	}
	return c, nil
}

func setMapSlice(v *View, ms yaml.MapSlice) error {
	for _, item := range ms {
		q := NewQuery(fmt.Sprint(item.Key))
		switch val := item.Value.(type) {
		case nil:
			continue
		case yaml.MapSlice:
			sub, err := v.CreateView(q)
			if err != nil {
				return err
			}
			if err := setMapSlice(sub, val); err != nil {
				return err
			}
		default:
			if err := v.Set(q, plainValue(val)); err != nil {
				return err
			}
		}
	}
	return nil
}

func plainValue(val any) any {
	switch t := val.(type) {
	case yaml.MapSlice:
		out := make(map[string]any, len(t))
		for _, item := range t {
			out[fmt.Sprint(item.Key)] = plainValue(item.Value)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, el := range t {
			out = append(out, plainValue(el))
		}
		return out
	}
	return val
}
