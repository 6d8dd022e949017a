package source

import (
	"gopkg.in/yaml.v3"
)

// unmarshalYAML decodes the first document only.
func unmarshalYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return normalize(v), nil
}
