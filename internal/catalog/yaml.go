package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// decodeYAML reads a top-level items list with the same keys as the TOML source.
func decodeYAML(data []byte) ([]Row, error) {
	var doc struct {
		Items []documentRow `yaml:"items"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse yaml catalog: %w", err)
	}
	return rowsOf(doc.Items), nil
}
