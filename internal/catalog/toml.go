package catalog

import (
	"fmt"

	toml "github.com/pelletier/go-toml/v2"
)

// decodeTOML reads [[item]] tables:
//
//	[[item]]
//	article = "A1"
//	name = "Стол"
//	category = "furniture"
//	material = "wood"
//	price = 1500
func decodeTOML(data []byte) ([]Row, error) {
	var doc struct {
		Item []documentRow `toml:"item"`
	}
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse toml catalog: %w", err)
	}
	return rowsOf(doc.Item), nil
}
