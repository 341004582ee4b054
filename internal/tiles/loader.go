package tiles

import (
	"encoding/json"
	"fmt"
)

// load reads and unmarshals a JSON file from the embedded filesystem.
func load[T any](filename string) (T, error) {
	var result T

	content, err := tilesetFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// TileDef describes one tile kind's display metadata as loaded from
// the embedded tileset.json.
type TileDef struct {
	ID          string `json:"id"`          // Identifier matching Kind.String() (e.g., "river")
	Name        string `json:"name"`        // Display name (e.g., "River")
	Glyph       string `json:"glyph"`       // Two-character rendering; must match the built-in glyph
	Color       string `json:"color"`       // Hex foreground color for terminal rendering
	Description string `json:"description"` // Flavor text
}

// TilesetFile represents the structure of tileset.json.
type TilesetFile struct {
	Tiles []TileDef `json:"tiles"`
}

// LoadTileset loads tile display definitions from the embedded tileset.json.
func LoadTileset() ([]TileDef, error) {
	file, err := load[TilesetFile]("tileset.json")
	if err != nil {
		return nil, err
	}
	return file.Tiles, nil
}
