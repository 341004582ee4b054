package tiles

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Registry holds loaded tile display definitions indexed by kind.
// Definitions are validated against the built-in tile domain at load
// time, so a registry that constructs successfully covers every kind
// with the correct glyph.
type Registry struct {
	defs   [KindCount]TileDef
	colors [KindCount]tcell.Color
	byID   map[string]Kind
}

// NewRegistry creates a registry from loaded tile definitions.
// It fails if any kind is missing, duplicated, unknown, or carries a
// glyph that disagrees with the built-in rendering table.
func NewRegistry(defs []TileDef) (*Registry, error) {
	r := &Registry{byID: make(map[string]Kind, KindCount)}

	seen := [KindCount]bool{}
	for _, def := range defs {
		kind, ok := kindByID(def.ID)
		if !ok {
			return nil, fmt.Errorf("tileset defines unknown tile %q", def.ID)
		}
		if seen[kind] {
			return nil, fmt.Errorf("tileset defines tile %q twice", def.ID)
		}
		if def.Glyph != kind.Glyph() {
			return nil, fmt.Errorf("tileset glyph for %q is %q, want %q", def.ID, def.Glyph, kind.Glyph())
		}
		color, err := ParseHexColor(def.Color)
		if err != nil {
			return nil, fmt.Errorf("tileset color for %q: %w", def.ID, err)
		}
		seen[kind] = true
		r.defs[kind] = def
		r.colors[kind] = color
		r.byID[def.ID] = kind
	}

	for _, kind := range All() {
		if !seen[kind] {
			return nil, fmt.Errorf("tileset is missing tile %q", kind)
		}
	}

	return r, nil
}

// LoadRegistry loads and creates a registry from the embedded tileset.json.
func LoadRegistry() (*Registry, error) {
	defs, err := LoadTileset()
	if err != nil {
		return nil, err
	}
	return NewRegistry(defs)
}

// MustLoadRegistry loads a registry, panicking on error. Use at startup
// for data the program cannot run without.
func MustLoadRegistry() *Registry {
	registry, err := LoadRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Def returns the display definition for a kind.
func (r *Registry) Def(k Kind) TileDef {
	return r.defs[k]
}

// Color returns the parsed terminal color for a kind.
func (r *Registry) Color(k Kind) tcell.Color {
	return r.colors[k]
}

// KindByID resolves a tileset identifier (e.g., "river") to its kind.
func (r *Registry) KindByID(id string) (Kind, bool) {
	kind, ok := r.byID[id]
	return kind, ok
}

// kindByID maps a tileset identifier onto the closed kind enumeration.
func kindByID(id string) (Kind, bool) {
	for _, kind := range All() {
		if kind.String() == id {
			return kind, true
		}
	}
	return 0, false
}
