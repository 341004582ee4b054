package tiles

import (
	"strings"
	"testing"
)

func TestLoadTileset(t *testing.T) {
	defs, err := LoadTileset()
	if err != nil {
		t.Fatalf("Failed to load tileset: %v", err)
	}

	if len(defs) != KindCount {
		t.Errorf("Expected %d tile definitions, got %d", KindCount, len(defs))
	}

	expectedIDs := map[string]bool{"river": false, "wasteland": false, "farmland": false}
	for _, d := range defs {
		if _, ok := expectedIDs[d.ID]; ok {
			expectedIDs[d.ID] = true
		}
	}

	for id, found := range expectedIDs {
		if !found {
			t.Errorf("Expected tile %q not found", id)
		}
	}
}

func TestLoadRegistry(t *testing.T) {
	registry, err := LoadRegistry()
	if err != nil {
		t.Fatalf("Failed to load registry: %v", err)
	}

	for _, kind := range All() {
		def := registry.Def(kind)
		if def.ID != kind.String() {
			t.Errorf("Def(%v).ID = %q, want %q", kind, def.ID, kind.String())
		}
		if def.Glyph != kind.Glyph() {
			t.Errorf("Def(%v).Glyph = %q, want %q", kind, def.Glyph, kind.Glyph())
		}
		if def.Name == "" {
			t.Errorf("Def(%v) has empty name", kind)
		}
	}

	river, ok := registry.KindByID("river")
	if !ok || river != River {
		t.Errorf("KindByID(\"river\") = %v, %v; want River, true", river, ok)
	}
	if _, ok := registry.KindByID("lava"); ok {
		t.Error("KindByID accepted an unknown tile id")
	}
}

func TestNewRegistryValidation(t *testing.T) {
	valid := func() []TileDef {
		return []TileDef{
			{ID: "river", Name: "River", Glyph: "░░", Color: "#3A7CA5"},
			{ID: "wasteland", Name: "Wasteland", Glyph: "▓▓", Color: "#8A7F6A"},
			{ID: "farmland", Name: "Farmland", Glyph: "██", Color: "#5C9E4F"},
		}
	}

	if _, err := NewRegistry(valid()); err != nil {
		t.Fatalf("Valid tileset rejected: %v", err)
	}

	tests := []struct {
		name    string
		mutate  func([]TileDef) []TileDef
		wantErr string
	}{
		{
			name:    "missing kind",
			mutate:  func(d []TileDef) []TileDef { return d[:2] },
			wantErr: "missing",
		},
		{
			name:    "duplicate kind",
			mutate:  func(d []TileDef) []TileDef { return append(d, d[0]) },
			wantErr: "twice",
		},
		{
			name: "unknown kind",
			mutate: func(d []TileDef) []TileDef {
				d[0].ID = "lava"
				return d
			},
			wantErr: "unknown",
		},
		{
			name: "wrong glyph",
			mutate: func(d []TileDef) []TileDef {
				d[0].Glyph = "~~"
				return d
			},
			wantErr: "glyph",
		},
		{
			name: "bad color",
			mutate: func(d []TileDef) []TileDef {
				d[0].Color = "#12345"
				return d
			},
			wantErr: "color",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.mutate(valid()))
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"", false},
		{"#FFF", false},
		{"#GGGGGG", false},
		{"#FF00001", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) failed: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should have failed", tt.input)
		}
	}
}
