// Package tiles defines the closed set of terrain kinds, the adjacency
// relation between them, and the display metadata used for rendering.
package tiles

// Kind identifies a terrain tile kind.
type Kind int

const (
	// River tiles form waterways through the plot.
	River Kind = iota
	// Wasteland tiles are the neutral terrain; they border everything.
	Wasteland
	// Farmland tiles form cultivated clusters.
	Farmland
)

// KindCount is the number of terrain kinds.
const KindCount = 3

// DefaultKind backs freshly allocated plot storage. Every position is
// written before it is read, so the default never reaches output.
const DefaultKind = Wasteland

// validNeighbours is the fixed adjacency table. Generated output
// distributions depend on these exact sets; rivers and farmland never
// touch directly.
var validNeighbours = [KindCount][]Kind{
	River:     {River, Wasteland},
	Wasteland: {River, Wasteland, Farmland},
	Farmland:  {Farmland, Wasteland},
}

// glyphs maps each kind to its fixed two-character rendering.
var glyphs = [KindCount]string{
	River:     "░░",
	Wasteland: "▓▓",
	Farmland:  "██",
}

// All returns every kind in declaration order.
func All() []Kind {
	return []Kind{River, Wasteland, Farmland}
}

// String returns the kind's identifier name.
func (k Kind) String() string {
	switch k {
	case River:
		return "river"
	case Wasteland:
		return "wasteland"
	case Farmland:
		return "farmland"
	default:
		return "unknown"
	}
}

// Glyph returns the kind's two-character display string.
func (k Kind) Glyph() string {
	if k < 0 || k >= KindCount {
		return "??"
	}
	return glyphs[k]
}

// ValidNeighbours returns the kinds permitted to sit adjacent to a
// tile of kind k. The result is a fresh slice; callers may modify it.
func (k Kind) ValidNeighbours() []Kind {
	ns := validNeighbours[k]
	out := make([]Kind, len(ns))
	copy(out, ns)
	return out
}

// Allows reports whether other may sit adjacent to a tile of kind k.
func (k Kind) Allows(other Kind) bool {
	for _, n := range validNeighbours[k] {
		if n == other {
			return true
		}
	}
	return false
}
