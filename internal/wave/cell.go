// Package wave implements terrain generation by wave-function
// collapse: every cell starts as a superposition of all tile kinds and
// is driven, one collapse and one propagation at a time, to a fully
// resolved plot.
package wave

import "github.com/samdwyer/terraplot/internal/tiles"

// cell holds the wave state of one grid position: either a single
// resolved kind, or the set of kinds still possible there.
type cell struct {
	collapsed  bool
	kind       tiles.Kind   // valid only once collapsed
	candidates []tiles.Kind // duplicate-free; only shrinks over time
}

// newCell returns an open cell with every kind still possible.
func newCell() cell {
	return cell{candidates: tiles.All()}
}

// entropy is the number of kinds still possible at this cell.
// Collapsed cells report 0.
func (c *cell) entropy() int {
	if c.collapsed {
		return 0
	}
	return len(c.candidates)
}
