package wave

import (
	"strings"

	"github.com/samdwyer/terraplot/internal/tiles"
)

// Plot is a fully collapsed terrain grid: exactly one kind per cell,
// iterable row-major by any renderer.
type Plot struct {
	size  int
	kinds []tiles.Kind // row-major: kinds[y*size+x]
}

// NewPlot allocates a plot of the given side length. Storage is backed
// by the default kind until set.
func NewPlot(size int) *Plot {
	kinds := make([]tiles.Kind, size*size)
	for i := range kinds {
		kinds[i] = tiles.DefaultKind
	}
	return &Plot{size: size, kinds: kinds}
}

// Size returns the plot side length.
func (p *Plot) Size() int {
	return p.size
}

// At returns the kind at (x, y). Out-of-bounds positions report the
// default kind.
func (p *Plot) At(x, y int) tiles.Kind {
	if x < 0 || x >= p.size || y < 0 || y >= p.size {
		return tiles.DefaultKind
	}
	return p.kinds[y*p.size+x]
}

// set writes the kind at (x, y); the position must be in bounds.
func (p *Plot) set(x, y int, k tiles.Kind) {
	p.kinds[y*p.size+x] = k
}

// String renders the plot as glyph rows, one row per line.
func (p *Plot) String() string {
	var b strings.Builder
	for y := 0; y < p.size; y++ {
		for x := 0; x < p.size; x++ {
			b.WriteString(p.At(x, y).Glyph())
		}
		b.WriteByte('\n')
	}
	return b.String()
}
