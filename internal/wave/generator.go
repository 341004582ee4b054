package wave

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/terraplot/internal/telemetry"
	"github.com/samdwyer/terraplot/internal/tiles"
)

// DefaultSize is the reference plot side length.
const DefaultSize = 16

var (
	// ErrInvalidSize reports a grid side length below 1.
	ErrInvalidSize = errors.New("wave: grid size must be at least 1")
	// ErrContradiction reports a cell whose candidate set emptied
	// before it could be collapsed. There is no backtracking; the run
	// is unsalvageable.
	ErrContradiction = errors.New("wave: no valid state possible")
	// ErrNotCollapsed reports a superposition surviving past the
	// driver loop. This is an engine bug, not caller misuse.
	ErrNotCollapsed = errors.New("wave: grid contains uncollapsed cells")
)

// Coord addresses one grid cell.
type Coord struct {
	X, Y int
}

// Generator owns a square grid of wave states and drives it to a
// fully collapsed plot. It is single-use: after a successful Collapse
// the finished grid is extracted with IntoPlot and the generator is
// discarded.
type Generator struct {
	size  int
	cells []cell // row-major: cells[y*size+x]
	rng   *rand.Rand
}

// NewGenerator creates a generator with every cell in the
// all-kinds-possible state. The rng drives both random-choice points
// of the algorithm (tie-break among lowest-entropy cells, kind choice
// on collapse); pass a seeded source for reproducible plots.
func NewGenerator(size int, rng *rand.Rand) (*Generator, error) {
	if size < 1 {
		return nil, ErrInvalidSize
	}
	cells := make([]cell, size*size)
	for i := range cells {
		cells[i] = newCell()
	}
	return &Generator{
		size:  size,
		cells: cells,
		rng:   rng,
	}, nil
}

// Size returns the grid side length.
func (g *Generator) Size() int {
	return g.size
}

// at returns the cell at c. All grid indexing goes through here; c
// must be in bounds.
func (g *Generator) at(c Coord) *cell {
	return &g.cells[c.Y*g.size+c.X]
}

// inBounds reports whether c addresses a cell of the grid.
func (g *Generator) inBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// FindLowestEntropy scans the whole grid in a fixed row/column sweep
// and returns the coordinates of every open cell whose entropy equals
// the grid-wide minimum. An empty result means no open cells remain,
// which is the driver loop's normal termination condition. The scan
// has no side effects.
func (g *Generator) FindLowestEntropy() []Coord {
	var lowest []Coord
	entropy := math.MaxInt

	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			c := Coord{X: x, Y: y}
			cl := g.at(c)
			if cl.collapsed {
				continue
			}
			// An emptied candidate set counts as entropy 0 so the
			// driver picks it next and surfaces the contradiction.
			switch e := cl.entropy(); {
			case e < entropy:
				entropy = e
				lowest = append(lowest[:0], c)
			case e == entropy:
				lowest = append(lowest, c)
			}
		}
	}

	return lowest
}

// collapseCell resolves the open cell at c to one of its remaining
// candidates, chosen uniformly. An empty candidate set is a fatal
// contradiction: the surrounding constraints admit no kind here and
// the engine does not backtrack.
func (g *Generator) collapseCell(c Coord) error {
	cl := g.at(c)
	if cl.collapsed {
		return nil
	}
	if len(cl.candidates) == 0 {
		return fmt.Errorf("%w at (%d, %d)", ErrContradiction, c.X, c.Y)
	}
	kind := cl.candidates[g.rng.Intn(len(cl.candidates))]
	*cl = cell{collapsed: true, kind: kind}
	return nil
}

// allowedNeighbours unions the valid-neighbour sets over every kind
// still possible at c. For a collapsed source this degenerates to the
// single kind's neighbour set.
func (g *Generator) allowedNeighbours(c Coord) [tiles.KindCount]bool {
	var allowed [tiles.KindCount]bool

	cl := g.at(c)
	if cl.collapsed {
		for _, k := range cl.kind.ValidNeighbours() {
			allowed[k] = true
		}
		return allowed
	}
	for _, candidate := range cl.candidates {
		for _, k := range candidate.ValidNeighbours() {
			allowed[k] = true
		}
	}
	return allowed
}

// propagate applies one hop of constraint tightening from c to its
// in-bounds 8-connected neighbours: each open neighbour keeps only the
// candidates some kind still possible at c allows beside it. A
// neighbour's set may shrink to one (the next entropy scan picks it
// up) or to zero (a latent contradiction, surfaced when that cell is
// chosen for collapse). Propagation never cascades to second-order
// neighbours within a call; the wavefront emerges from the driver
// loop re-propagating every iteration.
func (g *Generator) propagate(c Coord) {
	allowed := g.allowedNeighbours(c)

	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			n := Coord{X: c.X + dx, Y: c.Y + dy}
			if !g.inBounds(n) {
				continue
			}
			nc := g.at(n)
			if nc.collapsed {
				continue
			}

			kept := nc.candidates[:0]
			for _, k := range nc.candidates {
				if allowed[k] {
					kept = append(kept, k)
				}
			}
			nc.candidates = kept
		}
	}
}

// Collapse runs the driver loop to completion: find the lowest-entropy
// open cells, pick one uniformly at random, collapse it, propagate to
// its neighbourhood, repeat. Each iteration closes exactly one cell,
// so the loop runs at most size² times. Returns ErrContradiction
// (wrapped with the cell position) if a cell runs out of candidates.
func (g *Generator) Collapse(ctx context.Context) error {
	tracer := telemetry.Tracer("wave")
	_, span := tracer.Start(ctx, "generator.collapse")
	defer span.End()

	startTime := time.Now()
	iterations := 0

	for {
		lowest := g.FindLowestEntropy()
		if len(lowest) == 0 {
			break
		}

		target := lowest[g.rng.Intn(len(lowest))]
		if err := g.collapseCell(target); err != nil {
			span.SetAttributes(attribute.String("plot.error", err.Error()))
			return err
		}
		g.propagate(target)
		iterations++
	}

	span.SetAttributes(
		attribute.Int("plot.size", g.size),
		attribute.Int("plot.iterations", iterations),
		attribute.Int64("plot.collapse_ms", time.Since(startTime).Milliseconds()),
	)
	return nil
}

// IntoPlot extracts the finished grid. Every cell must be collapsed;
// a surviving superposition violates the driver loop's contract and
// surfaces as ErrNotCollapsed.
func (g *Generator) IntoPlot() (*Plot, error) {
	plot := NewPlot(g.size)
	for y := 0; y < g.size; y++ {
		for x := 0; x < g.size; x++ {
			cl := g.at(Coord{X: x, Y: y})
			if !cl.collapsed {
				return nil, fmt.Errorf("%w: superposition left at (%d, %d)", ErrNotCollapsed, x, y)
			}
			plot.set(x, y, cl.kind)
		}
	}
	return plot, nil
}
