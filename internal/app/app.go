// Package app ties the collapse engine, the tileset, and the terminal
// UI into a runnable generator application.
package app

import (
	"context"
	"io"
	"math/rand"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/terraplot/internal/telemetry"
	"github.com/samdwyer/terraplot/internal/tiles"
	"github.com/samdwyer/terraplot/internal/ui"
	"github.com/samdwyer/terraplot/internal/wave"
)

// App owns one random stream and generates plots from it. Successive
// generations draw from the same stream, so a fixed seed reproduces
// the whole session, not just the first plot.
type App struct {
	cfg      Config
	registry *tiles.Registry
	rng      *rand.Rand
}

// New creates an app from the given config, loading the embedded
// tileset and seeding the random source.
func New(cfg Config) (*App, error) {
	cfg = cfg.withDefaults()

	registry, err := tiles.LoadRegistry()
	if err != nil {
		return nil, err
	}

	return &App{
		cfg:      cfg,
		registry: registry,
		rng:      rand.New(rand.NewSource(cfg.Seed)),
	}, nil
}

// generate builds a fresh generator over the app's random stream and
// collapses it to a finished plot.
func (a *App) generate(ctx context.Context) (*wave.Plot, error) {
	gen, err := wave.NewGenerator(a.cfg.Size, a.rng)
	if err != nil {
		return nil, err
	}
	if err := gen.Collapse(ctx); err != nil {
		return nil, err
	}
	return gen.IntoPlot()
}

// Print generates one plot and writes its glyph rows to w, one row
// per line.
func (a *App) Print(ctx context.Context) (string, error) {
	plot, err := a.generate(ctx)
	if err != nil {
		return "", err
	}
	return plot.String(), nil
}

// WritePlot generates one plot and writes it to w.
func (a *App) WritePlot(ctx context.Context, w io.Writer) error {
	out, err := a.Print(ctx)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// Run opens the interactive terminal viewer: it shows a plot and
// regenerates on 'r' until the user quits.
func (a *App) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("app")

	ctx, initSpan := tracer.Start(ctx, "app.init")

	screen, err := ui.NewScreen()
	if err != nil {
		initSpan.End()
		return err
	}
	defer screen.Close()
	renderer := ui.NewRenderer(screen, a.registry)

	plot, err := a.generate(ctx)
	if err != nil {
		initSpan.End()
		return err
	}

	initSpan.SetAttributes(
		attribute.Int("plot.size", a.cfg.Size),
		attribute.Int64("app.seed", a.cfg.Seed),
	)
	initSpan.End()

	running := true
	for running {
		renderer.Render(plot, "r: regenerate  q: quit")

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyEscape, tcell.KeyCtrlC:
				running = false
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					running = false
				case 'r', 'R':
					regenCtx, span := tracer.Start(ctx, "app.regenerate")
					plot, err = a.generate(regenCtx)
					span.End()
					if err != nil {
						return err
					}
				}
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}

	return nil
}
