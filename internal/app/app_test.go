package app

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/samdwyer/terraplot/internal/wave"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("TERRAPLOT_SEED", "12345")
	t.Setenv("TERRAPLOT_SIZE", "8")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv failed: %v", err)
	}
	if cfg.Seed != 12345 {
		t.Errorf("Seed = %d, want 12345", cfg.Seed)
	}
	if cfg.Size != 8 {
		t.Errorf("Size = %d, want 8", cfg.Size)
	}
}

func TestFromEnvInvalid(t *testing.T) {
	t.Setenv("TERRAPLOT_SEED", "not-a-number")

	if _, err := FromEnv(); err == nil {
		t.Error("Expected error for invalid TERRAPLOT_SEED")
	}

	t.Setenv("TERRAPLOT_SEED", "")
	t.Setenv("TERRAPLOT_SIZE", "sixteen")

	if _, err := FromEnv(); err == nil {
		t.Error("Expected error for invalid TERRAPLOT_SIZE")
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.Seed == 0 {
		t.Error("Zero seed should be replaced with a time-based one")
	}
	if cfg.Size != wave.DefaultSize {
		t.Errorf("Size = %d, want %d", cfg.Size, wave.DefaultSize)
	}

	cfg = Config{Seed: 7, Size: 4}.withDefaults()
	if cfg.Seed != 7 || cfg.Size != 4 {
		t.Errorf("Explicit config changed: %+v", cfg)
	}
}

func TestPrintReproducible(t *testing.T) {
	ctx := context.Background()
	cfg := Config{Seed: 42, Size: 8}

	a1, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	a2, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	out1, err := a1.Print(ctx)
	if err != nil {
		t.Fatalf("Print failed: %v", err)
	}
	out2, err := a2.Print(ctx)
	if err != nil {
		t.Fatalf("Print failed: %v", err)
	}

	if out1 != out2 {
		t.Error("Same seed should produce identical plots")
	}
	if len(strings.Split(strings.TrimSuffix(out1, "\n"), "\n")) != 8 {
		t.Errorf("Expected 8 rows in output:\n%s", out1)
	}
}

func TestInvalidSizeSurfaces(t *testing.T) {
	a, err := New(Config{Seed: 1, Size: -3})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	if _, err := a.Print(context.Background()); !errors.Is(err, wave.ErrInvalidSize) {
		t.Errorf("Print error = %v, want ErrInvalidSize", err)
	}
}
