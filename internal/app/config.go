package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/samdwyer/terraplot/internal/wave"
)

// Config holds generation options.
type Config struct {
	// Seed drives the random source used for tie-breaks and kind
	// choices. A seed of 0 means derive one from the current time.
	Seed int64
	// Size is the plot side length. 0 means the default size.
	Size int
}

// FromEnv builds a Config from TERRAPLOT_SEED and TERRAPLOT_SIZE.
// Unset variables leave the zero value, which withDefaults resolves.
func FromEnv() (Config, error) {
	var cfg Config

	if v := os.Getenv("TERRAPLOT_SEED"); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("invalid TERRAPLOT_SEED %q: %w", v, err)
		}
		cfg.Seed = seed
	}

	if v := os.Getenv("TERRAPLOT_SIZE"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid TERRAPLOT_SIZE %q: %w", v, err)
		}
		cfg.Size = size
	}

	return cfg, nil
}

// withDefaults resolves zero values. Invalid sizes (negative) are left
// alone so the generator constructor can reject them.
func (c Config) withDefaults() Config {
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.Size == 0 {
		c.Size = wave.DefaultSize
	}
	return c
}
