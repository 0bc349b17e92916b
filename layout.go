package cellgrid

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Layout holds display options handed to the renderer unchanged.
type Layout struct {
	Height             string `env:"HEIGHT" envDefault:"400px"`
	Width              string `env:"WIDTH" envDefault:"100%"`
	StickyTopRows      int    `env:"STICKY_TOP_ROWS" envDefault:"1"`
	StickyBottomRows   int    `env:"STICKY_BOTTOM_ROWS" envDefault:"0"`
	StickyLeftColumns  int    `env:"STICKY_LEFT_COLUMNS" envDefault:"0"`
	StickyRightColumns int    `env:"STICKY_RIGHT_COLUMNS" envDefault:"0"`
}

// DefaultLayout returns a 400px high, full-width layout with the header row sticky.
func DefaultLayout() Layout {
	return Layout{
		Height:        "400px",
		Width:         "100%",
		StickyTopRows: 1,
	}
}

// LayoutFromEnv reads a Layout from environment variables named prefix
// followed by the field's tag, e.g. "GRID_STICKY_TOP_ROWS" for prefix
// "GRID_". Unset variables keep their defaults.
func LayoutFromEnv(prefix string) (Layout, error) {
	var l Layout
	if err := env.ParseWithOptions(&l, env.Options{Prefix: prefix}); err != nil {
		return Layout{}, fmt.Errorf("parse layout env: %w", err)
	}
	if err := l.Validate(); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// Validate rejects negative sticky counts.
func (l Layout) Validate() error {
	counts := []struct {
		name string
		n    int
	}{
		{"stickyTopRows", l.StickyTopRows},
		{"stickyBottomRows", l.StickyBottomRows},
		{"stickyLeftColumns", l.StickyLeftColumns},
		{"stickyRightColumns", l.StickyRightColumns},
	}
	for _, c := range counts {
		if c.n < 0 {
			return fmt.Errorf("layout %s must not be negative, got %d", c.name, c.n)
		}
	}
	return nil
}
