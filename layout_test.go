package cellgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutFromEnv_Defaults(t *testing.T) {
	l, err := LayoutFromEnv("CELLGRID_TEST_DEFAULTS_")
	require.NoError(t, err)
	assert.Equal(t, DefaultLayout(), l)
}

func TestLayoutFromEnv_Overrides(t *testing.T) {
	t.Setenv("CELLGRID_TEST_HEIGHT", "80vh")
	t.Setenv("CELLGRID_TEST_STICKY_TOP_ROWS", "2")
	t.Setenv("CELLGRID_TEST_STICKY_LEFT_COLUMNS", "1")

	l, err := LayoutFromEnv("CELLGRID_TEST_")
	require.NoError(t, err)
	assert.Equal(t, Layout{
		Height:            "80vh",
		Width:             "100%",
		StickyTopRows:     2,
		StickyLeftColumns: 1,
	}, l)
}

func TestLayoutFromEnv_Errors(t *testing.T) {
	t.Setenv("CELLGRID_BAD_STICKY_TOP_ROWS", "many")
	_, err := LayoutFromEnv("CELLGRID_BAD_")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse layout env:")

	t.Setenv("CELLGRID_NEG_STICKY_RIGHT_COLUMNS", "-1")
	_, err = LayoutFromEnv("CELLGRID_NEG_")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stickyRightColumns")
}
