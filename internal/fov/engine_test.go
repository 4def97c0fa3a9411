package fov

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/samdwyer/gloomstalk/internal/world"
)

// openMap creates a fully-open (all floor) map.
func openMap(width, height int) *world.Map {
	m := world.NewMap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			*m.At(x, y) = world.FloorTile()
		}
	}
	return m
}

func TestOriginAlwaysVisible(t *testing.T) {
	m := openMap(20, 20)
	e := New(m)

	e.Recompute(5, 5, 5, true, AlgoBasic)

	assert.True(t, e.IsVisible(5, 5), "origin tile must always be visible")
	assert.True(t, m.At(5, 5).Explored, "origin tile must be marked explored")
}

func TestRecomputeClearsOldVisibility(t *testing.T) {
	m := openMap(30, 30)
	e := New(m)

	e.Recompute(5, 5, 5, true, AlgoBasic)
	assert.True(t, e.IsVisible(5, 7))

	e.Recompute(25, 25, 5, true, AlgoBasic)
	assert.False(t, e.IsVisible(5, 7), "stale visibility must be cleared on recompute")
}

func TestNearbyTilesVisible(t *testing.T) {
	m := openMap(20, 20)
	e := New(m)

	e.Recompute(10, 10, 5, true, AlgoBasic)

	for _, pos := range [][2]int{{10, 7}, {10, 13}, {7, 10}, {13, 10}} {
		x, y := pos[0], pos[1]
		assert.True(t, e.IsVisible(x, y), "tile (%d,%d) at distance 3 should be visible (radius=5)", x, y)
		assert.True(t, m.At(x, y).Explored, "tile (%d,%d) at distance 3 should be marked explored", x, y)
	}
}

func TestRadiusLimitsVisibility(t *testing.T) {
	m := openMap(20, 20)
	e := New(m)

	e.Recompute(10, 10, 4, true, AlgoBasic)

	// These tiles are exactly 5 away (outside radius=4).
	for _, pos := range [][2]int{{10, 15}, {10, 5}, {15, 10}, {5, 10}} {
		x, y := pos[0], pos[1]
		assert.False(t, e.IsVisible(x, y), "tile (%d,%d) at distance 5 should not be visible with radius=4", x, y)
	}
}

func TestWallBlocksSight(t *testing.T) {
	m := openMap(20, 20)
	*m.At(10, 8) = world.WallTile()
	e := New(m)

	e.Recompute(10, 10, 8, true, AlgoBasic)

	// The wall tile itself is lit at the edge of the shadow.
	assert.True(t, e.IsVisible(10, 8), "the wall tile should be visible with lightWalls")
	// The tile directly behind the wall must be in shadow.
	assert.False(t, e.IsVisible(10, 7), "tile behind the wall should not be visible")
}

func TestLightWallsOff(t *testing.T) {
	m := openMap(20, 20)
	*m.At(10, 8) = world.WallTile()
	e := New(m)

	e.Recompute(10, 10, 8, false, AlgoBasic)

	assert.False(t, e.IsVisible(10, 8), "wall tile should stay dark without lightWalls")
	assert.False(t, e.IsVisible(10, 7))
}

func TestRecomputeIdempotent(t *testing.T) {
	m := openMap(25, 25)
	*m.At(12, 9) = world.WallTile()
	*m.At(8, 12) = world.WallTile()
	e := New(m)

	e.Recompute(12, 12, 6, true, AlgoBasic)
	first := snapshotVisible(e, m)

	e.Recompute(12, 12, 6, true, AlgoBasic)
	second := snapshotVisible(e, m)

	assert.Equal(t, first, second, "recompute at the same origin must yield an identical visible set")
}

func TestExploredIsMonotonic(t *testing.T) {
	m := openMap(40, 20)
	e := New(m)

	e.Recompute(5, 10, 5, true, AlgoBasic)
	assert.True(t, m.At(5, 10).Explored)
	assert.True(t, m.At(8, 10).Explored)

	// Move far away; old tiles leave the visible set but stay explored.
	e.Recompute(35, 10, 5, true, AlgoBasic)
	assert.False(t, e.IsVisible(5, 10))
	assert.True(t, m.At(5, 10).Explored, "explored must never be cleared")
	assert.True(t, m.At(8, 10).Explored, "explored must never be cleared")
}

func TestVisibleImpliesExplored(t *testing.T) {
	m := openMap(20, 20)
	*m.At(9, 9) = world.WallTile()
	e := New(m)

	e.Recompute(10, 10, 6, true, AlgoBasic)

	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if e.IsVisible(x, y) {
				assert.True(t, m.At(x, y).Explored, "visible tile (%d,%d) must be explored", x, y)
			}
		}
	}
}

func TestIsVisibleOutOfBounds(t *testing.T) {
	m := openMap(10, 10)
	e := New(m)
	e.Recompute(5, 5, 5, true, AlgoBasic)

	assert.False(t, e.IsVisible(-1, 5))
	assert.False(t, e.IsVisible(5, 10))
}

func snapshotVisible(e *Engine, m *world.Map) []bool {
	out := make([]bool, 0, m.Width*m.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			out = append(out, e.IsVisible(x, y))
		}
	}
	return out
}
