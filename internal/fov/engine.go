// Package fov computes field of view and accumulates fog of war.
package fov

import (
	"github.com/samdwyer/gloomstalk/internal/world"
)

// Algorithm selects the FOV computation. Only the basic raycaster exists in
// the core; the enum leaves room for shadowcasting variants.
type Algorithm int

const (
	// AlgoBasic casts rays from the origin to the perimeter of the radius
	// square, stopping at the first sight-blocking tile.
	AlgoBasic Algorithm = iota
)

// Engine computes the currently-visible tile set for a map. The visible set
// is a pure function of origin, radius, and map content; it does not poll
// the player, so the caller recomputes only when the origin cell changed.
//
// Every tile found visible has its Explored flag set as a side effect. That
// transition is one-way: nothing in the engine ever clears it.
type Engine struct {
	m       *world.Map
	visible []bool
}

// New builds a visibility structure over the given map.
func New(m *world.Map) *Engine {
	return &Engine{
		m:       m,
		visible: make([]bool, m.Width*m.Height),
	}
}

// IsVisible reports whether the tile was in the visible set at the last
// Recompute.
func (e *Engine) IsVisible(x, y int) bool {
	if !e.m.InBounds(x, y) {
		return false
	}
	return e.visible[y*e.m.Width+x]
}

// Recompute replaces the visible set with the tiles visible from the origin
// within the given radius. When lightWalls is true, the sight-blocking tile
// that terminates a ray is itself lit, so room walls show up at the edge of
// the torch light.
func (e *Engine) Recompute(originX, originY, radius int, lightWalls bool, algo Algorithm) {
	for i := range e.visible {
		e.visible[i] = false
	}

	// Only the basic raycaster is implemented; unknown values fall through
	// to it rather than leaving the set empty.
	_ = algo

	e.markVisible(originX, originY)

	// Cast a ray to every cell on the perimeter of the radius square. Rays
	// share interior cells, which is harmless: marking is idempotent.
	for x := originX - radius; x <= originX+radius; x++ {
		e.castRay(originX, originY, x, originY-radius, radius, lightWalls)
		e.castRay(originX, originY, x, originY+radius, radius, lightWalls)
	}
	for y := originY - radius; y <= originY+radius; y++ {
		e.castRay(originX, originY, originX-radius, y, radius, lightWalls)
		e.castRay(originX, originY, originX+radius, y, radius, lightWalls)
	}
}

// castRay walks the Bresenham line from (x0,y0) toward (x1,y1), marking
// tiles visible until the radius or a sight blocker ends the ray.
func (e *Engine) castRay(x0, y0, x1, y1, radius int, lightWalls bool) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := sign(x1 - x0)
	sy := sign(y1 - y0)
	err := dx + dy

	x, y := x0, y0
	for {
		if x == x1 && y == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}

		ddx, ddy := x-x0, y-y0
		if ddx*ddx+ddy*ddy > radius*radius {
			return
		}
		if !e.m.InBounds(x, y) {
			return
		}
		if e.m.At(x, y).BlockSight {
			if lightWalls {
				e.markVisible(x, y)
			}
			return
		}
		e.markVisible(x, y)
	}
}

func (e *Engine) markVisible(x, y int) {
	e.visible[y*e.m.Width+x] = true
	e.m.At(x, y).Explored = true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
