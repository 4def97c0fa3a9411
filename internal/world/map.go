package world

import "fmt"

// Map is the dungeon grid. Origin (0,0) is the top-left corner. Tiles are
// immutable after generation except for the Explored flag, which the
// visibility engine flips one way.
type Map struct {
	Width  int
	Height int
	Tiles  [][]Tile // indexed [y][x]
}

// NewMap creates a map of the given size filled with walls.
func NewMap(width, height int) *Map {
	tiles := make([][]Tile, height)
	for y := range tiles {
		tiles[y] = make([]Tile, width)
		for x := range tiles[y] {
			tiles[y][x] = WallTile()
		}
	}
	return &Map{Width: width, Height: height, Tiles: tiles}
}

// InBounds reports whether the position lies on the grid.
func (m *Map) InBounds(x, y int) bool {
	return x >= 0 && x < m.Width && y >= 0 && y < m.Height
}

// At returns the tile at the given position. Out-of-bounds access is a
// broken caller contract and panics.
func (m *Map) At(x, y int) *Tile {
	if !m.InBounds(x, y) {
		panic(fmt.Sprintf("world: tile access out of bounds: (%d,%d) on %dx%d map", x, y, m.Width, m.Height))
	}
	return &m.Tiles[y][x]
}

// IsBlocked reports whether the tile at the position blocks movement.
func (m *Map) IsBlocked(x, y int) bool {
	return m.At(x, y).Blocked
}

// carveRoom sets the room's interior cells to floor, leaving the boundary
// ring as wall.
func (m *Map) carveRoom(r Room) {
	for y := r.Y1 + 1; y < r.Y2; y++ {
		for x := r.X1 + 1; x < r.X2; x++ {
			m.Tiles[y][x] = FloorTile()
		}
	}
}

// carveHorizontalTunnel carves a one-tile-high horizontal tunnel, inclusive
// of both endpoints.
func (m *Map) carveHorizontalTunnel(x1, x2, y int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		m.Tiles[y][x] = FloorTile()
	}
}

// carveVerticalTunnel carves a one-tile-wide vertical tunnel, inclusive of
// both endpoints.
func (m *Map) carveVerticalTunnel(y1, y2, x int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		m.Tiles[y][x] = FloorTile()
	}
}
