// Package world provides the dungeon map model and procedural generation.
package world

// Tile is a single map cell's traversal, sight, and exploration state.
type Tile struct {
	Blocked    bool // impassable for movement
	BlockSight bool // occludes field of view
	Explored   bool // set once a tile has been seen; never cleared
}

// WallTile returns a blocking, opaque tile.
func WallTile() Tile {
	return Tile{Blocked: true, BlockSight: true}
}

// FloorTile returns a passable, transparent tile.
func FloorTile() Tile {
	return Tile{}
}
