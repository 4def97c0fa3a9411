package world

// Room is a rectangle used during generation to carve floor tiles and place
// monsters. Bounds are inclusive on all four edges; the carved interior
// excludes the boundary ring. Rooms are not retained after generation.
type Room struct {
	X1, Y1, X2, Y2 int
}

// NewRoom creates a room from a top-left corner and dimensions.
func NewRoom(x, y, w, h int) Room {
	return Room{X1: x, Y1: y, X2: x + w, Y2: y + h}
}

// Center returns the room's integer centroid (floor division).
func (r Room) Center() (int, int) {
	return (r.X1 + r.X2) / 2, (r.Y1 + r.Y2) / 2
}

// Intersects reports whether two rooms overlap, using an inclusive test:
// rooms that merely touch along a boundary also count as intersecting.
// This spacing rule keeps accepted rooms at least one wall apart and is
// relied on by the tunnel carving.
func (r Room) Intersects(other Room) bool {
	return r.X1 <= other.X2 && r.X2 >= other.X1 &&
		r.Y1 <= other.Y2 && r.Y2 >= other.Y1
}
