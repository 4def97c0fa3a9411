package world

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoomCenterFloorDivision(t *testing.T) {
	// Odd-sized bounds floor toward the top-left.
	r := NewRoom(0, 0, 5, 5)
	x, y := r.Center()
	assert.Equal(t, 2, x)
	assert.Equal(t, 2, y)

	r = NewRoom(3, 7, 4, 6)
	x, y = r.Center()
	assert.Equal(t, 5, x)
	assert.Equal(t, 10, y)
}

func TestRoomIntersectsOverlap(t *testing.T) {
	a := NewRoom(0, 0, 10, 10)
	b := NewRoom(5, 5, 10, 10)
	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))
}

func TestRoomIntersectsEdgeTouch(t *testing.T) {
	// Rooms sharing only a boundary edge still count as intersecting. The
	// generator relies on this to keep at least one wall between rooms.
	a := NewRoom(0, 0, 5, 5) // X2 == 5
	b := NewRoom(5, 0, 5, 5) // X1 == 5
	assert.True(t, a.Intersects(b))

	c := NewRoom(0, 5, 5, 5) // shares Y edge with a
	assert.True(t, a.Intersects(c))

	// Corner touch also collides.
	d := NewRoom(5, 5, 5, 5)
	assert.True(t, a.Intersects(d))
}

func TestRoomIntersectsDisjoint(t *testing.T) {
	a := NewRoom(0, 0, 5, 5)
	b := NewRoom(6, 0, 5, 5)
	assert.False(t, a.Intersects(b))
	assert.False(t, b.Intersects(a))
}
