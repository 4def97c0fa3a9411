// Package entity provides the indexed entity table and its optional
// per-entity components.
package entity

import "github.com/gdamore/tcell/v2"

// ID identifies an entity by its index in the registry. IDs are stable for
// the lifetime of the process and are never reused or compacted.
type ID int

// Player is the registry index reserved for the player.
const Player ID = 0

// Entity is one row of the registry table: anything with a position and a
// glyph. Combat and autonomy are optional components held in sparse columns
// alongside the table (see Registry).
type Entity struct {
	X, Y   int
	Name   string
	Glyph  rune
	Color  tcell.Color
	Blocks bool // occupies its cell exclusively for movement and placement
	Alive  bool
}

// MoveBy shifts the entity by the given delta.
func (e *Entity) MoveBy(dx, dy int) {
	e.X += dx
	e.Y += dy
}
