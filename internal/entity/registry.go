package entity

import "fmt"

// Registry is the shared entity table. Rows are dense and indexed by ID;
// the Fighter and AI components live in sparse columns keyed by the same
// IDs. Index 0 is always the player and exists for the lifetime of the
// process. Rows are never removed: a dead entity keeps its index and has
// its capabilities zeroed instead.
type Registry struct {
	rows     []Entity
	fighters map[ID]*Fighter
	ais      map[ID]AIKind
}

// NewRegistry creates a registry seeded with the player row at index 0.
func NewRegistry(player Entity, fighter *Fighter) *Registry {
	r := &Registry{
		rows:     []Entity{player},
		fighters: make(map[ID]*Fighter),
		ais:      make(map[ID]AIKind),
	}
	if fighter != nil {
		r.fighters[Player] = fighter
	}
	return r
}

// Add appends a row and returns its ID.
func (r *Registry) Add(e Entity) ID {
	r.rows = append(r.rows, e)
	return ID(len(r.rows) - 1)
}

// Len returns the number of rows, dead ones included.
func (r *Registry) Len() int {
	return len(r.rows)
}

// At returns a mutable view of one row.
func (r *Registry) At(id ID) *Entity {
	return &r.rows[id]
}

// Pair returns mutable views of two distinct rows. Equal indices indicate a
// broken caller contract (an entity acting on itself) and panic.
func (r *Registry) Pair(a, b ID) (*Entity, *Entity) {
	if a == b {
		panic(fmt.Sprintf("entity: Pair called with equal indices %d", a))
	}
	return &r.rows[a], &r.rows[b]
}

// Fighter returns the entity's combat component, or nil if it has none.
func (r *Registry) Fighter(id ID) *Fighter {
	return r.fighters[id]
}

// SetFighter attaches a combat component to the entity.
func (r *Registry) SetFighter(id ID, f *Fighter) {
	r.fighters[id] = f
}

// RemoveFighter detaches the entity's combat component.
func (r *Registry) RemoveFighter(id ID) {
	delete(r.fighters, id)
}

// AI returns the entity's AI tag, if any.
func (r *Registry) AI(id ID) (AIKind, bool) {
	kind, ok := r.ais[id]
	return kind, ok
}

// SetAI tags the entity as autonomous.
func (r *Registry) SetAI(id ID, kind AIKind) {
	r.ais[id] = kind
}

// RemoveAI clears the entity's AI tag.
func (r *Registry) RemoveAI(id ID) {
	delete(r.ais, id)
}

// BlockingAt returns the blocking entity occupying the cell, if any.
func (r *Registry) BlockingAt(x, y int) (ID, bool) {
	for i := range r.rows {
		if r.rows[i].Blocks && r.rows[i].X == x && r.rows[i].Y == y {
			return ID(i), true
		}
	}
	return 0, false
}

// FighterAt returns the entity occupying the cell that carries a Fighter
// component, if any.
func (r *Registry) FighterAt(x, y int) (ID, bool) {
	for i := range r.rows {
		id := ID(i)
		if r.rows[i].X == x && r.rows[i].Y == y && r.fighters[id] != nil {
			return id, true
		}
	}
	return 0, false
}
