package gamedata

import (
	"errors"
	"math/rand"
)

// MonsterRegistry holds loaded monster definitions and provides spawning
// utilities.
type MonsterRegistry struct {
	monsters    []MonsterDef
	totalWeight int
}

// NewMonsterRegistry creates a registry from loaded monster definitions.
func NewMonsterRegistry(monsters []MonsterDef) *MonsterRegistry {
	totalWeight := 0
	for _, m := range monsters {
		totalWeight += m.SpawnWeight
	}
	return &MonsterRegistry{
		monsters:    monsters,
		totalWeight: totalWeight,
	}
}

// LoadMonsterRegistry loads and creates a registry from the embedded
// monsters.json.
func LoadMonsterRegistry() (*MonsterRegistry, error) {
	monsters, err := LoadMonsters()
	if err != nil {
		return nil, err
	}
	if len(monsters) == 0 {
		return nil, errors.New("no monsters loaded from monsters.json")
	}
	return NewMonsterRegistry(monsters), nil
}

// MustLoadMonsterRegistry loads a registry, panicking on error.
func MustLoadMonsterRegistry() *MonsterRegistry {
	registry, err := LoadMonsterRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// SpawnRandom selects a random monster definition using weighted probability.
// Monsters with higher spawnWeight are more likely to be selected. With the
// stock data (orc 80, troll 20) this is the 80/20 archetype split.
func (r *MonsterRegistry) SpawnRandom(rng *rand.Rand) *MonsterDef {
	if r.totalWeight <= 0 || len(r.monsters) == 0 {
		return nil
	}

	roll := rng.Intn(r.totalWeight)

	cumulative := 0
	for i := range r.monsters {
		cumulative += r.monsters[i].SpawnWeight
		if roll < cumulative {
			return &r.monsters[i]
		}
	}

	// Fallback (shouldn't happen)
	return &r.monsters[0]
}

// GetByID returns the monster definition with the given ID, or nil if not
// found.
func (r *MonsterRegistry) GetByID(id string) *MonsterDef {
	for i := range r.monsters {
		if r.monsters[i].ID == id {
			return &r.monsters[i]
		}
	}
	return nil
}

// All returns all monster definitions.
func (r *MonsterRegistry) All() []MonsterDef {
	return r.monsters
}

// Count returns the number of monster archetypes in the registry.
func (r *MonsterRegistry) Count() int {
	return len(r.monsters)
}
