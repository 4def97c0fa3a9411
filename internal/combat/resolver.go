// Package combat resolves attacks, damage, and death transitions over the
// entity registry.
package combat

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/gloomstalk/internal/entity"
)

// CorpseGlyph replaces a dead entity's glyph.
const CorpseGlyph = '%'

// corpseColor is the dark red used for all remains.
var corpseColor = tcell.NewRGBColor(191, 0, 0)

// EventKind classifies a combat event.
type EventKind int

const (
	// EventDamage is an attack that dealt damage.
	EventDamage EventKind = iota
	// EventNoEffect is an attack fully absorbed by defense. Informational,
	// not an error; no state changed.
	EventNoEffect
	// EventDeath is a fighter dropping to zero HP.
	EventDeath
)

// Event describes one combat outcome for the message log.
type Event struct {
	Kind     EventKind
	Attacker string
	Defender string
	Damage   int
	Message  string
}

// Attack resolves one attack between two distinct entities. Damage is
// max(0, attacker power - defender defense); zero damage leaves the
// defender untouched and yields a no-effect event. A kill appends a death
// event after the damage event.
//
// Both entities must carry a Fighter. Equal indices are a fatal caller bug.
func Attack(reg *entity.Registry, attackerID, defenderID entity.ID) []Event {
	attacker, defender := reg.Pair(attackerID, defenderID)
	af := reg.Fighter(attackerID)
	df := reg.Fighter(defenderID)
	if af == nil || df == nil {
		panic(fmt.Sprintf("combat: Attack between non-fighters %d and %d", attackerID, defenderID))
	}

	damage := af.Power - df.Defense
	if damage <= 0 {
		return []Event{{
			Kind:     EventNoEffect,
			Attacker: attacker.Name,
			Defender: defender.Name,
			Message:  fmt.Sprintf("%s attacks %s but it has no effect!", attacker.Name, defender.Name),
		}}
	}

	events := []Event{{
		Kind:     EventDamage,
		Attacker: attacker.Name,
		Defender: defender.Name,
		Damage:   damage,
		Message:  fmt.Sprintf("%s attacks %s for %d hit points.", attacker.Name, defender.Name, damage),
	}}

	df.HP -= damage
	if df.HP <= 0 && defender.Alive {
		events = append(events, applyDeath(reg, defenderID))
	}
	return events
}

// TakeDamage applies a raw amount to the entity, bypassing the
// attacker/defender formula (traps, poison). Only positive amounts mutate
// HP. Calling it on an entity that is already dead, or that has lost its
// Fighter, is a no-op: the death transition never fires twice.
func TakeDamage(reg *entity.Registry, id entity.ID, amount int) []Event {
	f := reg.Fighter(id)
	if f == nil || !reg.At(id).Alive {
		return nil
	}
	if amount <= 0 {
		return nil
	}

	f.HP -= amount
	if f.HP <= 0 {
		return []Event{applyDeath(reg, id)}
	}
	return nil
}

// applyDeath runs the entity's death policy exactly once. The policy set is
// closed; an unknown value is a programming error.
func applyDeath(reg *entity.Registry, id entity.ID) Event {
	f := reg.Fighter(id)
	e := reg.At(id)

	switch f.OnDeath {
	case entity.DeathPlayer:
		// The player row keeps its Fighter so the HP bar can show zero;
		// nothing the player does afterwards has any effect.
		e.Alive = false
		e.Glyph = CorpseGlyph
		e.Color = corpseColor
		return Event{
			Kind:     EventDeath,
			Defender: e.Name,
			Message:  "You died!",
		}
	case entity.DeathMonster:
		name := e.Name
		e.Alive = false
		e.Blocks = false
		e.Glyph = CorpseGlyph
		e.Color = corpseColor
		e.Name = "remains of " + name
		reg.RemoveFighter(id)
		reg.RemoveAI(id)
		return Event{
			Kind:     EventDeath,
			Defender: name,
			Message:  fmt.Sprintf("%s is dead!", name),
		}
	default:
		panic(fmt.Sprintf("combat: unknown death policy %d", f.OnDeath))
	}
}
