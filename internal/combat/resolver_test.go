package combat

import (
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/gloomstalk/internal/entity"
)

func duelRegistry(attackerPower, defenderDefense, defenderHP int) (*entity.Registry, entity.ID) {
	reg := entity.NewRegistry(entity.Entity{
		X: 1, Y: 1,
		Name:   "player",
		Glyph:  '@',
		Color:  tcell.ColorWhite,
		Blocks: true,
		Alive:  true,
	}, &entity.Fighter{MaxHP: 30, HP: 30, Defense: 2, Power: attackerPower, OnDeath: entity.DeathPlayer})

	id := reg.Add(entity.Entity{
		X: 2, Y: 1,
		Name:   "Orc",
		Glyph:  'o',
		Color:  tcell.ColorGreen,
		Blocks: true,
		Alive:  true,
	})
	reg.SetFighter(id, &entity.Fighter{
		MaxHP:   defenderHP,
		HP:      defenderHP,
		Defense: defenderDefense,
		Power:   3,
		OnDeath: entity.DeathMonster,
	})
	reg.SetAI(id, entity.AIBasic)
	return reg, id
}

func TestAttackDealsPowerMinusDefense(t *testing.T) {
	reg, orc := duelRegistry(5, 2, 20)

	events := Attack(reg, entity.Player, orc)

	require.Len(t, events, 1)
	assert.Equal(t, EventDamage, events[0].Kind)
	assert.Equal(t, 3, events[0].Damage)
	assert.Equal(t, 17, reg.Fighter(orc).HP)
}

func TestAttackFullyAbsorbedHasNoEffect(t *testing.T) {
	reg, orc := duelRegistry(2, 5, 20)

	events := Attack(reg, entity.Player, orc)

	require.Len(t, events, 1)
	assert.Equal(t, EventNoEffect, events[0].Kind)
	assert.Equal(t, 0, events[0].Damage)
	assert.Equal(t, 20, reg.Fighter(orc).HP, "absorbed attack must not touch HP")
}

func TestAttackKillTransformsMonsterToCorpse(t *testing.T) {
	reg, orc := duelRegistry(5, 0, 10)

	// 5 damage per hit; two hits bring 10 HP to zero.
	first := Attack(reg, entity.Player, orc)
	require.Len(t, first, 1)
	assert.Equal(t, 5, reg.Fighter(orc).HP)

	second := Attack(reg, entity.Player, orc)
	require.Len(t, second, 2)
	assert.Equal(t, EventDamage, second[0].Kind)
	assert.Equal(t, EventDeath, second[1].Kind)

	corpse := reg.At(orc)
	assert.False(t, corpse.Alive)
	assert.False(t, corpse.Blocks)
	assert.Equal(t, CorpseGlyph, corpse.Glyph)
	assert.Equal(t, "remains of Orc", corpse.Name)
	assert.Nil(t, reg.Fighter(orc), "corpse must lose its Fighter")
	_, hasAI := reg.AI(orc)
	assert.False(t, hasAI, "corpse must lose its AI")
}

func TestAttackOnPlayerDeathKeepsFighter(t *testing.T) {
	reg, orc := duelRegistry(5, 0, 10)
	reg.Fighter(entity.Player).HP = 1

	events := Attack(reg, orc, entity.Player)

	require.Len(t, events, 2)
	assert.Equal(t, EventDeath, events[1].Kind)

	player := reg.At(entity.Player)
	assert.False(t, player.Alive)
	assert.Equal(t, CorpseGlyph, player.Glyph)
	assert.Equal(t, "player", player.Name)
	require.NotNil(t, reg.Fighter(entity.Player), "player keeps Fighter so the HP bar can show zero")
	assert.LessOrEqual(t, reg.Fighter(entity.Player).HP, 0)
}

func TestAttackSelfPanics(t *testing.T) {
	reg, orc := duelRegistry(5, 0, 10)
	assert.Panics(t, func() { Attack(reg, orc, orc) })
}

func TestTakeDamageAppliesRawAmount(t *testing.T) {
	reg, orc := duelRegistry(5, 0, 10)

	events := TakeDamage(reg, orc, 4)

	assert.Empty(t, events)
	assert.Equal(t, 6, reg.Fighter(orc).HP)
}

func TestTakeDamageIgnoresNonPositiveAmounts(t *testing.T) {
	reg, orc := duelRegistry(5, 0, 10)

	assert.Empty(t, TakeDamage(reg, orc, 0))
	assert.Empty(t, TakeDamage(reg, orc, -7))
	assert.Equal(t, 10, reg.Fighter(orc).HP)
}

func TestTakeDamageKillFiresDeathOnce(t *testing.T) {
	reg, orc := duelRegistry(5, 0, 10)

	events := TakeDamage(reg, orc, 12)
	require.Len(t, events, 1)
	assert.Equal(t, EventDeath, events[0].Kind)

	corpse := reg.At(orc)
	nameAfterDeath := corpse.Name
	glyphAfterDeath := corpse.Glyph

	// A second hit on the corpse is a no-op: no events, no re-transform.
	again := TakeDamage(reg, orc, 5)
	assert.Empty(t, again)
	assert.Equal(t, nameAfterDeath, reg.At(orc).Name)
	assert.Equal(t, glyphAfterDeath, reg.At(orc).Glyph)
}

func TestTakeDamageOnDeadPlayerIsNoOp(t *testing.T) {
	reg, orc := duelRegistry(5, 0, 10)
	reg.Fighter(entity.Player).HP = 1

	require.Len(t, Attack(reg, orc, entity.Player), 2)
	require.False(t, reg.At(entity.Player).Alive)

	// The player keeps a Fighter after death; the alive check must still
	// prevent a second death transition.
	hpBefore := reg.Fighter(entity.Player).HP
	assert.Empty(t, TakeDamage(reg, entity.Player, 5))
	assert.Equal(t, hpBefore, reg.Fighter(entity.Player).HP)
}
