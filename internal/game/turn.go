package game

import (
	"context"
	"math"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/gloomstalk/internal/combat"
	"github.com/samdwyer/gloomstalk/internal/entity"
	"github.com/samdwyer/gloomstalk/internal/fov"
	"github.com/samdwyer/gloomstalk/internal/telemetry"
	"github.com/samdwyer/gloomstalk/internal/world"
)

// TurnEngine drives one discrete simulation step per intent: the player's
// action resolves fully first, then every AI-tagged entity acts in
// ascending index order. The engine owns the registry and the visibility
// engine exclusively; nothing here runs outside the caller's step.
type TurnEngine struct {
	m   *world.Map
	reg *entity.Registry
	vis *fov.Engine
	log *MessageLog

	fovRadius  int
	lightWalls bool
	fovAlgo    fov.Algorithm

	logger *zap.Logger

	// Last origin the visible set was computed for. Visibility recomputes
	// only when the player's cell changed since the previous step.
	lastFovX, lastFovY int
}

// NewTurnEngine wires a turn engine over a generated map and registry.
func NewTurnEngine(m *world.Map, reg *entity.Registry, vis *fov.Engine, log *MessageLog, fovRadius int, lightWalls bool, algo fov.Algorithm, logger *zap.Logger) *TurnEngine {
	return &TurnEngine{
		m:          m,
		reg:        reg,
		vis:        vis,
		log:        log,
		fovRadius:  fovRadius,
		lightWalls: lightWalls,
		fovAlgo:    algo,
		logger:     logger,
		lastFovX:   -1,
		lastFovY:   -1,
	}
}

// Registry exposes the entity table to the display collaborator.
func (t *TurnEngine) Registry() *entity.Registry { return t.reg }

// Map exposes the grid to the display collaborator.
func (t *TurnEngine) Map() *world.Map { return t.m }

// Visibility exposes the visible-set query to the display collaborator.
func (t *TurnEngine) Visibility() *fov.Engine { return t.vis }

// Messages exposes the combat message log.
func (t *TurnEngine) Messages() *MessageLog { return t.log }

// Handle resolves one intent and returns the step's outcome. Movement
// intents resolve via player move-or-attack and always consume the turn;
// display-only intents do not. On a consumed turn the AI pass runs before
// control returns.
func (t *TurnEngine) Handle(ctx context.Context, intent Intent) TurnResult {
	var dx, dy int
	switch intent {
	case IntentExit:
		return Exit
	case IntentNone, IntentToggleFullscreen:
		return DidntTakeTurn
	case IntentMoveUp:
		dx, dy = 0, -1
	case IntentMoveDown:
		dx, dy = 0, 1
	case IntentMoveLeft:
		dx, dy = -1, 0
	case IntentMoveRight:
		dx, dy = 1, 0
	default:
		return DidntTakeTurn
	}

	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "game.turn")
	defer span.End()

	t.playerMoveOrAttack(dx, dy)
	t.aiPass()
	t.RefreshVisibility()

	player := t.reg.At(entity.Player)
	span.SetAttributes(
		attribute.Int("player.x", player.X),
		attribute.Int("player.y", player.Y),
		attribute.Bool("player.alive", player.Alive),
		attribute.Int("entities", t.reg.Len()),
	)

	return TookTurn
}

// playerMoveOrAttack resolves a movement intent. A fighter on the target
// cell is attacked; there is no faction concept, so a neutral fighter is a
// legal target. A blocked target cell silently absorbs the move.
func (t *TurnEngine) playerMoveOrAttack(dx, dy int) {
	player := t.reg.At(entity.Player)
	if !player.Alive {
		return
	}
	x := player.X + dx
	y := player.Y + dy
	if !t.m.InBounds(x, y) {
		return
	}

	if target, ok := t.reg.FighterAt(x, y); ok {
		t.pushEvents(combat.Attack(t.reg, entity.Player, target))
		return
	}
	if t.m.IsBlocked(x, y) {
		return
	}
	if _, occupied := t.reg.BlockingAt(x, y); occupied {
		return
	}
	player.MoveBy(dx, dy)
}

// aiPass runs every AI-tagged entity in ascending index order. The player's
// action has already fully resolved, so kills it caused are visible here.
func (t *TurnEngine) aiPass() {
	for i := 1; i < t.reg.Len(); i++ {
		id := entity.ID(i)
		kind, ok := t.reg.AI(id)
		if !ok {
			continue
		}
		switch kind {
		case entity.AIBasic:
			t.basicAIStep(id)
		}
	}
}

// basicAIStep is the chase-or-attack policy. Visibility is treated as
// symmetric: a monster the player can see can see the player. At Euclidean
// distance >= 2 the monster takes one unit-normalized, rounded step toward
// the player; rounding restricts motion to the eight grid directions and
// can legitimately produce a zero-length step. Closer in, it attacks the
// player if the player is still alive.
func (t *TurnEngine) basicAIStep(id entity.ID) {
	monster := t.reg.At(id)
	if !t.vis.IsVisible(monster.X, monster.Y) {
		return
	}

	player := t.reg.At(entity.Player)
	fdx := float64(player.X - monster.X)
	fdy := float64(player.Y - monster.Y)
	dist := math.Sqrt(fdx*fdx + fdy*fdy)

	if dist >= 2.0 {
		t.moveToward(id, fdx/dist, fdy/dist)
		return
	}
	if player.Alive {
		t.pushEvents(combat.Attack(t.reg, id, entity.Player))
	}
}

// moveToward applies one rounded unit step. A blocked or occupied target
// cell simply loses the monster its move; there is no retry or pathing.
func (t *TurnEngine) moveToward(id entity.ID, nx, ny float64) {
	dx := int(math.Round(nx))
	dy := int(math.Round(ny))

	monster := t.reg.At(id)
	x := monster.X + dx
	y := monster.Y + dy
	if !t.m.InBounds(x, y) || t.m.IsBlocked(x, y) {
		return
	}
	if _, occupied := t.reg.BlockingAt(x, y); occupied {
		return
	}
	monster.MoveBy(dx, dy)
}

// RefreshVisibility recomputes the visible set if the player's cell changed
// since the last computation. The initial call always computes.
func (t *TurnEngine) RefreshVisibility() {
	player := t.reg.At(entity.Player)
	if player.X == t.lastFovX && player.Y == t.lastFovY {
		return
	}
	t.vis.Recompute(player.X, player.Y, t.fovRadius, t.lightWalls, t.fovAlgo)
	t.lastFovX = player.X
	t.lastFovY = player.Y
}

// pushEvents records combat events on the message log.
func (t *TurnEngine) pushEvents(events []combat.Event) {
	for _, ev := range events {
		t.log.Push(ev.Message)
		t.logger.Debug("combat event",
			zap.String("attacker", ev.Attacker),
			zap.String("defender", ev.Defender),
			zap.Int("damage", ev.Damage),
		)
	}
}
