package game

import (
	"context"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/samdwyer/gloomstalk/internal/config"
	"github.com/samdwyer/gloomstalk/internal/entity"
	"github.com/samdwyer/gloomstalk/internal/fov"
	"github.com/samdwyer/gloomstalk/internal/gamedata"
	"github.com/samdwyer/gloomstalk/internal/telemetry"
	"github.com/samdwyer/gloomstalk/internal/ui"
	"github.com/samdwyer/gloomstalk/internal/world"
)

// Game wires the turn engine to the terminal display and input.
type Game struct {
	cfg      config.Config
	screen   *ui.Screen
	renderer *ui.Renderer
	engine   *TurnEngine
	logger   *zap.Logger
	running  bool
}

// New creates a game instance over a fresh terminal screen.
func New(cfg config.Config, logger *zap.Logger) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}

	return &Game{
		cfg:      cfg,
		screen:   screen,
		renderer: ui.NewRenderer(screen),
		logger:   logger,
		running:  true,
	}, nil
}

// Run generates the dungeon and executes the main loop: render, block on
// input, resolve one step. Everything regenerates fresh each process; there
// is no persisted state.
func (g *Game) Run(ctx context.Context) error {
	tracer := telemetry.Tracer("game")
	ctx, initSpan := tracer.Start(ctx, "game.init")

	seed := g.cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	monsters, err := gamedata.LoadMonsterRegistry()
	if err != nil {
		initSpan.End()
		return err
	}

	reg := entity.NewRegistry(entity.Entity{
		Name:   "player",
		Glyph:  '@',
		Color:  tcell.ColorWhite,
		Blocks: true,
		Alive:  true,
	}, &entity.Fighter{
		MaxHP:   30,
		HP:      30,
		Defense: 2,
		Power:   5,
		OnDeath: entity.DeathPlayer,
	})

	gen := world.NewGenerator(world.GenParams{
		Width:              g.cfg.Map.Width,
		Height:             g.cfg.Map.Height,
		MaxRooms:           g.cfg.Map.MaxRooms,
		RoomMinSize:        g.cfg.Map.RoomMinSize,
		RoomMaxSize:        g.cfg.Map.RoomMaxSize,
		MaxMonstersPerRoom: g.cfg.Map.MaxMonstersPerRoom,
	}, monsters, rng)
	m := gen.Generate(ctx, reg)

	g.engine = NewTurnEngine(
		m, reg, fov.New(m), NewMessageLog(g.cfg.Game.MessageLogSize),
		g.cfg.FOV.Radius, g.cfg.FOV.LightWalls, fov.AlgoBasic,
		g.logger,
	)
	g.engine.RefreshVisibility()

	player := reg.At(entity.Player)
	initSpan.SetAttributes(
		attribute.Int64("game.seed", seed),
		attribute.Int("player.start_x", player.X),
		attribute.Int("player.start_y", player.Y),
		attribute.Int("entities", reg.Len()),
	)
	initSpan.End()

	g.logger.Info("dungeon generated",
		zap.Int64("seed", seed),
		zap.Int("entities", reg.Len()),
		zap.Int("player_x", player.X),
		zap.Int("player_y", player.Y),
	)

	for g.running {
		g.renderer.Render(
			g.engine.Map(),
			g.engine.Visibility(),
			g.engine.Registry(),
			g.engine.Messages().Latest(4),
		)
		g.handleInput(ctx)
	}

	g.screen.Close()
	return nil
}

// handleInput blocks on one terminal event and resolves it.
func (g *Game) handleInput(ctx context.Context) {
	switch ev := g.screen.PollEvent().(type) {
	case *tcell.EventKey:
		intent := decodeIntent(ev)
		if intent == IntentToggleFullscreen {
			// No fullscreen in a terminal; resync the display instead.
			g.screen.Sync()
		}
		if g.engine.Handle(ctx, intent) == Exit {
			g.running = false
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
}

// decodeIntent maps one key event to a player intent.
func decodeIntent(ev *tcell.EventKey) Intent {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return IntentExit
	case tcell.KeyUp:
		return IntentMoveUp
	case tcell.KeyDown:
		return IntentMoveDown
	case tcell.KeyLeft:
		return IntentMoveLeft
	case tcell.KeyRight:
		return IntentMoveRight
	case tcell.KeyEnter:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return IntentToggleFullscreen
		}
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return IntentExit
		case 'k':
			return IntentMoveUp
		case 'j':
			return IntentMoveDown
		case 'h':
			return IntentMoveLeft
		case 'l':
			return IntentMoveRight
		}
	}
	return IntentNone
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
