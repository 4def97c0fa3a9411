package world

import (
	"context"
	"math/rand"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/gloomstalk/internal/entity"
	"github.com/samdwyer/gloomstalk/internal/gamedata"
	"github.com/samdwyer/gloomstalk/internal/telemetry"
)

const (
	// Default map dimensions
	DefaultWidth  = 80
	DefaultHeight = 45

	// Default room-and-tunnel parameters
	DefaultMaxRooms           = 30
	DefaultRoomMinSize        = 6
	DefaultRoomMaxSize        = 10
	DefaultMaxMonstersPerRoom = 3
)

// GenParams bounds one generation run.
type GenParams struct {
	Width              int
	Height             int
	MaxRooms           int
	RoomMinSize        int
	RoomMaxSize        int
	MaxMonstersPerRoom int
}

// DefaultGenParams returns the stock dungeon dimensions.
func DefaultGenParams() GenParams {
	return GenParams{
		Width:              DefaultWidth,
		Height:             DefaultHeight,
		MaxRooms:           DefaultMaxRooms,
		RoomMinSize:        DefaultRoomMinSize,
		RoomMaxSize:        DefaultRoomMaxSize,
		MaxMonstersPerRoom: DefaultMaxMonstersPerRoom,
	}
}

// Generator builds a map and its initial monster population from a random
// source. The same seed always produces the same dungeon.
type Generator struct {
	params   GenParams
	monsters *gamedata.MonsterRegistry
	rng      *rand.Rand
}

// NewGenerator creates a generator with the given parameters, archetype
// registry, and random source.
func NewGenerator(params GenParams, monsters *gamedata.MonsterRegistry, rng *rand.Rand) *Generator {
	return &Generator{params: params, monsters: monsters, rng: rng}
}

// Generate builds a wall-filled map, carves rooms and tunnels into it, and
// places monsters into the given registry. The registry must already hold
// the player at index 0; the player row is moved to the first accepted
// room's centroid.
//
// Exactly MaxRooms placement trials run. A trial whose rectangle intersects
// any previously accepted room (inclusively, so edge-touching rooms also
// collide) is discarded without a retry. Consecutive accepted rooms are
// joined by an L-shaped tunnel with a random bend order.
func (g *Generator) Generate(ctx context.Context, reg *entity.Registry) *Map {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	m := NewMap(g.params.Width, g.params.Height)
	rooms := g.run(m, reg)

	span.SetAttributes(
		attribute.Int("dungeon.width", m.Width),
		attribute.Int("dungeon.height", m.Height),
		attribute.Int("dungeon.room_count", len(rooms)),
		attribute.Int("dungeon.monster_count", reg.Len()-1),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)

	return m
}

// run executes the placement trials against a wall-filled map and returns
// the accepted rooms, which exist only for the duration of generation.
func (g *Generator) run(m *Map, reg *entity.Registry) []Room {
	var rooms []Room
	for trial := 0; trial < g.params.MaxRooms; trial++ {
		w := g.params.RoomMinSize + g.rng.Intn(g.params.RoomMaxSize-g.params.RoomMinSize+1)
		h := g.params.RoomMinSize + g.rng.Intn(g.params.RoomMaxSize-g.params.RoomMinSize+1)
		x := g.rng.Intn(g.params.Width - w)
		y := g.rng.Intn(g.params.Height - h)

		room := NewRoom(x, y, w, h)

		rejected := false
		for _, other := range rooms {
			if room.Intersects(other) {
				rejected = true
				break
			}
		}
		if rejected {
			continue
		}

		m.carveRoom(room)

		cx, cy := room.Center()
		if len(rooms) == 0 {
			// First room holds the player start.
			player := reg.At(entity.Player)
			player.X = cx
			player.Y = cy
		} else {
			// Join to the previously accepted room through both centroids.
			px, py := rooms[len(rooms)-1].Center()
			if g.rng.Intn(2) == 0 {
				m.carveHorizontalTunnel(px, cx, py)
				m.carveVerticalTunnel(py, cy, cx)
			} else {
				m.carveVerticalTunnel(py, cy, px)
				m.carveHorizontalTunnel(px, cx, cy)
			}
		}

		g.placeMonsters(m, reg, room)
		rooms = append(rooms, room)
	}

	return rooms
}

// placeMonsters populates one accepted room. The monster count is uniform in
// [0, MaxMonstersPerRoom]; a draw landing on a blocked or occupied cell is
// skipped without a retry.
func (g *Generator) placeMonsters(m *Map, reg *entity.Registry, room Room) {
	count := g.rng.Intn(g.params.MaxMonstersPerRoom + 1)

	for i := 0; i < count; i++ {
		x := room.X1 + 1 + g.rng.Intn(room.X2-room.X1-1)
		y := room.Y1 + 1 + g.rng.Intn(room.Y2-room.Y1-1)

		if m.At(x, y).Blocked {
			continue
		}
		if _, occupied := reg.BlockingAt(x, y); occupied {
			continue
		}

		def := g.monsters.SpawnRandom(g.rng)
		if def == nil {
			continue
		}

		id := reg.Add(entity.Entity{
			X:      x,
			Y:      y,
			Name:   def.Name,
			Glyph:  def.GlyphRune(),
			Color:  def.TCellColor(),
			Blocks: true,
			Alive:  true,
		})
		reg.SetFighter(id, &entity.Fighter{
			MaxHP:   def.HP,
			HP:      def.HP,
			Defense: def.Defense,
			Power:   def.Power,
			OnDeath: entity.DeathMonster,
		})
		reg.SetAI(id, entity.AIBasic)
	}
}
