package world

import (
	"context"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeongrid/internal/dice"
	"github.com/samdwyer/dungeongrid/internal/entity"
	"github.com/samdwyer/dungeongrid/internal/gamedata"
	"github.com/samdwyer/dungeongrid/internal/telemetry"
)

const (
	// Tiles before Width+entranceClearance are never populated.
	entranceClearance = 5
	// Each candidate tile receives an enemy with probability 1/spawnChance.
	spawnChance = 50
)

// Spawner picks the definition for each placed enemy.
// *gamedata.EnemyRegistry satisfies it.
type Spawner interface {
	SpawnRandom(rng gamedata.Intn) *gamedata.EnemyDef
}

// Populate scatters enemies over free tiles and returns how many were placed.
//
// The roller is reseeded with seed, a target count is rolled from the
// configured range, then tiles are scanned upward from just past the entrance
// and each free tile gets an enemy with a 1 in 50 chance. Scanning stops when
// the target is met or the buffer runs out, so fewer enemies than rolled may
// be placed. Definitions are chosen by spawner after all slots are fixed; a
// nil spawner yields default enemies.
func (d *Dungeon) Populate(ctx context.Context, seed int64, spawner Spawner) int {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.populate")
	defer span.End()

	roller := dice.NewRoller(seed)
	target := roller.RollRange(d.minEnemies, d.maxEnemies)

	remaining := target
	slots := make([]int, 0, target)
	for i := d.Width + entranceClearance; i < len(d.tiles) && remaining > 0; i++ {
		if roller.Roll(spawnChance) == 1 && !d.tiles[i].HasCollision && !d.tiles[i].IsOccupied {
			d.tiles[i].IsOccupied = true
			slots = append(slots, i)
			remaining--
		}
	}

	for _, index := range slots {
		var def *gamedata.EnemyDef
		if spawner != nil {
			def = spawner.SpawnRandom(roller)
		}
		d.enemies[index] = entity.NewEnemy(def, index%d.Width, index/d.Width)
	}

	span.SetAttributes(
		attribute.Int64("dungeon.seed", seed),
		attribute.Int("enemies.target", target),
		attribute.Int("enemies.placed", len(slots)),
	)
	return len(slots)
}

// Reset regenerates the dungeon in place and repopulates it.
func (d *Dungeon) Reset(ctx context.Context, seed int64, spawner Spawner) {
	d.Generate(ctx, seed)
	d.Populate(ctx, seed, spawner)
}
