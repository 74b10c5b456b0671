package world

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/dungeongrid/internal/dice"
	"github.com/samdwyer/dungeongrid/internal/telemetry"
)

// Room size and door budget rolls.
const (
	minRoomSize = 5
	maxRoomSize = 6
	maxDoors    = 4
)

// Generate carves rooms, walls and doors into the tile buffer.
//
// Rooms are laid out along a skyline: heights[x] holds the lowest carved row
// of column x, and each room starts at the skyline under its span so it
// interlocks with whatever is above it. Neighbouring rooms share their border
// column, which keeps walls contiguous. The same seed always yields the same
// map. Enemies and query caches are cleared; every tile is rewritten.
func (d *Dungeon) Generate(ctx context.Context, seed int64) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "dungeon.generate")
	defer span.End()

	startTime := time.Now()

	d.clearAll()
	d.Rooms = d.Rooms[:0]
	for i := range d.tiles {
		d.tiles[i] = newTile(KindFloor, i%d.Width, i/d.Width)
	}

	roller := dice.NewRoller(seed)
	heights := make([]int, d.Width)
	currentWidth, currentHeight := 0, 0

	for currentHeight < d.Height-1 {
		currentWidth = 0
		for currentWidth < d.Width-1 {
			currentHeight = heights[currentWidth+1]
			roomHeight := roller.RollRange(minRoomSize, maxRoomSize)
			roomWidth := roller.RollRange(minRoomSize, maxRoomSize)

			yEdge := min(currentHeight+roomHeight, d.Height)
			xEdge := min(currentWidth+roomWidth, d.Width)

			top := currentHeight
			for x := currentWidth; x < xEdge; x++ {
				top = min(top, heights[x])
			}

			room := Room{
				X:          currentWidth,
				Y:          top,
				Width:      xEdge - currentWidth,
				Height:     yEdge - top,
				DoorBudget: roller.Roll(maxDoors),
			}
			d.carveRoom(&room, roomWidth, roomHeight)
			d.Rooms = append(d.Rooms, room)

			for x := currentWidth; x < xEdge; x++ {
				heights[x] = yEdge - 1
			}
			currentWidth = xEdge - 1
		}
	}

	doors := 0
	for _, t := range d.tiles {
		if t.IsDoor {
			doors++
		}
	}

	span.SetAttributes(
		attribute.Int64("dungeon.seed", seed),
		attribute.Int("dungeon.width", d.Width),
		attribute.Int("dungeon.height", d.Height),
		attribute.Int("dungeon.room_count", len(d.Rooms)),
		attribute.Int("dungeon.door_count", doors),
		attribute.Int64("dungeon.generation_ms", time.Since(startTime).Milliseconds()),
	)
}

// carveRoom classifies every cell of the room rectangle. Border cells become
// walls except for doors centred on the rolled room size (never on the outer
// edge of the grid, at most DoorBudget of them) and the dungeon entrance at
// column 1, row 0.
func (d *Dungeon) carveRoom(room *Room, rolledWidth, rolledHeight int) {
	xEdge := room.X + room.Width
	yEdge := room.Y + room.Height
	doorsLeft := room.DoorBudget

	for y := room.Y; y < yEdge; y++ {
		for x := room.X; x < xEdge; x++ {
			kind := KindFloor
			if x == room.X || x == xEdge-1 || y == room.Y || y == yEdge-1 {
				switch {
				case y > 0 && x > 0 && y != d.Height-1 && x != d.Width-1 &&
					doorsLeft > 0 &&
					(xEdge-x == rolledWidth/2 || yEdge-y == rolledHeight/2):
					kind = KindDoor
					doorsLeft--
					room.DoorsPlaced++
				case x == 1 && y == 0:
					kind = KindDoor
				default:
					kind = KindWall
				}
			}
			d.tiles[y*d.Width+x] = newTile(kind, x, y)
		}
	}
}

// Entrance returns the index of the dungeon entrance tile.
func (d *Dungeon) Entrance() int {
	return 1
}
