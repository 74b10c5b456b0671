// Package world provides the dungeon grid: generation, enemy placement and
// the movement, visibility and attack range queries.
package world

// TileKind classifies a generated tile.
type TileKind int

const (
	// KindFloor is open room interior.
	KindFloor TileKind = iota
	// KindWall blocks movement and sight.
	KindWall
	// KindDoor is a passable opening in a room border.
	KindDoor
)

// String returns a human-readable kind name.
func (k TileKind) String() string {
	switch k {
	case KindFloor:
		return "floor"
	case KindWall:
		return "wall"
	case KindDoor:
		return "door"
	default:
		return "unknown"
	}
}

// Rune returns the tile's display character.
func (k TileKind) Rune() rune {
	switch k {
	case KindWall:
		return '#'
	case KindDoor:
		return '+'
	default:
		return '.'
	}
}

// Tile is the simulation state of a single grid cell.
type Tile struct {
	Kind         TileKind
	Col, Row     int
	HasCollision bool // Blocks movement and sight
	IsDoor       bool
	IsOccupied   bool // A living unit stands here
}

func newTile(kind TileKind, col, row int) Tile {
	return Tile{
		Kind:         kind,
		Col:          col,
		Row:          row,
		HasCollision: kind == KindWall,
		IsDoor:       kind == KindDoor,
	}
}

// Room is a rectangle carved by the generator.
type Room struct {
	X, Y          int // Top-left corner in tiles
	Width, Height int // Dimensions after clipping to the grid
	DoorBudget    int // Doors the room was allowed to place
	DoorsPlaced   int
}

// Contains returns true if the given tile coordinates are inside the room.
func (r Room) Contains(col, row int) bool {
	return col >= r.X && col < r.X+r.Width && row >= r.Y && row < r.Y+r.Height
}
