package world

import (
	"github.com/zyedidia/generic/mapset"

	"github.com/samdwyer/dungeongrid/internal/entity"
)

const (
	// Default dungeon dimensions
	DefaultWidth      = 24
	DefaultHeight     = 18
	DefaultTileWidth  = 100
	DefaultTileHeight = 100

	// Default enemy count range rolled by Populate
	DefaultMinEnemies = 4
	DefaultMaxEnemies = 18
)

// Dungeon is the game map: a row-major tile buffer plus the enemies standing
// on it and the results of the latest range queries.
type Dungeon struct {
	Geometry
	Rooms []Room

	tiles   []Tile
	enemies map[int]*entity.Enemy

	// Query caches, replaced wholesale by every query.
	movable       map[int]int
	attackable    []int
	attackableSet mapset.Set[int]

	los        LineOfSight
	minEnemies int
	maxEnemies int
}

// Option configures a Dungeon.
type Option func(*Dungeon)

// WithLineOfSight selects the visibility algorithm.
func WithLineOfSight(mode LineOfSight) Option {
	return func(d *Dungeon) { d.los = mode }
}

// WithEnemyCount sets the range Populate rolls the target enemy count from.
func WithEnemyCount(minEnemies, maxEnemies int) Option {
	return func(d *Dungeon) {
		d.minEnemies = minEnemies
		d.maxEnemies = maxEnemies
	}
}

// NewDungeon allocates an empty dungeon. Call Generate or Reset to carve it.
func NewDungeon(geometry Geometry, opts ...Option) (*Dungeon, error) {
	if err := geometry.Validate(); err != nil {
		return nil, err
	}

	d := &Dungeon{
		Geometry:      geometry,
		Rooms:         make([]Room, 0),
		tiles:         make([]Tile, geometry.NumTiles()),
		enemies:       make(map[int]*entity.Enemy),
		movable:       make(map[int]int),
		attackableSet: mapset.New[int](),
		los:           LOSTraversal,
		minEnemies:    DefaultMinEnemies,
		maxEnemies:    DefaultMaxEnemies,
	}
	for _, opt := range opts {
		opt(d)
	}
	for i := range d.tiles {
		d.tiles[i] = newTile(KindFloor, i%d.Width, i/d.Width)
	}
	return d, nil
}

// Tiles returns the tile buffer for rendering. Callers must not modify it.
func (d *Dungeon) Tiles() []Tile {
	return d.tiles
}

// TileAt returns the tile at index, or false if the index is out of range.
func (d *Dungeon) TileAt(index int) (Tile, bool) {
	if index < 0 || index >= len(d.tiles) {
		return Tile{}, false
	}
	return d.tiles[index], true
}

// IsValidTile reports whether a pixel position lies on the grid.
func (d *Dungeon) IsValidTile(p Point) bool {
	_, ok := d.TileIndex(p)
	return ok
}

// IsTileAtPosition snaps p to the origin of the tile containing it.
func (d *Dungeon) IsTileAtPosition(p Point) (Point, bool) {
	index, ok := d.TileIndex(p)
	if !ok {
		return p, false
	}
	return d.PositionOf(index), true
}

// TileHasUnit reports whether a unit stands on the tile at p.
func (d *Dungeon) TileHasUnit(p Point) bool {
	index, ok := d.TileIndex(p)
	return ok && d.tiles[index].IsOccupied
}

// SetOccupied marks a tile as holding a unit or not.
func (d *Dungeon) SetOccupied(index int, occupied bool) {
	if index >= 0 && index < len(d.tiles) {
		d.tiles[index].IsOccupied = occupied
	}
}

// MoveOccupant transfers occupancy from one tile to another.
func (d *Dungeon) MoveOccupant(from, to int) {
	d.SetOccupied(from, false)
	d.SetOccupied(to, true)
}

// Enemies returns the enemy map keyed by tile index. Callers must not modify it.
func (d *Dungeon) Enemies() map[int]*entity.Enemy {
	return d.enemies
}

// EnemyAt returns the enemy standing on index.
func (d *Dungeon) EnemyAt(index int) (*entity.Enemy, bool) {
	enemy, ok := d.enemies[index]
	return enemy, ok
}

// AddEnemy places an enemy on its tile. It fails if the tile is out of
// range, blocked or already occupied.
func (d *Dungeon) AddEnemy(enemy *entity.Enemy) bool {
	index, ok := d.IndexOf(enemy.Col, enemy.Row)
	if !ok || d.tiles[index].HasCollision || d.tiles[index].IsOccupied {
		return false
	}
	d.enemies[index] = enemy
	d.tiles[index].IsOccupied = true
	return true
}

// RemoveEnemy removes a defeated enemy and frees its tile.
func (d *Dungeon) RemoveEnemy(index int) {
	if _, ok := d.enemies[index]; !ok {
		return
	}
	delete(d.enemies, index)
	d.SetOccupied(index, false)

	if d.attackableSet.Has(index) {
		d.attackableSet.Remove(index)
		// Slices handed out by ComputeAttackable stay untouched.
		kept := make([]int, 0, len(d.attackable)-1)
		for _, i := range d.attackable {
			if i != index {
				kept = append(kept, i)
			}
		}
		d.attackable = kept
	}
}

// AliveEnemyCount returns the number of enemies still alive.
func (d *Dungeon) AliveEnemyCount() int {
	count := 0
	for _, e := range d.enemies {
		if e.IsAlive() {
			count++
		}
	}
	return count
}

// clearAll drops enemies and every query cache.
func (d *Dungeon) clearAll() {
	d.enemies = make(map[int]*entity.Enemy)
	d.ClearMovableTiles()
	d.ClearAttackableTiles()
}
