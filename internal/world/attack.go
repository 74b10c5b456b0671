package world

import "github.com/zyedidia/generic/mapset"

// ComputeAttackable replaces the attack range with the tiles around origin
// that hold a live enemy, lie within [minRange, maxRange] Manhattan tiles and
// are visible from origin. A maxRange of 0 yields no tiles.
//
// Tiles are scanned column by column across the bounding square, which fixes
// the order of the result.
func (d *Dungeon) ComputeAttackable(origin Point, minRange, maxRange int) []int {
	d.ClearAttackableTiles()

	if maxRange == 0 {
		return d.attackable
	}

	w, h := float64(d.TileWidth), float64(d.TileHeight)
	for i := -maxRange; i <= maxRange; i++ {
		for j := -maxRange; j <= maxRange; j++ {
			distance := abs(i) + abs(j)
			if distance < minRange || distance > maxRange {
				continue
			}

			p := Point{X: origin.X + float64(i)*w, Y: origin.Y + float64(j)*h}
			index, ok := d.TileIndex(p)
			if !ok || !d.tiles[index].IsOccupied {
				continue
			}

			enemy, ok := d.enemies[index]
			if !ok || !enemy.IsAlive() || !d.HasLineOfSight(origin, p) {
				continue
			}

			d.attackable = append(d.attackable, index)
			d.attackableSet.Put(index)
		}
	}

	return d.attackable
}

// IsAttackableTile reports whether index is in the current attack range.
func (d *Dungeon) IsAttackableTile(index int) bool {
	return d.attackableSet.Has(index)
}

// AttackableTiles returns the current attack range in scan order.
func (d *Dungeon) AttackableTiles() []int {
	return d.attackable
}

// ClearAttackableTiles drops the current attack range.
func (d *Dungeon) ClearAttackableTiles() {
	d.attackable = nil
	d.attackableSet = mapset.New[int]()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
