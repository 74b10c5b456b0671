package world

// ComputeMovable replaces the movement range with every tile reachable from
// origin within speed steps, mapped to the budget left on arrival.
//
// The search is breadth first with uniform step cost, so the first time a
// tile is reached is also the cheapest and it is queued once. Colliding tiles
// are never entered. Occupied tiles are walked through but are never
// destinations.
func (d *Dungeon) ComputeMovable(origin Point, speed int) map[int]int {
	d.movable = make(map[int]int)

	start, ok := d.TileIndex(origin)
	if !ok || d.tiles[start].HasCollision {
		return d.movable
	}

	best := map[int]int{start: speed}
	queue := []int{start}
	for len(queue) > 0 {
		index := queue[0]
		queue = queue[1:]
		budget := best[index]
		if !d.tiles[index].IsOccupied {
			d.movable[index] = budget
		}
		if budget <= 0 {
			continue
		}

		pos := d.PositionOf(index)
		for _, step := range d.steps() {
			next, ok := d.TileIndex(Point{X: pos.X + step.X, Y: pos.Y + step.Y})
			if !ok || d.tiles[next].HasCollision {
				continue
			}
			if known, seen := best[next]; seen && known >= budget-1 {
				continue
			}
			best[next] = budget - 1
			queue = append(queue, next)
		}
	}

	return d.movable
}

// steps returns the pixel offsets of the four cardinal neighbours:
// down, left, right, up.
func (d *Dungeon) steps() [4]Point {
	w, h := float64(d.TileWidth), float64(d.TileHeight)
	return [4]Point{{0, h}, {-w, 0}, {w, 0}, {0, -h}}
}

// IsMovableTile returns the budget left on arrival at index.
func (d *Dungeon) IsMovableTile(index int) (int, bool) {
	speedLeft, ok := d.movable[index]
	return speedLeft, ok
}

// MovableTiles returns the current movement range. Callers must not modify it.
func (d *Dungeon) MovableTiles() map[int]int {
	return d.movable
}

// ClearMovableTiles drops the current movement range.
func (d *Dungeon) ClearMovableTiles() {
	d.movable = make(map[int]int)
}
