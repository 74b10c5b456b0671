package world

import "fmt"

// LineOfSight selects the visibility algorithm.
type LineOfSight int

const (
	// LOSTraversal walks every tile the segment between the two tile centres
	// passes through. It is symmetric: A sees B iff B sees A.
	LOSTraversal LineOfSight = iota
	// LOSSampled samples the segment once per tile width, stepping only
	// toward increasing x. Targets level with or left of the viewer are
	// therefore always visible, and the test is not symmetric.
	LOSSampled
)

// String returns the configuration name of the mode.
func (m LineOfSight) String() string {
	switch m {
	case LOSTraversal:
		return "traversal"
	case LOSSampled:
		return "sampled"
	default:
		return "unknown"
	}
}

// ParseLineOfSight maps a configuration name to a mode.
func ParseLineOfSight(name string) (LineOfSight, error) {
	switch name {
	case "", "traversal":
		return LOSTraversal, nil
	case "sampled":
		return LOSSampled, nil
	default:
		return LOSTraversal, fmt.Errorf("unknown line of sight mode %q", name)
	}
}

// HasLineOfSight reports whether the tile at to is visible from the tile at
// from. Both points are tile origins; a tile always sees itself.
func (d *Dungeon) HasLineOfSight(from, to Point) bool {
	if from == to {
		return true
	}
	if d.los == LOSSampled {
		return d.sampledLOS(from, to)
	}
	return d.traversalLOS(from, to)
}

// sampledLOS steps from the viewer's centre toward the target's centre one
// tile width at a time, recomputing y from the line equation, and fails on
// the first sample that is off the grid or on a colliding tile.
func (d *Dungeon) sampledLOS(from, to Point) bool {
	halfW, halfH := float64(d.TileWidth)/2, float64(d.TileHeight)/2
	currentX, currentY := from.X+halfW, from.Y+halfH
	targetX, targetY := to.X+halfW, to.Y+halfH
	slope := (targetY - currentY) / (targetX - currentX)

	for currentX < targetX {
		currentX += float64(d.TileWidth)
		currentY = targetY - slope*(targetX-currentX)
		index, ok := d.TileIndex(Point{X: currentX, Y: currentY})
		if !ok || d.tiles[index].HasCollision {
			return false
		}
	}
	return true
}

// traversalLOS visits, in order, every tile crossed by the segment between
// the two tile centres. Boundary crossings are compared with integer
// arithmetic so ties are exact; when the segment passes through a tile
// corner, both tiles beside the corner must be clear.
func (d *Dungeon) traversalLOS(from, to Point) bool {
	a, okA := d.TileIndex(from)
	b, okB := d.TileIndex(to)
	if !okA || !okB {
		return false
	}

	x, y := a%d.Width, a/d.Width
	x1, y1 := b%d.Width, b/d.Width
	if d.blocked(x, y) {
		return false
	}

	dx, dy := abs(x1-x), abs(y1-y)
	sx, sy := sign(x1-x), sign(y1-y)

	// ix, iy count the vertical and horizontal boundaries crossed so far.
	// The next ones are at t = (2ix+1)/(2dx) and t = (2iy+1)/(2dy).
	for ix, iy := 0, 0; ix < dx || iy < dy; {
		cmp := (2*ix+1)*dy - (2*iy+1)*dx
		switch {
		case ix >= dx:
			y += sy
			iy++
		case iy >= dy:
			x += sx
			ix++
		case cmp < 0:
			x += sx
			ix++
		case cmp > 0:
			y += sy
			iy++
		default:
			if d.blocked(x+sx, y) || d.blocked(x, y+sy) {
				return false
			}
			x += sx
			y += sy
			ix++
			iy++
		}
		if d.blocked(x, y) {
			return false
		}
	}
	return true
}

// blocked reports whether grid coordinates are off the grid or colliding.
func (d *Dungeon) blocked(col, row int) bool {
	index, ok := d.IndexOf(col, row)
	return !ok || d.tiles[index].HasCollision
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
