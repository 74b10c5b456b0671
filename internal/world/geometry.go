package world

import "errors"

// ErrInvalidGeometry is returned for grids that cannot hold a room.
var ErrInvalidGeometry = errors.New("grid must be at least 2x2 tiles with positive tile size")

// Point is a position in pixels. Tile origins are at multiples of the tile size.
type Point struct {
	X, Y float64
}

// Geometry describes the grid dimensions.
type Geometry struct {
	Width      int // Columns
	Height     int // Rows
	TileWidth  int // Pixels
	TileHeight int // Pixels
}

// Validate checks that the geometry can be generated.
func (g Geometry) Validate() error {
	if g.Width < 2 || g.Height < 2 || g.TileWidth <= 0 || g.TileHeight <= 0 {
		return ErrInvalidGeometry
	}
	return nil
}

// NumTiles returns Width*Height.
func (g Geometry) NumTiles() int {
	return g.Width * g.Height
}

// PixelWidth returns the grid width in pixels.
func (g Geometry) PixelWidth() float64 {
	return float64(g.Width * g.TileWidth)
}

// PixelHeight returns the grid height in pixels.
func (g Geometry) PixelHeight() float64 {
	return float64(g.Height * g.TileHeight)
}

// TileIndex resolves a pixel position to its row-major tile index.
// Positions outside [0, PixelWidth) x [0, PixelHeight) never resolve.
func (g Geometry) TileIndex(p Point) (int, bool) {
	if p.X < 0 || p.X >= g.PixelWidth() || p.Y < 0 || p.Y >= g.PixelHeight() {
		return 0, false
	}
	index := int(p.Y/float64(g.TileHeight))*g.Width + int(p.X/float64(g.TileWidth))
	return index, index >= 0 && index < g.NumTiles()
}

// IndexOf returns the tile index for grid coordinates.
func (g Geometry) IndexOf(col, row int) (int, bool) {
	if col < 0 || col >= g.Width || row < 0 || row >= g.Height {
		return 0, false
	}
	return row*g.Width + col, true
}

// PositionOf returns the pixel origin of a tile index.
func (g Geometry) PositionOf(index int) Point {
	return Point{
		X: float64((index % g.Width) * g.TileWidth),
		Y: float64((index / g.Width) * g.TileHeight),
	}
}

// PointAt returns the pixel origin of grid coordinates.
func (g Geometry) PointAt(col, row int) Point {
	return Point{X: float64(col * g.TileWidth), Y: float64(row * g.TileHeight)}
}
