package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/samdwyer/dungeongrid/internal/world"
)

// Config holds game configuration options.
type Config struct {
	// Seed for dungeon generation and enemy placement. The same seed always
	// produces the same map; 1 reproduces the classic layout.
	Seed int64 `env:"DUNGEON_SEED" envDefault:"1"`

	Width      int `env:"DUNGEON_WIDTH"       envDefault:"24"`
	Height     int `env:"DUNGEON_HEIGHT"      envDefault:"18"`
	TileWidth  int `env:"DUNGEON_TILE_WIDTH"  envDefault:"100"`
	TileHeight int `env:"DUNGEON_TILE_HEIGHT" envDefault:"100"`

	MinEnemies int `env:"DUNGEON_MIN_ENEMIES" envDefault:"4"`
	MaxEnemies int `env:"DUNGEON_MAX_ENEMIES" envDefault:"18"`

	// LineOfSight names the visibility algorithm: "traversal" or "sampled".
	LineOfSight string `env:"DUNGEON_LOS" envDefault:"traversal"`
}

// DefaultConfig returns the configuration used when no environment is set.
func DefaultConfig() Config {
	return Config{
		Seed:        1,
		Width:       world.DefaultWidth,
		Height:      world.DefaultHeight,
		TileWidth:   world.DefaultTileWidth,
		TileHeight:  world.DefaultTileHeight,
		MinEnemies:  world.DefaultMinEnemies,
		MaxEnemies:  world.DefaultMaxEnemies,
		LineOfSight: world.LOSTraversal.String(),
	}
}

// LoadConfig reads the configuration from the environment and validates it.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the grid dimensions, enemy range and visibility mode.
func (c Config) Validate() error {
	if err := c.Geometry().Validate(); err != nil {
		return err
	}
	if c.MinEnemies < 0 || c.MaxEnemies < c.MinEnemies {
		return fmt.Errorf("invalid enemy range %d..%d", c.MinEnemies, c.MaxEnemies)
	}
	if _, err := world.ParseLineOfSight(c.LineOfSight); err != nil {
		return err
	}
	return nil
}

// Geometry returns the grid dimensions.
func (c Config) Geometry() world.Geometry {
	return world.Geometry{
		Width:      c.Width,
		Height:     c.Height,
		TileWidth:  c.TileWidth,
		TileHeight: c.TileHeight,
	}
}

// Options returns the dungeon options derived from the configuration.
func (c Config) Options() ([]world.Option, error) {
	los, err := world.ParseLineOfSight(c.LineOfSight)
	if err != nil {
		return nil, err
	}
	return []world.Option{
		world.WithLineOfSight(los),
		world.WithEnemyCount(c.MinEnemies, c.MaxEnemies),
	}, nil
}
