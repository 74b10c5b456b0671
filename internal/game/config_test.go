package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/samdwyer/dungeongrid/internal/world"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg != DefaultConfig() {
		t.Errorf("LoadConfig() = %+v, want %+v", cfg, DefaultConfig())
	}
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("DUNGEON_SEED", "77")
	t.Setenv("DUNGEON_WIDTH", "40")
	t.Setenv("DUNGEON_HEIGHT", "30")
	t.Setenv("DUNGEON_MIN_ENEMIES", "1")
	t.Setenv("DUNGEON_MAX_ENEMIES", "3")
	t.Setenv("DUNGEON_LOS", "sampled")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Seed != 77 || cfg.Width != 40 || cfg.Height != 30 {
		t.Errorf("LoadConfig() = %+v, want seed 77 on a 40x30 grid", cfg)
	}
	if cfg.MinEnemies != 1 || cfg.MaxEnemies != 3 {
		t.Errorf("enemy range = %d..%d, want 1..3", cfg.MinEnemies, cfg.MaxEnemies)
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if len(opts) != 2 {
		t.Errorf("Options() returned %d options, want 2", len(opts))
	}
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
		want  string
	}{
		{"not a number", "DUNGEON_SEED", "abc", "parse env:"},
		{"unknown los", "DUNGEON_LOS", "raycast", "line of sight"},
		{"inverted enemy range", "DUNGEON_MIN_ENEMIES", "50", "enemy range"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := LoadConfig()
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadConfigInvalidGeometry(t *testing.T) {
	t.Setenv("DUNGEON_TILE_WIDTH", "0")

	if _, err := LoadConfig(); !errors.Is(err, world.ErrInvalidGeometry) {
		t.Errorf("LoadConfig() error = %v, want ErrInvalidGeometry", err)
	}
}

func TestConfigGeometry(t *testing.T) {
	g := DefaultConfig().Geometry()
	want := world.Geometry{
		Width:      world.DefaultWidth,
		Height:     world.DefaultHeight,
		TileWidth:  world.DefaultTileWidth,
		TileHeight: world.DefaultTileHeight,
	}
	if g != want {
		t.Errorf("Geometry() = %+v, want %+v", g, want)
	}
}
